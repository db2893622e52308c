package knowledge

import "strings"

type IntentKind int

const (
	ByFreeText IntentKind = iota + 1
	ByDistrict
	ByCategory
	ByDistrictAndCategory
	ByIdentifier
	ByProximityKeyword
)

func (k IntentKind) String() string {
	switch k {
	case ByFreeText:
		return "free_text"
	case ByDistrict:
		return "district"
	case ByCategory:
		return "category"
	case ByDistrictAndCategory:
		return "district_and_category"
	case ByIdentifier:
		return "identifier"
	case ByProximityKeyword:
		return "proximity_keyword"
	default:
		return "unknown"
	}
}

// Intent is a parsed request that the Builder turns into a query.
type Intent struct {
	Kind     IntentKind
	Subject  string // ByIdentifier
	District string // district URI
	Category string // category URI
	Text     string // ByFreeText / ByProximityKeyword
	Limit    int
}

// Linked reports whether the intent was resolved against a dictionary.
func (i Intent) Linked() bool {
	return i.District != "" || i.Category != ""
}

// ParseSearch picks the search variant for raw query text. District and category
// are looked up independently; both resolving yields the conjunctive variant.
func (r *Resolver) ParseSearch(text string) Intent {
	text = strings.TrimSpace(text)
	district, hasDistrict := r.District(text)
	category, hasCategory := r.Category(text)

	switch {
	case hasDistrict && hasCategory:
		return Intent{Kind: ByDistrictAndCategory, District: district, Category: category}
	case hasCategory:
		return Intent{Kind: ByCategory, Category: category}
	case hasDistrict:
		return Intent{Kind: ByDistrict, District: district}
	default:
		return Intent{Kind: ByFreeText, Text: text}
	}
}
