package knowledge

import (
	"sort"
	"strconv"
	"strings"

	"github.com/animalloo/animalloo-backend/internal/domain"
	"github.com/animalloo/animalloo-backend/internal/platform/sparql"
)

// LocalName strips a recognised namespace from v, keeping the text after the
// last '/' or '#'. Values outside the known namespaces are returned unchanged.
func LocalName(v string) string {
	v = strings.TrimSpace(v)
	if !hasKnownNamespace(v) {
		return v
	}
	if i := strings.LastIndexAny(v, "/#"); i >= 0 && i < len(v)-1 {
		return v[i+1:]
	}
	return v
}

func hasKnownNamespace(v string) bool {
	for _, ns := range knownNamespaces {
		if strings.HasPrefix(v, ns) {
			return true
		}
	}
	return false
}

// NormalizeSubject rewrites the legacy https knowledgemap base to http.
func NormalizeSubject(uri string) string {
	if strings.HasPrefix(uri, legacyKnowledgemapBase) {
		return knowledgemapBase + strings.TrimPrefix(uri, legacyKnowledgemapBase)
	}
	return uri
}

// DedupBySubject keeps the first row seen for each value of key. Later rows for
// the same subject are dropped even when they carry other values.
func DedupBySubject(rows []sparql.Binding, key string) []sparql.Binding {
	seen := make(map[string]struct{}, len(rows))
	out := make([]sparql.Binding, 0, len(rows))
	for _, row := range rows {
		id := row.Get(key)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, row)
	}
	return out
}

func categoryOf(row sparql.Binding) string {
	if c := LocalName(row.Get("category")); c != "" {
		return c
	}
	return CategoryOther
}

// FacilityRecords converts facility rows into API records, one per subject.
func FacilityRecords(rows []sparql.Binding) []domain.FacilityRecord {
	rows = DedupBySubject(rows, "subject")
	out := make([]domain.FacilityRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.FacilityRecord{
			ID:          row.Get("subject"),
			Name:        row.Get("label"),
			Category:    categoryOf(row),
			Address:     row.Get("address"),
			Tel:         row.Get("phone"),
			Lat:         parseFloat(row.Get("lat")),
			Lng:         parseFloat(row.Get("lng")),
			Description: row.Get("description"),
		})
	}
	return out
}

// SearchResults converts search rows into results, one per subject.
func SearchResults(rows []sparql.Binding) []domain.SearchResult {
	rows = DedupBySubject(rows, "subject")
	out := make([]domain.SearchResult, 0, len(rows))
	for _, row := range rows {
		desc := row.Get("description")
		if strings.TrimSpace(desc) == "" {
			desc = row.Get("address")
		}
		out = append(out, domain.SearchResult{
			URI:         row.Get("subject"),
			Label:       row.Get("label"),
			Type:        LocalName(row.Get("type")),
			Description: desc,
			Category:    categoryOf(row),
			Address:     row.Get("address"),
			Phone:       row.Get("phone"),
		})
	}
	return out
}

// DetailProperties flattens ?p ?o rows into a map keyed by predicate local name.
// Type and category objects are de-prefixed. Repeated predicates keep their
// distinct values in order, joined with ", ".
func DetailProperties(rows []sparql.Binding) domain.FacilityDetail {
	values := make(map[string][]string)
	var order []string
	for _, row := range rows {
		key := LocalName(row.Get("p"))
		if key == "" {
			continue
		}
		val := row.Get("o")
		if key == "type" || key == "facilityType" {
			val = LocalName(val)
		}
		if _, ok := values[key]; !ok {
			order = append(order, key)
		}
		if !containsString(values[key], val) {
			values[key] = append(values[key], val)
		}
	}
	out := make(domain.FacilityDetail, len(order)+1)
	for _, k := range order {
		out[k] = strings.Join(values[k], ", ")
	}
	if _, ok := out["facilityType"]; !ok {
		out["facilityType"] = CategoryOther
	}
	return out
}

// PetNameStats reads ?name ?count rows, sorted by count descending. Rows with
// a non-numeric count are dropped.
func PetNameStats(rows []sparql.Binding) []domain.PetNameStat {
	out := make([]domain.PetNameStat, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Get("name"))
		n, err := strconv.Atoi(strings.TrimSpace(row.Get("count")))
		if name == "" || err != nil {
			continue
		}
		out = append(out, domain.PetNameStat{Name: name, Count: n})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
