package knowledge

// Resolver maps free text onto graph identifiers using injected dictionaries.
type Resolver struct {
	dicts Dictionaries
}

func NewResolver(d Dictionaries) *Resolver {
	return &Resolver{dicts: d}
}

// Resolve returns the URI of the first entry of dict whose term occurs in text.
func Resolve(text string, dict Dictionary) (string, bool) {
	return dict.Resolve(text)
}

func (r *Resolver) Species(text string) (string, bool)  { return Resolve(text, r.dicts.Species) }
func (r *Resolver) District(text string) (string, bool) { return Resolve(text, r.dicts.Districts) }
func (r *Resolver) Category(text string) (string, bool) { return Resolve(text, r.dicts.Categories) }

// DistrictByName matches a district name exactly, as used by the ?gu= parameters.
func (r *Resolver) DistrictByName(name string) (string, bool) {
	return r.dicts.Districts.Lookup(name)
}
