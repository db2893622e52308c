package sparql

import "strings"

// Value is one RDF term in a result row.
type Value struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"xml:lang,omitempty"`
}

// Binding maps a projected variable name to its term. Unbound variables are absent.
type Binding map[string]Value

// Get returns the lexical value of name, or "" when unbound.
func (b Binding) Get(name string) string {
	if b == nil {
		return ""
	}
	return b[name].Value
}

// Has reports whether name is bound to a non-blank value.
func (b Binding) Has(name string) bool {
	return strings.TrimSpace(b.Get(name)) != ""
}

// IsIRI reports whether name is bound to a URI term.
func (b Binding) IsIRI(name string) bool {
	return b != nil && b[name].Type == "uri"
}

type resultsDocument struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results *struct {
		Bindings []Binding `json:"bindings"`
	} `json:"results"`
	Boolean *bool `json:"boolean"`
}
