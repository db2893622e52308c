package knowledge

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed dictionaries.yaml
var embeddedDictionaries []byte

// Entry is one surface form and the URI it stands for.
type Entry struct {
	Term string
	URI  string
}

// Dictionary is an immutable, ordered term table. Order is significant:
// Resolve returns the first entry whose term occurs in the input.
type Dictionary struct {
	entries []Entry
	exact   map[string]string
}

func NewDictionary(entries ...Entry) Dictionary {
	d := Dictionary{
		entries: make([]Entry, 0, len(entries)),
		exact:   make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		if e.Term == "" || e.URI == "" {
			continue
		}
		if _, dup := d.exact[e.Term]; dup {
			continue
		}
		d.entries = append(d.entries, e)
		d.exact[e.Term] = e.URI
	}
	return d
}

// Resolve returns the URI of the first entry, in declared order, whose term is a
// case-sensitive substring of text.
func (d Dictionary) Resolve(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	for _, e := range d.entries {
		if strings.Contains(text, e.Term) {
			return e.URI, true
		}
	}
	return "", false
}

// Lookup matches term exactly.
func (d Dictionary) Lookup(term string) (string, bool) {
	uri, ok := d.exact[term]
	return uri, ok
}

func (d Dictionary) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

func (d Dictionary) Len() int { return len(d.entries) }

// Dictionaries groups the three term tables used by search and enrichment.
type Dictionaries struct {
	Species    Dictionary
	Districts  Dictionary
	Categories Dictionary
}

var (
	defaultOnce sync.Once
	defaultDict Dictionaries
	defaultErr  error
)

// DefaultDictionaries returns the embedded tables, parsed once.
func DefaultDictionaries() (Dictionaries, error) {
	defaultOnce.Do(func() {
		defaultDict, defaultErr = ParseDictionaries(embeddedDictionaries)
	})
	return defaultDict, defaultErr
}

// LoadDictionaries reads tables from path, or the embedded ones when path is empty.
func LoadDictionaries(path string) (Dictionaries, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultDictionaries()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dictionaries{}, fmt.Errorf("read dictionaries: %w", err)
	}
	return ParseDictionaries(raw)
}

// ParseDictionaries decodes YAML through nodes so that mapping order survives.
func ParseDictionaries(raw []byte) (Dictionaries, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Dictionaries{}, fmt.Errorf("parse dictionaries: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return Dictionaries{}, fmt.Errorf("parse dictionaries: empty document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return Dictionaries{}, fmt.Errorf("parse dictionaries: top level must be a mapping")
	}

	var out Dictionaries
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		entries, err := orderedEntries(name, root.Content[i+1])
		if err != nil {
			return Dictionaries{}, err
		}
		switch name {
		case "species":
			out.Species = NewDictionary(entries...)
		case "districts":
			out.Districts = NewDictionary(entries...)
		case "categories":
			out.Categories = NewDictionary(entries...)
		default:
			return Dictionaries{}, fmt.Errorf("parse dictionaries: unknown section %q", name)
		}
	}
	return out, nil
}

func orderedEntries(section string, node *yaml.Node) ([]Entry, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse dictionaries: section %q must be a mapping", section)
	}
	entries := make([]Entry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("parse dictionaries: %s.%s must be a string", section, k.Value)
		}
		if !validIRI(v.Value) {
			return nil, fmt.Errorf("parse dictionaries: %s.%s has invalid uri %q", section, k.Value, v.Value)
		}
		entries = append(entries, Entry{Term: k.Value, URI: v.Value})
	}
	return entries, nil
}
