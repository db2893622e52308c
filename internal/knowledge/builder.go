package knowledge

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"text/template"
)

const (
	DefaultSearchLimit    = 100
	DefaultFreeTextLimit  = 50
	DefaultFacilityLimit  = 500
	GroundingLimit        = 50
	MedicalRiskLimit      = 10
	PetNameStatisticLimit = 10
)

var (
	ErrInvalidIRI   = errors.New("invalid iri")
	ErrEmptyKeyword = errors.New("empty keyword")
	ErrUnknownKind  = errors.New("unknown intent kind")
)

// Builder renders every query the service issues. It is the only place user
// supplied text is interpolated into query text.
type Builder struct {
	tmpl *template.Template
}

var queryTemplates = map[string]string{
	"facilities": `SELECT ?subject ?label ?type ?category ?address ?phone ?lat ?lng ?description WHERE {
  VALUES ?type { koah:AnimalFacility koahLegacy:AnimalFacility }
  ?subject a ?type ;
           rdfs:label ?label .
{{- if .District }}
  ?subject koad:Gu {{ iri .District }} .
{{- end }}
{{- if .Category }}
  ?subject koah:facilityType {{ iri .Category }} .
{{- end }}
  OPTIONAL { ?subject koah:facilityType ?category . }
  OPTIONAL { ?subject schema:streetAddress ?address . }
  OPTIONAL { ?subject schema:telephone ?phone . }
  OPTIONAL { ?subject schema:latitude ?lat . }
  OPTIONAL { ?subject schema:longitude ?lng . }
  OPTIONAL { ?subject schema:description ?description . }
}
ORDER BY ?subject
LIMIT {{ .Limit }}`,

	"freetext": `SELECT ?subject ?label ?type ?category ?address ?phone ?description WHERE {
  {
    ?subject rdfs:label ?label .
    FILTER(CONTAINS(LCASE(STR(?label)), LCASE({{ literal .Text }})))
    OPTIONAL { ?subject schema:streetAddress ?address . }
    OPTIONAL { ?subject schema:telephone ?phone . }
  }
  UNION
  {
    ?subject schema:streetAddress ?address ;
             rdfs:label ?label .
    FILTER(CONTAINS(LCASE(STR(?address)), LCASE({{ literal .Text }})))
    OPTIONAL { ?subject schema:telephone ?phone . }
  }
  OPTIONAL { ?subject rdf:type ?type . }
  OPTIONAL { ?subject koah:facilityType ?category . }
  OPTIONAL { ?subject schema:description ?description . }
  OPTIONAL { ?subject rdfs:comment ?description . }
}
ORDER BY ?subject
LIMIT {{ .Limit }}`,

	"properties": `SELECT ?p ?o WHERE {
  {{ iri .Subject }} ?p ?o .
}
ORDER BY ?p ?o`,

	"hours": `SELECT ?day ?open ?close WHERE {
  {
    {{ iri .Subject }} schema:dayOfWeek ?day .
    OPTIONAL { {{ iri .Subject }} schema:opens ?open . }
    OPTIONAL { {{ iri .Subject }} schema:closes ?close . }
  }
  UNION
  {
    {{ iri .Subject }} schema:openingHoursSpecification ?hours .
    ?hours schema:dayOfWeek ?day .
    OPTIONAL { ?hours schema:opens ?open . }
    OPTIONAL { ?hours schema:closes ?close . }
  }
}`,

	"proximity": `SELECT ?s ?o WHERE {
  ?s ?p ?o .
  FILTER(isLiteral(?o) && REGEX(STR(?o), {{ regex .Text }}, "i"))
}
ORDER BY ?s
LIMIT {{ .Limit }}`,

	"risks": `SELECT ?disease ?diseaseName ?symptomName WHERE {
  ?disease koah:animal {{ iri .Subject }} .
  OPTIONAL {
    ?disease skos:broader ?symptom .
    ?symptom rdfs:label ?symptomName .
  }
  OPTIONAL { ?disease rdfs:label ?label1 . }
  OPTIONAL { ?disease skos:prefLabel ?label2 . }
  OPTIONAL { ?disease schema:name ?label3 . }
  OPTIONAL { ?disease koah:name ?label4 . }
  BIND(COALESCE(?label1, ?label2, ?label3, ?label4, "") AS ?diseaseName)
}
ORDER BY ?disease
LIMIT {{ .Limit }}`,

	"petnames": `SELECT ?name ?count WHERE {
  ?s a koah:PetNameStatistic ;
     rdfs:label ?name ;
     rdf:value ?count .
  FILTER(CONTAINS(STR(?s), {{ literal .Path }}))
}
ORDER BY DESC(xsd:integer(?count)) ?name
LIMIT {{ .Limit }}`,
}

func NewBuilder() *Builder {
	root := template.New("queries").Funcs(template.FuncMap{
		"iri":     formatIRI,
		"literal": formatLiteral,
		"regex":   formatRegex,
	})
	for name, body := range queryTemplates {
		template.Must(root.New(name).Parse(body))
	}
	return &Builder{tmpl: root}
}

// Build renders the query for intent. For ByIdentifier it returns the property
// query; the operating-hours query comes from Hours.
func (b *Builder) Build(in Intent) (string, error) {
	switch in.Kind {
	case ByDistrictAndCategory, ByCategory, ByDistrict:
		if err := checkIRIs(in.District, in.Category); err != nil {
			return "", err
		}
		if in.Kind != ByCategory && in.District == "" {
			return "", fmt.Errorf("%s: district required", in.Kind)
		}
		if in.Kind != ByDistrict && in.Category == "" {
			return "", fmt.Errorf("%s: category required", in.Kind)
		}
		return b.render("facilities", struct {
			District, Category string
			Limit              int
		}{in.District, in.Category, limitOr(in.Limit, DefaultSearchLimit)})
	case ByFreeText:
		text := SanitizeText(in.Text)
		if text == "" {
			return "", ErrEmptyKeyword
		}
		return b.render("freetext", struct {
			Text  string
			Limit int
		}{text, limitOr(in.Limit, DefaultFreeTextLimit)})
	case ByIdentifier:
		if err := checkIRIs(in.Subject); err != nil || in.Subject == "" {
			return "", fmt.Errorf("%w: %q", ErrInvalidIRI, in.Subject)
		}
		return b.render("properties", struct{ Subject string }{in.Subject})
	case ByProximityKeyword:
		text := SanitizeText(in.Text)
		if text == "" {
			return "", ErrEmptyKeyword
		}
		return b.render("proximity", struct {
			Text  string
			Limit int
		}{text, limitOr(in.Limit, GroundingLimit)})
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownKind, in.Kind)
	}
}

// Facilities lists every facility in a district, with coordinates.
func (b *Builder) Facilities(districtURI string) (string, error) {
	return b.Build(Intent{Kind: ByDistrict, District: districtURI, Limit: DefaultFacilityLimit})
}

// Hours checks both the direct and the linked hours-node shapes.
func (b *Builder) Hours(subject string) (string, error) {
	if subject == "" || !validIRI(subject) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIRI, subject)
	}
	return b.render("hours", struct{ Subject string }{subject})
}

func (b *Builder) MedicalRisks(speciesURI string) (string, error) {
	if speciesURI == "" || !validIRI(speciesURI) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIRI, speciesURI)
	}
	return b.render("risks", struct {
		Subject string
		Limit   int
	}{speciesURI, MedicalRiskLimit})
}

// PetNames selects name statistics stored under /stat/<district>/.
func (b *Builder) PetNames(district string) (string, error) {
	district = SanitizeText(district)
	if district == "" || strings.ContainsAny(district, "/") {
		return "", ErrEmptyKeyword
	}
	return b.render("petnames", struct {
		Path  string
		Limit int
	}{"/stat/" + district + "/", PetNameStatisticLimit})
}

func (b *Builder) render(name string, data any) (string, error) {
	var sb strings.Builder
	sb.WriteString(Prefixes)
	if err := b.tmpl.ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("render %s query: %w", name, err)
	}
	return sb.String(), nil
}

func limitOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func checkIRIs(iris ...string) error {
	for _, v := range iris {
		if v != "" && !validIRI(v) {
			return fmt.Errorf("%w: %q", ErrInvalidIRI, v)
		}
	}
	return nil
}

// validIRI accepts absolute http(s) IRIs without characters that would end an IRIREF.
func validIRI(v string) bool {
	if v == "" || strings.ContainsAny(v, "<>\"{}|^`\\ \t\r\n") {
		return false
	}
	u, err := url.Parse(v)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func formatIRI(v string) (string, error) {
	if !validIRI(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIRI, v)
	}
	return "<" + v + ">", nil
}

var textCleaner = strings.NewReplacer(
	`"`, "",
	`'`, "",
	`\`, "",
	"\r", " ",
	"\n", " ",
	"\t", " ",
)

// SanitizeText strips quote characters, backslashes and line breaks from user text.
func SanitizeText(s string) string {
	return strings.TrimSpace(textCleaner.Replace(s))
}

func formatLiteral(v string) string {
	return `"` + SanitizeText(v) + `"`
}

func formatRegex(v string) string {
	escaped := regexp.QuoteMeta(SanitizeText(v))
	return `"` + strings.ReplaceAll(escaped, `\`, `\\`) + `"`
}
