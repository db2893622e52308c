package knowledge

const (
	NSKoah   = "http://knowledgemap.kr/koah/def/"
	NSKoad   = "http://vocab.datahub.kr/def/administrative-division/"
	NSSchema = "http://schema.org/"
	NSSkos   = "http://www.w3.org/2004/02/skos/core#"
	NSRDF    = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRDFS   = "http://www.w3.org/2000/01/rdf-schema#"
	NSXSD    = "http://www.w3.org/2001/XMLSchema#"
	NSWD     = "http://www.wikidata.org/entity/"

	// Facilities loaded from the older dump are typed under the https base.
	NSKoahLegacy = legacyKnowledgemapBase + "koah/def/"

	// Legacy subject prefix that still appears in parts of the graph.
	legacyKnowledgemapBase = "https://knowledgemap.kr/"
	knowledgemapBase       = "http://knowledgemap.kr/"

	// CategoryOther is used when a facility has no category relation.
	CategoryOther = "기타"
)

// Prefixes is prepended to every generated query.
const Prefixes = `PREFIX koah: <` + NSKoah + `>
PREFIX koahLegacy: <` + NSKoahLegacy + `>
PREFIX koad: <` + NSKoad + `>
PREFIX schema: <` + NSSchema + `>
PREFIX skos: <` + NSSkos + `>
PREFIX rdf: <` + NSRDF + `>
PREFIX rdfs: <` + NSRDFS + `>
PREFIX xsd: <` + NSXSD + `>
PREFIX wd: <` + NSWD + `>
`

var knownNamespaces = []string{
	NSKoah, NSKoad, NSSchema, NSSkos, NSRDF, NSRDFS, NSXSD, NSWD,
	"http://knowledgemap.kr/",
	legacyKnowledgemapBase,
	"https://schema.org/",
}
