package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchPrecedence(t *testing.T) {
	r := NewResolver(defaultDicts(t))

	cases := []struct {
		text string
		kind IntentKind
	}{
		{"강남구 미용", ByDistrictAndCategory},
		{"미용실 추천", ByCategory},
		{"강남구", ByDistrict},
		{"행복한 멍멍이", ByFreeText},
	}
	for _, tc := range cases {
		in := r.ParseSearch(tc.text)
		assert.Equal(t, tc.kind, in.Kind, tc.text)
		assert.Equal(t, tc.kind != ByFreeText, in.Linked(), tc.text)
	}

	in := r.ParseSearch("강남구 미용")
	assert.Equal(t, gangnamURI, in.District)
	assert.Equal(t, salonURI, in.Category)
}

func TestBuildDistrictAndCategoryIsConjunctive(t *testing.T) {
	q, err := NewBuilder().Build(Intent{Kind: ByDistrictAndCategory, District: gangnamURI, Category: salonURI})
	require.NoError(t, err)

	assert.Contains(t, q, "?subject koad:Gu <"+gangnamURI+"> .")
	assert.Contains(t, q, "?subject koah:facilityType <"+salonURI+"> .")
	assert.NotContains(t, q, "OPTIONAL { ?subject koad:Gu")
	assert.Contains(t, q, "ORDER BY ?subject")
	assert.True(t, strings.HasPrefix(q, "PREFIX koah:"))
}

func TestBuildFacilitiesMatchesBothTypeNamespaces(t *testing.T) {
	q, err := NewBuilder().Build(Intent{Kind: ByDistrict, District: gangnamURI})
	require.NoError(t, err)

	assert.Contains(t, q, "PREFIX koahLegacy: <https://knowledgemap.kr/koah/def/>")
	assert.Contains(t, q, "VALUES ?type { koah:AnimalFacility koahLegacy:AnimalFacility }")
	assert.Contains(t, q, "?subject a ?type ;")
	assert.NotContains(t, q, "BIND(")
}

func TestBuildSingleFilterVariants(t *testing.T) {
	b := NewBuilder()

	q, err := b.Build(Intent{Kind: ByCategory, Category: hospURI})
	require.NoError(t, err)
	assert.Contains(t, q, "koah:facilityType <"+hospURI+">")
	assert.NotContains(t, q, "koad:Gu")

	q, err = b.Build(Intent{Kind: ByDistrict, District: gangnamURI})
	require.NoError(t, err)
	assert.Contains(t, q, "koad:Gu <"+gangnamURI+">")
	assert.NotContains(t, q, "?subject koah:facilityType <")

	_, err = b.Build(Intent{Kind: ByDistrict})
	assert.Error(t, err)
	_, err = b.Build(Intent{Kind: ByCategory, District: gangnamURI})
	assert.Error(t, err)
}

func TestBuildFreeTextStripsQuotes(t *testing.T) {
	q, err := NewBuilder().Build(Intent{Kind: ByFreeText, Text: `멍멍") } ; DROP ALL #'`})
	require.NoError(t, err)

	assert.Contains(t, q, `LCASE("멍멍) } ; DROP ALL #")`)
	assert.NotContains(t, q, `멍멍")`)
	assert.Contains(t, q, "UNION")
	assert.Equal(t, 2, strings.Count(q, "OPTIONAL { ?subject schema:telephone ?phone . }"))
	assert.Contains(t, q, "LIMIT 50")
}

func TestBuildRejectsEmptyOrUnsafeInput(t *testing.T) {
	b := NewBuilder()

	_, err := b.Build(Intent{Kind: ByFreeText, Text: ` "" `})
	assert.ErrorIs(t, err, ErrEmptyKeyword)

	_, err = b.Build(Intent{Kind: ByIdentifier, Subject: "http://example.org/a> } DROP ALL { <x"})
	assert.ErrorIs(t, err, ErrInvalidIRI)

	_, err = b.Build(Intent{Kind: ByIdentifier, Subject: "urn:isbn:123"})
	assert.ErrorIs(t, err, ErrInvalidIRI)

	_, err = b.Hours("")
	assert.ErrorIs(t, err, ErrInvalidIRI)

	_, err = b.Build(Intent{Kind: IntentKind(42)})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestBuildHoursChecksBothShapes(t *testing.T) {
	subject := "http://knowledgemap.kr/koah/facility/42"
	q, err := NewBuilder().Hours(subject)
	require.NoError(t, err)

	assert.Contains(t, q, "<"+subject+"> schema:dayOfWeek ?day")
	assert.Contains(t, q, "<"+subject+"> schema:openingHoursSpecification ?hours")
	assert.Contains(t, q, "?hours schema:dayOfWeek ?day")
	assert.Contains(t, q, "UNION")
}

func TestBuildProximityEscapesRegex(t *testing.T) {
	q, err := NewBuilder().Build(Intent{Kind: ByProximityKeyword, Text: "a.b(c)"})
	require.NoError(t, err)
	assert.Contains(t, q, `REGEX(STR(?o), "a\\.b\\(c\\)", "i")`)
	assert.Contains(t, q, "LIMIT 50")
}

func TestBuildMedicalRisksAndPetNames(t *testing.T) {
	b := NewBuilder()

	q, err := b.MedicalRisks(dogURI)
	require.NoError(t, err)
	assert.Contains(t, q, "?disease koah:animal <"+dogURI+">")
	assert.Contains(t, q, "COALESCE(?label1, ?label2, ?label3, ?label4")
	assert.Contains(t, q, "LIMIT 10")

	q, err = b.PetNames("송파구")
	require.NoError(t, err)
	assert.Contains(t, q, `CONTAINS(STR(?s), "/stat/송파구/")`)
	assert.Contains(t, q, "ORDER BY DESC(xsd:integer(?count))")

	_, err = b.PetNames("../x/")
	assert.Error(t, err)
}
