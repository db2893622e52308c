package knowledge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animalloo/animalloo-backend/internal/domain"
	"github.com/animalloo/animalloo-backend/internal/knowledge"
	"github.com/animalloo/animalloo-backend/internal/knowledge/knowledgetest"
	"github.com/animalloo/animalloo-backend/internal/platform/sparql"
)

var row = knowledgetest.Row

func TestLocalName(t *testing.T) {
	assert.Equal(t, "BeautySalon", knowledge.LocalName("http://knowledgemap.kr/koah/def/BeautySalon"))
	assert.Equal(t, "label", knowledge.LocalName("http://www.w3.org/2000/01/rdf-schema#label"))
	assert.Equal(t, "Monday", knowledge.LocalName("http://schema.org/Monday"))
	assert.Equal(t, "동물병원", knowledge.LocalName("동물병원"))
	assert.Equal(t, "http://example.org/x/y", knowledge.LocalName("http://example.org/x/y"))
}

func TestFacilityRecordRoundTrip(t *testing.T) {
	rows := []sparql.Binding{row(
		"subject", "http://knowledgemap.kr/koah/facility/7",
		"label", "해피 펫 미용",
		"category", "http://knowledgemap.kr/koah/def/BeautySalon",
		"address", "서울 강남구 테헤란로 1",
		"phone", "02-123-4567",
		"lat", "37.5012",
		"lng", "127.0396",
		"description", "소형견 전문",
	)}

	got := knowledge.FacilityRecords(rows)
	require.Len(t, got, 1)
	lat, lng := 37.5012, 127.0396
	assert.Equal(t, domain.FacilityRecord{
		ID:          "http://knowledgemap.kr/koah/facility/7",
		Name:        "해피 펫 미용",
		Category:    "BeautySalon",
		Address:     "서울 강남구 테헤란로 1",
		Tel:         "02-123-4567",
		Lat:         &lat,
		Lng:         &lng,
		Description: "소형견 전문",
	}, got[0])
}

func TestFacilityRecordDefaults(t *testing.T) {
	got := knowledge.FacilityRecords([]sparql.Binding{row(
		"subject", "http://knowledgemap.kr/koah/facility/8",
		"label", "이름만 있는 시설",
		"lat", "not-a-number",
	)})
	require.Len(t, got, 1)
	assert.Equal(t, knowledge.CategoryOther, got[0].Category)
	assert.Nil(t, got[0].Lat)
	assert.Nil(t, got[0].Lng)
}

// Later rows for an already seen subject are discarded even when they carry
// values the first row lacks.
func TestDedupKeepsFirstOccurrence(t *testing.T) {
	rows := []sparql.Binding{
		row("subject", "http://knowledgemap.kr/koah/facility/1", "label", "첫번째"),
		row("subject", "http://knowledgemap.kr/koah/facility/2", "label", "두번째"),
		row("subject", "http://knowledgemap.kr/koah/facility/1", "label", "첫번째", "phone", "02-000-0000"),
	}

	got := knowledge.SearchResults(rows)
	require.Len(t, got, 2)
	assert.Equal(t, "http://knowledgemap.kr/koah/facility/1", got[0].URI)
	assert.Empty(t, got[0].Phone)
	assert.Equal(t, "http://knowledgemap.kr/koah/facility/2", got[1].URI)
}

func TestDedupIsIdempotent(t *testing.T) {
	rows := []sparql.Binding{
		row("subject", "http://a.example/1", "label", "a"),
		row("subject", "http://a.example/1", "label", "b"),
		row("subject", "http://a.example/2", "label", "c"),
		row("label", "no subject"),
	}
	once := knowledge.DedupBySubject(rows, "subject")
	twice := knowledge.DedupBySubject(once, "subject")
	assert.Equal(t, once, twice)
	assert.Equal(t, knowledge.SearchResults(rows), knowledge.SearchResults(once))
}

func TestSearchResultFallsBackToAddress(t *testing.T) {
	got := knowledge.SearchResults([]sparql.Binding{row(
		"subject", "http://knowledgemap.kr/koah/facility/3",
		"label", "동물약국",
		"type", "http://knowledgemap.kr/koah/def/AnimalFacility",
		"address", "서울 송파구 올림픽로 300",
	)})
	require.Len(t, got, 1)
	assert.Equal(t, "서울 송파구 올림픽로 300", got[0].Description)
	assert.Equal(t, "AnimalFacility", got[0].Type)
	assert.Equal(t, knowledge.CategoryOther, got[0].Category)
}

func TestDetailProperties(t *testing.T) {
	rows := []sparql.Binding{
		row("p", "http://www.w3.org/2000/01/rdf-schema#label", "o", "행복 동물병원"),
		row("p", "http://www.w3.org/1999/02/22-rdf-syntax-ns#type", "o", "http://knowledgemap.kr/koah/def/AnimalFacility"),
		row("p", "http://schema.org/telephone", "o", "02-111-1111"),
		row("p", "http://schema.org/telephone", "o", "02-222-2222"),
		row("p", "http://schema.org/telephone", "o", "02-111-1111"),
	}
	got := knowledge.DetailProperties(rows)
	assert.Equal(t, "행복 동물병원", got["label"])
	assert.Equal(t, "AnimalFacility", got["type"])
	assert.Equal(t, "02-111-1111, 02-222-2222", got["telephone"])
	assert.Equal(t, knowledge.CategoryOther, got["facilityType"])
}

func TestPetNameStatsSortsByCount(t *testing.T) {
	got := knowledge.PetNameStats([]sparql.Binding{
		row("name", "코코", "count", "12"),
		row("name", "보리", "count", "40"),
		row("name", "깨진값", "count", "n/a"),
		row("name", "두부", "count", "12"),
	})
	assert.Equal(t, []domain.PetNameStat{
		{Name: "보리", Count: 40},
		{Name: "코코", Count: 12},
		{Name: "두부", Count: 12},
	}, got)
}
