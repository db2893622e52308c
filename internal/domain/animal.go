package domain

// MedicalRisk is a disease associated with a species and, optionally, the
// symptom it is filed under.
type MedicalRisk struct {
	Disease string `json:"disease"`
	Symptom string `json:"symptom,omitempty"`
}

func (r MedicalRisk) String() string {
	if r.Symptom == "" {
		return r.Disease
	}
	return r.Disease + " (" + r.Symptom + ")"
}

type KnowledgeGraphInfo struct {
	Species      string   `json:"species"`
	MedicalRisks []string `json:"medical_risks"`
}

// AnimalRow is one upstream shelter record. Upstream fields are passed through
// untouched; knowledge_graph is added on the way out.
type AnimalRow map[string]any

type AnimalPage struct {
	ListTotalCount int         `json:"list_total_count"`
	Row            []AnimalRow `json:"row"`
}

type PetNameStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
