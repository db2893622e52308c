package domain

type SearchResult struct {
	URI         string `json:"uri"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
}

type SearchResponse struct {
	Results    []SearchResult `json:"results"`
	Total      int            `json:"total"`
	LinkedData bool           `json:"linkedData"`
}
