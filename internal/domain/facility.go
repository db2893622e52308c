package domain

// FacilityRecord is the API shape of one pet facility. It is rebuilt from the
// graph on every request.
type FacilityRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Address     string   `json:"address"`
	Tel         string   `json:"tel"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Description string   `json:"desc"`
}

// FacilityDetail is the flattened predicate/value map of one subject plus its
// rendered opening hours under "hours".
type FacilityDetail map[string]string

type OperatingHoursEntry struct {
	Weekday string
	Open    string
	Close   string
}
