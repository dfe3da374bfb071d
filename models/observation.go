package models

// RegionObservation is a single non-suppressed percentage for a named region within one year
type RegionObservation struct {
	Region     string
	Percentage float64
}

// YearLeaders represents the regions sharing the highest percentage of a year
type YearLeaders struct {
	Year       string   `json:"year"`
	Regions    []string `json:"regions"`
	Percentage float64  `json:"percentage"`
}
