package models

// Measure codes of the ME0104T4 table
const (
	MeasureCountry      = "ME0104B8"
	MeasureCounty       = "ME0104C5"
	MeasureMunicipality = "ME0104C6"
)

const (
	wildcard     = "*"
	filterAll    = "all"
	filterItem   = "item"
	formatJSON   = "json"
	formatOption = "format"
)

// Query is the body of a data request
type Query struct {
	Query    []QueryFilter     `json:"query"`
	Response map[string]string `json:"response"`
}

// QueryFilter selects values of one dimension
type QueryFilter struct {
	Code      string         `json:"code"`
	Selection QuerySelection `json:"selection"`
}

// QuerySelection describes how values of a dimension are selected
type QuerySelection struct {
	Filter string   `json:"filter"`
	Values []string `json:"values"`
}

// NewQuery returns a query selecting every region and every time period for a single measure, with
// the response requested as json
func NewQuery(measure string) Query {
	return Query{
		Query: []QueryFilter{
			{Code: RegionDimensionCode, Selection: QuerySelection{Filter: filterAll, Values: []string{wildcard}}},
			{Code: ContentsDimensionCode, Selection: QuerySelection{Filter: filterItem, Values: []string{measure}}},
			{Code: TimeDimensionCode, Selection: QuerySelection{Filter: filterAll, Values: []string{wildcard}}},
		},
		Response: map[string]string{formatOption: formatJSON},
	}
}
