package models

// SuppressedValue marks a value that is suppressed or unavailable
const SuppressedValue = ".."

// Annotation is a footnote attached to a dimension value
type Annotation struct {
	Variable string `json:"variable"`
	Value    string `json:"value"`
	Comment  string `json:"comment"`
}

// Row holds the dimension value codes of one cell (region, year) and the raw measure values
type Row struct {
	Key    []string `json:"key"`
	Values []string `json:"values"`
}

// Region returns the region code of the row
func (r Row) Region() string {
	return r.Key[0]
}

// Year returns the time period of the row
func (r Row) Year() string {
	return r.Key[1]
}

// Suppressed reports whether the first measure value is the ".." marker
func (r Row) Suppressed() bool {
	return r.Values[0] == SuppressedValue
}

// Table represents the full response to a data query
type Table struct {
	Columns  []DimensionDescriptor `json:"columns"`
	Comments []Annotation          `json:"comments"`
	Data     []Row                 `json:"data"`
}
