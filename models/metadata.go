package models

// Dimension codes used by the unemployment table
const (
	RegionDimensionCode   = "Region"
	ContentsDimensionCode = "ContentsCode"
	TimeDimensionCode     = "Tid"
)

// DimensionDescriptor represents one queryable dimension (variable) of a dataset. When Values is
// present, ValueTexts holds the display text for the code at the same index.
type DimensionDescriptor struct {
	Code       string   `json:"code"`
	Text       string   `json:"text"`
	Values     []string `json:"values,omitempty"`
	ValueTexts []string `json:"valueTexts,omitempty"`
	Time       bool     `json:"time,omitempty"`
	TypeName   string   `json:"typeName,omitempty"`
}

// DatasetMetadata represents the description of a dataset returned by a metadata request
type DatasetMetadata struct {
	Title     string                `json:"title"`
	Variables []DimensionDescriptor `json:"variables"`
}

// Dimension returns the dimension with the given code and whether it was found
func (m DatasetMetadata) Dimension(code string) (DimensionDescriptor, bool) {
	for _, v := range m.Variables {
		if v.Code == code {
			return v, true
		}
	}
	return DimensionDescriptor{}, false
}
