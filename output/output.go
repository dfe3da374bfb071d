// Package output writes the yearly leaders to the console.
package output

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/statsdigital/dp-region-peaks/models"
)

// WriteText writes one line per year: the year, each leading region followed by ", " and the
// percentage, e.g. "2015 Stockholm, 8.3%".
func WriteText(w io.Writer, leaders []models.YearLeaders) error {
	var sb strings.Builder
	for _, l := range leaders {
		sb.WriteString(l.Year)
		sb.WriteString(" ")
		for _, region := range l.Regions {
			sb.WriteString(region)
			sb.WriteString(", ")
		}
		sb.WriteString(FormatPercentage(l.Percentage))
		sb.WriteString("%\n")
	}

	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "failed to write leaders")
}

// WriteJSON writes the leaders as an indented json array
func WriteJSON(w io.Writer, leaders []models.YearLeaders) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(leaders), "failed to encode leaders")
}

// FormatPercentage returns the shortest decimal that parses back to the same value
func FormatPercentage(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
