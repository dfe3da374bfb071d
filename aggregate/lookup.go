package aggregate

import (
	"github.com/pkg/errors"
	"github.com/statsdigital/dp-region-peaks/apierrors"
	"github.com/statsdigital/dp-region-peaks/models"
)

// RegionLookup maps region codes to their display names
type RegionLookup map[string]string

// NewRegionLookup builds the lookup from the metadata's region dimension. The dimension coded
// "Region" is used; when there is none the first dimension is assumed to hold the regions.
func NewRegionLookup(meta models.DatasetMetadata) (RegionLookup, error) {
	dim, ok := meta.Dimension(models.RegionDimensionCode)
	if !ok {
		if len(meta.Variables) == 0 {
			return nil, errors.Wrap(apierrors.ErrRegionDimension, "metadata has no dimensions")
		}
		dim = meta.Variables[0]
	}

	if dim.Values == nil || dim.ValueTexts == nil {
		return nil, errors.Wrapf(apierrors.ErrRegionDimension, "dimension %q has no values or value texts", dim.Code)
	}

	if len(dim.Values) != len(dim.ValueTexts) {
		return nil, errors.Wrapf(apierrors.ErrRegionDimension, "dimension %q has %d values but %d value texts",
			dim.Code, len(dim.Values), len(dim.ValueTexts))
	}

	lookup := make(RegionLookup, len(dim.Values))
	for i, code := range dim.Values {
		lookup[code] = dim.ValueTexts[i]
	}

	return lookup, nil
}

// Name returns the display name of a region code
func (l RegionLookup) Name(code string) (string, error) {
	name, ok := l[code]
	if !ok {
		return "", errors.Wrapf(apierrors.ErrRegionNotFound, "region %q", code)
	}
	return name, nil
}
