package aggregate

import (
	"context"
	"math"
	"sort"
	"strconv"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/pkg/errors"
	"github.com/statsdigital/dp-region-peaks/apierrors"
	"github.com/statsdigital/dp-region-peaks/models"
)

type options struct {
	excluded map[string]struct{}
}

// Option configures Leaders
type Option func(*options)

// ExcludeRegions drops the rows of the given region codes before the maximum is taken, e.g. the
// national total.
func ExcludeRegions(codes ...string) Option {
	return func(o *options) {
		for _, code := range codes {
			o.excluded[code] = struct{}{}
		}
	}
}

// Leaders returns, for every year of the table in ascending order, the regions sharing the highest
// percentage. Suppressed values are ignored and a year without any reported value is skipped. An
// unknown region code or a non-numeric value fails the whole table.
func Leaders(ctx context.Context, table models.Table, lookup RegionLookup, opts ...Option) ([]models.YearLeaders, error) {
	o := options{excluded: map[string]struct{}{}}
	for _, opt := range opts {
		opt(&o)
	}

	observations := make(map[string][]models.RegionObservation)
	years := make([]string, 0)

	for i, row := range table.Data {
		if len(row.Key) < 2 || len(row.Values) == 0 {
			return nil, errors.Wrapf(apierrors.ErrDecode, "row %d has key %v and values %v", i, row.Key, row.Values)
		}

		year := row.Year()
		if _, ok := observations[year]; !ok {
			years = append(years, year)
			observations[year] = nil
		}

		if row.Suppressed() {
			continue
		}
		if _, ok := o.excluded[row.Region()]; ok {
			continue
		}

		obs, err := observe(row, lookup)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		observations[year] = append(observations[year], obs)
	}

	sort.Strings(years)

	leaders := make([]models.YearLeaders, 0, len(years))
	for _, year := range years {
		if len(observations[year]) == 0 {
			log.Info(ctx, "skipping year without reported values", log.Data{"year": year})
			continue
		}
		leaders = append(leaders, top(year, observations[year]))
	}

	return leaders, nil
}

func observe(row models.Row, lookup RegionLookup) (models.RegionObservation, error) {
	name, err := lookup.Name(row.Region())
	if err != nil {
		return models.RegionObservation{}, err
	}

	pct, err := strconv.ParseFloat(row.Values[0], 64)
	if err != nil || math.IsNaN(pct) || math.IsInf(pct, 0) {
		return models.RegionObservation{}, errors.Wrapf(apierrors.ErrInvalidPercentage, "value %q", row.Values[0])
	}

	return models.RegionObservation{Region: name, Percentage: pct}, nil
}

// top keeps a running maximum and every region that reaches it, in row order. Values parsed from
// the same decimal string are identical, so ties use exact equality.
func top(year string, observations []models.RegionObservation) models.YearLeaders {
	leaders := models.YearLeaders{Year: year, Percentage: observations[0].Percentage}
	for _, obs := range observations {
		switch {
		case obs.Percentage > leaders.Percentage:
			leaders.Percentage = obs.Percentage
			leaders.Regions = []string{obs.Region}
		case obs.Percentage == leaders.Percentage:
			leaders.Regions = append(leaders.Regions, obs.Region)
		}
	}
	return leaders
}
