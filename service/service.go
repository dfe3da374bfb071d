package service

import (
	"context"
	"io"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/statsdigital/dp-region-peaks/aggregate"
	"github.com/statsdigital/dp-region-peaks/config"
	"github.com/statsdigital/dp-region-peaks/models"
	"github.com/statsdigital/dp-region-peaks/output"
)

// Run fetches the table metadata and data, works out the leading regions of every year and writes
// them to w. Each step only starts once the previous one has succeeded; nothing is written unless
// every year could be computed.
func Run(ctx context.Context, cfg *config.Configuration, serviceList *ExternalServiceList, w io.Writer) error {
	client := serviceList.GetStatisticsClient(cfg)

	meta, err := client.GetMetadata(ctx)
	if err != nil {
		log.Error(ctx, "failed to get table metadata", err)
		return err
	}
	log.Info(ctx, "table metadata received", log.Data{"title": meta.Title, "dimensions": len(meta.Variables)})

	lookup, err := aggregate.NewRegionLookup(meta)
	if err != nil {
		log.Error(ctx, "failed to build region lookup", err)
		return err
	}

	table, err := client.QueryTable(ctx, models.NewQuery(models.MeasureCountry))
	if err != nil {
		log.Error(ctx, "failed to query table", err, log.Data{"measure": models.MeasureCountry})
		return err
	}

	leaders, err := aggregate.Leaders(ctx, table, lookup, aggregate.ExcludeRegions(cfg.ExcludedRegions...))
	if err != nil {
		log.Error(ctx, "failed to compute leading regions", err)
		return err
	}
	log.Info(ctx, "leading regions computed", log.Data{"years": len(leaders), "regions": len(lookup)})

	if cfg.OutputFormat == config.FormatJSON {
		return output.WriteJSON(w, leaders)
	}
	return output.WriteText(w, leaders)
}
