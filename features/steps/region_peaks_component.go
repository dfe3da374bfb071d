package steps

import (
	"bytes"
	"context"
	"time"

	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/statsdigital/dp-region-peaks/config"
	"github.com/statsdigital/dp-region-peaks/mocks"
	"github.com/statsdigital/dp-region-peaks/sdk"
	"github.com/statsdigital/dp-region-peaks/service"
)

// RegionPeaksComponent runs the report against a fake statistics service
type RegionPeaksComponent struct {
	ErrorFeature      ErrorFeature
	StatisticsService *mocks.StatisticsService
	Config            *config.Configuration
	Output            bytes.Buffer
	RunError          error
	regionCodes       []string
	regionNames       []string
}

// NewRegionPeaksComponent creates a component talking to the given fake service
func NewRegionPeaksComponent(statisticsService *mocks.StatisticsService) *RegionPeaksComponent {
	c := &RegionPeaksComponent{StatisticsService: statisticsService}
	c.Reset()
	return c
}

// Reset clears the state left by a previous scenario
func (c *RegionPeaksComponent) Reset() {
	c.ErrorFeature.Reset()
	c.Config = &config.Configuration{
		LogNamespace:    "dp-region-peaks",
		RequestTimeout:  5 * time.Second,
		ExcludedRegions: []string{},
		OutputFormat:    config.FormatText,
	}
	c.Output.Reset()
	c.RunError = nil
	c.regionCodes = nil
	c.regionNames = nil
}

// DoGetStatisticsClient returns a client for the fake service that does not retry
func (c *RegionPeaksComponent) DoGetStatisticsClient(cfg *config.Configuration) service.StatisticsClient {
	httpClient := dphttp.NewClient()
	httpClient.SetMaxRetries(0)
	httpClient.SetTimeout(cfg.RequestTimeout)
	return sdk.NewWithClienter(c.StatisticsService.URL(), httpClient)
}

func (c *RegionPeaksComponent) run() {
	c.RunError = service.Run(context.Background(), c.Config, service.NewServiceList(c), &c.Output)
}
