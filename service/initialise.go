package service

import (
	"github.com/statsdigital/dp-region-peaks/config"
	"github.com/statsdigital/dp-region-peaks/sdk"
)

// ExternalServiceList holds the initialiser and initialisation state of external services.
type ExternalServiceList struct {
	StatisticsClient bool
	Init             Initialiser
}

// NewServiceList creates a new service list with the provided initialiser
func NewServiceList(initialiser Initialiser) *ExternalServiceList {
	return &ExternalServiceList{
		Init: initialiser,
	}
}

// Init implements the Initialiser interface to initialise dependencies
type Init struct{}

// GetStatisticsClient returns the statistics service client and sets the StatisticsClient flag to true
func (e *ExternalServiceList) GetStatisticsClient(cfg *config.Configuration) StatisticsClient {
	client := e.Init.DoGetStatisticsClient(cfg)
	e.StatisticsClient = true
	return client
}

// DoGetStatisticsClient creates a client for the statistics service with the configured timeout
func (e *Init) DoGetStatisticsClient(cfg *config.Configuration) StatisticsClient {
	return sdk.New(cfg.RequestTimeout)
}
