package service

import (
	"context"

	"github.com/statsdigital/dp-region-peaks/config"
	"github.com/statsdigital/dp-region-peaks/models"
)

//go:generate moq -out mock/initialiser.go -pkg mock . Initialiser
//go:generate moq -out mock/statistics_client.go -pkg mock . StatisticsClient

// Initialiser defines the methods to initialise external services
type Initialiser interface {
	DoGetStatisticsClient(cfg *config.Configuration) StatisticsClient
}

// StatisticsClient defines the required methods from the statistics service client
type StatisticsClient interface {
	GetMetadata(ctx context.Context) (models.DatasetMetadata, error)
	QueryTable(ctx context.Context, query models.Query) (models.Table, error)
}
