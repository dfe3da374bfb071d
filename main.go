package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/statsdigital/dp-region-peaks/apierrors"
	"github.com/statsdigital/dp-region-peaks/config"
	"github.com/statsdigital/dp-region-peaks/service"
)

const serviceName = "dp-region-peaks"

func main() {
	log.Namespace = serviceName
	// stdout is reserved for the report
	log.SetDestination(os.Stderr, os.Stderr)

	ctx := context.Background()
	os.Exit(run(ctx, service.NewServiceList(&service.Init{}), os.Stdout, os.Stderr))
}

func run(ctx context.Context, serviceList *service.ExternalServiceList, stdout, stderr io.Writer) int {
	cfg, err := config.Get()
	if err != nil {
		log.Error(ctx, "error getting configuration", err)
		fmt.Fprintln(stderr, err)
		return apierrors.ExitFailure
	}
	log.Namespace = cfg.LogNamespace
	log.Info(ctx, "config on startup", log.Data{"config": cfg})

	if err := service.Run(ctx, cfg, serviceList, stdout); err != nil {
		fmt.Fprintln(stderr, apierrors.Message(err))
		return apierrors.ExitCode(err)
	}

	return apierrors.ExitOK
}
