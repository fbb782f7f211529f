package main

import (
	"context"
	"fmt"

	"github.com/linonetwo/tw-mobile-sync/internal/app"
	"github.com/linonetwo/tw-mobile-sync/internal/config"
	"github.com/linonetwo/tw-mobile-sync/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewDaemonLogger("tw-mobile-sync")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	coordinator, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}

	if err = coordinator.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("application exited with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
