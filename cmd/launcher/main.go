package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/fabric-launcher/internal/client"
	"github.com/MKhiriev/fabric-launcher/internal/config"
	"github.com/MKhiriev/fabric-launcher/internal/logger"
	"github.com/MKhiriev/fabric-launcher/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetLauncherConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("fabric-launcher").Fatal().Err(err).Msg("error getting configs")
	}

	var log *logger.Logger
	if cfg.Headless() {
		log = logger.NewLogger("fabric-launcher")
	} else {
		log = logger.NewClientLogger("fabric-launcher", cfg.Log.File)
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init launcher app error")
	}

	if err = app.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("launcher run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
