package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-recovery-companion/internal/adapter"
	"github.com/MKhiriev/go-recovery-companion/internal/client"
	"github.com/MKhiriev/go-recovery-companion/internal/config"
	"github.com/MKhiriev/go-recovery-companion/internal/logger"
	"github.com/MKhiriev/go-recovery-companion/internal/service"
	"github.com/MKhiriev/go-recovery-companion/internal/store"
	"github.com/MKhiriev/go-recovery-companion/internal/tui"
	"github.com/MKhiriev/go-recovery-companion/internal/workers"
	"github.com/MKhiriev/go-recovery-companion/models"
)

const (
	role              = "recovery-client"
	noticeQueueLength = 16
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewClientLogger(role, "")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.LogFile != "" {
		log = logger.NewClientLogger(role, cfg.App.LogFile)
	}
	log.Info().EmbedObject(buildInfo).Msg("starting client")

	log.Debug().
		Str("api", cfg.Adapter.HTTPAddress).
		Dur("request_timeout", cfg.Adapter.RequestTimeout).
		Dur("token_check_interval", cfg.Workers.TokenCheckInterval).
		Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	notifier := tui.NewNotifier(noticeQueueLength)

	apiClient, err := adapter.NewClient(cfg.Adapter, storages.SessionRepository, log, adapter.WithNotifier(notifier))
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	services := service.NewClientServices(storages.SessionRepository, adapter.NewHTTPServerAdapter(apiClient), log)

	ui, err := tui.New(services, notifier, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, workers.NewClientWorkers(cfg.Workers, services), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	runErr := app.Run()
	if err = storages.Close(); err != nil {
		log.Err(err).Msg("close local storage")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("client run error")
	}
}
