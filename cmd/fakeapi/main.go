package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-recovery-companion/internal/config"
	"github.com/MKhiriev/go-recovery-companion/internal/fakeapi"
	"github.com/MKhiriev/go-recovery-companion/internal/logger"
	"github.com/MKhiriev/go-recovery-companion/internal/server"
	"github.com/MKhiriev/go-recovery-companion/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("fakeapi")
	cfg, err := config.GetFakeAPIConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.Info().EmbedObject(buildInfo).Msg("starting fake API")

	log.Debug().
		Str("address", cfg.HTTPAddress).
		Str("issuer", cfg.TokenIssuer).
		Dur("access_ttl", cfg.AccessTokenDuration).
		Dur("refresh_ttl", cfg.RefreshTokenDuration).
		Msg("received configs")

	state, err := fakeapi.NewState(*cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error seeding fake API state")
	}
	handler := fakeapi.NewHandler(state, log)

	srv, err := server.NewServer(handler.Init(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("fake API server failed")
	}
}
