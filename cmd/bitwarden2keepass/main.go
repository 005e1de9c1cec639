package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/bitwarden2keepass/internal/bitwarden"
	"github.com/MKhiriev/bitwarden2keepass/internal/config"
	"github.com/MKhiriev/bitwarden2keepass/internal/convert"
	"github.com/MKhiriev/bitwarden2keepass/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("bitwarden2keepass")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("db", cfg.Database.Path).Str("totp-db", cfg.TOTPDatabase.Path).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	vault := bitwarden.NewCLIClient(cfg.Bitwarden, bitwarden.NewExecRunner(), log)
	provider := convert.NewSQLiteProvider(log)

	converter := convert.NewConverter(vault, provider, cfg, log)
	if err := converter.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("conversion failed")
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
