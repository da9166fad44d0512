package main

import (
	"fmt"

	"github.com/MKhiriev/rdp-keeper/internal/client"
	"github.com/MKhiriev/rdp-keeper/internal/config"
	"github.com/MKhiriev/rdp-keeper/internal/crypto"
	"github.com/MKhiriev/rdp-keeper/internal/launcher"
	"github.com/MKhiriev/rdp-keeper/internal/logger"
	"github.com/MKhiriev/rdp-keeper/internal/store"
	"github.com/MKhiriev/rdp-keeper/internal/tui"
	"github.com/MKhiriev/rdp-keeper/internal/vault"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		log := logger.NewClientLogger("rdp-keeper", "")
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("rdp-keeper", cfg.Log.Level)

	keychain := crypto.NewKeyChainService()
	containerStore := store.NewContainerStore(cfg.Vault.Path)
	session := vault.NewSession(keychain, containerStore, log)

	clientLauncher := launcher.New(cfg.Client.Command, log)

	ui := tui.New(session, clientLauncher, cfg.Vault.LegacyPath, log)

	app := client.NewApp(session, ui, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
