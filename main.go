package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"tokusound/cmd"
	"tokusound/config"
	"tokusound/services"
)

func main() {
	var (
		configPath string
		audit      bool
	)

	flag.StringVar(&configPath, "config", "tokusound.yaml", "Path to the configuration file")
	flag.BoolVar(&audit, "audit", false, "Audit the catalog against on-disk audio assets and exit")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(configPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	if audit {
		runAudit(cfg)
		return
	}

	cmd.StartWebServer(cfg)
}

// runAudit cross-checks the catalog against the sound files on disk and
// exits non-zero when any asset is missing or unreadable.
func runAudit(cfg *config.Config) {
	catalog, err := services.NewCatalogService(cfg.DataFile).Load()
	if err != nil {
		logrus.WithError(err).Fatal("cannot audit: catalog load failed")
	}

	result := services.AuditLibrary(catalog, cfg.PublicDir, true)

	for _, p := range result.Problems {
		fmt.Fprintf(os.Stderr, "%s: %s (%s)\n", p.SoundID, p.Reason, p.Path)
	}
	fmt.Printf("checked %d sounds: %d missing, %d unreadable\n",
		result.Checked, result.Missing, result.Unreadable)

	if !result.Clean() {
		os.Exit(1)
	}
}
