package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/tenant"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/pkg/logger"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot both stores to a timestamped archive",
	Long:  `Write a timestamped archive containing the identity store and the active workspace store into the data directory.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
		lg := logger.LoggerWrapper()

		tenants, err := tenant.New(cfg.Storage.DataDir, cfg.Storage.DefaultTag, lg)
		if err != nil {
			log.Fatalf("failed to init tenant manager: %v", err)
		}

		path, err := tenants.Backup()
		if err != nil {
			log.Fatalf("backup failed: %v", err)
		}
		fmt.Printf("backup written to %s\n", path)
	},
}
