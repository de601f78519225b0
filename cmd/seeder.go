package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/auth"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/refdata"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/tenant"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the stores with sample data",
	Long:  `Seed an admin user and default reference data for development and testing purposes.`,
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
		db := tenants.Database()

		hasher := auth.NewPasswordHasher(cfg.Security.BCryptCost)
		authService := auth.NewService(db, hasher, cfg.Security.JWTSecret,
			cfg.Security.AccessTokenDuration, cfg.Security.RefreshTokenDuration, lg, nil)

		adminEmail := "admin@example.com"
		note := "seeded admin account"
		if _, err := authService.Register(auth.RegisterDTO{
			Email:    adminEmail,
			Password: "password",
			Note:     &note,
		}); err != nil {
			fmt.Printf("admin user not created (%v), continuing\n", err)
		} else {
			fmt.Printf("seeded admin user %s\n", adminEmail)
		}

		ref := refdata.NewService(db, lg)
		for _, name := range []string{"New", "In Progress", "Blocked", "Done"} {
			if _, err := ref.CreateStatus(name); err != nil {
				fmt.Printf("status %q not created (%v)\n", name, err)
			}
		}
		for _, name := range []string{"Low", "Medium", "High", "Critical"} {
			if _, err := ref.CreatePriority(name); err != nil {
				fmt.Printf("priority %q not created (%v)\n", name, err)
			}
		}
		for _, name := range []string{"Trivial", "Moderate", "Complex"} {
			if _, err := ref.CreateComplexity(name); err != nil {
				fmt.Printf("complexity %q not created (%v)\n", name, err)
			}
		}

		fmt.Println("seeding complete")
	},
}
