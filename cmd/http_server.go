package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"

	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/auth"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/core/events"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/department"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/organization"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/project"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/refdata"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/staff"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/task"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/team"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/tenant"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/internal/transport/rest"
	"github.com/radek-zitek-cloud/bumasys-beta-sub002/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	Tenants  *tenant.Manager
	Router   *chi.Mux
	Logger   *slog.Logger
	Handlers rest.Handlers
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.Handlers, deps.Config.Storage.DataDir, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr, "tag", deps.Tenants.CurrentTag())

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	lg := logger.LoggerWrapper()

	tenants, err := tenant.New(config.Storage.DataDir, config.Storage.DefaultTag, lg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tenant manager: %w", err)
	}
	db := tenants.Database()

	bus := events.NewEventBus(lg)
	registerAuditLog(bus, lg)

	hasher := auth.NewPasswordHasher(config.Security.BCryptCost)
	authService := auth.NewService(
		db,
		hasher,
		config.Security.JWTSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
		lg,
		bus,
	)

	handlers := rest.Handlers{
		Auth:         auth.NewHandler(authService),
		Tenant:       tenant.NewHandler(tenants, bus),
		Organization: organization.NewHandler(organization.NewService(db, lg)),
		Department:   department.NewHandler(department.NewService(db, lg)),
		Staff:        staff.NewHandler(staff.NewService(db, lg)),
		Team:         team.NewHandler(team.NewService(db, lg)),
		Project:      project.NewHandler(project.NewService(db, lg)),
		Task:         task.NewHandler(task.NewService(db, lg)),
		RefData:      refdata.NewHandler(refdata.NewService(db, lg)),
	}

	return &Dependencies{
		Config:   config,
		Tenants:  tenants,
		Router:   chi.NewRouter(),
		Logger:   lg,
		Handlers: handlers,
	}, nil
}

// registerAuditLog subscribes a structured-log sink for security relevant
// events.
func registerAuditLog(bus *events.EventBus, lg *slog.Logger) {
	sink := func(ctx context.Context, event events.Event) error {
		lg.Info("audit",
			"event_type", event.EventType(),
			"event_id", event.EventID(),
			"occurred_at", event.OccurredAt(),
			"payload", event.Payload())
		return nil
	}

	bus.Subscribe(events.EventTypeUserRegistered, sink)
	bus.Subscribe(events.EventTypeSessionsRevoked, sink)
	bus.Subscribe(events.EventTypeTagSwitched, sink)
	bus.Subscribe(events.EventTypeBackupCreated, sink)
}
