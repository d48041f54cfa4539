package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/plazza-health/catalogue-go/cmd/internal/config"
	"github.com/plazza-health/catalogue-go/cmd/internal/db/erpdb"
	db "github.com/plazza-health/catalogue-go/cmd/internal/db/sqlc"
	"github.com/plazza-health/catalogue-go/cmd/internal/server"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/catalogue"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/ingest"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/onboarding"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/refresolver"
	"github.com/plazza-health/catalogue-go/cmd/pkg/logging"

	_ "github.com/lib/pq"
)

func main() {
	logger := logging.GetLogger()
	logger.Info("Starting Plazza Catalogue API...")

	if err := godotenv.Load(); err != nil {
		logger.Warnf("Warning: error loading .env file: %v", err)
	}

	cfg := config.GetConfig()

	conn, err := sql.Open(cfg.Database.Driver, os.ExpandEnv(cfg.Database.Source))
	if err != nil {
		logger.Fatalf("error connecting to database: %v", err)
	}
	defer conn.Close()

	if err = conn.Ping(); err != nil {
		logger.Fatalf("error pinging database: %v", err)
	}
	logger.Info("Database connection established")

	store := db.NewStore(conn)

	// ERP-база опциональна: без нее сервис поднимается, но строки партий,
	// требующие цен, будут уходить в skip-отчет.
	var erpStore erpdb.Store
	if cfg.ErpDatabase.Source != "" {
		erpConn, err := sql.Open(cfg.ErpDatabase.Driver, os.ExpandEnv(cfg.ErpDatabase.Source))
		if err != nil {
			logger.Fatalf("error connecting to ERP database: %v", err)
		}
		defer erpConn.Close()

		if err = erpConn.Ping(); err != nil {
			logger.Fatalf("error pinging ERP database: %v", err)
		}
		logger.Info("ERP database connection established")
		erpStore = erpdb.NewStore(erpConn)
	} else {
		logger.Warn("ERP database is not configured - pricing lookups will return no matches")
	}

	resolver := refresolver.NewService(store, erpStore, logger)
	ingestService := ingest.NewService(store, resolver, logger, cfg.Ingest.ChunkSize)
	onboardingService := onboarding.NewService(store, erpStore, logger)
	catalogueService := catalogue.NewService(store, erpStore, logger)

	apiServer := server.NewServer(store, logger, ingestService, onboardingService, catalogueService, cfg)

	serverAddress := fmt.Sprintf("%s:%s", cfg.Listen.BindIP, cfg.Listen.Port)
	logger.Infof("Starting server on %s", serverAddress)

	srv := &http.Server{
		Addr:    serverAddress,
		Handler: apiServer.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutdown signal received")
		// Даем открытым запросам время завершиться, после чего
		// ListenAndServe возвращает ErrServerClosed и группа расходится.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
	logger.Info("server stopped gracefully")
}
