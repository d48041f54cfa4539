package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/plazza-health/catalogue-go/cmd/internal/config"
	"github.com/plazza-health/catalogue-go/cmd/internal/db/erpdb"
	db "github.com/plazza-health/catalogue-go/cmd/internal/db/sqlc"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/ingest"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/refresolver"
	"github.com/plazza-health/catalogue-go/cmd/pkg/logging"

	_ "github.com/lib/pq"
)

// Одноразовый запуск коллации каталога против локального CSV.
// Делает то же, что POST /api/v1/catalogue/upload-csv, но пишет
// skip-отчет рядом с входным файлом.
func main() {
	logger := logging.GetLogger()
	logger.Info("Catalogue Collation Tool")

	csvPath := flag.String("csv", "", "путь к CSV партии каталога")
	batchSize := flag.Int("batch-size", 0, "размер чанка (по умолчанию из конфига)")
	flag.Parse()

	if *csvPath == "" {
		logger.Fatal("flag --csv is required")
	}

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

	var erpStore erpdb.Store
	if cfg.ErpDatabase.Source != "" {
		// Пароль ERP-базы подставляется из окружения; если его нет —
		// спрашиваем без отображения на экране.
		if strings.Contains(cfg.ErpDatabase.Source, "${ERP_DB_PASSWORD}") && os.Getenv("ERP_DB_PASSWORD") == "" {
			fmt.Print("Enter ERP database password: ")
			passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				logger.Fatalf("failed to read password: %v", err)
			}
			fmt.Println()
			os.Setenv("ERP_DB_PASSWORD", string(passwordBytes))
		}

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

	store := db.NewStore(conn)
	resolver := refresolver.NewService(store, erpStore, logger)

	chunkSize := cfg.Ingest.ChunkSize
	if *batchSize > 0 {
		chunkSize = *batchSize
	}
	ingestService := ingest.NewService(store, resolver, logger, chunkSize)

	file, err := os.Open(*csvPath)
	if err != nil {
		logger.Fatalf("failed to open csv file: %v", err)
	}
	defer file.Close()

	result, err := ingestService.IngestCatalogueCSV(context.Background(), file)
	if err != nil {
		logger.Fatalf("batch failed: %v", err)
	}

	fmt.Println("==== Collation Summary ====")
	fmt.Printf("  Upload ID:              %s\n", result.UploadID)
	fmt.Printf("  Total rows:             %d\n", result.TotalRows)
	fmt.Printf("  Successful inserts:     %d\n", result.SuccessfulInserts)
	fmt.Printf("  Duplicates in CSV:      %d\n", result.DuplicateFailures)
	fmt.Printf("  Already in catalogue:   %d\n", result.ExistingProducts)
	fmt.Printf("  Missing metadata:       %d\n", result.SkippedNoMetadata)
	fmt.Printf("  Missing pricing:        %d\n", result.SkippedNoPricing)
	fmt.Printf("  Missing required cols:  %d\n", result.SkippedMissingFields)
	fmt.Printf("  Errors:                 %d\n", len(result.Errors))
	for _, e := range result.Errors {
		fmt.Printf("    - %s\n", e)
	}

	if result.SkippedRowsCSV != "" {
		reportPath := skipReportPath(*csvPath)
		if err := os.WriteFile(reportPath, []byte(result.SkippedRowsCSV), 0o644); err != nil {
			logger.Fatalf("failed to write skip report: %v", err)
		}
		fmt.Printf("  Skip report:            %s\n", reportPath)
	}
}

func skipReportPath(csvPath string) string {
	dir := filepath.Dir(csvPath)
	base := strings.TrimSuffix(filepath.Base(csvPath), filepath.Ext(csvPath))
	stamp := time.Now().Format("20060102_150405")
	return filepath.Join(dir, fmt.Sprintf("%s_skipped_%s.csv", base, stamp))
}
