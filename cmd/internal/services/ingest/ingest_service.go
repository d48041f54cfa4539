package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/plazza-health/catalogue-go/cmd/internal/api_models"
	db "github.com/plazza-health/catalogue-go/cmd/internal/db/sqlc"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/apierrors"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/collator"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/csvrows"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/refresolver"
	"github.com/plazza-health/catalogue-go/cmd/pkg/logging"
)

const defaultChunkSize = 50

// Причины пропуска, попадающие в skip-отчет.
const (
	reasonDuplicateInCSV  = "duplicate in CSV"
	reasonAlreadyExists   = "already exists"
	reasonMissingRequired = "missing required fields"
)

// Service — оркестратор партии: ведет строку CSV через дедупликацию,
// проверку существующих записей, обогащение справочниками и вставку.
type Service struct {
	store     db.Store
	resolver  *refresolver.Service
	logger    *logging.Logger
	chunkSize int
}

// NewService создает оркестратор. chunkSize <= 0 заменяется значением по умолчанию.
func NewService(store db.Store, resolver *refresolver.Service, logger *logging.Logger, chunkSize int) *Service {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	return &Service{
		store:     store,
		resolver:  resolver,
		logger:    logger,
		chunkSize: chunkSize,
	}
}

// IngestCatalogueCSV обрабатывает одну партию CSV каталога.
//
// Ошибка возвращается только при структурно битом CSV (ParseError) —
// все остальные сбои изолируются на уровне строки и попадают в итог.
// Пустой файл — не ошибка: фиксируется в Errors, база не трогается.
func (s *Service) IngestCatalogueCSV(ctx context.Context, r io.Reader) (*api_models.BatchResult, error) {
	uploadID := uuid.New().String()
	batchLogger := s.logger.WithField("upload_id", uploadID)

	result := &api_models.BatchResult{
		UploadID: uploadID,
		Errors:   []string{},
	}
	var skips []api_models.SkippedRow

	rows, dropped, err := drainRows(r)
	if err != nil {
		return nil, err
	}

	// Строки без обязательных полей не входят в total_rows (они не дошли
	// даже до валидации), но в skip-отчете присутствуют.
	for _, row := range dropped {
		result.SkippedMissingFields++
		skips = append(skips, newSkippedRow(row, reasonMissingRequired))
	}

	result.TotalRows = len(rows)
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "CSV file is empty")
		result.SkippedRowsCSV = RenderSkipReport(skips)
		batchLogger.Warn("catalogue batch contains no usable rows")
		return result, nil
	}

	// Дедупликация внутри партии: первая строка с product_id побеждает.
	seen := make(map[string]bool, len(rows))
	unique := make([]csvrows.Row, 0, len(rows))
	for _, row := range rows {
		id := row.Get("product_id")
		if seen[id] {
			result.DuplicateFailures++
			skips = append(skips, newSkippedRow(row, reasonDuplicateInCSV))
			continue
		}
		seen[id] = true
		unique = append(unique, row)
	}

	// Уже существующие в каталоге товары второй раз не вставляются.
	ids := make([]string, 0, len(unique))
	for _, row := range unique {
		ids = append(ids, row.Get("product_id"))
	}
	existingIDs, err := s.store.FindCatalogueProductIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing catalogue products: %w", err)
	}
	existing := make(map[string]bool, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = true
	}

	pending := make([]csvrows.Row, 0, len(unique))
	for _, row := range unique {
		if existing[row.Get("product_id")] {
			result.ExistingProducts++
			skips = append(skips, newSkippedRow(row, reasonAlreadyExists))
			continue
		}
		pending = append(pending, row)
	}

	for start := 0; start < len(pending); start += s.chunkSize {
		end := start + s.chunkSize
		if end > len(pending) {
			end = len(pending)
		}
		s.processChunk(ctx, pending[start:end], result, &skips, batchLogger)
	}

	result.SkippedRowsCSV = RenderSkipReport(skips)

	batchLogger.Infof(
		"catalogue batch done: total=%d inserted=%d duplicates=%d existing=%d no_metadata=%d no_pricing=%d errors=%d",
		result.TotalRows, result.SuccessfulInserts, result.DuplicateFailures,
		result.ExistingProducts, result.SkippedNoMetadata, result.SkippedNoPricing,
		len(result.Errors),
	)
	return result, nil
}

// processChunk обогащает один чанк справочниками и вставляет собранные записи.
// Сбой резолвера хоронит только этот чанк, сбой вставки — только одну строку.
func (s *Service) processChunk(ctx context.Context, chunk []csvrows.Row, result *api_models.BatchResult, skips *[]api_models.SkippedRow, logger *logging.Logger) {
	chunkIDs := make([]string, 0, len(chunk))
	chunkCodes := make([]string, 0, len(chunk))
	for _, row := range chunk {
		chunkIDs = append(chunkIDs, row.Get("product_id"))
		chunkCodes = append(chunkCodes, row.Get("item_code"))
	}

	metadata, err := s.resolver.ResolveMetadata(ctx, chunkIDs)
	if err != nil {
		logger.Errorf("metadata resolution failed for chunk: %v", err)
		result.Errors = append(result.Errors, fmt.Sprintf("metadata lookup failed for chunk starting at %s: %v", chunkIDs[0], err))
		return
	}
	pricing, err := s.resolver.ResolvePricing(ctx, chunkCodes)
	if err != nil {
		logger.Errorf("pricing resolution failed for chunk: %v", err)
		result.Errors = append(result.Errors, fmt.Sprintf("pricing lookup failed for chunk starting at %s: %v", chunkIDs[0], err))
		return
	}

	for _, row := range chunk {
		params, skip := collator.Collate(row, metadata, pricing)
		if skip != nil {
			switch skip.Kind {
			case collator.SkipNoMetadata:
				result.SkippedNoMetadata++
			case collator.SkipNoPricing:
				result.SkippedNoPricing++
			}
			*skips = append(*skips, newSkippedRow(row, skip.Reason))
			continue
		}

		if err := s.store.InsertCatalogueProduct(ctx, params); err != nil {
			persistErr := apierrors.NewPersistenceError(err, "failed to insert product %s", params.ProductID)
			if isUniqueViolation(err) {
				persistErr = apierrors.NewPersistenceError(err, "unique violation on product %s", params.ProductID)
			}
			logger.Errorf("catalogue insert failed: %v", persistErr)
			result.Errors = append(result.Errors, persistErr.Error())
			continue
		}
		result.SuccessfulInserts++
	}
}

// drainRows вычитывает весь CSV в память. Пайплайн намеренно не потоковый:
// дедупликация и проверка существующих требуют полного списка строк.
func drainRows(r io.Reader) ([]csvrows.Row, []csvrows.Row, error) {
	reader := csvrows.NewRowReader(r, "product_id", "item_code")
	var rows []csvrows.Row
	for {
		row, err := reader.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return rows, reader.Dropped(), nil
			}
			return nil, nil, err
		}
		rows = append(rows, row)
	}
}

func newSkippedRow(row csvrows.Row, reason string) api_models.SkippedRow {
	return api_models.SkippedRow{
		ProductID:      row.Get("product_id"),
		ItemCode:       row.Get("item_code"),
		Reason:         reason,
		ErrorTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
