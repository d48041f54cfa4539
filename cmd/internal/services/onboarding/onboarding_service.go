package onboarding

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/plazza-health/catalogue-go/cmd/internal/api_models"
	"github.com/plazza-health/catalogue-go/cmd/internal/db/erpdb"
	db "github.com/plazza-health/catalogue-go/cmd/internal/db/sqlc"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/apierrors"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/collator"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/csvrows"
	"github.com/plazza-health/catalogue-go/cmd/pkg/logging"
)

// Service выполняет три стадии первичной загрузки каталога:
// метаданные товаров, прайс-лист дистрибьютора и сопоставление кодов.
type Service struct {
	store    db.Store
	erpStore erpdb.Store
	logger   *logging.Logger
}

func NewService(store db.Store, erpStore erpdb.Store, logger *logging.Logger) *Service {
	return &Service{
		store:    store,
		erpStore: erpStore,
		logger:   logger,
	}
}

// IngestMetadataCSV загружает CSV метаданных в original_all_products.
// Каждая строка вставляется отдельно: сбой одной не прерывает загрузку.
func (s *Service) IngestMetadataCSV(ctx context.Context, r io.Reader) (*api_models.OnboardingResult, error) {
	stageLogger := s.logger.WithField("stage", "metadata")

	rows, err := csvrows.DecodeAll[api_models.MetadataRow](r)
	if err != nil {
		return nil, err
	}

	result := &api_models.OnboardingResult{TotalRows: len(rows), Errors: []string{}}
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			result.ValidationFailures++
			result.Errors = append(result.Errors, err.Error())
			continue
		}

		params, err := metadataRowToParams(row)
		if err != nil {
			result.ValidationFailures++
			result.Errors = append(result.Errors, fmt.Sprintf("product %s: %v", row.ProductID, err))
			continue
		}

		if err := s.store.InsertOriginalProduct(ctx, params); err != nil {
			stageLogger.Errorf("metadata insert failed for %s: %v", row.ProductID, err)
			result.Errors = append(result.Errors, apierrors.NewPersistenceError(err, "failed to insert product %s", row.ProductID).Error())
			continue
		}
		result.SuccessfulInserts++
	}

	stageLogger.Infof("metadata onboarding done: total=%d inserted=%d failures=%d",
		result.TotalRows, result.SuccessfulInserts, result.ValidationFailures)
	return result, nil
}

// IngestDistributorCSV загружает прайс-лист в distributor_master_list.
// Для каждой строки считаются маржа, скидка и розничная цена.
// Без настроенной ERP-базы стадия невозможна.
func (s *Service) IngestDistributorCSV(ctx context.Context, r io.Reader) (*api_models.OnboardingResult, error) {
	if s.erpStore == nil {
		return nil, apierrors.NewValidationError("ERP database is not configured")
	}
	stageLogger := s.logger.WithField("stage", "distributor")

	rows, err := csvrows.DecodeAll[api_models.DistributorRow](r)
	if err != nil {
		return nil, err
	}

	result := &api_models.OnboardingResult{TotalRows: len(rows), Errors: []string{}}
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			result.ValidationFailures++
			result.Errors = append(result.Errors, err.Error())
			continue
		}

		params, err := distributorRowToParams(row)
		if err != nil {
			result.ValidationFailures++
			result.Errors = append(result.Errors, fmt.Sprintf("item %s: %v", row.ItemCode, err))
			continue
		}

		if err := s.erpStore.InsertDistributorPricing(ctx, params); err != nil {
			stageLogger.Errorf("pricing insert failed for %s: %v", row.ItemCode, err)
			result.Errors = append(result.Errors, apierrors.NewPersistenceError(err, "failed to insert item %s", row.ItemCode).Error())
			continue
		}
		result.SuccessfulInserts++
	}

	stageLogger.Infof("distributor onboarding done: total=%d inserted=%d failures=%d",
		result.TotalRows, result.SuccessfulInserts, result.ValidationFailures)
	return result, nil
}

// IngestMappingCSV сшивает product_id с item_code и создает записи каталога.
// В отличие от партии каталога здесь точечные выборки по каждой строке и
// нет ни дедупликации, ни проверки существующих записей: стадия
// предполагает чистый каталог.
func (s *Service) IngestMappingCSV(ctx context.Context, r io.Reader) (*api_models.OnboardingResult, error) {
	if s.erpStore == nil {
		return nil, apierrors.NewValidationError("ERP database is not configured")
	}
	stageLogger := s.logger.WithField("stage", "mapping")

	rows, err := csvrows.DecodeAll[api_models.MappingRow](r)
	if err != nil {
		return nil, err
	}

	result := &api_models.OnboardingResult{TotalRows: len(rows), Errors: []string{}}
	for _, row := range rows {
		if err := row.Validate(); err != nil {
			result.ValidationFailures++
			result.Errors = append(result.Errors, err.Error())
			continue
		}

		metadata, err := s.lookupMetadata(ctx, row.ProductID)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("product %s: %v", row.ProductID, err))
			continue
		}
		priceRow, found, err := s.lookupPricing(ctx, row.ItemCode)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("item %s: %v", row.ItemCode, err))
			continue
		}

		pricingMap := map[string]erpdb.DistributorMasterList{}
		if found {
			pricingMap[strings.ToLower(row.ItemCode)] = priceRow
		}

		inputRow := csvrows.Row{
			"product_id":      row.ProductID,
			"item_code":       row.ItemCode,
			"Store Inventory": row.StoreInventory,
			"Location":        row.Location,
		}
		params, skip := collator.Collate(inputRow, metadata, pricingMap)
		if skip != nil {
			result.SkippedRows++
			continue
		}

		if err := s.store.InsertCatalogueProduct(ctx, params); err != nil {
			stageLogger.Errorf("catalogue insert failed for %s: %v", row.ProductID, err)
			result.Errors = append(result.Errors, apierrors.NewPersistenceError(err, "failed to insert product %s", row.ProductID).Error())
			continue
		}
		result.SuccessfulInserts++
	}

	stageLogger.Infof("mapping onboarding done: total=%d inserted=%d skipped=%d",
		result.TotalRows, result.SuccessfulInserts, result.SkippedRows)
	return result, nil
}

func (s *Service) lookupMetadata(ctx context.Context, productID string) (map[string]db.OriginalAllProduct, error) {
	products, err := s.store.GetOriginalProductsByIDs(ctx, []string{productID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata: %w", err)
	}
	metadata := make(map[string]db.OriginalAllProduct, 1)
	for _, p := range products {
		metadata[p.ProductID] = p
	}
	return metadata, nil
}

func (s *Service) lookupPricing(ctx context.Context, itemCode string) (erpdb.DistributorMasterList, bool, error) {
	row, err := s.erpStore.GetDistributorPricingByItemCode(ctx, itemCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return erpdb.DistributorMasterList{}, false, nil
		}
		return erpdb.DistributorMasterList{}, false, fmt.Errorf("failed to fetch pricing: %w", err)
	}
	return row, true, nil
}
