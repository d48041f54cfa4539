package catalogue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/plazza-health/catalogue-go/cmd/internal/api_models"
	"github.com/plazza-health/catalogue-go/cmd/internal/db/erpdb"
	db "github.com/plazza-health/catalogue-go/cmd/internal/db/sqlc"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/apierrors"
	"github.com/plazza-health/catalogue-go/cmd/internal/util"
	"github.com/plazza-health/catalogue-go/cmd/pkg/logging"
)

// Service — точечные операции над записями каталога.
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

// GetProduct возвращает запись каталога по product_id.
func (s *Service) GetProduct(ctx context.Context, productID string) (db.CatalogueProduct, error) {
	product, err := s.store.GetCatalogueProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return db.CatalogueProduct{}, apierrors.NewNotFoundError("product %s not found", productID)
		}
		return db.CatalogueProduct{}, fmt.Errorf("failed to fetch product %s: %w", productID, err)
	}
	return product, nil
}

// UpdateProduct частично обновляет запись каталога.
// Смена dist_item_code пересчитывает ценовые поля из ERP-прайс-листа:
// код без цены — ошибка валидации, запись не трогается.
func (s *Service) UpdateProduct(ctx context.Context, productID string, req api_models.UpdateProductRequest) (db.CatalogueProduct, error) {
	params := db.UpdateCatalogueProductParams{
		ProductID:         productID,
		DistItemCode:      util.NullableString(req.DistItemCode),
		Name:              util.NullableString(req.Name),
		Mrp:               util.NullableFloat64(req.Mrp),
		InventoryQuantity: util.NullableInt32(req.InventoryQuantity),
		IsActive:          util.NullableBool(req.IsActive),
		DeferredAllowed:   util.NullableBool(req.DeferredAllowed),
	}

	if req.DistItemCode != nil {
		priceRow, err := s.resolvePricing(ctx, *req.DistItemCode)
		if err != nil {
			return db.CatalogueProduct{}, err
		}
		params.DistributorMrp = priceRow.Mrp
		params.PlazzaSellingPriceInclGst = priceRow.PlazzaSellingPriceInclGst
		params.EffectiveCustomerDiscount = priceRow.EffectiveCustomerDiscount
		params.Distributor = priceRow.Distributor
		params.GstRate = priceRow.GstRate
		params.HsnCode = priceRow.HsnCode
	}

	product, err := s.store.UpdateCatalogueProduct(ctx, params)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return db.CatalogueProduct{}, apierrors.NewNotFoundError("product %s not found", productID)
		}
		return db.CatalogueProduct{}, fmt.Errorf("failed to update product %s: %w", productID, err)
	}

	s.logger.WithField("product_id", productID).Info("catalogue product updated")
	return product, nil
}

// DeleteProduct удаляет запись каталога.
func (s *Service) DeleteProduct(ctx context.Context, productID string) error {
	affected, err := s.store.DeleteCatalogueProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if affected == 0 {
		return apierrors.NewNotFoundError("product %s not found", productID)
	}
	s.logger.WithField("product_id", productID).Info("catalogue product deleted")
	return nil
}

// Stats возвращает размеры всех справочников для /api/stats.
func (s *Service) Stats(ctx context.Context) (map[string]int64, error) {
	catalogueCount, err := s.store.GetCatalogueCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count catalogue products: %w", err)
	}
	metadataCount, err := s.store.GetOriginalProductsCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count original products: %w", err)
	}

	stats := map[string]int64{
		"catalogue_products": catalogueCount,
		"original_products":  metadataCount,
	}
	if s.erpStore != nil {
		pricingCount, err := s.erpStore.GetDistributorPricingCount(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count distributor pricing: %w", err)
		}
		stats["distributor_pricing"] = pricingCount
	}
	return stats, nil
}

func (s *Service) resolvePricing(ctx context.Context, itemCode string) (erpdb.DistributorMasterList, error) {
	if s.erpStore == nil {
		return erpdb.DistributorMasterList{}, apierrors.NewValidationError("ERP database is not configured")
	}
	row, err := s.erpStore.GetDistributorPricingByItemCode(ctx, itemCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return erpdb.DistributorMasterList{}, apierrors.NewValidationError("no pricing found for item code %s", itemCode)
		}
		return erpdb.DistributorMasterList{}, fmt.Errorf("failed to fetch pricing for %s: %w", itemCode, err)
	}
	return row, nil
}
