package refresolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/plazza-health/catalogue-go/cmd/internal/db/erpdb"
	db "github.com/plazza-health/catalogue-go/cmd/internal/db/sqlc"
	"github.com/plazza-health/catalogue-go/cmd/pkg/logging"
)

// Service резолвит строки партии против двух справочников:
// метаданных товара (основная база) и прайс-листа дистрибьютора (ERP).
type Service struct {
	store    db.Store
	erpStore erpdb.Store
	logger   *logging.Logger
}

// NewService создает резолвер. erpStore может быть nil — тогда
// ResolvePricing всегда возвращает пустую карту.
func NewService(store db.Store, erpStore erpdb.Store, logger *logging.Logger) *Service {
	return &Service{
		store:    store,
		erpStore: erpStore,
		logger:   logger,
	}
}

// ResolveMetadata возвращает карту product_id -> метаданные товара.
// Ключи, которых нет в базе, в карте отсутствуют.
func (s *Service) ResolveMetadata(ctx context.Context, productIDs []string) (map[string]db.OriginalAllProduct, error) {
	result := make(map[string]db.OriginalAllProduct, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	products, err := s.store.GetOriginalProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product metadata batch: %w", err)
	}

	for _, p := range products {
		result[p.ProductID] = p
	}
	return result, nil
}

// ResolvePricing возвращает карту item_code (в нижнем регистре) -> строка
// прайс-листа. Сопоставление регистронезависимое и идет по двум колонкам:
// item_code и original_item_code. Если один код встречается в прайс-листе
// несколько раз, побеждает строка с меньшим id ("первое совпадение").
func (s *Service) ResolvePricing(ctx context.Context, itemCodes []string) (map[string]erpdb.DistributorMasterList, error) {
	result := make(map[string]erpdb.DistributorMasterList, len(itemCodes))
	if s.erpStore == nil || len(itemCodes) == 0 {
		return result, nil
	}

	requested := make(map[string]bool, len(itemCodes))
	lowered := make([]string, 0, len(itemCodes))
	for _, code := range itemCodes {
		lc := strings.ToLower(code)
		if lc == "" || requested[lc] {
			continue
		}
		requested[lc] = true
		lowered = append(lowered, lc)
	}

	pricing, err := s.erpStore.FindDistributorPricingByCodes(ctx, lowered)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch distributor pricing batch: %w", err)
	}

	for _, row := range pricing {
		for _, key := range []string{strings.ToLower(row.ItemCode), strings.ToLower(row.OriginalItemCode.String)} {
			if key == "" || !requested[key] {
				continue
			}
			if _, ok := result[key]; ok {
				continue
			}
			result[key] = row
		}
	}
	return result, nil
}
