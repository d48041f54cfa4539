package catalogue

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/plazza-health/catalogue-go/cmd/internal/api_models"
	"github.com/plazza-health/catalogue-go/cmd/internal/db/erpdb"
	db "github.com/plazza-health/catalogue-go/cmd/internal/db/sqlc"
	"github.com/plazza-health/catalogue-go/cmd/internal/mocks"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/apierrors"
	"github.com/plazza-health/catalogue-go/cmd/pkg/logging"
)

func newTestService(t *testing.T) (*Service, *mocks.MockStore, *mocks.MockErpStore) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	erpStore := mocks.NewMockErpStore(ctrl)
	return NewService(store, erpStore, logging.GetLogger()), store, erpStore
}

func TestGetProduct(t *testing.T) {
	t.Run("существующий товар", func(t *testing.T) {
		svc, store, _ := newTestService(t)
		store.EXPECT().
			GetCatalogueProduct(gomock.Any(), "P1").
			Return(db.CatalogueProduct{ProductID: "P1"}, nil)

		product, err := svc.GetProduct(context.Background(), "P1")

		require.NoError(t, err)
		assert.Equal(t, "P1", product.ProductID)
	})

	t.Run("отсутствующий товар дает NotFoundError", func(t *testing.T) {
		svc, store, _ := newTestService(t)
		store.EXPECT().
			GetCatalogueProduct(gomock.Any(), "P404").
			Return(db.CatalogueProduct{}, sql.ErrNoRows)

		_, err := svc.GetProduct(context.Background(), "P404")

		var notFound *apierrors.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestUpdateProduct(t *testing.T) {
	t.Run("частичное обновление не трогает остальные поля", func(t *testing.T) {
		// GIVEN: обновляется только инвентарь
		svc, store, _ := newTestService(t)
		qty := 15

		store.EXPECT().
			UpdateCatalogueProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params db.UpdateCatalogueProductParams) (db.CatalogueProduct, error) {
				assert.Equal(t, "P1", params.ProductID)
				assert.True(t, params.InventoryQuantity.Valid)
				assert.Equal(t, int32(15), params.InventoryQuantity.Int32)
				assert.False(t, params.Name.Valid)
				assert.False(t, params.DistItemCode.Valid)
				return db.CatalogueProduct{ProductID: "P1", InventoryQuantity: 15}, nil
			})

		// WHEN
		product, err := svc.UpdateProduct(context.Background(), "P1", api_models.UpdateProductRequest{
			InventoryQuantity: &qty,
		})

		// THEN
		require.NoError(t, err)
		assert.Equal(t, int32(15), product.InventoryQuantity)
	})

	t.Run("смена dist_item_code пересчитывает цены из ERP", func(t *testing.T) {
		// GIVEN: новый код с ценой в прайс-листе
		svc, store, erpStore := newTestService(t)
		code := "NEW123"

		erpStore.EXPECT().
			GetDistributorPricingByItemCode(gomock.Any(), "NEW123").
			Return(erpdb.DistributorMasterList{
				ItemCode: "NEW123",
				Mrp:      sql.NullFloat64{Float64: 99, Valid: true},
				GstRate:  sql.NullFloat64{Float64: 12, Valid: true},
			}, nil)
		store.EXPECT().
			UpdateCatalogueProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params db.UpdateCatalogueProductParams) (db.CatalogueProduct, error) {
				assert.Equal(t, "NEW123", params.DistItemCode.String)
				assert.Equal(t, 99.0, params.DistributorMrp.Float64)
				assert.Equal(t, 12.0, params.GstRate.Float64)
				return db.CatalogueProduct{ProductID: "P1"}, nil
			})

		// WHEN
		_, err := svc.UpdateProduct(context.Background(), "P1", api_models.UpdateProductRequest{
			DistItemCode: &code,
		})

		// THEN
		require.NoError(t, err)
	})

	t.Run("код без цены — ошибка валидации, запись не трогается", func(t *testing.T) {
		svc, _, erpStore := newTestService(t)
		code := "GHOST"

		erpStore.EXPECT().
			GetDistributorPricingByItemCode(gomock.Any(), "GHOST").
			Return(erpdb.DistributorMasterList{}, sql.ErrNoRows)

		_, err := svc.UpdateProduct(context.Background(), "P1", api_models.UpdateProductRequest{
			DistItemCode: &code,
		})

		var validationErr *apierrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("отсутствующий товар дает NotFoundError", func(t *testing.T) {
		svc, store, _ := newTestService(t)

		store.EXPECT().
			UpdateCatalogueProduct(gomock.Any(), gomock.Any()).
			Return(db.CatalogueProduct{}, sql.ErrNoRows)

		_, err := svc.UpdateProduct(context.Background(), "P404", api_models.UpdateProductRequest{})

		var notFound *apierrors.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Run("удаление существующего товара", func(t *testing.T) {
		svc, store, _ := newTestService(t)
		store.EXPECT().DeleteCatalogueProduct(gomock.Any(), "P1").Return(int64(1), nil)

		err := svc.DeleteProduct(context.Background(), "P1")

		assert.NoError(t, err)
	})

	t.Run("ноль затронутых строк — NotFoundError", func(t *testing.T) {
		svc, store, _ := newTestService(t)
		store.EXPECT().DeleteCatalogueProduct(gomock.Any(), "P404").Return(int64(0), nil)

		err := svc.DeleteProduct(context.Background(), "P404")

		var notFound *apierrors.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestStats(t *testing.T) {
	t.Run("все три счетчика при настроенной ERP-базе", func(t *testing.T) {
		svc, store, erpStore := newTestService(t)
		store.EXPECT().GetCatalogueCount(gomock.Any()).Return(int64(100), nil)
		store.EXPECT().GetOriginalProductsCount(gomock.Any()).Return(int64(250), nil)
		erpStore.EXPECT().GetDistributorPricingCount(gomock.Any()).Return(int64(80), nil)

		stats, err := svc.Stats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(100), stats["catalogue_products"])
		assert.Equal(t, int64(250), stats["original_products"])
		assert.Equal(t, int64(80), stats["distributor_pricing"])
	})

	t.Run("без ERP-базы счетчик прайс-листа отсутствует", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		svc := NewService(store, nil, logging.GetLogger())
		store.EXPECT().GetCatalogueCount(gomock.Any()).Return(int64(1), nil)
		store.EXPECT().GetOriginalProductsCount(gomock.Any()).Return(int64(2), nil)

		stats, err := svc.Stats(context.Background())

		require.NoError(t, err)
		_, ok := stats["distributor_pricing"]
		assert.False(t, ok)
	})
}
