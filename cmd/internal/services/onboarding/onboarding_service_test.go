package onboarding

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

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

func TestIngestMetadataCSV(t *testing.T) {
	t.Run("строки конвертируются и вставляются", func(t *testing.T) {
		// GIVEN: CSV с пустыми ячейками и "nan"
		svc, store, _ := newTestService(t)
		csv := "product_id,name,mrp,prescription_required\n" +
			"P1,Dolo 650,33.60,true\n" +
			"P2,nan,nan,\n"

		var inserted []db.InsertOriginalProductParams
		store.EXPECT().
			InsertOriginalProduct(gomock.Any(), gomock.Any()).
			Times(2).
			DoAndReturn(func(_ context.Context, params db.InsertOriginalProductParams) error {
				inserted = append(inserted, params)
				return nil
			})

		// WHEN
		result, err := svc.IngestMetadataCSV(context.Background(), strings.NewReader(csv))

		// THEN
		require.NoError(t, err)
		assert.Equal(t, 2, result.SuccessfulInserts)
		require.Len(t, inserted, 2)
		assert.Equal(t, "Dolo 650", inserted[0].Name.String)
		assert.Equal(t, 33.60, inserted[0].Mrp.Float64)
		assert.True(t, inserted[0].PrescriptionRequired.Bool)
		assert.False(t, inserted[1].Name.Valid, "nan превращается в NULL")
		assert.False(t, inserted[1].Mrp.Valid)
		assert.False(t, inserted[1].PrescriptionRequired.Valid)
	})

	t.Run("строка без product_id считается валидационным сбоем", func(t *testing.T) {
		svc, store, _ := newTestService(t)
		csv := "product_id,name\n,Orphan\nP1,Dolo 650\n"

		store.EXPECT().InsertOriginalProduct(gomock.Any(), gomock.Any()).Return(nil)

		result, err := svc.IngestMetadataCSV(context.Background(), strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, 1, result.ValidationFailures)
		assert.Equal(t, 1, result.SuccessfulInserts)
	})

	t.Run("нечисловой mrp не валит загрузку", func(t *testing.T) {
		svc, store, _ := newTestService(t)
		csv := "product_id,name,mrp\nP1,Dolo 650,abc\nP2,Calpol,10.5\n"

		store.EXPECT().InsertOriginalProduct(gomock.Any(), gomock.Any()).Return(nil)

		result, err := svc.IngestMetadataCSV(context.Background(), strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, 1, result.ValidationFailures)
		assert.Equal(t, 1, result.SuccessfulInserts)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "invalid mrp")
	})

	t.Run("сбой вставки изолируется", func(t *testing.T) {
		svc, store, _ := newTestService(t)
		csv := "product_id,name\nP1,Dolo 650\nP2,Calpol\n"

		gomock.InOrder(
			store.EXPECT().InsertOriginalProduct(gomock.Any(), gomock.Any()).Return(errors.New("disk full")),
			store.EXPECT().InsertOriginalProduct(gomock.Any(), gomock.Any()).Return(nil),
		)

		result, err := svc.IngestMetadataCSV(context.Background(), strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, 1, result.SuccessfulInserts)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "failed to insert product P1")
	})
}

func TestIngestDistributorCSV(t *testing.T) {
	t.Run("цена и скидка досчитываются из закупочных данных", func(t *testing.T) {
		// GIVEN: маржа ровно 0.30 — скидка 10%, цена 117.00
		svc, _, erpStore := newTestService(t)
		csv := "item_code,mrp,purchase_rate,gst_rate\nABC123,130,100,0\n"

		var inserted erpdb.InsertDistributorPricingParams
		erpStore.EXPECT().
			InsertDistributorPricing(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params erpdb.InsertDistributorPricingParams) error {
				inserted = params
				return nil
			})

		// WHEN
		result, err := svc.IngestDistributorCSV(context.Background(), strings.NewReader(csv))

		// THEN
		require.NoError(t, err)
		assert.Equal(t, 1, result.SuccessfulInserts)
		assert.Equal(t, 117.00, inserted.PlazzaSellingPriceInclGst.Float64)
		assert.Equal(t, 10.0, inserted.EffectiveCustomerDiscount.Float64)
	})

	t.Run("без закупочной цены расчет не выполняется", func(t *testing.T) {
		svc, _, erpStore := newTestService(t)
		csv := "item_code,mrp,purchase_rate\nABC123,130,\n"

		var inserted erpdb.InsertDistributorPricingParams
		erpStore.EXPECT().
			InsertDistributorPricing(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params erpdb.InsertDistributorPricingParams) error {
				inserted = params
				return nil
			})

		result, err := svc.IngestDistributorCSV(context.Background(), strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, 1, result.SuccessfulInserts)
		assert.False(t, inserted.PlazzaSellingPriceInclGst.Valid)
		assert.False(t, inserted.EffectiveCustomerDiscount.Valid)
	})

	t.Run("нечисловой gst_rate — валидационный сбой строки", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		csv := "item_code,mrp,purchase_rate,gst_rate\nABC123,130,100,twelve\n"

		result, err := svc.IngestDistributorCSV(context.Background(), strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, 1, result.ValidationFailures)
		assert.Equal(t, 0, result.SuccessfulInserts)
	})

	t.Run("без ERP-базы стадия невозможна", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewService(mocks.NewMockStore(ctrl), nil, logging.GetLogger())

		_, err := svc.IngestDistributorCSV(context.Background(), strings.NewReader("item_code\nABC\n"))

		require.Error(t, err)
		var validationErr *apierrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestIngestMappingCSV(t *testing.T) {
	mappingCSV := "product_id,item_code,Store Inventory,Location\nP1,ABC123,7,\"A1,B2\"\n"

	t.Run("запись каталога собирается из точечных выборок", func(t *testing.T) {
		// GIVEN: и метаданные, и цена находятся по точным ключам
		svc, store, erpStore := newTestService(t)

		store.EXPECT().
			GetOriginalProductsByIDs(gomock.Any(), []string{"P1"}).
			Return([]db.OriginalAllProduct{{ProductID: "P1", Name: sql.NullString{String: "Dolo 650", Valid: true}}}, nil)
		erpStore.EXPECT().
			GetDistributorPricingByItemCode(gomock.Any(), "ABC123").
			Return(erpdb.DistributorMasterList{ID: 1, ItemCode: "ABC123", Mrp: sql.NullFloat64{Float64: 33.6, Valid: true}}, nil)

		var inserted db.InsertCatalogueProductParams
		store.EXPECT().
			InsertCatalogueProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params db.InsertCatalogueProductParams) error {
				inserted = params
				return nil
			})

		// WHEN
		result, err := svc.IngestMappingCSV(context.Background(), strings.NewReader(mappingCSV))

		// THEN
		require.NoError(t, err)
		assert.Equal(t, 1, result.SuccessfulInserts)
		assert.Equal(t, "P1", inserted.ProductID)
		assert.Equal(t, "ABC123", inserted.DistItemCode)
		assert.Equal(t, int32(7), inserted.InventoryQuantity)
		assert.Equal(t, []string{"A1", "B2"}, inserted.Location)
		assert.False(t, inserted.IsActive)
	})

	t.Run("нет цены в ERP — строка пропускается", func(t *testing.T) {
		svc, store, erpStore := newTestService(t)

		store.EXPECT().
			GetOriginalProductsByIDs(gomock.Any(), []string{"P1"}).
			Return([]db.OriginalAllProduct{{ProductID: "P1"}}, nil)
		erpStore.EXPECT().
			GetDistributorPricingByItemCode(gomock.Any(), "ABC123").
			Return(erpdb.DistributorMasterList{}, sql.ErrNoRows)

		result, err := svc.IngestMappingCSV(context.Background(), strings.NewReader(mappingCSV))

		require.NoError(t, err)
		assert.Equal(t, 1, result.SkippedRows)
		assert.Equal(t, 0, result.SuccessfulInserts)
	})

	t.Run("нет метаданных — строка пропускается", func(t *testing.T) {
		svc, store, erpStore := newTestService(t)

		store.EXPECT().
			GetOriginalProductsByIDs(gomock.Any(), []string{"P1"}).
			Return([]db.OriginalAllProduct{}, nil)
		erpStore.EXPECT().
			GetDistributorPricingByItemCode(gomock.Any(), "ABC123").
			Return(erpdb.DistributorMasterList{ItemCode: "ABC123"}, nil)

		result, err := svc.IngestMappingCSV(context.Background(), strings.NewReader(mappingCSV))

		require.NoError(t, err)
		assert.Equal(t, 1, result.SkippedRows)
	})

	t.Run("строка без item_code — валидационный сбой", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		csv := "product_id,item_code\nP1,\n"

		result, err := svc.IngestMappingCSV(context.Background(), strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, 1, result.ValidationFailures)
	})
}
