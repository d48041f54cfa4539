package collator

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plazza-health/catalogue-go/cmd/internal/db/erpdb"
	db "github.com/plazza-health/catalogue-go/cmd/internal/db/sqlc"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/csvrows"
)

func TestParseInventoryQuantity(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int32
	}{
		{"обычное число", "12", 12},
		{"ноль", "0", 0},
		{"пустая ячейка", "", 0},
		{"nan из pandas", "nan", 0},
		{"NaN в другом регистре", "NaN", 0},
		{"дробное значение невалидно", "7.9", 0},
		{"отрицательное значение", "-3", 0},
		{"мусор", "abc", 0},
		{"число с пробелами", " 5 ", 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseInventoryQuantity(tc.input))
		})
	}
}

func TestParseLocation(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{"JSON-массив", `["A1","B2"]`, []string{"A1", "B2"}},
		{"список через запятую", "A1, B2", []string{"A1", "B2"}},
		{"одиночное значение", "A1", []string{"A1"}},
		{"фигурные скобки из старой выгрузки", "{A1,B2}", []string{"A1", "B2"}},
		{"пустая ячейка", "", nil},
		{"nan", "nan", nil},
		{"пустой JSON-массив", "[]", nil},
		{"пустые элементы отбрасываются", "A1,,B2,", []string{"A1", "B2"}},
		{"битый JSON падает в разбор по запятым", `[A1, B2]`, []string{"A1", "B2"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLocation(tc.input))
		})
	}
}

func metadataFixture() map[string]db.OriginalAllProduct {
	return map[string]db.OriginalAllProduct{
		"P1": {
			ProductID:     "P1",
			Name:          sql.NullString{String: "Dolo 650", Valid: true},
			Manufacturers: sql.NullString{String: "Micro Labs", Valid: true},
			Mrp:           sql.NullFloat64{Float64: 33.60, Valid: true},
			ImageUrl:      []string{"https://img.example.com/p1.jpg"},
		},
	}
}

func pricingFixture() map[string]erpdb.DistributorMasterList {
	return map[string]erpdb.DistributorMasterList{
		"abc123": {
			ID:                        1,
			ItemCode:                  "ABC123",
			Mrp:                       sql.NullFloat64{Float64: 33.60, Valid: true},
			PlazzaSellingPriceInclGst: sql.NullFloat64{Float64: 31.92, Valid: true},
			EffectiveCustomerDiscount: sql.NullFloat64{Float64: 5, Valid: true},
			Distributor:               sql.NullString{String: "Mahaveer", Valid: true},
			GstRate:                   sql.NullFloat64{Float64: 12, Valid: true},
			HsnCode:                   sql.NullString{String: "3004", Valid: true},
		},
	}
}

func TestCollate(t *testing.T) {
	t.Run("успешная сборка записи каталога", func(t *testing.T) {
		// GIVEN: строка, для которой есть и метаданные, и цена
		row := csvrows.Row{
			"product_id":      "P1",
			"item_code":       "ABC123",
			"Store Inventory": "7",
			"Location":        "A1,B2",
		}

		// WHEN
		params, skip := Collate(row, metadataFixture(), pricingFixture())

		// THEN: поля собраны из обоих справочников
		require.Nil(t, skip)
		assert.Equal(t, "P1", params.ProductID)
		assert.Equal(t, "ABC123", params.DistItemCode)
		assert.Equal(t, "Dolo 650", params.Name.String)
		assert.Equal(t, 33.60, params.DistributorMrp.Float64)
		assert.Equal(t, 31.92, params.PlazzaSellingPriceInclGst.Float64)
		assert.Equal(t, "Mahaveer", params.Distributor.String)
		assert.Equal(t, int32(7), params.InventoryQuantity)
		assert.Equal(t, []string{"A1", "B2"}, params.Location)
	})

	t.Run("новая запись неактивна и без отложенной оплаты", func(t *testing.T) {
		row := csvrows.Row{"product_id": "P1", "item_code": "ABC123"}

		params, skip := Collate(row, metadataFixture(), pricingFixture())

		require.Nil(t, skip)
		assert.False(t, params.IsActive)
		assert.False(t, params.DeferredAllowed)
	})

	t.Run("цена находится без учета регистра кода", func(t *testing.T) {
		row := csvrows.Row{"product_id": "P1", "item_code": "abc123"}

		params, skip := Collate(row, metadataFixture(), pricingFixture())

		require.Nil(t, skip)
		assert.Equal(t, "abc123", params.DistItemCode)
		assert.Equal(t, 33.60, params.DistributorMrp.Float64)
	})

	t.Run("fulfilled_by подставляется из метаданных", func(t *testing.T) {
		metadata := metadataFixture()
		p := metadata["P1"]
		p.FulfilledBy = sql.NullString{String: "Fulfilled by Distributor", Valid: true}
		metadata["P1"] = p
		row := csvrows.Row{"product_id": "P1", "item_code": "ABC123"}

		params, skip := Collate(row, metadata, pricingFixture())

		require.Nil(t, skip)
		assert.Equal(t, "Fulfilled by Distributor", params.FulfilledBy.String)
	})

	t.Run("fulfilled_by по умолчанию", func(t *testing.T) {
		row := csvrows.Row{"product_id": "P1", "item_code": "ABC123"}

		params, skip := Collate(row, metadataFixture(), pricingFixture())

		require.Nil(t, skip)
		assert.Equal(t, FulfilledByFallback, params.FulfilledBy.String)
	})

	t.Run("нет метаданных — пропуск", func(t *testing.T) {
		row := csvrows.Row{"product_id": "P999", "item_code": "ABC123"}

		_, skip := Collate(row, metadataFixture(), pricingFixture())

		require.NotNil(t, skip)
		assert.Equal(t, SkipNoMetadata, skip.Kind)
		assert.Equal(t, "metadata not found", skip.Reason)
	})

	t.Run("нет цены — пропуск", func(t *testing.T) {
		row := csvrows.Row{"product_id": "P1", "item_code": "ZZZ999"}

		_, skip := Collate(row, metadataFixture(), pricingFixture())

		require.NotNil(t, skip)
		assert.Equal(t, SkipNoPricing, skip.Kind)
		assert.Equal(t, "pricing not found", skip.Reason)
	})

	t.Run("битый инвентарь не валит строку", func(t *testing.T) {
		row := csvrows.Row{
			"product_id":      "P1",
			"item_code":       "ABC123",
			"Store Inventory": "many",
			"Location":        "nan",
		}

		params, skip := Collate(row, metadataFixture(), pricingFixture())

		require.Nil(t, skip)
		assert.Equal(t, int32(0), params.InventoryQuantity)
		assert.Nil(t, params.Location)
	})
}
