package testutil

import (
	"database/sql"
	"time"

	"github.com/plazza-health/catalogue-go/cmd/internal/db/erpdb"
	db "github.com/plazza-health/catalogue-go/cmd/internal/db/sqlc"
)

// CreateTestMetadata создает метаданные тестового товара
func CreateTestMetadata(productID, name string, mrp float64) db.OriginalAllProduct {
	now := time.Now()
	return db.OriginalAllProduct{
		ProductID:     productID,
		Name:          sql.NullString{String: name, Valid: true},
		Manufacturers: sql.NullString{String: "Test Labs", Valid: true},
		Mrp:           sql.NullFloat64{Float64: mrp, Valid: true},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// CreateTestPricing создает строку тестового прайс-листа
func CreateTestPricing(id int64, itemCode string, mrp, purchaseRate, gstRate float64) erpdb.DistributorMasterList {
	now := time.Now()
	return erpdb.DistributorMasterList{
		ID:           id,
		ItemCode:     itemCode,
		ProductName:  sql.NullString{String: "Test Product", Valid: true},
		Mrp:          sql.NullFloat64{Float64: mrp, Valid: true},
		PurchaseRate: sql.NullFloat64{Float64: purchaseRate, Valid: true},
		GstRate:      sql.NullFloat64{Float64: gstRate, Valid: true},
		Distributor:  sql.NullString{String: "Test Distributor", Valid: true},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// CreateTestCatalogueProduct создает тестовую запись каталога
func CreateTestCatalogueProduct(productID, itemCode string) db.CatalogueProduct {
	now := time.Now()
	return db.CatalogueProduct{
		ProductID:    productID,
		DistItemCode: itemCode,
		Name:         sql.NullString{String: "Test Product " + productID, Valid: true},
		FulfilledBy:  sql.NullString{String: "Fulfilled by Plazza", Valid: true},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Helper functions для создания nullable типов

// String возвращает указатель на string
func String(s string) *string {
	return &s
}

// Int возвращает указатель на int
func Int(i int) *int {
	return &i
}

// Float64 возвращает указатель на float64
func Float64(f float64) *float64 {
	return &f
}

// Bool возвращает указатель на bool
func Bool(b bool) *bool {
	return &b
}

// Time возвращает указатель на time.Time
func Time(t time.Time) *time.Time {
	return &t
}
