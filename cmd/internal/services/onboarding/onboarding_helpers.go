package onboarding

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/plazza-health/catalogue-go/cmd/internal/api_models"
	"github.com/plazza-health/catalogue-go/cmd/internal/db/erpdb"
	db "github.com/plazza-health/catalogue-go/cmd/internal/db/sqlc"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/collator"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/pricing"
	"github.com/plazza-health/catalogue-go/cmd/internal/util"
)

// metadataRowToParams конвертирует CSV-строку метаданных в параметры вставки.
// Пустые ячейки и "nan" превращаются в NULL, числовые поля валидируются.
func metadataRowToParams(row api_models.MetadataRow) (db.InsertOriginalProductParams, error) {
	mrp, err := util.ParseNullFloat(row.Mrp)
	if err != nil {
		return db.InsertOriginalProductParams{}, fmt.Errorf("invalid mrp %q: %w", row.Mrp, err)
	}
	distributorMrp, err := util.ParseNullFloat(row.DistributorMrp)
	if err != nil {
		return db.InsertOriginalProductParams{}, fmt.Errorf("invalid distributor_mrp %q: %w", row.DistributorMrp, err)
	}
	sellingPrice, err := util.ParseNullFloat(row.PlazzaSellingPriceInclGst)
	if err != nil {
		return db.InsertOriginalProductParams{}, fmt.Errorf("invalid plazza_selling_price_incl_gst %q: %w", row.PlazzaSellingPriceInclGst, err)
	}
	discount, err := util.ParseNullFloat(row.EffectiveCustomerDiscount)
	if err != nil {
		return db.InsertOriginalProductParams{}, fmt.Errorf("invalid effective_customer_discount %q: %w", row.EffectiveCustomerDiscount, err)
	}

	return db.InsertOriginalProductParams{
		ProductID:                 strings.TrimSpace(row.ProductID),
		Name:                      util.CellString(row.Name),
		Manufacturers:             util.CellString(row.Manufacturers),
		SaltComposition:           util.CellString(row.SaltComposition),
		MedicineType:              util.CellString(row.MedicineType),
		Introduction:              util.CellString(row.Introduction),
		Benefits:                  util.CellString(row.Benefits),
		Description:               util.CellString(row.Description),
		HowToUse:                  util.CellString(row.HowToUse),
		SafetyAdvise:              util.CellString(row.SafetyAdvise),
		IfMiss:                    util.CellString(row.IfMiss),
		PackagingDetail:           util.CellString(row.PackagingDetail),
		Package:                   util.CellString(row.Package),
		Qty:                       util.CellString(row.Qty),
		ProductForm:               util.CellString(row.ProductForm),
		Mrp:                       mrp,
		PrescriptionRequired:      parseNullBool(row.PrescriptionRequired),
		FactBox:                   util.CellString(row.FactBox),
		PrimaryUse:                util.CellString(row.PrimaryUse),
		Storage:                   util.CellString(row.Storage),
		UseOf:                     util.CellString(row.UseOf),
		CommonSideEffect:          util.CellString(row.CommonSideEffect),
		AlcoholInteraction:        util.CellString(row.AlcoholInteraction),
		PregnancyInteraction:      util.CellString(row.PregnancyInteraction),
		LactationInteraction:      util.CellString(row.LactationInteraction),
		DrivingInteraction:        util.CellString(row.DrivingInteraction),
		KidneyInteraction:         util.CellString(row.KidneyInteraction),
		LiverInteraction:          util.CellString(row.LiverInteraction),
		ManufacturerAddress:       util.CellString(row.ManufacturerAddress),
		QA:                        util.CellString(row.QA),
		HowItWorks:                util.CellString(row.HowItWorks),
		Interaction:               util.CellString(row.Interaction),
		ManufacturerDetails:       util.CellString(row.ManufacturerDetails),
		MarketerDetails:           util.CellString(row.MarketerDetails),
		Reference:                 util.CellString(row.Reference),
		NormalizedName:            util.CellString(row.NormalizedName),
		ImageUrl:                  collator.ParseLocation(row.ImageUrl),
		DistributorMrp:            distributorMrp,
		PlazzaSellingPriceInclGst: sellingPrice,
		EffectiveCustomerDiscount: discount,
		Distributor:               util.CellString(row.Distributor),
		PlazzaPricePack:           util.CellString(row.PlazzaPricePack),
		FulfilledBy:               util.CellString(row.FulfilledBy),
		NameSearchWords:           collator.ParseLocation(row.NameSearchWords),
		DirectionsForUse:          util.CellString(row.DirectionsForUse),
		Information:               util.CellString(row.Information),
		KeyBenefits:               util.CellString(row.KeyBenefits),
		KeyIngredients:            util.CellString(row.KeyIngredients),
		SafetyInformation:         util.CellString(row.SafetyInformation),
		Breadcrumbs:               util.CellString(row.Breadcrumbs),
		CountryOfOrigin:           util.CellString(row.CountryOfOrigin),
	}, nil
}

// distributorRowToParams конвертирует строку прайс-листа и досчитывает
// розничную цену со скидкой, когда закупочные данные полны.
func distributorRowToParams(row api_models.DistributorRow) (erpdb.InsertDistributorPricingParams, error) {
	mrp, err := util.ParseNullFloat(row.Mrp)
	if err != nil {
		return erpdb.InsertDistributorPricingParams{}, fmt.Errorf("invalid mrp %q: %w", row.Mrp, err)
	}
	purchaseRate, err := util.ParseNullFloat(row.PurchaseRate)
	if err != nil {
		return erpdb.InsertDistributorPricingParams{}, fmt.Errorf("invalid purchase_rate %q: %w", row.PurchaseRate, err)
	}
	gstRate, err := util.ParseNullFloat(row.GstRate)
	if err != nil {
		return erpdb.InsertDistributorPricingParams{}, fmt.Errorf("invalid gst_rate %q: %w", row.GstRate, err)
	}

	params := erpdb.InsertDistributorPricingParams{
		ItemCode:         strings.TrimSpace(row.ItemCode),
		OriginalItemCode: util.CellString(row.OriginalItemCode),
		ProductName:      util.CellString(row.ProductName),
		Manufacturer:     util.CellString(row.Manufacturer),
		Mrp:              mrp,
		PurchaseRate:     purchaseRate,
		GstRate:          gstRate,
		Distributor:      util.CellString(row.Distributor),
		HsnCode:          util.CellString(row.HsnCode),
	}

	if mrp.Valid && purchaseRate.Valid && purchaseRate.Float64 > 0 {
		gst := 0.0
		if gstRate.Valid {
			gst = gstRate.Float64
		}
		computed := pricing.Compute(mrp.Float64, purchaseRate.Float64, gst)
		params.PlazzaSellingPriceInclGst = sql.NullFloat64{Float64: computed.SellingPrice, Valid: true}
		params.EffectiveCustomerDiscount = sql.NullFloat64{Float64: computed.DiscountPercent, Valid: true}
	}

	return params, nil
}

func parseNullBool(s string) sql.NullBool {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "true", "t", "yes", "1":
		return sql.NullBool{Bool: true, Valid: true}
	case "false", "f", "no", "0":
		return sql.NullBool{Bool: false, Valid: true}
	default:
		return sql.NullBool{Valid: false}
	}
}
