package collator

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/plazza-health/catalogue-go/cmd/internal/db/erpdb"
	db "github.com/plazza-health/catalogue-go/cmd/internal/db/sqlc"
	"github.com/plazza-health/catalogue-go/cmd/internal/services/csvrows"
)

// FulfilledByFallback подставляется, когда в метаданных товара нет
// собственного значения fulfilled_by.
const FulfilledByFallback = "Fulfilled by Plazza"

// SkipKind — категория, по которой строка не дошла до вставки.
type SkipKind int

const (
	SkipNoMetadata SkipKind = iota
	SkipNoPricing
)

// Skip описывает причину пропуска строки.
type Skip struct {
	Kind   SkipKind
	Reason string
}

// Collate собирает запись каталога из строки партии и двух справочников.
// Возвращает либо параметры вставки, либо причину пропуска.
// Строка пропускается, если для нее не нашлось метаданных или цены;
// битые инвентарь и локации не валят строку, а приводятся к нулю/пустоте.
func Collate(row csvrows.Row, metadata map[string]db.OriginalAllProduct, pricing map[string]erpdb.DistributorMasterList) (db.InsertCatalogueProductParams, *Skip) {
	productID := row.Get("product_id")
	itemCode := row.Get("item_code")

	meta, ok := metadata[productID]
	if !ok {
		return db.InsertCatalogueProductParams{}, &Skip{Kind: SkipNoMetadata, Reason: "metadata not found"}
	}

	price, ok := pricing[strings.ToLower(itemCode)]
	if !ok {
		return db.InsertCatalogueProductParams{}, &Skip{Kind: SkipNoPricing, Reason: "pricing not found"}
	}

	fulfilledBy := meta.FulfilledBy
	if !fulfilledBy.Valid || fulfilledBy.String == "" {
		fulfilledBy.String = FulfilledByFallback
		fulfilledBy.Valid = true
	}

	params := db.InsertCatalogueProductParams{
		ProductID:            productID,
		DistItemCode:         itemCode,
		Name:                 meta.Name,
		Manufacturers:        meta.Manufacturers,
		SaltComposition:      meta.SaltComposition,
		MedicineType:         meta.MedicineType,
		Introduction:         meta.Introduction,
		Benefits:             meta.Benefits,
		Description:          meta.Description,
		HowToUse:             meta.HowToUse,
		SafetyAdvise:         meta.SafetyAdvise,
		IfMiss:               meta.IfMiss,
		PackagingDetail:      meta.PackagingDetail,
		Package:              meta.Package,
		Qty:                  meta.Qty,
		ProductForm:          meta.ProductForm,
		Mrp:                  meta.Mrp,
		PrescriptionRequired: meta.PrescriptionRequired,
		FactBox:              meta.FactBox,
		PrimaryUse:           meta.PrimaryUse,
		Storage:              meta.Storage,
		UseOf:                meta.UseOf,
		CommonSideEffect:     meta.CommonSideEffect,
		AlcoholInteraction:   meta.AlcoholInteraction,
		PregnancyInteraction: meta.PregnancyInteraction,
		LactationInteraction: meta.LactationInteraction,
		DrivingInteraction:   meta.DrivingInteraction,
		KidneyInteraction:    meta.KidneyInteraction,
		LiverInteraction:     meta.LiverInteraction,
		ManufacturerAddress:  meta.ManufacturerAddress,
		QA:                   meta.QA,
		HowItWorks:           meta.HowItWorks,
		Interaction:          meta.Interaction,
		ManufacturerDetails:  meta.ManufacturerDetails,
		MarketerDetails:      meta.MarketerDetails,
		Reference:            meta.Reference,
		NormalizedName:       meta.NormalizedName,
		ImageUrl:             meta.ImageUrl,

		DistributorMrp:            price.Mrp,
		PlazzaSellingPriceInclGst: price.PlazzaSellingPriceInclGst,
		EffectiveCustomerDiscount: price.EffectiveCustomerDiscount,
		Distributor:               price.Distributor,
		GstRate:                   price.GstRate,
		HsnCode:                   price.HsnCode,

		PlazzaPricePack:   meta.PlazzaPricePack,
		FulfilledBy:       fulfilledBy,
		NameSearchWords:   meta.NameSearchWords,
		DirectionsForUse:  meta.DirectionsForUse,
		Information:       meta.Information,
		KeyBenefits:       meta.KeyBenefits,
		KeyIngredients:    meta.KeyIngredients,
		SafetyInformation: meta.SafetyInformation,
		Breadcrumbs:       meta.Breadcrumbs,
		CountryOfOrigin:   meta.CountryOfOrigin,

		InventoryQuantity: ParseInventoryQuantity(row.Get("Store Inventory")),
		Location:          ParseLocation(row.Get("Location")),

		// Новая запись каталога не продается, пока ее не активируют вручную.
		IsActive:        false,
		DeferredAllowed: false,
	}

	return params, nil
}

// ParseInventoryQuantity приводит ячейку склада к неотрицательному целому.
// Пустые, нечисловые и отрицательные значения дают 0: выгрузки склада
// регулярно содержат "nan" и дроби, и это не повод ронять строку.
func ParseInventoryQuantity(s string) int32 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return int32(n)
}

// ParseLocation разбирает ячейку локаций склада. Поддерживаются формы:
// JSON-массив строк (`["A1","B2"]`), значения через запятую, одиночное
// значение, а также `{A1,B2}` из старых выгрузок. Пусто и "nan" дают nil.
func ParseLocation(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return nil
	}

	if strings.HasPrefix(s, "[") {
		var parsed []string
		if err := json.Unmarshal([]byte(s), &parsed); err == nil {
			return cleanLocations(parsed)
		}
		// Похоже на массив, но не распарсился — пробуем как список через запятую.
	}

	s = strings.Trim(s, "[]{}")
	return cleanLocations(strings.Split(s, ","))
}

func cleanLocations(values []string) []string {
	var result []string
	for _, v := range values {
		v = strings.Trim(strings.TrimSpace(v), `"'`)
		if v == "" {
			continue
		}
		result = append(result, v)
	}
	return result
}
