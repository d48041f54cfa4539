package api_models

import (
	"github.com/plazza-health/catalogue-go/cmd/internal/services/apierrors"
)

// BatchResult — итог обработки одной партии CSV.
// Счетчики соответствуют этапам пайплайна: валидация -> дедупликация ->
// проверка существующих -> обогащение справочниками -> вставка.
type BatchResult struct {
	UploadID          string `json:"upload_id"`
	TotalRows         int    `json:"total_rows"`
	SuccessfulInserts int    `json:"successful_inserts"`
	// ValidationFailures всегда 0 в партии каталога: разбор строк не
	// падает, непригодные строки учитываются в skipped_missing_fields.
	// Поле оставлено ради стабильной формы отчета.
	ValidationFailures   int      `json:"validation_failures"`
	DuplicateFailures    int      `json:"duplicate_failures"`
	ExistingProducts     int      `json:"existing_products"`
	SkippedNoMetadata    int      `json:"skipped_no_metadata"`
	SkippedNoPricing     int      `json:"skipped_no_pricing"`
	SkippedMissingFields int      `json:"skipped_missing_fields"`
	Errors               []string `json:"errors"`
	SkippedRowsCSV       string   `json:"skipped_rows_csv"`
}

// SkippedRow — одна строка skip-отчета. Живет только в рамках партии:
// в базу не пишется, уходит наружу в виде CSV-вложения.
type SkippedRow struct {
	ProductID      string `json:"product_id"`
	ItemCode       string `json:"item_code"`
	Reason         string `json:"reason"`
	ErrorTimestamp string `json:"error_timestamp"`
}

// OnboardingResult — итог одной из трех стадий первичной загрузки.
type OnboardingResult struct {
	TotalRows          int      `json:"total_rows"`
	SuccessfulInserts  int      `json:"successful_inserts"`
	ValidationFailures int      `json:"validation_failures"`
	SkippedRows        int      `json:"skipped_rows"`
	Errors             []string `json:"errors"`
}

// MetadataRow — строка CSV первичной загрузки метаданных товара.
// Колонки повторяют схему original_all_products; пустые ячейки и "nan"
// превращаются в NULL на этапе конвертации.
type MetadataRow struct {
	ProductID                 string `csv:"product_id"`
	Name                      string `csv:"name"`
	Manufacturers             string `csv:"manufacturers"`
	SaltComposition           string `csv:"salt_composition"`
	MedicineType              string `csv:"medicine_type"`
	Introduction              string `csv:"introduction"`
	Benefits                  string `csv:"benefits"`
	Description               string `csv:"description"`
	HowToUse                  string `csv:"how_to_use"`
	SafetyAdvise              string `csv:"safety_advise"`
	IfMiss                    string `csv:"if_miss"`
	PackagingDetail           string `csv:"packaging_detail"`
	Package                   string `csv:"package"`
	Qty                       string `csv:"qty"`
	ProductForm               string `csv:"product_form"`
	Mrp                       string `csv:"mrp"`
	PrescriptionRequired      string `csv:"prescription_required"`
	FactBox                   string `csv:"fact_box"`
	PrimaryUse                string `csv:"primary_use"`
	Storage                   string `csv:"storage"`
	UseOf                     string `csv:"use_of"`
	CommonSideEffect          string `csv:"common_side_effect"`
	AlcoholInteraction        string `csv:"alcohol_interaction"`
	PregnancyInteraction      string `csv:"pregnancy_interaction"`
	LactationInteraction      string `csv:"lactation_interaction"`
	DrivingInteraction        string `csv:"driving_interaction"`
	KidneyInteraction         string `csv:"kidney_interaction"`
	LiverInteraction          string `csv:"liver_interaction"`
	ManufacturerAddress       string `csv:"manufacturer_address"`
	QA                        string `csv:"q_a"`
	HowItWorks                string `csv:"how_it_works"`
	Interaction               string `csv:"interaction"`
	ManufacturerDetails       string `csv:"manufacturer_details"`
	MarketerDetails           string `csv:"marketer_details"`
	Reference                 string `csv:"reference"`
	NormalizedName            string `csv:"normalized_name"`
	ImageUrl                  string `csv:"image_url"`
	DistributorMrp            string `csv:"distributor_mrp"`
	PlazzaSellingPriceInclGst string `csv:"plazza_selling_price_incl_gst"`
	EffectiveCustomerDiscount string `csv:"effective_customer_discount"`
	Distributor               string `csv:"distributor"`
	PlazzaPricePack           string `csv:"plazza_price_pack"`
	FulfilledBy               string `csv:"fulfilled_by"`
	NameSearchWords           string `csv:"name_search_words"`
	DirectionsForUse          string `csv:"directions_for_use"`
	Information               string `csv:"information"`
	KeyBenefits               string `csv:"key_benefits"`
	KeyIngredients            string `csv:"key_ingredients"`
	SafetyInformation         string `csv:"safety_information"`
	Breadcrumbs               string `csv:"breadcrumbs"`
	CountryOfOrigin           string `csv:"country_of_origin"`
}

// Validate проверяет обязательные поля строки метаданных.
func (r *MetadataRow) Validate() error {
	if r.ProductID == "" {
		return apierrors.NewValidationError("metadata row: product_id is required")
	}
	return nil
}

// DistributorRow — строка CSV прайс-листа дистрибьютора.
type DistributorRow struct {
	ItemCode         string `csv:"item_code"`
	OriginalItemCode string `csv:"original_item_code"`
	ProductName      string `csv:"product_name"`
	Manufacturer     string `csv:"manufacturer"`
	Mrp              string `csv:"mrp"`
	PurchaseRate     string `csv:"purchase_rate"`
	GstRate          string `csv:"gst_rate"`
	Distributor      string `csv:"distributor"`
	HsnCode          string `csv:"hsn_code"`
}

// Validate проверяет обязательные поля строки прайс-листа.
func (r *DistributorRow) Validate() error {
	if r.ItemCode == "" {
		return apierrors.NewValidationError("distributor row: item_code is required")
	}
	return nil
}

// MappingRow — строка CSV сопоставления product_id <-> item_code.
// Заголовки инвентаря и локаций приходят из выгрузки склада как есть.
type MappingRow struct {
	ProductID      string `csv:"product_id"`
	ItemCode       string `csv:"item_code"`
	StoreInventory string `csv:"Store Inventory"`
	Location       string `csv:"Location"`
}

// Validate проверяет обязательные поля строки сопоставления.
func (r *MappingRow) Validate() error {
	if r.ProductID == "" {
		return apierrors.NewValidationError("mapping row: product_id is required")
	}
	if r.ItemCode == "" {
		return apierrors.NewValidationError("mapping row: item_code is required")
	}
	return nil
}

// UpdateProductRequest — частичное обновление записи каталога.
// Nil-поля не трогают существующие значения.
type UpdateProductRequest struct {
	DistItemCode      *string  `json:"dist_item_code,omitempty"`
	Name              *string  `json:"name,omitempty"`
	Mrp               *float64 `json:"mrp,omitempty"`
	InventoryQuantity *int     `json:"inventory_quantity,omitempty"`
	IsActive          *bool    `json:"is_active,omitempty"`
	DeferredAllowed   *bool    `json:"deferred_allowed,omitempty"`
}
