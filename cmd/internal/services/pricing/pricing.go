package pricing

import (
	"github.com/plazza-health/catalogue-go/cmd/internal/util"
)

// Result — расчетные цены для одной позиции прайс-листа.
type Result struct {
	Margin          float64
	DiscountPercent float64
	SellingPrice    float64
}

// Compute считает маржу, ступенчатую скидку и розничную цену.
//
// Маржа — отношение наценки к закупочной цене с учетом GST:
//
//	margin = (mrp - pr*(1+gst/100)) / (pr*(1+gst/100))
//
// Скидка подбирается по марже: выше маржа — больше скидка покупателю.
// Границы ступеней строгие: маржа ровно 0.30 дает 10%, а не 15%.
func Compute(mrp, purchaseRate, gstRate float64) Result {
	landedCost := purchaseRate * (1 + gstRate/100)
	margin := (mrp - landedCost) / landedCost

	var discount float64
	switch {
	case margin > 0.30:
		discount = 15
	case margin > 0.25:
		discount = 10
	case margin > 0.10:
		discount = 5
	default:
		discount = 2
	}

	sellingPrice := util.RoundTo2(mrp * (1 - discount/100))

	return Result{
		Margin:          margin,
		DiscountPercent: discount,
		SellingPrice:    sellingPrice,
	}
}
