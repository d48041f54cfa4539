package ingest

import (
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/plazza-health/catalogue-go/cmd/internal/api_models"
)

// uniqueViolation — код ошибки Postgres для нарушения уникальности.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}

// RenderSkipReport отдает skip-отчет в виде CSV-строки.
// Контракт формата: каждое поле данных в двойных кавычках, внутренние
// кавычки удваиваются. Без пропусков возвращается пустая строка.
func RenderSkipReport(rows []api_models.SkippedRow) string {
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("product_id,item_code,reason,error_timestamp\n")
	for _, row := range rows {
		b.WriteString(quoteField(row.ProductID))
		b.WriteByte(',')
		b.WriteString(quoteField(row.ItemCode))
		b.WriteByte(',')
		b.WriteString(quoteField(row.Reason))
		b.WriteByte(',')
		b.WriteString(quoteField(row.ErrorTimestamp))
		b.WriteByte('\n')
	}
	return b.String()
}

func quoteField(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
