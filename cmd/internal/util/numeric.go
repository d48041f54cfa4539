package util

import (
	"database/sql"
	"math"
	"strconv"
	"strings"
)

// RoundTo2 округляет до двух знаков после запятой по правилу half-up
// (0.005 -> 0.01), как это делает денежное округление в источниках цен.
func RoundTo2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

// ParseNullFloat разбирает CSV-ячейку как число.
// Пустая строка и "nan" дают NULL, нечисловое значение — ошибку.
func ParseNullFloat(s string) (sql.NullFloat64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return sql.NullFloat64{Valid: false}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sql.NullFloat64{Valid: false}, err
	}
	return sql.NullFloat64{Float64: f, Valid: true}, nil
}
