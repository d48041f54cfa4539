package util

import (
	"database/sql"
	"strings"
	"time"
)

// NullableString преобразует *string в sql.NullString.
// Пустая строка ("") также будет считаться NULL для базы данных.
func NullableString(s *string) sql.NullString {
	if s == nil || *s == "" { // Если указатель nil ИЛИ строка пустая
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

// NullableFloat64 преобразует *float64 в sql.NullFloat64.
func NullableFloat64(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{Valid: false}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// NullableInt32 преобразует *int в sql.NullInt32.
func NullableInt32(i *int) sql.NullInt32 {
	if i == nil {
		return sql.NullInt32{Valid: false}
	}
	return sql.NullInt32{Int32: int32(*i), Valid: true}
}

// NullableBool преобразует *bool в sql.NullBool.
func NullableBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{Valid: false}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

// NullableTime преобразует *time.Time в sql.NullTime.
func NullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// Для строковых полей, если пустая строка не должна передаваться как валидная (а как NULL)
func NilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// CellString превращает CSV-ячейку в sql.NullString.
// Пустая строка и литерал "nan" (в любом регистре) считаются отсутствием значения:
// источники выгружают pandas-датафреймы, где пустые ячейки приходят как "nan".
func CellString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
