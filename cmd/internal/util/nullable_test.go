package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ========== Тесты для NullableString ==========

func TestNullableString(t *testing.T) {
	t.Run("валидная строка", func(t *testing.T) {
		str := "valid string"
		result := NullableString(&str)

		assert.True(t, result.Valid)
		assert.Equal(t, "valid string", result.String)
	})

	t.Run("nil указатель", func(t *testing.T) {
		result := NullableString(nil)

		assert.False(t, result.Valid)
	})

	t.Run("пустая строка", func(t *testing.T) {
		str := ""
		result := NullableString(&str)

		assert.False(t, result.Valid, "пустая строка должна быть невалидной")
	})

	t.Run("строка с пробелами", func(t *testing.T) {
		str := "   "
		result := NullableString(&str)

		assert.True(t, result.Valid, "строка с пробелами валидна")
		assert.Equal(t, "   ", result.String)
	})
}

// ========== Тесты для NullableFloat64 ==========

func TestNullableFloat64(t *testing.T) {
	t.Run("валидное значение", func(t *testing.T) {
		val := 123.45
		result := NullableFloat64(&val)

		assert.True(t, result.Valid)
		assert.Equal(t, 123.45, result.Float64)
	})

	t.Run("nil указатель", func(t *testing.T) {
		result := NullableFloat64(nil)

		assert.False(t, result.Valid)
	})

	t.Run("нулевое значение", func(t *testing.T) {
		val := 0.0
		result := NullableFloat64(&val)

		assert.True(t, result.Valid, "0.0 должен быть валидным")
		assert.Equal(t, 0.0, result.Float64)
	})
}

// ========== Тесты для NullableBool ==========

func TestNullableBool(t *testing.T) {
	t.Run("true значение", func(t *testing.T) {
		val := true
		result := NullableBool(&val)

		assert.True(t, result.Valid)
		assert.True(t, result.Bool)
	})

	t.Run("false значение", func(t *testing.T) {
		val := false
		result := NullableBool(&val)

		assert.True(t, result.Valid, "false должен быть валидным")
		assert.False(t, result.Bool)
	})

	t.Run("nil указатель", func(t *testing.T) {
		result := NullableBool(nil)

		assert.False(t, result.Valid)
	})
}

// ========== Тесты для NullableTime ==========

func TestNullableTime(t *testing.T) {
	t.Run("валидное время", func(t *testing.T) {
		now := time.Now()
		result := NullableTime(&now)

		assert.True(t, result.Valid)
		assert.Equal(t, now, result.Time)
	})

	t.Run("nil указатель", func(t *testing.T) {
		result := NullableTime(nil)

		assert.False(t, result.Valid)
	})
}

// ========== Тесты для NilIfEmpty ==========

func TestNilIfEmpty(t *testing.T) {
	t.Run("пустая строка возвращает nil", func(t *testing.T) {
		result := NilIfEmpty("")

		assert.Nil(t, result)
	})

	t.Run("непустая строка возвращает указатель", func(t *testing.T) {
		result := NilIfEmpty("test")

		assert.NotNil(t, result)
		assert.Equal(t, "test", *result)
	})
}

// ========== Тесты для CellString ==========

func TestCellString(t *testing.T) {
	t.Run("обычное значение", func(t *testing.T) {
		result := CellString("Paracetamol 500mg")

		assert.True(t, result.Valid)
		assert.Equal(t, "Paracetamol 500mg", result.String)
	})

	t.Run("значение обрезается по пробелам", func(t *testing.T) {
		result := CellString("  ABC123  ")

		assert.True(t, result.Valid)
		assert.Equal(t, "ABC123", result.String)
	})

	t.Run("пустая ячейка", func(t *testing.T) {
		result := CellString("")

		assert.False(t, result.Valid)
	})

	t.Run("ячейка из одних пробелов", func(t *testing.T) {
		result := CellString("   ")

		assert.False(t, result.Valid)
	})

	t.Run("pandas nan в любом регистре", func(t *testing.T) {
		for _, v := range []string{"nan", "NaN", "NAN"} {
			result := CellString(v)
			assert.False(t, result.Valid, "значение %q должно считаться NULL", v)
		}
	})
}
