package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========== Тесты для RoundTo2 ==========

func TestRoundTo2(t *testing.T) {
	t.Run("округление вниз", func(t *testing.T) {
		assert.Equal(t, 117.0, RoundTo2(117.004))
	})

	t.Run("half-up на границе", func(t *testing.T) {
		assert.Equal(t, 117.01, RoundTo2(117.005))
	})

	t.Run("округление вверх", func(t *testing.T) {
		assert.Equal(t, 99.1, RoundTo2(99.096))
	})

	t.Run("целое число не меняется", func(t *testing.T) {
		assert.Equal(t, 130.0, RoundTo2(130.0))
	})
}

// ========== Тесты для ParseNullFloat ==========

func TestParseNullFloat(t *testing.T) {
	t.Run("валидное число", func(t *testing.T) {
		result, err := ParseNullFloat("123.45")

		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, 123.45, result.Float64)
	})

	t.Run("пустая ячейка дает NULL", func(t *testing.T) {
		result, err := ParseNullFloat("")

		require.NoError(t, err)
		assert.False(t, result.Valid)
	})

	t.Run("nan дает NULL", func(t *testing.T) {
		result, err := ParseNullFloat("nan")

		require.NoError(t, err)
		assert.False(t, result.Valid)
	})

	t.Run("нечисловое значение дает ошибку", func(t *testing.T) {
		_, err := ParseNullFloat("abc")

		require.Error(t, err)
	})

	t.Run("пробелы вокруг числа", func(t *testing.T) {
		result, err := ParseNullFloat(" 18.0 ")

		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, 18.0, result.Float64)
	})
}
