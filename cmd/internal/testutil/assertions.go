package testutil

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertJSONEqual сравнивает два JSON объекта независимо от порядка полей
func AssertJSONEqual(t *testing.T, expected, actual string) {
	t.Helper()

	var expectedJSON, actualJSON interface{}

	err := json.Unmarshal([]byte(expected), &expectedJSON)
	require.NoError(t, err, "Invalid expected JSON")

	err = json.Unmarshal([]byte(actual), &actualJSON)
	require.NoError(t, err, "Invalid actual JSON")

	assert.Equal(t, expectedJSON, actualJSON)
}

// AssertErrorContains проверяет, что ошибка содержит определенную подстроку
func AssertErrorContains(t *testing.T, err error, substring string) {
	t.Helper()

	require.Error(t, err, "Expected an error but got nil")
	assert.Contains(t, err.Error(), substring)
}

// AssertContains проверяет, что строка содержит подстроку
func AssertContains(t *testing.T, s, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Contains(t, s, substr, msgAndArgs...)
}

// AssertValidNullString проверяет sql-nullable строку на валидность и значение
func AssertValidNullString(t *testing.T, ns sql.NullString, expected string) {
	t.Helper()

	require.True(t, ns.Valid, "expected non-NULL value")
	assert.Equal(t, expected, ns.String)
}

// AssertNullString проверяет, что nullable строка содержит NULL
func AssertNullString(t *testing.T, ns sql.NullString) {
	t.Helper()
	assert.False(t, ns.Valid, "expected NULL value")
}
