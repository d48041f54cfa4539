package erpdb_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plazza-health/catalogue-go/cmd/internal/db/erpdb"
	"github.com/plazza-health/catalogue-go/cmd/internal/testutil"
)

func setupErpStore(t *testing.T) erpdb.Store {
	testutil.SkipIfNoDocker(t)

	conn, container, err := testutil.SetupTestDatabase(t)
	require.NoError(t, err)
	t.Cleanup(func() {
		testutil.TeardownTestDatabase(t, conn, container)
	})

	require.NoError(t, testutil.RunMigrations(t, conn, "erp"))
	return erpdb.NewStore(conn)
}

func TestDistributorPricingLookups(t *testing.T) {
	store := setupErpStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertDistributorPricing(ctx, erpdb.InsertDistributorPricingParams{
		ItemCode:         "ABC123",
		OriginalItemCode: sql.NullString{String: "LEGACY-1", Valid: true},
		Mrp:              sql.NullFloat64{Float64: 130, Valid: true},
		PurchaseRate:     sql.NullFloat64{Float64: 100, Valid: true},
	}))
	require.NoError(t, store.InsertDistributorPricing(ctx, erpdb.InsertDistributorPricingParams{
		ItemCode: "abc123",
		Mrp:      sql.NullFloat64{Float64: 999, Valid: true},
	}))

	t.Run("поиск без учета регистра по обоим кодам", func(t *testing.T) {
		rows, err := store.FindDistributorPricingByCodes(ctx, []string{"abc123", "legacy-1"})
		require.NoError(t, err)
		// Обе записи матчатся по item_code, первая еще и по original_item_code
		require.Len(t, rows, 2)
		// ORDER BY id — запись с меньшим id идет первой
		assert.Equal(t, "ABC123", rows[0].ItemCode)
	})

	t.Run("точечный поиск по item_code", func(t *testing.T) {
		row, err := store.GetDistributorPricingByItemCode(ctx, "ABC123")
		require.NoError(t, err)
		assert.Equal(t, float64(130), row.Mrp.Float64)
	})

	t.Run("неизвестный код дает sql.ErrNoRows", func(t *testing.T) {
		_, err := store.GetDistributorPricingByItemCode(ctx, "GHOST")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("счетчик строк", func(t *testing.T) {
		count, err := store.GetDistributorPricingCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}
