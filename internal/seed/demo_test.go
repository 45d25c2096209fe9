package seed_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posadmin/m/internal/config"
	"posadmin/m/internal/database"
	"posadmin/m/internal/migrations"
	"posadmin/m/internal/seed"
	"posadmin/m/internal/store"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	ctx := context.Background()
	db, err := database.Connect(ctx, config.DriverSQLite, "file::memory:?_pragma=foreign_keys(1)&_time_format=sqlite")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrations.Run(ctx, db))
	return store.New(db)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	sum, err := seed.Load(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, seed.Summary{Customers: 5, Cashiers: 4, Suppliers: 4, Products: 8, Sales: 5, Items: 11}, sum)

	// loading again replaces rather than duplicates
	_, err = seed.Load(ctx, st)
	require.NoError(t, err)

	customers, err := st.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 5)

	products, err := st.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 8)
	for _, p := range products {
		if p.Description == "Dish Soap 500ML" {
			assert.Len(t, p.Suppliers, 2)
			assert.Equal(t, "ACS", p.FirstSupplier().Description)
		}
	}

	sales, err := st.ListSales(ctx, store.ByDateDesc)
	require.NoError(t, err)
	require.Len(t, sales, 5)
	assert.Equal(t, "2016-11-20", sales[0].SalesDate.UTC().Format("2006-01-02"))
	assert.Equal(t, "David", sales[0].Customer.FirstName)

	total := decimal.Zero
	for _, s := range sales {
		if s.Customer.FirstName == "Allen" {
			total = s.Total()
		}
	}
	// 2*45.50 + 3*35.00 + 10*12.75
	assert.True(t, decimal.RequireFromString("323.50").Equal(total), "got %s", total)
}

func TestCheckDuplicates_None(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)
	_, err := seed.Load(ctx, st)
	require.NoError(t, err)

	var out bytes.Buffer
	n, err := seed.CheckDuplicates(ctx, st, &out)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "No duplicate supplier descriptions found.\n", out.String())
}
