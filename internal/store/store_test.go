package store_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posadmin/m/domain"
	"posadmin/m/internal/config"
	"posadmin/m/internal/database"
	"posadmin/m/internal/migrations"
	"posadmin/m/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	ctx := context.Background()
	db, err := database.Connect(ctx, config.DriverSQLite, "file::memory:?_pragma=foreign_keys(1)&_time_format=sqlite")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrations.Run(ctx, db))
	return store.New(db)
}

func strPtr(s string) *string { return &s }

func TestCustomers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	allen, err := s.CreateCustomer(ctx, strPtr("Allen"), strPtr("Danao"))
	require.NoError(t, err)
	mike, err := s.CreateCustomer(ctx, strPtr("Mike"), strPtr("Cheq"))
	require.NoError(t, err)
	assert.Equal(t, allen.ID+1, mike.ID)

	_, err = s.CreateCustomer(ctx, strPtr("Allen"), strPtr("Danao"))
	assert.ErrorIs(t, err, store.ErrDuplicate)

	_, err = s.CreateCustomer(ctx, nil, strPtr("Nobody"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrDuplicate)

	list, err := s.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, mike.ID, list[0].ID)

	updated, err := s.UpdateCustomer(ctx, allen.ID, strPtr("Alan"), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.Customer{ID: allen.ID, FirstName: "Alan", LastName: "Danao"}, updated)

	_, err = s.UpdateCustomer(ctx, 999, strPtr("X"), nil)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.GetCustomer(ctx, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.DeleteCustomer(ctx, mike.ID))
	assert.ErrorIs(t, s.DeleteCustomer(ctx, mike.ID), store.ErrNotFound)
}

func TestCashiers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	john, err := s.CreateCashier(ctx, strPtr("John"), strPtr("Doe"))
	require.NoError(t, err)

	_, err = s.CreateCashier(ctx, strPtr("John"), strPtr("Doe"))
	assert.ErrorIs(t, err, store.ErrDuplicate)

	jean, err := s.CreateCashier(ctx, strPtr("Jean"), strPtr("Barquin"))
	require.NoError(t, err)
	_, err = s.UpdateCashier(ctx, jean.ID, strPtr("John"), strPtr("Doe"))
	assert.ErrorIs(t, err, store.ErrDuplicate)

	got, err := s.GetCashier(ctx, john.ID)
	require.NoError(t, err)
	assert.Equal(t, john, got)
}

func TestSuppliers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	acs, err := s.CreateSupplier(ctx, strPtr("ACS"), strPtr("Wholesale"))
	require.NoError(t, err)
	plain, err := s.CreateSupplier(ctx, strPtr("Plain"), nil)
	require.NoError(t, err)
	assert.Nil(t, plain.Type)

	found, err := s.FindSupplierByDescription(ctx, "ACS")
	require.NoError(t, err)
	assert.Equal(t, acs.ID, found.ID)

	_, err = s.FindSupplierByDescription(ctx, "acs")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.CreateSupplier(ctx, strPtr("ACS"), nil)
	assert.ErrorIs(t, err, store.ErrDuplicate)

	updated, err := s.UpdateSupplier(ctx, plain.ID, nil, strPtr("Distributor"))
	require.NoError(t, err)
	assert.Equal(t, "Plain", updated.Description)
	require.NotNil(t, updated.Type)
	assert.Equal(t, "Distributor", *updated.Type)

	dups, err := s.DuplicateSupplierDescriptions(ctx)
	require.NoError(t, err)
	assert.Empty(t, dups)
}

func TestProducts_ReplaceSuppliers(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a, err := s.CreateSupplier(ctx, strPtr("A"), nil)
	require.NoError(t, err)
	b, err := s.CreateSupplier(ctx, strPtr("B"), nil)
	require.NoError(t, err)
	c, err := s.CreateSupplier(ctx, strPtr("C"), nil)
	require.NoError(t, err)

	p, err := s.CreateProduct(ctx, strPtr("Dish Soap 500ML"))
	require.NoError(t, err)
	require.NoError(t, s.ReplaceProductSuppliers(ctx, p.ID, []int64{b.ID, a.ID}))

	got, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{a.ID, b.ID}, got.SupplierIDs())
	assert.Equal(t, "A", got.Suppliers[0].Supplier.Description)

	require.NoError(t, s.ReplaceProductSuppliers(ctx, p.ID, []int64{c.ID}))
	got, err = s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{c.ID}, got.SupplierIDs())

	assert.Error(t, s.ReplaceProductSuppliers(ctx, p.ID, []int64{999}))

	matches, err := s.FindProductsByDescription(ctx, "Dish Soap 500ML", 0)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	matches, err = s.FindProductsByDescription(ctx, "Dish Soap 500ML", p.ID)
	require.NoError(t, err)
	assert.Empty(t, matches)

	require.NoError(t, s.DeleteProduct(ctx, p.ID))
	list, err := s.ListProducts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestSales_Assembled(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	cust, err := s.CreateCustomer(ctx, strPtr("Allen"), strPtr("Danao"))
	require.NoError(t, err)
	cash, err := s.CreateCashier(ctx, strPtr("John"), strPtr("Doe"))
	require.NoError(t, err)
	sup, err := s.CreateSupplier(ctx, strPtr("ACS"), strPtr("Wholesale"))
	require.NoError(t, err)
	tide, err := s.CreateProduct(ctx, strPtr("Tide Bar"))
	require.NoError(t, err)
	require.NoError(t, s.ReplaceProductSuppliers(ctx, tide.ID, []int64{sup.ID}))
	cup, err := s.CreateProduct(ctx, strPtr("Plastic Cup"))
	require.NoError(t, err)

	date := time.Date(2016, 9, 1, 10, 30, 0, 0, time.UTC)
	id, err := s.CreateSale(ctx, domain.Sale{CustomerID: cust.ID, CashierID: cash.ID, SalesDate: date, Status: domain.SaleStatusActive})
	require.NoError(t, err)
	require.NoError(t, s.InsertSaleItems(ctx, id, []domain.SaleItem{
		{ProductID: tide.ID, Quantity: 2, UnitPrice: decimal.RequireFromString("45.50")},
		{ProductID: cup.ID, Quantity: 10, UnitPrice: decimal.RequireFromString("12.75")},
	}))

	sale, err := s.GetSale(ctx, id)
	require.NoError(t, err)
	assert.True(t, date.Equal(sale.SalesDate), "got %s", sale.SalesDate)
	assert.Equal(t, domain.SaleStatusActive, sale.Status)
	require.NotNil(t, sale.Customer)
	assert.Equal(t, "Allen", sale.Customer.FirstName)
	require.NotNil(t, sale.Cashier)
	assert.Equal(t, "Doe", sale.Cashier.LastName)
	require.Len(t, sale.Items, 2)
	require.NotNil(t, sale.Items[0].Product)
	assert.Equal(t, "Tide Bar", sale.Items[0].Product.Description)
	assert.Equal(t, "ACS", sale.Items[0].Product.FirstSupplier().Description)
	assert.Nil(t, sale.Items[1].Product.FirstSupplier())
	assert.True(t, decimal.RequireFromString("218.50").Equal(sale.Total()), "got %s", sale.Total())

	n, err := s.DeleteSaleItems(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	require.NoError(t, s.UpdateSale(ctx, id, cust.ID, cash.ID, nil, domain.SaleStatusInactive))
	sale, err = s.GetSale(ctx, id)
	require.NoError(t, err)
	assert.True(t, date.Equal(sale.SalesDate))
	assert.Equal(t, domain.SaleStatusInactive, sale.Status)
	assert.NotNil(t, sale.Items)
	assert.Empty(t, sale.Items)

	assert.ErrorIs(t, s.SetSaleStatus(ctx, 999, domain.SaleStatusInactive), store.ErrNotFound)
	assert.Error(t, s.SetSaleStatus(ctx, id, "Deleted"))

	// referenced customers cannot be removed
	require.Error(t, s.DeleteCustomer(ctx, cust.ID))
	_, err = s.GetCustomer(ctx, cust.ID)
	assert.NoError(t, err)
}

func TestListSales_Order(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	cust, err := s.CreateCustomer(ctx, strPtr("Allen"), strPtr("Danao"))
	require.NoError(t, err)
	cash, err := s.CreateCashier(ctx, strPtr("John"), strPtr("Doe"))
	require.NoError(t, err)

	dates := []time.Time{
		time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2016, 2, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2016, 11, 20, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		_, err := s.CreateSale(ctx, domain.Sale{CustomerID: cust.ID, CashierID: cash.ID, SalesDate: d, Status: domain.SaleStatusActive})
		require.NoError(t, err)
	}

	byID, err := s.ListSales(ctx, store.NewestFirst)
	require.NoError(t, err)
	require.Len(t, byID, 3)
	assert.Greater(t, byID[0].ID, byID[1].ID)
	assert.Greater(t, byID[1].ID, byID[2].ID)

	byDate, err := s.ListSales(ctx, store.ByDateDesc)
	require.NoError(t, err)
	require.Len(t, byDate, 3)
	assert.Equal(t, 11, int(byDate[0].SalesDate.Month()))
	assert.Equal(t, 9, int(byDate[1].SalesDate.Month()))
	assert.Equal(t, 2, int(byDate[2].SalesDate.Month()))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(q *store.Queries) error {
		if _, err := q.CreateCustomer(ctx, strPtr("Sarah"), strPtr("Johnson")); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := s.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, s.WithTx(ctx, func(q *store.Queries) error {
		_, err := q.CreateCustomer(ctx, strPtr("Sarah"), strPtr("Johnson"))
		return err
	}))
	list, err = s.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestTruncate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.CreateCustomer(ctx, strPtr("Allen"), strPtr("Danao"))
	require.NoError(t, err)
	_, err = s.CreateSupplier(ctx, strPtr("ACS"), nil)
	require.NoError(t, err)

	require.NoError(t, s.Truncate(ctx))
	customers, err := s.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers)
	suppliers, err := s.ListSuppliers(ctx)
	require.NoError(t, err)
	assert.Empty(t, suppliers)
}

func newMockStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return store.New(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestWithTx_ReplaceSuppliersFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM product_suppliers WHERE product_id = ?`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO product_suppliers (product_id, supplier_id) VALUES (?, ?)`)).
		WithArgs(int64(5), int64(42)).
		WillReturnError(errors.New("FOREIGN KEY constraint failed"))
	mock.ExpectRollback()

	err := s.WithTx(ctx, func(q *store.Queries) error {
		return q.ReplaceProductSuppliers(ctx, 5, []int64{42})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_Commits(t *testing.T) {
	ctx := context.Background()
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE sales SET status = ? WHERE id = ?`)).
		WithArgs(domain.SaleStatusInactive, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.WithTx(ctx, func(q *store.Queries) error {
		return q.SetSaleStatus(ctx, 3, domain.SaleStatusInactive)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_BeginFailure(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false
	err := s.WithTx(context.Background(), func(q *store.Queries) error {
		called = true
		return nil
	})
	assert.ErrorContains(t, err, "begin transaction")
	assert.False(t, called)
}
