package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posadmin/m/internal/api"
	"posadmin/m/internal/config"
	"posadmin/m/internal/database"
	"posadmin/m/internal/migrations"
	"posadmin/m/internal/service"
	"posadmin/m/internal/store"
)

func storeDeps(t *testing.T) api.Deps {
	t.Helper()
	ctx := context.Background()
	db, err := database.Connect(ctx, config.DriverSQLite, "file::memory:?_pragma=foreign_keys(1)&_time_format=sqlite")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migrations.Run(ctx, db))
	st := store.New(db)
	return api.FromServices(service.New(st), st)
}

func TestSale_CreateThenGetOverStore(t *testing.T) {
	deps := storeDeps(t)

	for _, step := range []struct{ path, body string }{
		{"/api/customers", `{"firstFName":"Allen","lastLName":"Danao"}`},
		{"/api/cashiers", `{"cashierFName":"John","cashierLName":"Doe"}`},
		{"/api/suppliers", `{"supplierDesc":"ACS","supplierType":"Distributor"}`},
		{"/api/products", `{"ProdDesc":"Surf 150ML","supplierIDs":["1"]}`},
	} {
		rec := serve(t, deps, api.Options{}, http.MethodPost, step.path, step.body)
		require.Equal(t, http.StatusOK, rec.Code, "%s: %s", step.path, rec.Body.String())
	}

	want := `{
		"salesID": 1, "custID": 1, "cashierID": 1,
		"salesDate": "2016-09-01T00:00:00Z", "status": "Active",
		"customer": {"custID": 1, "firstFName": "Allen", "lastLName": "Danao"},
		"cashier": {"cashierID": 1, "cashierFName": "John", "cashierLName": "Doe"},
		"salesItems": [{
			"salesItemID": 1, "salesID": 1, "productID": 1, "quantity": 2, "unitPrice": "45.5",
			"product": {"productID": 1, "ProdDesc": "Surf 150ML", "suppliers": [
				{"productID": 1, "supplierID": 1, "supplier": {"supplierID": 1, "supplierDesc": "ACS", "supplierType": "Distributor"}}
			]}
		}]
	}`

	body := `{"custID":"1","cashierID":1,"salesDate":"2016-09-01","items":[{"productID":1,"quantity":"2.0","unitPrice":"45.50"}]}`
	rec := serve(t, deps, api.Options{}, http.MethodPost, "/api/sales", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, want, rec.Body.String())

	rec = serve(t, deps, api.Options{}, http.MethodGet, "/api/sales/1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, want, rec.Body.String())
}
