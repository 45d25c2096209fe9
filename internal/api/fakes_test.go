package api_test

import (
	"context"

	"posadmin/m/domain"
	"posadmin/m/internal/service"
)

type fakeCustomers struct {
	list   func(ctx context.Context) ([]domain.Customer, error)
	get    func(ctx context.Context, id int64) (*domain.Customer, error)
	create func(ctx context.Context, in service.PersonInput) (domain.Customer, error)
	update func(ctx context.Context, id int64, in service.PersonInput) (domain.Customer, error)
	delete func(ctx context.Context, id int64) error
}

func (f *fakeCustomers) List(ctx context.Context) ([]domain.Customer, error) { return f.list(ctx) }
func (f *fakeCustomers) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return f.get(ctx, id)
}
func (f *fakeCustomers) Create(ctx context.Context, in service.PersonInput) (domain.Customer, error) {
	return f.create(ctx, in)
}
func (f *fakeCustomers) Update(ctx context.Context, id int64, in service.PersonInput) (domain.Customer, error) {
	return f.update(ctx, id, in)
}
func (f *fakeCustomers) Delete(ctx context.Context, id int64) error { return f.delete(ctx, id) }

type fakeSuppliers struct {
	create func(ctx context.Context, in service.SupplierInput) (domain.Supplier, error)
}

func (f *fakeSuppliers) List(context.Context) ([]domain.Supplier, error) { return []domain.Supplier{}, nil }
func (f *fakeSuppliers) Get(context.Context, int64) (*domain.Supplier, error) {
	return nil, nil
}
func (f *fakeSuppliers) Create(ctx context.Context, in service.SupplierInput) (domain.Supplier, error) {
	return f.create(ctx, in)
}
func (f *fakeSuppliers) Update(context.Context, int64, service.SupplierInput) (domain.Supplier, error) {
	return domain.Supplier{}, nil
}
func (f *fakeSuppliers) Delete(context.Context, int64) error { return nil }

type fakeProducts struct {
	create func(ctx context.Context, in service.ProductInput) (domain.Product, error)
}

func (f *fakeProducts) List(context.Context) ([]domain.Product, error) { return []domain.Product{}, nil }
func (f *fakeProducts) Get(context.Context, int64) (*domain.Product, error) {
	return nil, nil
}
func (f *fakeProducts) Create(ctx context.Context, in service.ProductInput) (domain.Product, error) {
	return f.create(ctx, in)
}
func (f *fakeProducts) Update(context.Context, int64, service.ProductInput) (domain.Product, error) {
	return domain.Product{}, nil
}
func (f *fakeProducts) Delete(context.Context, int64) error { return nil }

type fakeSales struct {
	get    func(ctx context.Context, id int64) (*domain.Sale, error)
	create func(ctx context.Context, in service.SaleInput) (domain.Sale, error)
	delete func(ctx context.Context, id int64) error
}

func (f *fakeSales) List(context.Context) ([]domain.Sale, error) { return []domain.Sale{}, nil }
func (f *fakeSales) Get(ctx context.Context, id int64) (*domain.Sale, error) {
	return f.get(ctx, id)
}
func (f *fakeSales) Create(ctx context.Context, in service.SaleInput) (domain.Sale, error) {
	return f.create(ctx, in)
}
func (f *fakeSales) Update(context.Context, int64, service.SaleInput) (domain.Sale, error) {
	return domain.Sale{}, nil
}
func (f *fakeSales) Delete(ctx context.Context, id int64) error { return f.delete(ctx, id) }

type fakeReport struct {
	rows func(ctx context.Context, query string) ([]domain.ReportRow, error)
}

func (f *fakeReport) Rows(ctx context.Context, query string) ([]domain.ReportRow, error) {
	return f.rows(ctx, query)
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }
