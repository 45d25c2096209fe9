package service

import (
	"time"

	"posadmin/m/internal/store"
)

// Services groups the per-entity services built on one store.
type Services struct {
	Customers *CustomerService
	Cashiers  *CashierService
	Suppliers *SupplierService
	Products  *ProductService
	Sales     *SaleService
	Report    *ReportService
}

func New(st *store.Store) *Services {
	return &Services{
		Customers: &CustomerService{store: st},
		Cashiers:  &CashierService{store: st},
		Suppliers: &SupplierService{store: st},
		Products:  &ProductService{store: st},
		Sales:     &SaleService{store: st, now: time.Now},
		Report:    &ReportService{store: st},
	}
}
