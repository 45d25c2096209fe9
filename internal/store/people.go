package store

import (
	"context"

	"posadmin/m/domain"
)

// Customers and cashiers share a shape, so their statements differ only by table name.

func (q *Queries) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers := []domain.Customer{}
	err := q.selectAll(ctx, &customers, `SELECT id, first_name, last_name FROM customers ORDER BY id DESC`)
	return customers, err
}

func (q *Queries) GetCustomer(ctx context.Context, id int64) (domain.Customer, error) {
	var c domain.Customer
	err := q.get(ctx, &c, `SELECT id, first_name, last_name FROM customers WHERE id = ?`, id)
	return c, err
}

// CreateCustomer inserts a customer. Nil names are written as NULL and rejected by the schema.
func (q *Queries) CreateCustomer(ctx context.Context, firstName, lastName *string) (domain.Customer, error) {
	var c domain.Customer
	err := q.get(ctx, &c, `INSERT INTO customers (first_name, last_name) VALUES (?, ?)
		RETURNING id, first_name, last_name`, firstName, lastName)
	return c, err
}

// UpdateCustomer overwrites the non-nil names of customer id.
func (q *Queries) UpdateCustomer(ctx context.Context, id int64, firstName, lastName *string) (domain.Customer, error) {
	var c domain.Customer
	err := q.get(ctx, &c, `UPDATE customers SET first_name = COALESCE(?, first_name), last_name = COALESCE(?, last_name)
		WHERE id = ? RETURNING id, first_name, last_name`, firstName, lastName, id)
	return c, err
}

func (q *Queries) DeleteCustomer(ctx context.Context, id int64) error {
	return q.execOne(ctx, `DELETE FROM customers WHERE id = ?`, id)
}

func (q *Queries) ListCashiers(ctx context.Context) ([]domain.Cashier, error) {
	cashiers := []domain.Cashier{}
	err := q.selectAll(ctx, &cashiers, `SELECT id, first_name, last_name FROM cashiers ORDER BY id DESC`)
	return cashiers, err
}

func (q *Queries) GetCashier(ctx context.Context, id int64) (domain.Cashier, error) {
	var c domain.Cashier
	err := q.get(ctx, &c, `SELECT id, first_name, last_name FROM cashiers WHERE id = ?`, id)
	return c, err
}

func (q *Queries) CreateCashier(ctx context.Context, firstName, lastName *string) (domain.Cashier, error) {
	var c domain.Cashier
	err := q.get(ctx, &c, `INSERT INTO cashiers (first_name, last_name) VALUES (?, ?)
		RETURNING id, first_name, last_name`, firstName, lastName)
	return c, err
}

func (q *Queries) UpdateCashier(ctx context.Context, id int64, firstName, lastName *string) (domain.Cashier, error) {
	var c domain.Cashier
	err := q.get(ctx, &c, `UPDATE cashiers SET first_name = COALESCE(?, first_name), last_name = COALESCE(?, last_name)
		WHERE id = ? RETURNING id, first_name, last_name`, firstName, lastName, id)
	return c, err
}

func (q *Queries) DeleteCashier(ctx context.Context, id int64) error {
	return q.execOne(ctx, `DELETE FROM cashiers WHERE id = ?`, id)
}
