package service

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"posadmin/m/domain"
	"posadmin/m/internal/store"
)

const (
	customerConflict = "A customer with this first name and last name already exists."
	cashierConflict  = "A cashier with this first name and last name already exists."
)

// PersonInput carries the name fields of a customer or cashier write.
// A nil field is left unchanged on update.
type PersonInput struct {
	FirstName *string
	LastName  *string
}

type CustomerService struct {
	store *store.Store
}

func (s *CustomerService) List(ctx context.Context) (_ []domain.Customer, err error) {
	ctx, span := startSpan(ctx, "customers.List")
	defer func() { endSpan(ctx, span, "customers.List", err) }()

	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return nil, Internal(err)
	}
	return customers, nil
}

// Get returns nil without error when no customer has the id.
func (s *CustomerService) Get(ctx context.Context, id int64) (_ *domain.Customer, err error) {
	ctx, span := startSpan(ctx, "customers.Get", attribute.Int64("customer.id", id))
	defer func() { endSpan(ctx, span, "customers.Get", err) }()

	c, err := s.store.GetCustomer(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, Internal(err)
	}
	return &c, nil
}

func (s *CustomerService) Create(ctx context.Context, in PersonInput) (_ domain.Customer, err error) {
	ctx, span := startSpan(ctx, "customers.Create")
	defer func() { endSpan(ctx, span, "customers.Create", err) }()

	c, err := s.store.CreateCustomer(ctx, in.FirstName, in.LastName)
	if err != nil {
		return domain.Customer{}, fromStore(err, customerConflict)
	}
	span.SetAttributes(attribute.Int64("customer.id", c.ID))
	return c, nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, in PersonInput) (_ domain.Customer, err error) {
	ctx, span := startSpan(ctx, "customers.Update", attribute.Int64("customer.id", id))
	defer func() { endSpan(ctx, span, "customers.Update", err) }()

	c, err := s.store.UpdateCustomer(ctx, id, in.FirstName, in.LastName)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Customer{}, notFound("customer", id)
	}
	if err != nil {
		return domain.Customer{}, fromStore(err, customerConflict)
	}
	return c, nil
}

// Delete fails while any sale still references the customer.
func (s *CustomerService) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := startSpan(ctx, "customers.Delete", attribute.Int64("customer.id", id))
	defer func() { endSpan(ctx, span, "customers.Delete", err) }()

	err = s.store.DeleteCustomer(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return notFound("customer", id)
	}
	if err != nil {
		return Internal(err)
	}
	return nil
}

type CashierService struct {
	store *store.Store
}

func (s *CashierService) List(ctx context.Context) (_ []domain.Cashier, err error) {
	ctx, span := startSpan(ctx, "cashiers.List")
	defer func() { endSpan(ctx, span, "cashiers.List", err) }()

	cashiers, err := s.store.ListCashiers(ctx)
	if err != nil {
		return nil, Internal(err)
	}
	return cashiers, nil
}

func (s *CashierService) Get(ctx context.Context, id int64) (_ *domain.Cashier, err error) {
	ctx, span := startSpan(ctx, "cashiers.Get", attribute.Int64("cashier.id", id))
	defer func() { endSpan(ctx, span, "cashiers.Get", err) }()

	c, err := s.store.GetCashier(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, Internal(err)
	}
	return &c, nil
}

func (s *CashierService) Create(ctx context.Context, in PersonInput) (_ domain.Cashier, err error) {
	ctx, span := startSpan(ctx, "cashiers.Create")
	defer func() { endSpan(ctx, span, "cashiers.Create", err) }()

	c, err := s.store.CreateCashier(ctx, in.FirstName, in.LastName)
	if err != nil {
		return domain.Cashier{}, fromStore(err, cashierConflict)
	}
	span.SetAttributes(attribute.Int64("cashier.id", c.ID))
	return c, nil
}

func (s *CashierService) Update(ctx context.Context, id int64, in PersonInput) (_ domain.Cashier, err error) {
	ctx, span := startSpan(ctx, "cashiers.Update", attribute.Int64("cashier.id", id))
	defer func() { endSpan(ctx, span, "cashiers.Update", err) }()

	c, err := s.store.UpdateCashier(ctx, id, in.FirstName, in.LastName)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Cashier{}, notFound("cashier", id)
	}
	if err != nil {
		return domain.Cashier{}, fromStore(err, cashierConflict)
	}
	return c, nil
}

func (s *CashierService) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := startSpan(ctx, "cashiers.Delete", attribute.Int64("cashier.id", id))
	defer func() { endSpan(ctx, span, "cashiers.Delete", err) }()

	err = s.store.DeleteCashier(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return notFound("cashier", id)
	}
	if err != nil {
		return Internal(err)
	}
	return nil
}
