package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"posadmin/m/domain"
	"posadmin/m/internal/store"
)

type SupplierInput struct {
	Description *string
	Type        *string
}

func supplierConflict(description *string) string {
	if description == nil {
		return "A supplier with this description already exists."
	}
	return fmt.Sprintf(`A supplier with description "%s" already exists.`, *description)
}

type SupplierService struct {
	store *store.Store
}

func (s *SupplierService) List(ctx context.Context) (_ []domain.Supplier, err error) {
	ctx, span := startSpan(ctx, "suppliers.List")
	defer func() { endSpan(ctx, span, "suppliers.List", err) }()

	suppliers, err := s.store.ListSuppliers(ctx)
	if err != nil {
		return nil, Internal(err)
	}
	return suppliers, nil
}

func (s *SupplierService) Get(ctx context.Context, id int64) (_ *domain.Supplier, err error) {
	ctx, span := startSpan(ctx, "suppliers.Get", attribute.Int64("supplier.id", id))
	defer func() { endSpan(ctx, span, "suppliers.Get", err) }()

	sup, err := s.store.GetSupplier(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, Internal(err)
	}
	return &sup, nil
}

// Create rejects a description already carried by another supplier (exact,
// case-sensitive match) before inserting. The unique index backs the check up.
func (s *SupplierService) Create(ctx context.Context, in SupplierInput) (_ domain.Supplier, err error) {
	ctx, span := startSpan(ctx, "suppliers.Create")
	defer func() { endSpan(ctx, span, "suppliers.Create", err) }()

	if in.Description != nil {
		_, err := s.store.FindSupplierByDescription(ctx, *in.Description)
		switch {
		case err == nil:
			return domain.Supplier{}, Conflict(supplierConflict(in.Description))
		case !errors.Is(err, store.ErrNotFound):
			return domain.Supplier{}, Internal(err)
		}
	}

	sup, err := s.store.CreateSupplier(ctx, in.Description, in.Type)
	if err != nil {
		return domain.Supplier{}, fromStore(err, supplierConflict(in.Description))
	}
	span.SetAttributes(attribute.Int64("supplier.id", sup.ID))
	return sup, nil
}

func (s *SupplierService) Update(ctx context.Context, id int64, in SupplierInput) (_ domain.Supplier, err error) {
	ctx, span := startSpan(ctx, "suppliers.Update", attribute.Int64("supplier.id", id))
	defer func() { endSpan(ctx, span, "suppliers.Update", err) }()

	sup, err := s.store.UpdateSupplier(ctx, id, in.Description, in.Type)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Supplier{}, notFound("supplier", id)
	}
	if err != nil {
		return domain.Supplier{}, fromStore(err, supplierConflict(in.Description))
	}
	return sup, nil
}

// Delete removes the supplier and its product links.
func (s *SupplierService) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := startSpan(ctx, "suppliers.Delete", attribute.Int64("supplier.id", id))
	defer func() { endSpan(ctx, span, "suppliers.Delete", err) }()

	err = s.store.DeleteSupplier(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return notFound("supplier", id)
	}
	if err != nil {
		return Internal(err)
	}
	return nil
}

// DuplicateDescriptions lists supplier descriptions that occur more than once.
func (s *SupplierService) DuplicateDescriptions(ctx context.Context) (_ []domain.DescriptionCount, err error) {
	ctx, span := startSpan(ctx, "suppliers.DuplicateDescriptions")
	defer func() { endSpan(ctx, span, "suppliers.DuplicateDescriptions", err) }()

	dups, err := s.store.DuplicateSupplierDescriptions(ctx)
	if err != nil {
		return nil, Internal(err)
	}
	return dups, nil
}
