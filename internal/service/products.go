package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"posadmin/m/domain"
	"posadmin/m/internal/store"
)

// ProductInput describes a product write. SupplierIDs is the complete
// supplier set; nil means no suppliers.
type ProductInput struct {
	Description *string
	SupplierIDs []int64
}

type ProductService struct {
	store *store.Store
}

func (s *ProductService) List(ctx context.Context) (_ []domain.Product, err error) {
	ctx, span := startSpan(ctx, "products.List")
	defer func() { endSpan(ctx, span, "products.List", err) }()

	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, Internal(err)
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (_ *domain.Product, err error) {
	ctx, span := startSpan(ctx, "products.Get", attribute.Int64("product.id", id))
	defer func() { endSpan(ctx, span, "products.Get", err) }()

	p, err := s.store.GetProduct(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, Internal(err)
	}
	return &p, nil
}

// Create inserts the product with its supplier links. It is rejected when a
// product with the same description already shares a supplier with the request.
func (s *ProductService) Create(ctx context.Context, in ProductInput) (_ domain.Product, err error) {
	ctx, span := startSpan(ctx, "products.Create", attribute.Int("product.suppliers", len(in.SupplierIDs)))
	defer func() { endSpan(ctx, span, "products.Create", err) }()

	supplierIDs := uniqueIDs(in.SupplierIDs)
	var product domain.Product
	err = s.store.WithTx(ctx, func(q *store.Queries) error {
		if in.Description != nil {
			if err := checkOverlap(ctx, q, *in.Description, supplierIDs, 0); err != nil {
				return err
			}
		}
		created, err := q.CreateProduct(ctx, in.Description)
		if err != nil {
			return Internal(err)
		}
		if err := q.ReplaceProductSuppliers(ctx, created.ID, supplierIDs); err != nil {
			return Internal(err)
		}
		product, err = q.GetProduct(ctx, created.ID)
		if err != nil {
			return Internal(err)
		}
		return nil
	})
	if err != nil {
		return domain.Product{}, Internal(err)
	}
	span.SetAttributes(attribute.Int64("product.id", product.ID))
	return product, nil
}

// Update replaces the product's supplier set and description in one
// transaction, after the same overlap check as Create (ignoring the product itself).
func (s *ProductService) Update(ctx context.Context, id int64, in ProductInput) (_ domain.Product, err error) {
	ctx, span := startSpan(ctx, "products.Update", attribute.Int64("product.id", id))
	defer func() { endSpan(ctx, span, "products.Update", err) }()

	supplierIDs := uniqueIDs(in.SupplierIDs)
	var product domain.Product
	err = s.store.WithTx(ctx, func(q *store.Queries) error {
		current, err := q.GetProduct(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return notFound("product", id)
		}
		if err != nil {
			return Internal(err)
		}

		description := current.Description
		if in.Description != nil {
			description = *in.Description
		}
		if err := checkOverlap(ctx, q, description, supplierIDs, id); err != nil {
			return err
		}

		if err := q.ReplaceProductSuppliers(ctx, id, supplierIDs); err != nil {
			return Internal(err)
		}
		if _, err := q.UpdateProduct(ctx, id, in.Description); err != nil {
			return Internal(err)
		}
		product, err = q.GetProduct(ctx, id)
		if err != nil {
			return Internal(err)
		}
		return nil
	})
	if err != nil {
		return domain.Product{}, Internal(err)
	}
	return product, nil
}

// Delete removes the product; its supplier links go with it.
func (s *ProductService) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := startSpan(ctx, "products.Delete", attribute.Int64("product.id", id))
	defer func() { endSpan(ctx, span, "products.Delete", err) }()

	err = s.store.DeleteProduct(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return notFound("product", id)
	}
	if err != nil {
		return Internal(err)
	}
	return nil
}

func checkOverlap(ctx context.Context, q *store.Queries, description string, supplierIDs []int64, excludeID int64) error {
	if len(supplierIDs) == 0 {
		return nil
	}
	existing, err := q.FindProductsByDescription(ctx, description, excludeID)
	if err != nil {
		return Internal(err)
	}
	if names := conflictingSuppliers(existing, supplierIDs); len(names) > 0 {
		return Conflict(fmt.Sprintf(`A product with description "%s" already exists with supplier(s): %s`,
			description, strings.Join(names, ", ")))
	}
	return nil
}

// conflictingSuppliers finds the first product in existing that shares a
// supplier with supplierIDs and returns the shared suppliers' descriptions.
func conflictingSuppliers(existing []domain.Product, supplierIDs []int64) []string {
	wanted := make(map[int64]bool, len(supplierIDs))
	for _, id := range supplierIDs {
		wanted[id] = true
	}
	for _, p := range existing {
		var names []string
		for _, ps := range p.Suppliers {
			if wanted[ps.SupplierID] {
				names = append(names, ps.Supplier.Description)
			}
		}
		if len(names) > 0 {
			return names
		}
	}
	return nil
}

// uniqueIDs drops repeated ids, keeping first occurrences in order.
func uniqueIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
