package store

import (
	"context"

	"posadmin/m/domain"
)

func (q *Queries) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers := []domain.Supplier{}
	err := q.selectAll(ctx, &suppliers, `SELECT id, description, supplier_type FROM suppliers ORDER BY id DESC`)
	return suppliers, err
}

func (q *Queries) GetSupplier(ctx context.Context, id int64) (domain.Supplier, error) {
	var s domain.Supplier
	err := q.get(ctx, &s, `SELECT id, description, supplier_type FROM suppliers WHERE id = ?`, id)
	return s, err
}

// FindSupplierByDescription is a case-sensitive exact match on description.
func (q *Queries) FindSupplierByDescription(ctx context.Context, description string) (domain.Supplier, error) {
	var s domain.Supplier
	err := q.get(ctx, &s, `SELECT id, description, supplier_type FROM suppliers WHERE description = ? ORDER BY id LIMIT 1`, description)
	return s, err
}

func (q *Queries) CreateSupplier(ctx context.Context, description, supplierType *string) (domain.Supplier, error) {
	var s domain.Supplier
	err := q.get(ctx, &s, `INSERT INTO suppliers (description, supplier_type) VALUES (?, ?)
		RETURNING id, description, supplier_type`, description, supplierType)
	return s, err
}

// UpdateSupplier overwrites the non-nil fields of supplier id.
func (q *Queries) UpdateSupplier(ctx context.Context, id int64, description, supplierType *string) (domain.Supplier, error) {
	var s domain.Supplier
	err := q.get(ctx, &s, `UPDATE suppliers SET description = COALESCE(?, description), supplier_type = COALESCE(?, supplier_type)
		WHERE id = ? RETURNING id, description, supplier_type`, description, supplierType, id)
	return s, err
}

func (q *Queries) DeleteSupplier(ctx context.Context, id int64) error {
	return q.execOne(ctx, `DELETE FROM suppliers WHERE id = ?`, id)
}

// DuplicateSupplierDescriptions lists descriptions carried by more than one supplier row.
func (q *Queries) DuplicateSupplierDescriptions(ctx context.Context) ([]domain.DescriptionCount, error) {
	dups := []domain.DescriptionCount{}
	err := q.selectAll(ctx, &dups, `SELECT description, COUNT(*) AS count FROM suppliers
		GROUP BY description HAVING COUNT(*) > 1 ORDER BY description`)
	return dups, err
}
