package store

import (
	"context"

	"posadmin/m/domain"
)

const productSupplierQuery = `SELECT ps.product_id, ps.supplier_id,
		s.id AS "supplier.id", s.description AS "supplier.description", s.supplier_type AS "supplier.supplier_type"
	FROM product_suppliers ps
	JOIN suppliers s ON s.id = ps.supplier_id
	WHERE ps.product_id IN (?)
	ORDER BY ps.product_id, ps.supplier_id`

func (q *Queries) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	if err := q.selectAll(ctx, &products, `SELECT id, description FROM products ORDER BY id DESC`); err != nil {
		return nil, err
	}
	if err := q.attachSuppliers(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

func (q *Queries) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	var p domain.Product
	if err := q.get(ctx, &p, `SELECT id, description FROM products WHERE id = ?`, id); err != nil {
		return p, err
	}
	products := []domain.Product{p}
	if err := q.attachSuppliers(ctx, products); err != nil {
		return p, err
	}
	return products[0], nil
}

// FindProductsByDescription returns every product other than excludeID whose
// description equals description exactly, with suppliers resolved.
func (q *Queries) FindProductsByDescription(ctx context.Context, description string, excludeID int64) ([]domain.Product, error) {
	products := []domain.Product{}
	err := q.selectAll(ctx, &products, `SELECT id, description FROM products WHERE description = ? AND id <> ? ORDER BY id`,
		description, excludeID)
	if err != nil {
		return nil, err
	}
	if err := q.attachSuppliers(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

func (q *Queries) CreateProduct(ctx context.Context, description *string) (domain.Product, error) {
	var p domain.Product
	err := q.get(ctx, &p, `INSERT INTO products (description) VALUES (?) RETURNING id, description`, description)
	return p, err
}

func (q *Queries) UpdateProduct(ctx context.Context, id int64, description *string) (domain.Product, error) {
	var p domain.Product
	err := q.get(ctx, &p, `UPDATE products SET description = COALESCE(?, description) WHERE id = ?
		RETURNING id, description`, description, id)
	return p, err
}

// DeleteProduct removes the product; its supplier links cascade.
func (q *Queries) DeleteProduct(ctx context.Context, id int64) error {
	return q.execOne(ctx, `DELETE FROM products WHERE id = ?`, id)
}

// ReplaceProductSuppliers drops every supplier link of productID and links supplierIDs instead.
func (q *Queries) ReplaceProductSuppliers(ctx context.Context, productID int64, supplierIDs []int64) error {
	if _, err := q.exec(ctx, `DELETE FROM product_suppliers WHERE product_id = ?`, productID); err != nil {
		return err
	}
	for _, supplierID := range supplierIDs {
		if _, err := q.exec(ctx, `INSERT INTO product_suppliers (product_id, supplier_id) VALUES (?, ?)`,
			productID, supplierID); err != nil {
			return err
		}
	}
	return nil
}

func (q *Queries) attachSuppliers(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	var links []domain.ProductSupplier
	if err := q.selectIn(ctx, &links, productSupplierQuery, ids); err != nil {
		return err
	}
	byProduct := make(map[int64][]domain.ProductSupplier, len(products))
	for _, link := range links {
		byProduct[link.ProductID] = append(byProduct[link.ProductID], link)
	}
	for i := range products {
		products[i].Suppliers = byProduct[products[i].ID]
		if products[i].Suppliers == nil {
			products[i].Suppliers = []domain.ProductSupplier{}
		}
	}
	return nil
}

// productsByID loads the given products, keyed by id.
func (q *Queries) productsByID(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	out := make(map[int64]domain.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var products []domain.Product
	if err := q.selectIn(ctx, &products, `SELECT id, description FROM products WHERE id IN (?)`, ids); err != nil {
		return nil, err
	}
	if err := q.attachSuppliers(ctx, products); err != nil {
		return nil, err
	}
	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}
