package store

import (
	"context"
	"time"

	"posadmin/m/domain"
)

const saleColumns = `id, customer_id, cashier_id, sales_date, status`

// SaleOrder selects the ordering of ListSales.
type SaleOrder int

const (
	// NewestFirst orders by sale id, descending.
	NewestFirst SaleOrder = iota
	// ByDateDesc orders by sales date descending, ties by sale id descending.
	ByDateDesc
)

func (o SaleOrder) clause() string {
	if o == ByDateDesc {
		return "sales_date DESC, id DESC"
	}
	return "id DESC"
}

// ListSales returns every sale with customer, cashier, items and item products resolved.
func (q *Queries) ListSales(ctx context.Context, order SaleOrder) ([]domain.Sale, error) {
	sales := []domain.Sale{}
	if err := q.selectAll(ctx, &sales, `SELECT `+saleColumns+` FROM sales ORDER BY `+order.clause()); err != nil {
		return nil, err
	}
	if err := q.assembleSales(ctx, sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (q *Queries) GetSale(ctx context.Context, id int64) (domain.Sale, error) {
	var s domain.Sale
	if err := q.get(ctx, &s, `SELECT `+saleColumns+` FROM sales WHERE id = ?`, id); err != nil {
		return s, err
	}
	sales := []domain.Sale{s}
	if err := q.assembleSales(ctx, sales); err != nil {
		return s, err
	}
	return sales[0], nil
}

// CreateSale inserts the sale header and returns its id. Items are written separately.
func (q *Queries) CreateSale(ctx context.Context, sale domain.Sale) (int64, error) {
	var id int64
	err := q.get(ctx, &id, `INSERT INTO sales (customer_id, cashier_id, sales_date, status) VALUES (?, ?, ?, ?) RETURNING id`,
		sale.CustomerID, sale.CashierID, sale.SalesDate, sale.Status)
	return id, err
}

// UpdateSale rewrites the sale header. A nil salesDate keeps the stored date.
func (q *Queries) UpdateSale(ctx context.Context, id, customerID, cashierID int64, salesDate *time.Time, status string) error {
	return q.execOne(ctx, `UPDATE sales SET customer_id = ?, cashier_id = ?, sales_date = COALESCE(?, sales_date), status = ?
		WHERE id = ?`, customerID, cashierID, salesDate, status, id)
}

func (q *Queries) SetSaleStatus(ctx context.Context, id int64, status string) error {
	return q.execOne(ctx, `UPDATE sales SET status = ? WHERE id = ?`, status, id)
}

// DeleteSaleItems removes every line item of saleID and reports how many went.
func (q *Queries) DeleteSaleItems(ctx context.Context, saleID int64) (int64, error) {
	return q.exec(ctx, `DELETE FROM sale_items WHERE sale_id = ?`, saleID)
}

func (q *Queries) InsertSaleItems(ctx context.Context, saleID int64, items []domain.SaleItem) error {
	for _, item := range items {
		if _, err := q.exec(ctx, `INSERT INTO sale_items (sale_id, product_id, quantity, unit_price) VALUES (?, ?, ?, ?)`,
			saleID, item.ProductID, item.Quantity, item.UnitPrice); err != nil {
			return err
		}
	}
	return nil
}

func (q *Queries) assembleSales(ctx context.Context, sales []domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	saleIDs := make([]int64, 0, len(sales))
	customerIDs := make([]int64, 0, len(sales))
	cashierIDs := make([]int64, 0, len(sales))
	for _, s := range sales {
		saleIDs = append(saleIDs, s.ID)
		customerIDs = append(customerIDs, s.CustomerID)
		cashierIDs = append(cashierIDs, s.CashierID)
	}

	var customers []domain.Customer
	if err := q.selectIn(ctx, &customers, `SELECT id, first_name, last_name FROM customers WHERE id IN (?)`, customerIDs); err != nil {
		return err
	}
	customerByID := make(map[int64]domain.Customer, len(customers))
	for _, c := range customers {
		customerByID[c.ID] = c
	}

	var cashiers []domain.Cashier
	if err := q.selectIn(ctx, &cashiers, `SELECT id, first_name, last_name FROM cashiers WHERE id IN (?)`, cashierIDs); err != nil {
		return err
	}
	cashierByID := make(map[int64]domain.Cashier, len(cashiers))
	for _, c := range cashiers {
		cashierByID[c.ID] = c
	}

	var items []domain.SaleItem
	if err := q.selectIn(ctx, &items, `SELECT id, sale_id, product_id, quantity, unit_price FROM sale_items
		WHERE sale_id IN (?) ORDER BY sale_id, id`, saleIDs); err != nil {
		return err
	}
	productIDs := make([]int64, 0, len(items))
	seen := make(map[int64]bool, len(items))
	for _, item := range items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			productIDs = append(productIDs, item.ProductID)
		}
	}
	products, err := q.productsByID(ctx, productIDs)
	if err != nil {
		return err
	}

	itemsBySale := make(map[int64][]domain.SaleItem, len(sales))
	for _, item := range items {
		if p, ok := products[item.ProductID]; ok {
			item.Product = &p
		}
		itemsBySale[item.SaleID] = append(itemsBySale[item.SaleID], item)
	}

	for i := range sales {
		s := &sales[i]
		if c, ok := customerByID[s.CustomerID]; ok {
			s.Customer = &c
		}
		if c, ok := cashierByID[s.CashierID]; ok {
			s.Cashier = &c
		}
		s.Items = itemsBySale[s.ID]
		if s.Items == nil {
			s.Items = []domain.SaleItem{}
		}
	}
	return nil
}

// Truncate deletes every row from every table, children first.
func (q *Queries) Truncate(ctx context.Context) error {
	for _, table := range []string{"sale_items", "sales", "product_suppliers", "products", "suppliers", "cashiers", "customers"} {
		if _, err := q.exec(ctx, `DELETE FROM `+table); err != nil {
			return err
		}
	}
	return nil
}
