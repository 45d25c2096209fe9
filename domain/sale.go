package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	SaleStatusActive   = "Active"
	SaleStatusInactive = "Inactive"
)

type Sale struct {
	ID         int64      `db:"id" json:"salesID"`
	CustomerID int64      `db:"customer_id" json:"custID"`
	CashierID  int64      `db:"cashier_id" json:"cashierID"`
	SalesDate  time.Time  `db:"sales_date" json:"salesDate"`
	Status     string     `db:"status" json:"status"`
	Customer   *Customer  `db:"-" json:"customer"`
	Cashier    *Cashier   `db:"-" json:"cashier"`
	Items      []SaleItem `db:"-" json:"salesItems"`
}

type SaleItem struct {
	ID        int64           `db:"id" json:"salesItemID"`
	SaleID    int64           `db:"sale_id" json:"salesID"`
	ProductID int64           `db:"product_id" json:"productID"`
	Quantity  int64           `db:"quantity" json:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price" json:"unitPrice"`
	Product   *Product        `db:"-" json:"product"`
}

func (i SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// Total sums quantity x unit price over every line item.
func (s Sale) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// IsValidSaleStatus reports whether status is one of the known sale states.
func IsValidSaleStatus(status string) bool {
	return status == SaleStatusActive || status == SaleStatusInactive
}
