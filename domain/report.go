package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRow is one flattened (sale, line item) pair of the sales report.
type ReportRow struct {
	SaleID            int64           `json:"salesID"`
	CustomerID        int64           `json:"custID"`
	CustomerFirstName string          `json:"custFName"`
	CustomerLastName  string          `json:"custLName"`
	ProductID         int64           `json:"productID"`
	ProductDesc       string          `json:"prodDesc"`
	SalesDate         time.Time       `json:"salesDate"`
	CashierID         int64           `json:"cashierID"`
	CashierFirstName  string          `json:"cashierFName"`
	CashierLastName   string          `json:"cashierLName"`
	SupplierID        *int64          `json:"supplierID"`
	SupplierDesc      *string         `json:"supplierDesc"`
	Quantity          int64           `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	Status            string          `json:"status"`
}
