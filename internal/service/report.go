package service

import (
	"context"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"posadmin/m/domain"
	"posadmin/m/internal/store"
)

type ReportService struct {
	store *store.Store
}

// Rows returns the sales report, newest sale first, narrowed to rows matching
// query when it is not blank.
func (s *ReportService) Rows(ctx context.Context, query string) (_ []domain.ReportRow, err error) {
	ctx, span := startSpan(ctx, "report.Rows", attribute.String("report.query", query))
	defer func() { endSpan(ctx, span, "report.Rows", err) }()

	sales, err := s.store.ListSales(ctx, store.ByDateDesc)
	if err != nil {
		return nil, Internal(err)
	}
	rows := Filter(Project(sales), query)
	span.SetAttributes(attribute.Int("report.rows", len(rows)))
	return rows, nil
}

// Project flattens sales into one row per (sale, item) pair, keeping the
// order of sales and of each sale's items. The supplier columns carry the
// product's first supplier only.
func Project(sales []domain.Sale) []domain.ReportRow {
	rows := []domain.ReportRow{}
	for _, sale := range sales {
		for _, item := range sale.Items {
			row := domain.ReportRow{
				SaleID:     sale.ID,
				CustomerID: sale.CustomerID,
				ProductID:  item.ProductID,
				SalesDate:  sale.SalesDate,
				CashierID:  sale.CashierID,
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPrice,
				Status:     sale.Status,
			}
			if sale.Customer != nil {
				row.CustomerFirstName = sale.Customer.FirstName
				row.CustomerLastName = sale.Customer.LastName
			}
			if sale.Cashier != nil {
				row.CashierFirstName = sale.Cashier.FirstName
				row.CashierLastName = sale.Cashier.LastName
			}
			if item.Product != nil {
				row.ProductDesc = item.Product.Description
				if sup := item.Product.FirstSupplier(); sup != nil {
					id, desc := sup.ID, sup.Description
					row.SupplierID = &id
					row.SupplierDesc = &desc
				}
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// Filter keeps rows whose sale id, customer name, product description or
// supplier description contains query, ignoring case.
func Filter(rows []domain.ReportRow, query string) []domain.ReportRow {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return rows
	}
	out := []domain.ReportRow{}
	for _, row := range rows {
		fields := []string{
			strconv.FormatInt(row.SaleID, 10),
			row.CustomerFirstName,
			row.CustomerLastName,
			row.ProductDesc,
		}
		if row.SupplierDesc != nil {
			fields = append(fields, *row.SupplierDesc)
		}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), term) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}
