package seed

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"posadmin/m/domain"
	"posadmin/m/internal/logger"
	"posadmin/m/internal/store"
)

type person struct{ first, last string }

type supplier struct{ description, kind string }

type product struct {
	description string
	suppliers   []int // indexes into demoSuppliers
}

type item struct {
	product  int // index into demoProducts
	quantity int64
	price    string
}

type sale struct {
	customer, cashier int
	date              string
	items             []item
}

var (
	demoCustomers = []person{
		{"Allen", "Danao"}, {"Mike", "Cheq"}, {"Nakuhra", "Tan"}, {"Sarah", "Johnson"}, {"David", "Smith"},
	}
	demoCashiers = []person{
		{"John", "Doe"}, {"Jean", "Barquin"}, {"Maria", "Garcia"}, {"Robert", "Lee"},
	}
	demoSuppliers = []supplier{
		{"ACS", "Wholesale"},
		{"ABC Plastics", "Manufacturer"},
		{"Global Supplies Inc", "Distributor"},
		{"Best Products Co", "Wholesale"},
	}
	demoProducts = []product{
		{"Tide Bar", []int{0}},
		{"Surf 150ML", []int{0}},
		{"Plastic Cup", []int{1}},
		{"Paper Plate", []int{1}},
		{"Dish Soap 500ML", []int{0, 2}},
		{"Paper Towels", []int{3}},
		{"Shampoo 200ML", []int{0}},
		{"Hand Sanitizer", []int{2}},
	}
	demoSales = []sale{
		{0, 0, "2016-09-01", []item{{1, 2, "45.50"}, {0, 3, "35.00"}, {2, 10, "12.75"}}},
		{1, 1, "2016-07-17", []item{{1, 1, "45.50"}, {0, 5, "35.00"}}},
		{2, 1, "2016-02-29", []item{{3, 20, "8.50"}}},
		{3, 2, "2016-10-15", []item{{4, 4, "65.00"}, {5, 6, "22.50"}}},
		{4, 3, "2016-11-20", []item{{6, 2, "85.00"}, {7, 8, "55.00"}, {2, 15, "12.75"}}},
	}
)

// Summary counts the rows Load inserted.
type Summary struct {
	Customers int
	Cashiers  int
	Suppliers int
	Products  int
	Sales     int
	Items     int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d customers, %d cashiers, %d suppliers, %d products, %d sales with %d items",
		s.Customers, s.Cashiers, s.Suppliers, s.Products, s.Sales, s.Items)
}

// Load replaces every row in the database with the demo data set, in one transaction.
func Load(ctx context.Context, st *store.Store) (Summary, error) {
	var sum Summary
	err := st.WithTx(ctx, func(q *store.Queries) error {
		sum = Summary{}
		if err := q.Truncate(ctx); err != nil {
			return fmt.Errorf("clear tables: %w", err)
		}

		customerIDs := make([]int64, 0, len(demoCustomers))
		for _, p := range demoCustomers {
			c, err := q.CreateCustomer(ctx, &p.first, &p.last)
			if err != nil {
				return fmt.Errorf("customer %s %s: %w", p.first, p.last, err)
			}
			customerIDs = append(customerIDs, c.ID)
		}
		sum.Customers = len(customerIDs)

		cashierIDs := make([]int64, 0, len(demoCashiers))
		for _, p := range demoCashiers {
			c, err := q.CreateCashier(ctx, &p.first, &p.last)
			if err != nil {
				return fmt.Errorf("cashier %s %s: %w", p.first, p.last, err)
			}
			cashierIDs = append(cashierIDs, c.ID)
		}
		sum.Cashiers = len(cashierIDs)

		supplierIDs := make([]int64, 0, len(demoSuppliers))
		for _, s := range demoSuppliers {
			created, err := q.CreateSupplier(ctx, &s.description, &s.kind)
			if err != nil {
				return fmt.Errorf("supplier %s: %w", s.description, err)
			}
			supplierIDs = append(supplierIDs, created.ID)
		}
		sum.Suppliers = len(supplierIDs)

		productIDs := make([]int64, 0, len(demoProducts))
		for _, p := range demoProducts {
			created, err := q.CreateProduct(ctx, &p.description)
			if err != nil {
				return fmt.Errorf("product %s: %w", p.description, err)
			}
			links := make([]int64, 0, len(p.suppliers))
			for _, idx := range p.suppliers {
				links = append(links, supplierIDs[idx])
			}
			if err := q.ReplaceProductSuppliers(ctx, created.ID, links); err != nil {
				return fmt.Errorf("product %s suppliers: %w", p.description, err)
			}
			productIDs = append(productIDs, created.ID)
		}
		sum.Products = len(productIDs)

		for _, s := range demoSales {
			date, err := time.Parse("2006-01-02", s.date)
			if err != nil {
				return err
			}
			id, err := q.CreateSale(ctx, domain.Sale{
				CustomerID: customerIDs[s.customer],
				CashierID:  cashierIDs[s.cashier],
				SalesDate:  date,
				Status:     domain.SaleStatusActive,
			})
			if err != nil {
				return fmt.Errorf("sale of %s: %w", s.date, err)
			}
			items := make([]domain.SaleItem, 0, len(s.items))
			for _, it := range s.items {
				items = append(items, domain.SaleItem{
					ProductID: productIDs[it.product],
					Quantity:  it.quantity,
					UnitPrice: decimal.RequireFromString(it.price),
				})
			}
			if err := q.InsertSaleItems(ctx, id, items); err != nil {
				return fmt.Errorf("items of sale %d: %w", id, err)
			}
			sum.Sales++
			sum.Items += len(items)
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	logger.Logger.Info().Str("summary", sum.String()).Msg("seeded demo data")
	return sum, nil
}

// CheckDuplicates writes a line per supplier description held by more than one supplier.
func CheckDuplicates(ctx context.Context, st *store.Store, out io.Writer) (int, error) {
	dups, err := st.DuplicateSupplierDescriptions(ctx)
	if err != nil {
		return 0, err
	}
	if len(dups) == 0 {
		fmt.Fprintln(out, "No duplicate supplier descriptions found.")
		return 0, nil
	}
	fmt.Fprintln(out, "Found duplicate supplier descriptions:")
	for _, d := range dups {
		fmt.Fprintf(out, "  %q appears %d times\n", d.Description, d.Count)
	}
	return len(dups), nil
}
