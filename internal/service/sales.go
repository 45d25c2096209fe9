package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"posadmin/m/domain"
	"posadmin/m/internal/store"
)

type SaleItemInput struct {
	ProductID int64
	Quantity  int64
	UnitPrice decimal.Decimal
}

// SaleInput is a sale header plus its complete item list. A nil SalesDate
// means now on create and "keep" on update; an empty Status means Active.
type SaleInput struct {
	CustomerID int64
	CashierID  int64
	SalesDate  *time.Time
	Status     string
	Items      []SaleItemInput
}

func (in SaleInput) validate() error {
	if in.Status != "" && !domain.IsValidSaleStatus(in.Status) {
		return Internalf("invalid sale status %q", in.Status)
	}
	if len(in.Items) == 0 {
		return Internalf("a sale needs at least one item")
	}
	for i, item := range in.Items {
		if item.Quantity <= 0 {
			return Internalf("item %d: quantity must be greater than zero", i)
		}
		if item.UnitPrice.IsNegative() {
			return Internalf("item %d: unit price must not be negative", i)
		}
	}
	return nil
}

func (in SaleInput) status() string {
	if in.Status == "" {
		return domain.SaleStatusActive
	}
	return in.Status
}

func (in SaleInput) items() []domain.SaleItem {
	items := make([]domain.SaleItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, domain.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return items
}

type SaleService struct {
	store *store.Store
	now   func() time.Time
}

func (s *SaleService) List(ctx context.Context) (_ []domain.Sale, err error) {
	ctx, span := startSpan(ctx, "sales.List")
	defer func() { endSpan(ctx, span, "sales.List", err) }()

	sales, err := s.store.ListSales(ctx, store.NewestFirst)
	if err != nil {
		return nil, Internal(err)
	}
	return sales, nil
}

func (s *SaleService) Get(ctx context.Context, id int64) (_ *domain.Sale, err error) {
	ctx, span := startSpan(ctx, "sales.Get", attribute.Int64("sale.id", id))
	defer func() { endSpan(ctx, span, "sales.Get", err) }()

	sale, err := s.store.GetSale(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, Internal(err)
	}
	return &sale, nil
}

// Create writes the sale header and all of its items in one transaction.
func (s *SaleService) Create(ctx context.Context, in SaleInput) (_ domain.Sale, err error) {
	ctx, span := startSpan(ctx, "sales.Create", attribute.Int("sale.items", len(in.Items)))
	defer func() { endSpan(ctx, span, "sales.Create", err) }()

	if err := in.validate(); err != nil {
		return domain.Sale{}, err
	}
	date := s.now()
	if in.SalesDate != nil {
		date = *in.SalesDate
	}

	var sale domain.Sale
	err = s.store.WithTx(ctx, func(q *store.Queries) error {
		id, err := q.CreateSale(ctx, domain.Sale{
			CustomerID: in.CustomerID,
			CashierID:  in.CashierID,
			SalesDate:  date.UTC(),
			Status:     in.status(),
		})
		if err != nil {
			return err
		}
		if err := q.InsertSaleItems(ctx, id, in.items()); err != nil {
			return err
		}
		sale, err = q.GetSale(ctx, id)
		return err
	})
	if err != nil {
		return domain.Sale{}, Internal(err)
	}
	span.SetAttributes(attribute.Int64("sale.id", sale.ID))
	return sale, nil
}

// Update replaces the sale's items with in.Items and rewrites its header. The
// whole rewrite is one transaction, so a failure keeps the previous items.
func (s *SaleService) Update(ctx context.Context, id int64, in SaleInput) (_ domain.Sale, err error) {
	ctx, span := startSpan(ctx, "sales.Update", attribute.Int64("sale.id", id), attribute.Int("sale.items", len(in.Items)))
	defer func() { endSpan(ctx, span, "sales.Update", err) }()

	if err := in.validate(); err != nil {
		return domain.Sale{}, err
	}
	var date *time.Time
	if in.SalesDate != nil {
		utc := in.SalesDate.UTC()
		date = &utc
	}

	var sale domain.Sale
	err = s.store.WithTx(ctx, func(q *store.Queries) error {
		if _, err := q.DeleteSaleItems(ctx, id); err != nil {
			return err
		}
		err := q.UpdateSale(ctx, id, in.CustomerID, in.CashierID, date, in.status())
		if errors.Is(err, store.ErrNotFound) {
			return notFound("sale", id)
		}
		if err != nil {
			return err
		}
		if err := q.InsertSaleItems(ctx, id, in.items()); err != nil {
			return err
		}
		sale, err = q.GetSale(ctx, id)
		return err
	})
	if err != nil {
		return domain.Sale{}, Internal(err)
	}
	return sale, nil
}

// Delete deactivates the sale. The sale and its items stay readable and
// keep appearing in the report.
func (s *SaleService) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := startSpan(ctx, "sales.Delete", attribute.Int64("sale.id", id))
	defer func() { endSpan(ctx, span, "sales.Delete", err) }()

	err = s.store.SetSaleStatus(ctx, id, domain.SaleStatusInactive)
	if errors.Is(err, store.ErrNotFound) {
		return notFound("sale", id)
	}
	if err != nil {
		return Internal(err)
	}
	return nil
}
