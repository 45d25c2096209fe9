package domain

type Product struct {
	ID          int64             `db:"id" json:"productID"`
	Description string            `db:"description" json:"ProdDesc"`
	Suppliers   []ProductSupplier `db:"-" json:"suppliers"`
}

// ProductSupplier is a row of the product/supplier join table with the supplier resolved.
type ProductSupplier struct {
	ProductID  int64    `db:"product_id" json:"productID"`
	SupplierID int64    `db:"supplier_id" json:"supplierID"`
	Supplier   Supplier `db:"supplier" json:"supplier"`
}

// SupplierIDs returns the ids of the product's suppliers in join order.
func (p Product) SupplierIDs() []int64 {
	ids := make([]int64, 0, len(p.Suppliers))
	for _, ps := range p.Suppliers {
		ids = append(ids, ps.SupplierID)
	}
	return ids
}

// FirstSupplier returns the first associated supplier, or nil when the product has none.
func (p Product) FirstSupplier() *Supplier {
	if len(p.Suppliers) == 0 {
		return nil
	}
	s := p.Suppliers[0].Supplier
	return &s
}
