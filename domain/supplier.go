package domain

type Supplier struct {
	ID          int64   `db:"id" json:"supplierID"`
	Description string  `db:"description" json:"supplierDesc"`
	Type        *string `db:"supplier_type" json:"supplierType"`
}

// DescriptionCount is a supplier description together with the number of rows carrying it.
type DescriptionCount struct {
	Description string `db:"description" json:"supplierDesc"`
	Count       int64  `db:"count" json:"count"`
}
