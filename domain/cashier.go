package domain

type Cashier struct {
	ID        int64  `db:"id" json:"cashierID"`
	FirstName string `db:"first_name" json:"cashierFName"`
	LastName  string `db:"last_name" json:"cashierLName"`
}
