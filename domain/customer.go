package domain

type Customer struct {
	ID        int64  `db:"id" json:"custID"`
	FirstName string `db:"first_name" json:"firstFName"`
	LastName  string `db:"last_name" json:"lastLName"`
}
