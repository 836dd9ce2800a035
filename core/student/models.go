package student

import (
	"github.com/trezcool/kala/core"
)

// Student is a roster entry as served by the backend.
type Student struct {
	ID          core.ID     `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       core.Text   `json:"phone_no"`
	JoiningDate core.Date   `json:"j_date"`
	TotalFees   core.Amount `json:"total_fees"`
	PendingFees core.Amount `json:"pending_fees"`
}

// PaidFees is what has been paid so far according to the server's figures.
func (s Student) PaidFees() core.Amount {
	return s.TotalFees - s.PendingFees
}

// NewStudent contains information needed to create a new Student.
type NewStudent struct {
	Name        string    `json:"name" validate:"required,notblank"`
	Email       string    `json:"email" validate:"required,email"`
	Password    string    `json:"password" validate:"required"`
	Phone       string    `json:"phone_no" validate:"required,numeric"`
	JoiningDate core.Date `json:"j_date" validate:"required"`
	TotalFees   float64   `json:"total_fees" validate:"gte=0"`
}

// Clean trims the text fields and lowers the email.
func (ns *NewStudent) Clean() {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Phone = core.CleanString(ns.Phone)
}
