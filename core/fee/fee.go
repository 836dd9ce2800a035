// Package fee records fee payments and reflects the server's figures locally.
package fee

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/student"
)

const DefaultRemarks = "No remarks"

var (
	// errors
	ErrInvalidAmount = errors.New("please enter a valid amount")
)

// Payment is the payload sent to record a payment.
type Payment struct {
	StudentID core.ID     `json:"student_id" validate:"required"`
	Amount    core.Amount `json:"amount" validate:"gt=0"`
	Remarks   string      `json:"remarks"`
}

// Receipt is the server's answer to a Payment.
type Receipt struct {
	PendingFees core.Amount `json:"pending_fees"`
	Message     string      `json:"message"`
}

// API is the part of the remote API used to pay fees.
type API interface {
	PayFees(ctx context.Context, p Payment) (Receipt, error)
}

// Pay records a payment of amount for studentID and returns a copy of roster where that
// student's pending fees are the value returned by the server.
func Pay(ctx context.Context, api API, roster []student.Student, studentID core.ID, amount core.Amount, remarks string) ([]student.Student, Receipt, error) {
	if amount <= 0 {
		return nil, Receipt{}, ErrInvalidAmount
	}
	if _, found := student.FindByID(roster, studentID); !found {
		return nil, Receipt{}, student.ErrNotFound
	}

	p := Payment{StudentID: studentID, Amount: amount, Remarks: core.CleanString(remarks)}
	if p.Remarks == "" {
		p.Remarks = DefaultRemarks
	}
	if err := core.Check(p); err != nil {
		return nil, Receipt{}, err
	}

	rcpt, err := api.PayFees(ctx, p)
	if err != nil {
		return nil, Receipt{}, errors.Wrap(err, "paying fees")
	}
	return Reflect(roster, studentID, rcpt.PendingFees), rcpt, nil
}

// Reflect returns a copy of roster with the pending fees of studentID set to pending.
func Reflect(roster []student.Student, studentID core.ID, pending core.Amount) []student.Student {
	out := make([]student.Student, len(roster))
	copy(out, roster)
	for i := range out {
		if out[i].ID == studentID {
			out[i].PendingFees = pending
		}
	}
	return out
}

// Summary holds the totals shown on a fee screen.
type Summary struct {
	Total   core.Amount
	Paid    core.Amount
	Pending core.Amount
}

func Summarize(s student.Student) Summary {
	return Summary{Total: s.TotalFees, Paid: s.PaidFees(), Pending: s.PendingFees}
}
