package inmemdb

import (
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/fee"
)

var (
	// errors
	ErrOverpaid = errors.New("amount exceeds pending fees")
)

// Payment is a row of the fee history.
type Payment struct {
	ID        core.ID
	StudentID core.ID
	Amount    core.Amount
	Remarks   string
	PaidAt    time.Time
}

// PayFees records p and lowers the student's pending fees. It returns the new pending amount.
func (db *DB) PayFees(p fee.Payment) (core.Amount, error) {
	st := db.student
	st.Lock()
	defer st.Unlock()

	s, ok := st.table[p.StudentID]
	if !ok {
		return 0, ErrNotFound
	}
	if p.Amount > s.PendingFees {
		return 0, ErrOverpaid
	}
	s.PendingFees -= p.Amount

	pt := db.payment
	pt.Lock()
	defer pt.Unlock()
	pt.pk++
	pt.table[pt.pk] = &Payment{
		ID:        pt.pk,
		StudentID: p.StudentID,
		Amount:    p.Amount,
		Remarks:   p.Remarks,
		PaidAt:    core.NowFunc().UTC(),
	}
	return s.PendingFees, nil
}

// QueryPayments returns the fee history of a student.
func (db *DB) QueryPayments(studentID core.ID) []Payment {
	t := db.payment
	t.RLock()
	defer t.RUnlock()

	ids := sortedIDs(len(t.table), func(add func(core.ID)) {
		for id, p := range t.table {
			if p.StudentID == studentID {
				add(id)
			}
		}
	})
	out := make([]Payment, 0, len(ids))
	for _, id := range ids {
		out = append(out, *t.table[id])
	}
	return out
}
