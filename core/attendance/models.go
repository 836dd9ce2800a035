package attendance

import (
	"github.com/trezcool/kala/core"
)

// Record is one student's attendance on one day. At most one Record is expected per
// (StudentID, Date) pair, although the backend does not enforce it.
type Record struct {
	ID        core.ID   `json:"id"`
	StudentID core.ID   `json:"student"`
	Date      core.Date `json:"date"`
	Present   bool      `json:"present"`
}

// NewRecord is the payload used to create or update a Record.
type NewRecord struct {
	StudentID core.ID   `json:"student" validate:"required"`
	Date      core.Date `json:"date" validate:"required"`
	Present   bool      `json:"present"`
}

// Group holds the records of one date.
type Group struct {
	Date    core.Date
	Records []Record
}
