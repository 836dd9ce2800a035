package schedule

import (
	"github.com/trezcool/kala/core"
)

const DefaultDetail = "Class at 10:00 AM"

// Class is a scheduled class. Present is reused by the backend as an "active" flag.
// At most one Class is expected per date.
type Class struct {
	ID      core.ID   `json:"id"`
	Date    core.Date `json:"date"`
	Detail  string    `json:"detail"`
	Present bool      `json:"present"`
}

// NewClass is the payload used to schedule or reschedule a Class.
type NewClass struct {
	Date    core.Date `json:"date" validate:"required"`
	Detail  string    `json:"detail" validate:"required,notblank"`
	Present bool      `json:"present"`
}
