package homework

import (
	"time"

	"github.com/trezcool/kala/core"
)

// DashboardSize is how many homework items dashboards show.
const DashboardSize = 5

type Homework struct {
	ID          core.ID   `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   core.Date `json:"created_at"`
}

// NewHomework contains information needed to create a Homework.
type NewHomework struct {
	Title       string `json:"title" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	CreatedAt   string `json:"created_at"`
}

// Prepare cleans nh, stamps it with the current time, and checks it.
func (nh *NewHomework) Prepare() error {
	nh.Title = core.CleanString(nh.Title)
	nh.Description = core.CleanString(nh.Description)
	if nh.CreatedAt == "" {
		nh.CreatedAt = core.NowFunc().UTC().Format(time.RFC3339)
	}
	return core.Check(nh)
}

// Latest returns the last n items, latest first. The input is not modified.
func Latest(items []Homework, n int) []Homework {
	if n < 0 {
		n = 0
	}
	if len(items) > n {
		items = items[len(items)-n:]
	}
	out := make([]Homework, len(items))
	for i, h := range items {
		out[len(items)-1-i] = h
	}
	return out
}
