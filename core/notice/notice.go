package notice

import (
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/kala/core"
)

// Defaults applied to new notices
const (
	DefaultCategory = "general"
	DefaultPriority = "normal"
	DefaultStatus   = "draft"

	// DashboardSize is how many notices dashboards show.
	DashboardSize = 5
)

type Notice struct {
	ID          core.ID     `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    null.String `json:"category"`
	Priority    null.String `json:"priority"`
	Status      null.String `json:"status"`
	CreatedAt   core.Date   `json:"created_at"`
}

// NewNotice contains information needed to create or update a Notice.
type NewNotice struct {
	Title       string    `json:"title" validate:"required,notblank"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   core.Date `json:"created_at"`
}

// Prepare cleans nn, fills in the defaults, and checks it.
func (nn *NewNotice) Prepare() error {
	nn.Title = core.CleanString(nn.Title)
	nn.Description = core.CleanString(nn.Description)
	if nn.Category == "" {
		nn.Category = DefaultCategory
	}
	if nn.Priority == "" {
		nn.Priority = DefaultPriority
	}
	if nn.Status == "" {
		nn.Status = DefaultStatus
	}
	if nn.CreatedAt.IsZero() {
		nn.CreatedAt = core.Today()
	}
	return core.Check(nn)
}

// LatestFirst returns notices in reverse fetch order. The input is not modified.
func LatestFirst(notices []Notice) []Notice {
	out := make([]Notice, len(notices))
	for i, n := range notices {
		out[len(notices)-1-i] = n
	}
	return out
}

// Latest returns the last n notices, latest first.
func Latest(notices []Notice, n int) []Notice {
	if n < 0 {
		n = 0
	}
	if len(notices) > n {
		notices = notices[len(notices)-n:]
	}
	return LatestFirst(notices)
}
