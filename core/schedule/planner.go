package schedule

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/kala/core"
)

var (
	// errors
	ErrNoDate      = errors.New("please select a date")
	ErrBlankDetail = errors.New("please enter the class details")
)

// API is the part of the remote API the Planner writes through.
type API interface {
	ScheduleClass(ctx context.Context, nc NewClass) (Class, error)
	UpdateScheduledClass(ctx context.Context, id core.ID, nc NewClass) (Class, error)
}

// Planner schedules classes, one per date.
type Planner struct {
	api    API
	logger core.Logger
}

func NewPlanner(api API, logger core.Logger) *Planner {
	return &Planner{api: api, logger: logger}
}

// Submit creates a class on date, or updates the entry already scheduled on that date.
// updated reports which of the two happened.
func (p *Planner) Submit(ctx context.Context, entries []Class, date core.Date, detail string) (c Class, updated bool, err error) {
	if date.IsZero() {
		return Class{}, false, ErrNoDate
	}
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return Class{}, false, ErrBlankDetail
	}

	nc := NewClass{Date: date, Detail: detail, Present: true}
	if existing, ok := ResolveForDate(entries, date); ok {
		p.logger.Debug("updating scheduled class", map[string]interface{}{"id": existing.ID, "date": date.String()})
		c, err = p.api.UpdateScheduledClass(ctx, existing.ID, nc)
		if err != nil {
			return Class{}, false, errors.Wrap(err, "updating scheduled class")
		}
		return c, true, nil
	}

	p.logger.Debug("scheduling class", map[string]interface{}{"date": date.String()})
	c, err = p.api.ScheduleClass(ctx, nc)
	if err != nil {
		return Class{}, false, errors.Wrap(err, "scheduling class")
	}
	return c, false, nil
}

// Upcoming returns the active classes on or after from, in date order of entries.
func Upcoming(entries []Class, from core.Date) []Class {
	var out []Class
	for _, c := range entries {
		if c.Present && !c.Date.Before(from) {
			out = append(out, c)
		}
	}
	return out
}
