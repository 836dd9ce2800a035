package schedule

import (
	"github.com/trezcool/kala/core"
)

// Mark colors
const (
	ScheduledColor = "green"
	SelectedColor  = "#4F46E5"
)

// Mark describes how a calendar day is highlighted.
type Mark struct {
	Scheduled    bool
	Selected     bool
	Color        string
	DisableTouch bool
}

// BuildMarks maps every scheduled date to a "scheduled" mark and overlays a "selected" mark on
// selected (when not zero). The overlay keeps the attributes of an existing mark.
func BuildMarks(entries []Class, selected core.Date) map[core.Date]Mark {
	marks := make(map[core.Date]Mark, len(entries)+1)
	for _, c := range entries {
		if c.Date.IsZero() {
			continue
		}
		marks[c.Date] = Mark{Scheduled: true, Color: ScheduledColor}
	}
	if !selected.IsZero() {
		m := marks[selected]
		m.Selected = true
		m.Color = SelectedColor
		m.DisableTouch = true
		marks[selected] = m
	}
	return marks
}

// ResolveForDate returns the first entry scheduled on date.
func ResolveForDate(entries []Class, date core.Date) (Class, bool) {
	for _, c := range entries {
		if c.Date == date {
			return c, true
		}
	}
	return Class{}, false
}
