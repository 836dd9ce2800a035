package attendance

import (
	"sync"

	"github.com/trezcool/kala/core"
)

// Sheet is the toggle state of a "mark attendance" screen. Untouched students are absent.
type Sheet struct {
	mu        sync.Mutex
	present   map[core.ID]bool
	onRefresh func()
}

// NewSheet returns an empty Sheet. onRefresh, if set, is called after each successful submission
// so that history views can reload.
func NewSheet(onRefresh func()) *Sheet {
	return &Sheet{present: make(map[core.ID]bool), onRefresh: onRefresh}
}

// Toggle flips the student's mark and returns the new value.
func (s *Sheet) Toggle(id core.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.present[id] = !s.present[id]
	return s.present[id]
}

func (s *Sheet) Set(id core.ID, present bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.present[id] = present
}

func (s *Sheet) Present(id core.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.present[id]
}

// Touched reports how many students have been toggled at least once.
func (s *Sheet) Touched() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.present)
}

func (s *Sheet) reset() {
	s.mu.Lock()
	s.present = make(map[core.ID]bool)
	s.mu.Unlock()
	if s.onRefresh != nil {
		s.onRefresh()
	}
}
