package student

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/session"
)

var (
	// errors
	ErrNotFound = errors.New("student not found")
)

// Resolve finds the roster entry of the logged-in identity.
// It matches on id first and falls back to a trimmed, case-insensitive email match
// when the identity has no id or the id matches nothing.
func Resolve(id session.Identity, roster []Student) (Student, error) {
	if sid, ok := id.StudentID(); ok {
		if s, found := FindByID(roster, sid); found {
			return s, nil
		}
	}
	if s, found := FindByEmail(roster, id.Email); found {
		return s, nil
	}
	return Student{}, ErrNotFound
}

func FindByID(roster []Student, id core.ID) (Student, bool) {
	for _, s := range roster {
		if s.ID == id {
			return s, true
		}
	}
	return Student{}, false
}

func FindByEmail(roster []Student, email string) (Student, bool) {
	email = core.CleanString(email, true /* lower */)
	if email == "" {
		return Student{}, false
	}
	for _, s := range roster {
		if core.CleanString(s.Email, true /* lower */) == email {
			return s, true
		}
	}
	return Student{}, false
}

// Search does a case-insensitive substring match on name or email. An empty query matches all.
func Search(roster []Student, query string) []Student {
	query = core.CleanString(query, true /* lower */)
	res := make([]Student, 0, len(roster))
	for _, s := range roster {
		if query == "" ||
			strings.Contains(strings.ToLower(s.Name), query) ||
			strings.Contains(strings.ToLower(s.Email), query) {
			res = append(res, s)
		}
	}
	return res
}
