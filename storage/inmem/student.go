package inmemdb

import (
	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/session"
	"github.com/trezcool/kala/core/student"
)

// studentAccounts must be called with db.student locked.
func (db *DB) studentAccounts() map[string]*Account {
	accs := make(map[string]*Account, len(db.student.table))
	for id, s := range db.student.table {
		accs[core.CleanString(s.Email, true /* lower */)] = &Account{
			ID:           id,
			Name:         s.Name,
			Email:        s.Email,
			Role:         session.RoleStudent,
			PasswordHash: db.student.passwords[id],
		}
	}
	return accs
}

func (db *DB) CreateStudent(ns student.NewStudent) (student.Student, error) {
	acc := Account{}
	if err := acc.SetPassword(ns.Password); err != nil {
		return student.Student{}, err
	}

	t := db.student
	t.Lock()
	defer t.Unlock()

	email := core.CleanString(ns.Email, true /* lower */)
	for _, s := range t.table {
		if core.CleanString(s.Email, true /* lower */) == email {
			return student.Student{}, ErrEmailExists
		}
	}
	t.pk++
	s := student.Student{
		ID:          t.pk,
		Name:        ns.Name,
		Email:       email,
		Phone:       core.Text(ns.Phone),
		JoiningDate: ns.JoiningDate,
		TotalFees:   core.Amount(ns.TotalFees),
		PendingFees: core.Amount(ns.TotalFees),
	}
	t.table[s.ID] = &s
	t.passwords[s.ID] = acc.PasswordHash
	return s, nil
}

func (db *DB) QueryAllStudents() []student.Student {
	t := db.student
	t.RLock()
	defer t.RUnlock()

	ids := sortedIDs(len(t.table), func(add func(core.ID)) {
		for id := range t.table {
			add(id)
		}
	})
	out := make([]student.Student, 0, len(ids))
	for _, id := range ids {
		out = append(out, *t.table[id])
	}
	return out
}

func (db *DB) GetStudentByID(id core.ID) (student.Student, error) {
	t := db.student
	t.RLock()
	defer t.RUnlock()
	if s, ok := t.table[id]; ok {
		return *s, nil
	}
	return student.Student{}, ErrNotFound
}

func (db *DB) DeleteStudent(id core.ID) error {
	t := db.student
	t.Lock()
	defer t.Unlock()
	if _, ok := t.table[id]; !ok {
		return ErrNotFound
	}
	delete(t.table, id)
	delete(t.passwords, id)
	return nil
}
