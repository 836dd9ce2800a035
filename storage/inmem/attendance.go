package inmemdb

import (
	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/attendance"
)

// CreateAttendance does not check for an existing record of the same student and day,
// like the real backend.
func (db *DB) CreateAttendance(nr attendance.NewRecord) (attendance.Record, error) {
	if _, err := db.GetStudentByID(nr.StudentID); err != nil {
		return attendance.Record{}, err
	}
	t := db.attendance
	t.Lock()
	defer t.Unlock()
	t.pk++
	rec := attendance.Record{ID: t.pk, StudentID: nr.StudentID, Date: nr.Date, Present: nr.Present}
	t.table[rec.ID] = &rec
	return rec, nil
}

func (db *DB) QueryAllAttendance() []attendance.Record {
	t := db.attendance
	t.RLock()
	defer t.RUnlock()

	ids := sortedIDs(len(t.table), func(add func(core.ID)) {
		for id := range t.table {
			add(id)
		}
	})
	out := make([]attendance.Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, *t.table[id])
	}
	return out
}

func (db *DB) GetAttendanceByID(id core.ID) (attendance.Record, error) {
	t := db.attendance
	t.RLock()
	defer t.RUnlock()
	if rec, ok := t.table[id]; ok {
		return *rec, nil
	}
	return attendance.Record{}, ErrNotFound
}

func (db *DB) UpdateAttendance(id core.ID, nr attendance.NewRecord) (attendance.Record, error) {
	t := db.attendance
	t.Lock()
	defer t.Unlock()
	rec, ok := t.table[id]
	if !ok {
		return attendance.Record{}, ErrNotFound
	}
	rec.StudentID = nr.StudentID
	rec.Date = nr.Date
	rec.Present = nr.Present
	return *rec, nil
}

func (db *DB) DeleteAttendance(id core.ID) error {
	t := db.attendance
	t.Lock()
	defer t.Unlock()
	if _, ok := t.table[id]; !ok {
		return ErrNotFound
	}
	delete(t.table, id)
	return nil
}
