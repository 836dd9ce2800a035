package inmemdb

import (
	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/schedule"
)

func (db *DB) CreateClass(nc schedule.NewClass) schedule.Class {
	t := db.class
	t.Lock()
	defer t.Unlock()
	t.pk++
	c := schedule.Class{ID: t.pk, Date: nc.Date, Detail: nc.Detail, Present: nc.Present}
	t.table[c.ID] = &c
	return c
}

func (db *DB) QueryAllClasses() []schedule.Class {
	t := db.class
	t.RLock()
	defer t.RUnlock()

	ids := sortedIDs(len(t.table), func(add func(core.ID)) {
		for id := range t.table {
			add(id)
		}
	})
	out := make([]schedule.Class, 0, len(ids))
	for _, id := range ids {
		out = append(out, *t.table[id])
	}
	return out
}

func (db *DB) UpdateClass(id core.ID, nc schedule.NewClass) (schedule.Class, error) {
	t := db.class
	t.Lock()
	defer t.Unlock()
	c, ok := t.table[id]
	if !ok {
		return schedule.Class{}, ErrNotFound
	}
	c.Date = nc.Date
	c.Detail = nc.Detail
	c.Present = nc.Present
	return *c, nil
}
