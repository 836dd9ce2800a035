package inmemdb

import (
	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/homework"
)

func (db *DB) CreateHomework(nh homework.NewHomework) (homework.Homework, error) {
	created, err := core.ParseDate(nh.CreatedAt)
	if err != nil {
		return homework.Homework{}, err
	}
	t := db.homework
	t.Lock()
	defer t.Unlock()
	t.pk++
	h := homework.Homework{ID: t.pk, Title: nh.Title, Description: nh.Description, CreatedAt: created}
	t.table[h.ID] = &h
	return h, nil
}

func (db *DB) QueryAllHomework() []homework.Homework {
	t := db.homework
	t.RLock()
	defer t.RUnlock()

	ids := sortedIDs(len(t.table), func(add func(core.ID)) {
		for id := range t.table {
			add(id)
		}
	})
	out := make([]homework.Homework, 0, len(ids))
	for _, id := range ids {
		out = append(out, *t.table[id])
	}
	return out
}

func (db *DB) DeleteHomework(id core.ID) error {
	t := db.homework
	t.Lock()
	defer t.Unlock()
	if _, ok := t.table[id]; !ok {
		return ErrNotFound
	}
	delete(t.table, id)
	return nil
}
