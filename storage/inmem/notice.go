package inmemdb

import (
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/notice"
)

func noticeFrom(id core.ID, nn notice.NewNotice) notice.Notice {
	return notice.Notice{
		ID:          id,
		Title:       nn.Title,
		Description: nn.Description,
		Category:    null.NewString(nn.Category, nn.Category != ""),
		Priority:    null.NewString(nn.Priority, nn.Priority != ""),
		Status:      null.NewString(nn.Status, nn.Status != ""),
		CreatedAt:   nn.CreatedAt,
	}
}

func (db *DB) CreateNotice(nn notice.NewNotice) notice.Notice {
	t := db.notice
	t.Lock()
	defer t.Unlock()
	t.pk++
	n := noticeFrom(t.pk, nn)
	t.table[n.ID] = &n
	return n
}

// QueryNotices returns page (starting at 1) of the notices, oldest first.
// total is the number of notices across all pages.
func (db *DB) QueryNotices(page, size int) (notices []notice.Notice, total int) {
	t := db.notice
	t.RLock()
	defer t.RUnlock()

	ids := sortedIDs(len(t.table), func(add func(core.ID)) {
		for id := range t.table {
			add(id)
		}
	})
	total = len(ids)
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if size <= 0 || start >= total {
		return []notice.Notice{}, total
	}
	end := start + size
	if end > total {
		end = total
	}
	notices = make([]notice.Notice, 0, end-start)
	for _, id := range ids[start:end] {
		notices = append(notices, *t.table[id])
	}
	return notices, total
}

func (db *DB) UpdateNotice(id core.ID, nn notice.NewNotice) (notice.Notice, error) {
	t := db.notice
	t.Lock()
	defer t.Unlock()
	if _, ok := t.table[id]; !ok {
		return notice.Notice{}, ErrNotFound
	}
	n := noticeFrom(id, nn)
	t.table[id] = &n
	return n, nil
}

func (db *DB) DeleteNotice(id core.ID) error {
	t := db.notice
	t.Lock()
	defer t.Unlock()
	if _, ok := t.table[id]; !ok {
		return ErrNotFound
	}
	delete(t.table, id)
	return nil
}
