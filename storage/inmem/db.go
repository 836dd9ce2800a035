// Package inmemdb holds the tables of the stub backend in memory.
package inmemdb

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/attendance"
	"github.com/trezcool/kala/core/homework"
	"github.com/trezcool/kala/core/notice"
	"github.com/trezcool/kala/core/schedule"
	"github.com/trezcool/kala/core/student"
)

var (
	// errors
	ErrNotFound    = errors.New("not found")
	ErrEmailExists = errors.New("a user with this email already exists")
)

type (
	DB struct {
		account    *accountTable
		student    *studentTable
		attendance *attendanceTable
		notice     *noticeTable
		homework   *homeworkTable
		class      *classTable
		payment    *paymentTable
	}

	accountTable struct {
		sync.RWMutex
		pk    core.ID
		table map[core.ID]*Account
	}

	studentTable struct {
		sync.RWMutex
		pk        core.ID
		table     map[core.ID]*student.Student
		passwords map[core.ID][]byte // student accounts
	}

	attendanceTable struct {
		sync.RWMutex
		pk    core.ID
		table map[core.ID]*attendance.Record
	}

	noticeTable struct {
		sync.RWMutex
		pk    core.ID
		table map[core.ID]*notice.Notice
	}

	homeworkTable struct {
		sync.RWMutex
		pk    core.ID
		table map[core.ID]*homework.Homework
	}

	classTable struct {
		sync.RWMutex
		pk    core.ID
		table map[core.ID]*schedule.Class
	}

	paymentTable struct {
		sync.RWMutex
		pk    core.ID
		table map[core.ID]*Payment
	}
)

func Open() *DB {
	return &DB{
		account:    &accountTable{table: make(map[core.ID]*Account)},
		student:    &studentTable{table: make(map[core.ID]*student.Student), passwords: make(map[core.ID][]byte)},
		attendance: &attendanceTable{table: make(map[core.ID]*attendance.Record)},
		notice:     &noticeTable{table: make(map[core.ID]*notice.Notice)},
		homework:   &homeworkTable{table: make(map[core.ID]*homework.Homework)},
		class:      &classTable{table: make(map[core.ID]*schedule.Class)},
		payment:    &paymentTable{table: make(map[core.ID]*Payment)},
	}
}

// sortedIDs collects ids through each and returns them in insertion (id) order.
func sortedIDs(n int, each func(func(core.ID))) []core.ID {
	ids := make([]core.ID, 0, n)
	each(func(id core.ID) { ids = append(ids, id) })
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
