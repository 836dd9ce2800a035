package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/attendance"
	"github.com/trezcool/kala/core/homework"
	"github.com/trezcool/kala/core/notice"
	"github.com/trezcool/kala/core/schedule"
	"github.com/trezcool/kala/core/session"
	"github.com/trezcool/kala/core/student"
	"github.com/trezcool/kala/tests"
)

type fakeAPI struct {
	students []student.Student
	records  []attendance.Record
	notices  []notice.Notice
	homework []homework.Homework
	classes  []schedule.Class
	err      error

	// called before returning from every call
	hook func()
}

func (f *fakeAPI) done() error {
	if f.hook != nil {
		f.hook()
	}
	return f.err
}

func (f *fakeAPI) ListStudents(context.Context) ([]student.Student, error) {
	return f.students, f.done()
}
func (f *fakeAPI) ListAttendance(context.Context) ([]attendance.Record, error) {
	return f.records, f.done()
}
func (f *fakeAPI) ListNotices(context.Context, int) ([]notice.Notice, error) {
	return f.notices, f.done()
}
func (f *fakeAPI) ListHomework(context.Context) ([]homework.Homework, error) {
	return f.homework, f.done()
}
func (f *fakeAPI) ListScheduledClasses(context.Context) ([]schedule.Class, error) {
	return f.classes, f.done()
}

var today = core.NewDate(2024, time.May, 10)

func freezeToday(t *testing.T) {
	core.NowFunc = func() time.Time { return today.Time().Add(10 * time.Hour) }
	t.Cleanup(func() { core.NowFunc = time.Now })
}

func newFakeAPI() *fakeAPI {
	api := &fakeAPI{
		students: []student.Student{
			{ID: 1, Email: "a@x.com", TotalFees: 1000, PendingFees: 400},
			{ID: 2, Email: "b@x.com"},
		},
		records: []attendance.Record{
			{ID: 1, StudentID: 1, Date: core.NewDate(2024, time.May, 8), Present: true},
			{ID: 2, StudentID: 1, Date: core.NewDate(2024, time.May, 9), Present: false},
			{ID: 3, StudentID: 1, Date: today, Present: true},
			{ID: 4, StudentID: 2, Date: today, Present: true},
			{ID: 5, StudentID: 1, Date: core.NewDate(2024, time.April, 30), Present: true},
		},
		classes: []schedule.Class{
			{ID: 1, Date: core.NewDate(2024, time.May, 9), Present: true},
			{ID: 2, Date: core.NewDate(2024, time.May, 12), Present: true},
		},
	}
	for i := 1; i <= 6; i++ {
		api.notices = append(api.notices, notice.Notice{ID: core.ID(i)})
		api.homework = append(api.homework, homework.Homework{ID: core.ID(i)})
	}
	return api
}

func TestLoader_Student(t *testing.T) {
	freezeToday(t)
	id := session.Identity{ID: null.IntFrom(1), Name: "A", Role: session.RoleStudent}

	d, err := NewLoader(newFakeAPI(), testutil.NewLogger()).Student(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, AttendanceStats{Present: 3, Absent: 1, Total: 4, Percentage: 75, MonthlyRatio: "2/31"}, d.Attendance)
	assert.Len(t, d.Records, 4)
	require.Len(t, d.Notices, notice.DashboardSize)
	assert.Equal(t, core.ID(6), d.Notices[0].ID)
	require.Len(t, d.Homework, homework.DashboardSize)
	assert.Equal(t, core.ID(6), d.Homework[0].ID)
	require.Len(t, d.Classes, 1)
	assert.Equal(t, core.ID(2), d.Classes[0].ID)
	assert.True(t, d.Marks[today].Selected)
	assert.True(t, d.Marks[core.NewDate(2024, time.May, 9)].Scheduled)
}

func TestLoader_Student_noID(t *testing.T) {
	_, err := NewLoader(newFakeAPI(), testutil.NewLogger()).Student(context.Background(), session.Identity{Email: "a@x.com"})
	assert.Error(t, err)
}

func TestLoader_Admin(t *testing.T) {
	freezeToday(t)
	d, err := NewLoader(newFakeAPI(), testutil.NewLogger()).Admin(context.Background(), session.Identity{})
	require.NoError(t, err)
	assert.Equal(t, 2, d.StudentCount)
	assert.Equal(t, 2, d.PresentToday)
	assert.Len(t, d.Notices, 5)
}

func TestLoader_Fees(t *testing.T) {
	loader := NewLoader(newFakeAPI(), testutil.NewLogger())

	d, err := loader.Fees(context.Background(), session.Identity{Email: " A@X.com "})
	require.NoError(t, err)
	assert.Equal(t, core.ID(1), d.Student.ID)
	assert.Equal(t, core.Amount(600), d.Paid)

	_, err = loader.Fees(context.Background(), session.Identity{ID: null.IntFrom(7)})
	assert.Equal(t, student.ErrNotFound, err)
}

func TestLoader_stale(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	api := newFakeAPI()
	api.hook = cancel // the screen goes away while requests are in flight
	loader := NewLoader(api, testutil.NewLogger())
	id := session.Identity{ID: null.IntFrom(1), Role: session.RoleStudent}

	_, err := loader.Student(ctx, id)
	assert.Equal(t, ErrStale, err)
	_, err = loader.Admin(ctx, id)
	assert.Equal(t, ErrStale, err)
	_, err = loader.Fees(ctx, id)
	assert.Equal(t, ErrStale, err)
}

func TestLoader_fetchError(t *testing.T) {
	api := newFakeAPI()
	api.err = errors.New("boom")
	logger := testutil.NewLogger()

	_, err := NewLoader(api, logger).Admin(context.Background(), session.Identity{})
	require.Error(t, err)
	assert.Equal(t, api.err, errors.Cause(err))
	assert.Equal(t, 1, logger.Count("error"))
}
