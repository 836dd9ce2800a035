// Package dashboard loads what the student and admin home screens show.
//
// Independent fetches are issued jointly. A loader whose context was cancelled before its
// results were shaped returns ErrStale instead, so a screen that is gone never gets them.
package dashboard

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/attendance"
	"github.com/trezcool/kala/core/homework"
	"github.com/trezcool/kala/core/notice"
	"github.com/trezcool/kala/core/schedule"
	"github.com/trezcool/kala/core/session"
	"github.com/trezcool/kala/core/student"
)

var (
	// errors
	ErrStale = errors.New("screen closed before loading finished")
)

// API is the read side of the remote API used by dashboards.
type API interface {
	ListStudents(ctx context.Context) ([]student.Student, error)
	ListAttendance(ctx context.Context) ([]attendance.Record, error)
	ListNotices(ctx context.Context, page int) ([]notice.Notice, error)
	ListHomework(ctx context.Context) ([]homework.Homework, error)
	ListScheduledClasses(ctx context.Context) ([]schedule.Class, error)
}

// AttendanceStats summarizes a list of attendance records.
type AttendanceStats struct {
	Present      int
	Absent       int
	Total        int
	Percentage   int
	MonthlyRatio string
}

func statsFor(records []attendance.Record, studentID core.ID, today core.Date) AttendanceStats {
	mine := attendance.FilterForStudent(records, studentID)
	return AttendanceStats{
		Present:      attendance.PresentCount(mine),
		Absent:       attendance.AbsentCount(mine),
		Total:        attendance.TotalCount(mine),
		Percentage:   attendance.Percentage(mine),
		MonthlyRatio: attendance.MonthlyRatio(mine, studentID, today.Month, today.Year),
	}
}

type StudentDashboard struct {
	Identity   session.Identity
	Attendance AttendanceStats
	Records    []attendance.Record // the student's own records
	Notices    []notice.Notice
	Homework   []homework.Homework
	Classes    []schedule.Class
	Marks      map[core.Date]schedule.Mark
}

type AdminDashboard struct {
	Identity     session.Identity
	StudentCount int
	PresentToday int
	Notices      []notice.Notice
}

// Loader loads dashboards through an API.
type Loader struct {
	api    API
	logger core.Logger
}

func NewLoader(api API, logger core.Logger) *Loader {
	return &Loader{api: api, logger: logger}
}

// Student loads the dashboard of a logged-in student.
func (l *Loader) Student(ctx context.Context, id session.Identity) (StudentDashboard, error) {
	sid, ok := id.StudentID()
	if !ok {
		return StudentDashboard{}, errors.New("no user data found")
	}

	var (
		records []attendance.Record
		notices []notice.Notice
		hw      []homework.Homework
		classes []schedule.Class
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		notices, err = l.api.ListNotices(gctx, 1)
		return errors.Wrap(err, "fetching notices")
	})
	g.Go(func() (err error) {
		hw, err = l.api.ListHomework(gctx)
		return errors.Wrap(err, "fetching homework")
	})
	g.Go(func() (err error) {
		records, err = l.api.ListAttendance(gctx)
		return errors.Wrap(err, "fetching attendance")
	})
	g.Go(func() (err error) {
		classes, err = l.api.ListScheduledClasses(gctx)
		return errors.Wrap(err, "fetching scheduled classes")
	})
	err := g.Wait()
	if ctx.Err() != nil {
		return StudentDashboard{}, ErrStale
	}
	if err != nil {
		l.logger.Error("failed to load dashboard data", err, id)
		return StudentDashboard{}, err
	}

	today := core.Today()
	return StudentDashboard{
		Identity:   id,
		Attendance: statsFor(records, sid, today),
		Records:    attendance.FilterForStudent(records, sid),
		Notices:    notice.Latest(notices, notice.DashboardSize),
		Homework:   homework.Latest(hw, homework.DashboardSize),
		Classes:    schedule.Upcoming(classes, today),
		Marks:      schedule.BuildMarks(classes, today),
	}, nil
}

// Admin loads the dashboard of a logged-in admin.
func (l *Loader) Admin(ctx context.Context, id session.Identity) (AdminDashboard, error) {
	var (
		roster  []student.Student
		records []attendance.Record
		notices []notice.Notice
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		roster, err = l.api.ListStudents(gctx)
		return errors.Wrap(err, "fetching students")
	})
	g.Go(func() (err error) {
		records, err = l.api.ListAttendance(gctx)
		return errors.Wrap(err, "fetching attendance")
	})
	g.Go(func() (err error) {
		notices, err = l.api.ListNotices(gctx, 1)
		return errors.Wrap(err, "fetching notices")
	})
	err := g.Wait()
	if ctx.Err() != nil {
		return AdminDashboard{}, ErrStale
	}
	if err != nil {
		l.logger.Error("failed to load admin dashboard", err, id)
		return AdminDashboard{}, err
	}

	return AdminDashboard{
		Identity:     id,
		StudentCount: len(roster),
		PresentToday: attendance.PresentOn(records, core.Today()),
		Notices:      notice.Latest(notices, notice.DashboardSize),
	}, nil
}

// FeeDetails is what a student sees on the fees screen.
type FeeDetails struct {
	Student student.Student
	Paid    core.Amount
}

// Fees resolves the logged-in student in the roster.
func (l *Loader) Fees(ctx context.Context, id session.Identity) (FeeDetails, error) {
	roster, err := l.api.ListStudents(ctx)
	if ctx.Err() != nil {
		return FeeDetails{}, ErrStale
	}
	if err != nil {
		return FeeDetails{}, errors.Wrap(err, "fetching students")
	}
	s, err := student.Resolve(id, roster)
	if err != nil {
		l.logger.Warn("logged-in student not in roster", map[string]interface{}{"email": id.Email})
		return FeeDetails{}, err
	}
	return FeeDetails{Student: s, Paid: s.PaidFees()}, nil
}
