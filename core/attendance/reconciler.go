package attendance

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/student"
)

var (
	// errors
	ErrSubmitFailed = errors.New("something went wrong while saving attendance")
)

// API is the part of the remote API the Reconciler writes through.
type API interface {
	CreateAttendance(ctx context.Context, nr NewRecord) (Record, error)
	UpdateAttendance(ctx context.Context, id core.ID, nr NewRecord) (Record, error)
}

type Action int

const (
	ActionCreate Action = iota + 1
	ActionUpdate
)

func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// Decision is what will be sent for one student.
type Decision struct {
	Action   Action
	RecordID core.ID // ActionUpdate only
	Record   NewRecord

	// other records already stored for the same (student, day); the backend does not prevent them
	Duplicates []core.ID
}

// Outcome reports what a submission did. Partial success is a normal outcome.
type Outcome struct {
	Created    []core.ID
	Updated    []core.ID
	Failed     map[core.ID]error
	Duplicates map[core.ID][]core.ID // student -> duplicate record ids
}

func (o Outcome) OK() bool { return len(o.Failed) == 0 }

// Plan decides, for each student of the roster, whether to create a record for day or update
// the one already fetched. It is pure.
func Plan(roster []student.Student, sheet *Sheet, existing []Record, day core.Date) []Decision {
	decisions := make([]Decision, 0, len(roster))
	for _, s := range roster {
		d := Decision{
			Action: ActionCreate,
			Record: NewRecord{StudentID: s.ID, Date: day, Present: sheet.Present(s.ID)},
		}
		if found := Find(existing, s.ID, day); len(found) > 0 {
			d.Action = ActionUpdate
			d.RecordID = found[0].ID
			for _, dup := range found[1:] {
				d.Duplicates = append(d.Duplicates, dup.ID)
			}
		}
		decisions = append(decisions, d)
	}
	return decisions
}

type Reconciler struct {
	api    API
	logger core.Logger
	limit  int
}

// NewReconciler returns a Reconciler running at most limit requests at a time.
func NewReconciler(api API, logger core.Logger, limit int) *Reconciler {
	if limit < 1 {
		limit = 1
	}
	return &Reconciler{api: api, logger: logger, limit: limit}
}

// Submit writes the sheet for day: one create or update per roster student.
// Each write is attempted independently; there is no retry and no rollback of the writes
// that went through. If any write fails the error is ErrSubmitFailed and the sheet is kept
// so the user can resubmit; otherwise the sheet is cleared and its refresh callback runs.
func (r *Reconciler) Submit(ctx context.Context, sheet *Sheet, roster []student.Student, existing []Record, day core.Date) (Outcome, error) {
	out := Outcome{
		Failed:     make(map[core.ID]error),
		Duplicates: make(map[core.ID][]core.ID),
	}
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(r.limit)
	for _, d := range Plan(roster, sheet, existing, day) {
		d := d
		if len(d.Duplicates) > 0 {
			out.Duplicates[d.Record.StudentID] = d.Duplicates
			r.logger.Warn("duplicate attendance records", map[string]interface{}{
				"student": d.Record.StudentID.String(),
				"date":    day.String(),
				"updated": d.RecordID.String(),
				"ignored": d.Duplicates,
			})
		}
		g.Go(func() error {
			var err error
			switch d.Action {
			case ActionUpdate:
				_, err = r.api.UpdateAttendance(ctx, d.RecordID, d.Record)
			default:
				_, err = r.api.CreateAttendance(ctx, d.Record)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				out.Failed[d.Record.StudentID] = err
				return nil // keep going with the others
			}
			if d.Action == ActionUpdate {
				out.Updated = append(out.Updated, d.Record.StudentID)
			} else {
				out.Created = append(out.Created, d.Record.StudentID)
			}
			return nil
		})
	}
	_ = g.Wait()

	sortIDs(out.Created)
	sortIDs(out.Updated)

	if !out.OK() {
		for id, err := range out.Failed {
			r.logger.Error("saving attendance", errors.Wrapf(err, "student %s", id))
		}
		return out, ErrSubmitFailed
	}
	sheet.reset()
	return out, nil
}

func sortIDs(ids []core.ID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
