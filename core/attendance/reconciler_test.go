package attendance

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/student"
	"github.com/trezcool/kala/tests"
)

type apiCall struct {
	action Action
	id     core.ID
	rec    NewRecord
}

type fakeAPI struct {
	mu     sync.Mutex
	calls  []apiCall
	failOn map[core.ID]bool // student ids
	nextID core.ID
}

func (f *fakeAPI) record(c apiCall) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
	if f.failOn[c.rec.StudentID] {
		return errors.New("boom")
	}
	return nil
}

func (f *fakeAPI) CreateAttendance(_ context.Context, nr NewRecord) (Record, error) {
	if err := f.record(apiCall{action: ActionCreate, rec: nr}); err != nil {
		return Record{}, err
	}
	f.mu.Lock()
	f.nextID++
	id := f.nextID
	f.mu.Unlock()
	return Record{ID: id, StudentID: nr.StudentID, Date: nr.Date, Present: nr.Present}, nil
}

func (f *fakeAPI) UpdateAttendance(_ context.Context, id core.ID, nr NewRecord) (Record, error) {
	if err := f.record(apiCall{action: ActionUpdate, id: id, rec: nr}); err != nil {
		return Record{}, err
	}
	return Record{ID: id, StudentID: nr.StudentID, Date: nr.Date, Present: nr.Present}, nil
}

func (f *fakeAPI) callFor(studentID core.ID) (apiCall, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c.rec.StudentID == studentID {
			return c, true
		}
	}
	return apiCall{}, false
}

func TestPlan_updateExisting(t *testing.T) {
	today := day("2024-05-01")
	existing := []Record{{ID: 7, StudentID: 3, Date: today, Present: false}}
	sheet := NewSheet(nil)
	sheet.Set(3, true)

	decisions := Plan([]student.Student{{ID: 3}}, sheet, existing, today)
	require.Len(t, decisions, 1)
	assert.Equal(t, ActionUpdate, decisions[0].Action)
	assert.Equal(t, core.ID(7), decisions[0].RecordID)
	assert.Equal(t, NewRecord{StudentID: 3, Date: today, Present: true}, decisions[0].Record)
}

func TestPlan(t *testing.T) {
	today := day("2024-05-01")
	roster := []student.Student{{ID: 1}, {ID: 2}, {ID: 3}}
	existing := []Record{
		{ID: 10, StudentID: 1, Date: day("2024-04-30")}, // other day
		{ID: 11, StudentID: 2, Date: today, Present: true},
		{ID: 12, StudentID: 2, Date: today}, // duplicate
	}
	sheet := NewSheet(nil)
	sheet.Toggle(1)
	sheet.Toggle(2)
	sheet.Toggle(2) // back to absent

	decisions := Plan(roster, sheet, existing, today)
	require.Len(t, decisions, 3)

	assert.Equal(t, ActionCreate, decisions[0].Action)
	assert.True(t, decisions[0].Record.Present)

	assert.Equal(t, ActionUpdate, decisions[1].Action)
	assert.Equal(t, core.ID(11), decisions[1].RecordID)
	assert.False(t, decisions[1].Record.Present)
	assert.Equal(t, []core.ID{12}, decisions[1].Duplicates)

	assert.Equal(t, ActionCreate, decisions[2].Action)
	assert.False(t, decisions[2].Record.Present, "untouched students default to absent")
}

func TestReconciler_Submit(t *testing.T) {
	today := day("2024-05-01")
	roster := []student.Student{{ID: 1}, {ID: 2}, {ID: 3}}
	existing := []Record{{ID: 7, StudentID: 3, Date: today}}

	var refreshed int
	sheet := NewSheet(func() { refreshed++ })
	sheet.Set(1, true)
	sheet.Set(3, true)

	api := &fakeAPI{}
	r := NewReconciler(api, testutil.NewLogger(), 2)
	out, err := r.Submit(context.Background(), sheet, roster, existing, today)
	require.NoError(t, err)

	assert.True(t, out.OK())
	assert.Equal(t, []core.ID{1, 2}, out.Created)
	assert.Equal(t, []core.ID{3}, out.Updated)
	assert.Len(t, api.calls, 3)

	c, ok := api.callFor(3)
	require.True(t, ok)
	assert.Equal(t, ActionUpdate, c.action)
	assert.Equal(t, core.ID(7), c.id)
	assert.True(t, c.rec.Present)

	assert.Equal(t, 1, refreshed)
	assert.Equal(t, 0, sheet.Touched(), "sheet is cleared after a successful submit")
}

func TestReconciler_Submit_partialFailure(t *testing.T) {
	today := day("2024-05-01")
	roster := []student.Student{{ID: 1}, {ID: 2}, {ID: 3}}

	var refreshed int
	sheet := NewSheet(func() { refreshed++ })
	sheet.Set(2, true)

	api := &fakeAPI{failOn: map[core.ID]bool{2: true}}
	logger := testutil.NewLogger()
	r := NewReconciler(api, logger, 1)
	out, err := r.Submit(context.Background(), sheet, roster, nil, today)

	assert.Equal(t, ErrSubmitFailed, err)
	assert.False(t, out.OK())
	assert.Contains(t, out.Failed, core.ID(2))
	assert.Equal(t, []core.ID{1, 3}, out.Created, "a failure does not stop the other students")
	assert.Len(t, api.calls, 3)
	assert.Equal(t, 1, logger.Count("error"))

	assert.Equal(t, 0, refreshed)
	assert.True(t, sheet.Present(2), "sheet is kept for a retry")
}

func TestReconciler_Submit_duplicatesSurfaced(t *testing.T) {
	today := day("2024-05-01")
	existing := []Record{
		{ID: 20, StudentID: 5, Date: today},
		{ID: 21, StudentID: 5, Date: today},
	}
	logger := testutil.NewLogger()
	r := NewReconciler(&fakeAPI{}, logger, 4)
	out, err := r.Submit(context.Background(), NewSheet(nil), []student.Student{{ID: 5}}, existing, today)
	require.NoError(t, err)

	assert.Equal(t, []core.ID{5}, out.Updated)
	assert.Equal(t, map[core.ID][]core.ID{5: {21}}, out.Duplicates)
	assert.Equal(t, 1, logger.Count("warn"))
}

func TestReconciler_Submit_emptyRoster(t *testing.T) {
	api := &fakeAPI{}
	out, err := NewReconciler(api, testutil.NewLogger(), 0).Submit(context.Background(), NewSheet(nil), nil, nil, day("2024-05-01"))
	require.NoError(t, err)
	assert.True(t, out.OK())
	assert.Empty(t, api.calls)
}
