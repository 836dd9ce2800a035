package notice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/kala/core"
)

func TestNewNotice_Prepare(t *testing.T) {
	core.NowFunc = func() time.Time { return time.Date(2024, time.June, 3, 9, 0, 0, 0, time.Local) }
	defer func() { core.NowFunc = time.Now }()

	tests := []struct {
		name    string
		nn      NewNotice
		want    NewNotice
		wantErr bool
	}{
		{
			name: "defaults",
			nn:   NewNotice{Title: "  Holiday ", Description: "Closed on Monday"},
			want: NewNotice{
				Title:       "Holiday",
				Description: "Closed on Monday",
				Category:    DefaultCategory,
				Priority:    DefaultPriority,
				Status:      DefaultStatus,
				CreatedAt:   core.NewDate(2024, time.June, 3),
			},
		},
		{
			name: "explicit values kept",
			nn:   NewNotice{Title: "Exam", Category: "exam", Priority: "high", Status: "published", CreatedAt: core.NewDate(2024, time.May, 1)},
			want: NewNotice{Title: "Exam", Category: "exam", Priority: "high", Status: "published", CreatedAt: core.NewDate(2024, time.May, 1)},
		},
		{name: "missing title", nn: NewNotice{Description: "x"}, wantErr: true},
		{name: "blank title", nn: NewNotice{Title: "   "}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.nn.Prepare()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, core.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.nn)
		})
	}
}

func TestLatest(t *testing.T) {
	notices := make([]Notice, 0, 7)
	for i := 1; i <= 7; i++ {
		notices = append(notices, Notice{ID: core.ID(i)})
	}

	ids := func(ns []Notice) []core.ID {
		out := make([]core.ID, 0, len(ns))
		for _, n := range ns {
			out = append(out, n.ID)
		}
		return out
	}

	assert.Equal(t, []core.ID{7, 6, 5, 4, 3}, ids(Latest(notices, DashboardSize)))
	assert.Equal(t, []core.ID{2, 1}, ids(Latest(notices[:2], DashboardSize)))
	assert.Empty(t, Latest(notices, 0))
	assert.Equal(t, []core.ID{7, 6, 5, 4, 3, 2, 1}, ids(LatestFirst(notices)))
	assert.Equal(t, core.ID(1), notices[0].ID, "input must not be modified")
}
