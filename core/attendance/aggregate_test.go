package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/kala/core"
)

func day(s string) core.Date {
	d, err := core.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		want    int
	}{
		{name: "empty", records: nil, want: 0},
		{name: "all absent", records: []Record{{Present: false}, {Present: false}}, want: 0},
		{name: "all present", records: []Record{{Present: true}, {Present: true}}, want: 100},
		{name: "two of three", records: []Record{{Present: true}, {Present: true}, {Present: false}}, want: 67},
		{name: "one of three", records: []Record{{Present: true}, {}, {}}, want: 33},
		{name: "half", records: []Record{{Present: true}, {}}, want: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentage(tt.records)
			assert.Equal(t, tt.want, got)
			assert.True(t, got >= 0 && got <= 100)
		})
	}
}

func TestCounts(t *testing.T) {
	records := []Record{{Present: true}, {Present: false}, {Present: true}}
	assert.Equal(t, 2, PresentCount(records))
	assert.Equal(t, 1, AbsentCount(records))
	assert.Equal(t, 3, TotalCount(records))
}

func TestFilterForStudent(t *testing.T) {
	records := []Record{
		{ID: 1, StudentID: 3},
		{ID: 2, StudentID: 4},
		{ID: 3, StudentID: 3},
	}
	orig := append([]Record(nil), records...)

	got := FilterForStudent(records, 3)
	assert.Equal(t, []Record{records[0], records[2]}, got)
	assert.Empty(t, FilterForStudent(records, 9))
	assert.Equal(t, orig, records, "input must not be modified")
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		month time.Month
		year  int
		want  int
	}{
		{time.February, 2024, 29},
		{time.February, 2023, 28},
		{time.February, 1900, 28},
		{time.February, 2000, 29},
		{time.January, 2023, 31},
		{time.April, 2023, 30},
		{time.December, 2023, 31},
	}
	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, DaysInMonth(tt.month, tt.year))
		})
	}
}

func TestMonthlyRatio(t *testing.T) {
	records := []Record{
		{StudentID: 1, Date: day("2024-02-01"), Present: true},
		{StudentID: 1, Date: day("2024-02-02"), Present: false},
		{StudentID: 1, Date: day("2024-02-29"), Present: true},
		{StudentID: 1, Date: day("2023-02-01"), Present: true}, // other year
		{StudentID: 1, Date: day("2024-03-01"), Present: true}, // other month
		{StudentID: 2, Date: day("2024-02-05"), Present: true}, // other student
	}
	assert.Equal(t, "2/29", MonthlyRatio(records, 1, time.February, 2024))
	assert.Equal(t, "1/28", MonthlyRatio(records, 1, time.February, 2023))
	assert.Equal(t, "0/31", MonthlyRatio(records, 3, time.January, 2024))
	assert.Equal(t, "1/29", MonthlyRatio(records, 2, time.February, 2024))
}

func TestGroupByDate(t *testing.T) {
	records := []Record{
		{ID: 1, Date: day("2024-01-01")},
		{ID: 2, Date: day("2024-01-02")},
		{ID: 3, Date: day("2024-01-01")},
	}
	groups := GroupByDate(records)
	if assert.Len(t, groups, 2) {
		assert.Equal(t, day("2024-01-01"), groups[0].Date)
		assert.Equal(t, []Record{records[0], records[2]}, groups[0].Records)
		assert.Equal(t, day("2024-01-02"), groups[1].Date)
		assert.Equal(t, []Record{records[1]}, groups[1].Records)
	}
	assert.Empty(t, GroupByDate(nil))

	// same input, same output
	assert.Equal(t, groups, GroupByDate(records))
}

func TestPresentOn(t *testing.T) {
	today := day("2024-05-01")
	records := []Record{
		{StudentID: 1, Date: today, Present: true},
		{StudentID: 2, Date: today, Present: false},
		{StudentID: 3, Date: day("2024-04-30"), Present: true},
		{StudentID: 4, Date: today, Present: true},
	}
	assert.Equal(t, 2, PresentOn(records, today))
}
