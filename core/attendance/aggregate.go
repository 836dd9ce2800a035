package attendance

import (
	"fmt"
	"math"
	"time"

	"github.com/trezcool/kala/core"
)

// The functions below never modify their input.

func FilterForStudent(records []Record, studentID core.ID) []Record {
	res := make([]Record, 0)
	for _, r := range records {
		if r.StudentID == studentID {
			res = append(res, r)
		}
	}
	return res
}

func PresentCount(records []Record) int {
	var n int
	for _, r := range records {
		if r.Present {
			n++
		}
	}
	return n
}

func TotalCount(records []Record) int {
	return len(records)
}

func AbsentCount(records []Record) int {
	return TotalCount(records) - PresentCount(records)
}

// Percentage is round(present/total*100); 0 when there are no records.
func Percentage(records []Record) int {
	total := TotalCount(records)
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(PresentCount(records)) / float64(total) * 100))
}

// DaysInMonth returns the exact number of days of month in year.
func DaysInMonth(month time.Month, year int) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthPresentCount counts the days studentID was present in the given month.
func MonthPresentCount(records []Record, studentID core.ID, month time.Month, year int) int {
	var n int
	for _, r := range records {
		if r.StudentID == studentID && r.Present && r.Date.Month == month && r.Date.Year == year {
			n++
		}
	}
	return n
}

// MonthlyRatio renders "presentDays/daysInMonth" for studentID in the given month.
func MonthlyRatio(records []Record, studentID core.ID, month time.Month, year int) string {
	return fmt.Sprintf("%d/%d", MonthPresentCount(records, studentID, month, year), DaysInMonth(month, year))
}

// GroupByDate groups records by date. Groups come in the order their date was first seen
// and records keep their relative order within a group.
func GroupByDate(records []Record) []Group {
	idx := make(map[core.Date]int)
	groups := make([]Group, 0)
	for _, r := range records {
		i, ok := idx[r.Date]
		if !ok {
			i = len(groups)
			idx[r.Date] = i
			groups = append(groups, Group{Date: r.Date})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}

// PresentOn counts the records marked present on day, across all students.
func PresentOn(records []Record, day core.Date) int {
	var n int
	for _, r := range records {
		if r.Date == day && r.Present {
			n++
		}
	}
	return n
}

// Find returns every record of studentID on day, in input order.
func Find(records []Record, studentID core.ID, day core.Date) []Record {
	var res []Record
	for _, r := range records {
		if r.StudentID == studentID && r.Date == day {
			res = append(res, r)
		}
	}
	return res
}
