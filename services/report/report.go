// Package report reads and writes attendance and roster spreadsheets.
package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/attendance"
	"github.com/trezcool/kala/core/student"
)

const (
	historySheet = "Attendance"
	summarySheet = "Summary"
)

var (
	historyHeader = []interface{}{"Date", "Student ID", "Student", "Status"}
	summaryHeader = []interface{}{"Student ID", "Student", "Present", "Absent", "Percentage"}
	rosterHeader  = []string{"name", "email", "password", "phone", "joining date", "total fees"}
)

// WriteAttendance writes the attendance history, grouped by date, and a per-student summary
// as an XLSX workbook to w.
func WriteAttendance(w io.Writer, records []attendance.Record, roster []student.Student) error {
	f := excelize.NewFile()
	defer f.Close()

	names := make(map[core.ID]string, len(roster))
	for _, s := range roster {
		names[s.ID] = s.Name
	}

	if err := f.SetSheetName(f.GetSheetName(0), historySheet); err != nil {
		return errors.Wrap(err, "naming history sheet")
	}
	if err := f.SetSheetRow(historySheet, "A1", &historyHeader); err != nil {
		return errors.Wrap(err, "writing history header")
	}
	row := 2
	for _, g := range attendance.GroupByDate(records) {
		for _, rec := range g.Records {
			status := "Absent"
			if rec.Present {
				status = "Present"
			}
			cells := []interface{}{g.Date.String(), int64(rec.StudentID), names[rec.StudentID], status}
			if err := f.SetSheetRow(historySheet, cell(row), &cells); err != nil {
				return errors.Wrapf(err, "writing history row %d", row)
			}
			row++
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return errors.Wrap(err, "creating summary sheet")
	}
	if err := f.SetSheetRow(summarySheet, "A1", &summaryHeader); err != nil {
		return errors.Wrap(err, "writing summary header")
	}
	for i, s := range roster {
		mine := attendance.FilterForStudent(records, s.ID)
		cells := []interface{}{
			int64(s.ID), s.Name,
			attendance.PresentCount(mine), attendance.AbsentCount(mine),
			attendance.Percentage(mine),
		}
		if err := f.SetSheetRow(summarySheet, cell(i+2), &cells); err != nil {
			return errors.Wrapf(err, "writing summary row %d", i+2)
		}
	}

	_, err := f.WriteTo(w)
	return errors.Wrap(err, "writing workbook")
}

// ReadRoster reads new students from the first sheet of an XLSX workbook.
// The first row is a header; columns are name, email, password, phone, joining date
// (YYYY-MM-DD) and total fees. Blank rows are skipped.
func ReadRoster(r io.Reader) ([]student.NewStudent, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "opening workbook")
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "reading sheet %s", sheet)
	}

	var out []student.NewStudent
	for i, row := range rows {
		if i == 0 || blank(row) {
			continue
		}
		col := func(n int) string {
			if n < len(row) {
				return strings.TrimSpace(row[n])
			}
			return ""
		}

		ns := student.NewStudent{
			Name:     col(0),
			Email:    col(1),
			Password: col(2),
			Phone:    col(3),
		}
		if v := col(4); v != "" {
			if ns.JoiningDate, err = core.ParseDate(v); err != nil {
				return nil, errors.Wrapf(err, "row %d", i+1)
			}
		}
		if v := col(5); v != "" {
			if ns.TotalFees, err = strconv.ParseFloat(v, 64); err != nil {
				return nil, errors.Errorf("row %d: invalid total fees %q", i+1, v)
			}
		}
		out = append(out, ns)
	}
	return out, nil
}

// WriteRosterTemplate writes an empty roster workbook with the expected header.
func WriteRosterTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &rosterHeader); err != nil {
		return errors.Wrap(err, "writing roster header")
	}
	_, err := f.WriteTo(w)
	return errors.Wrap(err, "writing workbook")
}

func cell(row int) string {
	name, _ := excelize.CoordinatesToCellName(1, row)
	return name
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
