package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/attendance"
	"github.com/trezcool/kala/core/student"
)

func TestWriteAttendance(t *testing.T) {
	may1 := core.NewDate(2024, time.May, 1)
	may2 := core.NewDate(2024, time.May, 2)
	records := []attendance.Record{
		{ID: 1, StudentID: 1, Date: may1, Present: true},
		{ID: 2, StudentID: 2, Date: may2, Present: false},
		{ID: 3, StudentID: 2, Date: may1, Present: true},
	}
	roster := []student.Student{{ID: 1, Name: "Asha"}, {ID: 2, Name: "Ravi"}}

	var buf bytes.Buffer
	require.NoError(t, WriteAttendance(&buf, records, roster))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(historySheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Date", "Student ID", "Student", "Status"},
		{"2024-05-01", "1", "Asha", "Present"},
		{"2024-05-01", "2", "Ravi", "Present"},
		{"2024-05-02", "2", "Ravi", "Absent"},
	}, rows)

	rows, err = f.GetRows(summarySheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Student ID", "Student", "Present", "Absent", "Percentage"},
		{"1", "Asha", "1", "0", "100"},
		{"2", "Ravi", "1", "1", "50"},
	}, rows)
}

func TestReadRoster(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"name", "email", "password", "phone", "joining date", "total fees"},
		{"Asha", "asha@kala.in", "pwd", "9876543210", "2024-01-10", "1200"},
		{"", "", "", "", "", ""},
		{"Ravi", "ravi@kala.in", "pwd", "9123456780", "", ""},
	}
	for i, r := range rows {
		r := r
		require.NoError(t, f.SetSheetRow(sheet, cell(i+1), &r))
	}
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	got, err := ReadRoster(&buf)
	require.NoError(t, err)
	assert.Equal(t, []student.NewStudent{
		{Name: "Asha", Email: "asha@kala.in", Password: "pwd", Phone: "9876543210", JoiningDate: core.NewDate(2024, time.January, 10), TotalFees: 1200},
		{Name: "Ravi", Email: "ravi@kala.in", Password: "pwd", Phone: "9123456780"},
	}, got)
}

func TestReadRoster_invalid(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &rosterHeader))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Asha", "a@x.com", "p", "1", "01/02/2024"}))
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)

	_, err = ReadRoster(&buf)
	assert.Error(t, err)

	_, err = ReadRoster(bytes.NewReader([]byte("not a workbook")))
	assert.Error(t, err)
}

func TestWriteRosterTemplate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRosterTemplate(&buf))
	got, err := ReadRoster(&buf)
	require.NoError(t, err)
	assert.Empty(t, got)
}
