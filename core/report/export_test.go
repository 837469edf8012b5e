package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/student"
)

func exportFixture() []StudentRow {
	students := []student.Student{
		{ID: 1, Name: "Emma Johnson", GradeLevel: 5},
		{ID: 2, Name: "Liam Smith", GradeLevel: 6},
	}
	grades := []grade.Grade{
		{StudentID: 1, Score: 45, MaxScore: 50},
		{StudentID: 1, Score: 80, MaxScore: 100},
	}
	records := []attendance.Record{
		{StudentID: 1, Status: attendance.StatusPresent},
		{StudentID: 1, Status: attendance.StatusAbsent},
	}
	return BuildStudentRows(students, grades, records)
}

func TestBuildStudentRows(t *testing.T) {
	rows := exportFixture()
	want := []StudentRow{
		{Name: "Emma Johnson", GradeLevel: 5, GradeAverage: 85, AttendanceRate: 50},
		{Name: "Liam Smith", GradeLevel: 6}, // no grades, no records
	}
	assert.Equal(t, want, rows)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exportFixture()))

	want := strings.Join([]string{
		"Name,Grade,Average,Attendance",
		"Emma Johnson,5,85%,50%",
		"Liam Smith,6,0%,0%",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, exportFixture()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	cells := map[string]string{
		"A1": "Name", "B1": "Grade", "C1": "Average", "D1": "Attendance",
		"A2": "Emma Johnson", "B2": "5", "C2": "85", "D2": "50",
		"A3": "Liam Smith", "B3": "6", "C3": "0", "D3": "0",
	}
	for cell, want := range cells {
		got, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, "cell %s", cell)
	}
}
