package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/student"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var exportHeader = []string{"Name", "Grade", "Average", "Attendance"}

// StudentRow is one exported report line: a student with their derived metrics.
type StudentRow struct {
	Name           string `json:"name"`
	GradeLevel     int    `json:"grade_level"`
	GradeAverage   int    `json:"grade_average"`
	AttendanceRate int    `json:"attendance_rate"`
}

// BuildStudentRows derives one report row per student, in snapshot order.
func BuildStudentRows(students []student.Student, grades []grade.Grade, records []attendance.Record) []StudentRow {
	gradesByStudent := make(map[int][]grade.Grade, len(students))
	for _, g := range grades {
		gradesByStudent[g.StudentID] = append(gradesByStudent[g.StudentID], g)
	}
	recordsByStudent := make(map[int][]attendance.Record, len(students))
	for _, rec := range records {
		recordsByStudent[rec.StudentID] = append(recordsByStudent[rec.StudentID], rec)
	}

	rows := make([]StudentRow, 0, len(students))
	for _, st := range students {
		rows = append(rows, StudentRow{
			Name:           st.Name,
			GradeLevel:     st.GradeLevel,
			GradeAverage:   GradeAverage(gradesByStudent[st.ID]),
			AttendanceRate: AttendanceRate(recordsByStudent[st.ID]),
		})
	}
	return rows
}

// WriteCSV writes `rows` to `w` as a CSV document with a header line.
func WriteCSV(w io.Writer, rows []StudentRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return errors.Wrap(err, "writing csv header")
	}
	for _, row := range rows {
		record := []string{
			row.Name,
			strconv.Itoa(row.GradeLevel),
			strconv.Itoa(row.GradeAverage) + "%",
			strconv.Itoa(row.AttendanceRate) + "%",
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "writing csv row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing csv")
}

// WriteXLSX writes `rows` to `w` as a single-sheet XLSX workbook.
func WriteXLSX(w io.Writer, rows []StudentRow) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return errors.Wrap(err, "writing xlsx header")
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "computing xlsx cell")
		}
		values := []interface{}{row.Name, row.GradeLevel, row.GradeAverage, row.AttendanceRate}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.Wrap(err, "writing xlsx row")
		}
	}
	return errors.Wrap(f.Write(w), "writing xlsx workbook")
}
