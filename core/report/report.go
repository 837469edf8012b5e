// Package report computes derived metrics over record-store snapshots.
// Every function is pure: no stored state, no mutation of its inputs.
// Percentages are rounded half-up to the nearest whole point and zero
// denominators short-circuit to 0.
package report

import (
	"math"
	"time"

	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/student"
)

var nowFunc = time.Now // mockable

// Letter grades, highest band first.
var letters = []string{"A", "B", "C", "D", "F"}

type (
	// Occupancy is a class section's derived enrollment pressure.
	// Rate is intentionally unclamped above 100 so that overbooked sections
	// remain comparable; callers clamp for display.
	Occupancy struct {
		Count int `json:"count"`
		Rate  int `json:"rate"`
	}

	// Summary is the global dashboard snapshot. AverageAttendance and
	// AverageGrade are pooled averages over the whole record population, not
	// averages of per-student averages.
	Summary struct {
		TotalStudents     int `json:"total_students"`
		ActiveStudents    int `json:"active_students"`
		AverageAttendance int `json:"average_attendance"`
		AverageGrade      int `json:"average_grade"`
		TodayPresentCount int `json:"today_present_count"`
	}

	// Breakdown is the relative share of each attendance status, in whole percents.
	Breakdown struct {
		Present int `json:"present"`
		Absent  int `json:"absent"`
		Late    int `json:"late"`
	}
)

// GradeAverage returns the mean of each grade's percentage, rounded to the
// nearest whole percent. By convention a student with no grades averages 0.
func GradeAverage(grades []grade.Grade) int {
	if len(grades) == 0 {
		return 0
	}
	var total float64
	for i := range grades {
		total += grades[i].Percent()
	}
	return round(total / float64(len(grades)))
}

// AttendanceRate returns the share of present marks among `records`, rounded
// to the nearest whole percent; 0 when there are no records.
func AttendanceRate(records []attendance.Record) int {
	if len(records) == 0 {
		return 0
	}
	var present int
	for i := range records {
		if records[i].Status == attendance.StatusPresent {
			present++
		}
	}
	return pct(present, len(records))
}

// LetterGrade buckets a whole percentage into a letter band.
// Boundaries are inclusive at the lower bound: 90 is an A, 89 a B.
func LetterGrade(percentage int) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B"
	case percentage >= 70:
		return "C"
	case percentage >= 60:
		return "D"
	}
	return "F"
}

// GradeDistribution buckets every student by the letter grade of their
// average. Students with no grades average 0 and land in F.
func GradeDistribution(students []student.Student, grades []grade.Grade) map[string]int {
	byStudent := make(map[int][]grade.Grade, len(students))
	for _, g := range grades {
		byStudent[g.StudentID] = append(byStudent[g.StudentID], g)
	}

	dist := make(map[string]int, len(letters))
	for _, l := range letters {
		dist[l] = 0
	}
	for _, st := range students {
		dist[LetterGrade(GradeAverage(byStudent[st.ID]))]++
	}
	return dist
}

// ClassOccupancy counts active students whose grade level and section match
// the class and relates the count to the class capacity.
func ClassOccupancy(cls class.Class, students []student.Student) Occupancy {
	var count int
	for i := range students {
		st := &students[i]
		if st.IsActive() && st.GradeLevel == cls.GradeLevel && st.Section == cls.Section {
			count++
		}
	}
	return Occupancy{Count: count, Rate: pct(count, cls.Capacity)}
}

// DashboardSummary derives the global dashboard metrics from full snapshots of
// the three record populations.
func DashboardSummary(students []student.Student, grades []grade.Grade, records []attendance.Record) Summary {
	s := Summary{TotalStudents: len(students)}
	for i := range students {
		if students[i].IsActive() {
			s.ActiveStudents++
		}
	}

	s.AverageAttendance = AttendanceRate(records)

	if len(grades) > 0 {
		var total float64
		for i := range grades {
			total += grades[i].Percent()
		}
		s.AverageGrade = round(total / float64(len(grades)))
	}

	today := attendance.DayOf(nowFunc())
	for i := range records {
		rec := &records[i]
		if rec.Status == attendance.StatusPresent && attendance.DayOf(rec.Date).Equal(today) {
			s.TodayPresentCount++
		}
	}
	return s
}

// AttendanceBreakdown splits `records` into present/absent/late shares.
// An empty set yields all zeroes.
func AttendanceBreakdown(records []attendance.Record) Breakdown {
	if len(records) == 0 {
		return Breakdown{}
	}
	var present, absent, late int
	for i := range records {
		switch records[i].Status {
		case attendance.StatusPresent:
			present++
		case attendance.StatusAbsent:
			absent++
		case attendance.StatusLate:
			late++
		}
	}
	total := len(records)
	return Breakdown{
		Present: pct(present, total),
		Absent:  pct(absent, total),
		Late:    pct(late, total),
	}
}

func pct(num, den int) int {
	if den == 0 {
		return 0
	}
	return round(float64(num) / float64(den) * 100)
}

func round(f float64) int {
	return int(math.Round(f))
}
