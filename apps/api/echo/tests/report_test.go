package tests

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/report"
	"github.com/trezcool/shule/core/student"
	testutil "github.com/trezcool/shule/tests"
)

func Test_reportApi_dashboard(t *testing.T) {
	resetDB(t)

	emma := testutil.CreateStudent(t, studentRepo, "Emma Johnson", "emma@school.edu", 5, "A", student.StatusActive)
	liam := testutil.CreateStudent(t, studentRepo, "Liam Smith", "liam@school.edu", 5, "B", student.StatusActive)
	testutil.CreateStudent(t, studentRepo, "Noah Davis", "noah@school.edu", 6, "B", student.StatusInactive)

	d := testutil.Day(2024, time.September, 2)
	testutil.CreateGrade(t, gradeRepo, emma.ID, "Mathematics", 45, 50, grade.TypeTest, d)  // 90%
	testutil.CreateGrade(t, gradeRepo, emma.ID, "Science", 80, 100, grade.TypeQuiz, d)     // 80%
	testutil.CreateGrade(t, gradeRepo, liam.ID, "Mathematics", 70, 100, grade.TypeTest, d) // 70%

	testutil.CreateRecord(t, attendanceRepo, emma.ID, d, attendance.StatusPresent)
	testutil.CreateRecord(t, attendanceRepo, liam.ID, d, attendance.StatusAbsent, "sick")
	testutil.CreateRecord(t, attendanceRepo, emma.ID, time.Now(), attendance.StatusPresent)

	req, rec := newRequest(http.MethodGet, "/v1/reports/dashboard")
	app.ServeHTTP(rec, req)
	want := report.Summary{
		TotalStudents:     3,
		ActiveStudents:    2,
		AverageAttendance: 67, // 2 of 3 present
		AverageGrade:      80, // pooled (90+80+70)/3
		TodayPresentCount: 1,
	}
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, want)}, rec)
}

func Test_reportApi_distribution(t *testing.T) {
	resetDB(t)

	emma := testutil.CreateStudent(t, studentRepo, "Emma Johnson", "emma@school.edu", 5, "A", student.StatusActive)
	liam := testutil.CreateStudent(t, studentRepo, "Liam Smith", "liam@school.edu", 5, "B", student.StatusActive)
	testutil.CreateStudent(t, studentRepo, "Noah Davis", "noah@school.edu", 6, "B", student.StatusActive) // no grades -> F

	d := testutil.Day(2024, time.September, 2)
	testutil.CreateGrade(t, gradeRepo, emma.ID, "Mathematics", 95, 100, grade.TypeTest, d) // A
	testutil.CreateGrade(t, gradeRepo, liam.ID, "Mathematics", 72, 100, grade.TypeTest, d) // C

	req, rec := newRequest(http.MethodGet, "/v1/reports/distribution")
	app.ServeHTTP(rec, req)
	want := map[string]int{"A": 1, "B": 0, "C": 1, "D": 0, "F": 1}
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, want)}, rec)
}

func Test_reportApi_attendanceBreakdown(t *testing.T) {
	resetDB(t)

	emma := testutil.CreateStudent(t, studentRepo, "Emma Johnson", "emma@school.edu", 5, "A", student.StatusActive)
	liam := testutil.CreateStudent(t, studentRepo, "Liam Smith", "liam@school.edu", 5, "B", student.StatusActive)

	d1 := testutil.Day(2024, time.September, 2)
	d2 := testutil.Day(2024, time.September, 3)
	testutil.CreateRecord(t, attendanceRepo, emma.ID, d1, attendance.StatusPresent)
	testutil.CreateRecord(t, attendanceRepo, liam.ID, d1, attendance.StatusLate)
	testutil.CreateRecord(t, attendanceRepo, emma.ID, d2, attendance.StatusPresent)
	testutil.CreateRecord(t, attendanceRepo, liam.ID, d2, attendance.StatusAbsent, "sick")

	tests := []httpTest{
		{name: "all days", path: "/v1/reports/attendance", wantData: marchallObj(t, report.Breakdown{Present: 50, Absent: 25, Late: 25})},
		{name: "one day", path: "/v1/reports/attendance?date=2024-09-03", wantData: marchallObj(t, report.Breakdown{Present: 50, Absent: 50})},
		{name: "no records", path: "/v1/reports/attendance?date=2024-12-25", wantData: marchallObj(t, report.Breakdown{})},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		tt.wantCode = http.StatusOK

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_reportApi_studentsAndExport(t *testing.T) {
	resetDB(t)

	emma := testutil.CreateStudent(t, studentRepo, "Emma Johnson", "emma@school.edu", 5, "A", student.StatusActive)

	d := testutil.Day(2024, time.September, 2)
	testutil.CreateGrade(t, gradeRepo, emma.ID, "Mathematics", 45, 50, grade.TypeTest, d)
	testutil.CreateGrade(t, gradeRepo, emma.ID, "Science", 80, 100, grade.TypeQuiz, d)
	testutil.CreateRecord(t, attendanceRepo, emma.ID, d, attendance.StatusPresent)
	testutil.CreateRecord(t, attendanceRepo, emma.ID, d.AddDate(0, 0, 1), attendance.StatusAbsent)

	// rows
	req, rec := newRequest(http.MethodGet, "/v1/reports/students")
	app.ServeHTTP(rec, req)
	wantRows := []report.StudentRow{{Name: "Emma Johnson", GradeLevel: 5, GradeAverage: 85, AttendanceRate: 50}}
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, wantRows)}, rec)

	// csv export (default format)
	req, rec = newRequest(http.MethodGet, "/v1/reports/export")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("export failed! code = %v; body %s", rec.Code, rec.Body.String())
	}
	if disp := rec.Header().Get("Content-Disposition"); !strings.Contains(disp, ".csv") {
		t.Errorf("Content-Disposition = %q; want a .csv attachment", disp)
	}
	wantCSV := "Name,Grade,Average,Attendance\nEmma Johnson,5,85%,50%\n"
	if got := rec.Body.String(); got != wantCSV {
		t.Errorf("csv = %q; want %q", got, wantCSV)
	}

	// xlsx export
	req, rec = newRequest(http.MethodGet, "/v1/reports/export?format=xlsx")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("export failed! code = %v; body %s", rec.Code, rec.Body.String())
	}
	if rec.Body.Len() == 0 {
		t.Error("empty xlsx body")
	}

	// unknown format
	req, rec = newRequest(http.MethodGet, "/v1/reports/export?format=pdf")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusBadRequest)
	}
}
