package inmemdb

import (
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/student"
)

// Seed loads a small deterministic demo dataset through the repositories.
// It is meant for a fresh DB; calling it twice duplicates students, grades
// and classes (attendance reconciles onto itself).
func Seed(db *DB) error {
	studentRepo := NewStudentRepository(db)
	classRepo := NewClassRepository(db)
	gradeRepo := NewGradeRepository(db)
	attendanceRepo := NewAttendanceRepository(db)

	day := func(s string) time.Time {
		d, _ := time.ParseInLocation("2006-01-02", s, time.UTC)
		return d
	}

	students := []student.Student{
		{Name: "Emma Johnson", Email: "emma.johnson@shule.test", Phone: "555-0101", GradeLevel: 5, Section: "A", EnrollmentDate: day("2024-09-02"), Status: student.StatusActive},
		{Name: "Liam Okafor", Email: "liam.okafor@shule.test", Phone: "555-0102", GradeLevel: 5, Section: "A", EnrollmentDate: day("2024-09-02"), Status: student.StatusActive},
		{Name: "Amara Diallo", Email: "amara.diallo@shule.test", Phone: "555-0103", GradeLevel: 5, Section: "B", EnrollmentDate: day("2024-09-03"), Status: student.StatusActive},
		{Name: "Noah Kimani", Email: "noah.kimani@shule.test", Phone: "555-0104", GradeLevel: 6, Section: "A", EnrollmentDate: day("2024-09-02"), Status: student.StatusActive},
		{Name: "Zuri Mwangi", Email: "zuri.mwangi@shule.test", Phone: "555-0105", GradeLevel: 6, Section: "A", EnrollmentDate: day("2024-09-04"), Status: student.StatusActive},
		{Name: "Olivia Chen", Email: "olivia.chen@shule.test", Phone: "555-0106", GradeLevel: 6, Section: "B", EnrollmentDate: day("2024-09-02"), Status: student.StatusInactive},
		{Name: "Ethan Njoroge", Email: "ethan.njoroge@shule.test", Phone: "555-0107", GradeLevel: 7, Section: "C", EnrollmentDate: day("2024-09-05"), Status: student.StatusActive},
		{Name: "Ava Patel", Email: "ava.patel@shule.test", Phone: "555-0108", GradeLevel: 7, Section: "C", EnrollmentDate: day("2024-09-05"), Status: student.StatusActive},
	}
	ids := make([]int, 0, len(students))
	for _, st := range students {
		created, err := studentRepo.CreateStudent(st)
		if err != nil {
			return errors.Wrap(err, "seeding students")
		}
		ids = append(ids, created.ID)
	}

	classes := []class.Class{
		{Name: "Grade 5 Eagles", GradeLevel: 5, Section: "A", Capacity: 25, TeacherID: "T-001"},
		{Name: "Grade 5 Hawks", GradeLevel: 5, Section: "B", Capacity: 25, TeacherID: "T-002"},
		{Name: "Grade 6 Lions", GradeLevel: 6, Section: "A", Capacity: 30, TeacherID: "T-003"},
		{Name: "Grade 7 Cheetahs", GradeLevel: 7, Section: "C", Capacity: 20},
	}
	for _, cls := range classes {
		if _, err := classRepo.CreateClass(cls); err != nil {
			return errors.Wrap(err, "seeding classes")
		}
	}

	grades := []grade.Grade{
		{StudentID: ids[0], Subject: "Mathematics", Score: 45, MaxScore: 50, GradeType: grade.TypeTest, Semester: "Fall 2024", Date: day("2024-10-10")},
		{StudentID: ids[0], Subject: "Science", Score: 80, MaxScore: 100, GradeType: grade.TypeExam, Semester: "Fall 2024", Date: day("2024-12-15")},
		{StudentID: ids[1], Subject: "Mathematics", Score: 38, MaxScore: 50, GradeType: grade.TypeTest, Semester: "Fall 2024", Date: day("2024-10-10")},
		{StudentID: ids[1], Subject: "English", Score: 18, MaxScore: 20, GradeType: grade.TypeQuiz, Semester: "Fall 2024", Date: day("2024-11-05")},
		{StudentID: ids[2], Subject: "History", Score: 55, MaxScore: 100, GradeType: grade.TypeAssignment, Semester: "Fall 2024", Date: day("2024-11-20")},
		{StudentID: ids[3], Subject: "Geography", Score: 92, MaxScore: 100, GradeType: grade.TypeProject, Semester: "Fall 2024", Date: day("2024-12-01")},
		{StudentID: ids[4], Subject: "Art", Score: 28, MaxScore: 40, GradeType: grade.TypeAssignment, Semester: "Fall 2024", Date: day("2024-11-12")},
		{StudentID: ids[6], Subject: "Mathematics", Score: 61, MaxScore: 100, GradeType: grade.TypeExam, Semester: "Fall 2024", Date: day("2024-12-15")},
	}
	for _, g := range grades {
		if _, err := gradeRepo.CreateGrade(g); err != nil {
			return errors.Wrap(err, "seeding grades")
		}
	}

	marks := []attendance.Record{
		{StudentID: ids[0], Date: day("2024-11-04"), Status: attendance.StatusPresent},
		{StudentID: ids[0], Date: day("2024-11-05"), Status: attendance.StatusPresent},
		{StudentID: ids[0], Date: day("2024-11-06"), Status: attendance.StatusLate, Reason: "bus delay"},
		{StudentID: ids[1], Date: day("2024-11-04"), Status: attendance.StatusPresent},
		{StudentID: ids[1], Date: day("2024-11-05"), Status: attendance.StatusAbsent, Reason: "sick"},
		{StudentID: ids[2], Date: day("2024-11-04"), Status: attendance.StatusPresent},
		{StudentID: ids[3], Date: day("2024-11-04"), Status: attendance.StatusPresent},
		{StudentID: ids[3], Date: day("2024-11-05"), Status: attendance.StatusPresent},
		{StudentID: ids[4], Date: day("2024-11-04"), Status: attendance.StatusAbsent},
		{StudentID: ids[6], Date: day("2024-11-04"), Status: attendance.StatusPresent},
		{StudentID: ids[7], Date: day("2024-11-04"), Status: attendance.StatusLate},
	}
	for _, rec := range marks {
		if _, err := attendanceRepo.UpsertRecord(rec); err != nil {
			return errors.Wrap(err, "seeding attendance")
		}
	}
	return nil
}
