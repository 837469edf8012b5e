package testutil

import (
	"testing"
	"time"

	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/student"
)

// Day returns a UTC calendar-day timestamp.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func CreateStudent(
	t *testing.T,
	repo student.Repository,
	name, email string,
	gradeLevel int,
	section, status string,
	enrolled ...time.Time,
) student.Student {
	t.Helper()

	date := Day(2024, time.September, 1)
	if len(enrolled) > 0 {
		date = enrolled[0].UTC()
	}
	st, err := repo.CreateStudent(student.Student{
		Name:           name,
		Email:          email,
		GradeLevel:     gradeLevel,
		Section:        section,
		EnrollmentDate: date,
		Status:         status,
	})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return st
}

func CreateClass(
	t *testing.T,
	repo class.Repository,
	name string,
	gradeLevel int,
	section string,
	capacity int,
) class.Class {
	t.Helper()

	cls, err := repo.CreateClass(class.Class{
		Name:       name,
		GradeLevel: gradeLevel,
		Section:    section,
		Capacity:   capacity,
	})
	if err != nil {
		t.Fatalf("CreateClass() failed: %v", err)
	}
	return cls
}

func CreateGrade(
	t *testing.T,
	repo grade.Repository,
	studentID int,
	subject string,
	score, maxScore float64,
	gradeType string,
	date time.Time,
) grade.Grade {
	t.Helper()

	g, err := repo.CreateGrade(grade.Grade{
		StudentID: studentID,
		Subject:   subject,
		Score:     score,
		MaxScore:  maxScore,
		GradeType: gradeType,
		Semester:  "Fall 2024",
		Date:      date,
	})
	if err != nil {
		t.Fatalf("CreateGrade() failed: %v", err)
	}
	return g
}

func CreateRecord(
	t *testing.T,
	repo attendance.Repository,
	studentID int,
	date time.Time,
	status attendance.Status,
	reason ...string,
) attendance.Record {
	t.Helper()

	rec := attendance.Record{
		StudentID: studentID,
		Date:      attendance.DayOf(date),
		Status:    status,
	}
	if len(reason) > 0 {
		rec.Reason = reason[0]
	}
	rec, err := repo.UpsertRecord(rec)
	if err != nil {
		t.Fatalf("CreateRecord() failed: %v", err)
	}
	return rec
}
