package inmemdb

import (
	"sort"
	"time"

	"github.com/trezcool/shule/core/grade"
)

type gradeRepository struct {
	db *DB
}

var _ grade.Repository = (*gradeRepository)(nil) // interface compliance check

func NewGradeRepository(db *DB) grade.Repository {
	return &gradeRepository{db: db}
}

func (repo *gradeRepository) query() []grade.Grade {
	tbl := repo.db.grade
	grades := make([]grade.Grade, 0, len(tbl.table))
	for _, g := range tbl.table {
		grades = append(grades, *g)
	}
	sort.Slice(grades, func(i, j int) bool { return grades[i].ID < grades[j].ID })
	return grades
}

func (repo *gradeRepository) CreateGrade(g grade.Grade) (grade.Grade, error) {
	repo.db.lag()
	tbl := repo.db.grade
	tbl.Lock()
	defer tbl.Unlock()

	g.ID = nextID(tbl.table)
	tbl.table[g.ID] = &g
	return g, nil
}

func (repo *gradeRepository) QueryAllGrades() ([]grade.Grade, error) {
	repo.db.lag()
	tbl := repo.db.grade
	tbl.RLock()
	defer tbl.RUnlock()
	return repo.query(), nil
}

func (repo *gradeRepository) GetGradeByID(id int) (grade.Grade, error) {
	repo.db.lag()
	tbl := repo.db.grade
	tbl.RLock()
	defer tbl.RUnlock()

	if g, ok := tbl.table[id]; ok {
		return *g, nil
	}
	return grade.Grade{}, grade.ErrNotFound
}

func (repo *gradeRepository) GetGradesByStudentID(studentID int) ([]grade.Grade, error) {
	repo.db.lag()
	tbl := repo.db.grade
	tbl.RLock()
	defer tbl.RUnlock()

	var grades []grade.Grade
	for _, g := range repo.query() {
		if g.StudentID == studentID {
			grades = append(grades, g)
		}
	}
	return grades, nil
}

func (repo *gradeRepository) GetGradesBySubject(subject string) ([]grade.Grade, error) {
	repo.db.lag()
	tbl := repo.db.grade
	tbl.RLock()
	defer tbl.RUnlock()

	var grades []grade.Grade
	for _, g := range repo.query() {
		if g.Subject == subject {
			grades = append(grades, g)
		}
	}
	return grades, nil
}

func (repo *gradeRepository) UpdateGrade(id int, up grade.UpdateGrade) (grade.Grade, error) {
	repo.db.lag()
	tbl := repo.db.grade
	tbl.Lock()
	defer tbl.Unlock()

	// only save set fields
	orig, ok := tbl.table[id]
	if !ok {
		return grade.Grade{}, grade.ErrNotFound
	}
	if up.StudentID != nil {
		orig.StudentID = *up.StudentID
	}
	if up.Subject != "" {
		orig.Subject = up.Subject
	}
	if up.Score != nil {
		orig.Score = *up.Score
	}
	if up.MaxScore != nil {
		orig.MaxScore = *up.MaxScore
	}
	if up.GradeType != "" {
		orig.GradeType = up.GradeType
	}
	if up.Semester != "" {
		orig.Semester = up.Semester
	}
	if up.Date != "" {
		date, err := time.ParseInLocation("2006-01-02", up.Date, time.UTC)
		if err != nil {
			return grade.Grade{}, err
		}
		orig.Date = date
	}
	return *orig, nil
}

func (repo *gradeRepository) DeleteGrade(id int) error {
	repo.db.lag()
	tbl := repo.db.grade
	tbl.Lock()
	defer tbl.Unlock()

	if _, ok := tbl.table[id]; !ok {
		return grade.ErrNotFound
	}
	delete(tbl.table, id)
	return nil
}
