package inmemdb

import (
	"sort"
	"time"

	"github.com/trezcool/shule/core/student"
)

type studentRepository struct {
	db *DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

// query snapshots the table as independent copies, in insertion (id) order.
// Callers must hold at least a read lock.
func (repo *studentRepository) query() []student.Student {
	tbl := repo.db.student
	students := make([]student.Student, 0, len(tbl.table))
	for _, st := range tbl.table {
		students = append(students, *st)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students
}

func (repo *studentRepository) CreateStudent(st student.Student) (student.Student, error) {
	repo.db.lag()
	tbl := repo.db.student
	tbl.Lock()
	defer tbl.Unlock()

	st.ID = nextID(tbl.table)
	tbl.table[st.ID] = &st
	return st, nil
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	repo.db.lag()
	tbl := repo.db.student
	tbl.RLock()
	defer tbl.RUnlock()
	return repo.query(), nil
}

func (repo *studentRepository) GetStudentByID(id int) (student.Student, error) {
	repo.db.lag()
	tbl := repo.db.student
	tbl.RLock()
	defer tbl.RUnlock()

	if st, ok := tbl.table[id]; ok {
		return *st, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) FilterStudents(filter student.QueryFilter) ([]student.Student, error) {
	repo.db.lag()
	tbl := repo.db.student
	tbl.RLock()
	defer tbl.RUnlock()

	var students []student.Student
	for _, st := range repo.query() {
		if filter.Match(st) {
			students = append(students, st)
		}
	}
	return students, nil
}

func (repo *studentRepository) UpdateStudent(id int, up student.UpdateStudent) (student.Student, error) {
	repo.db.lag()
	tbl := repo.db.student
	tbl.Lock()
	defer tbl.Unlock()

	// only save set fields
	orig, ok := tbl.table[id]
	if !ok {
		return student.Student{}, student.ErrNotFound
	}
	if up.Name != "" {
		orig.Name = up.Name
	}
	if up.Email != "" {
		orig.Email = up.Email
	}
	if up.Phone != "" {
		orig.Phone = up.Phone
	}
	if up.GradeLevel != nil {
		orig.GradeLevel = *up.GradeLevel
	}
	if up.Section != "" {
		orig.Section = up.Section
	}
	if up.EnrollmentDate != "" {
		date, err := time.ParseInLocation("2006-01-02", up.EnrollmentDate, time.UTC)
		if err != nil {
			return student.Student{}, err
		}
		orig.EnrollmentDate = date
	}
	if up.Status != "" {
		orig.Status = up.Status
	}
	return *orig, nil
}

func (repo *studentRepository) DeleteStudent(id int) error {
	repo.db.lag()
	tbl := repo.db.student
	tbl.Lock()
	defer tbl.Unlock()

	if _, ok := tbl.table[id]; !ok {
		return student.ErrNotFound
	}
	delete(tbl.table, id)
	return nil
}
