package inmemdb

import (
	"sort"

	"github.com/trezcool/shule/core/class"
)

type classRepository struct {
	db *DB
}

var _ class.Repository = (*classRepository)(nil) // interface compliance check

func NewClassRepository(db *DB) class.Repository {
	return &classRepository{db: db}
}

func (repo *classRepository) query() []class.Class {
	tbl := repo.db.class
	classes := make([]class.Class, 0, len(tbl.table))
	for _, cls := range tbl.table {
		classes = append(classes, *cls)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].ID < classes[j].ID })
	return classes
}

func (repo *classRepository) CreateClass(cls class.Class) (class.Class, error) {
	repo.db.lag()
	tbl := repo.db.class
	tbl.Lock()
	defer tbl.Unlock()

	cls.ID = nextID(tbl.table)
	tbl.table[cls.ID] = &cls
	return cls, nil
}

func (repo *classRepository) QueryAllClasses() ([]class.Class, error) {
	repo.db.lag()
	tbl := repo.db.class
	tbl.RLock()
	defer tbl.RUnlock()
	return repo.query(), nil
}

func (repo *classRepository) GetClassByID(id int) (class.Class, error) {
	repo.db.lag()
	tbl := repo.db.class
	tbl.RLock()
	defer tbl.RUnlock()

	if cls, ok := tbl.table[id]; ok {
		return *cls, nil
	}
	return class.Class{}, class.ErrNotFound
}

func (repo *classRepository) GetClassesByGradeLevel(level int) ([]class.Class, error) {
	repo.db.lag()
	tbl := repo.db.class
	tbl.RLock()
	defer tbl.RUnlock()

	var classes []class.Class
	for _, cls := range repo.query() {
		if cls.GradeLevel == level {
			classes = append(classes, cls)
		}
	}
	return classes, nil
}

func (repo *classRepository) UpdateClass(id int, up class.UpdateClass) (class.Class, error) {
	repo.db.lag()
	tbl := repo.db.class
	tbl.Lock()
	defer tbl.Unlock()

	// only save set fields
	orig, ok := tbl.table[id]
	if !ok {
		return class.Class{}, class.ErrNotFound
	}
	if up.Name != "" {
		orig.Name = up.Name
	}
	if up.GradeLevel != nil {
		orig.GradeLevel = *up.GradeLevel
	}
	if up.Section != "" {
		orig.Section = up.Section
	}
	if up.Capacity != nil {
		orig.Capacity = *up.Capacity
	}
	if up.TeacherID != nil {
		orig.TeacherID = *up.TeacherID
	}
	return *orig, nil
}

func (repo *classRepository) DeleteClass(id int) error {
	repo.db.lag()
	tbl := repo.db.class
	tbl.Lock()
	defer tbl.Unlock()

	if _, ok := tbl.table[id]; !ok {
		return class.ErrNotFound
	}
	delete(tbl.table, id)
	return nil
}
