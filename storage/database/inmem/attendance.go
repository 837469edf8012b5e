package inmemdb

import (
	"sort"
	"time"

	"github.com/trezcool/shule/core/attendance"
)

type attendanceRepository struct {
	db *DB
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (repo *attendanceRepository) query() []attendance.Record {
	tbl := repo.db.attendance
	records := make([]attendance.Record, 0, len(tbl.table))
	for _, rec := range tbl.table {
		records = append(records, *rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records
}

func (repo *attendanceRepository) QueryAllRecords() ([]attendance.Record, error) {
	repo.db.lag()
	tbl := repo.db.attendance
	tbl.RLock()
	defer tbl.RUnlock()
	return repo.query(), nil
}

func (repo *attendanceRepository) GetRecordByID(id int) (attendance.Record, error) {
	repo.db.lag()
	tbl := repo.db.attendance
	tbl.RLock()
	defer tbl.RUnlock()

	if rec, ok := tbl.table[id]; ok {
		return *rec, nil
	}
	return attendance.Record{}, attendance.ErrNotFound
}

func (repo *attendanceRepository) GetRecordsByStudentID(studentID int) ([]attendance.Record, error) {
	repo.db.lag()
	tbl := repo.db.attendance
	tbl.RLock()
	defer tbl.RUnlock()

	var records []attendance.Record
	for _, rec := range repo.query() {
		if rec.StudentID == studentID {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (repo *attendanceRepository) GetRecordsByDate(day time.Time) ([]attendance.Record, error) {
	repo.db.lag()
	tbl := repo.db.attendance
	tbl.RLock()
	defer tbl.RUnlock()

	day = attendance.DayOf(day)
	var records []attendance.Record
	for _, rec := range repo.query() {
		if attendance.DayOf(rec.Date).Equal(day) {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (repo *attendanceRepository) GetRecordByDay(studentID int, day time.Time) (attendance.Record, error) {
	repo.db.lag()
	tbl := repo.db.attendance
	tbl.RLock()
	defer tbl.RUnlock()

	if rec := findByDay(tbl.table, studentID, attendance.DayOf(day)); rec != nil {
		return *rec, nil
	}
	return attendance.Record{}, attendance.ErrNotFound
}

// UpsertRecord creates or updates the record keyed by (StudentID, Date) under
// a single write lock, so overlapping reconciliations for one key cannot both
// observe "not found" and insert duplicates.
func (repo *attendanceRepository) UpsertRecord(rec attendance.Record) (attendance.Record, error) {
	repo.db.lag()
	tbl := repo.db.attendance
	tbl.Lock()
	defer tbl.Unlock()

	rec.Date = attendance.DayOf(rec.Date)
	if orig := findByDay(tbl.table, rec.StudentID, rec.Date); orig != nil {
		orig.Status = rec.Status
		orig.Reason = rec.Reason
		return *orig, nil
	}
	rec.ID = nextID(tbl.table)
	tbl.table[rec.ID] = &rec
	return rec, nil
}

func (repo *attendanceRepository) DeleteRecord(id int) error {
	repo.db.lag()
	tbl := repo.db.attendance
	tbl.Lock()
	defer tbl.Unlock()

	if _, ok := tbl.table[id]; !ok {
		return attendance.ErrNotFound
	}
	delete(tbl.table, id)
	return nil
}

// findByDay scans for the record with the given natural (student, day) key.
// Callers must hold at least a read lock; `day` must already be normalized.
func findByDay(table map[int]*attendance.Record, studentID int, day time.Time) *attendance.Record {
	for _, rec := range table {
		if rec.StudentID == studentID && attendance.DayOf(rec.Date).Equal(day) {
			return rec
		}
	}
	return nil
}
