// Package inmemdb provides the canonical in-memory record stores. Each table
// owns its collection outright; readers always receive value copies, and a
// configurable simulated latency emulates remote-call round trips.
package inmemdb

import (
	"sync"
	"time"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/student"
)

type (
	DB struct {
		latency time.Duration

		student    *studentTable
		class      *classTable
		grade      *gradeTable
		attendance *attendanceTable
	}

	studentTable struct {
		sync.RWMutex
		table map[int]*student.Student
	}

	classTable struct {
		sync.RWMutex
		table map[int]*class.Class
	}

	gradeTable struct {
		sync.RWMutex
		table map[int]*grade.Grade
	}

	attendanceTable struct {
		sync.RWMutex
		table map[int]*attendance.Record
	}
)

// Open returns a fresh, empty DB. A nil conf disables the simulated latency.
func Open(conf *core.Config) (*DB, error) {
	db := &DB{
		student:    &studentTable{table: make(map[int]*student.Student)},
		class:      &classTable{table: make(map[int]*class.Class)},
		grade:      &gradeTable{table: make(map[int]*grade.Grade)},
		attendance: &attendanceTable{table: make(map[int]*attendance.Record)},
	}
	if conf != nil {
		db.latency = conf.StoreLatency
	}
	return db, nil
}

// Reset empties every table. Used by tests to isolate state.
func (db *DB) Reset() {
	db.student.Lock()
	db.student.table = make(map[int]*student.Student)
	db.student.Unlock()

	db.class.Lock()
	db.class.table = make(map[int]*class.Class)
	db.class.Unlock()

	db.grade.Lock()
	db.grade.table = make(map[int]*grade.Grade)
	db.grade.Unlock()

	db.attendance.Lock()
	db.attendance.table = make(map[int]*attendance.Record)
	db.attendance.Unlock()
}

// lag emulates the latency of a remote call. It runs before each store
// operation, outside any table lock.
func (db *DB) lag() {
	if db.latency > 0 {
		time.Sleep(db.latency)
	}
}

// nextID assigns the next surrogate id: max(existing) + 1, or 1 when the
// collection is empty. Callers must hold the table's write lock.
func nextID[T any](table map[int]*T) int {
	var max int
	for id := range table {
		if id > max {
			max = id
		}
	}
	return max + 1
}
