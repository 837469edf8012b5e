package attendance

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("attendance record not found")

var nowFunc = time.Now // mockable

type (
	Repository interface {
		QueryAllRecords() ([]Record, error)
		GetRecordByID(id int) (Record, error)
		GetRecordsByStudentID(studentID int) ([]Record, error)
		GetRecordsByDate(day time.Time) ([]Record, error)
		// GetRecordByDay looks a record up by its natural (student, day) key.
		GetRecordByDay(studentID int, day time.Time) (Record, error)
		// UpsertRecord creates or updates the record keyed by (StudentID, Date)
		// as one atomic store operation.
		UpsertRecord(rec Record) (Record, error)
		DeleteRecord(id int) error
	}

	Service interface {
		QueryAll() ([]Record, error)
		GetByStudentID(studentID int) ([]Record, error)
		GetByDate(date time.Time) ([]Record, error)
		// Reconcile upserts the record for (studentID, date): an existing
		// record's status and reason are replaced, otherwise a new record is
		// created. Idempotent with respect to the (student, day) key.
		Reconcile(studentID int, date time.Time, status Status, reason string) (Record, error)
		// Toggle advances the (studentID, date) cell to the next status in the
		// cycle. Days after the current date are not editable: the call leaves
		// the collection untouched and returns the existing record, if any.
		Toggle(studentID int, date time.Time) (Record, error)
		Delete(id int) error
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) QueryAll() ([]Record, error) {
	return svc.repo.QueryAllRecords()
}

func (svc *service) GetByStudentID(studentID int) ([]Record, error) {
	return svc.repo.GetRecordsByStudentID(studentID)
}

func (svc *service) GetByDate(date time.Time) ([]Record, error) {
	return svc.repo.GetRecordsByDate(DayOf(date))
}

func (svc *service) Reconcile(studentID int, date time.Time, status Status, reason string) (Record, error) {
	return svc.repo.UpsertRecord(Record{
		StudentID: studentID,
		Date:      DayOf(date),
		Status:    status,
		Reason:    reason,
	})
}

func (svc *service) Toggle(studentID int, date time.Time) (Record, error) {
	day := DayOf(date)

	if day.After(DayOf(nowFunc())) {
		// future days are inert
		rec, err := svc.repo.GetRecordByDay(studentID, day)
		if errors.Is(err, ErrNotFound) {
			return Record{}, nil
		}
		return rec, err
	}

	var current Status
	if rec, err := svc.repo.GetRecordByDay(studentID, day); err == nil {
		current = rec.Status
	} else if !errors.Is(err, ErrNotFound) {
		return Record{}, err
	}
	return svc.repo.UpsertRecord(Record{
		StudentID: studentID,
		Date:      day,
		Status:    current.Next(),
	})
}

func (svc *service) Delete(id int) error {
	return svc.repo.DeleteRecord(id)
}
