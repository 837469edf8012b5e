package attendance

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
)

// Status is a daily presence mark.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	}
	return false
}

// Next returns the status following `s` in the operator toggle cycle:
// present -> absent -> late -> present. A cell with no record yet ("" or any
// unknown value) enters the cycle at present.
func (s Status) Next() Status {
	switch s {
	case StatusPresent:
		return StatusAbsent
	case StatusAbsent:
		return StatusLate
	default:
		return StatusPresent
	}
}

// Record is a daily presence mark owned by a student. At most one Record may
// exist per (student, calendar day) pair; the service's Reconcile is the sole
// authority enforcing this.
type Record struct {
	ID        int       `json:"id"`
	StudentID int       `json:"student_id"`
	Date      time.Time `json:"date"` // UTC, day precision
	Status    Status    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
}

// DayOf normalizes `t` to its calendar-day key: UTC midnight.
// Time-of-day is not significant for record identity.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ReconcileRequest carries an operator's "marked day D for student S as status X" intent.
type ReconcileRequest struct {
	StudentID int    `json:"student_id" validate:"required,min=1"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Status    Status `json:"status" validate:"required,oneof=present absent late"`
	Reason    string `json:"reason"`
}

func (rr *ReconcileRequest) Validate(validate *validator.Validate) error {
	rr.Reason = core.CleanString(rr.Reason)
	return validate.Struct(rr)
}

// ToggleRequest advances a (student, day) cell to the next status in the cycle.
type ToggleRequest struct {
	StudentID int    `json:"student_id" validate:"required,min=1"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
}

func (tr *ToggleRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(tr)
}
