package student

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
)

// Statuses
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Sections
var Sections = []string{"A", "B", "C", "D"}

type Student struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	GradeLevel     int       `json:"grade_level"`
	Section        string    `json:"section"`
	EnrollmentDate time.Time `json:"enrollment_date"` // UTC, day precision
	Status         string    `json:"status"`
}

func (s *Student) IsActive() bool {
	return s.Status == StatusActive
}

// NewStudent contains information needed to enroll a new Student.
type NewStudent struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	GradeLevel     int    `json:"grade_level" validate:"required,min=1,max=12"`
	Section        string `json:"section" validate:"required,oneof=A B C D"`
	EnrollmentDate string `json:"enrollment_date" validate:"omitempty,datetime=2006-01-02"`
	Status         string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Phone = core.CleanString(ns.Phone)
	ns.Section = core.CleanString(ns.Section)
	return validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an existing
// Student. Empty/nil fields are left untouched.
type UpdateStudent struct {
	Name           string `json:"name"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	GradeLevel     *int   `json:"grade_level" validate:"omitempty,min=1,max=12"`
	Section        string `json:"section" validate:"omitempty,oneof=A B C D"`
	EnrollmentDate string `json:"enrollment_date" validate:"omitempty,datetime=2006-01-02"`
	Status         string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (us *UpdateStudent) Validate(validate *validator.Validate) error {
	us.Name = core.CleanString(us.Name)
	us.Email = core.CleanString(us.Email, true /* lower */)
	us.Phone = core.CleanString(us.Phone)
	us.Section = core.CleanString(us.Section)
	return validate.Struct(us)
}

// QueryFilter narrows a Student snapshot. All set clauses must pass;
// "all" (or empty) disables a clause.
type QueryFilter struct {
	Search     string `query:"search"`
	GradeLevel string `query:"grade_level"`
	Status     string `query:"status"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.GradeLevel = core.CleanString(qf.GradeLevel, true /* lower */)
	qf.Status = core.CleanString(qf.Status, true /* lower */)
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" &&
		(qf.GradeLevel == "" || qf.GradeLevel == "all") &&
		(qf.Status == "" || qf.Status == "all")
}

// Match reports whether `s` passes every set clause.
// Search does a case-insensitive match on one of Student.Name or Student.Email.
func (qf *QueryFilter) Match(s Student) bool {
	if qf.Search != "" {
		kw := strings.ToLower(qf.Search)
		if !strings.Contains(strings.ToLower(s.Name), kw) &&
			!strings.Contains(strings.ToLower(s.Email), kw) {
			return false
		}
	}
	if qf.GradeLevel != "" && qf.GradeLevel != "all" {
		level, err := strconv.Atoi(qf.GradeLevel)
		if err != nil || s.GradeLevel != level {
			return false
		}
	}
	if qf.Status != "" && qf.Status != "all" {
		if s.Status != qf.Status {
			return false
		}
	}
	return true
}

// sortFieldAliases maps the caller-facing sort-field surface (incl. the legacy
// camelCase spellings) to canonical Student attributes.
var sortFieldAliases = map[string]string{
	"id":              "id",
	"name":            "name",
	"email":           "email",
	"phone":           "phone",
	"grade_level":     "grade_level",
	"gradeLevel":      "grade_level",
	"section":         "section",
	"enrollment_date": "enrollment_date",
	"enrollmentDate":  "enrollment_date",
	"status":          "status",
}

// Sort orders `students` in place by the given orderings, stable across ties.
// Unknown fields are ignored.
func Sort(students []Student, orderings []core.Ordering) {
	if len(orderings) == 0 {
		return
	}
	sort.SliceStable(students, func(i, j int) bool {
		for _, ord := range orderings {
			c := compare(students[i], students[j], sortFieldAliases[ord.Field])
			if c == 0 {
				continue
			}
			if ord.Ascending {
				return c < 0
			}
			return c > 0
		}
		return false
	})
}

func compare(a, b Student, field string) int {
	switch field {
	case "id":
		return compareInt(a.ID, b.ID)
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "email":
		return strings.Compare(a.Email, b.Email)
	case "phone":
		return strings.Compare(a.Phone, b.Phone)
	case "grade_level":
		return compareInt(a.GradeLevel, b.GradeLevel)
	case "section":
		return strings.Compare(a.Section, b.Section)
	case "enrollment_date":
		switch {
		case a.EnrollmentDate.Before(b.EnrollmentDate):
			return -1
		case a.EnrollmentDate.After(b.EnrollmentDate):
			return 1
		}
		return 0
	case "status":
		return strings.Compare(a.Status, b.Status)
	}
	return 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
