package grade

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
)

// Subjects
var Subjects = []string{"Mathematics", "Science", "English", "History", "Geography", "Art"}

// Grade types
const (
	TypeTest       = "test"
	TypeQuiz       = "quiz"
	TypeAssignment = "assignment"
	TypeProject    = "project"
	TypeExam       = "exam"
)

// Grade is a scored assessment owned by a student. The percentage is never
// stored; it is recomputed from Score and MaxScore on every read.
type Grade struct {
	ID        int       `json:"id"`
	StudentID int       `json:"student_id"`
	Subject   string    `json:"subject"`
	Score     float64   `json:"score"`
	MaxScore  float64   `json:"max_score"`
	GradeType string    `json:"grade_type"`
	Semester  string    `json:"semester"`
	Date      time.Time `json:"date"` // UTC, day precision
}

// Percent returns the grade as a percentage of its max score.
// A zero max score yields 0, never a division failure.
func (g *Grade) Percent() float64 {
	if g.MaxScore == 0 {
		return 0
	}
	return g.Score / g.MaxScore * 100
}

// NewGrade contains information needed to record a new Grade.
type NewGrade struct {
	StudentID int     `json:"student_id" validate:"required,min=1"`
	Subject   string  `json:"subject" validate:"required,oneof=Mathematics Science English History Geography Art"`
	Score     float64 `json:"score" validate:"min=0"`
	MaxScore  float64 `json:"max_score" validate:"required,gt=0"`
	GradeType string  `json:"grade_type" validate:"required,oneof=test quiz assignment project exam"`
	Semester  string  `json:"semester" validate:"required"`
	Date      string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func (ng *NewGrade) Validate(validate *validator.Validate) error {
	ng.Subject = core.CleanString(ng.Subject)
	ng.GradeType = core.CleanString(ng.GradeType, true /* lower */)
	ng.Semester = core.CleanString(ng.Semester)
	return validate.Struct(ng)
}

// UpdateGrade defines what information may be provided to modify an existing
// Grade. Empty/nil fields are left untouched.
type UpdateGrade struct {
	StudentID *int     `json:"student_id" validate:"omitempty,min=1"`
	Subject   string   `json:"subject" validate:"omitempty,oneof=Mathematics Science English History Geography Art"`
	Score     *float64 `json:"score" validate:"omitempty,min=0"`
	MaxScore  *float64 `json:"max_score" validate:"omitempty,gt=0"`
	GradeType string   `json:"grade_type" validate:"omitempty,oneof=test quiz assignment project exam"`
	Semester  string   `json:"semester"`
	Date      string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func (ug *UpdateGrade) Validate(validate *validator.Validate) error {
	ug.Subject = core.CleanString(ug.Subject)
	ug.GradeType = core.CleanString(ug.GradeType, true /* lower */)
	ug.Semester = core.CleanString(ug.Semester)
	return validate.Struct(ug)
}
