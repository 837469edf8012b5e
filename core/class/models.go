package class

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/shule/core"
)

// Class is an organizational grouping of students sharing a grade level and a
// section label. Its occupancy is never stored; it is derived from the Student
// snapshot on every read.
type Class struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	GradeLevel int    `json:"grade_level"`
	Section    string `json:"section"`
	Capacity   int    `json:"capacity"`
	TeacherID  string `json:"teacher_id"` // free-form identifier, optionally absent
}

// NewClass contains information needed to create a new Class.
type NewClass struct {
	Name       string `json:"name" validate:"required"`
	GradeLevel int    `json:"grade_level" validate:"required,min=1,max=12"`
	Section    string `json:"section" validate:"required,oneof=A B C D"`
	Capacity   int    `json:"capacity" validate:"required,min=1"`
	TeacherID  string `json:"teacher_id"`
}

func (nc *NewClass) Validate(validate *validator.Validate) error {
	nc.Name = core.CleanString(nc.Name)
	nc.Section = core.CleanString(nc.Section)
	nc.TeacherID = core.CleanString(nc.TeacherID)
	return validate.Struct(nc)
}

// UpdateClass defines what information may be provided to modify an existing
// Class. Empty/nil fields are left untouched.
type UpdateClass struct {
	Name       string  `json:"name"`
	GradeLevel *int    `json:"grade_level" validate:"omitempty,min=1,max=12"`
	Section    string  `json:"section" validate:"omitempty,oneof=A B C D"`
	Capacity   *int    `json:"capacity" validate:"omitempty,min=1"`
	TeacherID  *string `json:"teacher_id"`
}

func (uc *UpdateClass) Validate(validate *validator.Validate) error {
	uc.Name = core.CleanString(uc.Name)
	uc.Section = core.CleanString(uc.Section)
	return validate.Struct(uc)
}
