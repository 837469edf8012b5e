package class

import "errors"

var ErrNotFound = errors.New("class not found")

type (
	Repository interface {
		CreateClass(cls Class) (Class, error)
		QueryAllClasses() ([]Class, error)
		GetClassByID(id int) (Class, error)
		GetClassesByGradeLevel(level int) ([]Class, error)
		UpdateClass(id int, up UpdateClass) (Class, error)
		DeleteClass(id int) error
	}

	Service interface {
		Create(nc NewClass) (Class, error)
		QueryAll() ([]Class, error)
		GetByID(id int) (Class, error)
		GetByGradeLevel(level int) ([]Class, error)
		Update(id int, up UpdateClass) (Class, error)
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

func (svc *service) Create(nc NewClass) (Class, error) {
	cls := Class{
		Name:       nc.Name,
		GradeLevel: nc.GradeLevel,
		Section:    nc.Section,
		Capacity:   nc.Capacity,
		TeacherID:  nc.TeacherID,
	}
	return svc.repo.CreateClass(cls)
}

func (svc *service) QueryAll() ([]Class, error) {
	return svc.repo.QueryAllClasses()
}

func (svc *service) GetByID(id int) (Class, error) {
	return svc.repo.GetClassByID(id)
}

func (svc *service) GetByGradeLevel(level int) ([]Class, error) {
	return svc.repo.GetClassesByGradeLevel(level)
}

func (svc *service) Update(id int, up UpdateClass) (Class, error) {
	return svc.repo.UpdateClass(id, up)
}

func (svc *service) Delete(id int) error {
	return svc.repo.DeleteClass(id)
}
