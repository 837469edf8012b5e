package grade

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("grade not found")

var nowFunc = time.Now // mockable

type (
	Repository interface {
		CreateGrade(g Grade) (Grade, error)
		QueryAllGrades() ([]Grade, error)
		GetGradeByID(id int) (Grade, error)
		GetGradesByStudentID(studentID int) ([]Grade, error)
		GetGradesBySubject(subject string) ([]Grade, error)
		UpdateGrade(id int, up UpdateGrade) (Grade, error)
		DeleteGrade(id int) error
	}

	Service interface {
		Create(ng NewGrade) (Grade, error)
		QueryAll() ([]Grade, error)
		GetByID(id int) (Grade, error)
		GetByStudentID(studentID int) ([]Grade, error)
		GetBySubject(subject string) ([]Grade, error)
		Update(id int, up UpdateGrade) (Grade, error)
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

func (svc *service) Create(ng NewGrade) (Grade, error) {
	g := Grade{
		StudentID: ng.StudentID,
		Subject:   ng.Subject,
		Score:     ng.Score,
		MaxScore:  ng.MaxScore,
		GradeType: ng.GradeType,
		Semester:  ng.Semester,
	}
	if ng.Date != "" {
		date, err := time.ParseInLocation("2006-01-02", ng.Date, time.UTC)
		if err != nil {
			return Grade{}, err
		}
		g.Date = date
	} else {
		now := nowFunc().UTC()
		g.Date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return svc.repo.CreateGrade(g)
}

func (svc *service) QueryAll() ([]Grade, error) {
	return svc.repo.QueryAllGrades()
}

func (svc *service) GetByID(id int) (Grade, error) {
	return svc.repo.GetGradeByID(id)
}

func (svc *service) GetByStudentID(studentID int) ([]Grade, error) {
	return svc.repo.GetGradesByStudentID(studentID)
}

func (svc *service) GetBySubject(subject string) ([]Grade, error) {
	return svc.repo.GetGradesBySubject(subject)
}

func (svc *service) Update(id int, up UpdateGrade) (Grade, error) {
	return svc.repo.UpdateGrade(id, up)
}

func (svc *service) Delete(id int) error {
	return svc.repo.DeleteGrade(id)
}
