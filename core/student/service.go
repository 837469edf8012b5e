package student

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/shule/core"
)

var ErrNotFound = errors.New("student not found")

// suggestMinRatio is the minimum difflib similarity ratio for a student to be
// considered a close match of a mistyped keyword.
const suggestMinRatio = .7

var nowFunc = time.Now // mockable

type (
	Repository interface {
		CreateStudent(st Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id int) (Student, error)
		// FilterStudents applies AND operation on available QueryFilter fields.
		FilterStudents(filter QueryFilter) ([]Student, error)
		UpdateStudent(id int, up UpdateStudent) (Student, error)
		DeleteStudent(id int) error
	}

	Service interface {
		Create(ns NewStudent) (Student, error)
		QueryAll() ([]Student, error)
		GetByID(id int) (Student, error)
		GetByGradeLevel(level int) ([]Student, error)
		// Query filters and orders a snapshot for display.
		Query(filter QueryFilter, orderings ...core.Ordering) ([]Student, error)
		// Suggest returns students whose name or email closely matches a
		// possibly mistyped keyword, best matches first.
		Suggest(keyword string) ([]Student, error)
		// Roster derives a class section's enrolled list: active students whose
		// grade level and section match. It is never stored.
		Roster(gradeLevel int, section string) ([]Student, error)
		Update(id int, up UpdateStudent) (Student, error)
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

func (svc *service) Create(ns NewStudent) (Student, error) {
	st := Student{
		Name:       ns.Name,
		Email:      ns.Email,
		Phone:      ns.Phone,
		GradeLevel: ns.GradeLevel,
		Section:    ns.Section,
		Status:     ns.Status,
	}
	if st.Status == "" {
		st.Status = StatusActive
	}
	if ns.EnrollmentDate != "" {
		date, err := time.ParseInLocation("2006-01-02", ns.EnrollmentDate, time.UTC)
		if err != nil {
			return Student{}, err
		}
		st.EnrollmentDate = date
	} else {
		now := nowFunc().UTC()
		st.EnrollmentDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return svc.repo.CreateStudent(st)
}

func (svc *service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *service) GetByID(id int) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

func (svc *service) GetByGradeLevel(level int) ([]Student, error) {
	return svc.repo.FilterStudents(QueryFilter{GradeLevel: strconv.Itoa(level)})
}

func (svc *service) Query(filter QueryFilter, orderings ...core.Ordering) ([]Student, error) {
	filter.Clean()
	students, err := svc.repo.FilterStudents(filter)
	if err != nil {
		return nil, err
	}
	Sort(students, orderings)
	return students, nil
}

func (svc *service) Suggest(keyword string) ([]Student, error) {
	keyword = core.CleanString(keyword, true /* lower */)
	if keyword == "" {
		return nil, nil
	}
	students, err := svc.repo.QueryAllStudents()
	if err != nil {
		return nil, err
	}

	type ranked struct {
		st    Student
		ratio float64
	}
	var matches []ranked
	for _, st := range students {
		ratio := matchRatio(keyword, st.Name)
		if r := matchRatio(keyword, st.Email); r > ratio {
			ratio = r
		}
		if ratio >= suggestMinRatio {
			matches = append(matches, ranked{st, ratio})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].ratio > matches[j].ratio })

	suggestions := make([]Student, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, m.st)
	}
	return suggestions, nil
}

func (svc *service) Roster(gradeLevel int, section string) ([]Student, error) {
	// QueryFilter has no section clause on the caller surface; narrow here.
	students, err := svc.repo.FilterStudents(QueryFilter{
		GradeLevel: strconv.Itoa(gradeLevel),
		Status:     StatusActive,
	})
	if err != nil {
		return nil, err
	}
	var roster []Student
	for _, st := range students {
		if st.Section == section {
			roster = append(roster, st)
		}
	}
	return roster, nil
}

func (svc *service) Update(id int, up UpdateStudent) (Student, error) {
	return svc.repo.UpdateStudent(id, up)
}

func (svc *service) Delete(id int) error {
	return svc.repo.DeleteStudent(id)
}

func matchRatio(keyword, attr string) float64 {
	attr = strings.ToLower(attr)
	if strings.Contains(attr, keyword) {
		return 1
	}
	return difflib.NewMatcher(strings.Split(keyword, ""), strings.Split(attr, "")).QuickRatio()
}
