package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/report"
	"github.com/trezcool/shule/core/student"
)

type classApi struct {
	svc        class.Service
	studentSvc student.Service
	validate   *validator.Validate
}

func registerClassAPI(g *echo.Group, svc class.Service, studentSvc student.Service, validate *validator.Validate) {
	api := classApi{
		svc:        svc,
		studentSvc: studentSvc,
		validate:   validate,
	}

	cg := g.Group("/classes")
	cg.GET("", api.query)
	cg.POST("", api.create)
	cg.GET("/:id", api.retrieve)
	cg.PUT("/:id", api.update)
	cg.DELETE("/:id", api.destroy)
	cg.GET("/:id/roster", api.roster)
	cg.GET("/:id/occupancy", api.occupancy)
}

// Handlers

func (api *classApi) query(ctx echo.Context) error {
	var (
		classes []class.Class
		err     error
	)
	if raw := ctx.QueryParam("grade_level"); raw != "" {
		level, aerr := strconv.Atoi(raw)
		if aerr != nil {
			return ctx.JSON(http.StatusOK, []class.Class{})
		}
		classes, err = api.svc.GetByGradeLevel(level)
	} else {
		classes, err = api.svc.QueryAll()
	}
	if err != nil {
		return errors.Wrap(err, "querying classes")
	}
	if classes == nil {
		classes = []class.Class{}
	}
	return ctx.JSON(http.StatusOK, classes)
}

func (api *classApi) create(ctx echo.Context) error {
	var data class.NewClass
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewClass")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	cls, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating class")
	}
	return ctx.JSON(http.StatusCreated, cls)
}

func (api *classApi) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	cls, err := api.svc.GetByID(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cls)
}

func (api *classApi) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var data class.UpdateClass
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateClass")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	cls, err := api.svc.Update(id, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cls)
}

func (api *classApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.Delete(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// roster derives the class's enrolled list from the Student snapshot;
// it is recomputed on every call, never stored.
func (api *classApi) roster(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	cls, err := api.svc.GetByID(id)
	if err != nil {
		return err
	}
	roster, err := api.studentSvc.Roster(cls.GradeLevel, cls.Section)
	if err != nil {
		return errors.Wrap(err, "deriving class roster")
	}
	if roster == nil {
		roster = []student.Student{}
	}
	return ctx.JSON(http.StatusOK, roster)
}

func (api *classApi) occupancy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	cls, err := api.svc.GetByID(id)
	if err != nil {
		return err
	}
	students, err := api.studentSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	return ctx.JSON(http.StatusOK, report.ClassOccupancy(cls, students))
}
