package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/grade"
)

type gradeApi struct {
	svc      grade.Service
	validate *validator.Validate
}

func registerGradeAPI(g *echo.Group, svc grade.Service, validate *validator.Validate) {
	api := gradeApi{
		svc:      svc,
		validate: validate,
	}

	gg := g.Group("/grades")
	gg.GET("", api.query)
	gg.POST("", api.create)
	gg.GET("/:id", api.retrieve)
	gg.PUT("/:id", api.update)
	gg.DELETE("/:id", api.destroy)
}

// Handlers

func (api *gradeApi) query(ctx echo.Context) error {
	var (
		grades []grade.Grade
		err    error
	)
	switch {
	case ctx.QueryParam("student_id") != "":
		var studentID int
		if studentID, err = strconv.Atoi(ctx.QueryParam("student_id")); err != nil {
			return ctx.JSON(http.StatusOK, []grade.Grade{})
		}
		grades, err = api.svc.GetByStudentID(studentID)
	case ctx.QueryParam("subject") != "":
		grades, err = api.svc.GetBySubject(ctx.QueryParam("subject"))
	default:
		grades, err = api.svc.QueryAll()
	}
	if err != nil {
		return errors.Wrap(err, "querying grades")
	}
	if grades == nil {
		grades = []grade.Grade{}
	}
	return ctx.JSON(http.StatusOK, grades)
}

func (api *gradeApi) create(ctx echo.Context) error {
	var data grade.NewGrade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewGrade")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	g, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating grade")
	}
	return ctx.JSON(http.StatusCreated, g)
}

func (api *gradeApi) retrieve(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	g, err := api.svc.GetByID(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, g)
}

func (api *gradeApi) update(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	var data grade.UpdateGrade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateGrade")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	g, err := api.svc.Update(id, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, g)
}

func (api *gradeApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.Delete(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
