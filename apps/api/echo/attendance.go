package echoapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/attendance"
)

type attendanceApi struct {
	svc      attendance.Service
	validate *validator.Validate
}

func registerAttendanceAPI(g *echo.Group, svc attendance.Service, validate *validator.Validate) {
	api := attendanceApi{
		svc:      svc,
		validate: validate,
	}

	ag := g.Group("/attendance")
	ag.GET("", api.query)
	ag.POST("/reconcile", api.reconcile)
	ag.POST("/toggle", api.toggle)
	ag.DELETE("/:id", api.destroy)
}

// Handlers

func (api *attendanceApi) query(ctx echo.Context) error {
	var (
		records []attendance.Record
		err     error
	)
	switch {
	case ctx.QueryParam("student_id") != "":
		var studentID int
		if studentID, err = strconv.Atoi(ctx.QueryParam("student_id")); err != nil {
			return ctx.JSON(http.StatusOK, []attendance.Record{})
		}
		records, err = api.svc.GetByStudentID(studentID)
	case ctx.QueryParam("date") != "":
		var date time.Time
		if date, err = time.ParseInLocation("2006-01-02", ctx.QueryParam("date"), time.UTC); err != nil {
			return ctx.JSON(http.StatusOK, []attendance.Record{})
		}
		records, err = api.svc.GetByDate(date)
	default:
		records, err = api.svc.QueryAll()
	}
	if err != nil {
		return errors.Wrap(err, "querying attendance")
	}
	if records == nil {
		records = []attendance.Record{}
	}
	return ctx.JSON(http.StatusOK, records)
}

func (api *attendanceApi) reconcile(ctx echo.Context) error {
	var data attendance.ReconcileRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ReconcileRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	date, err := time.ParseInLocation("2006-01-02", data.Date, time.UTC)
	if err != nil {
		return errors.Wrap(err, "parsing reconcile date")
	}
	rec, err := api.svc.Reconcile(data.StudentID, date, data.Status, data.Reason)
	if err != nil {
		return errors.Wrap(err, "reconciling attendance")
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *attendanceApi) toggle(ctx echo.Context) error {
	var data attendance.ToggleRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ToggleRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	date, err := time.ParseInLocation("2006-01-02", data.Date, time.UTC)
	if err != nil {
		return errors.Wrap(err, "parsing toggle date")
	}
	rec, err := api.svc.Toggle(data.StudentID, date)
	if err != nil {
		return errors.Wrap(err, "toggling attendance")
	}
	return ctx.JSON(http.StatusOK, rec)
}

func (api *attendanceApi) destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.Delete(id); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
