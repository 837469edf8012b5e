package echoapi

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/report"
	"github.com/trezcool/shule/core/student"
)

type (
	reportDeps struct {
		studentSvc    student.Service
		classSvc      class.Service
		gradeSvc      grade.Service
		attendanceSvc attendance.Service
	}

	reportApi struct {
		deps reportDeps
	}
)

func registerReportAPI(g *echo.Group, deps reportDeps) {
	api := reportApi{deps: deps}

	rg := g.Group("/reports")
	rg.GET("/dashboard", api.dashboard)
	rg.GET("/distribution", api.distribution)
	rg.GET("/attendance", api.attendanceBreakdown)
	rg.GET("/students", api.students)
	rg.GET("/export", api.export)
}

// snapshot pulls the full record populations the report functions derive from.
func (api *reportApi) snapshot() ([]student.Student, []grade.Grade, []attendance.Record, error) {
	students, err := api.deps.studentSvc.QueryAll()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "querying students")
	}
	grades, err := api.deps.gradeSvc.QueryAll()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "querying grades")
	}
	records, err := api.deps.attendanceSvc.QueryAll()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "querying attendance")
	}
	return students, grades, records, nil
}

// Handlers

func (api *reportApi) dashboard(ctx echo.Context) error {
	students, grades, records, err := api.snapshot()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, report.DashboardSummary(students, grades, records))
}

func (api *reportApi) distribution(ctx echo.Context) error {
	students, err := api.deps.studentSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	grades, err := api.deps.gradeSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying grades")
	}
	return ctx.JSON(http.StatusOK, report.GradeDistribution(students, grades))
}

func (api *reportApi) attendanceBreakdown(ctx echo.Context) error {
	var (
		records []attendance.Record
		err     error
	)
	if param := ctx.QueryParam("date"); param != "" {
		var date time.Time
		if date, err = time.ParseInLocation("2006-01-02", param, time.UTC); err != nil {
			return ctx.JSON(http.StatusOK, report.Breakdown{})
		}
		records, err = api.deps.attendanceSvc.GetByDate(date)
	} else {
		records, err = api.deps.attendanceSvc.QueryAll()
	}
	if err != nil {
		return errors.Wrap(err, "querying attendance")
	}
	return ctx.JSON(http.StatusOK, report.AttendanceBreakdown(records))
}

func (api *reportApi) students(ctx echo.Context) error {
	students, grades, records, err := api.snapshot()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, report.BuildStudentRows(students, grades, records))
}

func (api *reportApi) export(ctx echo.Context) error {
	format := ctx.QueryParam("format")
	if format == "" {
		format = report.FormatCSV
	}

	students, grades, records, err := api.snapshot()
	if err != nil {
		return err
	}
	rows := report.BuildStudentRows(students, grades, records)

	var buf bytes.Buffer
	var contentType string
	switch format {
	case report.FormatCSV:
		contentType = "text/csv"
		err = report.WriteCSV(&buf, rows)
	case report.FormatXLSX:
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = report.WriteXLSX(&buf, rows)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported format: "+format)
	}
	if err != nil {
		return errors.Wrap(err, "rendering export")
	}

	name := "student-report-" + time.Now().UTC().Format("2006-01-02") + "." + format
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return ctx.Blob(http.StatusOK, contentType, buf.Bytes())
}
