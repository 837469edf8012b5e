package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/report"
)

// export derives the per-student report from the current store snapshot and
// writes it to `out` in the requested format.
func (cli *commandLine) export(format, out string) error {
	students, err := cli.studentSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	grades, err := cli.gradeSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying grades")
	}
	records, err := cli.attendanceSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying attendance")
	}
	rows := report.BuildStudentRows(students, grades, records)

	if out == "" {
		out = "student-report-" + uuid.New().String() + "." + format
	}
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(err, "creating %s", out)
	}
	defer f.Close()

	if format == report.FormatXLSX {
		err = report.WriteXLSX(f, rows)
	} else {
		err = report.WriteCSV(f, rows)
	}
	if err != nil {
		return err
	}
	logger.Printf("wrote %s", out)
	return nil
}
