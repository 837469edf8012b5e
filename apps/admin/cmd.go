package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/report"
	"github.com/trezcool/shule/core/student"
	inmemdb "github.com/trezcool/shule/storage/database/inmem"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db            *inmemdb.DB
	studentSvc    student.Service
	gradeSvc      grade.Service
	attendanceSvc attendance.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  seed - load the demo dataset into the store")
	fmt.Println("  export [-format csv|xlsx] [-out FILE] - write the student report to FILE")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportFormat := exportCmd.String("format", report.FormatCSV, "Export format: csv or xlsx.")
	exportOut := exportCmd.String("out", "", "Output file path. A random name is generated when omitted.")

	switch args[1] {
	case "seed":
		return inmemdb.Seed(cli.db)
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		switch *exportFormat {
		case report.FormatCSV, report.FormatXLSX: // pass
		default:
			exportCmd.Usage()
			return errHelp
		}
		return cli.export(*exportFormat, *exportOut)
	default:
		cli.printUsage()
		return errHelp
	}
}
