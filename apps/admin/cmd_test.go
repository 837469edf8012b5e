package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/student"
	inmemdb "github.com/trezcool/shule/storage/database/inmem"
)

func setup(t *testing.T) *commandLine {
	t.Helper()

	logger = log.New(io.Discard, "", 0)

	db, err := inmemdb.Open(nil)
	if err != nil {
		t.Fatalf("inmemdb.Open() failed, %v", err)
	}
	if err = inmemdb.Seed(db); err != nil {
		t.Fatalf("inmemdb.Seed() failed, %v", err)
	}

	return &commandLine{
		db:            db,
		studentSvc:    student.NewService(inmemdb.NewStudentRepository(db)),
		gradeSvc:      grade.NewService(inmemdb.NewGradeRepository(db)),
		attendanceSvc: attendance.NewService(inmemdb.NewAttendanceRepository(db)),
	}
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
}

func Test_commandLine_run(t *testing.T) {
	cli := setup(t)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "seed", args: []string{"seed"}},
		{name: "export: bad format", args: []string{"export", "-format", "pdf"}, wantErr: errHelp},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_export(t *testing.T) {
	cli := setup(t)
	dir := t.TempDir()

	tests := []struct {
		name   string
		format string
	}{
		{name: "csv", format: "csv"},
		{name: "xlsx", format: "xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(dir, "report."+tt.format)
			if err := cli.run([]string{"admin", "export", "-format", tt.format, "-out", out}); err != nil {
				t.Fatalf("cli.run() unexpected error = %v", err)
			}

			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatalf("reading %s failed, %v", out, err)
			}
			if len(data) == 0 {
				t.Error("export wrote an empty file")
			}
			if tt.format == "csv" && !strings.HasPrefix(string(data), "Name,Grade,Average,Attendance") {
				t.Errorf("unexpected csv header in %q", string(data[:40]))
			}
		})
	}
}
