package main

import (
	"log"
	"os"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/grade"
	"github.com/trezcool/shule/core/student"
	inmemdb "github.com/trezcool/shule/storage/database/inmem"
)

var logger *log.Logger // todo: logger service

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	conf.StoreLatency = 0

	db, err := inmemdb.Open(conf)
	errAndDie(err)
	errAndDie(inmemdb.Seed(db))

	// start CLI
	cli := commandLine{
		db:            db,
		studentSvc:    student.NewService(inmemdb.NewStudentRepository(db)),
		gradeSvc:      grade.NewService(inmemdb.NewGradeRepository(db)),
		attendanceSvc: attendance.NewService(inmemdb.NewAttendanceRepository(db)),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
