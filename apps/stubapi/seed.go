package main

import (
	"time"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/notice"
	"github.com/trezcool/kala/core/schedule"
	"github.com/trezcool/kala/core/student"
	inmemdb "github.com/trezcool/kala/storage/inmem"
)

func seedDemo(db *inmemdb.DB) error {
	today := core.Today()
	students := []student.NewStudent{
		{Name: "Asha Kulkarni", Email: "asha@kala.in", Password: "asha", Phone: "9876543210", JoiningDate: today, TotalFees: 12000},
		{Name: "Ravi Patil", Email: "ravi@kala.in", Password: "ravi", Phone: "9123456780", JoiningDate: today, TotalFees: 9000},
	}
	for _, ns := range students {
		if _, err := db.CreateStudent(ns); err != nil {
			return err
		}
	}

	nn := notice.NewNotice{Title: "Welcome", Description: "Classes start on Monday."}
	if err := nn.Prepare(); err != nil {
		return err
	}
	db.CreateNotice(nn)

	db.CreateClass(schedule.NewClass{
		Date:    core.DateOf(today.Time().Add(24 * time.Hour)),
		Detail:  schedule.DefaultDetail,
		Present: true,
	})
	return nil
}
