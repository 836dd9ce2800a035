package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/dashboard"
	"github.com/trezcool/kala/core/fee"
	"github.com/trezcool/kala/core/homework"
	"github.com/trezcool/kala/core/notice"
	"github.com/trezcool/kala/core/schedule"
	"github.com/trezcool/kala/core/session"
)

func (cli *commandLine) dashboard(ctx context.Context) error {
	id, err := cli.require()
	if err != nil {
		return err
	}
	loader := dashboard.NewLoader(cli.api, cli.logger)

	if id.IsAdmin() {
		d, err := loader.Admin(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Welcome, %s\n\n", d.Identity.DisplayName())
		fmt.Fprintf(cli.out, "Students:       %d\n", d.StudentCount)
		fmt.Fprintf(cli.out, "Present today:  %d\n", d.PresentToday)
		cli.printNotices("Latest notices", d.Notices)
		return nil
	}

	d, err := loader.Student(ctx, id)
	if err != nil {
		return err
	}
	a := d.Attendance
	fmt.Fprintf(cli.out, "Welcome, %s\n\n", d.Identity.DisplayName())
	fmt.Fprintf(cli.out, "Attendance:  %d%% (%d present, %d absent)\n", a.Percentage, a.Present, a.Absent)
	fmt.Fprintf(cli.out, "This month:  %s\n", a.MonthlyRatio)
	cli.printNotices("Latest notices", d.Notices)
	cli.printHomework("Latest homework", d.Homework)
	cli.printClasses("Upcoming classes", d.Classes, d.Marks)
	return nil
}

func (cli *commandLine) fees(ctx context.Context) error {
	id, err := cli.require(session.RoleStudent)
	if err != nil {
		return err
	}
	d, err := dashboard.NewLoader(cli.api, cli.logger).Fees(ctx, id)
	if err != nil {
		return err
	}
	sum := fee.Summarize(d.Student)
	fmt.Fprintf(cli.out, "Name:          %s\n", d.Student.Name)
	fmt.Fprintf(cli.out, "Joined:        %s\n", d.Student.JoiningDate)
	fmt.Fprintf(cli.out, "Total fees:    %s\n", sum.Total)
	fmt.Fprintf(cli.out, "Paid:          %s\n", sum.Paid)
	fmt.Fprintf(cli.out, "Pending fees:  %s\n", sum.Pending)
	return nil
}

func (cli *commandLine) printNotices(title string, notices []notice.Notice) {
	fmt.Fprintf(cli.out, "\n%s:\n", title)
	if len(notices) == 0 {
		fmt.Fprintln(cli.out, "  No notices")
		return
	}
	w := cli.table()
	for _, n := range notices {
		fmt.Fprintf(w, "  #%s\t%s\t%s\t%s\t%s\n", n.ID, n.CreatedAt, n.Title, n.Priority.String, n.Description)
	}
	_ = w.Flush()
}

func (cli *commandLine) printHomework(title string, items []homework.Homework) {
	fmt.Fprintf(cli.out, "\n%s:\n", title)
	if len(items) == 0 {
		fmt.Fprintln(cli.out, "  No homework")
		return
	}
	w := cli.table()
	for _, h := range items {
		fmt.Fprintf(w, "  #%s\t%s\t%s\t%s\n", h.ID, h.CreatedAt, h.Title, h.Description)
	}
	_ = w.Flush()
}

func (cli *commandLine) printClasses(title string, classes []schedule.Class, marks map[core.Date]schedule.Mark) {
	fmt.Fprintf(cli.out, "\n%s:\n", title)
	if len(classes) == 0 {
		fmt.Fprintln(cli.out, "  No classes scheduled")
		return
	}
	sorted := make([]schedule.Class, len(classes))
	copy(sorted, classes)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	w := cli.table()
	for _, c := range sorted {
		selected := ""
		if marks[c.Date].Selected {
			selected = " (selected)"
		}
		fmt.Fprintf(w, "  %s%s\t%s\n", c.Date, selected, c.Detail)
	}
	_ = w.Flush()
}
