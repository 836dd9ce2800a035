package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/attendance"
	"github.com/trezcool/kala/core/session"
	"github.com/trezcool/kala/core/student"
	"github.com/trezcool/kala/services/report"
)

func (cli *commandLine) attendance(ctx context.Context, args []string) error {
	sub, args, err := cli.subcommand(args, "attendance mark|history|delete|export [flags]")
	if err != nil {
		return err
	}

	switch sub {
	case "mark":
		if _, err := cli.require(session.RoleAdmin); err != nil {
			return err
		}
		markCmd := cli.newFlagSet("attendance mark")
		date := markCmd.String("date", "", "Day to mark, YYYY-MM-DD (default today).")
		present := markCmd.String("present", "", "Comma-separated ids of the present students. Everyone else is marked absent.")
		if err := parseFlags(markCmd, args); err != nil {
			return err
		}
		day, err := dayOrToday(*date)
		if err != nil {
			return err
		}
		ids, err := parseIDs(*present)
		if err != nil {
			return err
		}
		return cli.markAttendance(ctx, day, ids)

	case "history":
		id, err := cli.require()
		if err != nil {
			return err
		}
		historyCmd := cli.newFlagSet("attendance history")
		sid := historyCmd.Int64("student", 0, "(admin) Only show this student.")
		if err := parseFlags(historyCmd, args); err != nil {
			return err
		}
		return cli.attendanceHistory(ctx, id, core.ID(*sid))

	case "delete":
		if _, err := cli.require(session.RoleAdmin); err != nil {
			return err
		}
		delCmd := cli.newFlagSet("attendance delete")
		id := delCmd.Int64("id", 0, "Id of the attendance record to delete.")
		if err := parseFlags(delCmd, args); err != nil {
			return err
		}
		if *id == 0 {
			delCmd.Usage()
			return errHelp
		}
		if err := cli.api.DeleteAttendance(ctx, core.ID(*id)); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Attendance record #%d deleted\n", *id)
		return nil

	case "export":
		if _, err := cli.require(session.RoleAdmin); err != nil {
			return err
		}
		exportCmd := cli.newFlagSet("attendance export")
		path := exportCmd.String("file", "attendance.xlsx", "Where to write the workbook.")
		if err := parseFlags(exportCmd, args); err != nil {
			return err
		}
		return cli.exportAttendance(ctx, *path)

	default:
		return cli.unknownSubcommand("attendance", sub)
	}
}

// fetchAttendance loads the roster and all attendance records jointly.
func (cli *commandLine) fetchAttendance(ctx context.Context) ([]student.Student, []attendance.Record, error) {
	var (
		roster  []student.Student
		records []attendance.Record
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		roster, err = cli.api.ListStudents(gctx)
		return err
	})
	g.Go(func() (err error) {
		records, err = cli.api.ListAttendance(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return roster, records, nil
}

func (cli *commandLine) markAttendance(ctx context.Context, day core.Date, present []core.ID) error {
	roster, existing, err := cli.fetchAttendance(ctx)
	if err != nil {
		return err
	}
	if len(roster) == 0 {
		fmt.Fprintln(cli.out, "No students to mark")
		return nil
	}

	var refreshed bool
	sheet := attendance.NewSheet(func() { refreshed = true })
	for _, id := range present {
		if _, found := student.FindByID(roster, id); !found {
			return errors.Wrapf(student.ErrNotFound, "student #%s", id)
		}
		sheet.Set(id, true)
	}

	rec := attendance.NewReconciler(cli.api, cli.logger, cli.conf.SubmitConcurrency)
	out, err := rec.Submit(ctx, sheet, roster, existing, day)
	for sid, dups := range out.Duplicates {
		fmt.Fprintf(cli.out, "warning: student #%s has %d extra record(s) on %s\n", sid, len(dups), day)
	}
	if err != nil {
		for _, s := range roster {
			if ferr, ok := out.Failed[s.ID]; ok {
				fmt.Fprintf(cli.out, "%s: %s\n", s.Name, userMessage(ferr))
			}
		}
		return errors.Wrapf(err, "%d of %d students", len(out.Failed), len(roster))
	}

	fmt.Fprintf(cli.out, "Attendance for %s saved: %d created, %d updated\n", day, len(out.Created), len(out.Updated))
	if refreshed {
		records, err := cli.api.ListAttendance(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Present: %d of %d\n", attendance.PresentOn(records, day), len(roster))
	}
	return nil
}

func (cli *commandLine) attendanceHistory(ctx context.Context, id session.Identity, only core.ID) error {
	roster, records, err := cli.fetchAttendance(ctx)
	if err != nil {
		return err
	}

	if id.IsStudent() {
		me, err := student.Resolve(id, roster)
		if err != nil {
			return err
		}
		only = me.ID
	}
	if only != 0 {
		records = attendance.FilterForStudent(records, only)
	}
	if len(records) == 0 {
		fmt.Fprintln(cli.out, "No attendance records")
		return nil
	}

	w := cli.table()
	for _, g := range attendance.GroupByDate(records) {
		fmt.Fprintf(w, "%s\t%d/%d present\n", g.Date, attendance.PresentCount(g.Records), attendance.TotalCount(g.Records))
		for _, r := range g.Records {
			name := "#" + r.StudentID.String()
			if s, found := student.FindByID(roster, r.StudentID); found {
				name = s.Name
			}
			status := "absent"
			if r.Present {
				status = "present"
			}
			fmt.Fprintf(w, "  #%s\t%s\t%s\n", r.ID, name, status)
		}
	}
	if only != 0 {
		fmt.Fprintf(w, "\nOverall\t%d%%\n", attendance.Percentage(records))
	}
	return w.Flush()
}

func (cli *commandLine) exportAttendance(ctx context.Context, path string) error {
	roster, records, err := cli.fetchAttendance(ctx)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating export")
	}
	defer f.Close()
	if err := report.WriteAttendance(f, records, roster); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%d records exported to %s\n", len(records), path)
	return nil
}

func dayOrToday(s string) (core.Date, error) {
	if s == "" {
		return core.Today(), nil
	}
	return core.ParseDate(s)
}

func parseIDs(s string) ([]core.ID, error) {
	var ids []core.ID
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		id, err := core.ParseID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
