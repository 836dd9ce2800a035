package main

import (
	"context"
	"fmt"

	"github.com/trezcool/kala/core/schedule"
	"github.com/trezcool/kala/core/session"
)

func (cli *commandLine) schedule(ctx context.Context, args []string) error {
	sub, args, err := cli.subcommand(args, "schedule list|set [flags]")
	if err != nil {
		return err
	}

	switch sub {
	case "list":
		if _, err := cli.require(); err != nil {
			return err
		}
		listCmd := cli.newFlagSet("schedule list")
		date := listCmd.String("date", "", "Day to highlight, YYYY-MM-DD (default today).")
		if err := parseFlags(listCmd, args); err != nil {
			return err
		}
		selected, err := dayOrToday(*date)
		if err != nil {
			return err
		}
		classes, err := cli.api.ListScheduledClasses(ctx)
		if err != nil {
			return err
		}
		cli.printClasses("Scheduled classes", classes, schedule.BuildMarks(classes, selected))
		if c, ok := schedule.ResolveForDate(classes, selected); ok {
			fmt.Fprintf(cli.out, "\n%s: %s\n", selected, c.Detail)
		}
		return nil

	case "set":
		if _, err := cli.require(session.RoleAdmin); err != nil {
			return err
		}
		setCmd := cli.newFlagSet("schedule set")
		date := setCmd.String("date", "", "Day of the class, YYYY-MM-DD.")
		detail := setCmd.String("detail", schedule.DefaultDetail, "What the class is about.")
		if err := parseFlags(setCmd, args); err != nil {
			return err
		}
		if *date == "" {
			return schedule.ErrNoDate
		}
		day, err := dayOrToday(*date)
		if err != nil {
			return err
		}
		classes, err := cli.api.ListScheduledClasses(ctx)
		if err != nil {
			return err
		}
		c, updated, err := schedule.NewPlanner(cli.api, cli.logger).Submit(ctx, classes, day, *detail)
		if err != nil {
			return err
		}
		verb := "scheduled"
		if updated {
			verb = "updated"
		}
		fmt.Fprintf(cli.out, "Class on %s %s: %s\n", c.Date, verb, c.Detail)
		return nil

	default:
		return cli.unknownSubcommand("schedule", sub)
	}
}
