package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/fee"
	"github.com/trezcool/kala/core/session"
	"github.com/trezcool/kala/core/student"
	"github.com/trezcool/kala/services/report"
)

func (cli *commandLine) students(ctx context.Context, args []string) error {
	sub, args, err := cli.subcommand(args, "students list|search|add|delete|pay|import|template [flags]")
	if err != nil {
		return err
	}
	if _, err := cli.require(session.RoleAdmin); err != nil {
		return err
	}

	switch sub {
	case "list", "search":
		listCmd := cli.newFlagSet("students " + sub)
		query := listCmd.String("q", "", "Only show students whose name or email contains this text.")
		if err := parseFlags(listCmd, args); err != nil {
			return err
		}
		if sub == "search" && *query == "" && listCmd.NArg() > 0 {
			*query = listCmd.Arg(0)
		}
		return cli.listStudents(ctx, *query)

	case "add":
		addCmd := cli.newFlagSet("students add")
		ns := student.NewStudent{}
		addCmd.StringVar(&ns.Name, "name", "", "Full name.")
		addCmd.StringVar(&ns.Email, "email", "", "Email, used to log in.")
		addCmd.StringVar(&ns.Phone, "phone", "", "Phone number (digits only).")
		joined := addCmd.String("joined", "", "Joining date YYYY-MM-DD (default today).")
		addCmd.Float64Var(&ns.TotalFees, "fees", 0, "Total fees.")
		if err := parseFlags(addCmd, args); err != nil {
			return err
		}
		ns.JoiningDate = core.Today()
		if *joined != "" {
			if ns.JoiningDate, err = core.ParseDate(*joined); err != nil {
				return err
			}
		}
		if ns.Password, err = cli.readPassword("Enter the student's password:"); err != nil {
			return err
		}
		s, err := cli.api.CreateStudent(ctx, ns)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Student %s added (#%s)\n", s.Name, s.ID)
		return nil

	case "delete":
		delCmd := cli.newFlagSet("students delete")
		id := delCmd.Int64("id", 0, "Id of the student to delete.")
		if err := parseFlags(delCmd, args); err != nil {
			return err
		}
		if *id == 0 {
			delCmd.Usage()
			return errHelp
		}
		if err := cli.api.DeleteStudent(ctx, core.ID(*id)); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Student #%d deleted\n", *id)
		return nil

	case "pay":
		payCmd := cli.newFlagSet("students pay")
		id := payCmd.Int64("id", 0, "Id of the paying student.")
		amount := payCmd.Float64("amount", 0, "Amount paid.")
		remarks := payCmd.String("remarks", "", "Optional remarks.")
		if err := parseFlags(payCmd, args); err != nil {
			return err
		}
		if *id == 0 {
			payCmd.Usage()
			return errHelp
		}
		return cli.payFees(ctx, core.ID(*id), core.Amount(*amount), *remarks)

	case "import":
		importCmd := cli.newFlagSet("students import")
		path := importCmd.String("file", "", "XLSX roster to import (see: students template).")
		if err := parseFlags(importCmd, args); err != nil {
			return err
		}
		if *path == "" {
			importCmd.Usage()
			return errHelp
		}
		return cli.importStudents(ctx, *path)

	case "template":
		tmplCmd := cli.newFlagSet("students template")
		path := tmplCmd.String("file", "roster.xlsx", "Where to write the empty roster.")
		if err := parseFlags(tmplCmd, args); err != nil {
			return err
		}
		f, err := os.Create(*path)
		if err != nil {
			return errors.Wrap(err, "creating roster template")
		}
		defer f.Close()
		if err := report.WriteRosterTemplate(f); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Roster template written to %s\n", *path)
		return nil

	default:
		return cli.unknownSubcommand("students", sub)
	}
}

func (cli *commandLine) listStudents(ctx context.Context, query string) error {
	roster, err := cli.api.ListStudents(ctx)
	if err != nil {
		return err
	}
	roster = student.Search(roster, query)
	if len(roster) == 0 {
		fmt.Fprintln(cli.out, "No students found")
		return nil
	}

	w := cli.table()
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tJOINED\tTOTAL\tPENDING")
	for _, s := range roster {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Email, s.Phone, s.JoiningDate, s.TotalFees, s.PendingFees)
	}
	return w.Flush()
}

func (cli *commandLine) payFees(ctx context.Context, id core.ID, amount core.Amount, remarks string) error {
	roster, err := cli.api.ListStudents(ctx)
	if err != nil {
		return err
	}
	roster, receipt, err := fee.Pay(ctx, cli.api, roster, id, amount, remarks)
	if err != nil {
		return err
	}
	s, _ := student.FindByID(roster, id)
	if receipt.Message != "" {
		fmt.Fprintln(cli.out, receipt.Message)
	}
	fmt.Fprintf(cli.out, "%s now has %s pending\n", s.Name, s.PendingFees)
	return nil
}

func (cli *commandLine) importStudents(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening roster")
	}
	defer f.Close()

	rows, err := report.ReadRoster(f)
	if err != nil {
		return err
	}

	var failed int
	for _, ns := range rows {
		s, err := cli.api.CreateStudent(ctx, ns)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failed++
			fmt.Fprintf(cli.out, "%s: %s\n", ns.Email, userMessage(err))
			continue
		}
		fmt.Fprintf(cli.out, "added %s (#%s)\n", s.Name, s.ID)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d students could not be added", failed, len(rows))
	}
	fmt.Fprintf(cli.out, "%d students imported\n", len(rows))
	return nil
}

func (cli *commandLine) unknownSubcommand(cmd, sub string) error {
	fmt.Fprintf(cli.out, "unknown %s command %q\n", cmd, sub)
	return errHelp
}
