package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/homework"
	"github.com/trezcool/kala/core/notice"
	"github.com/trezcool/kala/core/session"
)

func (cli *commandLine) notices(ctx context.Context, args []string) error {
	sub, args, err := cli.subcommand(args, "notices list|add|edit|delete [flags]")
	if err != nil {
		return err
	}

	switch sub {
	case "list":
		if _, err := cli.require(); err != nil {
			return err
		}
		listCmd := cli.newFlagSet("notices list")
		page := listCmd.Int("page", 1, "Page to show.")
		if err := parseFlags(listCmd, args); err != nil {
			return err
		}
		notices, err := cli.api.ListNotices(ctx, *page)
		if err != nil {
			return err
		}
		cli.printNotices(fmt.Sprintf("Notices (page %d)", *page), notice.LatestFirst(notices))
		return nil

	case "add", "edit":
		if _, err := cli.require(session.RoleAdmin); err != nil {
			return err
		}
		saveCmd := cli.newFlagSet("notices " + sub)
		var id *int64
		if sub == "edit" {
			id = saveCmd.Int64("id", 0, "Id of the notice to edit.")
		}
		nn := noticeFlags(saveCmd)
		if err := parseFlags(saveCmd, args); err != nil {
			return err
		}
		if id != nil && *id == 0 {
			saveCmd.Usage()
			return errHelp
		}
		var editID core.ID
		if id != nil {
			editID = core.ID(*id)
		}
		return cli.saveNotice(ctx, editID, *nn)

	case "delete":
		if _, err := cli.require(session.RoleAdmin); err != nil {
			return err
		}
		delCmd := cli.newFlagSet("notices delete")
		id := delCmd.Int64("id", 0, "Id of the notice to delete.")
		if err := parseFlags(delCmd, args); err != nil {
			return err
		}
		if *id == 0 {
			delCmd.Usage()
			return errHelp
		}
		if err := cli.api.DeleteNotice(ctx, core.ID(*id)); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Notice #%d deleted\n", *id)
		return nil

	default:
		return cli.unknownSubcommand("notices", sub)
	}
}

func noticeFlags(fs *flag.FlagSet) *notice.NewNotice {
	nn := &notice.NewNotice{}
	fs.StringVar(&nn.Title, "title", "", "Title.")
	fs.StringVar(&nn.Description, "description", "", "Description.")
	fs.StringVar(&nn.Category, "category", notice.DefaultCategory, "Category.")
	fs.StringVar(&nn.Priority, "priority", notice.DefaultPriority, "Priority.")
	fs.StringVar(&nn.Status, "status", notice.DefaultStatus, "Status.")
	return nn
}

// saveNotice creates nn, or updates notice editID when set.
func (cli *commandLine) saveNotice(ctx context.Context, editID core.ID, nn notice.NewNotice) error {
	if editID != 0 {
		n, err := cli.api.UpdateNotice(ctx, editID, nn)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Notice #%s updated\n", n.ID)
		return nil
	}
	n, err := cli.api.CreateNotice(ctx, nn)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Notice %q published\n", n.Title)
	return nil
}

func (cli *commandLine) homework(ctx context.Context, args []string) error {
	sub, args, err := cli.subcommand(args, "homework list|add|delete [flags]")
	if err != nil {
		return err
	}

	switch sub {
	case "list":
		if _, err := cli.require(); err != nil {
			return err
		}
		items, err := cli.api.ListHomework(ctx)
		if err != nil {
			return err
		}
		cli.printHomework("Homework", homework.Latest(items, len(items)))
		return nil

	case "add":
		if _, err := cli.require(session.RoleAdmin); err != nil {
			return err
		}
		addCmd := cli.newFlagSet("homework add")
		nh := homework.NewHomework{}
		addCmd.StringVar(&nh.Title, "title", "", "Title.")
		addCmd.StringVar(&nh.Description, "description", "", "What to do.")
		if err := parseFlags(addCmd, args); err != nil {
			return err
		}
		h, err := cli.api.CreateHomework(ctx, nh)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Homework %q added\n", h.Title)
		return nil

	case "delete":
		if _, err := cli.require(session.RoleAdmin); err != nil {
			return err
		}
		delCmd := cli.newFlagSet("homework delete")
		id := delCmd.Int64("id", 0, "Id of the homework to delete.")
		if err := parseFlags(delCmd, args); err != nil {
			return err
		}
		if *id == 0 {
			delCmd.Usage()
			return errHelp
		}
		if err := cli.api.DeleteHomework(ctx, core.ID(*id)); err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "Homework #%d deleted\n", *id)
		return nil

	default:
		return cli.unknownSubcommand("homework", sub)
	}
}
