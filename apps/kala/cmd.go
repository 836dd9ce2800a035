package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/dashboard"
	"github.com/trezcool/kala/core/session"
	"github.com/trezcool/kala/services/kalaapi"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf   *core.Config
	api    *kalaapi.Client
	sess   *session.Context
	logger core.Logger
	out    io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -email EMAIL [-role student|admin]      - log in (the password is prompted)")
	fmt.Fprintln(cli.out, "  logout                                        - forget the saved session")
	fmt.Fprintln(cli.out, "  whoami                                        - show the logged-in user")
	fmt.Fprintln(cli.out, "  dashboard                                     - show the home screen of your role")
	fmt.Fprintln(cli.out, "  fees                                          - (student) show your fee details")
	fmt.Fprintln(cli.out, "  students list|search|add|delete|pay|import|template")
	fmt.Fprintln(cli.out, "  attendance mark|history|delete|export")
	fmt.Fprintln(cli.out, "  notices list|add|edit|delete")
	fmt.Fprintln(cli.out, "  homework list|add|delete")
	fmt.Fprintln(cli.out, "  schedule list|set")
	fmt.Fprintln(cli.out, "Run a command with -h for its flags.")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "login":
		return cli.login(ctx, args[2:])
	case "logout":
		return cli.logout(ctx)
	case "whoami":
		return cli.whoami()
	case "dashboard":
		return cli.dashboard(ctx)
	case "fees":
		return cli.fees(ctx)
	case "students":
		return cli.students(ctx, args[2:])
	case "attendance":
		return cli.attendance(ctx, args[2:])
	case "notices":
		return cli.notices(ctx, args[2:])
	case "homework":
		return cli.homework(ctx, args[2:])
	case "schedule":
		return cli.schedule(ctx, args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

// subcommand splits "students add -name X" into "add" and its flags.
func (cli *commandLine) subcommand(args []string, usage string) (string, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		fmt.Fprintln(cli.out, "Usage:")
		fmt.Fprintln(cli.out, "  "+usage)
		return "", nil, errHelp
	}
	return args[0], args[1:], nil
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return err
	}
	return nil
}

// require returns the logged-in identity when it holds one of roles.
func (cli *commandLine) require(roles ...session.Role) (session.Identity, error) {
	id, err := cli.sess.Require(roles...)
	switch err {
	case nil:
		return id, nil
	case session.ErrUnauthenticated:
		return id, errors.New("you are not logged in, run: kala login -email EMAIL")
	case session.ErrForbidden:
		return id, errors.Errorf("this command is not available to %ss", cur(cli.sess).Role)
	default:
		return id, err
	}
}

func cur(sess *session.Context) session.Identity {
	id, _ := sess.Current()
	return id
}

func (cli *commandLine) readPassword(prompt string) (string, error) {
	fmt.Fprint(cli.out, prompt)
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", errors.Wrap(err, "reading password")
	}
	return string(pwd), nil
}

func (cli *commandLine) table() *tabwriter.Writer {
	return tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
}

// userMessage is the single line shown for a failed command.
func userMessage(err error) string {
	switch e := errors.Cause(err).(type) {
	case *kalaapi.RequestError:
		return e.Message
	case *core.ValidationError:
		if e.Err != nil || len(e.Fields) <= 1 {
			return e.Error()
		}
		msgs := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			msgs = append(msgs, f.Field+": "+f.Error)
		}
		return strings.Join(msgs, "; ")
	}
	if errors.Cause(err) == dashboard.ErrStale {
		return "cancelled"
	}
	return err.Error()
}
