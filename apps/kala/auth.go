package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/kala/core/session"
	"github.com/trezcool/kala/services/kalaapi"
)

func (cli *commandLine) login(ctx context.Context, args []string) error {
	loginCmd := cli.newFlagSet("login")
	email := loginCmd.String("email", "", "Your email. The password will be prompted next.")
	role := loginCmd.String("role", string(session.RoleStudent), "Log in as student or admin.")
	if err := parseFlags(loginCmd, args); err != nil {
		return err
	}
	if *email == "" {
		loginCmd.Usage()
		return errHelp
	}
	r, ok := session.ParseRole(*role)
	if !ok {
		return errors.Errorf("unknown role %q, expected student or admin", *role)
	}

	pwd, err := cli.readPassword("Enter password:")
	if err != nil {
		return err
	}
	if pwd == "" {
		loginCmd.Usage()
		return errHelp
	}

	id, err := cli.api.Login(ctx, kalaapi.LoginRequest{Email: *email, Password: pwd, Role: r})
	if err != nil {
		return err
	}
	if err := cli.sess.Begin(ctx, id); err != nil {
		if errors.Cause(err) == session.ErrInvalidIdentity {
			return errors.New("Invalid login response from server")
		}
		return errors.Wrap(err, "saving session")
	}
	cli.logger.Info("logged in", id)
	fmt.Fprintf(cli.out, "Logged in as %s (%s)\n", id.DisplayName(), id.Role)
	return nil
}

func (cli *commandLine) logout(ctx context.Context) error {
	if err := cli.sess.End(ctx); err != nil {
		return errors.Wrap(err, "clearing session")
	}
	fmt.Fprintln(cli.out, "Logged out")
	return nil
}

func (cli *commandLine) whoami() error {
	id, err := cli.require()
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%s <%s> (%s)\n", id.DisplayName(), id.Email, id.Role)
	return nil
}
