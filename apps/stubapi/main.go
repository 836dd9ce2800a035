// Command stubapi serves an in-memory stand-in for the Kala Academy backend, for local runs
// of the kala CLI.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	echoapi "github.com/trezcool/kala/apps/stubapi/echo"
	"github.com/trezcool/kala/core"
	logsvc "github.com/trezcool/kala/services/logger"
	inmemdb "github.com/trezcool/kala/storage/inmem"
)

func main() {
	std := log.New(os.Stdout, "STUBAPI : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	if err := run(std, os.Args[1:]); err != nil {
		std.Fatal(err)
	}
}

func run(std *log.Logger, args []string) error {
	flags := flag.NewFlagSet("stubapi", flag.ContinueOnError)
	addr := flags.String("addr", ":8000", "listen address")
	adminEmail := flags.String("admin-email", "aman@gmail.com", "email of the seeded admin")
	adminPwd := flags.String("admin-password", "admin", "password of the seeded admin")
	demo := flags.Bool("demo", false, "seed demo students, notices and classes")
	if err := flags.Parse(args); err != nil {
		return err
	}

	conf, err := core.NewConfig()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}
	logger := logsvc.NewRollbarLogger(std, conf)
	defer logger.Close()

	db := inmemdb.Open()
	if _, err := db.CreateAdmin("Admin", *adminEmail, *adminPwd); err != nil {
		return errors.Wrap(err, "seeding admin")
	}
	if *demo {
		if err := seedDemo(db); err != nil {
			return errors.Wrap(err, "seeding demo data")
		}
	}

	srv := echoapi.NewServer(&echoapi.Options{
		Address: *addr,
		Debug:   conf.Debug,
		DB:      db,
		Logger:  logger,
	})

	errs := make(chan error, 1)
	go func() {
		logger.Info("listening", map[string]interface{}{"addr": *addr})
		errs <- srv.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errs:
		if err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "serving")
		}
		return nil
	case sig := <-shutdown:
		logger.Info("shutting down", map[string]interface{}{"signal": sig.String()})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Stop(ctx)
	}
}
