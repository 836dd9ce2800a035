// Command kala is the command-line client of the Kala Academy backend.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/session"
	"github.com/trezcool/kala/services/kalaapi"
	logsvc "github.com/trezcool/kala/services/logger"
	"github.com/trezcool/kala/storage/kvstore"
)

var std *log.Logger

func main() {
	std = log.New(os.Stderr, "KALA : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	errAndDie(err)

	logger := logsvc.NewRollbarLogger(std, conf)

	// every command is one screen; an interrupt cancels it
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	kv, closeKV, err := kvstore.Open(ctx, conf)
	errAndDie(err)

	sess := session.NewContext(session.NewStore(kv))
	errAndDie(sess.Init(ctx))

	cli := commandLine{
		conf:   conf,
		api:    kalaapi.New(conf, logger),
		sess:   sess,
		logger: logger,
		out:    os.Stdout,
	}
	err = cli.run(ctx, os.Args)

	stop()
	_ = closeKV()
	logger.Close()

	if err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", userMessage(err))
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		std.Fatal(err)
	}
}
