package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/cancelreader"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/tomz197/backyard/internal/config"
	"github.com/tomz197/backyard/internal/loop/client"
	yardconfig "github.com/tomz197/backyard/internal/loop/config"
)

func main() {
	logger := config.NewLogger(os.Stderr, "yard")

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to enable raw mode", "err", err)
	}
	restore := func() { _ = term.Restore(fd, oldState) }
	defer restore()

	stdin, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		restore()
		logger.Fatal("failed to open stdin", "err", err)
	}
	defer stdin.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := yardconfig.FromEnv()
	c, err := client.NewClient(stdin, os.Stdout, client.Options{
		Config:  &cfg,
		Logger:  logger,
		Profile: termenv.EnvColorProfile(),
	})
	if err != nil {
		restore()
		logger.Fatal("failed to start yard", "err", err)
	}

	err = c.Run(ctx)
	stdin.Cancel()
	if err != nil {
		restore()
		logger.Fatal("yard error", "err", err)
	}
}
