package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mitchellh/cli"

	people "github.com/peteraglen/people-client-go"
	"github.com/peteraglen/people-client-go/internal/commands"
	"github.com/peteraglen/people-client-go/internal/config"
	"github.com/peteraglen/people-client-go/internal/logger"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	envFile := os.Getenv("PEOPLECTL_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "peoplectl: %v\n", err)
		return 1
	}

	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := people.New(cfg.BaseURL, cfg.AuthToken,
		people.WithRetryCount(cfg.RetryCount),
		people.WithTimeout(cfg.RequestTimeout),
		people.WithRequestLogger(people.NewZapLogger(log)),
	)

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	meta := &commands.Meta{
		Ctx:    ctx,
		Client: client,
		Log:    log,
		UI:     ui,
	}

	c := &cli.CLI{
		Name:     "peoplectl",
		Args:     args[1:],
		Commands: commands.Commands(meta),
	}

	exitCode, err := c.Run()
	if err != nil {
		log.Errorw("cli failed", "error", err)
		return 1
	}

	return exitCode
}
