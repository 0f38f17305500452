package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	errs "web-messenger/errors"
	"web-messenger/internal"

	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the CLI.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

var errUsage = errors.New("usage: webchat [-env file] [-stats] <send|list|conversation|by-sender|by-receiver|health|ping|watch> [flags]")

func main() {
	code, err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "webchat: %s (%v)\n", errs.UserMessage(err), err)
	}
	os.Exit(code)
}

// run loads the configuration, wires the client and dispatches the command.
func run(args []string, out io.Writer) (int, error) {
	global := flag.NewFlagSet("webchat", flag.ContinueOnError)
	global.SetOutput(io.Discard)
	envFile := global.String("env", ".env", "optional .env file")
	showStats := global.Bool("stats", false, "print transport statistics after the command")
	if err := global.Parse(args); err != nil {
		return exitConfig, fmt.Errorf("%w: %v", errUsage, err)
	}
	if global.NArg() == 0 {
		return exitConfig, errUsage
	}

	config, err := internal.LoadConfig(*envFile)
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApp(ctx, log, config, out)
	if err != nil {
		return exitConfig, err
	}
	log.Debug("Client ready",
		"app", config.App.Name,
		"version", config.App.Version,
		"environment", config.App.Environment,
		"base_url", config.APIBaseURL,
		"mock_mode", config.MockMode,
	)

	code, err := app.dispatch(ctx, global.Arg(0), global.Args()[1:])
	if *showStats {
		app.printStats()
	}
	return code, err
}
