package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/Makepad-fr/datenight/internal/cli"
	"github.com/Makepad-fr/datenight/internal/config"
	"github.com/Makepad-fr/datenight/internal/logging"
	"github.com/Makepad-fr/datenight/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	// Root flags (apply to every subcommand)
	var configPath string
	var over config.Overrides
	flagSet := pflag.NewFlagSet("datenight", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&configPath, "config", "", "YAML config file")
	flagSet.StringVar(&over.APIURL, "api-url", "", "backend base URL")
	flagSet.StringVar(&over.Theme, "theme", "", "classic, neon or mono")
	flagSet.StringVar(&over.LogLevel, "log-level", "", "debug, info, warn or error")
	flagSet.StringVar(&over.LogFile, "log-file", "", "write diagnostic logs to this file")
	flagSet.Usage = func() { cli.PrintHelp(os.Stderr) }
	if err := flagSet.Parse(argv); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		ui.Fail(os.Stderr, err.Error())
		return 2
	}

	// Hand the remaining args to the CLI runner.
	args := flagSet.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stderr)
		return 2
	}

	cfg, err := config.Load(config.Options{ConfigPath: configPath})
	if err == nil {
		err = cfg.Apply(over)
	}
	if err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		return 2
	}
	ui.SetTheme(cfg.Theme)

	// The TUI owns the terminal, so its logs go to a file or nowhere.
	var fallback io.Writer = os.Stderr
	if args[0] == "tui" {
		fallback = io.Discard
	}
	log, closeLog, err := logging.Open(cfg.LogLevel, cfg.LogFile, fallback)
	if err != nil {
		ui.Fail(os.Stderr, "log: "+err.Error())
		return 1
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := cli.Run(args, cli.Options{
		Ctx:    ctx,
		Config: cfg,
		Log:    log,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	return code
}
