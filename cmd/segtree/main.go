/*
Command segtree reads commands from stdin and executes them on a segment tree
of integers. It answers range sum, minimum, maximum and product queries and
assigns values to ranges. Enter 'help' for a list of commands.

Usage:

	segtree [--config file] [--input file] [--trace level] [--no-color] [--prompt p]

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/segtree/internal/config"
	"github.com/npillmayer/segtree/internal/numfile"
	"github.com/npillmayer/segtree/internal/repl"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "YAML configuration file",
	}
	inputFlag = &cli.StringFlag{
		Name:  "input",
		Usage: "file of whitespace-separated integers to load as the initial array",
	}
	traceFlag = &cli.StringFlag{
		Name:  "trace",
		Usage: "trace level (Error, Info or Debug)",
	}
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "disable colored output",
	}
	promptFlag = &cli.StringFlag{
		Name:  "prompt",
		Usage: "input prompt for interactive sessions",
	}
)

func newApp(action cli.ActionFunc) *cli.App {
	return &cli.App{
		Name:   "segtree",
		Usage:  "range queries and range assignments on an integer array",
		Flags:  []cli.Flag{configFlag, inputFlag, traceFlag, noColorFlag, promptFlag},
		Action: action,
	}
}

func main() {
	if err := newApp(run).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	setupTracing(cfg.TraceLevel())
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	session := repl.New(os.Stdout,
		repl.WithPrompt(cfg.Prompt),
		repl.WithColor(cfg.Color),
		repl.WithInteractive(interactive),
		repl.WithWidth(terminalWidth()),
	)
	if cfg.Input != "" {
		values, err := numfile.Load(cfg.Input)
		if err != nil {
			return err
		}
		if err := session.Init(values); err != nil {
			return fmt.Errorf("%s: %w", cfg.Input, err)
		}
	}
	if interactive {
		fmt.Println("segtree: enter 'help' for a list of commands")
	}
	return session.Run(os.Stdin)
}

// loadConfig reads the configuration file, if any, and applies the
// command-line flags on top of it.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := ctx.String(configFlag.Name); path != "" {
		var err error
		if cfg, err = config.LoadConfig(path); err != nil {
			return nil, err
		}
	}
	if ctx.IsSet(inputFlag.Name) {
		cfg.Input = ctx.String(inputFlag.Name)
	}
	if ctx.IsSet(traceFlag.Name) {
		cfg.Trace = ctx.String(traceFlag.Name)
	}
	if ctx.IsSet(promptFlag.Name) {
		cfg.Prompt = ctx.String(promptFlag.Name)
	}
	if ctx.Bool(noColorFlag.Name) {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupTracing(level tracing.TraceLevel) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(level)
	gtrace.CommandTracer = gologadapter.New()
	gtrace.CommandTracer.SetTraceLevel(level)
}

// terminalWidth returns the usable line width of stdout, or a default width
// if stdout is not a terminal.
func terminalWidth() int {
	width := 65
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			switch {
			case w > 65:
				width = w - 10
			case w > 30:
				width = w - 5
			case w > 10:
				width = w
			}
		}
	}
	gtrace.CommandTracer.P("term", "stdout").Infof("setting line width to %d", width)
	return width
}
