// Copyright
// SPDX-License-Identifier: MIT
// sidepad: minimal terminal editor with a recent-files sidebar and script runner
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sidepad/internal/config"
	"sidepad/internal/logging"
	"sidepad/internal/runner"
	"sidepad/internal/tui"
)

const Version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func usage() {
	fmt.Println(`sidepad ` + Version + `
Minimal terminal editor with a sidebar of recently used files.
USAGE
  sidepad [options] [FILE]
OPTIONS
  -settings PATH   JSON display settings (font_size, font_color, bg_font_color, font_weight, tab_width)
  -log-file PATH   Append logs to file (created if missing)
  -v               Debug logs (requires -log-file or -journal)
  -journal         Also send logs to the systemd journal
  -no-color        Disable colors (NO_COLOR is honoured too)
  -version         Print version
KEYS
  ctrl+o open   ctrl+s save   alt+s save as   ctrl+r run   ctrl+b sidebar   ctrl+t dock
  f1 shows every binding.
NOTES
  • A FILE that does not exist yet becomes the path of a new document.
  • Scripts run from the file's directory; .py .sh .go .js .rb .pl use their interpreter.`)
}

func run(args []string) int {
	fs := flag.NewFlagSet("sidepad", flag.ContinueOnError)
	fs.Usage = usage
	settingsPath := fs.String("settings", "", "JSON display settings")
	logPath := fs.String("log-file", "", "Append logs to file (created if missing)")
	debug := fs.Bool("v", false, "Debug logs")
	journal := fs.Bool("journal", false, "Also log to the systemd journal")
	noColor := fs.Bool("no-color", false, "Disable colors")
	version := fs.Bool("version", false, "Print version")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 1
	}
	if *version {
		fmt.Println("sidepad", Version)
		return 0
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "sidepad: at most one FILE")
		return 1
	}

	log, closeLog, err := logging.New(logging.Options{
		File:    *logPath,
		Debug:   *debug,
		Journal: *journal,
		Version: Version,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not open log file:", err)
		return 1
	}
	defer func() { _ = closeLog() }()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sidepad:", err)
		log.Error("settings", "err", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	r := runner.New(log)
	log.Info("starting", "version", Version, "file", fs.Arg(0), "settings", *settingsPath)
	err = tui.Run(tui.Options{
		Settings: settings,
		Log:      log,
		Launcher: r,
		NoColor:  *noColor,
		File:     fs.Arg(0),
		Context:  ctx,
	})
	// a script left running must not outlive the editor
	if stopErr := r.Stop(context.Background()); stopErr != nil {
		log.Warn("stop script", "err", stopErr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "sidepad:", err)
		log.Error("exited", "err", err)
		return 1
	}
	log.Info("exited")
	return 0
}
