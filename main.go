// Copyright 2020 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cloudeng.io/cmd/duim/internal"
	"cloudeng.io/cmd/duim/internal/config"
	"cloudeng.io/cmd/duim/internal/duquery"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/text/linewrap"
)

const (
	exitOK = iota
	exitFailure
	exitMalformedArgument
)

var errMalformedArgument = errors.New("malformed argument")

type mainFlags struct {
	Length        int    `subcmd:"length,20,bar graph width in characters"`
	HumanReadable bool   `subcmd:"human-readable,false,scale byte sizes into K/M/G/T units"`
	Format        string `subcmd:"format,text,'report format, one of text, json, tsv or markdown'"`
	TopN          int    `subcmd:"top-n,0,'display only this many of the largest entries, 0 for all'"`
	ConfigFile    string `subcmd:"config,$HOME/.duim.yml,configuration file"`
	ConfigDoc     bool   `subcmd:"config-doc,false,describe the configuration file format and exit"`
	ShowConfig    bool   `subcmd:"show-config,false,display the configuration that would be used and exit"`
	Verbose       int    `subcmd:"v,8,'log messages at or above this level, lower values show more debugging output'"`
	LogDir        string `subcmd:"log-dir,,'directory to write log files to, defaults to the system temporary directory'"`
	Stderr        bool   `subcmd:"stderr,false,write log messages to stderr"`
}

const description = `duim displays the disk usage of each of the immediate subdirectories of a
target directory, and of the target itself, together with a bar graph of each
one's share of the total. The sizes are obtained by running du with a depth of
1. Diagnostics from du that indicate that a directory could not be read are
not displayed.`

func newFlagSet(out io.Writer, mf *mainFlags) (*flag.FlagSet, error) {
	program := filepath.Base(os.Args[0])
	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(out)
	if err := flags.RegisterFlagsInStruct(fs, "subcmd", mf, nil, nil); err != nil {
		return nil, err
	}
	fs.IntVar(&mf.Length, "l", mf.Length, "shorthand for --length")
	fs.BoolVar(&mf.HumanReadable, "H", mf.HumanReadable, "shorthand for --human-readable")
	fs.Usage = func() {
		fmt.Fprintf(out, "usage: %s [-l LENGTH] [-H] [TARGET]\n\n", program)
		fmt.Fprintln(out, linewrap.Block(2, 78, description))
		fmt.Fprintf(out, "\n  TARGET\n    \tdirectory to scan (default: current directory)\n")
		fs.PrintDefaults()
	}
	return fs, nil
}

// parseArgs allows flags to follow the target, as in duim /tmp -H.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// configFile returns the configuration file contents with any flags that
// were explicitly set on the command line taking precedence.
func configFile(mf *mainFlags, set map[string]bool) (config.File, error) {
	f, err := config.ReadConfig(mf.ConfigFile, set["config"])
	if err != nil {
		return config.File{}, err
	}
	if set["length"] || set["l"] {
		f.Length = mf.Length
	}
	if set["human-readable"] || set["H"] {
		f.HumanReadable = mf.HumanReadable
	}
	if set["format"] {
		f.Format = mf.Format
	}
	if set["top-n"] {
		f.TopN = mf.TopN
	}
	if err := flags.OneOf(f.Format).Validate(config.DefaultFormat, config.Formats...); err != nil {
		return config.File{}, fmt.Errorf("%w: %v", errMalformedArgument, err)
	}
	if f.Length < 0 {
		return config.File{}, fmt.Errorf("%w: invalid length: %v", errMalformedArgument, f.Length)
	}
	if f.TopN < 0 {
		return config.File{}, fmt.Errorf("%w: invalid top-n: %v", errMalformedArgument, f.TopN)
	}
	return f, nil
}

func configureLogging(mf *mainFlags) {
	internal.Verbosity = slog.Level(mf.Verbose)
	internal.LogDir = mf.LogDir
	if internal.LogDir == "" {
		internal.LogDir = os.TempDir()
	}
	internal.LogStderr = mf.Stderr
}

func mainWrapper(ctx context.Context, args []string, stdout, stderr io.Writer, newQuerier func(config.Tool) duquery.Querier) error {
	var mf mainFlags
	fs, err := newFlagSet(stderr, &mf)
	if err != nil {
		return err
	}
	positional, err := parseArgs(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errMalformedArgument, err)
	}
	if len(positional) > 1 {
		fs.Usage()
		return fmt.Errorf("%w: too many arguments: %v", errMalformedArgument, strings.Join(positional, " "))
	}
	configureLogging(&mf)

	if mf.ConfigDoc {
		configDocumentation(stdout)
		return nil
	}

	f, err := configFile(&mf, explicitFlags(fs))
	if err != nil {
		return err
	}

	if mf.ShowConfig {
		return showConfig(stdout, f)
	}

	var target string
	if len(positional) == 1 {
		target = positional[0]
	}
	cfg, err := config.New(f, target)
	if err != nil {
		internal.Log(ctx, internal.LogError, "configuration", "target", target, "error", err)
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	cmdutil.HandleSignals(cancel, os.Interrupt, os.Kill)
	defer cancel()
	return runReport(ctx, cfg, newQuerier(cfg.Tool), stdout, stderr)
}

func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errMalformedArgument):
		return exitMalformedArgument
	}
	return exitFailure
}

func newCommandQuerier(tool config.Tool) duquery.Querier {
	return duquery.New(tool)
}

func main() {
	err := mainWrapper(context.Background(), os.Args[1:], os.Stdout, os.Stderr, newCommandQuerier)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}
