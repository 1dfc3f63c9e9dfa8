// Copyright 2020 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package config provides the configuration for a single duim run: the
// values given on the command line merged over those read from an optional
// YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"cloudeng.io/cmdutil/structdoc"
	cerrors "cloudeng.io/errors"
	"gopkg.in/yaml.v2"
)

// ErrInvalidTarget is returned when the target is not an existing directory.
var ErrInvalidTarget = errors.New("invalid target")

const (
	DefaultBarLength = 20
	DefaultCommand   = "du"
	DefaultFormat    = "text"
)

// DefaultSuppress are the diagnostic substrings that are suppressed by
// default.
var DefaultSuppress = []string{"Permission denied"}

// Formats lists the supported report formats.
var Formats = []string{"text", "json", "tsv", "markdown"}

// Tool describes how to invoke the external disk usage utility.
type Tool struct {
	Command  string   // Name or path of the utility.
	Args     []string // Arguments that precede the depth and target arguments.
	Suppress []string // Diagnostic lines containing any of these are dropped.
}

// T represents the configuration for a single run. It is not modified
// once created.
type T struct {
	BarLength     int
	HumanReadable bool
	TargetPath    string
	Format        string
	TopN          int
	Tool          Tool
	Exclusions    []*regexp.Regexp
}

// File represents the contents of the YAML configuration file.
type File struct {
	Command       string   `yaml:"command" cmd:"the disk usage utility to run, defaults to du"`
	Args          []string `yaml:"args" cmd:"additional arguments for the disk usage utility, eg. -b for byte counts with GNU du"`
	Suppress      []string `yaml:"suppress" cmd:"diagnostic lines from the disk usage utility containing any of these strings are not displayed, defaults to Permission denied"`
	Length        int      `yaml:"length" cmd:"bar graph width in characters"`
	HumanReadable bool     `yaml:"human_readable" cmd:"display sizes in K, M, G and T units"`
	Format        string   `yaml:"format" cmd:"report format, one of text, json, tsv or markdown"`
	TopN          int      `yaml:"top_n" cmd:"display only this many of the largest entries, 0 for all"`
	Exclusions    []string `yaml:"exclusions" cmd:"entries whose path matches any of these regular expressions are not displayed"`
}

// Defaults returns the configuration used when no configuration file
// is present.
func Defaults() File {
	return File{
		Command:  DefaultCommand,
		Suppress: append([]string{}, DefaultSuppress...),
		Length:   DefaultBarLength,
		Format:   DefaultFormat,
	}
}

// ReadConfig will read a yaml config from the specified file. A file that
// does not exist is not an error unless mustExist is set, the defaults are
// returned instead.
func ReadConfig(filename string, mustExist bool) (File, error) {
	buf, err := os.ReadFile(os.ExpandEnv(filename))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !mustExist {
			return Defaults(), nil
		}
		return File{}, fmt.Errorf("failed to read config file: %v: %w", filename, err)
	}
	cfg, err := ParseConfig(buf)
	if err != nil {
		return File{}, fmt.Errorf("failed to parse/process config file %v: %w", filename, err)
	}
	return cfg, nil
}

// ParseConfig will parse a yaml config from the supplied byte slice. Fields
// that are not specified take their default values.
func ParseConfig(buf []byte) (File, error) {
	cfg := Defaults()
	cfg.Suppress = nil
	if err := yaml.UnmarshalStrict(buf, &cfg); err != nil {
		return File{}, err
	}
	if cfg.Suppress == nil {
		cfg.Suppress = append([]string{}, DefaultSuppress...)
	}
	if len(cfg.Command) == 0 {
		cfg.Command = DefaultCommand
	}
	if cfg.Length < 0 {
		return File{}, fmt.Errorf("invalid length: %v", cfg.Length)
	}
	if cfg.TopN < 0 {
		return File{}, fmt.Errorf("invalid top_n: %v", cfg.TopN)
	}
	if !isFormat(cfg.Format) {
		return File{}, fmt.Errorf("unsupported format: %q", cfg.Format)
	}
	if _, err := compileExclusions(cfg.Exclusions); err != nil {
		return File{}, err
	}
	return cfg, nil
}

func isFormat(f string) bool {
	for _, v := range Formats {
		if f == v {
			return true
		}
	}
	return false
}

func compileExclusions(exprs []string) ([]*regexp.Regexp, error) {
	regexps := make([]*regexp.Regexp, 0, len(exprs))
	errs := cerrors.M{}
	for _, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			errs.Append(fmt.Errorf("failed to compile %v: %v", expr, err))
			continue
		}
		regexps = append(regexps, re)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return regexps, nil
}

// New creates the configuration for a run over target. If target is
// empty the current working directory is used. ErrInvalidTarget is
// returned if the target is not an existing directory.
func New(f File, target string) (T, error) {
	if len(target) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return T{}, err
		}
		target = wd
	}
	if err := ValidateTarget(target); err != nil {
		return T{}, err
	}
	if f.Length < 0 {
		return T{}, fmt.Errorf("invalid length: %v", f.Length)
	}
	exclusions, err := compileExclusions(f.Exclusions)
	if err != nil {
		return T{}, err
	}
	return T{
		BarLength:     f.Length,
		HumanReadable: f.HumanReadable,
		TargetPath:    target,
		Format:        f.Format,
		TopN:          f.TopN,
		Tool: Tool{
			Command:  f.Command,
			Args:     append([]string{}, f.Args...),
			Suppress: append([]string{}, f.Suppress...),
		},
		Exclusions: exclusions,
	}, nil
}

// ValidateTarget returns an error wrapping ErrInvalidTarget if path
// is not an existing directory.
func ValidateTarget(path string) error {
	fi, err := os.Stat(path)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("%w: '%v' is not a valid directory", ErrInvalidTarget, path)
	}
	return nil
}

// Documentation will return a description of the format of the
// yaml configuration file.
func Documentation() string {
	out := &strings.Builder{}
	desc, err := structdoc.Describe(&File{}, "cmd", "YAML configuration file options\n")
	if err != nil {
		panic(err)
	}
	out.WriteString(desc.Detail)
	out.WriteString(structdoc.FormatFields(0, 2, desc.Fields))
	return out.String()
}
