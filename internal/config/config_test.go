// Copyright 2020 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"cloudeng.io/cmd/duim/internal/config"
)

const simple = `
command: /usr/bin/du
args:
  - -b
length: 40
human_readable: true
format: markdown
top_n: 3
exclusions:
  - /\.cache$
  - ^/tmp/
`

func TestSimple(t *testing.T) {
	cfg, err := config.ParseConfig([]byte(simple))
	if err != nil {
		t.Fatal(err)
	}
	want := config.File{
		Command:       "/usr/bin/du",
		Args:          []string{"-b"},
		Suppress:      []string{"Permission denied"},
		Length:        40,
		HumanReadable: true,
		Format:        "markdown",
		TopN:          3,
		Exclusions:    []string{`/\.cache$`, "^/tmp/"},
	}
	if got := cfg; !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := config.ParseConfig([]byte("suppress: []\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.Command, "du"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Length, 20; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Format, "text"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// An explicitly empty suppress list disables filtering.
	if got, want := len(cfg.Suppress), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	cfg, err = config.ReadConfig(filepath.Join(t.TempDir(), "missing.yml"), false)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg, config.Defaults(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
	if _, err := config.ReadConfig(filepath.Join(t.TempDir(), "missing.yml"), true); err == nil {
		t.Errorf("expected an error for a missing config file")
	}
}

func TestErrors(t *testing.T) {
	for i, tc := range []struct {
		input string
		err   string
	}{
		{"length: -1\n", "invalid length"},
		{"top_n: -1\n", "invalid top_n"},
		{"format: html\n", "unsupported format"},
		{"exclusions: ['(', '[']\n", "failed to compile ("},
		{"unknown: field\n", "not found"},
	} {
		_, err := config.ParseConfig([]byte(tc.input))
		if err == nil || !strings.Contains(err.Error(), tc.err) {
			t.Errorf("%v: missing or unexpected error: %v", i, err)
		}
	}
}

func TestNew(t *testing.T) {
	dir := t.TempDir()
	f := config.Defaults()
	f.Exclusions = []string{"^/x"}
	cfg, err := config.New(f, dir)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.TargetPath, dir; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.BarLength, 20; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Tool.Command, "du"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(cfg.Exclusions), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	wd, _ := os.Getwd()
	cfg, err = config.New(f, "")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.TargetPath, wd; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	for _, target := range []string{filepath.Join(dir, "missing"), file} {
		_, err := config.New(f, target)
		if !errors.Is(err, config.ErrInvalidTarget) {
			t.Errorf("%v: missing or unexpected error: %v", target, err)
		}
	}
}

func TestDocumentation(t *testing.T) {
	got := config.Documentation()
	for _, expected := range []string{
		"YAML configuration file options",
		"the disk usage utility to run",
		"-b for byte counts",
		"regular expressions",
	} {
		if !strings.Contains(got, expected) {
			t.Errorf("documentation does not contain: %q", expected)
		}
	}
}
