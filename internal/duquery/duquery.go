// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package duquery runs an external disk usage utility, such as du, to
// obtain the size of a directory and each of its immediate children.
// Filesystem traversal is left entirely to the utility.
package duquery

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"unicode"

	"cloudeng.io/cmd/duim/internal"
	"cloudeng.io/cmd/duim/internal/config"
)

// ErrToolUnavailable is returned when the disk usage utility cannot be run.
var ErrToolUnavailable = errors.New("disk usage utility unavailable")

// Querier represents a depth-limited disk usage query. Lines are the
// non-empty lines written to stdout by the query and diagnostics the
// lines written to stderr that were not suppressed.
type Querier interface {
	Query(ctx context.Context, path string) (lines, diagnostics []string, err error)
}

// Command is a Querier that runs an external utility with arguments
// requesting a depth of 1.
type Command struct {
	tool config.Tool
}

// New returns a Command for the specified tool.
func New(tool config.Tool) *Command {
	if len(tool.Command) == 0 {
		tool.Command = config.DefaultCommand
	}
	return &Command{tool: tool}
}

// Args returns the arguments used to query path.
func (c *Command) Args(path string) []string {
	args := make([]string, 0, len(c.tool.Args)+3)
	args = append(args, c.tool.Args...)
	return append(args, "-d", "1", path)
}

// Query implements Querier. A non-zero exit status from the utility is
// not treated as an error since du exits with a non-zero status when it
// encounters unreadable directories, which is common.
func (c *Command) Query(ctx context.Context, path string) (lines, diagnostics []string, err error) {
	args := c.Args(path)
	internal.Log(ctx, internal.LogQuery, "query", "command", c.tool.Command, "args", args)
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.tool.Command, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, ctxErr
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			internal.Log(ctx, internal.LogError, "failed to run", "command", c.tool.Command, "error", err)
			return nil, nil, fmt.Errorf("%w: %v: %v", ErrToolUnavailable, c.tool.Command, err)
		}
		internal.Log(ctx, internal.LogProgress, "non-zero exit status", "command", c.tool.Command, "status", exitErr.ExitCode())
	}
	lines = SplitLines(&stdout)
	diagnostics = Filter(SplitLines(&stderr), c.tool.Suppress)
	internal.Log(ctx, internal.LogQuery, "query done", "lines", len(lines), "diagnostics", len(diagnostics))
	return lines, diagnostics, nil
}

// SplitLines returns the non-empty lines read from rd with trailing
// whitespace removed.
func SplitLines(rd io.Reader) []string {
	var lines []string
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		l := strings.TrimRightFunc(sc.Text(), unicode.IsSpace)
		if len(l) == 0 {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// Filter returns the lines that do not contain any of the suppress
// strings.
func Filter(lines []string, suppress []string) []string {
	var out []string
next:
	for _, l := range lines {
		for _, s := range suppress {
			if len(s) > 0 && strings.Contains(l, s) {
				continue next
			}
		}
		out = append(out, l)
	}
	return out
}

// Forward writes the diagnostics, newline separated, to w.
func Forward(w io.Writer, diagnostics []string) error {
	if len(diagnostics) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(diagnostics, "\n")+"\n")
	return err
}
