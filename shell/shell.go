// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shell drives the read-eval-print loop: it decides whether an
// input line is a command, an incomplete continuation, or a complete
// expression, and renders results in the configured output base.
// Grounded on original_source/main.c's process_and_print/is_unfinished
// pair, with interactive line editing borrowed from the teacher's
// reader pattern (see rcornwell-S370/command/reader/reader.go).
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/peterh/liner"

	"github.com/dsundin/bigcalc/bigint"
	"github.com/dsundin/bigcalc/calc"
	"github.com/dsundin/bigcalc/config"
)

// Shell holds the state of one REPL session: its configuration and
// where results are written.
type Shell struct {
	conf *config.Config
	out  io.Writer
}

// New returns a Shell writing results to out under conf.
func New(conf *config.Config, out io.Writer) *Shell {
	return &Shell{conf: conf, out: out}
}

// RunFile reads whole-file batch input: every non-blank line is echoed
// back prefixed with "> " before being processed. Lines are not joined:
// a line that ends unfinished, including one at end of file, is a
// syntax error rather than a prompt for more input (spec.md §6).
func (sh *Shell) RunFile(r io.Reader) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var accumulated strings.Builder

	flush := func(line string) {
		fmt.Fprintf(sh.out, "> %s\n", line)
	}

	for scanner.Scan() {
		row := scanner.Text()

		if strings.TrimSpace(row) == "quit" {
			fmt.Fprintln(sh.out, "> quit")
			fmt.Fprintln(sh.out, "quit")
			return
		}

		if row == "" && accumulated.Len() == 0 {
			continue
		}

		accumulated.WriteString(row)
		joined := accumulated.String()

		if isUnfinished(joined) {
			flush(joined)
			fmt.Fprintln(sh.out, "Syntax error!")
			accumulated.Reset()
			continue
		}

		flush(joined)
		sh.process(joined)
		accumulated.Reset()
	}
	if err := scanner.Err(); err != nil {
		slog.Error("reading input file", "error", err)
	}

	if accumulated.Len() > 0 {
		joined := accumulated.String()
		flush(joined)
		sh.process(joined)
	}
}

// RunInteractive drives the REPL against a terminal, using liner for
// history and line editing. A continuation prompt ("... ") is shown
// while an expression spans multiple lines; unlike file mode, an
// expression left unfinished just keeps accumulating.
func (sh *Shell) RunInteractive() {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	prompt := sh.conf.Prompt()
	promptFor := func(continuing bool) string {
		if continuing {
			return "... "
		}
		if prompt != "" {
			return prompt
		}
		return "> "
	}

	var accumulated strings.Builder

	for {
		row, err := line.Prompt(promptFor(accumulated.Len() > 0))
		if err != nil {
			if !errors.Is(err, liner.ErrPromptAborted) && !errors.Is(err, io.EOF) {
				slog.Error("reading line", "error", err)
			}
			return
		}
		line.AppendHistory(row)

		if strings.TrimSpace(row) == "quit" {
			fmt.Fprintln(sh.out, "quit")
			return
		}

		accumulated.WriteString(row)
		joined := accumulated.String()

		if isUnfinished(joined) {
			if n := len(joined); n > 0 {
				last := joined[n-1]
				if last != 'x' && last != 'X' && last != 'b' && last != 'B' {
					accumulated.WriteByte(' ')
				}
			}
			continue
		}

		sh.process(joined)
		accumulated.Reset()
	}
}

// process dispatches one complete line: a base-switching command, the
// "out" query, or an expression to evaluate. Grounded on
// process_and_print in original_source/main.c.
func (sh *Shell) process(row string) {
	p := strings.TrimSpace(row)
	if p == "" {
		return
	}

	switch p {
	case "out":
		fmt.Fprintln(sh.out, baseName(sh.conf.OutputBase()))
		return
	case "hex":
		sh.conf.SetOutputBase(config.Hex)
		fmt.Fprintln(sh.out, "hex")
		return
	case "bin":
		sh.conf.SetOutputBase(config.Binary)
		fmt.Fprintln(sh.out, "bin")
		return
	case "dec":
		sh.conf.SetOutputBase(config.Decimal)
		fmt.Fprintln(sh.out, "dec")
		return
	}

	if isAlpha(p[0]) && !containsOperator(p) {
		fmt.Fprintf(sh.out, "Invalid command %q!\n", p)
		return
	}

	result, errorAlreadyPrinted, err := calc.Eval(p)
	if err != nil {
		if !errorAlreadyPrinted {
			fmt.Fprintln(sh.out, "Syntax error!")
		} else {
			fmt.Fprintln(sh.out, userMessage(err))
		}
		return
	}

	if sh.conf.Debug() {
		slog.Debug("evaluated", "expr", p, "result", result.ToDecimal())
	}

	fmt.Fprintln(sh.out, sh.render(result))
}

func (sh *Shell) render(v *bigint.Int) string {
	switch sh.conf.OutputBase() {
	case config.Hex:
		return v.ToHex()
	case config.Binary:
		return v.ToBin()
	default:
		return v.ToDecimal()
	}
}

// userMessage renders an error that already carries a user-facing
// message (division by zero, negative factorial) the way
// original_source/parser.c's apply_operation does.
func userMessage(err error) string {
	switch {
	case errors.Is(err, bigint.ErrDivisionByZero):
		return "Division by zero!"
	case errors.Is(err, bigint.ErrNegativeFactorial):
		return "Input of factorial must not be negative!"
	default:
		return err.Error()
	}
}

func baseName(b config.Base) string {
	switch b {
	case config.Hex:
		return "hex"
	case config.Binary:
		return "bin"
	default:
		return "dec"
	}
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func containsOperator(s string) bool {
	return strings.ContainsAny(s, "+-*/%^()!")
}

// isUnfinished reports whether text ends mid-expression: a trailing
// binary operator or open paren, or a dangling "0x"/"0b" radix prefix.
// Direct translation of is_unfinished in original_source/main.c.
func isUnfinished(text string) bool {
	trimmed := strings.TrimRight(text, " \t\n\r\v\f")
	n := len(trimmed)
	if n == 0 {
		return false
	}

	c := trimmed[n-1]
	if strings.IndexByte("+-*/%^(", c) >= 0 {
		return true
	}

	if (c == 'x' || c == 'X') && n > 1 {
		if trimmed[n-2] == '0' {
			return true
		}
	}

	if (c == 'b' || c == 'B') && n > 1 {
		if trimmed[n-2] == '0' {
			if n == 2 {
				return true
			}
			prevPrev := trimmed[n-3]
			if prevPrev == 'x' || prevPrev == 'X' {
				return false
			}
			if isHexDigitByte(prevPrev) {
				return false
			}
			return true
		}
	}

	return false
}

func isHexDigitByte(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
