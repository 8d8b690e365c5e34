// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the small set of settings shared between the
// shell and the evaluator: the prompt string, the debug trace flag,
// and the input/output number base. Trimmed from the teacher's
// config.Config down to what this calculator needs: no format
// strings, no array origin, no random source.
package config

// Base identifies a literal/output radix.
type Base int

const (
	Decimal Base = 10
	Hex     Base = 16
	Binary  Base = 2
)

// A Config holds the configuration of one shell session. The zero
// value is a usable default: decimal in, decimal out, prompt off,
// debug off.
type Config struct {
	prompt     string
	debug      bool
	inputBase  Base
	outputBase Base
}

// Prompt returns the configured prompt string, or "" if none is set.
// Nil-receiver safe so a *Config obtained before initialization still
// answers sensibly, matching the teacher's nil-receiver getters.
func (c *Config) Prompt() string {
	if c == nil {
		return ""
	}
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Debug reports whether postfix-trace diagnostics are enabled.
func (c *Config) Debug() bool {
	if c == nil {
		return false
	}
	return c.debug
}

func (c *Config) SetDebug(state bool) {
	c.debug = state
}

// InputBase reports the stored input base. The evaluator does not
// consult it: bare (unprefixed) literals are always parsed as decimal,
// and 0x/0X and 0b/0B literals carry their own radix.
func (c *Config) InputBase() Base {
	if c == nil || c.inputBase == 0 {
		return Decimal
	}
	return c.inputBase
}

// OutputBase reports the base results are rendered in.
func (c *Config) OutputBase() Base {
	if c == nil || c.outputBase == 0 {
		return Decimal
	}
	return c.outputBase
}

func (c *Config) SetInputBase(b Base) {
	c.inputBase = b
}

func (c *Config) SetOutputBase(b Base) {
	c.outputBase = b
}

// SetBase sets both bases at once, mirroring the teacher's
// two-argument SetBase.
func (c *Config) SetBase(input, output Base) {
	c.inputBase = input
	c.outputBase = output
}
