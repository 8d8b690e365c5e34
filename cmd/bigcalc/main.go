// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dsundin/bigcalc/config"
	"github.com/dsundin/bigcalc/shell"
)

func main() {
	var base string
	var debug bool
	var promptFlag string

	rootCmd := &cobra.Command{
		Use:   "bigcalc [file]",
		Short: "Arbitrary-precision signed integer calculator",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputBase, err := parseBase(base)
			if err != nil {
				return err
			}

			var conf config.Config
			conf.SetBase(config.Decimal, outputBase)
			conf.SetDebug(debug)
			if debug {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
			conf.SetPrompt(promptFlag)

			sh := shell.New(&conf, os.Stdout)

			if len(args) == 0 {
				sh.RunInteractive()
				return nil
			}

			f, err := os.Open(args[0])
			if err != nil {
				fmt.Println("Invalid input file!")
				os.Exit(1)
			}
			defer f.Close()
			sh.RunFile(f)
			return nil
		},
	}

	rootCmd.Flags().StringVar(&base, "base", "dec", "output base: dec, hex, or bin")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "trace evaluated expressions to stderr")
	rootCmd.Flags().StringVar(&promptFlag, "prompt", "", "interactive prompt string")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseBase(s string) (config.Base, error) {
	switch s {
	case "dec", "":
		return config.Decimal, nil
	case "hex":
		return config.Hex, nil
	case "bin":
		return config.Binary, nil
	default:
		return 0, fmt.Errorf("invalid --base value %q: use dec, hex, or bin", s)
	}
}
