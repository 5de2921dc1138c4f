/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cmd implements the dxsolid command line. Each subcommand runs one
// fixed demonstration and prints its results to stdout.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-colorable"
	"github.com/mitchellh/cli"
)

// Exit codes returned by Run.
const (
	CommandSuccess = 0
	CommandError   = 1
)

// RunOptions redirects the streams used by RunCustom.
type RunOptions struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run runs the CLI with os.Stdout and os.Stderr.
func Run(args []string) int {
	return RunCustom(args, nil)
}

// RunCustom runs the CLI with args, which must not include the program
// name.
func RunCustom(args []string, runOpts *RunOptions) int {
	if runOpts == nil {
		runOpts = &RunOptions{}
	}
	if runOpts.Stdout == nil {
		runOpts.Stdout = os.Stdout
	}
	if runOpts.Stderr == nil {
		runOpts.Stderr = os.Stderr
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(runOpts.Stderr, "Error loading configuration: %s\n", err)
		return CommandError
	}

	// Only use color if stdout is a tty and it is not disabled.
	if cfg.NoColor || color.NoColor {
		runOpts.Stdout = colorable.NewNonColorable(runOpts.Stdout)
		runOpts.Stderr = colorable.NewNonColorable(runOpts.Stderr)
	} else {
		if f, ok := runOpts.Stdout.(*os.File); ok {
			runOpts.Stdout = colorable.NewColorable(f)
		}
		if f, ok := runOpts.Stderr.(*os.File); ok {
			runOpts.Stderr = colorable.NewColorable(f)
		}
	}

	ui := &cli.ColoredUi{
		ErrorColor: cli.UiColorRed,
		WarnColor:  cli.UiColorYellow,
		Ui: &cli.BasicUi{
			Writer:      runOpts.Stdout,
			ErrorWriter: runOpts.Stderr,
		},
	}

	level, err := cfg.Level()
	if err != nil {
		ui.Error(err.Error())
		return CommandError
	}

	base := &Command{
		UI:  ui,
		Out: runOpts.Stdout,
		Logger: hclog.New(&hclog.LoggerOptions{
			Name:   "dxsolid",
			Level:  level,
			Output: runOpts.Stderr,
		}),
		Config: cfg,
	}

	c := &cli.CLI{
		Name:       "dxsolid",
		Args:       args,
		Commands:   Commands(base),
		HelpFunc:   cli.BasicHelpFunc("dxsolid"),
		HelpWriter: runOpts.Stderr,
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintf(runOpts.Stderr, "Error executing CLI: %s\n", err.Error())
		return CommandError
	}
	return exitCode
}
