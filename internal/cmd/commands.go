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

package cmd

import (
	"flag"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Command holds what every subcommand shares.
type Command struct {
	UI     cli.Ui
	Out    io.Writer
	Logger hclog.Logger
	Config *Config
}

// FlagSet returns an empty flag set that reports parse errors instead of
// exiting. Usage output is left to the command's Help.
func (c *Command) FlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// fail prints err through the UI and returns CommandError.
func (c *Command) fail(err error) int {
	c.UI.Error(err.Error())
	return CommandError
}

func helpText(s string) string {
	return strings.TrimSpace(s)
}

// Commands returns the subcommand factories, all sharing base.
func Commands(base *Command) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"lsp": func() (cli.Command, error) {
			return &LSPCommand{Command: base}, nil
		},
		"ocp": func() (cli.Command, error) {
			return &OCPCommand{Command: base}, nil
		},
		"srp": func() (cli.Command, error) {
			return &SRPCommand{Command: base}, nil
		},
		"isp": func() (cli.Command, error) {
			return &ISPCommand{Command: base}, nil
		},
		"dip": func() (cli.Command, error) {
			return &DIPCommand{Command: base}, nil
		},
	}
}
