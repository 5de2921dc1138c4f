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
	"fmt"

	"dirpx.dev/dxsolid/dxcore/model/journal"
	"github.com/mitchellh/cli"
)

var _ cli.Command = (*SRPCommand)(nil)

// SRPCommand keeps a journal and hands it to a separate Persistence to save.
type SRPCommand struct {
	*Command

	flagOut       string
	flagOverwrite bool
}

func (c *SRPCommand) Synopsis() string {
	return "Write journal entries and save them through a separate persistence type"
}

func (c *SRPCommand) Help() string {
	return helpText(`
Usage: dxsolid srp [options]

  Adds two entries to a journal, prints it and saves it to a file.

      $ dxsolid srp -out /tmp/journal.txt -overwrite=false

Options:

  -out=<path>        File to save the journal to. Default: DXSOLID_JOURNAL_PATH,
                     or journal.txt in the temporary directory.
  -overwrite=<bool>  Replace an existing file. Default: DXSOLID_JOURNAL_OVERWRITE,
                     or true.
`)
}

func (c *SRPCommand) Run(args []string) int {
	fs := c.FlagSet("srp")
	fs.StringVar(&c.flagOut, "out", c.Config.JournalPath, "")
	fs.BoolVar(&c.flagOverwrite, "overwrite", c.Config.JournalOverwrite, "")
	if err := fs.Parse(args); err != nil {
		return c.fail(err)
	}

	j := journal.New()
	j.AddEntry("I cried today.")
	j.AddEntry("I ate a bug.")
	fmt.Fprintln(c.Out, j)

	p := journal.NewPersistence(journal.WithLogger(c.Logger.Named("persistence")))
	written, err := p.SaveToFile(j, c.flagOut, c.flagOverwrite)
	if err != nil {
		return c.fail(err)
	}
	if written {
		fmt.Fprintf(c.Out, "Journal saved to %s\n", c.flagOut)
	} else {
		fmt.Fprintf(c.Out, "Journal not saved: %s already exists\n", c.flagOut)
	}
	return CommandSuccess
}
