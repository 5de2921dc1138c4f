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
	"dirpx.dev/dxsolid/dxcore/model/family"
	"github.com/mitchellh/cli"
)

var _ cli.Command = (*DIPCommand)(nil)

// DIPCommand runs Research over a Relationships store.
type DIPCommand struct {
	*Command
}

func (c *DIPCommand) Synopsis() string {
	return "Report John's children through the relationship browser abstraction"
}

func (c *DIPCommand) Help() string {
	return helpText(`
Usage: dxsolid dip

  Registers John as the parent of Chris and of Mary, then runs a research
  that can only query the store through RelationshipBrowser:

      $ dxsolid dip
      John has a child called Chris
      John has a child called Mary
`)
}

func (c *DIPCommand) Run(args []string) int {
	if err := c.FlagSet("dip").Parse(args); err != nil {
		return c.fail(err)
	}

	john := family.Person{Name: "John"}
	var rel family.Relationships
	for _, child := range []family.Person{{Name: "Chris"}, {Name: "Mary"}} {
		if err := rel.AddParentAndChild(john, child); err != nil {
			return c.fail(err)
		}
	}
	c.Logger.Debug("relationships registered", "relations", rel.Len())

	if _, err := family.NewResearch(&rel, c.Out); err != nil {
		return c.fail(err)
	}
	return CommandSuccess
}
