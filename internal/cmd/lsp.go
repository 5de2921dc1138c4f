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

	"dirpx.dev/dxsolid/dxcore/model/shape"
	"github.com/mitchellh/cli"
)

var _ cli.Command = (*LSPCommand)(nil)

// LSPCommand computes areas through the Shape contract.
type LSPCommand struct {
	*Command
}

func (c *LSPCommand) Synopsis() string {
	return "Compute the area of a rectangle and a square through one Shape contract"
}

func (c *LSPCommand) Help() string {
	return helpText(`
Usage: dxsolid lsp

  Builds a 2x3 rectangle, then a square whose width is set to 2 through the
  Shape interface, and prints the area of each:

      $ dxsolid lsp
      Width: 2, Height: 3 has Area: 6
      Width: 2, Height: 2 has Area: 4
`)
}

func (c *LSPCommand) Run(args []string) int {
	if err := c.FlagSet("lsp").Parse(args); err != nil {
		return c.fail(err)
	}

	var rc shape.Shape = shape.NewRectangle(2, 3)
	fmt.Fprintf(c.Out, "%s has Area: %d\n", rc, shape.Area(rc))

	var sq shape.Shape = shape.NewSquare(0)
	sq.SetWidth(2)
	fmt.Fprintf(c.Out, "%s has Area: %d\n", sq, shape.Area(sq))

	c.Logger.Debug("lsp done")
	return CommandSuccess
}
