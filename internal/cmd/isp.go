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
	stderrors "errors"
	"fmt"

	"dirpx.dev/dxsolid/dxcore/errors"
	"dirpx.dev/dxsolid/dxcore/model/device"
	"github.com/mitchellh/cli"
)

var _ cli.Command = (*ISPCommand)(nil)

// ISPCommand contrasts the fat Machine interface with devices composed from
// single capabilities.
type ISPCommand struct {
	*Command
}

func (c *ISPCommand) Synopsis() string {
	return "Drive a fat machine interface and a device composed of capabilities"
}

func (c *ISPCommand) Help() string {
	return helpText(`
Usage: dxsolid isp

  Sends one document through every Machine operation of a multifunction
  printer and of an old printer that can only print, then through a
  multifunction device assembled from a separate printer and scanner.
`)
}

func (c *ISPCommand) Run(args []string) int {
	if err := c.FlagSet("isp").Parse(args); err != nil {
		return c.fail(err)
	}

	doc := device.Document{Name: "report.txt", Body: "quarterly numbers"}

	machines := []device.Machine{
		&device.MultiFunctionPrinter{Recorder: device.Recorder{Label: "multifunction printer", Out: c.Out}},
		&device.OldPrinter{Recorder: device.Recorder{Label: "old printer", Out: c.Out}},
	}
	for _, m := range machines {
		for _, op := range []func(device.Document) error{m.Print, m.Scan, m.Fax} {
			err := op(doc)
			var unsupported *errors.UnsupportedError
			switch {
			case err == nil:
			case stderrors.As(err, &unsupported):
				fmt.Fprintln(c.Out, unsupported.Error())
			default:
				return c.fail(err)
			}
		}
	}

	mfd, err := device.NewMultifunctionDevice(
		&device.Recorder{Label: "printer", Out: c.Out},
		&device.Recorder{Label: "scanner", Out: c.Out},
	)
	if err != nil {
		return c.fail(err)
	}
	if err := mfd.Print(doc); err != nil {
		return c.fail(err)
	}
	if err := mfd.Scan(doc); err != nil {
		return c.fail(err)
	}
	return CommandSuccess
}
