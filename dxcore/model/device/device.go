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

// Package device illustrates the interface segregation principle.
//
// Machine is the fat interface: every implementation must print, scan and
// fax, so OldPrinter is forced to carry Scan and Fax methods that can only
// fail. Printer, Scanner and Fax are the segregated capabilities; a type
// implements only what it can do, and MultifunctionDevice composes two of
// them by delegation.
package device

import "dirpx.dev/dxsolid/dxcore/errors"

// Document is the unit of work handed to every capability.
type Document struct {
	Name string
	Body string
}

// Machine is the fat interface. Prefer the single-method capabilities below.
type Machine interface {
	Print(d Document) error
	Scan(d Document) error
	Fax(d Document) error
}

// Printer prints documents.
type Printer interface {
	Print(d Document) error
}

// Scanner scans documents.
type Scanner interface {
	Scan(d Document) error
}

// Fax faxes documents.
type Fax interface {
	Fax(d Document) error
}

// MultifunctionDevice can both print and scan.
type MultifunctionDevice interface {
	Printer
	Scanner
}

// PrinterFunc adapts a function to Printer.
type PrinterFunc func(d Document) error

// Print calls f(d).
func (f PrinterFunc) Print(d Document) error { return f(d) }

// ScannerFunc adapts a function to Scanner.
type ScannerFunc func(d Document) error

// Scan calls f(d).
func (f ScannerFunc) Scan(d Document) error { return f(d) }

// FaxFunc adapts a function to Fax.
type FaxFunc func(d Document) error

// Fax calls f(d).
func (f FaxFunc) Fax(d Document) error { return f(d) }

// composite is the MultifunctionDevice returned by NewMultifunctionDevice.
type composite struct {
	printer Printer
	scanner Scanner
}

// NewMultifunctionDevice returns a device that delegates Print to printer and
// Scan to scanner.
//
// The device does not own its collaborators; it only holds references to
// them. A nil printer or scanner yields a *errors.ValidationError naming the
// missing parameter.
func NewMultifunctionDevice(printer Printer, scanner Scanner) (MultifunctionDevice, error) {
	if printer == nil {
		return nil, &errors.ValidationError{
			Type:   "MultifunctionDevice",
			Field:  "printer",
			Reason: "must not be nil",
		}
	}
	if scanner == nil {
		return nil, &errors.ValidationError{
			Type:   "MultifunctionDevice",
			Field:  "scanner",
			Reason: "must not be nil",
		}
	}
	return &composite{printer: printer, scanner: scanner}, nil
}

func (c *composite) Print(d Document) error {
	return c.printer.Print(d)
}

func (c *composite) Scan(d Document) error {
	return c.scanner.Scan(d)
}

var (
	_ Printer             = PrinterFunc(nil)
	_ Scanner             = ScannerFunc(nil)
	_ Fax                 = FaxFunc(nil)
	_ MultifunctionDevice = (*composite)(nil)
)
