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

package device

import (
	"fmt"
	"io"

	"dirpx.dev/dxsolid/dxcore/errors"
)

// Recorder handles documents by recording them and, if Out is set, writing
// one line per operation to Out.
//
// A Recorder implements every capability, which makes it a convenient
// provider for NewMultifunctionDevice as well as a Machine.
type Recorder struct {
	// Label prefixes every line written to Out.
	Label string

	// Out receives a line per handled document. May be nil.
	Out io.Writer

	Printed []Document
	Scanned []Document
	Faxed   []Document
}

// Print records d in Printed and reports it to Out.
func (r *Recorder) Print(d Document) error {
	r.Printed = append(r.Printed, d)
	return r.report("printed", d)
}

// Scan records d in Scanned and reports it to Out.
func (r *Recorder) Scan(d Document) error {
	r.Scanned = append(r.Scanned, d)
	return r.report("scanned", d)
}

// Fax records d in Faxed and reports it to Out.
func (r *Recorder) Fax(d Document) error {
	r.Faxed = append(r.Faxed, d)
	return r.report("faxed", d)
}

func (r *Recorder) report(verb string, d Document) error {
	if r.Out == nil {
		return nil
	}
	_, err := fmt.Fprintf(r.Out, "%s %s %s\n", r.Label, verb, d.Name)
	return err
}

// MultiFunctionPrinter implements the whole Machine, which it can do
// honestly because it has all three capabilities.
type MultiFunctionPrinter struct {
	Recorder
}

// OldPrinter can only print, yet Machine forces it to provide Scan and Fax.
// Those return *errors.UnsupportedError.
type OldPrinter struct {
	Recorder
}

// Scan always fails: an OldPrinter cannot scan.
func (p *OldPrinter) Scan(Document) error {
	return &errors.UnsupportedError{Type: "OldPrinter", Operation: "Scan"}
}

// Fax always fails: an OldPrinter cannot fax.
func (p *OldPrinter) Fax(Document) error {
	return &errors.UnsupportedError{Type: "OldPrinter", Operation: "Fax"}
}

var (
	_ Machine = (*Recorder)(nil)
	_ Machine = (*MultiFunctionPrinter)(nil)
	_ Machine = (*OldPrinter)(nil)
)
