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

package family

import (
	"fmt"
	"io"

	"dirpx.dev/dxsolid/dxcore/errors"
)

// DefaultSubject is the person NewResearch asks about.
const DefaultSubject = "John"

// Research reports the children of a person using only a
// RelationshipBrowser.
type Research struct {
	browser  RelationshipBrowser
	out      io.Writer
	findings []Person
}

// NewResearch builds a Research over browser and immediately investigates
// DefaultSubject, writing "John has a child called <name>" to out for each
// child found. A nil out discards the report.
//
// A nil browser yields a *errors.ValidationError.
func NewResearch(browser RelationshipBrowser, out io.Writer) (*Research, error) {
	if browser == nil {
		return nil, &errors.ValidationError{
			Type:   "Research",
			Field:  "browser",
			Reason: "must not be nil",
		}
	}
	if out == nil {
		out = io.Discard
	}

	r := &Research{browser: browser, out: out}
	if _, err := r.Investigate(DefaultSubject); err != nil {
		return nil, err
	}
	return r, nil
}

// Investigate reports the children of name and adds them to Findings.
func (r *Research) Investigate(name string) ([]Person, error) {
	children := r.browser.FindAllChildrenOf(name)
	for _, child := range children {
		if _, err := fmt.Fprintf(r.out, "%s has a child called %s\n", name, child.Name); err != nil {
			return nil, fmt.Errorf("report child of %s: %w", name, err)
		}
	}
	r.findings = append(r.findings, children...)
	return children, nil
}

// Findings returns every child reported so far, in report order.
func (r *Research) Findings() []Person {
	out := make([]Person, len(r.findings))
	copy(out, r.findings)
	return out
}
