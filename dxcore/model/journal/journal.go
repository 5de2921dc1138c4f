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

// Package journal illustrates the single responsibility principle.
//
// Journal only keeps entries. Writing a journal to disk is the job of
// Persistence, so storage concerns (paths, overwrite policy, logging) never
// leak into the type that manages entries.
//
// Entry ids come from a Counter. Journals created with New share
// DefaultCounter, making numbering global across journals; NewWithCounter
// accepts an explicit counter instead.
package journal

import (
	"encoding/json"
	"strconv"
	"strings"

	"dirpx.dev/dxsolid/dxcore/errors"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Entry is one journal line.
type Entry struct {
	ID   int64  `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

// String renders the entry as "{id}: {text}".
func (e Entry) String() string {
	return strconv.FormatInt(e.ID, 10) + ": " + e.Text
}

// Journal is an ordered, in-memory list of entries.
//
// Journal is not safe for concurrent mutation.
type Journal struct {
	id      uuid.UUID
	counter *Counter
	entries []Entry
}

// New returns an empty journal numbered by DefaultCounter.
func New() *Journal {
	return NewWithCounter(DefaultCounter)
}

// NewWithCounter returns an empty journal numbered by c. A nil c falls back
// to DefaultCounter.
func NewWithCounter(c *Counter) *Journal {
	if c == nil {
		c = DefaultCounter
	}
	return &Journal{id: uuid.New(), counter: c}
}

// ID identifies the journal instance in logs.
func (j *Journal) ID() uuid.UUID {
	return j.id
}

// AddEntry appends text under the next counter id and returns that id.
func (j *Journal) AddEntry(text string) int64 {
	id := j.counter.Next()
	j.entries = append(j.entries, Entry{ID: id, Text: text})
	return id
}

// RemoveEntry removes the entry at position index.
//
// Positions are zero-based and refer to the current order; ids of the
// remaining entries do not change. An invalid index yields a
// *errors.RangeError and leaves the journal untouched.
func (j *Journal) RemoveEntry(index int) error {
	if index < 0 || index >= len(j.entries) {
		return &errors.RangeError{Type: "Journal", Index: index, Len: len(j.entries)}
	}
	j.entries = append(j.entries[:index], j.entries[index+1:]...)
	return nil
}

// Len returns the number of entries.
func (j *Journal) Len() int {
	return len(j.entries)
}

// Entries returns a copy of the entries in insertion order.
func (j *Journal) Entries() []Entry {
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// String joins the rendered entries with newlines.
func (j *Journal) String() string {
	lines := make([]string, len(j.entries))
	for i, e := range j.entries {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}

// MarshalJSON encodes the journal as its list of entries.
func (j *Journal) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.Entries())
}

// MarshalYAML encodes the journal as its list of entries.
func (j *Journal) MarshalYAML() (any, error) {
	return j.Entries(), nil
}

var (
	_ json.Marshaler = (*Journal)(nil)
	_ yaml.Marshaler = (*Journal)(nil)
)
