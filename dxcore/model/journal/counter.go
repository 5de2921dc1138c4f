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

package journal

import "go.uber.org/atomic"

// Counter hands out strictly increasing entry ids.
//
// Counter is safe for concurrent use. The zero value starts at 0, so the
// first id it returns is 1.
type Counter struct {
	last atomic.Int64
}

// NewCounter returns a counter whose next id is start+1.
func NewCounter(start int64) *Counter {
	c := &Counter{}
	c.last.Store(start)
	return c
}

// Next returns the next id.
func (c *Counter) Next() int64 {
	return c.last.Inc()
}

// Last returns the most recently issued id, or the start value if none has
// been issued.
func (c *Counter) Last() int64 {
	return c.last.Load()
}

// DefaultCounter numbers the entries of every Journal created with New.
//
// Numbering is therefore process-wide: two journals created with New never
// share an id, and neither starts from 1 once the other has been used. Use
// NewWithCounter for journals that need their own sequence.
var DefaultCounter = &Counter{}
