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

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"dirpx.dev/dxsolid/dxcore/errors"
	"github.com/hashicorp/go-hclog"
)

// Persistence writes journals to files.
//
// The zero value is ready to use and logs nothing.
type Persistence struct {
	logger hclog.Logger
}

// Option configures a Persistence.
type Option func(*Persistence)

// WithLogger sets the logger used to report writes and skips.
func WithLogger(l hclog.Logger) Option {
	return func(p *Persistence) {
		p.logger = l
	}
}

// NewPersistence returns a Persistence configured by opts.
func NewPersistence(opts ...Option) *Persistence {
	p := &Persistence{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Persistence) log() hclog.Logger {
	if p.logger == nil {
		return hclog.NewNullLogger()
	}
	return p.logger
}

// SaveToFile writes j.String() to path as UTF-8 text.
//
// If overwrite is false and path already exists, nothing is written and
// SaveToFile returns false with a nil error. Otherwise the file is created
// or truncated with mode 0644 and SaveToFile returns true. The write is a
// single call with no locking against concurrent writers.
func (p *Persistence) SaveToFile(j *Journal, path string, overwrite bool) (bool, error) {
	if j == nil {
		return false, &errors.ValidationError{Type: "Persistence", Field: "journal", Reason: "must not be nil"}
	}
	if path == "" {
		return false, &errors.ValidationError{Type: "Persistence", Field: "path", Reason: "must not be empty"}
	}

	logger := p.log().With("journal_id", j.ID().String(), "path", path)

	if !overwrite {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			logger.Debug("file exists, skipping write")
			return false, nil
		case !stderrors.Is(err, fs.ErrNotExist):
			return false, fmt.Errorf("stat %s: %w", path, err)
		}
	}

	if err := os.WriteFile(path, []byte(j.String()), 0o644); err != nil {
		return false, fmt.Errorf("write journal: %w", err)
	}
	logger.Info("journal saved", "entries", j.Len())
	return true, nil
}
