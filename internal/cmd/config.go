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
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every configuration variable name.
const EnvPrefix = "DXSOLID"

// Config is read from DXSOLID_* environment variables. Command flags take
// precedence over it.
type Config struct {
	// LogLevel is one of trace, debug, info, warn, error or off.
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`

	// JournalPath is where srp saves the journal. Empty means
	// journal.txt in the system temporary directory.
	JournalPath string `envconfig:"JOURNAL_PATH"`

	// JournalOverwrite replaces an existing journal file when true.
	JournalOverwrite bool `envconfig:"JOURNAL_OVERWRITE" default:"true"`

	// NoColor disables colored error output.
	NoColor bool `envconfig:"NO_COLOR"`
}

// LoadConfig reads Config from the environment and fills derived defaults.
//
// If DXSOLID_ENV_FILE names a dotenv file, its variables are loaded first.
// Variables already set in the environment win over the file.
func LoadConfig() (*Config, error) {
	if path := os.Getenv(EnvPrefix + "_ENV_FILE"); path != "" {
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	var c Config
	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return nil, err
	}
	if c.JournalPath == "" {
		c.JournalPath = filepath.Join(os.TempDir(), "journal.txt")
	}
	return &c, nil
}

// Level parses LogLevel.
func (c *Config) Level() (hclog.Level, error) {
	level := hclog.LevelFromString(c.LogLevel)
	if level == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf("invalid %s_LOG_LEVEL %q", EnvPrefix, c.LogLevel)
	}
	return level, nil
}
