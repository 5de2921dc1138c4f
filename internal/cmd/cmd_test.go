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
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = RunCustom(args, &RunOptions{Stdout: &out, Stderr: &errOut})
	return code, out.String(), errOut.String()
}

func TestLSP(t *testing.T) {
	code, out, _ := run(t, "lsp")
	require.Equal(t, CommandSuccess, code)
	assert.Equal(t, "Width: 2, Height: 3 has Area: 6\nWidth: 2, Height: 2 has Area: 4\n", out)
}

func TestOCP_DefaultCatalog(t *testing.T) {
	code, out, _ := run(t, "ocp")
	require.Equal(t, CommandSuccess, code)
	assert.Equal(t, strings.Join([]string{
		"Green products (old):",
		"- apple is green.",
		"- tree is green.",
		"Green products (new):",
		"- apple is green.",
		"- tree is green.",
		"Red and yuge products (new):",
		"- house is red and yuge.",
		"",
	}, "\n"), out)
}

func TestOCP_CatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- name: lime
  color: green
  size: medium
- name: barn
  color: red
  size: yuge
`), 0o644))

	code, out, _ := run(t, "ocp", "-catalog", path, "-format", "json")
	require.Equal(t, CommandSuccess, code)
	assert.Contains(t, out, `{"name":"lime","color":"green","size":"medium"}`)
	assert.Contains(t, out, `{"name":"barn","color":"red","size":"yuge"}`)
}

func TestOCP_Errors(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("- name: \"\"\n  color: purple\n  size: small\n"), 0o644))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad format", []string{"ocp", "-format", "xml"}, "invalid output format: xml"},
		{"missing file", []string{"ocp", "-catalog", filepath.Join(t.TempDir(), "nope.yaml")}, "read catalog"},
		{"invalid catalog", []string{"ocp", "-catalog", bad}, "catalog[0]"},
		{"unknown flag", []string{"ocp", "-nope"}, "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := run(t, tt.args...)
			assert.Equal(t, CommandError, code)
			assert.Contains(t, errOut, tt.want)
		})
	}
}

func TestSRP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.txt")

	code, out, _ := run(t, "srp", "-out", path)
	require.Equal(t, CommandSuccess, code)

	entries := regexp.MustCompile(`(?m)^\d+: I cried today\.\n\d+: I ate a bug\.$`)
	assert.Regexp(t, entries, out)
	assert.Contains(t, out, "Journal saved to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Regexp(t, entries, string(data))
}

func TestSRP_NoOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.txt")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o644))

	code, out, _ := run(t, "srp", "-out", path, "-overwrite=false")
	require.Equal(t, CommandSuccess, code)
	assert.Contains(t, out, "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestSRP_ConfigFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.txt")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o644))
	t.Setenv("DXSOLID_JOURNAL_PATH", path)
	t.Setenv("DXSOLID_JOURNAL_OVERWRITE", "false")
	t.Setenv("DXSOLID_LOG_LEVEL", "debug")

	code, out, errOut := run(t, "srp")
	require.Equal(t, CommandSuccess, code)
	assert.Contains(t, out, path+" already exists")
	assert.Contains(t, errOut, "file exists, skipping write")

	code, out, _ = run(t, "srp", "-overwrite")
	require.Equal(t, CommandSuccess, code)
	assert.Contains(t, out, "Journal saved to "+path)
}

func TestISP(t *testing.T) {
	code, out, _ := run(t, "isp")
	require.Equal(t, CommandSuccess, code)
	assert.Equal(t, strings.Join([]string{
		"multifunction printer printed report.txt",
		"multifunction printer scanned report.txt",
		"multifunction printer faxed report.txt",
		"old printer printed report.txt",
		"dxsolid: OldPrinter does not support Scan",
		"dxsolid: OldPrinter does not support Fax",
		"printer printed report.txt",
		"scanner scanned report.txt",
		"",
	}, "\n"), out)
}

func TestDIP(t *testing.T) {
	code, out, _ := run(t, "dip")
	require.Equal(t, CommandSuccess, code)
	assert.Equal(t, "John has a child called Chris\nJohn has a child called Mary\n", out)
}

func TestRun_InvalidLogLevel(t *testing.T) {
	t.Setenv("DXSOLID_LOG_LEVEL", "loud")
	code, _, errOut := run(t, "lsp")
	assert.Equal(t, CommandError, code)
	assert.Contains(t, errOut, "DXSOLID_LOG_LEVEL")
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, hclog.Warn, level)
	assert.True(t, cfg.JournalOverwrite)
	assert.Equal(t, filepath.Join(os.TempDir(), "journal.txt"), cfg.JournalPath)
}

func TestCommands_HaveHelp(t *testing.T) {
	for name, factory := range Commands(&Command{}) {
		t.Run(name, func(t *testing.T) {
			c, err := factory()
			require.NoError(t, err)
			assert.NotEmpty(t, c.Synopsis())
			assert.Contains(t, c.Help(), "Usage: dxsolid "+name)
		})
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dxsolid.env")
	require.NoError(t, os.WriteFile(path, []byte("DXSOLID_LOG_LEVEL=error\nDXSOLID_JOURNAL_OVERWRITE=false\n"), 0o644))
	t.Setenv("DXSOLID_ENV_FILE", path)
	t.Setenv("DXSOLID_JOURNAL_OVERWRITE", "true")
	t.Cleanup(func() { os.Unsetenv("DXSOLID_LOG_LEVEL") })

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.JournalOverwrite, "environment wins over the file")
}

func TestLoadConfig_MissingEnvFile(t *testing.T) {
	t.Setenv("DXSOLID_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "load env file")
}
