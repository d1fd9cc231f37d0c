package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domonda/go-regrid"
)

const peopleCSV = "Name;Age\ncarol;41\nalice;30\nbob;25\n"

// run executes the root command with args
// using a default config file and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, writeDefaultConfig(configPath, false))

	var out bytes.Buffer
	cmd := newRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestShow(t *testing.T) {
	path := writeFile(t, "people.csv", peopleCSV)

	out, err := run(t, "show", path, "--sort", "age")
	require.NoError(t, err)
	assert.Equal(t, "Name |Age\nbob  |25 \nalice|30 \ncarol|41 \n", out)

	out, err = run(t, "show", path, "--sort", "Age:desc", "--hide", "1", "-d", ",")
	require.NoError(t, err)
	assert.Equal(t, "Name \ncarol\nalice\nbob  \n", out)

	out, err = run(t, "show", path, "--filter", "name!=alice", "--sort", "0")
	require.NoError(t, err)
	assert.Equal(t, "Name |Age\nbob  |25 \ncarol|41 \n", out)

	_, err = run(t, "show", path, "--sort", "Height")
	require.ErrorContains(t, err, `unknown column "Height"`)

	_, err = run(t, "show", path, "--filter", "Name")
	require.ErrorContains(t, err, "expected column=value")

	_, err = run(t, "show", filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorContains(t, err, "file not found")
}

func TestExport(t *testing.T) {
	path := writeFile(t, "people.csv", peopleCSV)

	out, err := run(t, "export", path, "--sort", "Name", "--separator", ",")
	require.NoError(t, err)
	assert.Equal(t, "Name,Age\r\nalice,30\r\nbob,25\r\ncarol,41\r\n", out)

	out, err = run(t, "export", path, "-f", "html", "--sort", "Name", "--select", "0,0", "--caption", "People")
	require.NoError(t, err)
	assert.Contains(t, out, "<caption>People</caption>")
	assert.Contains(t, out, "<td class='primary'>alice</td>")

	output := filepath.Join(t.TempDir(), "people.html")
	_, err = run(t, "export", path, "--format", "HTML", "--select", "row:2", "-o", output)
	require.NoError(t, err)
	html, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(html), "<tr class='selected'>"))

	_, err = run(t, "export", path, "--format", "json")
	require.ErrorContains(t, err, "unsupported format")

	_, err = run(t, "export", path, "--select", "col:5")
	require.ErrorIs(t, err, regrid.ErrIndexOutOfRange)

	_, err = run(t, "export", path, "--select", "1")
	require.ErrorContains(t, err, "expected R,C")
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new", "config.yaml")

	var out bytes.Buffer
	cmd := newRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "init", "--config", path})
	require.NoError(t, cmd.Execute())
	assert.FileExists(t, path)

	out.Reset()
	cmd = newRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "show", "--config", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "row_measure: fixed")
	assert.Contains(t, out.String(), "watch_debounce: 500ms")
}
