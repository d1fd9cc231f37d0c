package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogFormat(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	Debug(CatRemap, "built remap", "axis", "Rows", "visible", 3)
	require.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2} \[DEBUG\] \[remap\] built remap axis=Rows visible=3\n$`, buf.String())

	buf.Reset()
	Warn(CatMeasure, "odd", "orphan")
	require.Contains(t, buf.String(), "[WARN] [measure] odd orphan=<missing>")

	buf.Reset()
	ErrorErr(CatData, "load failed", errors.New("boom"), "file", "a.csv")
	require.Contains(t, buf.String(), "[ERROR] [data] load failed file=a.csv error=boom")
}

func TestLogLevelsAndEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	SetMinLevel(LevelWarn)
	Info(CatUI, "hidden")
	require.Empty(t, buf.String())
	Error(CatUI, "shown")
	require.Contains(t, buf.String(), "shown")

	buf.Reset()
	SetEnabled(false)
	Error(CatUI, "disabled")
	require.Empty(t, buf.String())
}

func TestLogDisabledByDefault(t *testing.T) {
	SetOutput(nil)
	// must not panic without a logger
	Debug(CatConfig, "nothing")
	SetEnabled(true)
	SetMinLevel(LevelDebug)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := Init(path)
	require.NoError(t, err)
	Info(CatConfig, "loaded", "file", "regrid.yaml")
	cleanup()
	SetOutput(nil)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [config] loaded file=regrid.yaml")
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}
