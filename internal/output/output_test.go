package output_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"userpipe/internal/output"

	"github.com/stretchr/testify/require"
)

func TestWriteToText(t *testing.T) {
	var buf bytes.Buffer
	err := output.WriteTo(&buf, []string{
		"Alice (30, 30s) -> username=alice",
		"Bob (45, 40s) -> username=bob",
	}, output.FormatText)
	require.NoError(t, err)
	require.Equal(t, "Alice (30, 30s) -> username=alice\nBob (45, 40s) -> username=bob\n", buf.String())
}

func TestWriteToTextDefaultsOnEmptyFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.WriteTo(&buf, []string{"a"}, ""))
	require.Equal(t, "a\n", buf.String())
}

func TestWriteToJSON(t *testing.T) {
	var buf bytes.Buffer
	err := output.WriteTo(&buf, []string{"a", "b"}, output.FormatJSON)
	require.NoError(t, err)
	require.JSONEq(t, `{"results":["a","b"],"count":2}`, buf.String())
}

func TestWriteToJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := output.WriteTo(&buf, nil, output.FormatJSON)
	require.NoError(t, err)
	require.JSONEq(t, `{"results":[],"count":0}`, buf.String())
}

func TestWriteToUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, output.WriteTo(&buf, []string{"a"}, "xml"))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, output.Write(path, []string{"a", "b"}, output.FormatText))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "a\nb\n", string(data))
}
