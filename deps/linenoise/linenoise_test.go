package linenoise

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	ln := New()
	defer ln.Close()
	ln.AppendHistory(`*1\r\n$4\r\nPING\r\n`)
	ln.AppendHistory("PING")
	require.NoError(t, ln.HistorySave(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "*1\\r\\n$4\\r\\nPING\\r\\n\nPING\n", string(content))

	other := &LineNoise{State: liner.NewLiner()}
	defer other.Close()
	require.NoError(t, other.HistoryLoad(path))

	var buf bytes.Buffer
	_, err = other.WriteHistory(&buf)
	require.NoError(t, err)
	assert.Equal(t, string(content), buf.String())
}

func TestHistoryLoadMissingFile(t *testing.T) {
	ln := New()
	defer ln.Close()
	assert.Error(t, ln.HistoryLoad(filepath.Join(t.TempDir(), "missing")))
}

func TestClearScreen(t *testing.T) {
	var buf bytes.Buffer
	ln := &LineNoise{out: &buf}
	require.NoError(t, ln.ClearScreen())
	assert.Equal(t, clearSeq, buf.String())
}
