package linenoise

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
)

const clearSeq = "\x1b[H\x1b[2J"

// LineNoise is a line editor with in-memory history that can be persisted
// to a file between sessions.
type LineNoise struct {
	*liner.State
	out io.Writer
}

// New puts the terminal into line editing mode. Close restores it.
func New() *LineNoise {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &LineNoise{State: state, out: os.Stdout}
}

func (ln *LineNoise) HistoryLoad(filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}
	_, err = ln.ReadHistory(bytes.NewReader(content))
	return err
}

func (ln *LineNoise) HistorySave(filepath string) error {
	var buf bytes.Buffer
	_, err := ln.WriteHistory(&buf)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, buf.Bytes(), 0644)
}

func (ln *LineNoise) ClearScreen() error {
	_, err := fmt.Fprint(ln.out, clearSeq)
	return err
}
