package render

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Anchor is the single mutable output region charts are drawn into.
// The lifecycle manager is its only writer.
type Anchor interface {
	io.Writer
	Clear() error
}

// TerminalAnchor renders into a terminal (or any writer). Clear erases
// whatever the anchor wrote since the last clear by moving the cursor
// back up, so successive charts replace each other in place instead of
// scrolling.
type TerminalAnchor struct {
	out   io.Writer
	lock  sync.Mutex
	lines int
}

func NewTerminalAnchor(out io.Writer) *TerminalAnchor {
	return &TerminalAnchor{out: out}
}

func (a *TerminalAnchor) Write(p []byte) (int, error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	a.lines += bytes.Count(p, []byte{'\n'})

	return a.out.Write(p)
}

func (a *TerminalAnchor) Clear() error {
	a.lock.Lock()
	defer a.lock.Unlock()

	if a.lines == 0 {
		return nil
	}

	// cursor to the beginning, N lines up, then erase downwards
	_, err := fmt.Fprintf(a.out, "\x1b[%dF\x1b[J", a.lines)
	a.lines = 0

	return err
}
