package display

import "strings"

// Log is the shared report buffer. Blocks are whole formatted results,
// prepended so the newest sits on top. Mutate only from the Context.
type Log struct {
	blocks []string
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{}
}

// Prepend inserts a block at the top of the log.
func (l *Log) Prepend(block string) {
	l.blocks = append([]string{block}, l.blocks...)
}

// Clear discards all blocks.
func (l *Log) Clear() {
	l.blocks = nil
}

// Blocks returns the blocks newest-first.
func (l *Log) Blocks() []string {
	out := make([]string, len(l.blocks))
	copy(out, l.blocks)

	return out
}

// String returns the log contents, newest block first.
func (l *Log) String() string {
	return strings.Join(l.blocks, "")
}
