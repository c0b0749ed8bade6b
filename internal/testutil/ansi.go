// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"bytes"
	"regexp"
	"sync"
)

// csiSequence matches ANSI CSI escape sequences such as color codes.
var csiSequence = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripAnsiCodes removes color and cursor escape codes so rendered output
// can be compared with plain text.
func StripAnsiCodes(s string) string {
	return csiSequence.ReplaceAllString(s, "")
}

// SyncBuffer is a bytes.Buffer safe for concurrent writers, used where a
// logger or progress display writes from worker goroutines.
type SyncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write appends p to the buffer.
func (b *SyncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns the buffered text.
func (b *SyncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
