package cmdline

import (
	"io"
	"sync"
)

// stderrCaptureLimit bounds how much standard error is kept for an
// ExecutionError.
const stderrCaptureLimit = 64 << 10

// teeWriter returns an io.MultiWriter over the non-nil writers.
func teeWriter(writers ...io.Writer) io.Writer {
	out := make([]io.Writer, 0, len(writers))
	for _, w := range writers {
		if w != nil {
			out = append(out, w)
		}
	}
	return io.MultiWriter(out...)
}

// tailCapture keeps the last limit bytes written to it.
type tailCapture struct {
	buf   []byte
	limit int
	mu    sync.Mutex
}

func newTailCapture(limit int) *tailCapture {
	return &tailCapture{limit: limit}
}

// Write appends p, discarding the oldest bytes beyond the limit. It never
// fails.
func (tc *tailCapture) Write(p []byte) (int, error) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.buf = append(tc.buf, p...)
	if over := len(tc.buf) - tc.limit; over > 0 {
		tc.buf = append(tc.buf[:0], tc.buf[over:]...)
	}
	return len(p), nil
}

// String returns the captured output.
func (tc *tailCapture) String() string {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return string(tc.buf)
}
