package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Gate acquires lines of operator input with a caller-specified deadline.
//
// Each AwaitLine call races one fresh reader goroutine against a timer.
// A goroutine that loses the race is abandoned, not cancelled: it keeps
// ownership of the underlying reader until its blocking read completes,
// and the line it eventually reads is discarded. A later AwaitLine call
// always binds to its own goroutine and channel, so a stale result can
// never be delivered to it.
type Gate struct {
	out    io.Writer
	reader *bufio.Reader
	marker string

	// mu serializes reader access between an abandoned worker and the
	// next call's worker.
	mu sync.Mutex
}

// Option configures a Gate.
type Option func(*Gate)

// WithMarker sets the prompt marker written before each blocking read.
func WithMarker(marker string) Option {
	return func(g *Gate) { g.marker = marker }
}

// New creates a Gate reading from in and writing prompt markers to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Gate {
	g := &Gate{
		out:    out,
		reader: bufio.NewReader(in),
		marker: "> ",
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type readResult struct {
	line string
	err  error
}

// AwaitLine blocks for one line of input up to timeout. An empty line is
// valid input. Deadline expiry, context cancellation, and lower-level I/O
// faults all yield ErrTimeout: the calling state machine cannot usefully
// tell them apart, and none of them is recoverable within the stage.
func (g *Gate) AwaitLine(ctx context.Context, timeout time.Duration) (string, error) {
	if g.marker != "" {
		fmt.Fprint(g.out, g.marker)
	}

	// Capacity 1 so an abandoned worker completes without blocking.
	ch := make(chan readResult, 1)
	go g.read(ch)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.err != nil {
			return "", ErrTimeout
		}
		return res.line, nil
	case <-timer.C:
		return "", ErrTimeout
	case <-ctx.Done():
		return "", ErrTimeout
	}
}

func (g *Gate) read(ch chan<- readResult) {
	g.mu.Lock()
	defer g.mu.Unlock()

	line, err := g.reader.ReadString('\n')
	if err != nil && line == "" {
		ch <- readResult{err: err}
		return
	}
	ch <- readResult{line: strings.TrimRight(line, "\r\n")}
}
