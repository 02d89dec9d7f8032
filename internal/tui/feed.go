package tui

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*Feed)(nil)

// Feed is an in-process progrock.Writer whose updates can be read back in
// order. Writes never block, so a closed or slow reader cannot stall a run.
type Feed struct {
	mu      sync.Mutex
	pending []*progrock.StatusUpdate
	closed  bool
	notify  chan struct{}
}

// NewFeed creates an empty Feed.
func NewFeed() *Feed {
	return &Feed{notify: make(chan struct{}, 1)}
}

// WriteStatus queues an update. Updates written after Close are dropped.
func (f *Feed) WriteStatus(update *progrock.StatusUpdate) error {
	f.mu.Lock()
	if !f.closed {
		f.pending = append(f.pending, update)
	}
	f.mu.Unlock()
	f.wake()
	return nil
}

// Close ends the feed. Pending updates are still delivered before Read returns io.EOF.
func (f *Feed) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	f.wake()
	return nil
}

// Read blocks until an update is available or the feed is closed and drained.
func (f *Feed) Read() (*progrock.StatusUpdate, error) {
	for {
		f.mu.Lock()
		if len(f.pending) > 0 {
			update := f.pending[0]
			f.pending[0] = nil
			f.pending = f.pending[1:]
			f.mu.Unlock()
			return update, nil
		}
		closed := f.closed
		f.mu.Unlock()
		if closed {
			return nil, io.EOF
		}
		<-f.notify
	}
}

func (f *Feed) wake() {
	select {
	case f.notify <- struct{}{}:
	default:
	}
}
