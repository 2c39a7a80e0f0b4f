package sphere

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrRunning is returned by Start when the animator is already running
var ErrRunning = errors.New("sphere: animator already running")

// FrameFunc is called once per tick. ctx is cancelled when the animator
// stops; hosts that defer the frame to another goroutine must check it
// before drawing.
type FrameFunc func(ctx context.Context)

// Animator is a cancellable fixed-rate frame loop
type Animator struct {
	interval time.Duration
	frame    FrameFunc

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewAnimator creates an animator ticking fps times per second (60 if fps <= 0)
func NewAnimator(fps int, frame FrameFunc) *Animator {
	if fps <= 0 {
		fps = 60
	}
	return &Animator{
		interval: time.Second / time.Duration(fps),
		frame:    frame,
	}
}

// Start begins ticking until ctx is cancelled or Stop is called
func (a *Animator) Start(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cancel != nil {
		return ErrRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.done = make(chan struct{})

	go a.run(ctx, a.done)
	return nil
}

func (a *Animator) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Both cases may be ready at once; cancellation wins
			if ctx.Err() != nil {
				return
			}
			a.frame(ctx)
		}
	}
}

// Running reports whether the loop has been started and not stopped
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancel != nil
}

// Stop cancels the loop and waits for the ticking goroutine to exit.
// No FrameFunc call starts after Stop returns. Must not be called from
// inside the FrameFunc.
func (a *Animator) Stop() {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.cancel, a.done = nil, nil
	a.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
