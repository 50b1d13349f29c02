package clock

import "sync"

// Subscription receives every frame the driver publishes.
type Subscription struct {
	frames    chan *Frame
	done      chan struct{}
	closeOnce sync.Once
}

func newSubscription(buffer int) *Subscription {
	if buffer < 1 {
		buffer = 16 // Default buffer size
	}
	return &Subscription{
		frames: make(chan *Frame, buffer),
		done:   make(chan struct{}),
	}
}

// send delivers f without blocking.
// If the buffer is full, the oldest frame is dropped.
func (s *Subscription) send(f *Frame) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.frames <- f:
	default:
		select {
		case <-s.frames:
		default:
		}
		select {
		case s.frames <- f:
		default:
		}
	}
}

// Frames returns the channel frames arrive on.
func (s *Subscription) Frames() <-chan *Frame {
	return s.frames
}

// Done returns a channel closed when the subscription ends.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func (s *Subscription) close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}
