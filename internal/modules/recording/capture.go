package recording

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"
)

const (
	MediumAudio = "audio"
	MediumVideo = "video"
)

// MediaDevice is the platform capability that grants capture streams.
// Granting may block on a user permission prompt.
type MediaDevice interface {
	RequestStream(ctx context.Context, medium string) (MediaStream, error)
}

// MediaStream is one granted capture stream. StopTracks releases the
// underlying device tracks; implementations must tolerate a single call.
type MediaStream interface {
	StopTracks()
}

// Capture is the result of one completed session.
type Capture struct {
	Medium          string
	DurationSeconds int
	Data            []byte
	StartedAt       time.Time
	StoppedAt       time.Time
}

// Session owns at most one active capture at a time. The duration counter
// advances once per Tick; the reported duration is the tick count, not
// whatever the encoder thinks.
type Session struct {
	mu sync.Mutex

	device MediaDevice
	now    func() time.Time

	state    State
	medium   string
	stream   MediaStream
	chunks   [][]byte
	duration int
	started  time.Time
	released bool
}

func NewSession(device MediaDevice) *Session {
	return &Session{
		device: device,
		now:    time.Now,
		state:  StateIdle,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Duration returns the ticks counted so far in the active capture.
func (s *Session) Duration() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duration
}

// Start requests device permission and begins capturing. Starting while a
// session is already active fails with ErrInvalidTransition and leaves the
// active capture untouched. A permission error is terminal for the attempt:
// the session returns to idle and the caller must start again explicitly.
func (s *Session) Start(ctx context.Context, medium string) error {
	if medium != MediumAudio && medium != MediumVideo {
		return fmt.Errorf("unknown capture medium %q", medium)
	}

	s.mu.Lock()
	next, err := transition(s.state, StateRequestingPermission)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	s.mu.Unlock()

	stream, err := s.device.RequestStream(ctx, medium)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Abort may have reset the session while the prompt was pending. The
	// grant is stale: release its tracks and do not start capturing.
	if s.state != StateRequestingPermission {
		if err == nil && stream != nil {
			stream.StopTracks()
		}
		return fmt.Errorf("%w: session reset while awaiting permission", ErrInvalidTransition)
	}

	if err != nil {
		s.state = StateIdle
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}

	next, err = transition(s.state, StateCapturing)
	if err != nil {
		stream.StopTracks()
		return err
	}
	s.state = next
	s.medium = medium
	s.stream = stream
	s.chunks = nil
	s.duration = 0
	s.started = s.now()
	s.released = false
	return nil
}

// Tick advances the duration counter by one whole second. Ticks outside the
// capturing state are ignored.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateCapturing {
		s.duration++
	}
}

// AppendChunk buffers one media chunk. Chunks outside the capturing state
// are dropped.
func (s *Session) AppendChunk(data []byte) {
	if len(data) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateCapturing {
		return
	}
	chunk := make([]byte, len(data))
	copy(chunk, data)
	s.chunks = append(s.chunks, chunk)
}

// Stop finalizes the capture: concatenates buffered chunks, releases the
// device tracks, and returns the completed Capture. Stopping while idle is
// a no-op returning (nil, nil).
func (s *Session) Stop() (*Capture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle {
		return nil, nil
	}

	next, err := transition(s.state, StateFinalizing)
	if err != nil {
		return nil, err
	}
	s.state = next

	var blob bytes.Buffer
	for _, chunk := range s.chunks {
		blob.Write(chunk)
	}

	s.releaseTracksLocked()

	capture := &Capture{
		Medium:          s.medium,
		DurationSeconds: s.duration,
		Data:            blob.Bytes(),
		StartedAt:       s.started,
		StoppedAt:       s.now(),
	}

	s.state = StateIdle
	s.chunks = nil
	s.stream = nil
	s.duration = 0
	return capture, nil
}

// Abort tears down an in-flight capture without producing a result. Tracks
// are still released; aborting while idle is a no-op.
func (s *Session) Abort() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateIdle {
		return
	}
	s.releaseTracksLocked()
	s.state = StateIdle
	s.chunks = nil
	s.stream = nil
	s.duration = 0
}

func (s *Session) releaseTracksLocked() {
	if s.released || s.stream == nil {
		return
	}
	s.stream.StopTracks()
	s.released = true
}

// RunTicker drives Tick once per second until ctx is cancelled. Production
// callers run it in a goroutine for the lifetime of a capture; tests call
// Tick directly.
func (s *Session) RunTicker(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}
