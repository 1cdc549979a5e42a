package recording

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStream struct {
	stops int
}

func (f *fakeStream) StopTracks() { f.stops++ }

type fakeDevice struct {
	stream *fakeStream
	err    error
	grants int
}

func (f *fakeDevice) RequestStream(_ context.Context, _ string) (MediaStream, error) {
	f.grants++
	if f.err != nil {
		return nil, f.err
	}
	return f.stream, nil
}

func TestStartTransitionsToCapturing(t *testing.T) {
	dev := &fakeDevice{stream: &fakeStream{}}
	s := NewSession(dev)

	require.NoError(t, s.Start(context.Background(), MediumAudio))
	assert.Equal(t, StateCapturing, s.State())
	assert.Equal(t, 0, s.Duration())
	assert.Equal(t, 1, dev.grants)
}

func TestStartWhileCapturingRejected(t *testing.T) {
	dev := &fakeDevice{stream: &fakeStream{}}
	s := NewSession(dev)
	require.NoError(t, s.Start(context.Background(), MediumVideo))
	s.Tick()
	s.Tick()

	err := s.Start(context.Background(), MediumAudio)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// The active capture is untouched.
	assert.Equal(t, StateCapturing, s.State())
	assert.Equal(t, 2, s.Duration())
	assert.Equal(t, 1, dev.grants)
}

func TestPermissionDeniedReturnsToIdle(t *testing.T) {
	dev := &fakeDevice{err: errors.New("user dismissed prompt")}
	s := NewSession(dev)

	err := s.Start(context.Background(), MediumAudio)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Equal(t, StateIdle, s.State())

	// The attempt is terminal; a fresh start is allowed.
	dev.err = nil
	dev.stream = &fakeStream{}
	require.NoError(t, s.Start(context.Background(), MediumAudio))
	assert.Equal(t, StateCapturing, s.State())
}

func TestStopWhileIdleIsNoOp(t *testing.T) {
	s := NewSession(&fakeDevice{stream: &fakeStream{}})
	capture, err := s.Stop()
	assert.NoError(t, err)
	assert.Nil(t, capture)
	assert.Equal(t, StateIdle, s.State())
}

func TestStopReleasesTracksExactlyOnce(t *testing.T) {
	stream := &fakeStream{}
	s := NewSession(&fakeDevice{stream: stream})
	require.NoError(t, s.Start(context.Background(), MediumAudio))

	_, err := s.Stop()
	require.NoError(t, err)
	assert.Equal(t, 1, stream.stops)

	// A second stop is a no-op and must not release again.
	capture, err := s.Stop()
	assert.NoError(t, err)
	assert.Nil(t, capture)
	assert.Equal(t, 1, stream.stops)
}

func TestDurationCountsTicks(t *testing.T) {
	s := NewSession(&fakeDevice{stream: &fakeStream{}})
	require.NoError(t, s.Start(context.Background(), MediumVideo))

	for i := 0; i < 5; i++ {
		s.Tick()
	}
	capture, err := s.Stop()
	require.NoError(t, err)
	require.NotNil(t, capture)
	assert.Equal(t, 5, capture.DurationSeconds)
}

func TestTicksOutsideCapturingIgnored(t *testing.T) {
	s := NewSession(&fakeDevice{stream: &fakeStream{}})
	s.Tick()
	s.Tick()
	require.NoError(t, s.Start(context.Background(), MediumAudio))
	s.Tick()
	capture, err := s.Stop()
	require.NoError(t, err)
	assert.Equal(t, 1, capture.DurationSeconds)

	s.Tick()
	assert.Equal(t, 0, s.Duration())
}

func TestStopConcatenatesChunks(t *testing.T) {
	s := NewSession(&fakeDevice{stream: &fakeStream{}})
	require.NoError(t, s.Start(context.Background(), MediumAudio))

	s.AppendChunk([]byte("abc"))
	s.AppendChunk([]byte("def"))
	s.AppendChunk(nil)

	capture, err := s.Stop()
	require.NoError(t, err)
	assert.Equal(t, []byte("abcdef"), capture.Data)
	assert.Equal(t, MediumAudio, capture.Medium)
}

func TestChunksOutsideCapturingDropped(t *testing.T) {
	s := NewSession(&fakeDevice{stream: &fakeStream{}})
	s.AppendChunk([]byte("before"))
	require.NoError(t, s.Start(context.Background(), MediumAudio))
	s.AppendChunk([]byte("during"))
	capture, err := s.Stop()
	require.NoError(t, err)
	assert.Equal(t, []byte("during"), capture.Data)
}

func TestAbortReleasesTracks(t *testing.T) {
	stream := &fakeStream{}
	s := NewSession(&fakeDevice{stream: stream})
	require.NoError(t, s.Start(context.Background(), MediumVideo))

	s.Abort()
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, 1, stream.stops)

	s.Abort()
	assert.Equal(t, 1, stream.stops)
}

// blockingDevice parks RequestStream until release is closed, standing in
// for a permission prompt the user has not answered yet.
type blockingDevice struct {
	stream  *fakeStream
	waiting chan struct{}
	release chan struct{}
}

func (d *blockingDevice) RequestStream(_ context.Context, _ string) (MediaStream, error) {
	select {
	case <-d.waiting:
	default:
		close(d.waiting)
	}
	<-d.release
	return d.stream, nil
}

func TestAbortDuringPermissionWaitDiscardsGrant(t *testing.T) {
	stream := &fakeStream{}
	dev := &blockingDevice{
		stream:  stream,
		waiting: make(chan struct{}),
		release: make(chan struct{}),
	}
	s := NewSession(dev)

	done := make(chan error, 1)
	go func() { done <- s.Start(context.Background(), MediumAudio) }()

	<-dev.waiting
	assert.Equal(t, StateRequestingPermission, s.State())
	s.Abort()
	close(dev.release)

	err := <-done
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// The late grant must not re-enter capturing, and its tracks are
	// released so the device does not keep recording.
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, 1, stream.stops)
	s.Tick()
	assert.Equal(t, 0, s.Duration())

	// The session stays usable for a fresh start.
	require.NoError(t, s.Start(context.Background(), MediumAudio))
	assert.Equal(t, StateCapturing, s.State())
}

func TestUnknownMediumRejected(t *testing.T) {
	s := NewSession(&fakeDevice{stream: &fakeStream{}})
	err := s.Start(context.Background(), "hologram")
	assert.Error(t, err)
	assert.Equal(t, StateIdle, s.State())
}

func TestTransitionTable(t *testing.T) {
	assert.True(t, canTransition(StateIdle, StateRequestingPermission))
	assert.True(t, canTransition(StateRequestingPermission, StateCapturing))
	assert.True(t, canTransition(StateRequestingPermission, StateIdle))
	assert.True(t, canTransition(StateCapturing, StateFinalizing))
	assert.True(t, canTransition(StateFinalizing, StateIdle))

	assert.False(t, canTransition(StateIdle, StateCapturing))
	assert.False(t, canTransition(StateCapturing, StateRequestingPermission))
	assert.False(t, canTransition(StateFinalizing, StateCapturing))
	assert.False(t, canTransition(StateIdle, StateFinalizing))
}
