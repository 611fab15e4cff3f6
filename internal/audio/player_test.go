package audio

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s until it is exhausted and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; ; i++ {
		require.Less(t, i, 10000, "streamer never drained")
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestSynthesizeClips(t *testing.T) {
	for _, c := range []Clip{ClipBump, ClipSwoosh, ClipGun, ClipWeWon} {
		t.Run(c.String(), func(t *testing.T) {
			n, peak := drain(t, Synthesize(c, 1))
			assert.Positive(t, n)
			assert.Less(t, n, SampleRate.N(2e9), "clip should be short")
			assert.Greater(t, peak, 0.01, "clip should be audible")
			assert.LessOrEqual(t, peak, 1.5)
		})
	}
}

func TestSynthesizeZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, Synthesize(ClipGun, 0))
	assert.Zero(t, peak)
}

func TestBeepPlayerStartsMuted(t *testing.T) {
	initCalls := 0
	p := newBeepPlayer(1, nil, func(beep.SampleRate, beep.Streamer) error {
		initCalls++
		return nil
	})

	assert.True(t, p.Muted())

	called := false
	p.Play(ClipBump, func() { called = true })
	assert.True(t, called, "muted player should complete immediately")
	assert.Zero(t, p.mixer.Len())
	assert.Zero(t, initCalls, "speaker opens lazily")
}

func TestBeepPlayerCompletionCallback(t *testing.T) {
	var out beep.Streamer
	p := newBeepPlayer(1, nil, func(_ beep.SampleRate, mixer beep.Streamer) error {
		out = mixer
		return nil
	})

	p.SetMuted(false)
	require.False(t, p.Muted())
	require.NotNil(t, out)

	done := 0
	p.Play(ClipWeWon, func() { done++ })
	assert.Equal(t, 1, p.mixer.Len())
	assert.Zero(t, done, "callback must wait for the clip")

	buf := make([][2]float64, 512)
	for i := 0; done == 0; i++ {
		require.Less(t, i, 10000, "callback never fired")
		out.Stream(buf)
	}
	assert.Equal(t, 1, done)

	// the finished sequence is dropped on the next pull
	out.Stream(buf)
	assert.Zero(t, p.mixer.Len())
}

func TestBeepPlayerInitFailure(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs)

	initCalls := 0
	p := newBeepPlayer(1, logger, func(beep.SampleRate, beep.Streamer) error {
		initCalls++
		return errors.New("no device")
	})

	p.SetMuted(false)
	assert.True(t, p.Muted(), "player stays muted when the device cannot open")
	assert.Contains(t, logs.String(), "no device")

	p.SetMuted(false)
	assert.Equal(t, 1, initCalls, "a failed device is not retried")

	called := false
	p.Play(ClipSwoosh, func() { called = true })
	assert.True(t, called)
}

func TestBeepPlayerMuteClearsMixer(t *testing.T) {
	p := newBeepPlayer(1, nil, func(beep.SampleRate, beep.Streamer) error { return nil })
	p.SetMuted(false)
	p.Play(ClipSwoosh, nil)
	p.Play(ClipBump, nil)
	require.Equal(t, 2, p.mixer.Len())

	p.SetMuted(true)
	assert.Zero(t, p.mixer.Len())
	assert.True(t, p.Muted())

	p.Close()
	assert.True(t, p.Muted())
}

func TestNopPlayer(t *testing.T) {
	p := NewNopPlayer()
	assert.True(t, p.Muted())

	called := false
	p.Play(ClipGun, func() { called = true })
	assert.True(t, called)

	p.SetMuted(false)
	assert.True(t, p.Muted(), "a silent player stays muted")
	p.Close()
}

func TestClipString(t *testing.T) {
	assert.Equal(t, "wewon", ClipWeWon.String())
	assert.Equal(t, "unknown", Clip(99).String())
}
