// Package audio plays the short sound effects of the maze.
// Clips are synthesized on the fly with beep; nothing is loaded from disk.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Clip names a sound effect.
type Clip int

const (
	ClipBump   Clip = iota // Player stopped against a wall
	ClipSwoosh             // Player started sliding
	ClipGun                // Teleport
	ClipWeWon              // Maze completed
)

// String returns the clip name.
func (c Clip) String() string {
	switch c {
	case ClipBump:
		return "bump"
	case ClipSwoosh:
		return "swoosh"
	case ClipGun:
		return "gun"
	case ClipWeWon:
		return "wewon"
	default:
		return "unknown"
	}
}

// Player plays clips. done, if not nil, is called once the clip has finished,
// or right away when nothing is audible. It may run on another goroutine.
type Player interface {
	Play(c Clip, done func())
	SetMuted(muted bool)
	Muted() bool
	Close()
}

// NopPlayer never makes a sound, so it always reports muted and the
// indicator never claims otherwise.
type NopPlayer struct{}

// NewNopPlayer creates a silent player.
func NewNopPlayer() *NopPlayer {
	return &NopPlayer{}
}

// Play completes at once.
func (p *NopPlayer) Play(_ Clip, done func()) {
	if done != nil {
		done()
	}
}

// SetMuted is ignored; a silent player cannot be unmuted.
func (p *NopPlayer) SetMuted(bool) {}

// Muted always returns true.
func (p *NopPlayer) Muted() bool {
	return true
}

// Close does nothing.
func (p *NopPlayer) Close() {}

// initFunc opens the output device and starts streaming the mixer.
type initFunc func(rate beep.SampleRate, mixer beep.Streamer) error

func speakerInit(rate beep.SampleRate, mixer beep.Streamer) error {
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(mixer)
	return nil
}

// BeepPlayer plays synthesized clips through the system speaker.
// It starts muted and opens the device on the first unmute.
type BeepPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	failed      bool
	init        initFunc
	logger      *log.Logger
}

// NewBeepPlayer creates a muted speaker-backed player.
func NewBeepPlayer(volume float64, logger *log.Logger) *BeepPlayer {
	return newBeepPlayer(volume, logger, speakerInit)
}

func newBeepPlayer(volume float64, logger *log.Logger, init initFunc) *BeepPlayer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BeepPlayer{
		mixer:  &beep.Mixer{},
		volume: volume,
		muted:  true,
		init:   init,
		logger: logger,
	}
}

// Play mixes a fresh copy of the clip into the output.
func (p *BeepPlayer) Play(c Clip, done func()) {
	p.mu.Lock()
	audible := !p.muted && p.initialized
	vol := p.volume
	p.mu.Unlock()

	if !audible {
		if done != nil {
			done()
		}
		return
	}

	s := Synthesize(c, vol)
	if done != nil {
		s = beep.Seq(s, beep.Callback(done))
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted toggles output. Unmuting opens the speaker the first time; if that
// fails the player stays muted for good and logs why.
func (p *BeepPlayer) SetMuted(muted bool) {
	if muted {
		p.mu.Lock()
		p.muted = true
		p.mu.Unlock()
		p.clear()
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failed {
		return
	}
	if !p.initialized {
		if err := p.init(SampleRate, p.mixer); err != nil {
			p.failed = true
			p.logger.Warn("audio unavailable, staying silent", "err", fmt.Errorf("audio: speaker init: %w", err))
			return
		}
		p.initialized = true
		p.logger.Debug("audio initialized", "rate", int(SampleRate))
	}
	p.muted = false
}

// Muted reports whether output is silenced.
func (p *BeepPlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close stops everything that is playing. beep has no way to release the
// device, so the mixer is simply emptied.
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	p.muted = true
	p.mu.Unlock()
	p.clear()
}

// clear drops queued clips. Callbacks hold the speaker lock, so p.mu must not
// be held here.
func (p *BeepPlayer) clear() {
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}
