// Package config provides YAML-based configuration loading for slidemaze,
// with environment overrides and sanity clamping.
package config

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/slidemaze/internal/core"
)

// Config contains all tunable settings of the game.
type Config struct {
	Player      PlayerConfig      `yaml:"player"`
	Celebration CelebrationConfig `yaml:"celebration"`
	Confetti    ConfettiConfig    `yaml:"confetti"`
	Audio       AudioConfig       `yaml:"audio"`
	Render      RenderConfig      `yaml:"render"`
	Input       InputConfig       `yaml:"input"`
}

// PlayerConfig defines how the player token moves.
type PlayerConfig struct {
	Speed float64 `yaml:"speed"` // Cells per second
}

// CelebrationConfig defines the win celebration.
type CelebrationConfig struct {
	Duration time.Duration `yaml:"duration"`
}

// ConfettiConfig defines the particle burst.
type ConfettiConfig struct {
	Particles int `yaml:"particles"`
}

// AudioConfig defines sound playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"` // Start unmuted
	Volume  float64 `yaml:"volume"`  // 0 silent, 1 full
}

// RenderConfig defines frame pacing.
type RenderConfig struct {
	FPS int `yaml:"fps"`
}

// InputConfig defines pointer gesture handling.
type InputConfig struct {
	SwipeThreshold int `yaml:"swipe_threshold"` // Cells a drag must cover
}

// Limits used by Validate.
const (
	MinFPS       = 1
	MaxFPS       = 240
	MaxParticles = 500
)

// Validate clamps nonsensical values back into range and returns a note for
// every field it changed.
func (c *Config) Validate() []string {
	def := Default()
	var notes []string

	if !(c.Player.Speed > 0) || math.IsInf(c.Player.Speed, 0) {
		notes = append(notes, fmt.Sprintf("player.speed %v must be positive, using %v", c.Player.Speed, def.Player.Speed))
		c.Player.Speed = def.Player.Speed
	}
	if c.Celebration.Duration < 0 {
		notes = append(notes, fmt.Sprintf("celebration.duration %v is negative, using 0", c.Celebration.Duration))
		c.Celebration.Duration = 0
	}
	if c.Confetti.Particles < 0 || c.Confetti.Particles > MaxParticles {
		clamped := core.Clamp(c.Confetti.Particles, 0, MaxParticles)
		notes = append(notes, fmt.Sprintf("confetti.particles %d out of range, using %d", c.Confetti.Particles, clamped))
		c.Confetti.Particles = clamped
	}
	if !(c.Audio.Volume >= 0 && c.Audio.Volume <= 1) {
		clamped := core.ClampF(c.Audio.Volume, 0, 1)
		if math.IsNaN(clamped) {
			clamped = def.Audio.Volume
		}
		notes = append(notes, fmt.Sprintf("audio.volume %v out of range, using %v", c.Audio.Volume, clamped))
		c.Audio.Volume = clamped
	}
	if c.Render.FPS < MinFPS || c.Render.FPS > MaxFPS {
		notes = append(notes, fmt.Sprintf("render.fps %d out of range, using %d", c.Render.FPS, def.Render.FPS))
		c.Render.FPS = def.Render.FPS
	}
	if c.Input.SwipeThreshold < 1 {
		notes = append(notes, fmt.Sprintf("input.swipe_threshold %d must be at least 1, using %d", c.Input.SwipeThreshold, def.Input.SwipeThreshold))
		c.Input.SwipeThreshold = def.Input.SwipeThreshold
	}

	return notes
}
