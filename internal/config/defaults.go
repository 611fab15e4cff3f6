package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/slidemaze.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Player: PlayerConfig{
			Speed: 50,
		},
		Celebration: CelebrationConfig{
			Duration: 2500 * time.Millisecond,
		},
		Confetti: ConfettiConfig{
			Particles: 40,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.6,
		},
		Render: RenderConfig{
			FPS: 60,
		},
		Input: InputConfig{
			SwipeThreshold: 2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
