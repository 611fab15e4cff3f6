package game

import (
	"math/rand"

	"github.com/vovakirdan/slidemaze/internal/core"
)

// Confetti physics, in screen cells and seconds.
const (
	confettiGravity  = 18.0
	confettiMaxSpeed = 10.0
	confettiDrag     = 0.6
)

var (
	confettiRunes  = []rune{'*', '+', '•', '~', 'o', '✦'}
	confettiColors = []core.Color{
		core.ColorBrightRed,
		core.ColorBrightYellow,
		core.ColorBrightGreen,
		core.ColorBrightCyan,
		core.ColorBrightMagenta,
		core.ColorOrange,
	}
)

type particle struct {
	x, y   float64
	vx, vy float64
	r      rune
	c      core.Color
}

// Confetti is a falling particle effect drawn over the maze.
type Confetti struct {
	rng   *rand.Rand
	parts []particle
	w, h  int
	limit int
}

// NewConfetti creates an empty effect. limit caps live particles; seed makes
// the effect reproducible.
func NewConfetti(seed int64, limit int) *Confetti {
	if limit < 1 {
		limit = 1
	}
	return &Confetti{
		rng:   rand.New(rand.NewSource(seed)),
		limit: limit,
	}
}

// Resize sets the area particles live in.
func (c *Confetti) Resize(w, h int) {
	c.w, c.h = w, h
}

// Burst spawns n particles just above the top edge. Spawns beyond the live
// limit are dropped.
func (c *Confetti) Burst(n int) {
	if c.w <= 0 || c.h <= 0 {
		return
	}
	for i := 0; i < n && len(c.parts) < c.limit; i++ {
		c.parts = append(c.parts, particle{
			x:  c.rng.Float64() * float64(c.w),
			y:  -c.rng.Float64() * 2,
			vx: (c.rng.Float64()*2 - 1) * confettiMaxSpeed,
			vy: c.rng.Float64() * confettiMaxSpeed / 2,
			r:  confettiRunes[c.rng.Intn(len(confettiRunes))],
			c:  confettiColors[c.rng.Intn(len(confettiColors))],
		})
	}
}

// Update advances every particle by dt seconds and drops those that left the screen.
func (c *Confetti) Update(dt float64) {
	if dt <= 0 {
		return
	}
	live := c.parts[:0]
	for _, p := range c.parts {
		p.vy += confettiGravity * dt
		p.vx -= p.vx * confettiDrag * dt
		p.x += p.vx * dt
		p.y += p.vy * dt
		if p.y >= float64(c.h) || p.x < 0 || p.x >= float64(c.w) {
			continue
		}
		live = append(live, p)
	}
	c.parts = live
}

// Active reports whether any particle is still falling.
func (c *Confetti) Active() bool {
	return len(c.parts) > 0
}

// Len returns the number of live particles.
func (c *Confetti) Len() int {
	return len(c.parts)
}

// Clear removes all particles.
func (c *Confetti) Clear() {
	c.parts = c.parts[:0]
}

// Render draws the particles that are inside the screen.
func (c *Confetti) Render(dst *core.Screen) {
	for _, p := range c.parts {
		if p.y < 0 {
			continue
		}
		dst.SetColored(int(p.x), int(p.y), p.r, p.c)
	}
}
