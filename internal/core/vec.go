package core

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// Vec is a row/column vector on the maze grid.
// Discrete cells use integral components; an animating player may sit between cells.
type Vec struct {
	R float64 // Row, grows downward
	C float64 // Column, grows to the right
}

// V is a convenience constructor for integral vectors.
func V(r, c int) Vec {
	return Vec{R: float64(r), C: float64(c)}
}

// Cardinal unit vectors.
var (
	Up    = Vec{R: -1}
	Right = Vec{C: 1}
	Down  = Vec{R: 1}
	Left  = Vec{C: -1}
)

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{R: v.R + o.R, C: v.C + o.C}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{R: v.R - o.R, C: v.C - o.C}
}

// Floor rounds both components down.
func (v Vec) Floor() Vec {
	return Vec{R: math.Floor(v.R), C: math.Floor(v.C)}
}

// Ceil rounds both components up.
func (v Vec) Ceil() Vec {
	return Vec{R: math.Ceil(v.R), C: math.Ceil(v.C)}
}

// Round rounds both components to the nearest integer.
func (v Vec) Round() Vec {
	return Vec{R: math.Round(v.R), C: math.Round(v.C)}
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.R == 0 && v.C == 0
}

// Sign returns the per-component sign (-1, 0 or 1).
func (v Vec) Sign() Vec {
	return Vec{R: sign(v.R), C: sign(v.C)}
}

// Len returns the magnitude of an axis-aligned vector.
// Moves are never diagonal, so this is the non-zero component's absolute value.
func (v Vec) Len() float64 {
	return math.Abs(v.R) + math.Abs(v.C)
}

// IsCloseTo reports whether both components are within 0.2 of o.
func (v Vec) IsCloseTo(o Vec) bool {
	return math.Abs(v.R-o.R) < 0.2 && math.Abs(v.C-o.C) < 0.2
}

// Key returns the integer cell the vector points at, truncating toward zero.
// Callers floor or round first when the vector may be fractional.
func (v Vec) Key() (r, c int) {
	return int(v.R), int(v.C)
}

// String returns "r,c".
func (v Vec) String() string {
	return fmt.Sprintf("%g,%g", v.R, v.C)
}

// Ease interpolates from v by diff with an ease-in-quad curve.
// elapsed and total share a unit; an axis without displacement keeps v's value.
func (v Vec) Ease(elapsed float64, diff Vec, total float64) Vec {
	out := v
	if diff.R != 0 {
		out.R = float64(ease.InQuad(float32(elapsed), float32(v.R), float32(diff.R), float32(total)))
	}
	if diff.C != 0 {
		out.C = float64(ease.InQuad(float32(elapsed), float32(v.C), float32(diff.C), float32(total)))
	}
	return out
}

func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}
