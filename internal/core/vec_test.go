package core

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := V(2, 3)
	if got := a.Add(Right); got != V(2, 4) {
		t.Errorf("Add = %v, expected 2,4", got)
	}
	if got := a.Sub(V(1, 1)); got != V(1, 2) {
		t.Errorf("Sub = %v, expected 1,2", got)
	}
	if got := V(0, -7).Len(); got != 7 {
		t.Errorf("Len = %v, expected 7", got)
	}
	if got := V(-3, 0).Sign(); got != Up {
		t.Errorf("Sign = %v, expected Up", got)
	}
}

func TestVecRounding(t *testing.T) {
	tests := []struct {
		in               Vec
		floor, ceil, rnd Vec
	}{
		{Vec{R: 1.2, C: 3}, V(1, 3), V(2, 3), V(1, 3)},
		{Vec{R: 0, C: 4.6}, V(0, 4), V(0, 5), V(0, 5)},
		{V(2, 2), V(2, 2), V(2, 2), V(2, 2)},
	}

	for _, tt := range tests {
		if got := tt.in.Floor(); got != tt.floor {
			t.Errorf("%v.Floor() = %v, expected %v", tt.in, got, tt.floor)
		}
		if got := tt.in.Ceil(); got != tt.ceil {
			t.Errorf("%v.Ceil() = %v, expected %v", tt.in, got, tt.ceil)
		}
		if got := tt.in.Round(); got != tt.rnd {
			t.Errorf("%v.Round() = %v, expected %v", tt.in, got, tt.rnd)
		}
	}
}

func TestVecIsCloseTo(t *testing.T) {
	if !(Vec{R: 1.1, C: 2}).IsCloseTo(V(1, 2)) {
		t.Error("1.1,2 should be close to 1,2")
	}
	if (Vec{R: 1.3, C: 2}).IsCloseTo(V(1, 2)) {
		t.Error("1.3,2 should not be close to 1,2")
	}
}

func TestVecEase(t *testing.T) {
	start := V(3, 1)
	diff := V(0, 4)

	tests := []struct {
		elapsed float64
		wantC   float64
	}{
		{0, 1},
		{0.5, 2}, // 1 + 4*0.25
		{1, 5},
	}
	for _, tt := range tests {
		got := start.Ease(tt.elapsed, diff, 1)
		if got.R != 3 {
			t.Errorf("Ease(%v) moved the still axis to %v", tt.elapsed, got.R)
		}
		if math.Abs(got.C-tt.wantC) > 1e-6 {
			t.Errorf("Ease(%v).C = %v, expected %v", tt.elapsed, got.C, tt.wantC)
		}
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		a   Action
		dir Vec
		ok  bool
	}{
		{ActionUp, Up, true},
		{ActionRight, Right, true},
		{ActionDown, Down, true},
		{ActionLeft, Left, true},
		{ActionReset, Vec{}, false},
		{ActionQuit, Vec{}, false},
	}
	for _, tt := range tests {
		dir, ok := tt.a.Direction()
		if dir != tt.dir || ok != tt.ok {
			t.Errorf("%v.Direction() = %v, %v; expected %v, %v", tt.a, dir, ok, tt.dir, tt.ok)
		}
	}
}

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionUp)
	f.Set(ActionLeft)

	got := f.Ordered()
	if len(got) != 2 || got[0] != ActionLeft || got[1] != ActionUp {
		t.Errorf("Ordered() = %v, expected [Left Up]", got)
	}

	if f.Empty() {
		t.Error("Empty() = true, expected false")
	}
	f.Clear()
	if !f.Empty() || f.Actions[ActionLeft] {
		t.Error("Clear should remove every action")
	}

	// Set after Clear starts a fresh order.
	f.Set(ActionDown)
	if got := f.Ordered(); len(got) != 1 || got[0] != ActionDown {
		t.Errorf("Ordered() = %v, expected [Down]", got)
	}
}

func TestColorHue(t *testing.T) {
	tests := []struct {
		deg  int
		code string
	}{
		{0, "174"},
		{110, "150"},
		{220, "110"},
		{360, "174"},
		{-30, "175"},
	}
	for _, tt := range tests {
		code, ok := HueCode(ColorHue(tt.deg))
		if !ok || code != tt.code {
			t.Errorf("HueCode(ColorHue(%d)) = %q, %v; expected %q", tt.deg, code, ok, tt.code)
		}
	}
	if _, ok := HueCode(ColorRed); ok {
		t.Error("fixed colors are not hues")
	}
}
