package core

import (
	"math"
	"testing"
	"time"
)

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{365, 5},
		{720, 0},
		{-5, 355},
		{359.5, 359.5},
	}

	for _, tc := range tests {
		result := WrapDegrees(tc.in)
		if math.Abs(result-tc.expected) > 1e-9 {
			t.Errorf("WrapDegrees(%f) = %f, expected %f", tc.in, result, tc.expected)
		}
	}
}

func TestFade(t *testing.T) {
	if got := Fade(ColorWhite, ColorBlack, 1); got != ColorWhite {
		t.Errorf("Fade alpha 1 should return fg, got %v", got)
	}
	if got := Fade(ColorWhite, ColorBlack, 0); got != ColorBlack {
		t.Errorf("Fade alpha 0 should return bg, got %v", got)
	}
	if got := Fade(ColorWhite, ColorBlack, 0.5); math.Abs(got.R-0.5) > 1e-9 {
		t.Errorf("Fade alpha 0.5 should mix halfway, got %v", got)
	}
}

func TestTicker(t *testing.T) {
	tk := NewTicker(500*time.Millisecond, 0)

	if tk.Due(499 * time.Millisecond) {
		t.Error("ticker should not fire before one interval")
	}
	if !tk.Due(500 * time.Millisecond) {
		t.Error("ticker should fire at one interval")
	}
	if tk.Due(510 * time.Millisecond) {
		t.Error("ticker should fire at most once per interval")
	}
	if !tk.Due(1000 * time.Millisecond) {
		t.Error("ticker should fire at the second interval")
	}

	// A long stall fires once, then resumes from now.
	if !tk.Due(5 * time.Second) {
		t.Error("ticker should fire after a stall")
	}
	if tk.Due(5*time.Second + 100*time.Millisecond) {
		t.Error("ticker should not replay missed periods")
	}
}

func TestInputFrame(t *testing.T) {
	in := NewInputFrame()
	if in.Held(ActionJump) {
		t.Error("new frame should hold nothing")
	}

	in.Set(ActionJump)
	in.Set(ActionLeft)
	if !in.Held(ActionJump) || !in.Held(ActionLeft) || in.Held(ActionRight) {
		t.Errorf("held = %v", in.Actions)
	}

	var zero InputFrame
	if zero.Held(ActionRight) {
		t.Error("zero frame should hold nothing")
	}
}
