package ink

import (
	"math"
	"testing"
)

func TestDriftStaysBounded(t *testing.T) {
	cfg := DriftConfig{StepX: 5, StepY: 4, MaxX: 3, MaxY: 2, Damping: 0.95}
	rng := NewRNG(11)
	s := NewDriftState()
	for i := range 1000 {
		s = s.Step(rng, cfg)
		if math.Abs(s.DX) > 3 || math.Abs(s.DY) > 2 {
			t.Fatalf("step %d: drift = (%v, %v), exceeds (3, 2)", i, s.DX, s.DY)
		}
		if s.DX != math.Round(s.DX) || s.DY != math.Round(s.DY) {
			t.Fatalf("step %d: drift = (%v, %v), want integers", i, s.DX, s.DY)
		}
	}
}

func TestDriftUnboundedWhenMaxZero(t *testing.T) {
	cfg := DriftConfig{StepX: 3, Damping: 1}
	rng := NewRNG(4)
	s := NewDriftState()
	peak := 0.0
	for range 2000 {
		s = s.Step(rng, cfg)
		peak = math.Max(peak, math.Abs(s.DX))
	}
	if peak <= 3 {
		t.Errorf("undamped random walk peaked at %v, expected to wander past 3", peak)
	}
}

func TestDriftZeroStepDrawsNothing(t *testing.T) {
	a, b := NewRNG(5), NewRNG(5)
	s := DriftState{DX: 2, DY: -1}
	got := s.Step(a, DriftConfig{MaxX: 1, Damping: 0.5})
	if got != s {
		t.Errorf("Step with zero steps = %+v, want %+v unchanged", got, s)
	}
	if a.Float64() != b.Float64() {
		t.Error("Step with zero steps consumed random draws")
	}
}

func TestDriftDamping(t *testing.T) {
	// A step of 1 with damping 0 can only land on -1, 0 or 1.
	rng := NewRNG(6)
	s := DriftState{DX: 40}
	s = s.Step(rng, DriftConfig{StepX: 1, Damping: 0})
	if math.Abs(s.DX) > 1 {
		t.Errorf("DX = %v, want within ±1 after full damping", s.DX)
	}
}

func TestDriftOffset(t *testing.T) {
	s := DriftState{DX: 3, DY: -2}
	if got := s.Offset(); got != Pt(3, -2) {
		t.Errorf("Offset() = %v, want (3, -2)", got)
	}
}

func TestSettle(t *testing.T) {
	tests := []struct {
		v     float64
		limit int
		want  float64
	}{
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{7.4, 5, 5},
		{-7.4, 5, -5},
		{1.49, 5, 1},
	}
	for _, tt := range tests {
		if got := settle(tt.v, tt.limit); got != tt.want {
			t.Errorf("settle(%v, %d) = %v, want %v", tt.v, tt.limit, got, tt.want)
		}
	}
}
