package math

import (
	"math"
	"testing"
)

func TestVec3Add(t *testing.T) {
	got := Vec3{1, 2, 3}.Add(Vec3{4, 5, 6})
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Mul(t *testing.T) {
	got := Vec3{-5, 2, 4}.Mul(Vec3{2, 0.5, -1})
	want := Vec3{-10, 1, -4}
	if got != want {
		t.Errorf("Vec3.Mul() = %v, want %v", got, want)
	}
}

func TestVec3Distance(t *testing.T) {
	got := Vec3{0, 0, 0}.Distance(Vec3{2, 3, 6})
	if got != 7 {
		t.Errorf("Vec3.Distance() = %v, want 7", got)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 10, -4}
	b := Vec3{10, 20, 4}
	got := a.Lerp(b, 0.4)
	want := Vec3{4, 14, -0.8}
	if !got.ApproxEqual(want, 1e-12) {
		t.Errorf("Vec3.Lerp() = %v, want %v", got, want)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 15},
		{10, 15},
		{17.32, 17.32},
		{80, 80},
		{200, 80},
	}
	for _, tt := range tests {
		if got := Clamp(tt.x, 15, 80); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestVec2Within(t *testing.T) {
	origin := Vec2{100, 100}
	if !origin.Within(Vec2{105, 95}, 5) {
		t.Error("expected (105,95) to be within 5px")
	}
	if origin.Within(Vec2{106, 100}, 5) {
		t.Error("expected (106,100) to be outside 5px")
	}
	if got := (Vec2{3, 4}).Length(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}
