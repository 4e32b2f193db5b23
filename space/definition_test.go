package space

import (
	"math"
	"testing"

	"cosmodrift/vmath"
)

func TestFarPlaneAlwaysVisible(t *testing.T) {
	d := NewDefinition()

	// Even far off-axis, a spawn on the far plane must be visible
	positions := []vmath.Vec3{
		{X: 0, Y: 0, Z: 100},
		{X: 90, Y: -90, Z: 100.5},
		{X: -75, Y: 40, Z: 99.2},
	}
	for _, p := range positions {
		if !d.InViewFrustum(p) {
			t.Errorf("Far-plane position %+v must be visible", p)
		}
	}
}

func TestBehindObserverCulled(t *testing.T) {
	d := NewDefinition()

	// Observer is at z=-25; more than 30 units behind is invisible
	if d.InViewFrustum(vmath.Vec3{X: 0, Y: 0, Z: -56}) {
		t.Error("Position 31 units behind observer must be culled")
	}
	// Slightly behind remains visible (within the depth allowance, on-axis)
	if !d.InViewFrustum(vmath.Vec3{X: 0, Y: 0, Z: -50}) {
		t.Error("Position 25 units behind observer on-axis should be visible")
	}
}

func TestNearObserverAlwaysVisible(t *testing.T) {
	d := NewDefinition()
	p := vmath.V3Add(d.ObserverPosition, vmath.Vec3{X: 2, Y: 2, Z: 2})
	if !d.InViewFrustum(p) {
		t.Error("Position within 5 units of observer must be visible")
	}
}

func TestFrustumRejectsNonFinite(t *testing.T) {
	d := NewDefinition()
	nan := float32(math.NaN())
	if d.InViewFrustum(vmath.Vec3{X: nan, Y: 0, Z: 0}) {
		t.Error("NaN position must not be visible")
	}
}

func TestScaleFactorCurve(t *testing.T) {
	d := NewDefinition()

	// At the observer: base 1.0, boost 1.4
	atObserver := d.ScaleFactor(d.ObserverPosition)
	if vmath.Abs(atObserver-1.4) > 1e-4 {
		t.Errorf("Scale at observer: got %v want 1.4", atObserver)
	}

	// 100 units out: 1 - 0.5*0.8 = 0.6
	p := vmath.V3Add(d.ObserverPosition, vmath.Vec3{Z: 100})
	mid := d.ScaleFactor(p)
	if vmath.Abs(mid-0.6) > 1e-4 {
		t.Errorf("Scale at 100 units: got %v want 0.6", mid)
	}

	// Beyond max distance clamps at 0.2
	far := d.ScaleFactor(vmath.V3Add(d.ObserverPosition, vmath.Vec3{Z: 500}))
	if vmath.Abs(far-0.2) > 1e-4 {
		t.Errorf("Scale beyond max distance: got %v want 0.2", far)
	}

	// The proximity blend must not invert ordering right at the breakpoint
	just := d.ScaleFactor(vmath.V3Add(d.ObserverPosition, vmath.Vec3{Z: 9.99}))
	if just <= 0 || just > 1.5 {
		t.Errorf("Scale near breakpoint out of range: %v", just)
	}
}

func TestTransparencyPiecewise(t *testing.T) {
	d := NewDefinition()

	cases := []struct {
		dist float32
		want float32
	}{
		{0, 0.4},    // touching the observer
		{5, 0.6},    // near ramp midpoint
		{10, 1.0},   // mid range fully opaque
		{100, 1.0},  // still opaque below 75% of 200
		{180, 0.4},  // (1 - 0.9) * 4
		{200, 0.0},  // fully faded
		{1000, 0.0}, // clamped
	}

	for _, tc := range cases {
		p := vmath.V3Add(d.ObserverPosition, vmath.Vec3{Z: tc.dist})
		got := d.TransparencyFactor(p)
		if vmath.Abs(got-tc.want) > 1e-4 {
			t.Errorf("Transparency at distance %v: got %v want %v", tc.dist, got, tc.want)
		}
		if got < 0 || got > 1 {
			t.Errorf("Transparency out of [0,1] at distance %v: %v", tc.dist, got)
		}
	}
}

func TestViewportDimensions(t *testing.T) {
	d := NewDefinition()
	w, h := d.ViewportDimensions()
	if w != 50 || h != 50 {
		t.Errorf("Default viewport: got %vx%v want 50x50", w, h)
	}

	d.ViewportSizePercent = 50
	w, h = d.ViewportDimensions()
	if w != 100 || h != 100 {
		t.Errorf("50%% viewport: got %vx%v want 100x100", w, h)
	}
}
