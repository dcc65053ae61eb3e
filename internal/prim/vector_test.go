package prim

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approxOpts = cmpopts.EquateApprox(1e-7, 0.0)

func TestNormalizeSimple(t *testing.T) {
	tests := []struct {
		v    Vector3
		want Vector3
	}{
		{v: Vector3{X: 2, Y: 0, Z: 0}, want: Vector3{X: 1, Y: 0, Z: 0}},
		{v: Vector3{X: 0, Y: -12, Z: 5}, want: Vector3{X: 0, Y: -12.0 / 13, Z: 5.0 / 13}},
		{v: Vector3{X: 3, Y: 4, Z: 0}, want: Vector3{X: 3.0 / 5.0, Y: 4.0 / 5.0, Z: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			got := tt.v.Normalize()
			if diff := cmp.Diff(got, tt.want, approxOpts); diff != "" {
				t.Errorf("Vector3.Normalize() mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func TestNormalizeIsUnitLength(t *testing.T) {
	tests := []Vector3{
		{X: 2, Y: 0, Z: 0},
		{X: 12, Y: 14, Z: 23},
		{X: 0, Y: 83, Z: 0.32},
	}
	for _, v := range tests {
		t.Run(v.String(), func(t *testing.T) {
			got := v.Normalize().Length()
			if diff := cmp.Diff(got, 1.0, approxOpts); diff != "" {
				t.Errorf("Vector3.Length() mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

// TestRayAlongPreservesMagnitude is property 1 from the testable
// properties list: along(t) - origin has magnitude t for unit direction.
func TestRayAlongPreservesMagnitude(t *testing.T) {
	dirs := []Vector3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		Vector3{X: 1, Y: 2, Z: 3}.Normalize(),
	}
	for _, d := range dirs {
		r := NewRay(Vector3{X: 5, Y: -3, Z: 2}, d)
		for _, tParam := range []float64{0.5, 1, 3.25} {
			got := r.Along(tParam).Sub(r.Origin).Length()
			if diff := cmp.Diff(got, tParam, approxOpts); diff != "" {
				t.Errorf("Along(%v) magnitude mismatch (-got +want):\n%s", tParam, diff)
			}
		}
	}
}

// TestReflectIsInvolution is property 5: reflecting twice about the same
// surface yields the original direction.
func TestReflectIsInvolution(t *testing.T) {
	r := NewRay(Vector3{}, Vector3{X: 1, Y: -1, Z: 0}.Normalize())
	n := Vector3{X: 0, Y: 1, Z: 0}
	p := Vector3{X: 0, Y: 0, Z: 0}

	once := r.Reflect(p, n)
	twice := once.Reflect(p, n)

	if diff := cmp.Diff(twice.Direction, r.Direction, approxOpts); diff != "" {
		t.Errorf("double reflection mismatch (-got +want):\n%s", diff)
	}
}

// TestRefractAtUnityIORIsIdentity is property 6.
func TestRefractAtUnityIORIsIdentity(t *testing.T) {
	r := NewRay(Vector3{}, Vector3{X: 0.3, Y: -0.9, Z: 0}.Normalize())
	n := Vector3{X: 0, Y: 1, Z: 0}

	got, ok := r.Refract(n, 1.0, 1.0)
	if !ok {
		t.Fatal("Refract at IOR 1.0 unexpectedly reported total internal reflection")
	}
	if diff := cmp.Diff(got, r.Direction, approxOpts); diff != "" {
		t.Errorf("Refract(ior=1) mismatch (-got +want):\n%s", diff)
	}
}

func TestFract(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0.25, 0.25},
		{1.25, 0.25},
		{-0.25, 0.75},
		{-1.25, 0.75},
	}
	for _, tt := range tests {
		got := Fract(tt.x)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Fract(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}
