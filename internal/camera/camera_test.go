package camera

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/voximity/raytracer-go/internal/prim"
)

var approxOpts = cmpopts.EquateApprox(1e-9, 0.0)

func TestDefaultCameraCenterRayFacesForward(t *testing.T) {
	c := Default()
	ray := c.PrimaryRay(c.VW/2, c.VH/2)

	if diff := cmp.Diff(ray.Direction, prim.Forward, approxOpts); diff != "" {
		t.Errorf("PrimaryRay() direction mismatch (-got +want):\n%s", diff)
	}
}

func TestPrimaryRayIsUnitLength(t *testing.T) {
	c := New(8, 6, prim.Vector3{}, 0.3, -0.2, 60)
	for y := 0; y < c.VH; y++ {
		for x := 0; x < c.VW; x++ {
			ray := c.PrimaryRay(x, y)
			if diff := cmp.Diff(ray.Direction.Length(), 1.0, approxOpts); diff != "" {
				t.Errorf("PrimaryRay(%d,%d) direction length mismatch (-got +want):\n%s", x, y, diff)
			}
		}
	}
}

func TestSetFOVDegChangesRayDirection(t *testing.T) {
	c := New(4, 4, prim.Vector3{}, 0, 0, 90)
	wide := c.PrimaryRay(0, 0)

	c.SetFOVDeg(30)
	narrow := c.PrimaryRay(0, 0)

	if wide.Direction == narrow.Direction {
		t.Error("PrimaryRay() direction unchanged after SetFOVDeg, want chf to affect the ray")
	}
	if c.FOVDeg() != 30 {
		t.Errorf("FOVDeg() = %v, want 30", c.FOVDeg())
	}
}
