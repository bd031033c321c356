package framing

import (
	gomath "math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/depot-nav/internal/scene/memscene"
	"github.com/Faultbox/depot-nav/pkg/math"
)

func cube(half float64, center math.Vec3) *memscene.Mesh {
	return memscene.NewMesh("cube",
		math.Vec3{X: -half, Y: -half, Z: -half},
		math.Vec3{X: half, Y: half, Z: half},
		center,
	)
}

func TestComputeDepotScenario(t *testing.T) {
	calc := NewCalculator(DefaultSettings())
	mesh := cube(5, math.Vec3{X: 100, Y: 20, Z: 50})

	got := calc.Compute(mesh, -3.3563)

	// Diagonal of a 10-unit cube.
	extent := gomath.Sqrt(300)
	require.False(t, got.IsFront)
	assert.InDelta(t, extent, got.Distance, 1e-9)
	want := Framing{
		Position: math.Vec3{X: 100 - extent, Y: 20 + extent, Z: 50 - extent},
		Rotation: math.Vec3{
			X: math.DegToRad(33.72),
			Y: -gomath.Pi - math.DegToRad(180-37.75),
			Z: 0,
		},
		IsFront:  false,
		Distance: extent,
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-4)); diff != "" {
		t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeClampsSmallTargets(t *testing.T) {
	calc := NewCalculator(DefaultSettings())
	center := math.Vec3{X: 100, Y: 20, Z: 50}
	// Diagonal sqrt(3)*6 ~= 10.4, below the minimum.
	got := calc.Compute(cube(3, center), -3.3563)

	assert.Equal(t, 15.0, got.Distance)
	assert.True(t, got.Position.ApproxEqual(math.Vec3{X: 85, Y: 35, Z: 35}, 1e-9))
	assert.InDelta(t, math.DegToRad(33.72), got.Rotation.X, 1e-12)
}

func TestComputeClampsLargeTargets(t *testing.T) {
	calc := NewCalculator(DefaultSettings())
	got := calc.Compute(cube(100, math.Vec3{}), 0.5)
	assert.Equal(t, 80.0, got.Distance)
}

func TestComputeDegenerateBounds(t *testing.T) {
	calc := NewCalculator(DefaultSettings())
	center := math.Vec3{X: 1, Y: 2, Z: 3}
	mesh := memscene.NewMesh("point", math.Vec3{}, math.Vec3{}, center)

	got := calc.Compute(mesh, 1)

	assert.Equal(t, 15.0, got.Distance)
	assert.Greater(t, got.Position.Distance(center), 0.0)
	assert.InDelta(t, 15*gomath.Sqrt(3), got.Position.Distance(center), 1e-9)
}

func TestComputeAppliesWorldScale(t *testing.T) {
	calc := NewCalculator(DefaultSettings())
	mesh := cube(5, math.Vec3{})
	mesh.SetScale(math.Vec3{X: 2, Y: 2, Z: 2})

	got := calc.Compute(mesh, 1)
	assert.InDelta(t, 2*gomath.Sqrt(300), got.Distance, 1e-9)
}

func TestComputeRefreshesBounds(t *testing.T) {
	calc := NewCalculator(DefaultSettings())
	mesh := cube(5, math.Vec3{})
	before := mesh.Refreshes()

	mesh.SetPosition(math.Vec3{X: 10})
	got := calc.Compute(mesh, 4)

	require.True(t, got.IsFront)

	assert.Equal(t, before+1, mesh.Refreshes())
	assert.InDelta(t, 10+got.Distance, got.Position.X, 1e-9)
}

func TestComputeIsIdempotent(t *testing.T) {
	calc := NewCalculator(DefaultSettings())
	mesh := cube(7, math.Vec3{X: -40, Y: 3, Z: 12})
	for _, yaw := range []float64{-12.5, -3.3563, -gomath.Pi, 0, 1.2, gomath.Pi, 7.9} {
		first := calc.Compute(mesh, yaw)
		second := calc.Compute(mesh, yaw)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("yaw %v: second Compute() differs:\n%s", yaw, diff)
		}
	}
}

func TestComputeQuadrants(t *testing.T) {
	calc := NewCalculator(DefaultSettings())
	mesh := cube(5, math.Vec3{})
	offset := math.DegToRad(37.75)

	tests := []struct {
		name      string
		yaw       float64
		wantYaw   float64
		wantFront bool
	}{
		{"zero heading", 0, offset, false},
		{"first quadrant", 1, offset, false},
		{"exactly pi", gomath.Pi, gomath.Pi + offset, false},
		{"second half turn", 4, gomath.Pi + offset, true},
		{"negative small", -1, -math.DegToRad(180 - 37.75), true},
		{"negative beyond pi", -4, -gomath.Pi - math.DegToRad(180-37.75), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Compute(mesh, tt.yaw)
			assert.InDelta(t, tt.wantYaw, got.Rotation.Y, 1e-9)
			assert.Equal(t, tt.wantFront, got.IsFront)
		})
	}
}
