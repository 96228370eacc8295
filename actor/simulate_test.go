package actor

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/milieu/world"
)

const dt = 1.0 / 60

// mockWorld is solid wherever solid returns true and empty everywhere else.
type mockWorld struct {
	solid func(pos cube.Pos) bool
}

func (w mockWorld) SpotAt(pos cube.Pos) (world.Spot, bool) {
	if w.solid(pos) {
		return world.Full(), true
	}
	return world.Empty(), true
}

// floorWorld is solid below y=0.
func floorWorld() mockWorld {
	return mockWorld{solid: func(pos cube.Pos) bool { return pos[1] < 0 }}
}

// boxWorld is empty inside [-2,2]x[0,4]x[-2,2] and solid everywhere else.
func boxWorld() mockWorld {
	return mockWorld{solid: func(pos cube.Pos) bool {
		return pos[0] < -2 || pos[0] > 2 || pos[1] < 0 || pos[1] > 4 || pos[2] < -2 || pos[2] > 2
	}}
}

func settle(a *Actor, w world.SpotSource, ticks int) TickResult {
	var res TickResult
	for range ticks {
		res = a.Tick(dt, w)
	}
	return res
}

func TestGravityApplies(t *testing.T) {
	a := New(mgl64.Vec3{0.5, 10, 0.5}, DefaultTuning(), Options{})
	a.State.OnGround = false

	res := a.Tick(dt, floorWorld())
	if res.Velocity.Y() >= 0 {
		t.Fatalf("expected gravity to apply, got %v", res.Velocity)
	}
	if res.Position.Y() >= 10 {
		t.Fatalf("expected actor to fall, got %v", res.Position)
	}
}

func TestLandsOnFloor(t *testing.T) {
	a := New(mgl64.Vec3{0.5, 3, 0.5}, DefaultTuning(), Options{})
	a.State.OnGround = false

	res := settle(a, floorWorld(), 120)
	if !res.OnGround {
		t.Fatalf("expected actor to be on the ground, got %+v", res)
	}
	if res.Position.Y() != 0 {
		t.Fatalf("expected feet at y=0, got %v", res.Position.Y())
	}
	if res.Velocity != (mgl64.Vec3{}) {
		t.Fatalf("expected velocity to settle to zero, got %v", res.Velocity)
	}
	// The footprint is scanned from its lowest corner, so that is the voxel reported.
	if !res.Collided(1) || *res.Collisions[1] != (cube.Pos{-1, -1, -1}) {
		t.Fatalf("expected a collision with the voxel below, got %v", res.Collisions[1])
	}
}

func TestWalkForward(t *testing.T) {
	a := New(mgl64.Vec3{0.5, 0, 0.5}, DefaultTuning(), Options{})
	a.Press(KeyMoveForward)

	res := settle(a, floorWorld(), 30)
	// With zero yaw, forward is -Z in world space.
	if res.Position.Z() >= 0.5 {
		t.Fatalf("expected forward movement towards -Z, got %v", res.Position)
	}
	if math.Abs(res.Position.X()-0.5) > 1e-9 {
		t.Fatalf("expected no sideways drift, got %v", res.Position)
	}
	if !res.OnGround {
		t.Fatalf("expected to stay on the ground")
	}
}

func TestJump(t *testing.T) {
	a := New(mgl64.Vec3{0.5, 0, 0.5}, DefaultTuning(), Options{})
	settle(a, floorWorld(), 5)

	a.Press(KeyJump)
	res := a.Tick(dt, floorWorld())
	if res.Velocity.Y() != a.Tuning.JumpForce {
		t.Fatalf("expected jump velocity %v, got %v", a.Tuning.JumpForce, res.Velocity.Y())
	}
	a.Release(KeyJump)
	res = settle(a, floorWorld(), 5)
	if res.Position.Y() <= 0 {
		t.Fatalf("expected to be airborne after jumping, got %v", res.Position)
	}
}

func TestAirborneSpeedIsCapped(t *testing.T) {
	a := New(mgl64.Vec3{0.5, 100, 0.5}, DefaultTuning(), Options{})
	a.State.OnGround = false
	a.State.Vel = mgl64.Vec3{50, 0, 0}
	a.Press(KeyMoveForward)

	res := a.Tick(dt, floorWorld())
	maxSpeed := a.Tuning.SpeedHorizontal / a.Tuning.FrictionGround
	if hz := math.Hypot(res.Velocity.X(), res.Velocity.Z()); hz > maxSpeed+1e-9 {
		t.Fatalf("expected horizontal speed <= %v, got %v", maxSpeed, hz)
	}
}

func TestCollisionContainment(t *testing.T) {
	w := boxWorld()
	r := rand.New(rand.NewPCG(7, 11))

	for i := range 20 {
		a := New(mgl64.Vec3{0.5, 1, 0.5}, DefaultTuning(), Options{})
		a.State.OnGround = false
		a.State.Vel = mgl64.Vec3{r.Float64()*80 - 40, r.Float64()*40 - 10, r.Float64()*80 - 40}

		var res TickResult
		for range 300 {
			res = a.Tick(dt, w)
			assertNoOverlap(t, a, w)
		}
		if res.Velocity != (mgl64.Vec3{}) {
			t.Fatalf("run %d: expected actor to come to rest, got velocity %v", i, res.Velocity)
		}
		if !res.OnGround {
			t.Fatalf("run %d: expected actor to rest on the floor", i)
		}
	}
}

func TestFastMovementStopsAtWalls(t *testing.T) {
	w := boxWorld()
	tuning := DefaultTuning()
	h, r := tuning.HitboxHeight, tuning.HitboxRadius
	tests := []struct {
		name     string
		start    mgl64.Vec3
		vel      mgl64.Vec3
		onGround bool
		axis     int
		want     float64
	}{
		{name: "down", start: mgl64.Vec3{0.5, 1, 0.5}, vel: mgl64.Vec3{0, -300, 0}, axis: 1, want: 0},
		{name: "up", start: mgl64.Vec3{0.5, 1, 0.5}, vel: mgl64.Vec3{0, 300, 0}, axis: 1, want: 5 - h - CollisionEpsilon},
		{name: "east", start: mgl64.Vec3{0.5, 0, 0.5}, vel: mgl64.Vec3{300, 0, 0}, onGround: true, axis: 0, want: 3 - r - CollisionEpsilon},
		{name: "north", start: mgl64.Vec3{0.5, 0, 0.5}, vel: mgl64.Vec3{0, 0, -300}, onGround: true, axis: 2, want: -2 + r + CollisionEpsilon},
	}
	for _, tt := range tests {
		a := New(tt.start, tuning, Options{})
		a.State.OnGround = tt.onGround
		a.State.Vel = tt.vel

		res := a.Tick(dt, w)
		assertNoOverlap(t, a, w)
		if !res.Collided(tt.axis) {
			t.Fatalf("%s: expected a collision on axis %d, got %+v", tt.name, tt.axis, res)
		}
		if got := res.Position[tt.axis]; math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("%s: expected to stop at %v, got %v", tt.name, tt.want, got)
		}
		if res.Velocity[tt.axis] != 0 {
			t.Fatalf("%s: expected velocity on axis %d to be zeroed, got %v", tt.name, tt.axis, res.Velocity)
		}
	}
}

func TestLongFallLandsOnThinSlab(t *testing.T) {
	w := mockWorld{solid: func(pos cube.Pos) bool { return pos[1] == -1 }}
	a := New(mgl64.Vec3{0.5, 3000, 0.5}, DefaultTuning(), Options{})
	a.State.OnGround = false

	for i := range 3000 {
		res := a.Tick(1.0/20, w)
		if res.Position.Y() < 0 {
			t.Fatalf("fell through the slab at tick %d: pos=%v vel=%v", i, res.Position, res.Velocity)
		}
		if res.OnGround {
			if res.Position.Y() != 0 {
				t.Fatalf("expected to land with feet at y=0, got %v", res.Position)
			}
			return
		}
	}
	t.Fatalf("expected to land within 3000 ticks, still at %v", a.Position())
}

func assertNoOverlap(t *testing.T, a *Actor, w mockWorld) {
	t.Helper()
	const slack = 1e-5
	bb := a.BoundingBox()
	lo, hi := bb.Min(), bb.Max()
	for x := floor(lo[0]); x <= floor(hi[0]); x++ {
		for y := floor(lo[1]); y <= floor(hi[1]); y++ {
			for z := floor(lo[2]); z <= floor(hi[2]); z++ {
				if !w.solid(cube.Pos{x, y, z}) {
					continue
				}
				ox := math.Min(hi[0], float64(x+1)) - math.Max(lo[0], float64(x))
				oy := math.Min(hi[1], float64(y+1)) - math.Max(lo[1], float64(y))
				oz := math.Min(hi[2], float64(z+1)) - math.Max(lo[2], float64(z))
				if ox > slack && oy > slack && oz > slack {
					t.Fatalf("hitbox %v overlaps solid voxel (%d, %d, %d)", bb, x, y, z)
				}
			}
		}
	}
}

func TestCrawlWaitsForHeadroom(t *testing.T) {
	ceiling := true
	w := mockWorld{solid: func(pos cube.Pos) bool {
		return pos[1] < 0 || (ceiling && pos[1] >= 1)
	}}
	a := New(mgl64.Vec3{0.5, 0, 0.5}, DefaultTuning(), Options{})
	a.Press(KeyCrawl)
	if a.State.Stance != StanceCrawl {
		t.Fatalf("expected crawl stance, got %s", a.State.Stance)
	}
	settle(a, w, 3)

	a.Release(KeyCrawl)
	for range 10 {
		if res := a.Tick(dt, w); res.Stance != StanceWait {
			t.Fatalf("expected to keep waiting under a low ceiling, got %s", res.Stance)
		}
	}
	if a.HitboxHeight() != a.Tuning.HitboxHeightCrawl {
		t.Fatalf("expected crawl hitbox while waiting, got %v", a.HitboxHeight())
	}

	ceiling = false
	if res := a.Tick(dt, w); res.Stance != StanceStand {
		t.Fatalf("expected to stand once the ceiling is gone, got %s", res.Stance)
	}
}

func TestCrawlReleaseInOpenSpaceStands(t *testing.T) {
	a := New(mgl64.Vec3{0.5, 0, 0.5}, DefaultTuning(), Options{})
	a.Press(KeyCrawl)
	a.Tick(dt, floorWorld())
	a.Release(KeyCrawl)
	if res := a.Tick(dt, floorWorld()); res.Stance != StanceStand {
		t.Fatalf("expected stand, got %s", res.Stance)
	}
}

func TestNoClipMovesCameraOnly(t *testing.T) {
	a := New(mgl64.Vec3{0.5, 0, 0.5}, DefaultTuning(), Options{})
	a.DropCamera()
	if !a.State.NoClip {
		t.Fatalf("expected no-clip after dropping the camera")
	}
	a.Press(KeyMoveForward)
	a.Press(KeyJump)
	settle(a, floorWorld(), 10)

	if a.State.Pos[0] != 0.5 || a.State.Pos[2] != 0.5 {
		t.Fatalf("expected body to stay put, got %v", a.State.Pos)
	}
	if a.State.Cam[2] >= 0.5 || a.State.Cam[1] <= 0 {
		t.Fatalf("expected camera to fly forward and up, got %v", a.State.Cam)
	}
	if eye := a.Camera().Eye; float64(eye[2]) != float64(float32(a.State.Cam[2])) {
		t.Fatalf("expected the eye to follow the free camera, got %v", eye)
	}

	cam := a.State.Cam
	a.DropPlayer()
	if a.State.NoClip || a.State.Pos != cam {
		t.Fatalf("expected actor at the camera with no-clip off, got %v (noclip=%t)", a.State.Pos, a.State.NoClip)
	}
}

func TestPassUnexplored(t *testing.T) {
	w := world.NewSparseWorld(nil, nil)
	a := New(mgl64.Vec3{0.5, 0, 0.5}, DefaultTuning(), Options{})
	if res := a.Tick(dt, w); !res.OnGround {
		t.Fatalf("expected unexplored space to be solid")
	}

	a = New(mgl64.Vec3{0.5, 0, 0.5}, DefaultTuning(), Options{PassUnexplored: true})
	if res := a.Tick(dt, w); res.OnGround {
		t.Fatalf("expected to fall through unexplored space")
	}
}

func TestDebugStrings(t *testing.T) {
	a := New(mgl64.Vec3{0.5, 0, 0.5}, DefaultTuning(), Options{})
	a.Tick(dt, floorWorld())
	dbg := a.Debug()
	if dbg[0].Position != "0.5000" {
		t.Fatalf("expected x position text 0.5000, got %q", dbg[0].Position)
	}
	if dbg[1].Collision != "(-1, -1, -1)" {
		t.Fatalf("expected y collision text, got %q", dbg[1].Collision)
	}
	if dbg[2].Collision != "none" {
		t.Fatalf("expected no z collision, got %q", dbg[2].Collision)
	}
}
