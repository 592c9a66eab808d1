package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/fireworks/vmath"
)

func TestIntegrateWithGravityAndDrag(t *testing.T) {
	k := Kinetic{Pos: vmath.V(10, 100), Vel: vmath.V(2, -3)}

	ApplyDrag(&k, 0.5, 1)
	ApplyGravity(&k, 1)
	Integrate(&k)

	if k.Vel != vmath.V(1, -2) {
		t.Errorf("velocity = %+v, want {1 -2}", k.Vel)
	}
	if k.Pos != vmath.V(11, 98) {
		t.Errorf("position = %+v, want {11 98}", k.Pos)
	}
}

func TestEaseTowardReturnsRemaining(t *testing.T) {
	k := Kinetic{Pos: vmath.V(0, 0)}
	dest := vmath.V(30, 40)

	left := EaseToward(&k, dest, 0.1)

	if math.Abs(left-45) > 1e-9 {
		t.Errorf("remaining = %v, want 45", left)
	}
	if math.Abs(k.Pos.X-3) > 1e-9 || math.Abs(k.Pos.Y-4) > 1e-9 {
		t.Errorf("position = %+v, want {3 4}", k.Pos)
	}
}

func TestFreeze(t *testing.T) {
	k := Kinetic{Pos: vmath.V(1, 1), Vel: vmath.V(5, 5)}
	Freeze(&k, vmath.V(7, 8))
	if k.Pos != vmath.V(7, 8) || k.Vel != (vmath.Vec{}) {
		t.Errorf("Freeze left %+v", k)
	}
}
