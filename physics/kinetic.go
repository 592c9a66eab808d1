package physics

import "github.com/lixenwraith/fireworks/vmath"

// Kinetic is a point mass with position and velocity in world units per tick
type Kinetic struct {
	Pos vmath.Vec
	Vel vmath.Vec
}

// Integrate advances position by one tick of velocity
func Integrate(k *Kinetic) {
	k.Pos = k.Pos.Add(k.Vel)
}

// ApplyDrag scales velocity by retention factors per axis
func ApplyDrag(k *Kinetic, keepX, keepY float64) {
	k.Vel.X *= keepX
	k.Vel.Y *= keepY
}

// ApplyGravity adds g to vertical velocity, positive g pulls down the screen
func ApplyGravity(k *Kinetic, g float64) {
	k.Vel.Y += g
}

// SetImpulse overrides velocity
func SetImpulse(k *Kinetic, v vmath.Vec) {
	k.Vel = v
}

// EaseToward moves position toward dest by fraction of the remaining distance, returns distance left
func EaseToward(k *Kinetic, dest vmath.Vec, fraction float64) float64 {
	k.Pos = k.Pos.Lerp(dest, fraction)
	return k.Pos.Dist(dest)
}

// Freeze pins the mass at p with zero velocity
func Freeze(k *Kinetic, p vmath.Vec) {
	k.Pos = p
	k.Vel = vmath.Vec{}
}
