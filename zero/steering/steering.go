// Package steering implements C9: an accumulator for a per-tick force
// vector and rotation delta, plus the library of seek/face/pursue
// operations that feed it. The controller resets the accumulator once per
// tick; behavior tree leaves call into it zero or more times before the
// Actuator reads the result.
package steering

import (
	"math"

	"github.com/dm-vev/zerobot/zero/game"
	"github.com/go-gl/mathgl/mgl32"
)

// Accumulator collects force and rotation contributions across a single
// tick's tree execution.
type Accumulator struct {
	Force    mgl32.Vec2
	Rotation float32
}

// Reset zeroes both accumulated values, called once at the top of a tick.
func (a *Accumulator) Reset() {
	a.Force = mgl32.Vec2{}
	a.Rotation = 0
}

// Face adds the rotation delta, wrapped to [-π, π], needed to turn self's
// heading toward target.
func (a *Accumulator) Face(self *game.Player, target mgl32.Vec2) {
	toTarget := target.Sub(self.Position)
	if toTarget.Len() < 1e-6 {
		return
	}
	a.Rotation += wrapPi(angleBetween(self.Heading, toTarget))
}

// Seek adds target-self.position to the force accumulator.
func (a *Accumulator) Seek(self *game.Player, target mgl32.Vec2) {
	a.Force = a.Force.Add(target.Sub(self.Position))
}

// SeekDistance seeks a point `distance` short of target along the ray from
// self if self is already within distance of target; otherwise it behaves
// like plain Seek.
func (a *Accumulator) SeekDistance(self *game.Player, target mgl32.Vec2, distance float32) {
	toTarget := target.Sub(self.Position)
	if toTarget.Len() <= distance {
		dir := toTarget.Normalize()
		short := target.Sub(dir.Mul(distance))
		a.Force = a.Force.Add(short.Sub(self.Position))
		return
	}
	a.Seek(self, target)
}

// Pursue leads targetPos by t = |to_target| / (self_max_speed + target_speed)
// along targetVelocity, adding the resulting intercept point as a seek
// force. Degenerate cases (near-zero closing speed, a target already within
// distance) fall back to a direct seek to avoid dividing by ~0 or
// overshooting a stationary target.
func (a *Accumulator) Pursue(self *game.Player, targetPos, targetVelocity mgl32.Vec2, selfMaxSpeed, distance float32) {
	toTarget := targetPos.Sub(self.Position)
	dist := toTarget.Len()
	if dist <= distance {
		a.Seek(self, targetPos)
		return
	}

	closingSpeed := selfMaxSpeed + targetVelocity.Len()
	if closingSpeed < 1e-3 {
		a.Seek(self, targetPos)
		return
	}

	t := dist / closingSpeed
	intercept := targetPos.Add(targetVelocity.Mul(t))
	a.Seek(self, intercept)
}

func angleBetween(heading, toTarget mgl32.Vec2) float32 {
	headingAngle := math.Atan2(float64(heading.Y()), float64(heading.X()))
	targetAngle := math.Atan2(float64(toTarget.Y()), float64(toTarget.X()))
	return float32(targetAngle - headingAngle)
}

// wrapPi normalizes an angle in radians to [-π, π].
func wrapPi(a float32) float32 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Rotate rotates v by theta radians.
func Rotate(v mgl32.Vec2, theta float32) mgl32.Vec2 {
	s, c := math.Sincos(float64(theta))
	x := float64(v.X())*c - float64(v.Y())*s
	y := float64(v.X())*s + float64(v.Y())*c
	return mgl32.Vec2{float32(x), float32(y)}
}

// Perp returns v rotated 90 degrees counterclockwise.
func Perp(v mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{-v.Y(), v.X()}
}
