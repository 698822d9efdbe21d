// Package actuate implements C10: translation of the Steering accumulator's
// (force, rotation) into the discrete input flags the network collaborator
// actually sends (Forward/Backward, Left/Right).
package actuate

import (
	"github.com/dm-vev/zerobot/zero/game"
	"github.com/dm-vev/zerobot/zero/steering"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultRotationThreshold is the dot-product dead-band below which the
// actuator biases steering_direction back toward the rotation target
// instead of letting it dither between Left and Right on successive ticks.
// Call sites needing a tighter or looser band (spec §4.10 cites a
// 0.75-0.996 range depending on caller) pass their own via Update.
const DefaultRotationThreshold float32 = 0.92

const headingAlignThreshold = 0.996
const biasAngle = 0.1 // radians

// Update presses the appropriate combination of Forward/Backward and
// Left/Right on frame given the player's current heading and the tick's
// accumulated steering force/rotation. It is a no-op while self is a
// spectator or still in the post-spawn grace delay.
func Update(self *game.Player, acc *steering.Accumulator, rotationThreshold float32, frame *game.InputFrame) {
	if !self.Alive() || self.Respawning() {
		return
	}

	heading := self.Heading
	hasForce := acc.Force.Len() > 1e-6

	steeringDirection := heading
	if hasForce {
		steeringDirection = acc.Force.Normalize()
	}

	var rotateTarget mgl32.Vec2
	hasRotation := acc.Rotation != 0
	if hasRotation {
		rotateTarget = steering.Rotate(heading, -acc.Rotation)
		if !hasForce {
			steeringDirection = rotateTarget
		}
	}

	if hasRotation && steeringDirection.Dot(rotateTarget) < rotationThreshold {
		steeringDirection = biasToward(steeringDirection, rotateTarget, heading)
	}

	behind := steeringDirection.Dot(heading) < 0
	leftside := steeringDirection.Dot(steering.Perp(heading)) < 0

	if hasForce {
		if behind {
			frame.Set(game.Backward)
		} else {
			frame.Set(game.Forward)
		}
	}

	if heading.Dot(steeringDirection) < headingAlignThreshold {
		if leftside {
			frame.Set(game.Left)
		} else {
			frame.Set(game.Right)
		}
	}
}

// biasToward nudges dir by a fixed angle toward target, picking the sign
// that takes the shorter arc; if target lies behind heading the sign is
// inverted so the bias still turns the agent the short way around.
func biasToward(dir, target, heading mgl32.Vec2) mgl32.Vec2 {
	cross := dir.X()*target.Y() - dir.Y()*target.X()
	angle := float32(biasAngle)
	if cross < 0 {
		angle = -angle
	}
	if target.Dot(heading) < 0 {
		angle = -angle
	}
	return steering.Rotate(dir, angle)
}
