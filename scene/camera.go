package scene

import (
	"github.com/chewxy/math32"

	"github.com/ChadNetwig/OpenGL-3DScene/math"
)

// CameraMovement names a movement direction for keyboard input.
type CameraMovement int

const (
	CameraForward CameraMovement = iota
	CameraBackward
	CameraLeft
	CameraRight
	CameraUp
	CameraDown
)

// Camera movement limits. Pitch stops short of the poles so the view
// matrix never degenerates; scroll adjusts speed within a usable range.
const (
	MaxPitchDegrees = 89.0
	MinMoveSpeed    = 0.5
	MaxMoveSpeed    = 20.0
)

// Camera is a free-flying first-person camera driven by yaw/pitch Euler
// angles. Mouse movement turns the view, WASD/QE translates along the
// camera basis, and the scroll wheel adjusts the movement speed.
type Camera struct {
	Position math.Vec3
	WorldUp  math.Vec3

	// Yaw and Pitch are in degrees. Yaw -90 looks down -Z.
	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32

	front math.Vec3
	right math.Vec3
	up    math.Vec3
}

// NewCamera creates a camera at the given position looking down -Z.
func NewCamera(position math.Vec3) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          math.Vec3{Y: 1},
		Yaw:              -90,
		Pitch:            0,
		MovementSpeed:    2.5,
		MouseSensitivity: 0.1,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the world-to-view transform.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.Mat4LookAt(c.Position, c.Position.Add(c.front), c.up)
}

func (c *Camera) Front() math.Vec3 { return c.front }
func (c *Camera) Right() math.Vec3 { return c.right }
func (c *Camera) Up() math.Vec3    { return c.up }

// ProcessKeyboard translates the camera along its basis vectors.
func (c *Camera) ProcessKeyboard(direction CameraMovement, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime
	switch direction {
	case CameraForward:
		c.Position = c.Position.Add(c.front.Mul(velocity))
	case CameraBackward:
		c.Position = c.Position.Sub(c.front.Mul(velocity))
	case CameraLeft:
		c.Position = c.Position.Sub(c.right.Mul(velocity))
	case CameraRight:
		c.Position = c.Position.Add(c.right.Mul(velocity))
	case CameraUp:
		c.Position = c.Position.Add(c.up.Mul(velocity))
	case CameraDown:
		c.Position = c.Position.Sub(c.up.Mul(velocity))
	}
}

// ProcessMouseMove turns the view by a cursor delta in pixels. Pitch is
// clamped to MaxPitchDegrees either side of level.
func (c *Camera) ProcessMouseMove(dx, dy float32) {
	c.Yaw += dx * c.MouseSensitivity
	c.Pitch += dy * c.MouseSensitivity

	if c.Pitch > MaxPitchDegrees {
		c.Pitch = MaxPitchDegrees
	}
	if c.Pitch < -MaxPitchDegrees {
		c.Pitch = -MaxPitchDegrees
	}
	c.updateVectors()
}

// ProcessScroll adjusts the movement speed, not the field of view.
func (c *Camera) ProcessScroll(dy float32) {
	c.MovementSpeed += dy
	if c.MovementSpeed < MinMoveSpeed {
		c.MovementSpeed = MinMoveSpeed
	}
	if c.MovementSpeed > MaxMoveSpeed {
		c.MovementSpeed = MaxMoveSpeed
	}
}

func (c *Camera) updateVectors() {
	yaw := c.Yaw * math32.Pi / 180
	pitch := c.Pitch * math32.Pi / 180

	c.front = math.Vec3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
	c.right = c.front.Cross(c.WorldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
