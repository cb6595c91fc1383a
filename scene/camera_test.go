package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChadNetwig/OpenGL-3DScene/math"
)

func TestNewCameraLooksDownNegativeZ(t *testing.T) {
	c := NewCamera(math.Vec3{X: 2, Y: 2, Z: 12})
	f := c.Front()
	assert.InDelta(t, 0, f.X, 1e-5)
	assert.InDelta(t, 0, f.Y, 1e-5)
	assert.InDelta(t, -1, f.Z, 1e-5)
}

func TestCameraPitchClamp(t *testing.T) {
	c := NewCamera(math.Vec3Zero)
	c.ProcessMouseMove(0, 10000)
	assert.Equal(t, float32(MaxPitchDegrees), c.Pitch)
	c.ProcessMouseMove(0, -100000)
	assert.Equal(t, float32(-MaxPitchDegrees), c.Pitch)
	// basis stays orthonormal at the clamp
	assert.InDelta(t, 1, c.Front().Length(), 1e-5)
	assert.InDelta(t, 0, c.Front().Dot(c.Right()), 1e-5)
}

func TestCameraKeyboardMovesAlongBasis(t *testing.T) {
	c := NewCamera(math.Vec3Zero)
	c.MovementSpeed = 2

	c.ProcessKeyboard(CameraForward, 0.5)
	assert.InDelta(t, -1, c.Position.Z, 1e-5)

	c.ProcessKeyboard(CameraRight, 0.5)
	assert.InDelta(t, 1, c.Position.X, 1e-5)

	c.ProcessKeyboard(CameraUp, 0.5)
	assert.InDelta(t, 1, c.Position.Y, 1e-5)

	c.ProcessKeyboard(CameraBackward, 0.5)
	c.ProcessKeyboard(CameraLeft, 0.5)
	c.ProcessKeyboard(CameraDown, 0.5)
	assert.InDelta(t, 0, c.Position.Length(), 1e-5)
}

func TestCameraScrollAdjustsSpeed(t *testing.T) {
	c := NewCamera(math.Vec3Zero)
	c.ProcessScroll(3)
	assert.InDelta(t, 5.5, c.MovementSpeed, 1e-5)
	c.ProcessScroll(-100)
	assert.Equal(t, float32(MinMoveSpeed), c.MovementSpeed)
	c.ProcessScroll(1000)
	assert.Equal(t, float32(MaxMoveSpeed), c.MovementSpeed)
}

func TestViewMatrixAtOrigin(t *testing.T) {
	c := NewCamera(math.Vec3Zero)
	view := c.ViewMatrix()
	// looking down -Z from the origin is the identity view
	id := math.Mat4Identity()
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			assert.InDelta(t, id[col][row], view[col][row], 1e-5)
		}
	}
}
