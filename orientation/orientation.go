package orientation

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Sample is one roll/pitch/yaw reading from the sensor, in degrees.
// The zero value is a valid level attitude.
type Sample struct {
	Roll  float32 `json:"roll"`
	Pitch float32 `json:"pitch"`
	Yaw   float32 `json:"yaw"`
}

func (s Sample) String() string {
	return fmt.Sprintf("Roll(%.2f) Pitch(%.2f) Yaw(%.2f)", s.Roll, s.Pitch, s.Yaw)
}

// RotationFunc turns a sample into a model rotation matrix.
type RotationFunc func(Sample) mgl32.Mat4

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// Euler composes Rx(roll) * Ry(pitch) * Rz(yaw). Pitch rotates the already
// rolled frame and yaw the rolled and pitched one, so the result suffers
// gimbal lock at pitch = ±90°.
func Euler(s Sample) mgl32.Mat4 {
	m := mgl32.Ident4()
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(s.Roll)))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(s.Pitch)))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(s.Yaw)))
	return m
}

// Quaternion builds the same rotation as Euler through qx * qy * qz.
func Quaternion(s Sample) mgl32.Mat4 {
	q := mgl32.QuatRotate(mgl32.DegToRad(s.Roll), axisX)
	q = q.Mul(mgl32.QuatRotate(mgl32.DegToRad(s.Pitch), axisY))
	q = q.Mul(mgl32.QuatRotate(mgl32.DegToRad(s.Yaw), axisZ))
	return q.Normalize().Mat4()
}

// ByName returns the rotation strategy registered under name.
func ByName(name string) (RotationFunc, error) {
	switch name {
	case "", "euler":
		return Euler, nil
	case "quaternion":
		return Quaternion, nil
	default:
		return nil, fmt.Errorf("unknown rotation strategy %q", name)
	}
}
