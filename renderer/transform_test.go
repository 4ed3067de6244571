package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/felipepegoraro/opengl-mpu6050/options"
	"github.com/felipepegoraro/opengl-mpu6050/orientation"
)

const eps = 1e-5

// within compares components with an absolute tolerance; mgl32's relative
// comparison rejects float32 noise such as cos(π/2) against an exact zero.
func within(tol float32) func(a, b float32) bool {
	return func(a, b float32) bool {
		return mgl32.Abs(a-b) < tol
	}
}

func TestModelViewAtRestIsViewTranslation(t *testing.T) {
	f, err := NewFrameRenderer(options.Default().Render)
	require.NoError(t, err)

	mv := f.ModelView(orientation.Sample{})
	require.True(t, mv.ApproxFuncEqual(mgl32.Translate3D(0, 0, -12), within(eps)), "got %v", mv)
	require.True(t, mv.ApproxFuncEqual(ViewMatrix(mgl32.Vec3{0, 0, 12}), within(eps)))
}

func TestViewMatrixNegatesCamera(t *testing.T) {
	v := ViewMatrix(mgl32.Vec3{1, -2, 3}).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	require.Equal(t, mgl32.Vec4{-1, 2, -3, 1}, v)
}

func TestModelViewRotatesBeforeTranslating(t *testing.T) {
	camera := mgl32.Vec3{0, 0, 12}
	mv := ModelView(camera, orientation.Euler, orientation.Sample{Yaw: 90})

	got := mv.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	require.True(t, got.ApproxFuncEqual(mgl32.Vec3{0, 1, -12}, within(eps)), "got %v", got)
}

func TestFrameRendererStrategies(t *testing.T) {
	opts := options.Default().Render
	s := orientation.Sample{Roll: 10, Pitch: -5.5, Yaw: 90}

	euler, err := NewFrameRenderer(opts)
	require.NoError(t, err)

	opts.Rotation = "quaternion"
	quat, err := NewFrameRenderer(opts)
	require.NoError(t, err)
	require.True(t, euler.ModelView(s).ApproxFuncEqual(quat.ModelView(s), within(1e-4)))

	opts.Rotation = "bogus"
	_, err = NewFrameRenderer(opts)
	require.Error(t, err)
}

func TestProjection(t *testing.T) {
	opts := options.Default().Render
	want := mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 1000)

	require.Equal(t, want, Projection(opts, 800, 800))
	require.Equal(t, want, Projection(opts, 800, 0))

	wide := Projection(opts, 1600, 800)
	require.InDelta(t, want[0]/2, wide[0], 1e-6)
	require.Equal(t, want[5], wide[5])
}
