// Package camera provides the fixed orbit path the scene is viewed from.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Default orbit constants.
const (
	DefaultRadius       = 1.0
	DefaultHeight       = 0.45
	DefaultAngularSpeed = 0.2
	DefaultLookAtY      = 0.6
	DefaultLookAtZ      = 0.4
)

// Pose is where the camera is and what it looks at.
type Pose struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
}

// ViewMatrix returns the world-to-view transform for this pose (Y up).
func (p Pose) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(p.Position, p.LookAt, mgl32.Vec3{0, 1, 0})
}

// OrbitPath is a circular path of fixed radius at a fixed height. The
// camera is not user controllable; its pose depends only on time.
type OrbitPath struct {
	Radius       float32
	Height       float32
	AngularSpeed float32 // radians per second
	LookAtY      float32 // look-at amplitude on Y
	LookAtZ      float32 // look-at amplitude on Z
}

// DefaultOrbitPath returns the reference camera path.
func DefaultOrbitPath() OrbitPath {
	return OrbitPath{
		Radius:       DefaultRadius,
		Height:       DefaultHeight,
		AngularSpeed: DefaultAngularSpeed,
		LookAtY:      DefaultLookAtY,
		LookAtZ:      DefaultLookAtZ,
	}
}

// Pose returns the camera pose at elapsed time t.
func (o OrbitPath) Pose(t float32) Pose {
	a := t * o.AngularSpeed
	return Pose{
		Position: mgl32.Vec3{
			math32.Sin(a) * o.Radius,
			o.Height,
			math32.Cos(a) * o.Radius,
		},
		LookAt: mgl32.Vec3{
			math32.Cos(t),
			math32.Sin(t) * o.LookAtY,
			math32.Sin(t) * o.LookAtZ,
		},
	}
}

// Lens is a perspective projection.
type Lens struct {
	FovY   float32 // vertical field of view, degrees
	Aspect float32
	Near   float32
	Far    float32
}

// DefaultLens returns a 75° lens with near 0.1 and far 100.
func DefaultLens(aspect float32) Lens {
	return Lens{FovY: 75, Aspect: aspect, Near: 0.1, Far: 100}
}

// Projection returns the projection matrix.
func (l Lens) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(l.FovY), l.Aspect, l.Near, l.Far)
}

// Rig follows an OrbitPath and keeps the latest pose and projection for the
// renderer.
type Rig struct {
	Path OrbitPath
	Lens Lens

	pose       Pose
	view       mgl32.Mat4
	projection mgl32.Mat4
}

// NewRig creates a rig positioned at t = 0.
func NewRig(path OrbitPath, lens Lens) *Rig {
	r := &Rig{Path: path, Lens: lens}
	r.projection = lens.Projection()
	r.Update(0)
	return r
}

// Update recomputes the pose for elapsed time t.
func (r *Rig) Update(t float32) {
	r.pose = r.Path.Pose(t)
	r.view = r.pose.ViewMatrix()
}

// SetProjection adopts a lens and the projection computed from it by the
// viewport owner.
func (r *Rig) SetProjection(lens Lens, m mgl32.Mat4) {
	r.Lens = lens
	r.projection = m
}

// Pose returns the pose of the last Update.
func (r *Rig) Pose() Pose { return r.pose }

// View returns the view matrix of the last Update.
func (r *Rig) View() mgl32.Mat4 { return r.view }

// Projection returns the current projection matrix.
func (r *Rig) Projection() mgl32.Mat4 { return r.projection }
