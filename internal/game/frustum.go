package game

import (
	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	cullNear float32 = 0.1
	cullFar  float32 = 1000
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum extracts frustum planes from the camera's view-projection matrix
// (Gribb/Hartmann). aspect is the viewport width over its height.
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.GetCameraMatrix(camera)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, cullNear, cullFar)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, cullNear, cullFar)
	}

	// VP = P * V
	vp := rl.MatrixMultiply(view, proj)

	row1 := [4]float32{vp.M0, vp.M4, vp.M8, vp.M12}
	row2 := [4]float32{vp.M1, vp.M5, vp.M9, vp.M13}
	row3 := [4]float32{vp.M2, vp.M6, vp.M10, vp.M14}
	row4 := [4]float32{vp.M3, vp.M7, vp.M11, vp.M15}

	var f Frustum
	f.planes[0] = planeFrom(row4, row1, 1)
	f.planes[1] = planeFrom(row4, row1, -1)
	f.planes[2] = planeFrom(row4, row2, 1)
	f.planes[3] = planeFrom(row4, row2, -1)
	f.planes[4] = planeFrom(row4, row3, 1)
	f.planes[5] = planeFrom(row4, row3, -1)
	return f
}

// planeFrom builds the normalized plane row4 + sign*row.
func planeFrom(row4, row [4]float32, sign float32) Plane {
	return normalizePlane(Plane{
		normal: rl.Vector3{
			X: row4[0] + sign*row[0],
			Y: row4[1] + sign*row[1],
			Z: row4[2] + sign*row[2],
		},
		distance: row4[3] + sign*row[3],
	})
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere tests if a sphere is inside or intersects the frustum
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := 0; i < 6; i++ {
		dist := rl.Vector3DotProduct(f.planes[i].normal, center) + f.planes[i].distance
		if dist < -radius {
			return false
		}
	}
	return true
}

func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for i := 0; i < 6; i++ {
		dist := rl.Vector3DotProduct(f.planes[i].normal, point) + f.planes[i].distance
		if dist < 0 {
			return false
		}
	}
	return true
}

// ContainsAABB tests the box corner furthest along each plane normal. It can report a
// box that straddles two planes outside the frustum as visible, which is fine for culling.
func (f *Frustum) ContainsAABB(box physics.AABB) bool {
	for i := 0; i < 6; i++ {
		n := f.planes[i].normal
		p := box.Min
		if n.X >= 0 {
			p.X = box.Max.X
		}
		if n.Y >= 0 {
			p.Y = box.Max.Y
		}
		if n.Z >= 0 {
			p.Z = box.Max.Z
		}
		if rl.Vector3DotProduct(n, p)+f.planes[i].distance < 0 {
			return false
		}
	}
	return true
}
