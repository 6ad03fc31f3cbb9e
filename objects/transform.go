package objects

import (
	"github.com/lumenray/raytrace/internal/linalg"
	"github.com/lumenray/raytrace/internal/prim"
)

// Transform tracks an object's placement: a translation, an Euler
// yaw-pitch-roll rotation, and a per-axis scale, together with the
// forward rotation matrix and its inverse. The inverse is recomputed
// only when rotation changes, never on the hot intersect path.
type Transform struct {
	position         prim.Point3
	yaw, pitch, roll prim.Radians
	sx, sy, sz       prim.Scalar

	rotation    linalg.Matrix
	rotationInv linalg.Matrix
}

// NewTransform returns the identity placement: origin, no rotation,
// unit scale.
func NewTransform() Transform {
	t := Transform{sx: 1, sy: 1, sz: 1}
	t.recomputeRotation()
	return t
}

func (t *Transform) recomputeRotation() {
	t.rotation = linalg.RotationMatrix3(t.yaw, t.pitch, t.roll)
	t.rotationInv = linalg.Transpose(t.rotation)
}

// Position returns the world-space origin of the object's frame.
func (t Transform) Position() prim.Point3 { return t.position }

// MoveTo sets the world-space origin outright.
func (t *Transform) MoveTo(p prim.Point3) { t.position = p }

// MoveBy translates the world-space origin by v.
func (t *Transform) MoveBy(v prim.Vector3) { t.position = t.position.Add(v) }

// SetRotation replaces the Euler angles and recomputes the cached
// rotation matrix and its inverse.
func (t *Transform) SetRotation(yaw, pitch, roll prim.Radians) {
	t.yaw, t.pitch, t.roll = yaw, pitch, roll
	t.recomputeRotation()
}

// SetScale replaces the per-axis scale factors. All three must be
// non-zero for the transform to remain invertible; a zero factor
// collapses the corresponding axis and reverse_transform will divide by
// zero, which the caller is expected never to configure (mirrors the
// spec's "the transform is invertible" invariant on Object).
func (t *Transform) SetScale(sx, sy, sz prim.Scalar) {
	t.sx, t.sy, t.sz = sx, sy, sz
}

func (t Transform) scaleVector(v prim.Vector3) prim.Vector3 {
	return prim.V3(v.X*t.sx, v.Y*t.sy, v.Z*t.sz)
}

func (t Transform) unscaleVector(v prim.Vector3) prim.Vector3 {
	return prim.V3(v.X/t.sx, v.Y/t.sy, v.Z/t.sz)
}

// mustRotate applies a cached 3x3 rotation matrix. The only failure
// mode MulVector3 reports is a dimension mismatch, which cannot happen
// against a matrix this package builds itself; treating it as a panic
// keeps Transform's own methods error-free, matching the library's
// mustAt convention for internally-guaranteed invariants.
func mustRotate(m linalg.Matrix, v prim.Vector3) prim.Vector3 {
	out, err := linalg.MulVector3(m, v)
	if err != nil {
		panic(err)
	}
	return out
}

// ForwardPoint maps an object-space point into world space:
// world = position + R*(S*local).
func (t Transform) ForwardPoint(p prim.Point3) prim.Point3 {
	scaled := t.scaleVector(p.ToVector3())
	return t.position.Add(mustRotate(t.rotation, scaled))
}

// ReversePoint maps a world-space point back into object space:
// local = S^-1 * R^T * (world - position).
func (t Transform) ReversePoint(p prim.Point3) prim.Point3 {
	local := p.Sub(t.position)
	unrotated := mustRotate(t.rotationInv, local)
	return t.unscaleVector(unrotated).AsPoint3()
}

// ForwardVector maps an object-space displacement into world space,
// ignoring the translation component.
func (t Transform) ForwardVector(v prim.Vector3) prim.Vector3 {
	return mustRotate(t.rotation, t.scaleVector(v))
}

// ReverseVector maps a world-space displacement back into object space.
func (t Transform) ReverseVector(v prim.Vector3) prim.Vector3 {
	return t.unscaleVector(mustRotate(t.rotationInv, v))
}

// ForwardNormal maps an object-space surface normal into world space
// using the inverse-transpose rule. For an orthonormal rotation and a
// diagonal scale this reduces to rotating the inverse-scaled normal,
// then renormalizing.
func (t Transform) ForwardNormal(n prim.Vector3) prim.Vector3 {
	unscaled := t.unscaleVector(n)
	return mustRotate(t.rotation, unscaled).MustNormalize()
}

// ReverseRay transforms a world ray into object space for closed-form
// intersection.
func (t Transform) ReverseRay(r prim.Ray3) prim.Ray3 {
	return prim.NewRay3(t.ReversePoint(r.Origin), t.ReverseVector(r.Direction))
}
