package objects

import (
	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/mediums"
)

// Triangle is three object-space vertices tested with the
// Möller–Trumbore barycentric algorithm; its transform is usually left
// at identity, with the vertices themselves carrying world placement,
// since a mesh of many triangles shares one transform but each triangle
// has independent vertex data.
type Triangle struct {
	base
	A, B, C prim.Point3
}

func NewTriangle(a, b, c prim.Point3, m *mediums.Medium) (*Triangle, error) {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	if edge1.Cross(edge2).IsNearlyZero() {
		return nil, errDegenerate("triangle vertices %v, %v, %v are collinear", a, b, c)
	}
	return &Triangle{base: newBase(KindTriangle, m), A: a, B: b, C: c}, nil
}

func (tr *Triangle) WorldBounds() AABB {
	wa, wb, wc := tr.ForwardTransform(tr.A), tr.ForwardTransform(tr.B), tr.ForwardTransform(tr.C)
	box := AABB{Min: wa, Max: wa}
	box = box.Union(AABB{Min: wb, Max: wb})
	box = box.Union(AABB{Min: wc, Max: wc})
	return box
}

// intersectLocal runs Möller–Trumbore against an object-space ray and
// returns (t, u, v, ok). u, v are the barycentric weights of B and C.
func (tr *Triangle) intersectLocal(ray prim.Ray3) (t, u, v prim.Scalar, ok bool) {
	edge1 := tr.B.Sub(tr.A)
	edge2 := tr.C.Sub(tr.A)
	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if prim.NearlyZero(det) {
		return 0, 0, 0, false
	}
	invDet := 1 / det
	tvec := ray.Origin.Sub(tr.A)
	u = tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}
	qvec := tvec.Cross(edge1)
	v = ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}
	t = edge2.Dot(qvec) * invDet
	return t, u, v, t > selfHitEpsilon
}

func (tr *Triangle) faceNormalObj() prim.Vector3 {
	return tr.B.Sub(tr.A).Cross(tr.C.Sub(tr.A)).MustNormalize()
}

func (tr *Triangle) Intersect(ray prim.Ray3) (*Hit, error) {
	local := tr.ReverseRay(ray)
	t, _, _, ok := tr.intersectLocal(local)
	if !ok {
		return nil, nil
	}
	objectPoint := local.Solve(t)
	worldPoint := tr.ForwardTransform(objectPoint)
	worldNormal := tr.ForwardNormal(tr.faceNormalObj())
	return &Hit{Object: tr, T: t, Point: worldPoint, Normal: worldNormal}, nil
}

func (tr *Triangle) Normal(worldPoint prim.Point3) (prim.Vector3, error) {
	_ = worldPoint
	return tr.ForwardNormal(tr.faceNormalObj()), nil
}

// Map returns the barycentric (u, v) of worldPoint against (B, C),
// computed by re-running the same ray-free barycentric solve used by
// Möller-Trumbore against the point projected onto the triangle's plane.
func (tr *Triangle) Map(worldPoint prim.Point3) (u, v prim.Scalar) {
	local := tr.ReverseTransform(worldPoint)
	edge1 := tr.B.Sub(tr.A)
	edge2 := tr.C.Sub(tr.A)
	n := edge1.Cross(edge2)
	denom := n.Dot(n)
	if prim.NearlyZero(denom) {
		return 0, 0
	}
	w := local.Sub(tr.A)
	u = w.Cross(edge2).Dot(n) / denom
	v = edge1.Cross(w).Dot(n) / denom
	return u, v
}
