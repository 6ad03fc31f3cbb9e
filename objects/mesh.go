package objects

import (
	"fmt"

	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/mediums"
	"github.com/lumenray/raytrace/rterr"
)

// Mesh is a polygonal surface built from triangles sharing one
// placement and medium; intersecting it keeps the nearest positive hit
// across every triangle, per §4.6's "for each triangle, keep nearest
// positive t" closed form.
type Mesh struct {
	base
	Triangles []*Triangle
}

// NewMesh builds a mesh from (a, b, c) object-space vertex triples, one
// triangle per three consecutive points in vertices.
func NewMesh(vertices []prim.Point3, m *mediums.Medium) (*Mesh, error) {
	if len(vertices)%3 != 0 {
		return nil, fmt.Errorf("%w: mesh vertex count must be a multiple of 3, got %d", rterr.ErrDomainError, len(vertices))
	}
	mesh := &Mesh{base: newBase(KindMesh, m)}
	for i := 0; i+2 < len(vertices); i += 3 {
		tri, err := NewTriangle(vertices[i], vertices[i+1], vertices[i+2], m)
		if err != nil {
			return nil, err
		}
		mesh.Triangles = append(mesh.Triangles, tri)
	}
	if len(mesh.Triangles) == 0 {
		return nil, fmt.Errorf("%w: mesh has no triangles", rterr.ErrGeometryDegenerate)
	}
	return mesh, nil
}

func (msh *Mesh) WorldBounds() AABB {
	box := msh.Triangles[0].WorldBounds()
	for _, tri := range msh.Triangles[1:] {
		box = box.Union(tri.WorldBounds())
	}
	return transformAABB(msh.Transform, box)
}

func (msh *Mesh) Intersect(ray prim.Ray3) (*Hit, error) {
	local := msh.ReverseRay(ray)
	var best *Hit
	for _, tri := range msh.Triangles {
		t, _, _, ok := tri.intersectLocal(local)
		if !ok {
			continue
		}
		if best != nil && t >= best.T {
			continue
		}
		objectPoint := local.Solve(t)
		best = &Hit{
			Object: msh,
			T:      t,
			Point:  msh.ForwardTransform(objectPoint),
			Normal: msh.ForwardNormal(tri.faceNormalObj()),
		}
	}
	return best, nil
}

func (msh *Mesh) Normal(worldPoint prim.Point3) (prim.Vector3, error) {
	local := msh.ReverseTransform(worldPoint)
	var best *Triangle
	bestDist := prim.Scalar(0)
	for _, tri := range msh.Triangles {
		centroid := prim.P3((tri.A.X+tri.B.X+tri.C.X)/3, (tri.A.Y+tri.B.Y+tri.C.Y)/3, (tri.A.Z+tri.B.Z+tri.C.Z)/3)
		d := centroid.Distance(local)
		if best == nil || d < bestDist {
			best, bestDist = tri, d
		}
	}
	if best == nil {
		return prim.Vector3{}, fmt.Errorf("%w: mesh has no triangles", rterr.ErrGeometryDegenerate)
	}
	return msh.ForwardNormal(best.faceNormalObj()), nil
}

func (msh *Mesh) Map(worldPoint prim.Point3) (u, v prim.Scalar) {
	local := msh.ReverseTransform(worldPoint)
	return planarUV(local.X, local.Y)
}
