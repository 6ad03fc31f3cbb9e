package raytrace

import (
	"github.com/lumenray/raytrace/camera"
	"github.com/lumenray/raytrace/color"
	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/lights"
	"github.com/lumenray/raytrace/mediums"
	"github.com/lumenray/raytrace/objects"
)

// ExampleScene builds the scenario spec.md §8 describes for its
// deterministic rendering tests: a polished metal sphere at the
// origin lit by a single directional light, floating over a
// checkerboard plane at z=-1, against a flat background. It mirrors
// the teacher's ExampleScene1 (raytracer.go), rebuilt on the
// objects/mediums/lights API in place of the teacher's ad hoc
// Sphere/Material literals.
func ExampleScene(widthPx, heightPx int) (*Scene, *camera.Camera, error) {
	metal := &mediums.Medium{
		DiffuseFn:       func(prim.Point3) color.Color { return color.New(0.6, 0.6, 0.65) },
		Smoothness:      0.9,
		RefractiveIndex: 1.0,
	}
	sphere, err := objects.NewSphere(1, metal)
	if err != nil {
		return nil, nil, err
	}

	checker := &mediums.Medium{
		DiffuseFn: mediums.Checkerboard3(mediums.Palette{
			color.New(0.9, 0.9, 0.9),
			color.New(0.1, 0.1, 0.1),
		}),
		Smoothness: 0,
	}
	floor := objects.NewPlane(checker)
	floor.MoveTo(prim.P3(0, 0, -1))

	sun := lights.Directional{
		Direction: prim.V3(-0.3, -1, -0.3),
		ColorVal:  color.New(1, 1, 1),
	}

	background := ConstantBackground(color.New(0.05, 0.05, 0.08))

	scene := NewScene(
		[]objects.Object{sphere, floor},
		[]lights.Light{sun},
		background,
		mediums.Medium{RefractiveIndex: 1.0},
		DefaultConfig(),
	)

	cam, err := camera.New(prim.P3(0, 0, 10), prim.P3(0, 0, -1), prim.V3(0, 1, 0), 40, widthPx, heightPx)
	if err != nil {
		return nil, nil, err
	}
	return scene, cam, nil
}
