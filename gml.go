package raytrace

import (
	"fmt"

	"github.com/lumenray/raytrace/camera"
	"github.com/lumenray/raytrace/color"
	"github.com/lumenray/raytrace/internal/gml"
	"github.com/lumenray/raytrace/internal/imgio"
	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/lights"
	"github.com/lumenray/raytrace/mediums"
	"github.com/lumenray/raytrace/objects"
)

// pointToVec3 converts a GML Point literal to a world-space point.
func pointToVec3(p gml.Point) prim.Point3 {
	return prim.P3(prim.Scalar(p.X), prim.Scalar(p.Y), prim.Scalar(p.Z))
}

func pointToColor(p gml.Point) color.Color {
	return color.New(float64(p.X), float64(p.Y), float64(p.Z))
}

// convertGMLSceneObjects flattens a gml.SceneObject tree (Sphere and
// Union, the two constructors the language's builtins expose) into
// the root package's objects.Object list. A sphere's GML SurfaceFn is
// not evaluated here: spec.md's supplemented GML surface is a solid
// color closure left for a future evaluator extension, so every
// sphere currently renders with a neutral matte medium.
func convertGMLSceneObjects(obj gml.SceneObject) ([]objects.Object, error) {
	switch o := obj.(type) {
	case *gml.Sphere:
		medium := &mediums.Medium{
			DiffuseFn: func(prim.Point3) color.Color { return color.New(0.7, 0.7, 0.7) },
		}
		sphere, err := objects.NewSphere(prim.Scalar(o.Radius), medium)
		if err != nil {
			return nil, err
		}
		sphere.MoveTo(pointToVec3(o.Center))
		return []objects.Object{sphere}, nil
	case *gml.Union:
		var result []objects.Object
		for _, child := range o.Objects {
			converted, err := convertGMLSceneObjects(child)
			if err != nil {
				return nil, err
			}
			result = append(result, converted...)
		}
		return result, nil
	default:
		return nil, fmt.Errorf("gml: unsupported scene object %T", obj)
	}
}

// convertGMLLights turns the render builtin's []*gml.PointLight into
// lights.Light values.
func convertGMLLights(in []*gml.PointLight) []lights.Light {
	out := make([]lights.Light, 0, len(in))
	for _, l := range in {
		out = append(out, lights.Point{
			Position: pointToVec3(l.Position),
			PowerVal: pointToColor(l.Color),
		})
	}
	return out
}

// RenderGMLArgs builds a Scene and Camera from a GML program's render
// call and renders it, for use as (or from within) an
// gml.EvalState.Render callback.
func RenderGMLArgs(args *gml.RenderArgs) (*imgio.Image, Stats, error) {
	sceneObjects, err := convertGMLSceneObjects(args.Scene)
	if err != nil {
		return nil, Stats{}, err
	}
	lightList := convertGMLLights(args.Lights)

	depth := args.Depth
	if depth <= 0 {
		depth = DefaultRecursionDepth
	}
	cfg := DefaultConfig()
	cfg.RecursionDepth = depth

	scene := NewScene(sceneObjects, lightList, ConstantBackground(color.Black), mediums.Medium{RefractiveIndex: 1.0}, cfg)

	width, height := args.Width, args.Height
	if width <= 0 || height <= 0 {
		width, height = 512, 512
	}
	fov := args.Fov
	if fov <= 0 || fov >= 180 {
		fov = 45
	}
	cam, err := camera.New(prim.P3(0, 0, 5), prim.P3(0, 0, 0), prim.V3(0, 1, 0), fov, width, height)
	if err != nil {
		return nil, Stats{}, err
	}

	eval := NewEvaluator(scene)
	stats := Render(eval, cam, nil)
	return cam.Image, stats, nil
}

// ParseAndRenderGML parses and evaluates a GML program, renders the
// scene its render call describes, and returns the rendered image
// plus the render statistics. Grounded on the teacher's
// ParseAndRenderGML (raytracer.go): parse, wire EvalState.Render to
// the package's own Render, and evaluate.
func ParseAndRenderGML(program string) (*imgio.Image, Stats, error) {
	parser := gml.NewParser(program)
	tokens, err := parser.Parse()
	if err != nil {
		return nil, Stats{}, err
	}

	state := gml.NewEvalState()
	var result *imgio.Image
	var stats Stats
	var renderErr error

	state.Render = func(_ *gml.EvalState, args *gml.RenderArgs) error {
		result, stats, renderErr = RenderGMLArgs(args)
		return renderErr
	}

	if err := state.Eval(tokens); err != nil {
		return nil, Stats{}, err
	}
	if renderErr != nil {
		return nil, Stats{}, renderErr
	}
	return result, stats, nil
}
