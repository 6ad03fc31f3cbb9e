// Package config loads a scene description — camera, background,
// objects, lights, and render tuning — from YAML, the thin optional
// "scene file" collaborator spec.md §6 names. It is a convenience
// loader, not a required entry point: every type it builds (raytrace.Scene,
// camera.Camera) can equally be constructed directly in Go, the way
// raytrace.ExampleScene does.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	rt "github.com/lumenray/raytrace"
	"github.com/lumenray/raytrace/camera"
	"github.com/lumenray/raytrace/color"
	"github.com/lumenray/raytrace/internal/prim"
	"github.com/lumenray/raytrace/lights"
	"github.com/lumenray/raytrace/mediums"
	"github.com/lumenray/raytrace/objects"
	"github.com/lumenray/raytrace/rterr"
)

// Vec3 is a YAML-friendly (x, y, z) triple, used for both points and
// directions depending on the field it fills.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) point() prim.Point3   { return prim.P3(v.X, v.Y, v.Z) }
func (v Vec3) vector() prim.Vector3 { return prim.V3(v.X, v.Y, v.Z) }

// RGB is a YAML-friendly linear color triple.
type RGB struct {
	R, G, B float64
}

func (c RGB) color() color.Color { return color.New(c.R, c.G, c.B) }

// MediumDoc describes the handful of Medium parameters exposed to YAML:
// a flat diffuse albedo plus the two scalars that drive the default
// Radiosity split (spec.md §4.7). A scene wanting a procedural texture
// or a custom Radiosity curve builds its Medium in Go instead.
type MediumDoc struct {
	Diffuse         *RGB    `yaml:"diffuse"`
	Smoothness      float64 `yaml:"smoothness"`
	RefractiveIndex float64 `yaml:"refractive_index"`
}

func (m MediumDoc) build() *mediums.Medium {
	if m.RefractiveIndex == 0 {
		m.RefractiveIndex = 1
	}
	med := &mediums.Medium{
		Smoothness:      m.Smoothness,
		RefractiveIndex: m.RefractiveIndex,
	}
	if m.Diffuse != nil {
		c := m.Diffuse.color()
		med.DiffuseFn = func(prim.Point3) color.Color { return c }
	}
	return med
}

// ObjectDoc describes one scene object. Type selects which of the
// dimension fields apply: "sphere" uses Radius, "plane" uses none,
// "square" uses Edge, "cuboid" uses HalfExtents.
type ObjectDoc struct {
	Type        string    `yaml:"type"`
	Radius      float64   `yaml:"radius"`
	Edge        float64   `yaml:"edge"`
	HalfExtents Vec3      `yaml:"half_extents"`
	Position    Vec3      `yaml:"position"`
	Medium      MediumDoc `yaml:"medium"`
}

func (o ObjectDoc) build() (objects.Object, error) {
	medium := o.Medium.build()
	var obj objects.Object
	switch o.Type {
	case "sphere":
		s, err := objects.NewSphere(o.Radius, medium)
		if err != nil {
			return nil, fmt.Errorf("%w: object: %v", rterr.ErrConfigError, err)
		}
		obj = s
	case "plane":
		obj = objects.NewPlane(medium)
	case "square":
		s, err := objects.NewSquare(o.Edge, medium)
		if err != nil {
			return nil, fmt.Errorf("%w: object: %v", rterr.ErrConfigError, err)
		}
		obj = s
	case "cuboid":
		c, err := objects.NewCuboid(o.HalfExtents.X, o.HalfExtents.Y, o.HalfExtents.Z, medium)
		if err != nil {
			return nil, fmt.Errorf("%w: object: %v", rterr.ErrConfigError, err)
		}
		obj = c
	default:
		return nil, fmt.Errorf("%w: unknown object type %q", rterr.ErrConfigError, o.Type)
	}
	obj.MoveTo(o.Position.point())
	return obj, nil
}

// LightDoc describes one light source. Type selects "point" or
// "directional", the two light shapes a YAML scene can name directly;
// Spot and Area are built in Go when a scene needs them.
type LightDoc struct {
	Type      string `yaml:"type"`
	Position  Vec3   `yaml:"position"`
	Direction Vec3   `yaml:"direction"`
	Color     RGB    `yaml:"color"`
}

func (l LightDoc) build() (lights.Light, error) {
	switch l.Type {
	case "point":
		return lights.Point{Position: l.Position.point(), PowerVal: l.Color.color()}, nil
	case "directional":
		return lights.Directional{Direction: l.Direction.vector(), ColorVal: l.Color.color()}, nil
	default:
		return nil, fmt.Errorf("%w: unknown light type %q", rterr.ErrConfigError, l.Type)
	}
}

// CameraDoc describes the pinhole camera.
type CameraDoc struct {
	Position   Vec3    `yaml:"position"`
	LookAt     Vec3    `yaml:"look_at"`
	Up         Vec3    `yaml:"up"`
	FovDegrees float64 `yaml:"fov_degrees"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
}

// RenderDoc describes the render-tuning knobs raytrace.Config exposes.
type RenderDoc struct {
	RecursionDepth int     `yaml:"recursion_depth"`
	AdaptiveCutoff float64 `yaml:"adaptive_cutoff"`
	Samples        int     `yaml:"samples"`
	MaskThreshold  float64 `yaml:"mask_threshold"`
}

func (r *RenderDoc) config() rt.Config {
	cfg := rt.DefaultConfig()
	if r == nil {
		return cfg
	}
	if r.RecursionDepth > 0 {
		cfg.RecursionDepth = r.RecursionDepth
	}
	if r.AdaptiveCutoff > 0 {
		cfg.AdaptiveCutoff = r.AdaptiveCutoff
	}
	if r.Samples > 0 {
		cfg.Samples = r.Samples
	}
	cfg.MaskThreshold = r.MaskThreshold
	return cfg
}

// Document is the top-level shape of a scene YAML file.
type Document struct {
	Camera     CameraDoc   `yaml:"camera"`
	Background *RGB        `yaml:"background"`
	Medium     *MediumDoc  `yaml:"medium"`
	Objects    []ObjectDoc `yaml:"objects"`
	Lights     []LightDoc  `yaml:"lights"`
	Render     *RenderDoc  `yaml:"render"`
}

// Parse decodes a scene document from YAML bytes, without touching the
// filesystem; Load wraps this with a file read.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", rterr.ErrConfigError, err)
	}
	return &doc, nil
}

// Build turns a decoded Document into a ready-to-render Scene and
// Camera, the same pair raytrace.ExampleScene returns.
func (doc *Document) Build() (*rt.Scene, *camera.Camera, error) {
	sceneObjects := make([]objects.Object, 0, len(doc.Objects))
	for i, od := range doc.Objects {
		obj, err := od.build()
		if err != nil {
			return nil, nil, fmt.Errorf("object %d: %w", i, err)
		}
		sceneObjects = append(sceneObjects, obj)
	}

	sceneLights := make([]lights.Light, 0, len(doc.Lights))
	for i, ld := range doc.Lights {
		l, err := ld.build()
		if err != nil {
			return nil, nil, fmt.Errorf("light %d: %w", i, err)
		}
		sceneLights = append(sceneLights, l)
	}

	background := rt.ConstantBackground(color.Black)
	if doc.Background != nil {
		background = rt.ConstantBackground(doc.Background.color())
	}

	ambient := mediums.Medium{RefractiveIndex: 1}
	if doc.Medium != nil {
		ambient = *doc.Medium.build()
	}

	scene := rt.NewScene(sceneObjects, sceneLights, background, ambient, doc.Render.config())

	cd := doc.Camera
	if cd.Width <= 0 || cd.Height <= 0 {
		cd.Width, cd.Height = 512, 512
	}
	if cd.FovDegrees <= 0 || cd.FovDegrees >= 180 {
		cd.FovDegrees = 45
	}
	cam, err := camera.New(cd.Position.point(), cd.LookAt.point(), cd.Up.vector(), cd.FovDegrees, cd.Width, cd.Height)
	if err != nil {
		return nil, nil, err
	}
	return scene, cam, nil
}

// Load reads path, parses it as a scene document, and builds the Scene
// and Camera it describes.
func Load(path string) (*rt.Scene, *camera.Camera, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", rterr.ErrFileError, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, nil, err
	}
	return doc.Build()
}
