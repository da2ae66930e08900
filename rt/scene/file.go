package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"glint/rt/color"
	"glint/rt/fixed"
	"glint/rt/geom"
	"glint/rt/lightmap"
	"glint/rt/vec"
)

// File is the JSON description of a scene. Positions are in scene units;
// colors are 5-bit display channels.
type File struct {
	Light   [3]float32   `json:"light"`
	Planes  []PlaneSpec  `json:"planes"`
	Spheres []SphereSpec `json:"spheres"`
}

type PlaneSpec struct {
	Point   [3]float32 `json:"point"`
	Normal  [3]int     `json:"normal"`
	Color   [3]uint8   `json:"color"`
	Texture string     `json:"texture,omitempty"`
}

type SphereSpec struct {
	Center     [3]float32 `json:"center"`
	Radius     float32    `json:"radius"`
	Reflective bool       `json:"reflective,omitempty"`
	Texture    string     `json:"texture,omitempty"`
}

// FloorTextureName refers to the built-in plank texture.
const FloorTextureName = "floor"

// TextureLoader resolves a texture name from a scene file.
type TextureLoader func(name string) (*lightmap.Texture, error)

// BuiltinTextures resolves only built-in texture names.
func BuiltinTextures(name string) (*lightmap.Texture, error) {
	if name == FloorTextureName {
		return FloorTexture(), nil
	}
	return nil, fmt.Errorf("unknown texture %q", name)
}

// DirTextures resolves built-in names, then .gtx files relative to dir.
func DirTextures(dir string) TextureLoader {
	return func(name string) (*lightmap.Texture, error) {
		if name == FloorTextureName {
			return FloorTexture(), nil
		}
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("open texture: %w", err)
		}
		defer f.Close()
		return lightmap.ReadTexture(f)
	}
}

// Build converts the description into a validated scene.
func (f *File) Build(load TextureLoader) (*Scene, error) {
	cache := map[string]*lightmap.Texture{}
	texture := func(name string) (*lightmap.Texture, error) {
		if name == "" {
			return nil, nil
		}
		if t, ok := cache[name]; ok {
			return t, nil
		}
		t, err := load(name)
		if err != nil {
			return nil, err
		}
		cache[name] = t
		return t, nil
	}

	s := &Scene{Light: floats(f.Light)}
	for i, p := range f.Planes {
		if p.Color[0] > color.Mask || p.Color[1] > color.Mask || p.Color[2] > color.Mask {
			return nil, fmt.Errorf("plane %d: %w", i, ErrBadColor)
		}
		tex, err := texture(p.Texture)
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
		n := vec.Ints(p.Normal[0], p.Normal[1], p.Normal[2])
		c := color.RGB(p.Color[0], p.Color[1], p.Color[2])
		s.Planes = append(s.Planes, geom.NewPlane(floats(p.Point), n, c, tex))
	}
	for i, sp := range f.Spheres {
		tex, err := texture(sp.Texture)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		s.Spheres = append(s.Spheres, &geom.Sphere{
			Center:     floats(sp.Center),
			Radius:     fixed.FromFloat(sp.Radius),
			Reflective: sp.Reflective,
			Texture:    tex,
		})
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func floats(v [3]float32) vec.Vec3 { return vec.Floats(v[0], v[1], v[2]) }

// Decode reads a JSON scene description. Unknown fields are rejected.
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &f, nil
}

// Load reads and builds a scene file. Texture paths are relative to the
// file's directory.
func Load(path string) (*Scene, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return nil, err
	}
	return f.Build(DirTextures(filepath.Dir(path)))
}

// Save writes a scene description as indented JSON.
func Save(path string, f *File) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}
	defer fh.Close()

	enc := json.NewEncoder(fh)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}
