package scene

import (
	"glint/rt/color"
	"glint/rt/lightmap"
)

// box lists the five walls of the 2x2x2 room spanning x,y in [-1, 1] and
// z in [2, 4]. The front is open toward the camera.
func box() []PlaneSpec {
	return []PlaneSpec{
		{Point: [3]float32{-1, -1, 2}, Normal: [3]int{0, 1, 0}, Color: [3]uint8{29, 24, 18}, Texture: FloorTextureName},
		{Point: [3]float32{-1, 1, 2}, Normal: [3]int{0, -1, 0}, Color: [3]uint8{24, 24, 24}},
		{Point: [3]float32{-1, -1, 2}, Normal: [3]int{1, 0, 0}, Color: [3]uint8{24, 9, 9}},
		{Point: [3]float32{1, -1, 2}, Normal: [3]int{-1, 0, 0}, Color: [3]uint8{9, 9, 26}},
		{Point: [3]float32{-1, -1, 4}, Normal: [3]int{0, 0, -1}, Color: [3]uint8{24, 24, 24}},
	}
}

// CornellBoxFile describes the default scene: a mirror ball and a diffuse
// ball resting near the floor, lit from just below the ceiling.
func CornellBoxFile() *File {
	return &File{
		Light:  [3]float32{0, 0.5, 3},
		Planes: box(),
		Spheres: []SphereSpec{
			{Center: [3]float32{-0.33, -0.6, 3.052}, Radius: 0.4, Reflective: true},
			{Center: [3]float32{0.43, -0.6, 2.43}, Radius: 0.4},
		},
	}
}

// LiteralBoxFile describes the untuned layout: both balls coincide at the
// room's center and the light sits on the ceiling.
func LiteralBoxFile() *File {
	return &File{
		Light:  [3]float32{0, 1, 3},
		Planes: box(),
		Spheres: []SphereSpec{
			{Center: [3]float32{0, 0, 3}, Radius: 0.4, Reflective: true},
			{Center: [3]float32{0, 0, 3}, Radius: 0.4},
		},
	}
}

// CornellBox builds the default scene.
func CornellBox() *Scene { return mustBuild(CornellBoxFile()) }

// LiteralBox builds the untuned layout.
func LiteralBox() *Scene { return mustBuild(LiteralBoxFile()) }

func mustBuild(f *File) *Scene {
	s, err := f.Build(BuiltinTextures)
	if err != nil {
		panic(err)
	}
	return s
}

const (
	floorBits  = 5
	plankWidth = 8
)

var plankTones = [...][3]uint8{
	{29, 24, 18},
	{27, 21, 15},
	{30, 25, 19},
	{26, 20, 14},
}

// FloorTexture builds a 32x32 wooden plank texture. Planks run along the
// texture's y axis (scene depth on the floor) and their butt joints are
// staggered.
func FloorTexture() *lightmap.Texture {
	t := lightmap.NewTexture(floorBits)
	n := t.Size()
	for x := 0; x < n; x++ {
		plank := x / plankWidth
		tone := plankTones[plank%len(plankTones)]
		for y := 0; y < n; y++ {
			dark := uint8(0)
			switch {
			case x%plankWidth == 0 || (y+plank*13)%n == 0:
				dark = 6
			case (x*7+y*3+plank*5)%9 == 0:
				dark = 2
			}
			t.Set(x, y, color.RGB(tone[0]-dark, tone[1]-dark, tone[2]-dark))
		}
	}
	return t
}
