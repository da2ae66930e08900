package shade

import (
	"testing"

	"glint/rt/fixed"
	"glint/rt/geom"
	"glint/rt/radiosity"
	"glint/rt/scene"
	"glint/rt/spectrum"
	"glint/rt/vec"
)

var camera = vec.Vec3{}

func baked(s *scene.Scene) *Integrator {
	radiosity.New(s, nil).Run()
	in := New(s)
	in.RegisterCamera(camera)
	return in
}

func TestCenterRayHitsBallInFrontOfBackWall(t *testing.T) {
	s := scene.LiteralBox()
	in := baked(s)
	center := vec.Ray{Origin: camera, Dir: vec.Ints(0, 0, 1)}

	obj, tBall := in.Intersect(center, true)
	// The balls coincide; the first one listed wins the tie.
	if obj != geom.Object(s.Spheres[0]) {
		t.Fatalf("center ray hit %v, want the first ball", obj)
	}
	if !s.Spheres[0].Reflective {
		t.Fatal("the first ball must be the mirror")
	}

	spheres := s.Spheres
	s.Spheres = nil
	in.RegisterCamera(camera)
	obj, tWall := in.Intersect(center, true)
	s.Spheres = spheres

	if obj != geom.Object(s.Planes[4]) {
		t.Fatalf("without balls the center ray hit %v, want the back wall", obj)
	}
	if tWall != fixed.FromInt(4) || tBall >= tWall {
		t.Fatalf("t ball=%v wall=%v", tBall, tWall)
	}
}

func TestMirrorShowsReflectedRay(t *testing.T) {
	s := scene.CornellBox()
	in := baked(s)
	mirror := s.Spheres[0]

	primary := vec.Ray{Origin: camera, Dir: vec.Floats(-0.11, -0.1, 1)}
	obj, tHit := in.Intersect(primary, true)
	if obj != geom.Object(mirror) {
		t.Fatalf("primary ray hit %v, want the mirror", obj)
	}

	hit := primary.At(tHit)
	n := mirror.Normal(hit)
	refl := primary.Dir.Sub(n.Scale(fixed.Two.Mul(vec.Dot(primary.Dir, n))))
	bounce := vec.Ray{Origin: hit.Add(refl.Scale(fixed.FromFloat(0.01))), Dir: refl}

	got := in.ComputeRay(primary, true)
	want := in.ComputeRay(bounce, false).Scale(in.Exposure)
	if got != want {
		t.Fatalf("mirror pixel=%v, exposed reflected ray=%v", got, want)
	}
	if shaded := in.ComputeShading(primary, hit, mirror); shaded != in.ComputeRay(bounce, false) {
		t.Fatalf("mirror shading=%v, want the reflected ray's color", shaded)
	}
	if got == (spectrum.Spectrum{}) {
		t.Fatal("mirror reflects the lit ceiling and must not be black")
	}
}

func TestMirrorDepthLimit(t *testing.T) {
	s := scene.CornellBox()
	in := baked(s)
	in.MaxDepth = 0

	primary := vec.Ray{Origin: camera, Dir: vec.Floats(-0.11, -0.1, 1)}
	if got := in.ComputeRay(primary, true); got != (spectrum.Spectrum{}) {
		t.Fatalf("truncated mirror ray=%v, want black", got)
	}
	if st := in.Stats(); st.Truncated != 1 || st.Rays != 1 {
		t.Fatalf("stats=%+v", st)
	}
	in.ResetStats()
	if in.Stats() != (Stats{}) {
		t.Fatal("ResetStats")
	}
}

func TestFastPathMatchesGeneral(t *testing.T) {
	in := baked(scene.CornellBox())
	for _, d := range []vec.Vec3{
		vec.Ints(0, 0, 1),
		vec.Floats(0.3, -0.4, 1),
		vec.Floats(-0.45, 0.2, 1),
		vec.Floats(0.14, -0.2, 1),
	} {
		r := vec.Ray{Origin: camera, Dir: d}
		if fast, slow := in.ComputeRay(r, true), in.ComputeRay(r, false); fast != slow {
			t.Errorf("dir %v: fast=%v general=%v", d, fast, slow)
		}
	}
}

func TestFastPathIgnoredForOtherOrigins(t *testing.T) {
	in := baked(scene.CornellBox())
	r := vec.Ray{Origin: vec.Floats(0.2, 0.1, 1.5), Dir: vec.Floats(0, -0.3, 1)}
	if a, b := in.ComputeRay(r, true), in.ComputeRay(r, false); a != b {
		t.Fatalf("stale camera cache used: %v vs %v", a, b)
	}
}

func TestExposureScalesDiffuseHits(t *testing.T) {
	in := baked(scene.CornellBox())
	r := vec.Ray{Origin: camera, Dir: vec.Floats(0.3, -0.4, 1)}
	obj, tHit := in.Intersect(r, true)
	if sp, ok := obj.(*geom.Sphere); obj == nil || ok && sp.Reflective {
		t.Fatalf("ray hit %v, want a diffuse surface", obj)
	}
	want := in.ComputeShading(r, r.At(tHit), obj).Scale(in.Exposure)
	if got := in.ComputeRay(r, true); got != want {
		t.Fatalf("ComputeRay=%v, exposed shading=%v", got, want)
	}
}

func TestMirrorExposesEachBounce(t *testing.T) {
	s := scene.CornellBox()
	in := baked(s)
	primary := vec.Ray{Origin: camera, Dir: vec.Floats(-0.11, -0.1, 1)}

	in.Exposure = fixed.One
	unit := in.ComputeRay(primary, true)
	in.Exposure = fixed.Two
	doubled := in.ComputeRay(primary, true)

	// One diffuse hit seen through one mirror bounce is exposed twice.
	if want := unit.Scale(fixed.FromInt(4)); doubled != want {
		t.Fatalf("exposure 2 gives %v, want %v", doubled, want)
	}
}

func TestMissIsBlack(t *testing.T) {
	in := baked(scene.CornellBox())
	r := vec.Ray{Origin: camera, Dir: vec.Ints(0, 0, -1)}
	if got := in.ComputeRay(r, true); got != (spectrum.Spectrum{}) {
		t.Fatalf("miss=%v", got)
	}
}

func TestFloorTextureModulates(t *testing.T) {
	s := scene.CornellBox()
	in := baked(s)
	floor := s.Planes[0]
	r := vec.Ray{Origin: camera, Dir: vec.Floats(-0.2, -0.4, 1)}
	obj, tHit := in.Intersect(r, true)
	if obj != geom.Object(floor) {
		t.Fatalf("ray hit %v, want the floor", obj)
	}
	hit := r.At(tHit)

	textured := in.ComputeShading(r, hit, floor)
	tex := floor.Texture
	floor.Texture = nil
	flat := in.ComputeShading(r, hit, floor)
	floor.Texture = tex

	want := flat.Div(floor.Albedo).Mul(spectrum.FromColor(tex.Sample(hit.Sub(floor.Point), floor.Normal)))
	if textured != want {
		t.Fatalf("textured=%v, want %v", textured, want)
	}
}
