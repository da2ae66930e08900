package main

import (
	"bytes"
	"image"
	stdcolor "image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"glint/rt/color"
	"glint/rt/lightmap"

	"golang.org/x/image/bmp"
)

func checker(n int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := stdcolor.RGBA{A: 0xFF}
			if y < n/2 {
				c.R = 0xFF // top half red
			} else {
				c.B = 0xFF
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestConvertFlipsRows(t *testing.T) {
	tex := convert(checker(64), 3)
	if tex.Size() != 8 || len(tex.Pix) != 64 {
		t.Fatalf("size=%d pix=%d", tex.Size(), len(tex.Pix))
	}
	if got := tex.At(2, 7); got != color.Red {
		t.Fatalf("top row=%#04x, want red", uint16(got))
	}
	if got := tex.At(5, 0); got != color.Blue {
		t.Fatalf("bottom row=%#04x, want blue", uint16(got))
	}
}

func TestBMPToGTX(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "wood.bmp")
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, checker(40)); err != nil {
		t.Fatalf("bmp.Encode: %v", err)
	}
	if err := os.WriteFile(in, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := decode(in)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	out := filepath.Join(dir, "wood.gtx")
	want := convert(img, 4)
	if err := writeGTX(out, want); err != nil {
		t.Fatalf("writeGTX: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := lightmap.ReadTexture(f)
	if err != nil {
		t.Fatalf("ReadTexture: %v", err)
	}
	if got.Bits != 4 || !equalPix(got.Pix, want.Pix) {
		t.Fatal("round trip changed the texture")
	}
}

func equalPix(a, b []color.Color) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGoSource(t *testing.T) {
	tex := lightmap.NewTexture(1)
	tex.Set(1, 0, color.White)
	src, err := goSource("scene", "tinyTexture", tex)
	if err != nil {
		t.Fatalf("goSource: %v", err)
	}
	s := string(src)
	for _, want := range []string{"package scene", "func tinyTexture() *lightmap.Texture", "Bits: 1", "0xFFDF"} {
		if !strings.Contains(s, want) {
			t.Errorf("generated source lacks %q:\n%s", want, s)
		}
	}
}

func TestVarName(t *testing.T) {
	cases := map[string]string{
		"wood.go":                "woodTexture",
		"textures/wood_floor.go": "woodFloorTexture",
		`c:\tex\brick-wall.go`:   "brickWallTexture",
		".go":                    "texture",
	}
	for in, want := range cases {
		if got := varName(in); got != want {
			t.Errorf("varName(%q)=%q, want %q", in, got, want)
		}
	}
}
