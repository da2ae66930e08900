package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"image"
	stdcolor "image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"glint/internal/lutgen"
	"glint/rt/fixed"
	"glint/rt/lightmap"
	"glint/rt/radiosity"
	"glint/rt/scene"
	"glint/rt/spectrum"

	"golang.org/x/image/draw"
)

type table struct {
	group string
	name  string
	want  []int32
	have  []int32
}

func tables() []table {
	cos, sin := lutgen.Ring(lightmap.MapSize)
	height, radius := lutgen.Elevation(lightmap.MapSize)
	return []table{
		{"gamma", "GammaLUT", lutgen.Gamma(len(spectrum.GammaLUT)), spectrum.GammaLUT[:]},
		{"degamma", "DegammaLUT", lutgen.Gamma(len(spectrum.DegammaLUT)), spectrum.DegammaLUT[:]},
		{"asin", "AsinLUT", lutgen.Asin(), fixed.AsinLUT[:]},
		{"sphere", "RingX", cos, lightmap.RingX[:]},
		{"sphere", "RingZ", sin, lightmap.RingZ[:]},
		{"sphere", "BandHeight", height, lightmap.BandHeight[:]},
		{"sphere", "BandRadius", radius, lightmap.BandRadius[:]},
	}
}

func main() {
	var (
		which   = flag.String("table", "all", "gamma|degamma|asin|sphere|all.")
		outPath = flag.String("out", "", "Write generated Go declarations here instead of stdout.")
		check   = flag.Bool("check", false, "Compare the embedded tables against their formulas instead of printing.")
		dumpDir = flag.String("dump", "", "Bake the Cornell box and write every lightmap as PNG into this directory.")
		zoom    = flag.Int("zoom", 16, "Upscale factor for -dump images.")
	)
	flag.Parse()

	if *dumpDir != "" {
		if err := dumpLightmaps(*dumpDir, *zoom); err != nil {
			fatalf("dump: %v", err)
		}
		return
	}

	var sel []table
	for _, t := range tables() {
		if *which == "all" || strings.EqualFold(*which, t.group) {
			sel = append(sel, t)
		}
	}
	if len(sel) == 0 {
		fatalf("unknown table: %s", *which)
	}

	if *check {
		bad := 0
		for _, t := range sel {
			if i := firstDiff(t.want, t.have); i >= 0 {
				fmt.Printf("%s: entry %d is %d, formula gives %d\n", t.name, i, at(t.have, i), at(t.want, i))
				bad++
				continue
			}
			fmt.Printf("%s: ok (%d entries)\n", t.name, len(t.have))
		}
		if bad > 0 {
			os.Exit(1)
		}
		return
	}

	src, err := render(sel)
	if err != nil {
		fatalf("format: %v", err)
	}
	if *outPath == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*outPath, src, 0o644); err != nil {
		fatalf("write: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func firstDiff(a, b []int32) int {
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		if i >= len(a) || i >= len(b) || a[i] != b[i] {
			return i
		}
	}
	return -1
}

func at(v []int32, i int) int32 {
	if i < len(v) {
		return v[i]
	}
	return 0
}

// render emits gofmt'ed var declarations for the tables, eight entries per
// line.
func render(ts []table) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("// Code generated by mklut. DO NOT EDIT.\n\n")
	for _, t := range ts {
		fmt.Fprintf(&b, "var %s = [%d]int32{\n", t.name, len(t.want))
		for i, v := range t.want {
			if i%8 == 0 {
				b.WriteByte('\t')
			}
			fmt.Fprintf(&b, "%d,", v)
			if i%8 == 7 || i == len(t.want)-1 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString("}\n\n")
	}
	return format.Source(b.Bytes())
}

type stderrLog struct{}

func (stderrLog) WriteLineString(s string) { fmt.Fprintln(os.Stderr, s) }

func dumpLightmaps(dir string, zoom int) error {
	if zoom < 1 {
		zoom = 1
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	s := scene.CornellBox()
	radiosity.New(s, stderrLog{}).Run()

	for i, p := range s.Planes {
		if err := writeTexture(filepath.Join(dir, fmt.Sprintf("plane%d.png", i)), p.Lightmap.ToTexture(), zoom); err != nil {
			return err
		}
	}
	for i, sp := range s.Spheres {
		if sp.Reflective {
			continue
		}
		if err := writeTexture(filepath.Join(dir, fmt.Sprintf("sphere%d.png", i)), sp.Lightmap.ToTexture(), zoom); err != nil {
			return err
		}
	}
	return nil
}

func writeTexture(path string, t *lightmap.Texture, zoom int) error {
	n := t.Size()
	src := image.NewRGBA(image.Rect(0, 0, n, n))
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			r, g, b := t.At(x, y).RGB888()
			// Texture v grows upward; images grow downward.
			src.SetRGBA(x, n-1-y, stdcolor.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, n*zoom, n*zoom))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return err
	}
	fmt.Fprintln(os.Stderr, "mklut: wrote", path)
	return f.Close()
}
