package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"glint/rt/color"
	"glint/rt/lightmap"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input image (.bmp, .png or .jpg).")
		outPath = flag.String("out", "", "Output file (.gtx, or .go with -format go).")
		bits    = flag.Uint("bits", 5, "Texture size as a power of two (1..8).")
		outFmt  = flag.String("format", "gtx", "gtx|go.")
		name    = flag.String("name", "", "Variable name for -format go (default: derived from -out).")
		pkg     = flag.String("pkg", "scene", "Package clause for -format go.")
	)
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		fatalf("usage: mktex -in wood.bmp -out wood.gtx [-bits 5]\n       mktex -in wood.bmp -out wood.go -format go [-name woodTexture] [-pkg scene]")
	}
	if *bits < 1 || *bits > lightmap.MaxTextureBits {
		fatalf("bits out of range: %d", *bits)
	}

	img, err := decode(*inPath)
	if err != nil {
		fatalf("decode: %v", err)
	}
	tex := convert(img, *bits)

	switch strings.ToLower(*outFmt) {
	case "gtx":
		err = writeGTX(*outPath, tex)
	case "go":
		v := *name
		if v == "" {
			v = varName(*outPath)
		}
		err = writeGo(*outPath, *pkg, v, tex)
	default:
		fatalf("unknown format: %s", *outFmt)
	}
	if err != nil {
		fatalf("write: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(bufio.NewReader(f))
	return img, err
}

// convert resamples img to a 2^bits square texture. Image rows run top to
// bottom; texture v runs bottom to top.
func convert(img image.Image, bits uint) *lightmap.Texture {
	tex := lightmap.NewTexture(bits)
	n := tex.Size()
	dst := image.NewRGBA(image.Rect(0, 0, n, n))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			c := dst.RGBAAt(x, n-1-y)
			tex.Set(x, y, color.RGB(c.R>>3, c.G>>3, c.B>>3))
		}
	}
	return tex
}

func writeGTX(path string, tex *lightmap.Texture) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := lightmap.WriteTexture(bw, tex); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeGo(path, pkg, name string, tex *lightmap.Texture) error {
	src, err := goSource(pkg, name, tex)
	if err != nil {
		return err
	}
	return os.WriteFile(path, src, 0o644)
}

// goSource renders tex as a constructor returning a *lightmap.Texture.
func goSource(pkg, name string, tex *lightmap.Texture) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by mktex. DO NOT EDIT.\n\npackage %s\n\n", pkg)
	b.WriteString("import (\n\t\"glint/rt/color\"\n\t\"glint/rt/lightmap\"\n)\n\n")
	fmt.Fprintf(&b, "func %s() *lightmap.Texture {\n", name)
	fmt.Fprintf(&b, "\treturn &lightmap.Texture{Bits: %d, Pix: []color.Color{\n", tex.Bits)
	for i, p := range tex.Pix {
		if i%8 == 0 {
			b.WriteString("\t\t")
		}
		fmt.Fprintf(&b, "0x%04X,", uint16(p))
		if i%8 == 7 || i == len(tex.Pix)-1 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteString("\t}}\n}\n")
	return format.Source(b.Bytes())
}

// varName turns "textures/wood_floor.go" into "woodFloorTexture".
func varName(path string) string {
	base := path
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	var b strings.Builder
	upper := false
	for _, r := range base {
		switch {
		case r == '_' || r == '-' || r == ' ':
			upper = b.Len() > 0
		case upper:
			b.WriteString(strings.ToUpper(string(r)))
			upper = false
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "texture"
	}
	return b.String() + "Texture"
}
