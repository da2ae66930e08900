package color

import "testing"

func TestChannels(t *testing.T) {
	c := RGB(1, 2, 3)
	if c != Color(1<<11|2<<6|3) {
		t.Fatalf("RGB(1,2,3)=%#04x", uint16(c))
	}
	if c.R() != 1 || c.G() != 2 || c.B() != 3 {
		t.Fatalf("channels=%d,%d,%d", c.R(), c.G(), c.B())
	}
	if White&(1<<5) != 0 {
		t.Fatal("bit 5 must stay clear")
	}
	if Grey.R() != 16 || Red.G() != 0 || Blue.B() != 31 {
		t.Fatal("named colors")
	}
}

func TestRGB565(t *testing.T) {
	if got := White.RGB565(); got != 0xFFFF {
		t.Fatalf("white 565=%#04x", got)
	}
	if got := Green.RGB565(); got != 0x07E0 {
		t.Fatalf("green 565=%#04x", got)
	}
	if r, g, b := White.RGB888(); r != 255 || g != 255 || b != 255 {
		t.Fatalf("white 888=%d,%d,%d", r, g, b)
	}
}

func TestLerp(t *testing.T) {
	a, b := RGB(0, 10, 31), RGB(31, 20, 0)
	if Lerp(a, b, 0) != a {
		t.Fatal("t=0 must return c1")
	}
	if Lerp(a, b, LerpMask) != b {
		t.Fatal("t=31 must return c2")
	}
	if got := LerpHalf(a, b); got != RGB(15, 15, 15) {
		t.Fatalf("LerpHalf=%d,%d,%d", got.R(), got.G(), got.B())
	}
	if LerpCenter != LerpMask/2+1 {
		t.Fatalf("LerpCenter=%d", LerpCenter)
	}
	if got := Bilinear(Black, White, Black, White, LerpMask, 0); got != White {
		t.Fatalf("Bilinear at x=1 = %#04x", uint16(got))
	}
}

func TestColor24AddSaturates(t *testing.T) {
	c := Color24{250, 10, 128}
	c.Add(Color24{7, 7, 127})
	if c != (Color24{255, 17, 255}) {
		t.Fatalf("Add=%v", c)
	}
}

func TestToColor16Residual(t *testing.T) {
	var res Color24
	got := Color24{0xFF, 0x0A, 0x13}.ToColor16(&res)
	if got != RGB(31, 1, 2) {
		t.Fatalf("ToColor16=%d,%d,%d", got.R(), got.G(), got.B())
	}
	if res != (Color24{7, 2, 3}) {
		t.Fatalf("residual=%v", res)
	}
}

func TestDitherCarriesAlongRow(t *testing.T) {
	var d Dither
	// 4/8 of a step each pixel: the residual alternates output between 0 and 1.
	in := Color24{4, 4, 4}
	var ones int
	for i := 0; i < 8; i++ {
		if d.Quantize(in).R() == 1 {
			ones++
		}
	}
	if ones != 4 {
		t.Fatalf("dithered %d of 8 pixels up, want 4", ones)
	}
	d.Reset()
	if d.Quantize(in) != Black {
		t.Fatal("first pixel after Reset must not carry residual")
	}
}
