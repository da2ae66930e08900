package hal

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb555(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>3)<<6 | uint16(b>>3)
}

// EncodePixel packs an 8-bit color into format f.
func EncodePixel(f PixelFormat, r, g, b uint8) uint16 {
	if f == PixelFormatRGB555 {
		return rgb555(r, g, b)
	}
	return rgb565(r, g, b)
}

// DecodePixel expands a stored pixel of format f to 8-bit channels.
func DecodePixel(f PixelFormat, p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	bb := p & 0x1F
	var gg uint16
	if f == PixelFormatRGB555 {
		gg = (p >> 6) & 0x1F
		g = uint8((gg * 255) / 31)
	} else {
		gg = (p >> 5) & 0x3F
		g = uint8((gg * 255) / 63)
	}
	r = uint8((rr * 255) / 31)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// PixelAt reads pixel (x, y) from fb. Out-of-range reads return black.
func PixelAt(fb Framebuffer, x, y int) (r, g, b uint8) {
	buf := fb.Buffer()
	if x < 0 || y < 0 || x >= fb.Width() || y >= fb.Height() {
		return 0, 0, 0
	}
	off := y*fb.StrideBytes() + x*2
	if off+1 >= len(buf) {
		return 0, 0, 0
	}
	return DecodePixel(fb.Format(), uint16(buf[off])|uint16(buf[off+1])<<8)
}

func fill16(buf []byte, p uint16) {
	lo := byte(p)
	hi := byte(p >> 8)
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i] = lo
		buf[i+1] = hi
	}
}
