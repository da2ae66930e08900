package lightmap

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"glint/rt/color"
)

// TexMagic is "GTX1" in little-endian.
const TexMagic = 0x31585447

// TexHeaderSize is the fixed size of a .gtx header.
const TexHeaderSize = 8

var (
	ErrBadMagic = errors.New("gtx: invalid magic")
	ErrBadSize  = errors.New("gtx: texture size out of range")
)

// TexHeader is the .gtx file header. Texel data follows as little-endian
// uint16 display colors in Pix order.
type TexHeader struct {
	Magic    uint32
	Bits     uint8
	Flags    uint8
	Reserved uint16
}

// ParseTexHeader decodes and validates a header.
func ParseTexHeader(data []byte) (*TexHeader, error) {
	if len(data) < TexHeaderSize {
		return nil, errors.New("gtx: header too short")
	}
	h := &TexHeader{
		Magic:    binary.LittleEndian.Uint32(data[0:4]),
		Bits:     data[4],
		Flags:    data[5],
		Reserved: binary.LittleEndian.Uint16(data[6:8]),
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// Validate checks header invariants.
func (h *TexHeader) Validate() error {
	if h.Magic != TexMagic {
		return ErrBadMagic
	}
	if h.Bits > MaxTextureBits {
		return ErrBadSize
	}
	if h.Flags != 0 || h.Reserved != 0 {
		return errors.New("gtx: reserved must be 0")
	}
	return nil
}

// ReadTexture decodes a .gtx stream.
func ReadTexture(r io.Reader) (*Texture, error) {
	var hdr [TexHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("gtx: read header: %w", err)
	}
	h, err := ParseTexHeader(hdr[:])
	if err != nil {
		return nil, err
	}

	t := NewTexture(uint(h.Bits))
	buf := make([]byte, 2*len(t.Pix))
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("gtx: read texels: %w", err)
	}
	for i := range t.Pix {
		t.Pix[i] = color.Color(binary.LittleEndian.Uint16(buf[2*i:]))
	}
	return t, nil
}

// WriteTexture encodes t as a .gtx stream.
func WriteTexture(w io.Writer, t *Texture) error {
	if t.Bits > MaxTextureBits || len(t.Pix) != t.Size()*t.Size() {
		return ErrBadSize
	}
	buf := make([]byte, TexHeaderSize+2*len(t.Pix))
	binary.LittleEndian.PutUint32(buf[0:4], TexMagic)
	buf[4] = uint8(t.Bits)
	for i, c := range t.Pix {
		binary.LittleEndian.PutUint16(buf[TexHeaderSize+2*i:], uint16(c))
	}
	_, err := w.Write(buf)
	return err
}
