package assets

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"path"
	"strings"

	"github.com/mauserzjeh/dxt"
)

// ErrUnknownFormat is wrapped when image data matches no supported format
var ErrUnknownFormat = errors.New("unknown image format")

// A .dxt file is a 12 byte header followed by the compressed blocks:
//
//	magic  [4]byte "DXT1" or "DXT5"
//	width  uint32
//	height uint32
const dxtHeaderSize = 12

// MaxDXTSize bounds either dimension of a .dxt image
const MaxDXTSize = 16384

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// DecodeImage decodes PNG or DXT data. The name's extension picks the
// format; unnamed data is sniffed.
func DecodeImage(name string, data []byte) (image.Image, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		return decodePNG(name, data)
	case ".dxt":
		return DecodeDXT(data)
	}
	switch {
	case bytes.HasPrefix(data, pngMagic):
		return decodePNG(name, data)
	case bytes.HasPrefix(data, []byte("DXT")):
		return DecodeDXT(data)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
}

func decodePNG(name string, data []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// DecodeDXT decodes a .dxt file into RGBA
func DecodeDXT(data []byte) (*image.RGBA, error) {
	if len(data) < dxtHeaderSize {
		return nil, fmt.Errorf("%w: dxt header truncated", ErrUnknownFormat)
	}
	w := binary.LittleEndian.Uint32(data[4:8])
	h := binary.LittleEndian.Uint32(data[8:12])
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("dxt: empty image %dx%d", w, h)
	}
	if w > MaxDXTSize || h > MaxDXTSize {
		return nil, fmt.Errorf("dxt: image %dx%d larger than %d", w, h, MaxDXTSize)
	}
	blocks := data[dxtHeaderSize:]
	bw, bh := (int(w)+3)/4, (int(h)+3)/4

	var (
		pix []byte
		err error
	)
	switch magic := string(data[:4]); magic {
	case "DXT1":
		if len(blocks) < bw*bh*8 {
			return nil, fmt.Errorf("dxt1: %d bytes of blocks, want %d", len(blocks), bw*bh*8)
		}
		pix, err = dxt.DecodeDXT1(blocks, uint(w), uint(h))
	case "DXT5":
		if len(blocks) < bw*bh*16 {
			return nil, fmt.Errorf("dxt5: %d bytes of blocks, want %d", len(blocks), bw*bh*16)
		}
		pix, err = dxt.DecodeDXT5(blocks, uint(w), uint(h))
	default:
		return nil, fmt.Errorf("%w: dxt magic %q", ErrUnknownFormat, magic)
	}
	if err != nil {
		return nil, fmt.Errorf("dxt: %w", err)
	}

	return &image.RGBA{
		Pix:    pix,
		Stride: int(w) * 4,
		Rect:   image.Rect(0, 0, int(w), int(h)),
	}, nil
}

// EncodeDXTHeader returns the header for a w by h image in format "DXT1"
// or "DXT5"
func EncodeDXTHeader(format string, w, h int) []byte {
	hdr := make([]byte, 0, dxtHeaderSize)
	hdr = append(hdr, format[:4]...)
	hdr = binary.LittleEndian.AppendUint32(hdr, uint32(w))
	hdr = binary.LittleEndian.AppendUint32(hdr, uint32(h))
	return hdr
}
