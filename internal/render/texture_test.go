package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// tgaHeader builds an 18-byte header for a w x h image.
func tgaHeader(imageType byte, w, h int, bpp byte, descriptor byte) []byte {
	hdr := make([]byte, 18)
	hdr[2] = imageType
	hdr[12], hdr[13] = byte(w), byte(w>>8)
	hdr[14], hdr[15] = byte(h), byte(h>>8)
	hdr[16] = bpp
	hdr[17] = descriptor
	return hdr
}

func TestDecodeTGA(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 128}

	tests := []struct {
		name string
		data []byte
		// top-left and bottom-left pixels
		top, bottom color.NRGBA
	}{
		{
			// rows bottom first: red, then blue
			name:   "uncompressed bottom-up",
			data:   append(tgaHeader(2, 1, 2, 32, 0), 0, 0, 255, 255, 255, 0, 0, 128),
			top:    blue,
			bottom: red,
		},
		{
			name:   "uncompressed top-down 24bit",
			data:   append(tgaHeader(2, 1, 2, 24, 0x20), 0, 0, 255, 255, 0, 0),
			top:    red,
			bottom: color.NRGBA{B: 255, A: 255},
		},
		{
			// one run packet of 2 red pixels
			name:   "rle run",
			data:   append(tgaHeader(10, 1, 2, 32, 0x20), 0x81, 0, 0, 255, 255),
			top:    red,
			bottom: red,
		},
		{
			// one raw packet of 2 pixels
			name:   "rle raw",
			data:   append(tgaHeader(10, 1, 2, 32, 0x20), 0x01, 0, 0, 255, 255, 255, 0, 0, 128),
			top:    red,
			bottom: blue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodeTGA(tt.data)
			if err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if got := img.At(0, 0).(color.NRGBA); got != tt.top {
				t.Errorf("top pixel: expected %v, got %v", tt.top, got)
			}
			if got := img.At(0, 1).(color.NRGBA); got != tt.bottom {
				t.Errorf("bottom pixel: expected %v, got %v", tt.bottom, got)
			}
		})
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short header", []byte{0, 0, 2}},
		{"color mapped", func() []byte { h := tgaHeader(1, 1, 1, 8, 0); h[1] = 1; return h }()},
		{"grayscale", tgaHeader(3, 1, 1, 8, 0)},
		{"16 bit", tgaHeader(2, 1, 1, 16, 0)},
		{"truncated pixels", append(tgaHeader(2, 2, 2, 32, 0), 1, 2, 3, 4)},
		{"truncated rle", append(tgaHeader(10, 2, 2, 32, 0), 0x83)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	_, err := DecodeTGA(append(tgaHeader(2, 2, 2, 32, 0), 1, 2, 3, 4))
	if !errors.Is(err, errTGATruncated) {
		t.Errorf("expected errTGATruncated, got %v", err)
	}
}

func TestDecodeImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}

	img, err := DecodeImage(buf.Bytes(), "png")
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}
	if img.Bounds().Dx() != 2 {
		t.Errorf("expected width 2, got %d", img.Bounds().Dx())
	}

	tga := append(tgaHeader(2, 1, 1, 24, 0), 1, 2, 3)
	for _, hint := range []string{".TGA", ""} {
		if _, err := DecodeImage(tga, hint); err != nil {
			t.Errorf("hint %q: failed to decode tga: %v", hint, err)
		}
	}

	if _, err := DecodeImage([]byte("not an image"), "jpg"); err == nil {
		t.Error("expected error for garbage data")
	}
}

func TestToRGBAFlips(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})

	out := toRGBA(src)
	if got := out.RGBAAt(0, 0); got.B != 255 {
		t.Errorf("expected bottom row first, got %v", got)
	}
	if got := out.RGBAAt(0, 1); got.R != 255 {
		t.Errorf("expected top row last, got %v", got)
	}
}
