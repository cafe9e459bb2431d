package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	// Formats found in model texture folders.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

var errTGATruncated = errors.New("tga: data truncated")

// DecodeImage decodes texture data. hint is a file extension or format
// hint such as "tga" or ".png"; formats without a signature (TGA) are
// only recognised through it.
func DecodeImage(data []byte, hint string) (image.Image, error) {
	hint = strings.TrimPrefix(strings.ToLower(hint), ".")
	if hint == "tga" {
		return DecodeTGA(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		// Some exporters embed TGA without a hint
		if tga, tgaErr := DecodeTGA(data); tgaErr == nil {
			return tga, nil
		}
		return nil, err
	}
	return img, nil
}

// DecodeTGA decodes uncompressed (type 2) and RLE (type 10) true-color
// TGA images with 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, errTGATruncated
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, errors.New("tga: color-mapped images not supported")
	}
	if imageType != 2 && imageType != 10 {
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}
	if 18+idLength > len(data) {
		return nil, errTGATruncated
	}

	px := tgaPixels{data: data[18+idLength:], size: bpp / 8, rle: imageType == 10}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := range width * height {
		c, err := px.next()
		if err != nil {
			return nil, err
		}
		x, y := i%width, i/width
		if !topToBottom {
			y = height - 1 - y
		}
		img.SetNRGBA(x, y, c)
	}
	return img, nil
}

// tgaPixels reads BGR(A) pixels, expanding RLE packets.
type tgaPixels struct {
	data []byte
	pos  int
	size int
	rle  bool

	run    int // pixels left in the current packet
	repeat bool
	last   color.NRGBA
}

func (p *tgaPixels) next() (color.NRGBA, error) {
	if p.rle && p.run == 0 {
		if p.pos >= len(p.data) {
			return color.NRGBA{}, errTGATruncated
		}
		h := p.data[p.pos]
		p.pos++
		p.run = int(h&0x7f) + 1
		p.repeat = h&0x80 != 0
		if p.repeat {
			c, err := p.read()
			if err != nil {
				return c, err
			}
			p.last = c
		}
	}
	if p.rle {
		p.run--
		if p.repeat {
			return p.last, nil
		}
	}
	return p.read()
}

func (p *tgaPixels) read() (color.NRGBA, error) {
	if p.pos+p.size > len(p.data) {
		return color.NRGBA{}, errTGATruncated
	}
	b := p.data[p.pos : p.pos+p.size]
	p.pos += p.size
	c := color.NRGBA{R: b[2], G: b[1], B: b[0], A: 255}
	if p.size == 4 {
		c.A = b[3]
	}
	return c, nil
}

// toRGBA converts img into a tightly packed RGBA image flipped
// vertically, the row order OpenGL expects for texture uploads.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	src := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)

	out := image.NewRGBA(src.Bounds())
	stride := src.Stride
	for y := range b.Dy() {
		copy(out.Pix[y*stride:(y+1)*stride], src.Pix[(b.Dy()-1-y)*stride:(b.Dy()-y)*stride])
	}
	return out
}
