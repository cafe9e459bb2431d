package assimp

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"unsafe"

	_ "golang.org/x/image/bmp"

	"github.com/Faultbox/goassimp/pkg/assimp/abi"
)

// Texture is a view of one embedded texture. A texture is either an
// uncompressed Width x Height array of texels or, when Height is zero, a
// Width-byte blob in the file format named by FormatHint.
type Texture struct {
	o *owner
	p *abi.Texture
}

func (t Texture) raw() *abi.Texture {
	t.o.check()
	return t.p
}

// Width is the width in texels, or the byte size of the compressed data
// when Height is 0.
func (t Texture) Width() int { return int(t.raw().Width) }

// Height is the height in texels, or 0 for compressed data.
func (t Texture) Height() int { return int(t.raw().Height) }

// IsCompressed reports whether Data holds an encoded image file.
func (t Texture) IsCompressed() bool {
	return t.raw().Height == 0
}

// FormatHint returns the lowercase file extension of a compressed
// texture ("png", "jpg") or "" when unknown.
func (t Texture) FormatHint() string {
	h := t.raw().FormatHint
	n := bytes.IndexByte(h[:], 0)
	if n < 0 {
		n = len(h)
	}
	return strings.ToLower(string(h[:n]))
}

// Data returns a copy of the compressed image bytes, or nil for an
// uncompressed texture.
func (t Texture) Data() []byte {
	r := t.raw()
	if r.Height != 0 || r.PCData == nil {
		return nil
	}
	return append([]byte(nil), unsafe.Slice((*byte)(unsafe.Pointer(r.PCData)), r.Width)...)
}

// Texels returns a copy of the texels of an uncompressed texture, row by
// row, or nil for a compressed one.
func (t Texture) Texels() []abi.Texel {
	r := t.raw()
	if r.Height == 0 || r.PCData == nil {
		return nil
	}
	return append([]abi.Texel(nil), unsafe.Slice(r.PCData, r.Width*r.Height)...)
}

// Image decodes the texture. Compressed textures are decoded with the
// registered image codecs (png, jpeg, bmp); raw texels become an NRGBA
// image.
func (t Texture) Image() (image.Image, error) {
	if t.IsCompressed() {
		img, _, err := image.Decode(bytes.NewReader(t.Data()))
		if err != nil {
			return nil, fmt.Errorf("decode embedded %q texture: %w", t.FormatHint(), err)
		}
		return img, nil
	}
	w, h := t.Width(), t.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, tx := range t.Texels() {
		img.SetNRGBA(i%w, i/w, color.NRGBA{R: tx.R, G: tx.G, B: tx.B, A: tx.A})
	}
	return img, nil
}
