package abi

// Material property type tags (aiPropertyTypeInfo).
const (
	PropertyFloat   int32 = 0x1
	PropertyString  int32 = 0x3
	PropertyInteger int32 = 0x4
	PropertyBuffer  int32 = 0x5
)

// Material mirrors aiMaterial.
type Material struct {
	Properties    **MaterialProperty
	NumProperties uint32
	NumAllocated  uint32
}

// MaterialProperty mirrors aiMaterialProperty.
type MaterialProperty struct {
	Key        String
	Semantic   uint32
	Index      uint32
	DataLength uint32
	Type       int32
	Data       *byte
}

// Texture mirrors aiTexture. Height == 0 means PCData holds Width bytes of
// compressed image data in the format named by FormatHint.
type Texture struct {
	Width      uint32
	Height     uint32
	FormatHint [4]byte
	PCData     *Texel
}
