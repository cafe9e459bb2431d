package render

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/goassimp/internal/model"
	"github.com/Faultbox/goassimp/pkg/math"
)

// TextureSource resolves a material texture path ("*N" for embedded
// textures) to an image.
type TextureSource func(path string) (image.Image, error)

// Options controls how a frame is drawn.
type Options struct {
	Wireframe  bool
	Unlit      bool
	Background [3]float32
	LightDir   math.Vec3
	Ambient    [3]float32
}

// DefaultOptions returns a head-light style setup.
func DefaultOptions() Options {
	return Options{
		Background: [3]float32{0.12, 0.12, 0.14},
		LightDir:   math.Vec3{X: -0.3, Y: -1, Z: -0.5}.Normalize(),
		Ambient:    [3]float32{0.25, 0.25, 0.25},
	}
}

type gpuMaterial struct {
	diffuse  [4]float32
	twoSided bool
	texture  uint32
}

// Renderer owns the GL objects of one loaded model.
type Renderer struct {
	log *zap.Logger

	// Shader
	program uint32

	// Uniform locations
	locViewProj int32
	locModel    int32
	locTexture  int32
	locDiffuse  int32
	locLightDir int32
	locAmbient  int32
	locUnlit    int32

	// Model buffers
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	groups     []model.MaterialGroup
	materials  []gpuMaterial
	whiteTex   uint32

	// Transform is applied to the whole model.
	Transform math.Mat4
}

// New initialises OpenGL function pointers for the current context and
// compiles the model program.
func New(log *zap.Logger) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	program, err := CompileProgram(modelVertexShader, modelFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("model shader: %w", err)
	}

	r := &Renderer{
		log:       log,
		program:   program,
		Transform: math.Identity(),
	}
	r.locViewProj = uniform(program, "uViewProj")
	r.locModel = uniform(program, "uModel")
	r.locTexture = uniform(program, "uTexture")
	r.locDiffuse = uniform(program, "uDiffuse")
	r.locLightDir = uniform(program, "uLightDir")
	r.locAmbient = uniform(program, "uAmbient")
	r.locUnlit = uniform(program, "uUnlit")

	white := image.NewRGBA(image.Rect(0, 0, 1, 1))
	copy(white.Pix, []byte{255, 255, 255, 255})
	r.whiteTex = uploadTexture(white)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return r, nil
}

// Load uploads mesh and its textures, replacing any previous model.
// Textures that fail to load are logged and drawn white.
func (r *Renderer) Load(mesh *model.Mesh, textures TextureSource) error {
	r.clearModel()
	if mesh == nil || len(mesh.Indices) == 0 {
		return fmt.Errorf("model has no triangles")
	}
	mesh.SortGroupsByOpacity()

	cache := make(map[string]uint32)
	r.materials = make([]gpuMaterial, len(mesh.Materials))
	for i, m := range mesh.Materials {
		gm := gpuMaterial{diffuse: m.Diffuse, twoSided: m.TwoSided, texture: r.whiteTex}
		if m.Texture != "" && textures != nil {
			tex, ok := cache[m.Texture]
			if !ok {
				img, err := textures(m.Texture)
				if err != nil {
					r.log.Warn("texture unavailable", zap.String("material", m.Name),
						zap.String("path", m.Texture), zap.Error(err))
				} else {
					tex = uploadTexture(toRGBA(img))
				}
				cache[m.Texture] = tex
			}
			if tex != 0 {
				gm.texture = tex
			}
		}
		r.materials[i] = gm
	}

	vertexSize := int(unsafe.Sizeof(model.Vertex{}))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*vertexSize, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	r.groups = mesh.Groups
	r.indexCount = int32(len(mesh.Indices))

	stats := mesh.CountTriangles()
	r.log.Info("model uploaded",
		zap.Int("vertices", stats.Vertices),
		zap.Int("triangles", stats.Triangles),
		zap.Int("groups", stats.Groups),
		zap.Int("textures", len(cache)),
	)
	return nil
}

// Render clears the framebuffer and draws the loaded model.
func (r *Renderer) Render(width, height int, view, proj math.Mat4, opts Options) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(opts.Background[0], opts.Background[1], opts.Background[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.vao == 0 {
		return
	}

	if opts.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	viewProj := proj.Mul(view)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locViewProj, 1, false, &viewProj[0])
	gl.UniformMatrix4fv(r.locModel, 1, false, &r.Transform[0])
	gl.Uniform3f(r.locLightDir, opts.LightDir.X, opts.LightDir.Y, opts.LightDir.Z)
	gl.Uniform3f(r.locAmbient, opts.Ambient[0], opts.Ambient[1], opts.Ambient[2])
	unlit := int32(0)
	if opts.Unlit || opts.Wireframe {
		unlit = 1
	}
	gl.Uniform1i(r.locUnlit, unlit)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.locTexture, 0)
	gl.BindVertexArray(r.vao)

	for _, group := range r.groups {
		mat := gpuMaterial{diffuse: [4]float32{0.8, 0.8, 0.8, 1}, texture: r.whiteTex}
		if group.Material >= 0 && group.Material < len(r.materials) {
			mat = r.materials[group.Material]
		}

		if mat.twoSided || opts.Wireframe {
			gl.Disable(gl.CULL_FACE)
		} else {
			gl.Enable(gl.CULL_FACE)
		}
		if mat.diffuse[3] < 1 {
			gl.Enable(gl.BLEND)
			gl.DepthMask(false)
		} else {
			gl.Disable(gl.BLEND)
			gl.DepthMask(true)
		}

		gl.Uniform4f(r.locDiffuse, mat.diffuse[0], mat.diffuse[1], mat.diffuse[2], mat.diffuse[3])
		gl.BindTexture(gl.TEXTURE_2D, mat.texture)
		gl.DrawElementsWithOffset(gl.TRIANGLES, group.IndexCount, gl.UNSIGNED_INT, uintptr(group.StartIndex*4))
	}

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}

// ReadPixels reads the RGBA contents of the default framebuffer, bottom
// row first.
func (r *Renderer) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

func uploadTexture(img *image.RGBA) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	return texID
}

func (r *Renderer) clearModel() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	seen := map[uint32]bool{r.whiteTex: true}
	for _, m := range r.materials {
		if !seen[m.texture] {
			seen[m.texture] = true
			gl.DeleteTextures(1, &m.texture)
		}
	}
	r.materials = nil
	r.groups = nil
	r.indexCount = 0
}

// Destroy releases all resources.
func (r *Renderer) Destroy() {
	r.clearModel()
	if r.whiteTex != 0 {
		gl.DeleteTextures(1, &r.whiteTex)
		r.whiteTex = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
