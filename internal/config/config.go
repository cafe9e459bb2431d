// Package config handles import profile loading and management.
package config

// Config holds all settings shared by the command-line tool and the
// viewer.
type Config struct {
	Import  ImportConfig  `yaml:"import"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Data    DataConfig    `yaml:"data"`
}

// ImportConfig is an import profile: a preset, step adjustments, step
// parameters and raw properties.
type ImportConfig struct {
	Preset  string   `yaml:"preset"`  // none, realtime-fast, realtime-quality, ...
	Steps   []string `yaml:"steps"`   // extra steps by name, e.g. FlipUVs
	Disable []string `yaml:"disable"` // steps removed from the preset

	Normals             *NormalsConfig             `yaml:"normals,omitempty"`
	TangentSpace        *TangentSpaceConfig        `yaml:"tangent_space,omitempty"`
	LimitBoneWeights    *LimitBoneWeightsConfig    `yaml:"limit_bone_weights,omitempty"`
	SplitLargeMeshes    *SplitLargeMeshesConfig    `yaml:"split_large_meshes,omitempty"`
	SortByPrimitiveType *SortByPrimitiveTypeConfig `yaml:"sort_by_primitive_type,omitempty"`
	RemoveComponent     *RemoveComponentConfig     `yaml:"remove_component,omitempty"`
	OptimizeGraph       *ExcludeConfig             `yaml:"optimize_graph,omitempty"`
	RemoveRedundantMats *ExcludeConfig             `yaml:"remove_redundant_materials,omitempty"`
	Debone              *DeboneConfig              `yaml:"debone,omitempty"`

	// Properties are written as-is; names and value types are checked
	// against the property catalog.
	Properties map[string]any `yaml:"properties,omitempty"`
}

// NormalsConfig enables GenNormals or GenSmoothNormals.
type NormalsConfig struct {
	Smooth   bool     `yaml:"smooth"`
	MaxAngle *float32 `yaml:"max_angle,omitempty"`
}

// TangentSpaceConfig enables CalcTangentSpace.
type TangentSpaceConfig struct {
	MaxAngle *float32 `yaml:"max_angle,omitempty"`
	Channel  *int32   `yaml:"channel,omitempty"`
}

// LimitBoneWeightsConfig enables LimitBoneWeights.
type LimitBoneWeightsConfig struct {
	MaxWeights *int32 `yaml:"max_weights,omitempty"`
}

// SplitLargeMeshesConfig enables SplitLargeMeshes.
type SplitLargeMeshesConfig struct {
	TriangleLimit *int32 `yaml:"triangle_limit,omitempty"`
	VertexLimit   *int32 `yaml:"vertex_limit,omitempty"`
}

// SortByPrimitiveTypeConfig enables SortByPType. Remove lists point,
// line, triangle or polygon.
type SortByPrimitiveTypeConfig struct {
	Remove []string `yaml:"remove"`
}

// RemoveComponentConfig enables RemoveComponent. Components lists names
// such as normals, colors or textures.
type RemoveComponentConfig struct {
	Components []string `yaml:"components"`
}

// ExcludeConfig enables a step that takes a list of names to keep.
type ExcludeConfig struct {
	Exclude []string `yaml:"exclude"`
}

// DeboneConfig enables Debone.
type DeboneConfig struct {
	Threshold *float32 `yaml:"threshold,omitempty"`
	AllOrNone bool     `yaml:"all_or_none"`
}

// ExportConfig holds the default export settings of the convert command.
type ExportConfig struct {
	Format string   `yaml:"format"` // export format id, e.g. obj, collada, stl
	Steps  []string `yaml:"steps"`  // steps run on the exported copy
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	// Verbose enables the native library's debug messages.
	Verbose bool `yaml:"verbose"`
	// Streams selects where native log messages go: zap, stdout,
	// stderr, debugger or file:<path>.
	Streams []string `yaml:"streams"`
}

// ViewerConfig holds display settings of the viewer.
type ViewerConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	FPSLimit   int        `yaml:"fps_limit"`
	Wireframe  bool       `yaml:"wireframe"`
	Background [3]float32 `yaml:"background"`
	// ScreenshotDir receives PNG captures (P or F12); empty means the
	// working directory.
	ScreenshotDir string `yaml:"screenshot_dir"`
	// UVChannel is the texture coordinate set used for diffuse textures.
	UVChannel int `yaml:"uv_channel"`
	// SkipLinesAndPoints hides point and line primitives instead of
	// drawing them as degenerate triangles.
	SkipLinesAndPoints bool `yaml:"skip_lines_and_points"`
}

// DataConfig holds model data settings.
type DataConfig struct {
	Archives []string `yaml:"archives"` // zip archives searched for models
	Encoding string   `yaml:"encoding"` // legacy encoding of names, e.g. euc-kr
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Import: ImportConfig{
			Preset: "realtime-quality",
		},
		Export: ExportConfig{
			Format: "obj",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
			Streams: []string{"zap"},
		},
		Viewer: ViewerConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			Background: [3]float32{0.12, 0.12, 0.14},
		},
	}
}
