package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/goassimp/pkg/assimp"
	"github.com/Faultbox/goassimp/pkg/assimp/abi"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test import defaults
	if cfg.Import.Preset != "realtime-quality" {
		t.Errorf("expected preset realtime-quality, got %s", cfg.Import.Preset)
	}
	if cfg.Export.Format != "obj" {
		t.Errorf("expected export format obj, got %s", cfg.Export.Format)
	}

	// Test viewer defaults
	if cfg.Viewer.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Viewer.Width)
	}
	if cfg.Viewer.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Viewer.Height)
	}
	if cfg.Viewer.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Viewer.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if len(cfg.Logging.Streams) != 1 || cfg.Logging.Streams[0] != "zap" {
		t.Errorf("expected streams [zap], got %v", cfg.Logging.Streams)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
import:
  preset: realtime-fast
  steps: [FlipUVs]
  disable: [GenUVCoords]
  normals:
    smooth: true
    max_angle: 80
  sort_by_primitive_type:
    remove: [point, line]
  properties:
    PP_SLM_VERTEX_LIMIT: 5000

export:
  format: stl

viewer:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  fps_limit: 144
  screenshot_dir: shots
  uv_channel: 1
  skip_lines_and_points: true

data:
  encoding: euc-kr

logging:
  level: "debug"
  log_file: "assimp.log"
  streams: [zap, "file:native.log"]
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Import.Preset != "realtime-fast" {
		t.Errorf("expected preset realtime-fast, got %s", cfg.Import.Preset)
	}
	if cfg.Import.Normals == nil || !cfg.Import.Normals.Smooth {
		t.Fatal("expected smooth normals section")
	}
	if cfg.Import.Normals.MaxAngle == nil || *cfg.Import.Normals.MaxAngle != 80 {
		t.Errorf("expected max angle 80, got %v", cfg.Import.Normals.MaxAngle)
	}
	if cfg.Import.TangentSpace != nil {
		t.Error("expected no tangent space section")
	}
	if cfg.Export.Format != "stl" {
		t.Errorf("expected format stl, got %s", cfg.Export.Format)
	}

	if cfg.Viewer.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Viewer.Width)
	}
	if cfg.Viewer.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Viewer.FPSLimit != 144 {
		t.Errorf("expected fps limit 144, got %d", cfg.Viewer.FPSLimit)
	}
	if cfg.Viewer.ScreenshotDir != "shots" {
		t.Errorf("expected screenshot dir shots, got %q", cfg.Viewer.ScreenshotDir)
	}
	if cfg.Viewer.UVChannel != 1 || !cfg.Viewer.SkipLinesAndPoints {
		t.Errorf("expected uv channel 1 without lines and points, got %d, %v", cfg.Viewer.UVChannel, cfg.Viewer.SkipLinesAndPoints)
	}
	// Unset fields keep their defaults
	if cfg.Viewer.Background != Default().Viewer.Background {
		t.Errorf("expected default background, got %v", cfg.Viewer.Background)
	}

	if cfg.Data.Encoding != "euc-kr" {
		t.Errorf("expected encoding euc-kr, got %s", cfg.Data.Encoding)
	}
	if cfg.Logging.LogFile != "assimp.log" {
		t.Errorf("expected log file 'assimp.log', got %s", cfg.Logging.LogFile)
	}
	if len(cfg.Logging.Streams) != 2 {
		t.Errorf("expected 2 streams, got %v", cfg.Logging.Streams)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
viewer:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"bad preset", func(c *Config) { c.Import.Preset = "ultra" }, "unknown preset"},
		{"bad step", func(c *Config) { c.Import.Steps = []string{"MakeItNice"} }, "unknown post-process step"},
		{"bad disable", func(c *Config) { c.Import.Disable = []string{"Nope"} }, "unknown post-process step"},
		{"bad component", func(c *Config) {
			c.Import.RemoveComponent = &RemoveComponentConfig{Components: []string{"sounds"}}
		}, "unknown component"},
		{"remove every primitive", func(c *Config) {
			c.Import.SortByPrimitiveType = &SortByPrimitiveTypeConfig{Remove: []string{"point", "line", "triangle", "polygon"}}
		}, "every primitive type"},
		{"unknown property", func(c *Config) { c.Import.Properties = map[string]any{"NOT_A_KEY": 1} }, "unknown property"},
		{"property type", func(c *Config) { c.Import.Properties = map[string]any{"PP_SLM_VERTEX_LIMIT": "many"} }, "expects int"},
		{"empty export format", func(c *Config) { c.Export.Format = "" }, "format is empty"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "unknown level"},
		{"bad stream", func(c *Config) { c.Logging.Streams = []string{"syslog"} }, "unknown stream"},
		{"empty file stream", func(c *Config) { c.Logging.Streams = []string{"file:"} }, "unknown stream"},
		{"bad size", func(c *Config) { c.Viewer.Width = 0 }, "invalid size"},
		{"bad uv channel", func(c *Config) { c.Viewer.UVChannel = 8 }, "uv_channel 8 out of range"},
		{"bad encoding", func(c *Config) { c.Data.Encoding = "klingon" }, "klingon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "loud"
	cfg.Viewer.Height = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "logging") || !strings.Contains(err.Error(), "viewer") {
		t.Errorf("expected both problems reported, got %v", err)
	}
}

func TestFlags(t *testing.T) {
	cfg := Default()
	cfg.Import.Preset = "none"
	cfg.Import.Steps = []string{"Triangulate", "FlipUVs"}
	cfg.Import.Disable = []string{"FlipUVs"}

	flags, err := cfg.Import.Flags()
	if err != nil {
		t.Fatalf("failed to resolve flags: %v", err)
	}
	if flags != assimp.Triangulate {
		t.Errorf("expected Triangulate, got %s", flags)
	}

	cfg.Import.Preset = ""
	flags, err = cfg.Import.Flags()
	if err != nil {
		t.Fatalf("failed to resolve flags with empty preset: %v", err)
	}
	if flags != assimp.Triangulate {
		t.Errorf("expected empty preset to mean none, got %s", flags)
	}
}

func TestStepList(t *testing.T) {
	angle := float32(60)
	limit := int32(2)
	imp := ImportConfig{
		Normals:             &NormalsConfig{Smooth: true, MaxAngle: &angle},
		LimitBoneWeights:    &LimitBoneWeightsConfig{MaxWeights: &limit},
		SortByPrimitiveType: &SortByPrimitiveTypeConfig{Remove: []string{"Point", "line"}},
		RemoveComponent:     &RemoveComponentConfig{Components: []string{"colors", "textures"}},
		OptimizeGraph:       &ExcludeConfig{Exclude: []string{"Root"}},
	}

	steps, err := imp.StepList()
	if err != nil {
		t.Fatalf("failed to build steps: %v", err)
	}
	if len(steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(steps))
	}

	normals, ok := steps[0].(assimp.GenerateNormalsStep)
	if !ok || !normals.Smooth || normals.MaxSmoothingAngle != 60 {
		t.Errorf("unexpected normals step %+v", steps[0])
	}
	bones := steps[1].(assimp.LimitBoneWeightsStep)
	if bones.MaxWeights != 2 {
		t.Errorf("expected 2 bone weights, got %d", bones.MaxWeights)
	}
	sort := steps[2].(assimp.SortByPrimitiveTypeStep)
	if sort.Remove != assimp.PrimitivePoint|assimp.PrimitiveLine {
		t.Errorf("expected Point|Line, got %s", sort.Remove)
	}
	rc := steps[3].(assimp.RemoveComponentStep)
	if rc.Components != assimp.ComponentColors|assimp.ComponentTextures {
		t.Errorf("unexpected components 0x%x", uint32(rc.Components))
	}
}

func TestStepListDefaults(t *testing.T) {
	imp := ImportConfig{TangentSpace: &TangentSpaceConfig{}}

	steps, err := imp.StepList()
	if err != nil {
		t.Fatalf("failed to build steps: %v", err)
	}
	ts := steps[0].(assimp.CalcTangentSpaceStep)
	if ts != assimp.DefaultCalcTangentSpace() {
		t.Errorf("expected default tangent space step, got %+v", ts)
	}
}

func TestProperty(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		want    assimp.Property
		wantErr bool
	}{
		{"bool", "FAVOUR_SPEED", true, assimp.BoolValue{Key: "FAVOUR_SPEED", Value: true}, false},
		{"int", "PP_SLM_VERTEX_LIMIT", 5000, assimp.IntValue{Key: "PP_SLM_VERTEX_LIMIT", Value: 5000}, false},
		{"int as float", "PP_GSN_MAX_SMOOTHING_ANGLE", 80, assimp.FloatValue{Key: "PP_GSN_MAX_SMOOTHING_ANGLE", Value: 80}, false},
		{"float", "PP_DB_THRESHOLD", 0.5, assimp.FloatValue{Key: "PP_DB_THRESHOLD", Value: 0.5}, false},
		{"string", "PP_OG_EXCLUDE_LIST", "a b", assimp.StringValue{Key: "PP_OG_EXCLUDE_LIST", Value: "a b"}, false},
		{"int overflow", "PP_SLM_VERTEX_LIMIT", 1 << 40, nil, true},
		{"float for int", "PP_SLM_VERTEX_LIMIT", 1.5, nil, true},
		{"string too long", "PP_OG_EXCLUDE_LIST", strings.Repeat("x", 1024), nil, true},
		{"unknown", "NO_SUCH_KEY", 1, nil, true},
		{"short matrix", "PP_PTV_ROOT_TRANSFORMATION", []any{1, 2, 3}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Property(tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("failed to convert property: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestPropertyMatrix(t *testing.T) {
	// Row-major translation by (1, 2, 3)
	rows := []any{
		1, 0, 0, 1,
		0, 1, 0, 2,
		0, 0, 1, 3.0,
		0, 0, 0, 1,
	}
	p, err := Property("PP_PTV_ROOT_TRANSFORMATION", rows)
	if err != nil {
		t.Fatalf("failed to convert matrix: %v", err)
	}
	m := p.(assimp.MatrixValue).Value
	if m[12] != 1 || m[13] != 2 || m[14] != 3 {
		t.Errorf("expected translation in column 3, got %v", m)
	}
	if m[3] != 0 {
		t.Errorf("expected zero at m[3], got %v", m[3])
	}
}

func TestApply(t *testing.T) {
	cfg := Default()
	cfg.Import.Preset = "none"
	cfg.Import.Steps = []string{"Triangulate"}
	cfg.Import.Normals = &NormalsConfig{}
	cfg.Import.Properties = map[string]any{"PP_SLM_VERTEX_LIMIT": 100}

	imp := assimp.NewImporter()
	defer imp.Close()

	if err := cfg.Import.Apply(imp); err != nil {
		t.Fatalf("failed to apply profile: %v", err)
	}
	want := assimp.Triangulate | assimp.GenNormals
	if imp.Flags() != want {
		t.Errorf("expected %s, got %s", want, imp.Flags())
	}

	// A failing profile leaves the importer untouched
	bad := ImportConfig{Preset: "none", Steps: []string{"FlipUVs"}, Properties: map[string]any{"NOPE": 1}}
	if err := bad.Apply(imp); err == nil {
		t.Fatal("expected error applying bad profile")
	}
	if imp.Flags().Has(assimp.FlipUVs) {
		t.Error("expected FlipUVs not to be enabled after a failed apply")
	}
}

func TestStepListExcludeTooLong(t *testing.T) {
	names := make([]string, 200)
	for i := range names {
		names[i] = fmt.Sprintf("node_%05d", i)
	}

	tests := []struct {
		name   string
		cfg    ImportConfig
		prefix string
	}{
		{"optimize graph", ImportConfig{OptimizeGraph: &ExcludeConfig{Exclude: names}}, "optimize_graph:"},
		{"redundant materials", ImportConfig{RemoveRedundantMats: &ExcludeConfig{Exclude: names}}, "remove_redundant_materials:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.StepList()
			if !errors.Is(err, abi.ErrStringTooLong) {
				t.Fatalf("expected ErrStringTooLong, got %v", err)
			}
			if !strings.HasPrefix(err.Error(), tt.prefix) {
				t.Errorf("expected error to start with %q, got %q", tt.prefix, err)
			}

			imp := assimp.NewImporter()
			defer imp.Close()
			tt.cfg.Preset = "none"
			tt.cfg.Steps = []string{"FlipUVs"}
			if err := tt.cfg.Apply(imp); err == nil {
				t.Fatal("expected error applying oversized exclude list")
			}
			if imp.Flags() != 0 {
				t.Errorf("expected no steps after a failed apply, got %s", imp.Flags())
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	// No config file exists - should return empty
	if path := findConfigFile(); path != "" && !strings.HasPrefix(path, ConfigDir()) {
		t.Errorf("expected no local config, got %s", path)
	}

	// Create goassimp.yaml in current directory
	if err := os.WriteFile("goassimp.yaml", []byte("viewer:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	if path := findConfigFile(); path != "./goassimp.yaml" {
		t.Errorf("expected ./goassimp.yaml, got %q", path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "preset and steps flags",
			setup: func() { *flagPreset = "none"; *flagSteps = "FlipUVs, Triangulate," },
			verify: func(cfg *Config) {
				if cfg.Import.Preset != "none" {
					t.Errorf("expected preset none, got %s", cfg.Import.Preset)
				}
				if len(cfg.Import.Steps) != 2 || cfg.Import.Steps[1] != "Triangulate" {
					t.Errorf("expected [FlipUVs Triangulate], got %v", cfg.Import.Steps)
				}
			},
			teardown: func() { *flagPreset = ""; *flagSteps = "" },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Viewer.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name:  "width and height flags",
			setup: func() { *flagWidth = 2560; *flagHeight = 1440 },
			verify: func(cfg *Config) {
				if cfg.Viewer.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Viewer.Width)
				}
				if cfg.Viewer.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Viewer.Height)
				}
			},
			teardown: func() { *flagWidth = 0; *flagHeight = 0 },
		},
		{
			name:  "encoding and format flags",
			setup: func() { *flagEncoding = "euc-kr"; *flagFormat = "stl" },
			verify: func(cfg *Config) {
				if cfg.Data.Encoding != "euc-kr" || cfg.Export.Format != "stl" {
					t.Errorf("unexpected data %+v export %+v", cfg.Data, cfg.Export)
				}
			},
			teardown: func() { *flagEncoding = ""; *flagFormat = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
viewer:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Viewer.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Viewer.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Viewer.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Viewer.Height)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Import.Steps = []string{"FlipUVs"}
	cfg.Viewer.Wireframe = true

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if !loaded.Viewer.Wireframe || len(loaded.Import.Steps) != 1 {
		t.Errorf("saved values were not restored: %+v", loaded)
	}
}
