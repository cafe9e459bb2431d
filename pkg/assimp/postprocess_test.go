package assimp

import (
	"slices"
	"testing"
)

func TestPostProcessStepsString(t *testing.T) {
	tests := []struct {
		steps PostProcessSteps
		want  string
	}{
		{0, "None"},
		{Triangulate, "Triangulate"},
		{CalcTangentSpace | Triangulate, "CalcTangentSpace|Triangulate"},
		{ConvertToLeftHanded, "MakeLeftHanded|FlipUVs|FlipWindingOrder"},
		{PostProcessSteps(0x4000), "Unknown(0x4000)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.steps.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseStep(t *testing.T) {
	for bit, name := range stepNames {
		got, err := ParseStep(name)
		if err != nil || got != bit {
			t.Errorf("ParseStep(%q) = %s, %v", name, got, err)
		}
	}
	if got, err := ParseStep("triangulate"); err != nil || got != Triangulate {
		t.Errorf("case-insensitive lookup failed: %s, %v", got, err)
	}
	if _, err := ParseStep("Teleport"); err == nil {
		t.Error("expected an error for an unknown step")
	}
}

func TestParsePreset(t *testing.T) {
	tests := map[string]PostProcessSteps{
		"none":                 0,
		"Realtime-Fast":        TargetRealtimeFast,
		"realtime-quality":     TargetRealtimeQuality,
		"realtime-max-quality": TargetRealtimeMaxQuality,
	}
	for name, want := range tests {
		got, err := ParsePreset(name)
		if err != nil || got != want {
			t.Errorf("ParsePreset(%q) = %s, %v", name, got, err)
		}
	}
	if _, err := ParsePreset("ultra"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
	if !TargetRealtimeMaxQuality.Has(TargetRealtimeQuality) {
		t.Error("max quality should include quality")
	}
}

func TestLookupProperty(t *testing.T) {
	tests := []struct {
		name string
		want PropertyKind
	}{
		{string(PPSBPRemove), KindInt},
		{string(GlobMeasureTime), KindBool},
		{string(PPCTMaxSmoothingAngle), KindFloat},
		{string(PPOGExcludeList), KindString},
		{string(PPPTVRootTransformation), KindMatrix},
		// Same key, two value types.
		{string(ImportLWOOneLayerOnly), KindInt | KindString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LookupProperty(tt.name)
			if !ok || got != tt.want {
				t.Errorf("LookupProperty = %v, %v; want %v", got, ok, tt.want)
			}
		})
	}
	if _, ok := LookupProperty("NOT_A_PROPERTY"); ok {
		t.Error("unexpected property")
	}
	names := PropertyNames()
	if !slices.Contains(names, string(PPSBPRemove)) {
		t.Error("PropertyNames misses PP_SBP_REMOVE")
	}
}

func TestPrimitiveTypeString(t *testing.T) {
	if got := (PrimitiveTriangle | PrimitivePolygon).String(); got == "" {
		t.Error("empty primitive type string")
	}
}

func TestTextureInfoEmbedded(t *testing.T) {
	tests := []struct {
		path string
		idx  int
		ok   bool
	}{
		{"*0", 0, true},
		{"*12", 12, true},
		{"textures/wood.png", 0, false},
		{"*", 0, false},
		{"*x", 0, false},
	}
	for _, tt := range tests {
		idx, ok := TextureInfo{Path: tt.path}.Embedded()
		if idx != tt.idx || ok != tt.ok {
			t.Errorf("Embedded(%q) = %d, %v", tt.path, idx, ok)
		}
	}
}

func TestParseComponentAndPrimitive(t *testing.T) {
	if c, err := ParseComponent("Normals"); err != nil || c != ComponentNormals {
		t.Errorf("ParseComponent = %v, %v", c, err)
	}
	if _, err := ParseComponent("wings"); err == nil {
		t.Error("expected an error for an unknown component")
	}
	if p, err := ParsePrimitiveType("LINE"); err != nil || p != PrimitiveLine {
		t.Errorf("ParsePrimitiveType = %v, %v", p, err)
	}
	if _, err := ParsePrimitiveType("quad"); err == nil {
		t.Error("expected an error for an unknown primitive type")
	}
}
