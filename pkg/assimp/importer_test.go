package assimp

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestReadFile(t *testing.T) {
	scene := importBox(t, 0)
	if scene.NumMeshes() != 1 {
		t.Fatalf("expected 1 mesh, got %d", scene.NumMeshes())
	}
	mesh := scene.Mesh(0)
	if mesh.NumFaces() != 12 {
		t.Errorf("expected 12 faces, got %d", mesh.NumFaces())
	}
	// One vertex per face corner until JoinIdenticalVertices runs.
	if mesh.NumVertices() != 36 {
		t.Errorf("expected 36 vertices, got %d", mesh.NumVertices())
	}
}

func TestReadFileNotFound(t *testing.T) {
	imp := NewImporter()
	defer imp.Close()

	_, err := imp.ReadFile("testdata/non_existent_file.obj")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !errors.Is(err, ErrImportFailed) {
		t.Errorf("expected ErrImportFailed, got %v", err)
	}
	var ie *ImportError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *ImportError, got %T", err)
	}
	if ie.Msg == "" {
		t.Error("expected a non-empty diagnostic")
	}
	t.Logf("diagnostic: %s", ie.Msg)
}

func TestReadMemory(t *testing.T) {
	data, err := os.ReadFile(boxPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", boxPath, err)
	}

	imp := NewImporter()
	defer imp.Close()
	imp.Triangulate(true)
	imp.JoinIdenticalVertices(true)

	scene, err := imp.ReadMemory(data, "obj")
	if err != nil {
		t.Fatalf("failed to import from memory: %v", err)
	}
	defer scene.Release()

	if got := scene.Mesh(0).NumVertices(); got != 8 {
		t.Errorf("expected 8 joined vertices, got %d", got)
	}
}

func TestReadMemoryEmpty(t *testing.T) {
	imp := NewImporter()
	defer imp.Close()
	if _, err := imp.ReadMemory(nil, "obj"); !errors.Is(err, ErrImportFailed) {
		t.Errorf("expected ErrImportFailed, got %v", err)
	}
}

func TestImporterClose(t *testing.T) {
	imp := NewImporter()
	imp.Close()
	imp.Close()

	defer func() {
		if r := recover(); r != ErrClosed {
			t.Errorf("expected panic with ErrClosed, got %v", r)
		}
	}()
	imp.ReadFile(boxPath)
}

func TestSortByPrimitiveTypeRejectsAll(t *testing.T) {
	imp := NewImporter()
	defer imp.Close()
	imp.Triangulate(true)
	before := imp.Flags()

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected a panic when removing every primitive type")
			}
		}()
		imp.SortByPrimitiveType(SortByPrimitiveTypeStep{
			Enable: true,
			Remove: PrimitivePoint | PrimitiveLine | PrimitiveTriangle | PrimitivePolygon,
		})
	}()

	if imp.Flags() != before {
		t.Errorf("flags changed to %s after rejected step", imp.Flags())
	}

	// Disabled, the same selection is harmless.
	imp.SortByPrimitiveType(SortByPrimitiveTypeStep{Remove: allPrimitiveTypes})
	if imp.Flags().Has(SortByPType) {
		t.Error("disabled step left SortByPType set")
	}
}

func TestApplyPostProcessing(t *testing.T) {
	imp := NewImporter()
	defer imp.Close()

	scene, err := imp.ReadFile(boxPath)
	if err != nil {
		t.Fatalf("failed to import: %v", err)
	}
	defer scene.Release()

	imp.Triangulate(true)
	imp.JoinIdenticalVertices(true)
	got, err := imp.ApplyPostProcessing(scene)
	if err != nil {
		t.Fatalf("post-processing failed: %v", err)
	}
	if got != scene {
		t.Error("expected the same scene back")
	}
	if n := scene.Mesh(0).NumVertices(); n != 8 {
		t.Errorf("expected 8 joined vertices, got %d", n)
	}
}

func TestApplyPostProcessingFailure(t *testing.T) {
	imp := NewImporter()
	defer imp.Close()

	// Write the removal property for the import, then keep the step off
	// so that it only runs when applied afterwards.
	imp.SortByPrimitiveType(SortByPrimitiveTypeStep{Enable: true, Remove: PrimitiveTriangle | PrimitivePolygon})
	imp.Disable(SortByPType)

	scene, err := imp.ReadFile(boxPath)
	if err != nil {
		t.Fatalf("failed to import: %v", err)
	}

	imp.Enable(SortByPType)
	got, err := imp.ApplyPostProcessing(scene)
	if err == nil {
		scene.Release()
		t.Fatal("expected post-processing to fail once every mesh is removed")
	}
	if got != nil {
		t.Error("expected no scene on failure")
	}
	if !errors.Is(err, ErrPostProcessFailed) {
		t.Errorf("expected ErrPostProcessFailed, got %v", err)
	}
	var pe *PostProcessError
	if !errors.As(err, &pe) || !pe.Released {
		t.Errorf("expected *PostProcessError with Released, got %#v", err)
	}
	if !strings.Contains(err.Error(), "SortByPType") {
		t.Errorf("error does not name the steps: %v", err)
	}

	if !scene.Released() {
		t.Error("scene should be marked released")
	}
	// Must not free the scene a second time.
	scene.Release()
	scene.Release()
}

func TestConfigureSteps(t *testing.T) {
	tests := []struct {
		name  string
		steps []Step
		want  PostProcessSteps
	}{
		{"none", nil, 0},
		{"tangents", []Step{DefaultCalcTangentSpace()}, CalcTangentSpace},
		{"flat normals", []Step{DefaultGenerateNormals()}, GenNormals},
		{"smooth normals", []Step{GenerateNormalsStep{Enable: true, Smooth: true, MaxSmoothingAngle: 80}}, GenSmoothNormals},
		{"flat then smooth", []Step{DefaultGenerateNormals(), GenerateNormalsStep{Enable: true, Smooth: true}}, GenSmoothNormals},
		{"normals off", []Step{DefaultGenerateNormals(), GenerateNormalsStep{}}, 0},
		{"toggle", []Step{Toggle{Steps: Triangulate | FlipUVs, Enable: true}}, Triangulate | FlipUVs},
		{"toggle off", []Step{Toggle{Steps: Triangulate | FlipUVs, Enable: true}, Toggle{Steps: FlipUVs}}, Triangulate},
		{"debone", []Step{DefaultDebone(), DefaultSplitByBoneCount()}, Debone | SplitByBoneCount},
		{"pretransform", []Step{DefaultPreTransformVertices()}, PreTransformVertices},
		{"disabled", []Step{DefaultLimitBoneWeights(), LimitBoneWeightsStep{}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imp := NewImporter()
			defer imp.Close()
			imp.Configure(tt.steps...)
			if imp.Flags() != tt.want {
				t.Errorf("flags = %s, want %s", imp.Flags(), tt.want)
			}
		})
	}
}

func TestExcludeList(t *testing.T) {
	got := ExcludeList([]string{"Root", "Left Arm", "Head"})
	want := "Root 'Left Arm' Head"
	if got != want {
		t.Errorf("ExcludeList = %q, want %q", got, want)
	}
}

func TestKeyframeOverride(t *testing.T) {
	imp := NewImporter()
	defer imp.Close()
	if err := imp.KeyframeOverride("md2", 3); err != nil {
		t.Errorf("md2 override: %v", err)
	}
	if err := imp.KeyframeOverride("gltf", 3); err == nil {
		t.Error("expected an error for a format without keyframe override")
	}
}

func TestSetPropertiesByValue(t *testing.T) {
	imp := NewImporter()
	defer imp.Close()
	imp.Set(
		BoolValue{Key: FavourSpeed, Value: true},
		IntValue{Key: PPLBWMaxWeights, Value: 4},
		FloatValue{Key: PPGSNMaxSmoothingAngle, Value: 66},
		StringValue{Key: PPOGExcludeList, Value: "Root"},
	)
	scene, err := imp.ReadFile(boxPath)
	if err != nil {
		t.Fatalf("failed to import with properties: %v", err)
	}
	scene.Release()
}
