package assimp

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

func TestExportFormats(t *testing.T) {
	formats := ExportFormats()
	if len(formats) == 0 {
		t.Fatal("expected at least one export format")
	}
	for _, f := range formats {
		if f.ID == "" || f.Extension == "" {
			t.Errorf("incomplete format %+v", f)
		}
	}
	if _, ok := LookupExportFormat("obj"); !ok {
		t.Error("expected the obj exporter")
	}
}

func TestExportUnknownFormat(t *testing.T) {
	scene := importBox(t, 0)
	err := Export(scene, "no-such-format", filepath.Join(t.TempDir(), "out"), 0)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
	if !errors.Is(err, ErrExportFailed) {
		t.Errorf("expected ErrExportFailed, got %v", err)
	}
	if _, err := ExportBlob(scene, "no-such-format", 0); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat from ExportBlob, got %v", err)
	}
}

func TestExportRoundTrip(t *testing.T) {
	scene := importBox(t, 0)
	out := filepath.Join(t.TempDir(), "box.obj")
	if err := Export(scene, "obj", out, 0); err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	imp := NewImporter()
	defer imp.Close()
	again, err := imp.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to re-import %s: %v", out, err)
	}
	defer again.Release()

	if again.NumMeshes() != scene.NumMeshes() {
		t.Errorf("re-imported %d meshes, want %d", again.NumMeshes(), scene.NumMeshes())
	}
	if got := again.Mesh(0).NumFaces(); got != 12 {
		t.Errorf("re-imported %d faces", got)
	}
}

func TestExportMutableScene(t *testing.T) {
	scene := importBox(t, 0)
	cp, err := scene.Copy()
	if err != nil {
		t.Fatalf("failed to copy: %v", err)
	}
	defer cp.Release()
	cp.MutableMesh(0).SetName("Edited")

	if err := Export(cp, "stl", filepath.Join(t.TempDir(), "box.stl"), Triangulate); err != nil {
		t.Fatalf("failed to export copy: %v", err)
	}
}

func TestExportBlob(t *testing.T) {
	scene := importBox(t, 0)
	blob, err := ExportBlob(scene, "obj", 0)
	if err != nil {
		t.Fatalf("failed to export blob: %v", err)
	}

	data := blob.Data()
	if !bytes.Contains(data, []byte("\nv ")) {
		t.Errorf("blob does not look like OBJ:\n%s", data)
	}
	names := map[string]bool{}
	for _, p := range blob.Parts() {
		names[p.Name] = true
		if len(p.Data) == 0 {
			t.Errorf("empty part %q", p.Name)
		}
	}
	if !names["mtl"] {
		t.Errorf("expected an mtl part, got %v", names)
	}

	blob.Release()
	blob.Release()
	defer func() {
		if recover() != ErrReleased {
			t.Error("expected panic with ErrReleased after Release")
		}
	}()
	blob.Data()
}
