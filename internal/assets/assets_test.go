package assets

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/goassimp/pkg/assimp"
	"github.com/Faultbox/goassimp/pkg/assimp/vfs"
)

func writeZip(t *testing.T, name string, files map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create zip: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, data := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("failed to add %s: %v", name, err)
		}
		if _, err := io.WriteString(w, data); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to finish zip: %v", err)
	}
	return path
}

func TestLoadPriority(t *testing.T) {
	low := writeZip(t, "low.zip", map[string]string{"a.txt": "low", "only-low.txt": "x"})
	high := writeZip(t, "high.zip", map[string]string{"a.txt": "high"})

	m := NewManager(nil)
	defer m.Close()
	for _, p := range []string{low, high} {
		if err := m.AddArchive(p); err != nil {
			t.Fatalf("failed to add archive: %v", err)
		}
	}

	data, err := m.Load("a.txt")
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if string(data) != "high" {
		t.Errorf("expected last archive to win, got %q", data)
	}
	if !m.Contains("only-low.txt") {
		t.Error("expected only-low.txt to be found")
	}

	if got := m.Archives(); len(got) != 2 || got[0] != high {
		t.Errorf("expected search order [high low], got %v", got)
	}

	_, err = m.Load("missing.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestCache(t *testing.T) {
	path := writeZip(t, "a.zip", map[string]string{"a.txt": "a"})
	m := NewManager(nil)
	defer m.Close()
	if err := m.AddArchive(path); err != nil {
		t.Fatalf("failed to add archive: %v", err)
	}

	m.Load("a.txt")
	m.Load("a.txt")

	hits, misses := m.CacheStats()
	if hits != 1 || misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %d and %d", hits, misses)
	}

	m.cache.Clear()
	if hits, misses := m.CacheStats(); hits != 0 || misses != 0 {
		t.Errorf("expected stats reset, got %d and %d", hits, misses)
	}
}

func TestAddArchiveMissing(t *testing.T) {
	m := NewManager(nil)
	if err := m.AddArchive(filepath.Join(t.TempDir(), "none.zip")); err == nil {
		t.Error("expected error for missing archive")
	}
}

func TestOpen(t *testing.T) {
	path := writeZip(t, "a.zip", map[string]string{"models/box.obj": "o Box\n"})
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "local.mtl"), []byte("newmtl A\n"), 0644); err != nil {
		t.Fatalf("failed to write local file: %v", err)
	}

	m := NewManager(vfs.Dir(dir))
	defer m.Close()
	if err := m.AddArchive(path); err != nil {
		t.Fatalf("failed to add archive: %v", err)
	}

	tests := []struct {
		name string
		mode string
		want string
	}{
		{"models/box.obj", "rb", "o Box\n"},
		{"local.mtl", "rb", "newmtl A\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := m.Open(tt.name, tt.mode)
			if err != nil {
				t.Fatalf("failed to open: %v", err)
			}
			defer f.Close()
			data, err := io.ReadAll(f)
			if err != nil {
				t.Fatalf("failed to read: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("expected %q, got %q", tt.want, data)
			}
		})
	}

	// Writes land in the base directory
	w, err := m.Open("out/result.obj", "wb")
	if err != nil {
		t.Fatalf("failed to open for writing: %v", err)
	}
	io.WriteString(w, "o Out\n")
	w.Close()
	if _, err := os.Stat(filepath.Join(dir, "out", "result.obj")); err != nil {
		t.Errorf("expected written file in base dir: %v", err)
	}
}

func TestOpenWithoutBase(t *testing.T) {
	m := NewManager(nil)

	if _, err := m.Open("x.obj", "rb"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
	if _, err := m.Open("x.obj", "wb"); !errors.Is(err, vfs.ErrReadOnly) {
		t.Errorf("expected vfs.ErrReadOnly, got %v", err)
	}
}

func TestImportFromArchive(t *testing.T) {
	obj, err := os.ReadFile("../../pkg/assimp/testdata/box.obj")
	if err != nil {
		t.Fatalf("failed to read box.obj: %v", err)
	}
	mtl, err := os.ReadFile("../../pkg/assimp/testdata/box.mtl")
	if err != nil {
		t.Fatalf("failed to read box.mtl: %v", err)
	}
	path := writeZip(t, "box.zip", map[string]string{"box.obj": string(obj), "box.mtl": string(mtl)})

	m := NewManager(nil)
	defer m.Close()
	if err := m.AddArchive(path); err != nil {
		t.Fatalf("failed to add archive: %v", err)
	}

	imp := assimp.NewImporter()
	defer imp.Close()
	scene, err := imp.ReadFileFrom(m, "box.obj")
	if err != nil {
		t.Fatalf("failed to import from archive: %v", err)
	}
	defer scene.Release()

	if scene.NumMeshes() != 1 {
		t.Errorf("expected 1 mesh, got %d", scene.NumMeshes())
	}
	found := false
	for _, mat := range scene.Materials() {
		if mat.Name() == "Red" {
			found = true
		}
	}
	if !found {
		t.Error("expected material Red from the archived box.mtl")
	}
}

func TestReadFile(t *testing.T) {
	path := writeZip(t, "a.zip", map[string]string{"tex/a.png": "zip"})
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "b.png"), []byte("disk"), 0644); err != nil {
		t.Fatalf("failed to write local file: %v", err)
	}

	m := NewManager(vfs.Dir(dir))
	defer m.Close()
	if err := m.AddArchive(path); err != nil {
		t.Fatalf("failed to add archive: %v", err)
	}

	for name, want := range map[string]string{"tex/a.png": "zip", "b.png": "disk"} {
		data, err := m.ReadFile(name)
		if err != nil {
			t.Fatalf("failed to read %s: %v", name, err)
		}
		if string(data) != want {
			t.Errorf("%s: expected %q, got %q", name, want, data)
		}
	}
	if _, err := m.ReadFile("c.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	bare := NewManager(nil)
	if _, err := bare.ReadFile("b.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error without base, got %v", err)
	}
}

func TestForModel(t *testing.T) {
	archive := writeZip(t, "a.zip", map[string]string{"models/box.obj": "o Box\n"})

	tests := []struct {
		name     string
		path     string
		archives []string
		want     string
	}{
		{"no archives", filepath.Join("some", "dir", "box.obj"), nil, "box.obj"},
		{"in archive", "models/box.obj", []string{archive}, "models/box.obj"},
		{"not in archive", filepath.Join("else", "box.obj"), []string{archive}, "box.obj"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, name, err := ForModel(tt.path, tt.archives)
			if err != nil {
				t.Fatalf("failed to create manager: %v", err)
			}
			defer m.Close()
			if name != tt.want {
				t.Errorf("expected name %q, got %q", tt.want, name)
			}
		})
	}

	if _, _, err := ForModel("box.obj", []string{filepath.Join(t.TempDir(), "none.zip")}); err == nil {
		t.Error("expected error for missing archive")
	}
}
