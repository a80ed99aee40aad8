package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestOSFileSystem_Open_ValidDirectory(t *testing.T) {
	dir := t.TempDir()
	p := NewOSFileSystem()

	d, err := p.Open(dir)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", dir, err)
	}
	if d.Path() != dir {
		t.Errorf("directory.Path() = %q, want %q", d.Path(), dir)
	}
}

func TestOSFileSystem_Open_NonexistentPath(t *testing.T) {
	p := NewOSFileSystem()

	_, err := p.Open(filepath.Join(t.TempDir(), "nonexistent"))
	if err == nil {
		t.Fatal("Open(nonexistent) should return error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should match fs.ErrNotExist, got %v", err)
	}
}

func TestOSFileSystem_Open_FileNotDirectory(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "file.html")
	if err := os.WriteFile(filePath, []byte("content"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewOSFileSystem().Open(filePath); err == nil {
		t.Error("Open(file) should return error")
	}
}

func TestOSFileSystem_ReadFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "page.html")
	expected := `<button _="on click toggle .x">`
	if err := os.WriteFile(filePath, []byte(expected), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := NewOSFileSystem().ReadFile(filePath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != expected {
		t.Errorf("ReadFile() = %q, want %q", string(data), expected)
	}
}

func TestOSFileSystem_Walk(t *testing.T) {
	dir := t.TempDir()
	for _, rel := range []string{"a.html", "sub/b.html", "sub/deeper/c.txt"} {
		full := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(rel), 0644); err != nil {
			t.Fatal(err)
		}
	}

	d, err := NewOSFileSystem().Open(dir)
	if err != nil {
		t.Fatal(err)
	}

	var rels []string
	err = d.Walk(func(file File, err error) error {
		if err != nil {
			return err
		}
		if file.IsDir() {
			return nil
		}
		content, err := file.ReadContent()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, file.Path())
		if err != nil {
			return err
		}
		if string(content) != filepath.ToSlash(rel) {
			t.Errorf("content %q does not match %q", content, rel)
		}
		rels = append(rels, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	sort.Strings(rels)
	want := []string{"a.html", "sub/b.html", "sub/deeper/c.txt"}
	if len(rels) != len(want) {
		t.Fatalf("walked %v, want %v", rels, want)
	}
	for i := range want {
		if rels[i] != want[i] {
			t.Errorf("rels[%d] = %q, want %q", i, rels[i], want[i])
		}
	}
}

func TestOSFileSystem_Stat(t *testing.T) {
	dir := t.TempDir()
	info, err := NewOSFileSystem().Stat(dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Error("Stat(dir).IsDir() = false")
	}
}
