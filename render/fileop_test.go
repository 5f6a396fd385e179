package render

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileCleansUpOnError(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "icon.png")
	errBoom := errors.New("boom")

	err := writeFile(dest, false, func(io.Writer) error { return errBoom })
	if !errors.Is(err, errBoom) {
		t.Fatalf("error = %v, want %v", err, errBoom)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("left %d files behind", len(entries))
	}
}

func TestWriteFileReplaces(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "icon.png")
	if err := os.WriteFile(dest, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	write := func(w io.Writer) error {
		_, err := io.WriteString(w, "new")
		return err
	}
	if err := writeFile(dest, false, write); !errors.Is(err, ErrDestinationExists) {
		t.Fatalf("error = %v, want %v", err, ErrDestinationExists)
	}
	if err := writeFile(dest, true, write); err != nil {
		t.Fatalf("writeFile: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}

func TestWriteFileRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := writeFile(dir, true, func(io.Writer) error { return nil }); err == nil {
		t.Error("replaced a directory")
	}
}
