package sink

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFilesystemSink_WriteFile(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)

	content := []byte("int_enum! {\n}\n")
	if err := s.WriteFile(context.Background(), "color.rs", content); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "color.rs"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("file content = %q, want %q", got, content)
	}
}

func TestFilesystemSink_CreatesSubdirectories(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)

	if err := s.WriteFile(context.Background(), "editor/color.rs", []byte("x")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "editor", "color.rs")); err != nil {
		t.Errorf("expected nested file: %v", err)
	}
}

func TestFilesystemSink_NoOverwrite(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)
	s.Overwrite = false

	ctx := context.Background()
	if err := s.WriteFile(ctx, "out.rs", []byte("first")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := s.WriteFile(ctx, "out.rs", []byte("second")); err == nil {
		t.Fatal("expected error writing over existing file")
	}

	got, err := os.ReadFile(filepath.Join(dir, "out.rs"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "first" {
		t.Errorf("file content = %q, want original preserved", got)
	}
}

func TestFilesystemSink_CanceledContext(t *testing.T) {
	s := NewFilesystemSink(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.WriteFile(ctx, "out.rs", []byte("x")); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestMemorySink(t *testing.T) {
	s := NewMemorySink()
	ctx := context.Background()

	if err := s.WriteFile(ctx, "a.rs", []byte("aa")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := s.WriteFile(ctx, "b.rs", []byte("bb")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if got := s.Get("a.rs"); string(got) != "aa" {
		t.Errorf("Get(a.rs) = %q, want %q", got, "aa")
	}
	if got := s.Get("missing.rs"); got != nil {
		t.Errorf("Get(missing.rs) = %q, want nil", got)
	}
	if got := len(s.Paths()); got != 2 {
		t.Errorf("len(Paths()) = %d, want 2", got)
	}
}

func TestMemorySink_CopiesContent(t *testing.T) {
	s := NewMemorySink()
	content := []byte("original")
	if err := s.WriteFile(context.Background(), "a.rs", content); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	content[0] = 'X'

	if got := s.Get("a.rs"); string(got) != "original" {
		t.Errorf("Get() = %q, want stored copy unaffected by caller mutation", got)
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple", "color.rs", false},
		{"nested", "editor/color.rs", false},
		{"empty", "", true},
		{"absolute", "/etc/passwd", true},
		{"windows drive", `C:\out.rs`, true},
		{"traversal", "../escape.rs", true},
		{"embedded traversal", "a/../b.rs", true},
		{"unclean", "a//b.rs", true},
		{"dot prefix", "./a.rs", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
