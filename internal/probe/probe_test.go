package probe

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "requirements.txt"), "flask\n")

	tests := []struct {
		name string
		dir  string
		file string
		want bool
	}{
		{"present file", dir, "requirements.txt", true},
		{"missing file", dir, "package.json", false},
		{"missing directory", filepath.Join(dir, "nope"), "requirements.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExists(tt.dir, tt.file); got != tt.want {
				t.Errorf("FileExists(%q, %q) = %v, want %v", tt.dir, tt.file, got, tt.want)
			}
		})
	}
}

func TestFileExists_Directory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "src"), 0o755); err != nil {
		t.Fatal(err)
	}

	// Any filesystem entry counts, not just regular files.
	if !FileExists(dir, "src") {
		t.Error("expected FileExists to report a subdirectory entry")
	}
}

func TestHasFileWithExt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "deep", "nested", "app.py"), "import os\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "hello\n")
	writeFile(t, filepath.Join(dir, "script.pyc"), "")

	tests := []struct {
		name string
		dir  string
		ext  string
		want bool
	}{
		{"nested match", dir, ".py", true},
		{"no match", dir, ".rb", false},
		{"extension is exact, not a suffix", dir, ".pyc", true},
		{"case sensitive", dir, ".PY", false},
		{"missing directory", filepath.Join(dir, "nope"), ".py", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasFileWithExt(tt.dir, tt.ext); got != tt.want {
				t.Errorf("HasFileWithExt(%q, %q) = %v, want %v", tt.dir, tt.ext, got, tt.want)
			}
		})
	}
}

func TestHasFileWithExt_SkipsUnreadableSubtree(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	dir := t.TempDir()
	// "locked" sorts before "open", so the walk hits the unreadable
	// subtree before it can find the match.
	writeFile(t, filepath.Join(dir, "locked", "hidden.py"), "import os\n")
	writeFile(t, filepath.Join(dir, "open", "app.py"), "import os\n")

	locked := filepath.Join(dir, "locked")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	if !HasFileWithExt(dir, ".py") {
		t.Error("expected the unreadable subtree to be skipped, not to abort the scan")
	}
	// A probe with no match anywhere must also survive the unreadable subtree.
	if HasFileWithExt(dir, ".rb") {
		t.Error("expected no .rb match")
	}
}

func TestHasFileWithExt_IgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	// A directory named like a source file must not count as a match.
	if err := os.MkdirAll(filepath.Join(dir, "fake.py"), 0o755); err != nil {
		t.Fatal(err)
	}

	if HasFileWithExt(dir, ".py") {
		t.Error("expected directories to be excluded from extension matching")
	}
}
