package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{"Pancakes", "Pancakes"},
		{"Beef & Ale Stew", "Beef_Ale_Stew"},
		{"Crème Brûlée", "Cr_me_Br_l_e"},
		{"  padded  ", "padded"},
		{"../etc/passwd", "etc_passwd"},
		{"v1.2 release", "v1.2_release"},
		{"dash-case", "dash-case"},
		{"///", ""},
		{"...", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "recipe.txt")
	if err := os.WriteFile(path, []byte("title: Tea"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(path) {
		t.Errorf("FileExists(%q) = false, want true", path)
	}
	if FileExists(dir) {
		t.Error("FileExists() = true for a directory")
	}
	if FileExists(filepath.Join(dir, "missing.txt")) {
		t.Error("FileExists() = true for a missing file")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    string
		want bool
	}{
		{"config", false},
		{"config.yaml", false},
		{"./config.yaml", true},
		{"/etc/recipe2doc/config.yaml", true},
		{`configs\local.yaml`, true},
	}

	for _, tt := range tests {
		if got := IsFilePath(tt.s); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
