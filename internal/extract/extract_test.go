package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutputDir(t *testing.T) {
	got := OutputDir(filepath.Join("some", "dir", "video.mp4"))
	want := filepath.Join("some", "dir", "images")
	if got != want {
		t.Errorf("OutputDir = %q, want %q", got, want)
	}
}

func TestPrepareOutputDirFirstRun(t *testing.T) {
	dir := t.TempDir()
	videoPath := filepath.Join(dir, "video.mp4")

	outDir, err := PrepareOutputDir(videoPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outDir != filepath.Join(dir, "images") {
		t.Errorf("output dir = %q, want %q", outDir, filepath.Join(dir, "images"))
	}

	info, err := os.Stat(outDir)
	if err != nil {
		t.Fatalf("stat output dir: %v", err)
	}
	if !info.IsDir() {
		t.Error("output path is not a directory")
	}
}

func TestPrepareOutputDirDestroysPriorContents(t *testing.T) {
	dir := t.TempDir()
	videoPath := filepath.Join(dir, "video.mp4")
	imagesDir := filepath.Join(dir, "images")

	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(imagesDir, "999.jpg")
	if err := os.WriteFile(stale, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := PrepareOutputDir(videoPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := os.ReadDir(imagesDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("output dir not empty after recreate: %d entries", len(entries))
	}
}
