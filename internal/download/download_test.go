package download

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestIsURL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "http://example.com/video.mp4", want: true},
		{in: "https://example.com/watch?v=abc", want: true},
		{in: "video.mp4", want: false},
		{in: "/abs/path/video.mp4", want: false},
		{in: "ftp://example.com/video.mp4", want: false},
		{in: "httpsomething", want: false},
		{in: "", want: false},
	}

	for _, tt := range tests {
		if got := IsURL(tt.in); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResolveLocalFile(t *testing.T) {
	dir := t.TempDir()
	videoPath := filepath.Join(dir, "video.mp4")
	if err := os.WriteFile(videoPath, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Resolve(context.Background(), videoPath, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != videoPath {
		t.Errorf("resolved path = %q, want %q", got, videoPath)
	}
}

func TestResolveMissingLocalFile(t *testing.T) {
	_, err := Resolve(context.Background(), filepath.Join(t.TempDir(), "missing.mp4"), t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestFetchHTTP(t *testing.T) {
	payload := []byte("fake video bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), FixedFilename)
	if err := fetchHTTP(context.Background(), srv.URL, dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read downloaded file: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("downloaded content = %q, want %q", data, payload)
	}
}

func TestFetchYtdlpCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := fetchYtdlp(ctx, "sh", "https://example.com/watch?v=abc", filepath.Join(t.TempDir(), FixedFilename))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestFetchHTTPNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), FixedFilename)
	if err := fetchHTTP(context.Background(), srv.URL, dest); err == nil {
		t.Fatal("expected error for 404 response, got nil")
	}
}
