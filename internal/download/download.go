// Package download resolves a video source (URL or local path) to a local file.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// FixedFilename is the local name the downloaded video is saved under.
const FixedFilename = "downloaded_video.mp4"

// ytdlpFormat selects the highest-resolution stream in an MP4 container.
const ytdlpFormat = "best[ext=mp4]"

// IsURL reports whether the input should be fetched rather than opened locally.
func IsURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// Resolve turns a source string into a local file path. URLs are fetched into
// destDir under FixedFilename; local paths are checked for existence only.
// A single attempt is made, with no retry.
func Resolve(ctx context.Context, input, destDir string) (string, error) {
	if IsURL(input) {
		return Fetch(ctx, input, destDir)
	}
	if _, err := os.Stat(input); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file does not exist: %s", input)
		}
		return "", fmt.Errorf("stat %s: %w", input, err)
	}
	return input, nil
}

// Fetch downloads the video behind url into destDir and returns the saved
// path. Video-site URLs need yt-dlp on PATH; when it is missing the URL is
// treated as a direct media link and fetched with a plain GET.
func Fetch(ctx context.Context, url, destDir string) (string, error) {
	dest := filepath.Join(destDir, FixedFilename)

	if ytdlp, err := exec.LookPath("yt-dlp"); err == nil {
		return dest, fetchYtdlp(ctx, ytdlp, url, dest)
	}
	return dest, fetchHTTP(ctx, url, dest)
}

func fetchYtdlp(ctx context.Context, bin, url, dest string) error {
	cmd := exec.CommandContext(ctx, bin,
		"-f", ytdlpFormat,
		"--no-playlist",
		"--force-overwrites",
		"-o", dest,
		url,
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		// A cancelled context kills the process; report the cancellation
		// rather than the resulting exec error.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("yt-dlp: %w, output: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

func fetchHTTP(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch video: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("fetch video: unexpected status %s", resp.Status)
	}

	file, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return fmt.Errorf("save video: %w", err)
	}
	return nil
}
