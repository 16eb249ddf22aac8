package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

func init() {
	ffmpeg.LogCompiledCommand = false
}

// OutputDirName is the directory created next to the video for extracted frames.
const OutputDirName = "images"

// Options controls how frames are written.
type Options struct {
	JPEGQuality int `json:"jpeg_quality"`
}

// DefaultOptions matches ffmpeg's high-quality JPEG setting.
var DefaultOptions = Options{JPEGQuality: 2}

// OutputDir returns the sibling images directory for a video path.
func OutputDir(videoPath string) string {
	return filepath.Join(filepath.Dir(videoPath), OutputDirName)
}

// PrepareOutputDir recreates the images directory next to the video. Any
// contents from a previous run are destroyed.
func PrepareOutputDir(videoPath string) (string, error) {
	dir := OutputDir(videoPath)
	if err := os.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("remove output dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	return dir, nil
}

// ExtractFrame decodes the frame at index/frameRate seconds and writes it as
// <index>.jpg in outputDir.
func ExtractFrame(inputPath, outputDir string, index int, frameRate float64, opts Options) error {
	quality := opts.JPEGQuality
	if quality <= 0 {
		quality = DefaultOptions.JPEGQuality
	}

	timestamp := float64(index) / frameRate
	target := filepath.Join(outputDir, fmt.Sprintf("%d.jpg", index))

	err := ffmpeg.
		Input(inputPath, ffmpeg.KwArgs{"ss": strconv.FormatFloat(timestamp, 'f', -1, 64)}).
		Output(target, ffmpeg.KwArgs{"vframes": 1, "qscale:v": quality}).
		OverWriteOutput().
		Run()
	if err != nil {
		return fmt.Errorf("extract frame %d at %.3fs: %w", index, timestamp, err)
	}
	return nil
}

// ProgressFunc is invoked after each written frame with the count so far and
// the planned total.
type ProgressFunc func(written, planned int)

// Run extracts every frame in the plan into a freshly recreated images
// directory next to the video and returns the number of frames written. The
// context is checked between frames; cancellation leaves already written
// frames in place.
func Run(ctx context.Context, inputPath string, meta Metadata, plan Plan, opts Options, onProgress ProgressFunc) (int, error) {
	outputDir, err := PrepareOutputDir(inputPath)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, idx := range plan.Indices {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if err := ExtractFrame(inputPath, outputDir, idx, meta.FrameRate, opts); err != nil {
			return written, err
		}
		written++
		if onProgress != nil {
			onProgress(written, len(plan.Indices))
		}
	}
	return written, nil
}
