package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Metadata describes the properties of a video needed to plan sampling.
type Metadata struct {
	FrameRate float64 `json:"frame_rate"`
	Duration  float64 `json:"duration"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
}

// Probe reads frame rate, duration and dimensions from a video file via ffprobe.
func Probe(inputPath string) (Metadata, error) {
	out, err := ffmpeg.Probe(inputPath)
	if err != nil {
		return Metadata{}, fmt.Errorf("probe %s: %w", inputPath, err)
	}
	return parseProbeOutput([]byte(out))
}

type probeStream struct {
	CodecType    string `json:"codec_type"`
	AvgFrameRate string `json:"avg_frame_rate"`
	RFrameRate   string `json:"r_frame_rate"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

type probeOutput struct {
	Streams []probeStream `json:"streams"`
	Format  struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func parseProbeOutput(data []byte) (Metadata, error) {
	var out probeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return Metadata{}, fmt.Errorf("decode probe output: %w", err)
	}

	var video *probeStream
	for i := range out.Streams {
		if out.Streams[i].CodecType == "video" {
			video = &out.Streams[i]
			break
		}
	}
	if video == nil {
		return Metadata{}, fmt.Errorf("no video stream found")
	}

	rate, err := parseRational(video.AvgFrameRate)
	if err != nil || rate <= 0 {
		rate, err = parseRational(video.RFrameRate)
	}
	if err != nil {
		return Metadata{}, fmt.Errorf("parse frame rate: %w", err)
	}
	if rate <= 0 {
		return Metadata{}, fmt.Errorf("frame rate is not positive")
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(out.Format.Duration), 64)
	if err != nil {
		return Metadata{}, fmt.Errorf("parse duration: %w", err)
	}

	return Metadata{
		FrameRate: rate,
		Duration:  duration,
		Width:     video.Width,
		Height:    video.Height,
	}, nil
}

// parseRational parses ffprobe rate strings such as "30/1" or "30000/1001".
func parseRational(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty rational")
	}
	num, den, found := strings.Cut(s, "/")
	if !found {
		return strconv.ParseFloat(num, 64)
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("numerator %q: %w", num, err)
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, fmt.Errorf("denominator %q: %w", den, err)
	}
	if d == 0 {
		return 0, nil
	}
	return n / d, nil
}
