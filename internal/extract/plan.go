package extract

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFraction is returned when the keep fraction is outside (0, 1].
	ErrInvalidFraction = errors.New("perc-frames must be between 0 and 1")
	// ErrInvalidMaxFrames is returned when the frame cap is not positive.
	ErrInvalidMaxFrames = errors.New("max-frames must be greater than zero")
)

// Plan is the sampling plan for one extraction run.
type Plan struct {
	TotalFrames int   `json:"total_frames"`
	Stride      int   `json:"stride"`
	Indices     []int `json:"indices"`
}

// BuildPlan computes which frame indices to extract.
//
// The stride is the reciprocal of the keep fraction, truncated, with a floor
// of 1. This approximates keeping percFrames of the video rather than hitting
// the fraction exactly.
func BuildPlan(meta Metadata, percFrames float64, maxFrames int) (Plan, error) {
	if percFrames <= 0 || percFrames > 1 {
		return Plan{}, fmt.Errorf("%w, got %v", ErrInvalidFraction, percFrames)
	}
	if maxFrames <= 0 {
		return Plan{}, fmt.Errorf("%w, got %d", ErrInvalidMaxFrames, maxFrames)
	}

	total := int(meta.FrameRate * meta.Duration)
	stride := int(1 / percFrames)
	if stride < 1 {
		stride = 1
	}

	indices := make([]int, 0, maxFrames)
	for idx := 0; idx < total && len(indices) < maxFrames; idx += stride {
		indices = append(indices, idx)
	}

	return Plan{
		TotalFrames: total,
		Stride:      stride,
		Indices:     indices,
	}, nil
}
