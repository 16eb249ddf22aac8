package extract

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuildPlan(t *testing.T) {
	tests := []struct {
		name        string
		meta        Metadata
		percFrames  float64
		maxFrames   int
		wantStride  int
		wantIndices []int
	}{
		{
			name:        "full fraction capped by max",
			meta:        Metadata{FrameRate: 1, Duration: 10},
			percFrames:  1.0,
			maxFrames:   3,
			wantStride:  1,
			wantIndices: []int{0, 1, 2},
		},
		{
			name:        "half fraction strides by two",
			meta:        Metadata{FrameRate: 1, Duration: 10},
			percFrames:  0.5,
			maxFrames:   180,
			wantStride:  2,
			wantIndices: []int{0, 2, 4, 6, 8},
		},
		{
			name:        "tenth fraction strides by ten",
			meta:        Metadata{FrameRate: 30, Duration: 2},
			percFrames:  0.1,
			maxFrames:   180,
			wantStride:  10,
			wantIndices: []int{0, 10, 20, 30, 40, 50},
		},
		{
			name:        "full fraction every frame",
			meta:        Metadata{FrameRate: 1, Duration: 5},
			percFrames:  1.0,
			maxFrames:   180,
			wantStride:  1,
			wantIndices: []int{0, 1, 2, 3, 4},
		},
		{
			name:        "zero duration yields empty plan",
			meta:        Metadata{FrameRate: 30, Duration: 0},
			percFrames:  0.5,
			maxFrames:   180,
			wantStride:  2,
			wantIndices: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := BuildPlan(tt.meta, tt.percFrames, tt.maxFrames)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if plan.Stride != tt.wantStride {
				t.Errorf("stride = %d, want %d", plan.Stride, tt.wantStride)
			}
			if !reflect.DeepEqual(plan.Indices, tt.wantIndices) {
				t.Errorf("indices = %v, want %v", plan.Indices, tt.wantIndices)
			}
			if len(plan.Indices) > tt.maxFrames {
				t.Errorf("plan exceeds max frames: %d > %d", len(plan.Indices), tt.maxFrames)
			}
		})
	}
}

func TestBuildPlanTruncatesTotalFrames(t *testing.T) {
	// 29.97 fps over one second is 29 whole frames, not 30.
	plan, err := BuildPlan(Metadata{FrameRate: 29.97, Duration: 1}, 1.0, 180)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.TotalFrames != 29 {
		t.Errorf("total frames = %d, want 29", plan.TotalFrames)
	}
}

func TestBuildPlanValidation(t *testing.T) {
	meta := Metadata{FrameRate: 30, Duration: 10}

	tests := []struct {
		name       string
		percFrames float64
		maxFrames  int
		wantErr    error
	}{
		{name: "zero fraction", percFrames: 0, maxFrames: 180, wantErr: ErrInvalidFraction},
		{name: "negative fraction", percFrames: -0.1, maxFrames: 180, wantErr: ErrInvalidFraction},
		{name: "fraction above one", percFrames: 1.5, maxFrames: 180, wantErr: ErrInvalidFraction},
		{name: "zero max frames", percFrames: 0.5, maxFrames: 0, wantErr: ErrInvalidMaxFrames},
		{name: "negative max frames", percFrames: 0.5, maxFrames: -3, wantErr: ErrInvalidMaxFrames},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildPlan(meta, tt.percFrames, tt.maxFrames)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
