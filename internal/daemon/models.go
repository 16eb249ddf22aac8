package daemon

import (
	"errors"
	"time"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// Config holds the default sampling settings applied to new jobs.
type Config struct {
	PercFrames  float64 `json:"perc_frames" example:"0.1"`
	MaxFrames   int     `json:"max_frames" example:"180"`
	JPEGQuality int     `json:"jpeg_quality" example:"2"`
}

// Folder represents a registered directory whose video files were scanned
// into the registry.
type Folder struct {
	ID          string `json:"folder_id" example:"fld_abcd1234"`
	Path        string `json:"path" example:"/videos"`
	VideosFound int    `json:"videos_found" example:"3"`
	Status      string `json:"status" example:"scanned"`
}

// Video tracks a single source (local path or URL) and its sampling progress.
type Video struct {
	ID              string     `json:"video_id" example:"vid_abcd1234"`
	Source          string     `json:"source" example:"/videos/site.mp4"`
	LocalPath       string     `json:"local_path,omitempty" example:"/videos/site.mp4"`
	OutputDir       string     `json:"output_dir,omitempty" example:"/videos/images"`
	Status          string     `json:"status" example:"extracting"`
	FrameRate       float64    `json:"frame_rate,omitempty" example:"29.97"`
	DurationSeconds float64    `json:"duration_seconds,omitempty" example:"120.5"`
	TotalFrames     int        `json:"total_frames,omitempty" example:"3612"`
	PlannedFrames   int        `json:"planned_frames,omitempty" example:"180"`
	FramesWritten   int        `json:"frames_written" example:"80"`
	LastExtractedAt *time.Time `json:"last_extracted_at,omitempty" example:"2024-01-01T12:00:00Z"`
	LastError       *string    `json:"last_error,omitempty" example:"no video stream found"`
}

// Job represents one sampling run over a registered video.
type Job struct {
	ID        string    `json:"job_id" example:"job_abcd1234"`
	VideoID   string    `json:"video_id" example:"vid_abcd1234"`
	Status    string    `json:"status" example:"running"`
	Progress  float64   `json:"progress" example:"0.42"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T12:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-01T12:05:00Z"`
}

// ErrorResponse represents a standard error payload.
type ErrorResponse struct {
	Error string `json:"error" example:"description of the error"`
}

// HealthResponse describes the health endpoint payload.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version" example:"0.1.0"`
}

// ConfigUpdateRequest allows partial configuration updates.
type ConfigUpdateRequest struct {
	PercFrames  *float64 `json:"perc_frames" example:"0.25"`
	MaxFrames   *int     `json:"max_frames" example:"90"`
	JPEGQuality *int     `json:"jpeg_quality" example:"5"`
}

// StatusResponse is a generic status wrapper.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// AddFolderRequest is the payload to register a folder of videos.
type AddFolderRequest struct {
	Path string `json:"path" example:"/videos"`
}

// AddFolderResponse returns the registered folder ID and scan result.
type AddFolderResponse struct {
	FolderID    string `json:"folder_id" example:"fld_abcd1234"`
	VideosFound int    `json:"videos_found" example:"3"`
	Status      string `json:"status" example:"scanned"`
}

// AddVideoRequest registers a new video source for sampling.
type AddVideoRequest struct {
	Path string `json:"path" example:"/videos/site.mp4"`
}

// AddVideoResponse returns the created video ID.
type AddVideoResponse struct {
	VideoID string `json:"video_id" example:"vid_abcd1234"`
	Status  string `json:"status" example:"registered"`
}

// ExtractRequest carries optional per-job sampling overrides.
type ExtractRequest struct {
	PercFrames *float64 `json:"perc_frames" example:"0.5"`
	MaxFrames  *int     `json:"max_frames" example:"60"`
}

// StartJobResponse provides the started job ID.
type StartJobResponse struct {
	Status string `json:"status" example:"started"`
	JobID  string `json:"job_id" example:"job_abcd1234"`
}

// CancelJobResponse indicates a cancellation attempt.
type CancelJobResponse struct {
	Status string `json:"status" example:"cancelling"`
}

// FrameListResponse lists the frame files written by the last job.
type FrameListResponse struct {
	OutputDir string   `json:"output_dir" example:"/videos/images"`
	Frames    []string `json:"frames" example:"0.jpg,10.jpg,20.jpg"`
}

var (
	errNotFound  = errors.New("not found")
	errJobActive = errors.New("a job is already active for this video")
)
