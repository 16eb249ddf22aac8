package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sparseframes/internal/download"
	"sparseframes/internal/extract"
)

// startJob schedules a sampling job for a video, applying config defaults and
// any per-job overrides.
func (s *Server) startJob(videoID string, req ExtractRequest) (*Job, error) {
	s.mu.Lock()
	video, ok := s.videos[videoID]
	if !ok {
		s.mu.Unlock()
		return nil, errNotFound
	}
	for _, job := range s.jobs {
		if job.VideoID == videoID && (job.Status == "queued" || job.Status == "running") {
			s.mu.Unlock()
			return nil, errJobActive
		}
	}

	percFrames := s.config.PercFrames
	if req.PercFrames != nil {
		percFrames = *req.PercFrames
	}
	maxFrames := s.config.MaxFrames
	if req.MaxFrames != nil {
		maxFrames = *req.MaxFrames
	}
	opts := extract.Options{JPEGQuality: s.config.JPEGQuality}

	video.Status = "queued"
	video.LastError = nil
	video.FramesWritten = 0

	jobID := newID("job_")
	now := time.Now().UTC()
	job := &Job{
		ID:        jobID,
		VideoID:   videoID,
		Status:    "queued",
		Progress:  0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.jobs[jobID] = job
	cancelCh := make(chan struct{})
	s.jobCancel[jobID] = cancelCh
	s.mu.Unlock()

	go s.runJob(jobID, percFrames, maxFrames, opts, cancelCh)
	return job, nil
}

// cancelJob attempts to stop the active job for a video.
func (s *Server) cancelJob(videoID string) error {
	s.mu.Lock()
	var jobID string
	for id, job := range s.jobs {
		if job.VideoID == videoID && (job.Status == "running" || job.Status == "queued") {
			jobID = id
			break
		}
	}
	if jobID == "" {
		s.mu.Unlock()
		return errNotFound
	}
	// The job stays "running" until the worker notices the cancellation, so a
	// repeat cancel can find the job with its channel already gone.
	if ch, ok := s.jobCancel[jobID]; ok {
		close(ch)
		delete(s.jobCancel, jobID)
	}
	s.mu.Unlock()
	return nil
}

// runJob resolves the source, plans the sampling and extracts frames one by
// one, publishing progress after each written frame.
func (s *Server) runJob(jobID string, percFrames float64, maxFrames int, opts extract.Options, cancelCh <-chan struct{}) {
	defer func() {
		s.mu.Lock()
		delete(s.jobCancel, jobID)
		s.mu.Unlock()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-cancelCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	s.mu.Lock()
	job, ok := s.jobs[jobID]
	if !ok {
		s.mu.Unlock()
		return
	}
	video, ok := s.videos[job.VideoID]
	if !ok {
		s.mu.Unlock()
		return
	}
	videoID := video.ID
	source := video.Source
	job.Status = "running"
	job.UpdatedAt = time.Now().UTC()
	video.Status = "resolving"
	s.mu.Unlock()

	localPath, err := s.resolveSource(ctx, videoID, source)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.markJobCancelled(jobID, 0)
			return
		}
		s.failJob(jobID, fmt.Errorf("resolve source: %w", err))
		return
	}

	meta, err := extract.Probe(localPath)
	if err != nil {
		s.failJob(jobID, err)
		return
	}

	plan, err := extract.BuildPlan(meta, percFrames, maxFrames)
	if err != nil {
		s.failJob(jobID, err)
		return
	}

	s.mu.Lock()
	if video, ok := s.videos[videoID]; ok {
		video.LocalPath = localPath
		video.OutputDir = extract.OutputDir(localPath)
		video.FrameRate = meta.FrameRate
		video.DurationSeconds = meta.Duration
		video.TotalFrames = plan.TotalFrames
		video.PlannedFrames = len(plan.Indices)
		video.Status = "extracting"
	}
	s.mu.Unlock()

	written, err := extract.Run(ctx, localPath, meta, plan, opts, func(written, planned int) {
		s.refreshJobProgress(jobID, written, planned)
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.markJobCancelled(jobID, written)
			return
		}
		s.failJob(jobID, fmt.Errorf("extract frames: %w", err))
		return
	}

	s.completeJob(jobID, written)
}

// resolveSource turns the registered source into a local file. URLs download
// into a per-video directory so runs do not clobber each other.
func (s *Server) resolveSource(ctx context.Context, videoID, source string) (string, error) {
	if !download.IsURL(source) {
		return download.Resolve(ctx, source, "")
	}
	dir := filepath.Join(s.downloadRoot, videoID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}
	return download.Resolve(ctx, source, dir)
}

func (s *Server) refreshJobProgress(jobID string, written, planned int) {
	now := time.Now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return
	}
	if video, ok := s.videos[job.VideoID]; ok {
		video.FramesWritten = written
	}
	if planned > 0 {
		job.Progress = float64(written) / float64(planned)
	}
	job.UpdatedAt = now
}

func (s *Server) completeJob(jobID string, written int) {
	now := time.Now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return
	}
	job.Status = "done"
	job.Progress = 1
	job.UpdatedAt = now
	if video, ok := s.videos[job.VideoID]; ok {
		video.Status = "done"
		video.FramesWritten = written
		video.LastError = nil
		video.LastExtractedAt = &now
	}
}

func (s *Server) failJob(jobID string, err error) {
	msg := err.Error()
	now := time.Now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return
	}
	job.Status = "failed"
	job.UpdatedAt = now
	if video, ok := s.videos[job.VideoID]; ok {
		video.Status = "failed"
		video.LastError = &msg
	}
}

func (s *Server) markJobCancelled(jobID string, written int) {
	msg := "cancelled"
	now := time.Now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return
	}
	job.Status = "failed"
	job.UpdatedAt = now
	if video, ok := s.videos[job.VideoID]; ok {
		video.Status = "failed"
		video.FramesWritten = written
		video.LastError = &msg
	}
}
