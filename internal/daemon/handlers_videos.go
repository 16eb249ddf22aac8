package daemon

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// handleVideos godoc
// @Summary List or register videos
// @Description GET lists registered sources; POST registers a local path or URL for sampling.
// @Tags videos
// @Accept json
// @Produce json
// @Param request body AddVideoRequest true "Source to register"
// @Success 200 {array} Video
// @Success 200 {object} AddVideoResponse
// @Failure 400 {object} ErrorResponse
// @Router /videos [get]
// @Router /videos [post]
func (s *Server) handleVideos(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.mu.RLock()
		list := make([]Video, 0, len(s.videos))
		for _, v := range s.videos {
			copyVideo := *v
			list = append(list, copyVideo)
		}
		s.mu.RUnlock()
		writeJSON(w, http.StatusOK, list)
	case http.MethodPost:
		var req AddVideoRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json payload")
			return
		}
		if strings.TrimSpace(req.Path) == "" {
			writeError(w, http.StatusBadRequest, "path is required")
			return
		}

		s.mu.Lock()
		videoID, status := s.addVideoLocked(req.Path)
		s.mu.Unlock()

		writeJSON(w, http.StatusOK, map[string]string{
			"video_id": videoID,
			"status":   status,
		})
	}
}

// addVideoLocked registers a source and returns its ID, reusing the existing
// entry for known sources. Caller must hold s.mu.
func (s *Server) addVideoLocked(source string) (videoID, status string) {
	if id, exists := s.videoBySource[source]; exists {
		return id, "already_exists"
	}
	videoID = newID("vid_")
	s.videos[videoID] = &Video{
		ID:     videoID,
		Source: source,
		Status: "registered",
	}
	s.videoBySource[source] = videoID
	return videoID, "registered"
}

// handleGetVideo godoc
// @Summary Get video details
// @Description Returns stored metadata and sampling status for a video.
// @Tags videos
// @Produce json
// @Param videoID path string true "Video ID"
// @Success 200 {object} Video
// @Failure 404 {object} ErrorResponse
// @Router /videos/{videoID} [get]
func (s *Server) handleGetVideo(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")
	s.mu.RLock()
	video, ok := s.videos[videoID]
	if ok {
		copyVideo := *video
		s.mu.RUnlock()
		writeJSON(w, http.StatusOK, copyVideo)
		return
	}
	s.mu.RUnlock()
	writeError(w, http.StatusNotFound, "video not found")
}

// handleExtract godoc
// @Summary Start a sampling job
// @Description Starts frame extraction for the given video, with optional per-job overrides.
// @Tags videos
// @Accept json
// @Produce json
// @Param videoID path string true "Video ID"
// @Param request body ExtractRequest false "Sampling overrides"
// @Success 200 {object} StartJobResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /videos/{videoID}/extract [post]
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")
	var req ExtractRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid json payload")
		return
	}
	job, err := s.startJob(videoID, req)
	if err != nil {
		if errors.Is(err, errNotFound) {
			writeError(w, http.StatusNotFound, "video not found")
			return
		}
		if errors.Is(err, errJobActive) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "started", "job_id": job.ID})
}

// handleCancel godoc
// @Summary Cancel the active sampling job
// @Description Attempts to cancel the active job for the given video.
// @Tags videos
// @Produce json
// @Param videoID path string true "Video ID"
// @Success 200 {object} CancelJobResponse
// @Failure 404 {object} ErrorResponse
// @Router /videos/{videoID}/cancel [post]
func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")
	if err := s.cancelJob(videoID); err != nil {
		if errors.Is(err, errNotFound) {
			writeError(w, http.StatusNotFound, "video not found or no active job")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelling"})
}

// handleVideoFile streams the resolved local video file.
func (s *Server) handleVideoFile(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")
	s.mu.RLock()
	video, ok := s.videos[videoID]
	var localPath string
	if ok {
		localPath = video.LocalPath
		if localPath == "" {
			localPath = video.Source
		}
	}
	s.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, "video not found")
		return
	}
	if strings.TrimSpace(localPath) == "" {
		writeError(w, http.StatusNotFound, "video path missing")
		return
	}

	http.ServeFile(w, r, localPath)
}

// handleVideoFrames godoc
// @Summary List extracted frames
// @Description Returns the frame files written by the last sampling job.
// @Tags videos
// @Produce json
// @Param videoID path string true "Video ID"
// @Success 200 {object} FrameListResponse
// @Failure 404 {object} ErrorResponse
// @Router /videos/{videoID}/frames [get]
func (s *Server) handleVideoFrames(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")
	s.mu.RLock()
	video, ok := s.videos[videoID]
	var outputDir string
	if ok {
		outputDir = video.OutputDir
	}
	s.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, "video not found")
		return
	}
	if outputDir == "" {
		writeError(w, http.StatusNotFound, "no frames extracted yet")
		return
	}

	frames, err := listFrameFiles(outputDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, FrameListResponse{
		OutputDir: outputDir,
		Frames:    frames,
	})
}
