package daemon

import (
	"net/http"
)

// handleHealth godoc
// @Summary Health check
// @Description Returns service health and version.
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": Version,
	})
}

// handleConfig godoc
// @Summary Get or update sampling defaults
// @Description Returns the current defaults on GET and updates selected fields on PUT.
// @Tags config
// @Accept json
// @Produce json
// @Param request body ConfigUpdateRequest false "Fields to update (PUT only)"
// @Success 200 {object} Config
// @Success 200 {object} StatusResponse "Update acknowledgment"
// @Failure 400 {object} ErrorResponse
// @Router /config [get]
// @Router /config [put]
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.mu.RLock()
		cfg := s.config
		s.mu.RUnlock()
		writeJSON(w, http.StatusOK, cfg)
	case http.MethodPut:
		var req ConfigUpdateRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json payload")
			return
		}
		if req.PercFrames != nil && (*req.PercFrames <= 0 || *req.PercFrames > 1) {
			writeError(w, http.StatusBadRequest, "perc_frames must be between 0 and 1")
			return
		}
		if req.MaxFrames != nil && *req.MaxFrames <= 0 {
			writeError(w, http.StatusBadRequest, "max_frames must be greater than zero")
			return
		}
		if req.JPEGQuality != nil && (*req.JPEGQuality < 1 || *req.JPEGQuality > 31) {
			writeError(w, http.StatusBadRequest, "jpeg_quality must be between 1 and 31")
			return
		}
		s.mu.Lock()
		if req.PercFrames != nil {
			s.config.PercFrames = *req.PercFrames
		}
		if req.MaxFrames != nil {
			s.config.MaxFrames = *req.MaxFrames
		}
		if req.JPEGQuality != nil {
			s.config.JPEGQuality = *req.JPEGQuality
		}
		s.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
