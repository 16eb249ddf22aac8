package daemon

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// handleFolders godoc
// @Summary List or register folders
// @Description GET lists registered folders; POST registers a directory and scans its video files into the registry.
// @Tags folders
// @Accept json
// @Produce json
// @Param request body AddFolderRequest true "Folder to register (POST only)"
// @Success 200 {array} Folder
// @Success 200 {object} AddFolderResponse
// @Failure 400 {object} ErrorResponse
// @Router /folders [get]
// @Router /folders [post]
func (s *Server) handleFolders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.mu.RLock()
		list := make([]Folder, 0, len(s.folders))
		for _, f := range s.folders {
			list = append(list, f)
		}
		s.mu.RUnlock()
		writeJSON(w, http.StatusOK, list)
	case http.MethodPost:
		var req AddFolderRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json payload")
			return
		}
		if strings.TrimSpace(req.Path) == "" {
			writeError(w, http.StatusBadRequest, "path is required")
			return
		}

		s.mu.Lock()
		if id, exists := s.folderByPath[req.Path]; exists {
			f := s.folders[id]
			s.mu.Unlock()
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"folder_id":    f.ID,
				"videos_found": f.VideosFound,
				"status":       "already_exists",
			})
			return
		}
		s.mu.Unlock()

		entries, err := os.ReadDir(req.Path)
		if err != nil {
			writeError(w, http.StatusBadRequest, "read folder: "+err.Error())
			return
		}

		s.mu.Lock()
		if id, exists := s.folderByPath[req.Path]; exists {
			f := s.folders[id]
			s.mu.Unlock()
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"folder_id":    f.ID,
				"videos_found": f.VideosFound,
				"status":       "already_exists",
			})
			return
		}
		found := 0
		for _, entry := range entries {
			if entry.IsDir() || !isVideoFile(entry.Name()) {
				continue
			}
			s.addVideoLocked(filepath.Join(req.Path, entry.Name()))
			found++
		}
		folderID := newID("fld_")
		s.folders[folderID] = Folder{
			ID:          folderID,
			Path:        req.Path,
			VideosFound: found,
			Status:      "scanned",
		}
		s.folderByPath[req.Path] = folderID
		s.mu.Unlock()

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"folder_id":    folderID,
			"videos_found": found,
			"status":       "scanned",
		})
	}
}

func isVideoFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mp4", ".mov", ".mkv", ".avi", ".m4v", ".webm":
		return true
	default:
		return false
	}
}
