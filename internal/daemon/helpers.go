package daemon

import (
	"encoding/json"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func newID(prefix string) string {
	return prefix + uuid.NewString()
}

// listFrameFiles returns <index>.jpg files in dir sorted by frame index.
func listFrameFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	type frameFile struct {
		name  string
		index int
	}
	frames := make([]frameFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		stem, found := strings.CutSuffix(name, ".jpg")
		if !found {
			continue
		}
		index, err := strconv.Atoi(stem)
		if err != nil {
			continue
		}
		frames = append(frames, frameFile{name: name, index: index})
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i].index < frames[j].index })

	names := make([]string, len(frames))
	for i, f := range frames {
		names[i] = f.name
	}
	return names, nil
}
