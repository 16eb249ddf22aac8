package daemon

import (
	"net/http"
	"os"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Server stores all in-memory state and exposes HTTP handlers.
type Server struct {
	mu            sync.RWMutex
	config        Config
	folders       map[string]Folder
	videos        map[string]*Video
	jobs          map[string]*Job
	jobCancel     map[string]chan struct{}
	folderByPath  map[string]string
	videoBySource map[string]string
	downloadRoot  string
	stateless     bool
	cleanupDirs   []string
	cleanupOnce   sync.Once
}

func NewServer() *Server {
	cfg := Config{
		PercFrames:  0.10,
		MaxFrames:   180,
		JPEGQuality: 2,
	}

	downloadRoot := os.Getenv("DOWNLOAD_ROOT")
	stateless := os.Getenv("STATELESS_TEST") == "1" || os.Getenv("STATELESS_MODE") == "1"
	if stateless {
		if tmp, err := os.MkdirTemp("", "sparseframes-downloads-"); err == nil {
			downloadRoot = tmp
		}
	}

	if downloadRoot == "" {
		downloadRoot = "downloads"
	}

	cleanupDirs := []string{}
	if stateless {
		cleanupDirs = append(cleanupDirs, downloadRoot)
	}

	return &Server{
		config:        cfg,
		folders:       make(map[string]Folder),
		videos:        make(map[string]*Video),
		jobs:          make(map[string]*Job),
		jobCancel:     make(map[string]chan struct{}),
		folderByPath:  make(map[string]string),
		videoBySource: make(map[string]string),
		downloadRoot:  downloadRoot,
		stateless:     stateless,
		cleanupDirs:   cleanupDirs,
	}
}

// Routes returns the HTTP handler for all endpoints.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	// Logging
	r.Use(logRequestMiddleware)

	// CORS to allow local client
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger docs
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Config and health
	r.Get("/health", s.handleHealth)
	r.MethodFunc(http.MethodGet, "/config", s.handleConfig)
	r.MethodFunc(http.MethodPut, "/config", s.handleConfig)

	// Folders
	r.MethodFunc(http.MethodGet, "/folders", s.handleFolders)
	r.MethodFunc(http.MethodPost, "/folders", s.handleFolders)

	// Videos
	r.MethodFunc(http.MethodGet, "/videos", s.handleVideos)
	r.MethodFunc(http.MethodPost, "/videos", s.handleVideos)
	r.Route("/videos/{videoID}", func(r chi.Router) {
		r.MethodFunc(http.MethodGet, "/", s.handleGetVideo)
		r.MethodFunc(http.MethodPost, "/extract", s.handleExtract)
		r.MethodFunc(http.MethodPost, "/cancel", s.handleCancel)
		r.MethodFunc(http.MethodGet, "/file", s.handleVideoFile)
		r.MethodFunc(http.MethodGet, "/frames", s.handleVideoFrames)
	})

	// Jobs
	r.MethodFunc(http.MethodGet, "/jobs", s.handleJobs)

	return r
}

// Cleanup removes temporary data when stateless mode is enabled.
func (s *Server) Cleanup() {
	if !s.stateless {
		return
	}
	s.cleanupOnce.Do(func() {
		for _, dir := range s.cleanupDirs {
			_ = os.RemoveAll(dir)
		}
	})
}
