// Package server provides the phrasplit REST API and streaming server.
package server

import (
	"fmt"
	"net/http"

	"github.com/phrasplit/phrasplit/internal/cache"
	"github.com/phrasplit/phrasplit/internal/logging"
)

// Config contains server configuration options.
type Config struct {
	// Port is the TCP port to listen on.
	Port int

	// CacheSize is the maximum number of cached split results (0 disables
	// the cache).
	CacheSize int
}

// DefaultConfig returns a default server configuration.
func DefaultConfig() Config {
	return Config{
		Port:      8080,
		CacheSize: 256,
	}
}

// Server handles split requests over HTTP and WebSocket.
type Server struct {
	config Config
	cache  *cache.SegmentCache
}

// New creates a server with the given configuration.
func New(cfg Config) *Server {
	s := &Server{config: cfg}
	if cfg.CacheSize > 0 {
		s.cache = cache.NewSegmentCache(cache.Config{MaxSize: cfg.CacheSize})
	}
	return s
}

// Handler returns the server's full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/split", s.handleSplit)
	mux.HandleFunc("/api/validate", s.handleValidate)
	mux.HandleFunc("/api/suggest", s.handleSuggest)
	mux.HandleFunc("/api/patterns", s.handlePatterns)
	mux.HandleFunc("/ws/split", s.handleStream)

	return logging.CombinedMiddleware(mux)
}

// Start starts the server and blocks until it exits.
func Start(cfg Config) error {
	s := New(cfg)

	logging.ServerStartup("rest_api", "http", cfg.Port,
		"cache_size", cfg.CacheSize)

	addr := fmt.Sprintf(":%d", cfg.Port)
	return http.ListenAndServe(addr, s.Handler())
}
