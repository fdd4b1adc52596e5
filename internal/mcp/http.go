package mcp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Router builds the HTTP transport: the streamable MCP endpoint at /mcp plus
// a liveness endpoint at /health and /.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleHealth)

	streamable := server.NewStreamableHTTPServer(s.mcpServer)
	r.Handle("/mcp", streamable)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Not found"})
	})

	return r
}

// StartHTTP serves the HTTP transport on the given port until the listener
// fails or the process exits.
func (s *Server) StartHTTP(port int) error {
	addr := fmt.Sprintf(":%d", port)
	s.logger.Info("starting MCP server on HTTP transport",
		zap.String("addr", addr),
		zap.String("mcp_endpoint", "/mcp"),
		zap.String("health_endpoint", "/health"))
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":    "ok",
		"name":      ServerName,
		"version":   ServerVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
