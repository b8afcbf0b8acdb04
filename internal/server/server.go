// Package server exposes the compiled endpoint table over HTTP.
package server

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gorilla/mux"

	"openapi-stub-server/internal/config"
	"openapi-stub-server/internal/stub"
)

// Server holds the immutable state shared by all request handlers: the
// endpoint table compiled at startup and the loaded specification
// document. Neither is mutated after construction, so handlers read
// them concurrently without locking.
type Server struct {
	cfg   config.ServerConfig
	table stub.Table
	doc   *openapi3.T
}

// New creates a server around a compiled endpoint table and its source
// document.
func New(cfg config.ServerConfig, table stub.Table, doc *openapi3.T) *Server {
	return &Server{
		cfg:   cfg,
		table: table,
		doc:   doc,
	}
}

// Addr returns the host:port the server should listen on.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
}

// Router builds the HTTP router: the fixed introspection surfaces
// first, then the stub dispatcher as catch-all. Requests under /api are
// dispatched with the prefix stripped, so the docs UI can exercise the
// stubs without colliding with the fixed routes.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(requestLogger, corsMiddleware)

	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.HandleFunc("/endpoints", s.handleListEndpoints).Methods("GET")
	router.HandleFunc("/openapi.json", s.handleSpec).Methods("GET")
	router.HandleFunc("/docs", s.handleDocs).Methods("GET")

	router.PathPrefix("/api/").HandlerFunc(s.handleAPIRedirect)
	router.PathPrefix("/").HandlerFunc(s.handleStub)

	return router
}
