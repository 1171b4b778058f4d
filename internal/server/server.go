// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the document analyzer over HTTP. Uploads are written
// to a scratch directory under a random name, analyzed, and removed before
// the response is sent; nothing persists across requests.
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/analyze"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/pkg/types"
)

// Server wires the analyzer to HTTP routes.
type Server struct {
	analyzer *analyze.Analyzer
	cfg      types.ServerConfig
}

// New returns a Server serving the given analyzer under cfg.
func New(analyzer *analyze.Analyzer, cfg types.ServerConfig) *Server {
	return &Server{analyzer: analyzer, cfg: cfg}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()
	router.MaxMultipartMemory = s.cfg.MaxUploadBytes()

	router.GET("/health", s.handleHealth)
	router.POST("/upload", s.handleUpload)
	router.POST("/search", s.handleSearch)

	return router
}

// Run starts the HTTP listener and blocks until it fails.
func (s *Server) Run() error {
	return s.Router().Run(s.cfg.Addr())
}
