// Package server exposes the GraphQL schema over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hmans/boards/internal/graph"
)

// Server routes HTTP requests to the GraphQL schema.
type Server struct {
	engine  *gin.Engine
	schema  *graph.Schema
	metrics *Metrics
	log     *zap.Logger
}

// New builds the router:
//   - POST /graphql executes GraphQL requests
//   - GET /graphql serves the GraphQL Playground
//   - GET /metrics exposes the collectors registered on reg
//   - GET /healthz reports liveness
func New(schema *graph.Schema, log *zap.Logger, reg *prometheus.Registry) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		engine:  gin.New(),
		schema:  schema,
		metrics: NewMetrics(reg),
		log:     log,
	}

	s.engine.Use(gin.Recovery(), requestLogger(log))

	s.engine.POST("/graphql", s.handleGraphQL)
	s.engine.GET("/graphql", gin.WrapH(playground.Handler("Boards GraphQL", "/graphql")))
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return s
}

// Handler returns the router as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleGraphQL(c *gin.Context) {
	var req graph.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeRequestError(c, "invalid request body: "+err.Error())
		return
	}
	if req.Query == "" {
		writeRequestError(c, "no query provided")
		return
	}

	operation := graph.OperationType(req.Query, req.OperationName)

	start := time.Now()
	resp := s.schema.Exec(c.Request.Context(), req)
	s.metrics.observe(operation, len(resp.Errors) > 0, time.Since(start))

	if len(resp.Errors) > 0 {
		s.log.Debug("graphql errors",
			zap.String("operation", operation),
			zap.Int("count", len(resp.Errors)),
			zap.String("first", resp.Errors[0].Message),
		)
	}

	c.JSON(http.StatusOK, resp)
}

// writeRequestError rejects a request that never reached the executor.
func writeRequestError(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"errors": []gin.H{{"message": msg}},
	})
}

// requestLogger logs one line per request through zap.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
