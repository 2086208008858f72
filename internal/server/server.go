// Package server exposes the pipeline over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/bft-labs/wireletter/internal/app"
	"github.com/bft-labs/wireletter/pkg/log"
)

// MaxBodyBytes caps the size of a submission.
const MaxBodyBytes = 1 << 20

// Processor runs one submission end to end.
type Processor interface {
	Process(ctx context.Context, record map[string]any) (app.Receipt, error)
}

// Server is the wire-transfer HTTP boundary.
type Server struct {
	processor Processor
	logger    log.Logger
	router    *gin.Engine
}

// New creates a Server with its routes registered.
func New(processor Processor, logger log.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	binding.EnableDecoderUseNumber = true
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		processor: processor,
		logger:    logger,
		router:    router,
	}
	router.Use(s.requestLogger())

	router.GET("/healthz", s.handleHealth)
	api := router.Group("/api")
	{
		api.POST("/wire-transfers", s.handleSubmit)
	}
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", log.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.Int("status", c.Writer.Status()),
			log.Duration("took", time.Since(start)),
		)
	}
}
