// Package server wires the HTTP hosting layer around the synthesizer:
// routing, middleware, metrics, and graceful shutdown.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	api "github.com/serkac1000/AIAGENERATOR/internal/api/http"
	"github.com/serkac1000/AIAGENERATOR/internal/api/middleware"
	"github.com/serkac1000/AIAGENERATOR/internal/domain/normalize"
	"github.com/serkac1000/AIAGENERATOR/internal/domain/synth"
	"github.com/serkac1000/AIAGENERATOR/internal/infrastructure/config"
	"github.com/serkac1000/AIAGENERATOR/internal/infrastructure/logging"
	"github.com/serkac1000/AIAGENERATOR/internal/infrastructure/monitoring"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	http    *http.Server
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// New creates a server instance from configuration.
func New(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger, _ = logging.New(logging.Config{
			Level:       cfg.Logging.Level,
			OutputPaths: []string{"stdout"},
		})
		if logger == nil {
			logger = logging.NewDefault()
		}
	}

	logger.Info("initializing synthesis service",
		zap.String("port", cfg.Server.Port),
		zap.String("namespace", cfg.Synth.DefaultNamespace),
		zap.String("density", cfg.Synth.DensityMode),
	)

	metrics := monitoring.NewMetrics()

	synthesizer := synth.New(synth.Config{
		DefaultNamespace:   cfg.Synth.DefaultNamespace,
		Density:            normalize.DensityMode(cfg.Synth.DensityMode),
		MaxComponents:      cfg.Synth.MaxComponents,
		MaxNestingDepth:    cfg.Synth.MaxNestingDepth,
		MaxExpressionNodes: cfg.Synth.MaxExpressionNodes,
	}, logger)

	handlers := api.NewHandlers(synthesizer, logger, metrics)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}
	router.MaxMultipartMemory = cfg.Server.MaxBodyBytes

	router.POST("/synthesize", handlers.Synthesize)
	router.POST("/validate", handlers.Validate)
	router.GET("/capabilities", handlers.Capabilities)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &Server{
		router:  router,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}
	srv.http = &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           http.MaxBytesHandler(router, cfg.Server.MaxBodyBytes),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Duration(cfg.Server.RequestTimeout) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.RequestTimeout) * time.Second,
	}
	return srv, nil
}

// Run starts serving; it blocks until the listener stops.
func (s *Server) Run() error {
	s.logger.Info("listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts the server down gracefully.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := s.http.Shutdown(ctx)
	_ = s.logger.Sync()
	return err
}
