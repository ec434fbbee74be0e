package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/serkac1000/AIAGENERATOR/internal/domain/archive"
	"github.com/serkac1000/AIAGENERATOR/internal/domain/blocks"
	"github.com/serkac1000/AIAGENERATOR/internal/domain/catalog"
	"github.com/serkac1000/AIAGENERATOR/internal/domain/identity"
	"github.com/serkac1000/AIAGENERATOR/internal/domain/normalize"
	"github.com/serkac1000/AIAGENERATOR/internal/domain/schema"
	"github.com/serkac1000/AIAGENERATOR/internal/domain/synth"
	"github.com/serkac1000/AIAGENERATOR/internal/infrastructure/logging"
	"github.com/serkac1000/AIAGENERATOR/internal/infrastructure/monitoring"
	"github.com/serkac1000/AIAGENERATOR/internal/shared/id"
	"github.com/serkac1000/AIAGENERATOR/internal/shared/types"
)

// Handlers carries the handler dependencies
type Handlers struct {
	synth   *synth.Synthesizer
	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// NewHandlers creates the handler set.
func NewHandlers(s *synth.Synthesizer, logger *logging.Logger, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{synth: s, logger: logger, metrics: metrics}
}

// errorReport is the structured failure body: an error class plus the
// full multi-entry violation list.
type errorReport struct {
	RequestID string             `json:"request_id"`
	Kind      string             `json:"kind"`
	Errors    []schema.Violation `json:"errors"`
}

// Synthesize converts a posted description into archive bytes.
func (h *Handlers) Synthesize(c *gin.Context) {
	reqID := id.NewRequestID()
	jobID := uuid.NewString()

	var app types.AppDescription
	if err := c.ShouldBindJSON(&app); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid app description: " + err.Error()})
		return
	}

	start := time.Now()
	result, err := h.synth.Synthesize(&app)
	took := time.Since(start)
	if err != nil {
		h.metrics.ObserveSynthesis("error", took, 0)
		h.logger.Warn("synthesis failed",
			zap.String("request_id", string(reqID)),
			zap.String("job_id", jobID),
			zap.Error(err),
		)
		status, report := classify(err)
		report.RequestID = string(reqID)
		c.JSON(status, report)
		return
	}

	h.metrics.ObserveSynthesis("ok", took, len(result.Archive))
	h.logger.Info("synthesis succeeded",
		zap.String("request_id", string(reqID)),
		zap.String("job_id", jobID),
		zap.String("filename", result.Filename),
		zap.Int("bytes", len(result.Archive)),
	)

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Header("X-Main-Screen", result.MainScreen)
	c.Data(http.StatusOK, "application/octet-stream", result.Archive)
}

// Validate dry-runs the validation and identity stages only.
func (h *Handlers) Validate(c *gin.Context) {
	reqID := id.NewRequestID()

	var app types.AppDescription
	if err := c.ShouldBindJSON(&app); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid app description: " + err.Error()})
		return
	}

	if err := h.synth.Check(&app); err != nil {
		status, report := classify(err)
		report.RequestID = string(reqID)
		c.JSON(status, report)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "request_id": string(reqID)})
}

// Capabilities lists the supported component kinds, events, actions,
// and operators from the catalog.
func (h *Handlers) Capabilities(c *gin.Context) {
	kinds := make([]gin.H, 0)
	for _, spec := range catalog.Components() {
		props := make([]string, 0, len(spec.Properties))
		for i := range spec.Properties {
			props = append(props, spec.Properties[i].Name)
		}
		kinds = append(kinds, gin.H{
			"kind":       spec.Kind,
			"container":  spec.Container,
			"properties": props,
			"events":     spec.Events,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"components": kinds,
		"actions":    []string{"SetProperty", "Navigate"},
		"operators":  catalog.Operators(),
	})
}

// Health reports liveness.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// classify maps a pipeline error onto an HTTP status and report body.
// Every stage error is deterministic for its input, so nothing here is
// retryable; assembly failures are the only internal-class errors.
func classify(err error) (int, errorReport) {
	var (
		validation *schema.ValidationError
		limit      *synth.LimitError
		ident      *identity.Error
		norm       *normalize.Error
		synthErr   *blocks.Error
		assembly   *archive.Error
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusUnprocessableEntity, errorReport{Kind: "validation", Errors: validation.Violations}
	case errors.As(err, &limit):
		return http.StatusRequestEntityTooLarge, errorReport{Kind: "limit",
			Errors: []schema.Violation{{Message: limit.Error()}}}
	case errors.As(err, &ident):
		return http.StatusUnprocessableEntity, errorReport{Kind: "identity",
			Errors: []schema.Violation{{Field: ident.Segment, Message: ident.Reason}}}
	case errors.As(err, &norm):
		return http.StatusUnprocessableEntity, errorReport{Kind: "normalization",
			Errors: []schema.Violation{{Component: norm.Component, Field: norm.Property, Message: norm.Reason}}}
	case errors.As(err, &synthErr):
		return http.StatusUnprocessableEntity, errorReport{Kind: "synthesis",
			Errors: []schema.Violation{{Screen: synthErr.Screen, Field: synthErr.Socket, Message: synthErr.Reason}}}
	case errors.As(err, &assembly):
		return http.StatusInternalServerError, errorReport{Kind: "assembly",
			Errors: []schema.Violation{{Field: assembly.Path, Message: assembly.Reason}}}
	}
	return http.StatusInternalServerError, errorReport{Kind: "internal",
		Errors: []schema.Violation{{Message: err.Error()}}}
}
