package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studyflow/internal/adapters/api"
	"studyflow/internal/domain"
	"studyflow/internal/logging"
	"studyflow/internal/ports"
)

// UnknownSessionMinutes is the duration assumed when scoring a reflection
// whose session was never uploaded
const UnknownSessionMinutes = 10

// Handler serves the StudyFlow upload API on top of a record store
type Handler struct {
	store ports.RecordStore
}

// NewHandler creates a Handler
func NewHandler(store ports.RecordStore) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes attaches all HTTP routes to the router
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	routes := router.Group("/api")
	routes.GET("/health", h.health)
	routes.POST("/sessions", h.uploadSession)
	routes.POST("/reflections", h.uploadReflection)
	routes.POST("/reflections/score", h.scoreReflection)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) uploadSession(c *gin.Context) {
	var req api.SessionUpload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.Session.ID == "" || req.Session.StartedAt.IsZero() {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "session id and started_at are required"})
		return
	}

	reflections := make([]domain.Reflection, 0, len(req.Reflections))
	for _, p := range req.Reflections {
		r, err := p.Domain()
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		if r.SessionID != req.Session.ID {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "reflection belongs to another session"})
			return
		}
		reflections = append(reflections, r)
	}

	// The server's copy is the acknowledged one
	session := req.Session.Domain()
	session.Synced = true

	ctx := c.Request.Context()
	if err := h.store.SaveSession(ctx, session); err != nil {
		h.storageFailure(c, "save session", err)
		return
	}
	for _, r := range reflections {
		if err := h.store.SaveReflection(ctx, r); err != nil {
			h.storageFailure(c, "save reflection", err)
			return
		}
	}

	logging.Logger.Info("Session received",
		"id", session.ID,
		"ended", !session.IsRunning(),
		"reflections", len(reflections))
	c.JSON(http.StatusOK, api.Ack{OK: true})
}

func (h *Handler) uploadReflection(c *gin.Context) {
	r, ok := bindReflection(c)
	if !ok {
		return
	}
	if err := h.store.SaveReflection(c.Request.Context(), r); err != nil {
		h.storageFailure(c, "save reflection", err)
		return
	}

	logging.Logger.Info("Reflection received", "id", r.ID, "session_id", r.SessionID)
	c.JSON(http.StatusOK, api.Ack{OK: true})
}

func (h *Handler) scoreReflection(c *gin.Context) {
	r, ok := bindReflection(c)
	if !ok {
		return
	}

	var score float64
	session, err := h.store.GetSession(c.Request.Context(), r.SessionID)
	switch {
	case err == nil:
		score = domain.ScoreForSession(r, *session)
	case errors.Is(err, domain.ErrSessionNotFound):
		score = domain.CalculateEfficiency(r.Completion, r.Difficulty, UnknownSessionMinutes)
	default:
		h.storageFailure(c, "get session", err)
		return
	}

	logging.Logger.Debug("Reflection scored", "id", r.ID, "score", score)
	c.JSON(http.StatusOK, api.ScoreResponse{Score: score})
}

func bindReflection(c *gin.Context) (domain.Reflection, bool) {
	var req api.ReflectionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		return domain.Reflection{}, false
	}
	r, err := req.Domain()
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return domain.Reflection{}, false
	}
	return r, true
}

func (h *Handler) storageFailure(c *gin.Context, op string, err error) {
	logging.Logger.Error("Remote store failure", "op", op, "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "storage failure"})
}

// requestLogger logs each request through the package logger
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.Logger.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client", c.ClientIP())
	}
}
