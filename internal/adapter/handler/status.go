package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zenpixdev/meet-task-tracker/pkg/ai"
)

// LLMHealthChecker probes the language-model dependency
type LLMHealthChecker interface {
	HealthCheck(ctx context.Context) ai.HealthStatus
}

// BackendStatus reports the API process itself
type BackendStatus struct {
	OK bool `json:"ok"`
}

// DependencyStatus reports one dependency probe
type DependencyStatus struct {
	OK    bool   `json:"ok"`
	Ms    int64  `json:"ms"`
	Error string `json:"error,omitempty"`
}

// StatusResponse is the health document served at /api/status
type StatusResponse struct {
	OK       bool             `json:"ok"`
	Ts       string           `json:"ts"`
	Service  string           `json:"service"`
	Backend  BackendStatus    `json:"backend"`
	Database DependencyStatus `json:"database"`
	LLM      ai.HealthStatus  `json:"llm"`
}

// StatusHandler probes the service's dependencies
type StatusHandler struct {
	db     *gorm.DB
	llm    LLMHealthChecker
	logger *zap.Logger
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(db *gorm.DB, llm LLMHealthChecker, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{db: db, llm: llm, logger: logger}
}

// Status runs the database and LLM probes in parallel and reports 200 only
// when both dependencies are healthy
// @Summary      Service health
// @Tags         Status
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      503  {object}  StatusResponse
// @Router       /status [get]
func (h *StatusHandler) Status(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		wg        sync.WaitGroup
		dbStatus  DependencyStatus
		llmStatus ai.HealthStatus
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		dbStatus = h.databaseHealth(ctx)
	}()
	go func() {
		defer wg.Done()
		llmStatus = h.llm.HealthCheck(ctx)
	}()
	wg.Wait()

	resp := StatusResponse{
		OK:       dbStatus.OK && llmStatus.OK,
		Ts:       time.Now().UTC().Format(time.RFC3339),
		Service:  "meet-task-tracker",
		Backend:  BackendStatus{OK: true},
		Database: dbStatus,
		LLM:      llmStatus,
	}

	if !resp.OK && h.logger != nil {
		h.logger.Warn("health check degraded",
			zap.Bool("database_ok", dbStatus.OK),
			zap.Bool("llm_ok", llmStatus.OK),
		)
	}

	code := http.StatusOK
	if !resp.OK {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, resp)
}

func (h *StatusHandler) databaseHealth(ctx context.Context) DependencyStatus {
	start := time.Now()

	if h.db == nil {
		return DependencyStatus{OK: false, Error: "database not connected"}
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return DependencyStatus{OK: false, Ms: time.Since(start).Milliseconds(), Error: err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return DependencyStatus{OK: false, Ms: time.Since(start).Milliseconds(), Error: err.Error()}
	}
	return DependencyStatus{OK: true, Ms: time.Since(start).Milliseconds()}
}
