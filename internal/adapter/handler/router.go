package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zenpixdev/meet-task-tracker/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg        *config.Config
	transcript *TranscriptController
	mailer     *MailController
	status     *StatusHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, transcript *TranscriptController, mailer *MailController, status *StatusHandler) *Router {
	return &Router{
		cfg:        cfg,
		transcript: transcript,
		mailer:     mailer,
		status:     status,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Liveness endpoint for load balancers; /api/status is the full probe
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")
	api.GET("/status", rt.status.Status)
	api.POST("/send-email", rt.mailer.SendTaskReminder)

	rt.setupTranscriptRoutes(api)
}

// setupTranscriptRoutes configures the transcript CRUD/extract routes
func (rt *Router) setupTranscriptRoutes(g *echo.Group) {
	t := g.Group("/transcript")

	t.POST("/extract", rt.transcript.Extract)
	t.GET("/recent", rt.transcript.Recent)
	t.POST("/add-task", rt.transcript.AddTask)
	t.PATCH("/edit", rt.transcript.EditTask)
	t.DELETE("/delete", rt.transcript.DeleteTask)
	t.GET("/:id", rt.transcript.GetOne)
}

// healthCheck returns process liveness only
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
