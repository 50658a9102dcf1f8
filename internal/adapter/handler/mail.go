package handler

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/zenpixdev/meet-task-tracker/errors"
	maildto "github.com/zenpixdev/meet-task-tracker/internal/adapter/dto/mail"
	"github.com/zenpixdev/meet-task-tracker/pkg/mail"
)

// emailPattern is the same lightweight shape check the dashboard applies
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MailController handles the task reminder endpoint
type MailController struct {
	sender *mail.ResendClient
	logger *zap.Logger
}

// NewMailController creates a new mail controller
func NewMailController(sender *mail.ResendClient, logger *zap.Logger) *MailController {
	return &MailController{sender: sender, logger: logger}
}

// SendTaskReminder mails one task card to the given address
// @Summary      Send task reminder
// @Tags         Mail
// @Accept       json
// @Produce      json
// @Param        request  body      maildto.SendMailRequest  true  "Recipient and task"
// @Success      200      {object}  maildto.SendMailResponse
// @Failure      400      {object}  common.ErrorResponse  "Invalid email format"
// @Router       /send-email [post]
func (mc *MailController) SendTaskReminder(c echo.Context) error {
	var req maildto.SendMailRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(mc.logger, c, apperrors.ErrInvalidPayload())
	}

	email := strings.TrimSpace(req.Email)
	if !emailPattern.MatchString(email) {
		return HandleError(mc.logger, c, apperrors.ErrValidation("Invalid email format"))
	}

	id, err := mc.sender.SendTaskReminder(c.Request().Context(), email, mail.TaskReminder{
		Task:    req.Task.Task,
		Owner:   req.Task.Owner,
		DueDate: req.Task.DueDate,
		Done:    req.Task.Done,
	})
	if err != nil {
		return HandleError(mc.logger, c, apperrors.ErrUpstream("resend", err))
	}

	return c.JSON(http.StatusOK, maildto.SendMailResponse{ID: id})
}
