package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/zenpixdev/meet-task-tracker/errors"
	dto "github.com/zenpixdev/meet-task-tracker/internal/adapter/dto/transcript"
	"github.com/zenpixdev/meet-task-tracker/internal/adapter/presenter"
	transcriptuse "github.com/zenpixdev/meet-task-tracker/internal/usecase/transcript"
)

// TranscriptController handles the transcript and action-item endpoints
type TranscriptController struct {
	svc    transcriptuse.Service
	logger *zap.Logger
}

// NewTranscriptController creates a new transcript controller
func NewTranscriptController(svc transcriptuse.Service, logger *zap.Logger) *TranscriptController {
	return &TranscriptController{svc: svc, logger: logger}
}

// Extract extracts action items from a transcript and saves the aggregate
// @Summary      Extract action items
// @Description  Runs LLM extraction on the pasted transcript and persists the result
// @Tags         Transcript
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ExtractRequest  true  "Raw transcript text"
// @Success      200      {object}  dto.ExtractResponse
// @Failure      400      {object}  common.ErrorResponse  "Transcript missing"
// @Router       /transcript/extract [post]
func (tc *TranscriptController) Extract(c echo.Context) error {
	var req dto.ExtractRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(tc.logger, c, apperrors.ErrInvalidPayload())
	}

	t, err := tc.svc.Extract(c.Request().Context(), req.Transcript)
	if err != nil {
		return HandleError(tc.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToExtractResponse(t))
}

// Recent lists the most recently created transcripts, headers only
// @Summary      Recent transcripts
// @Tags         Transcript
// @Produce      json
// @Param        limit  query     int  false  "Maximum rows (default 5)"
// @Success      200    {array}   dto.TranscriptHeaderResponse
// @Router       /transcript/recent [get]
func (tc *TranscriptController) Recent(c echo.Context) error {
	// Unusable limit values fall back to the service default.
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		limit = 0
	}

	headers, err := tc.svc.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return HandleError(tc.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToHeaderListResponse(headers))
}

// GetOne fetches a single transcript with its full item list
// @Summary      Get transcript
// @Tags         Transcript
// @Produce      json
// @Param        id   path      string  true  "Transcript ID"
// @Success      200  {object}  dto.TranscriptResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /transcript/{id} [get]
func (tc *TranscriptController) GetOne(c echo.Context) error {
	t, err := tc.svc.GetTranscript(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(tc.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToTranscriptResponse(t))
}

// AddTask appends a new action item to a transcript
// @Summary      Add action item
// @Tags         Transcript
// @Accept       json
// @Produce      json
// @Param        request  body      dto.AddTaskRequest  true  "New item"
// @Success      201      {object}  dto.TranscriptResponse
// @Failure      400      {object}  common.ErrorResponse  "Invalid id or task"
// @Failure      404      {object}  common.ErrorResponse  "Transcript missing"
// @Router       /transcript/add-task [post]
func (tc *TranscriptController) AddTask(c echo.Context) error {
	var req dto.AddTaskRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(tc.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(tc.logger, c, apperrors.ErrValidation(err.Error()))
	}

	t, err := tc.svc.AddItem(c.Request().Context(), transcriptuse.AddItemInput{
		TranscriptID: req.TranscriptID,
		Task:         req.Task,
		Owner:        req.Owner,
		DueDate:      req.DueDate,
	})
	if err != nil {
		return HandleError(tc.logger, c, err)
	}
	return c.JSON(http.StatusCreated, presenter.ToTranscriptResponse(t))
}

// EditTask applies a partial update to one action item
// @Summary      Edit action item
// @Tags         Transcript
// @Accept       json
// @Produce      json
// @Param        request  body      dto.EditTaskRequest  true  "Fields to change"
// @Success      200      {object}  dto.TranscriptResponse
// @Failure      400      {object}  common.ErrorResponse  "Invalid id or field"
// @Failure      404      {object}  common.ErrorResponse  "Transcript or item missing"
// @Router       /transcript/edit [patch]
func (tc *TranscriptController) EditTask(c echo.Context) error {
	var req dto.EditTaskRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(tc.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(tc.logger, c, apperrors.ErrValidation(err.Error()))
	}

	t, err := tc.svc.EditItem(c.Request().Context(), transcriptuse.EditItemInput{
		TranscriptID: req.TranscriptID,
		ActionItemID: req.ActionItemID,
		Patch: transcriptuse.ItemPatch{
			Task:    req.Task,
			Owner:   req.Owner,
			DueDate: req.DueDate,
			Done:    req.Done,
		},
	})
	if err != nil {
		return HandleError(tc.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToTranscriptResponse(t))
}

// DeleteTask removes one action item from a transcript
// @Summary      Delete action item
// @Tags         Transcript
// @Accept       json
// @Produce      json
// @Param        request  body      dto.DeleteTaskRequest  true  "Item address"
// @Success      200      {object}  dto.TranscriptResponse
// @Failure      400      {object}  common.ErrorResponse  "Invalid ids"
// @Failure      404      {object}  common.ErrorResponse  "Transcript or item missing"
// @Router       /transcript/delete [delete]
func (tc *TranscriptController) DeleteTask(c echo.Context) error {
	var req dto.DeleteTaskRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(tc.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(tc.logger, c, apperrors.ErrValidation(err.Error()))
	}

	t, err := tc.svc.DeleteItem(c.Request().Context(), req.TranscriptID, req.ActionItemID)
	if err != nil {
		return HandleError(tc.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToTranscriptResponse(t))
}
