package transcript

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/zenpixdev/meet-task-tracker/errors"
	"github.com/zenpixdev/meet-task-tracker/internal/domain/entities"
	"github.com/zenpixdev/meet-task-tracker/internal/domain/repositories"
	"github.com/zenpixdev/meet-task-tracker/internal/usecase/extraction"
)

// DefaultRecentLimit is used when the recent-list caller gives no usable limit
const DefaultRecentLimit = 5

// Service defines the transcript aggregate operations
type Service interface {
	Extract(ctx context.Context, rawText string) (*entities.Transcript, error)
	GetTranscript(ctx context.Context, id string) (*entities.Transcript, error)
	ListRecent(ctx context.Context, limit int) ([]entities.TranscriptHeader, error)
	AddItem(ctx context.Context, input AddItemInput) (*entities.Transcript, error)
	EditItem(ctx context.Context, input EditItemInput) (*entities.Transcript, error)
	DeleteItem(ctx context.Context, transcriptID, itemID string) (*entities.Transcript, error)
}

// Extractor produces normalized action items from transcript text
type Extractor interface {
	Extract(ctx context.Context, transcript string) []extraction.Item
}

// AddItemInput represents input for appending an item to a transcript
type AddItemInput struct {
	TranscriptID string
	Task         string
	Owner        *string
	DueDate      *string
}

// ItemPatch carries the fields an edit may set. Nil leaves a field
// untouched; an empty owner or dueDate clears it.
type ItemPatch struct {
	Task    *string
	Owner   *string
	DueDate *string
	Done    *bool
}

// EditItemInput represents input for editing one item
type EditItemInput struct {
	TranscriptID string
	ActionItemID string
	Patch        ItemPatch
}

type service struct {
	repo      repositories.TranscriptRepository
	extractor Extractor
	logger    *zap.Logger
}

// NewService creates a new transcript service
func NewService(repo repositories.TranscriptRepository, extractor Extractor, logger *zap.Logger) Service {
	return &service{repo: repo, extractor: extractor, logger: logger}
}

// Extract runs action-item extraction on the raw text and persists the new
// aggregate with its items in a single write. The raw text is stored
// verbatim and never reprocessed.
func (s *service) Extract(ctx context.Context, rawText string) (*entities.Transcript, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, apperrors.ErrValidation("Transcript is required")
	}

	items := s.extractor.Extract(ctx, rawText)

	actionItems := make([]entities.ActionItem, 0, len(items))
	for _, it := range items {
		actionItems = append(actionItems, entities.NewActionItem(it.Task, it.Owner, it.DueDate, it.Done))
	}

	t := entities.NewTranscript(rawText, actionItems)
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, apperrors.ErrStore(err)
	}

	if s.logger != nil {
		s.logger.Info("transcript saved",
			zap.String("transcript_id", t.ID.String()),
			zap.Int("action_items", len(actionItems)),
		)
	}
	return t, nil
}

// GetTranscript fetches one aggregate. A malformed id reads as not found,
// matching the original route behavior.
func (s *service) GetTranscript(ctx context.Context, id string) (*entities.Transcript, error) {
	tid, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, apperrors.ErrNotFound("Transcript")
	}
	return s.loadTranscript(ctx, tid)
}

// ListRecent returns header rows, newest first
func (s *service) ListRecent(ctx context.Context, limit int) ([]entities.TranscriptHeader, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	headers, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, apperrors.ErrStore(err)
	}
	return headers, nil
}

// AddItem appends a new item at the end of the transcript's list
func (s *service) AddItem(ctx context.Context, input AddItemInput) (*entities.Transcript, error) {
	tid, err := uuid.Parse(strings.TrimSpace(input.TranscriptID))
	if err != nil {
		return nil, apperrors.ErrValidation("Invalid transcriptId")
	}

	task := strings.TrimSpace(input.Task)
	if len([]rune(task)) < entities.TaskMinLen {
		return nil, apperrors.ErrValidation(fmt.Sprintf("Task is required (min %d chars)", entities.TaskMinLen))
	}
	if len([]rune(task)) > entities.TaskMaxLen {
		return nil, apperrors.ErrValidation(fmt.Sprintf("Task too long (max %d chars)", entities.TaskMaxLen))
	}

	owner, err := normalizeOwner(input.Owner)
	if err != nil {
		return nil, err
	}

	// Non-matching shapes are treated as absent rather than rejected.
	var dueDate *string
	if input.DueDate != nil {
		dueDate = entities.NormalizeDueDate(*input.DueDate)
	}

	t, err := s.loadTranscript(ctx, tid)
	if err != nil {
		return nil, err
	}

	t.AppendItem(entities.NewActionItem(task, owner, dueDate, false))

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, apperrors.ErrStore(err)
	}
	return t, nil
}

// EditItem applies a partial update to one item. Untouched fields and
// sibling items are preserved.
func (s *service) EditItem(ctx context.Context, input EditItemInput) (*entities.Transcript, error) {
	tid, iid, err := parseItemAddress(input.TranscriptID, input.ActionItemID)
	if err != nil {
		return nil, err
	}

	t, err := s.loadTranscript(ctx, tid)
	if err != nil {
		return nil, err
	}

	item := t.FindItem(iid)
	if item == nil {
		return nil, apperrors.ErrNotFound("Task")
	}

	p := input.Patch

	if p.Task != nil {
		task := strings.TrimSpace(*p.Task)
		if task == "" {
			return nil, apperrors.ErrValidation("Task cannot be empty")
		}
		if len([]rune(task)) > entities.TaskMaxLen {
			return nil, apperrors.ErrValidation(fmt.Sprintf("Task too long (max %d chars)", entities.TaskMaxLen))
		}
		item.Task = task
	}

	if p.Owner != nil {
		owner, err := normalizeOwner(p.Owner)
		if err != nil {
			return nil, err
		}
		item.Owner = owner
	}

	if p.DueDate != nil {
		item.DueDate = entities.NormalizeDueDate(*p.DueDate)
	}

	if p.Done != nil {
		item.Done = *p.Done
	}

	item.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, apperrors.ErrStore(err)
	}
	return t, nil
}

// DeleteItem removes exactly one item. A repeat call reports the item as
// gone, which is the expected outcome for a client retrying blindly.
func (s *service) DeleteItem(ctx context.Context, transcriptID, itemID string) (*entities.Transcript, error) {
	tid, iid, err := parseItemAddress(transcriptID, itemID)
	if err != nil {
		return nil, err
	}

	t, err := s.loadTranscript(ctx, tid)
	if err != nil {
		return nil, err
	}

	if !t.RemoveItem(iid) {
		return nil, apperrors.ErrNotFound("Task")
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, apperrors.ErrStore(err)
	}
	return t, nil
}

func (s *service) loadTranscript(ctx context.Context, id uuid.UUID) (*entities.Transcript, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrStore(err)
	}
	if t == nil {
		return nil, apperrors.ErrNotFound("Transcript")
	}
	return t, nil
}

// parseItemAddress validates the (transcript, item) composite key
func parseItemAddress(transcriptID, itemID string) (uuid.UUID, uuid.UUID, error) {
	tid, err := uuid.Parse(strings.TrimSpace(transcriptID))
	if err != nil {
		return uuid.Nil, uuid.Nil, apperrors.ErrValidation("Invalid IDs")
	}
	iid, err := uuid.Parse(strings.TrimSpace(itemID))
	if err != nil {
		return uuid.Nil, uuid.Nil, apperrors.ErrValidation("Invalid IDs")
	}
	return tid, iid, nil
}

// normalizeOwner trims the owner and clears it when blank
func normalizeOwner(v *string) (*string, error) {
	if v == nil {
		return nil, nil
	}
	owner := strings.TrimSpace(*v)
	if owner == "" {
		return nil, nil
	}
	if len([]rune(owner)) > entities.OwnerMaxLen {
		return nil, apperrors.ErrValidation(fmt.Sprintf("Owner too long (max %d chars)", entities.OwnerMaxLen))
	}
	return &owner, nil
}
