package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/zenpixdev/meet-task-tracker/internal/domain/entities"
)

// TranscriptRepository defines transcript persistence operations. The
// aggregate is read and written whole: concurrent writers race with
// last-write-wins semantics on the row.
type TranscriptRepository interface {
	// Create persists a new transcript with its embedded items in one write
	Create(ctx context.Context, transcript *entities.Transcript) error

	// GetByID returns the transcript or (nil, nil) when no row matches
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Transcript, error)

	// ListRecent returns up to limit headers ordered by created_at descending
	ListRecent(ctx context.Context, limit int) ([]entities.TranscriptHeader, error)

	// Update saves the full aggregate
	Update(ctx context.Context, transcript *entities.Transcript) error
}
