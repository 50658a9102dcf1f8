package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zenpixdev/meet-task-tracker/internal/domain/entities"
	"github.com/zenpixdev/meet-task-tracker/internal/domain/repositories"
)

// TranscriptRepository handles transcript data operations backed by GORM
type TranscriptRepository struct {
	db *gorm.DB
}

// NewTranscriptRepository creates a new transcript repository
func NewTranscriptRepository(db *gorm.DB) repositories.TranscriptRepository {
	return &TranscriptRepository{db: db}
}

// Create persists a new transcript aggregate
func (r *TranscriptRepository) Create(ctx context.Context, transcript *entities.Transcript) error {
	if transcript == nil {
		return errors.New("transcript cannot be nil")
	}
	return r.db.WithContext(ctx).Create(transcript).Error
}

// GetByID retrieves a transcript by ID
func (r *TranscriptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Transcript, error) {
	var transcript entities.Transcript
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&transcript).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transcript, nil
}

// ListRecent returns header rows ordered by creation time descending.
// The jsonb item column is never projected here.
func (r *TranscriptRepository) ListRecent(ctx context.Context, limit int) ([]entities.TranscriptHeader, error) {
	headers := make([]entities.TranscriptHeader, 0, limit)
	err := r.db.WithContext(ctx).
		Model(&entities.Transcript{}).
		Select("id", "created_at").
		Order("created_at DESC").
		Limit(limit).
		Find(&headers).Error
	if err != nil {
		return nil, err
	}
	return headers, nil
}

// Update saves the full aggregate including the embedded item list
func (r *TranscriptRepository) Update(ctx context.Context, transcript *entities.Transcript) error {
	if transcript == nil {
		return errors.New("transcript cannot be nil")
	}
	return r.db.WithContext(ctx).Save(transcript).Error
}
