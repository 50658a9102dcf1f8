package presenter

import (
	dto "github.com/zenpixdev/meet-task-tracker/internal/adapter/dto/transcript"
	"github.com/zenpixdev/meet-task-tracker/internal/domain/entities"
)

// ToActionItemResponse converts an ActionItem entity to its wire shape
func ToActionItemResponse(item entities.ActionItem) dto.ActionItemResponse {
	return dto.ActionItemResponse{
		ID:        item.ID.String(),
		Task:      item.Task,
		Owner:     item.Owner,
		DueDate:   item.DueDate,
		Done:      item.Done,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// ToTranscriptResponse converts a Transcript entity to TranscriptResponse
func ToTranscriptResponse(t *entities.Transcript) *dto.TranscriptResponse {
	if t == nil {
		return nil
	}

	items := make([]dto.ActionItemResponse, len(t.ActionItems))
	for i, item := range t.ActionItems {
		items[i] = ToActionItemResponse(item)
	}

	return &dto.TranscriptResponse{
		ID:          t.ID.String(),
		RawText:     t.RawText,
		ActionItems: items,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToExtractResponse projects only the extracted items
func ToExtractResponse(t *entities.Transcript) *dto.ExtractResponse {
	if t == nil {
		return &dto.ExtractResponse{ActionItems: []dto.ActionItemResponse{}}
	}

	items := make([]dto.ActionItemResponse, len(t.ActionItems))
	for i, item := range t.ActionItems {
		items[i] = ToActionItemResponse(item)
	}
	return &dto.ExtractResponse{ActionItems: items}
}

// ToHeaderListResponse converts recent-list headers to their wire shape
func ToHeaderListResponse(headers []entities.TranscriptHeader) []dto.TranscriptHeaderResponse {
	out := make([]dto.TranscriptHeaderResponse, len(headers))
	for i, h := range headers {
		out[i] = dto.TranscriptHeaderResponse{
			ID:        h.ID.String(),
			CreatedAt: h.CreatedAt,
		}
	}
	return out
}
