package entities

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Field bounds carried over from the original data model
const (
	TaskMinLen  = 2
	TaskMaxLen  = 500
	OwnerMaxLen = 120
)

// dueDatePattern is the only gate applied to due dates: the literal
// YYYY-MM-DD shape. Calendar validity is intentionally not checked, so
// "2025-13-40" passes and is stored as-is.
var dueDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidDueDate reports whether s has the YYYY-MM-DD shape
func ValidDueDate(s string) bool {
	return dueDatePattern.MatchString(s)
}

// NormalizeDueDate trims s and keeps it only when it matches the shape.
// Anything else is treated as absent.
func NormalizeDueDate(s string) *string {
	s = strings.TrimSpace(s)
	if !dueDatePattern.MatchString(s) {
		return nil
	}
	return &s
}

// ActionItem is a single extracted task with optional owner and due date.
// It exists only inside its parent transcript's item list and is addressed
// by (transcript id, item id) at the service surface.
type ActionItem struct {
	ID        uuid.UUID `json:"id"`
	Task      string    `json:"task"`
	Owner     *string   `json:"owner"`
	DueDate   *string   `json:"dueDate"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewActionItem creates an item with a fresh identity and timestamps
func NewActionItem(task string, owner, dueDate *string, done bool) ActionItem {
	now := time.Now().UTC()
	return ActionItem{
		ID:        uuid.New(),
		Task:      task,
		Owner:     owner,
		DueDate:   dueDate,
		Done:      done,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Transcript is the stored aggregate: the raw meeting text plus its derived
// action items. Items live in a single jsonb column so the whole aggregate
// is written in one row, mirroring the embedded-document layout this model
// was ported from.
type Transcript struct {
	ID          uuid.UUID                       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RawText     string                          `json:"raw_text" gorm:"type:text;not null"`
	ActionItems datatypes.JSONSlice[ActionItem] `json:"action_items" gorm:"type:jsonb"`
	CreatedAt   time.Time                       `json:"created_at" gorm:"autoCreateTime;index:idx_transcripts_created_at,sort:desc"`
	UpdatedAt   time.Time                       `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Transcript) TableName() string {
	return "transcripts"
}

// NewTranscript creates a new transcript aggregate
func NewTranscript(rawText string, items []ActionItem) *Transcript {
	now := time.Now().UTC()
	if items == nil {
		items = []ActionItem{}
	}
	return &Transcript{
		ID:          uuid.New(),
		RawText:     rawText,
		ActionItems: items,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// FindItem returns a pointer into the item list, or nil when the id is not
// present. Mutations through the pointer are persisted by saving the
// aggregate.
func (t *Transcript) FindItem(id uuid.UUID) *ActionItem {
	for i := range t.ActionItems {
		if t.ActionItems[i].ID == id {
			return &t.ActionItems[i]
		}
	}
	return nil
}

// AppendItem adds an item at the end of the list without reordering
func (t *Transcript) AppendItem(item ActionItem) {
	t.ActionItems = append(t.ActionItems, item)
}

// RemoveItem removes exactly one item by id and reports whether it was present
func (t *Transcript) RemoveItem(id uuid.UUID) bool {
	for i := range t.ActionItems {
		if t.ActionItems[i].ID == id {
			t.ActionItems = append(t.ActionItems[:i], t.ActionItems[i+1:]...)
			return true
		}
	}
	return false
}

// TranscriptHeader is the header-only projection served by the recent list
type TranscriptHeader struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
