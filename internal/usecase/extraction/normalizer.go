package extraction

import (
	"strings"

	"github.com/zenpixdev/meet-task-tracker/internal/domain/entities"
)

// Item is one validated action-item candidate produced by the normalizer
type Item struct {
	Task    string  `json:"task"`
	Owner   *string `json:"owner"`
	DueDate *string `json:"dueDate"`
	Done    bool    `json:"done"`
}

// NormalizeItems converts an untrusted model payload into a clean item list.
// The input is whatever was decoded from the response's "items" field: when
// it is not a list the result is empty, and candidates that fail validation
// are dropped whole rather than failing the batch. Input order is preserved.
// Normalizing already-normalized output is a fixed point.
func NormalizeItems(v interface{}) []Item {
	list, ok := v.([]interface{})
	if !ok {
		return []Item{}
	}

	items := make([]Item, 0, len(list))
	for _, raw := range list {
		if item, ok := normalizeItem(raw); ok {
			items = append(items, item)
		}
	}
	return items
}

// normalizeItem validates one candidate. A candidate without a non-blank
// task is rejected entirely; the other fields degrade per-field.
func normalizeItem(raw interface{}) (Item, bool) {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return Item{}, false
	}

	task, ok := nonBlankString(obj["task"])
	if !ok {
		return Item{}, false
	}

	item := Item{Task: task}

	if owner, ok := nonBlankString(obj["owner"]); ok {
		item.Owner = &owner
	}

	// Pattern gate only: a string that is not literally YYYY-MM-DD becomes
	// absent, and so does any non-string value.
	if due, ok := obj["dueDate"].(string); ok {
		item.DueDate = entities.NormalizeDueDate(due)
	}

	// Strict boolean; "yes", 1, "true" etc. all default to false.
	if done, ok := obj["done"].(bool); ok {
		item.Done = done
	}

	return item, true
}

func nonBlankString(v interface{}) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}
