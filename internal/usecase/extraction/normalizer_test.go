package extraction

import (
	"encoding/json"
	"reflect"
	"testing"
)

// decodeJSON mimics what the extractor hands the normalizer: a freshly
// decoded, untyped payload.
func decodeJSON(t *testing.T, raw string) interface{} {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("invalid fixture: %v", err)
	}
	return v
}

func TestNormalizeItems_NonListInput(t *testing.T) {
	inputs := []interface{}{
		nil,
		"not a list",
		42.0,
		true,
		map[string]interface{}{"task": "hidden in an object"},
	}

	for _, in := range inputs {
		got := NormalizeItems(in)
		if got == nil {
			t.Fatalf("expected empty list for %v, got nil", in)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty list for %v, got %v", in, got)
		}
	}
}

func TestNormalizeItems_DropsCandidatesWithoutTask(t *testing.T) {
	payload := decodeJSON(t, `[
		{"owner": "Ana"},
		{"task": ""},
		{"task": "   "},
		{"task": 42},
		{"task": null},
		"not an object"
	]`)

	got := NormalizeItems(payload)
	if len(got) != 0 {
		t.Fatalf("expected all candidates dropped, got %v", got)
	}
}

func TestNormalizeItems_OwnerNormalization(t *testing.T) {
	payload := decodeJSON(t, `[
		{"task": "a", "owner": "  Ana  "},
		{"task": "b", "owner": ""},
		{"task": "c", "owner": 7},
		{"task": "d"}
	]`)

	got := NormalizeItems(payload)
	if len(got) != 4 {
		t.Fatalf("expected 4 items, got %d", len(got))
	}
	if got[0].Owner == nil || *got[0].Owner != "Ana" {
		t.Fatalf("expected trimmed owner Ana, got %v", got[0].Owner)
	}
	for i := 1; i < 4; i++ {
		if got[i].Owner != nil {
			t.Fatalf("item %d: expected absent owner, got %q", i, *got[i].Owner)
		}
	}
}

func TestNormalizeItems_DueDatePatternGate(t *testing.T) {
	cases := []struct {
		raw  string
		want *string
	}{
		{`{"task": "x", "dueDate": "2025-03-14"}`, strPtr("2025-03-14")},
		// Pattern only: a calendar-impossible date still passes the gate.
		{`{"task": "x", "dueDate": "2025-13-40"}`, strPtr("2025-13-40")},
		{`{"task": "x", "dueDate": "14/03/2025"}`, nil},
		{`{"task": "x", "dueDate": "2025-3-4"}`, nil},
		{`{"task": "x", "dueDate": "March 14, 2025"}`, nil},
		{`{"task": "x", "dueDate": 20250314}`, nil},
		{`{"task": "x", "dueDate": true}`, nil},
		{`{"task": "x", "dueDate": null}`, nil},
		{`{"task": "x"}`, nil},
	}

	for _, tc := range cases {
		got := NormalizeItems(decodeJSON(t, "["+tc.raw+"]"))
		if len(got) != 1 {
			t.Fatalf("%s: expected 1 item, got %d", tc.raw, len(got))
		}
		if !equalStrPtr(got[0].DueDate, tc.want) {
			t.Fatalf("%s: dueDate mismatch, got %v want %v", tc.raw, got[0].DueDate, tc.want)
		}
	}
}

func TestNormalizeItems_DoneStrictBoolean(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{`{"task": "x", "done": true}`, true},
		{`{"task": "x", "done": false}`, false},
		{`{"task": "x", "done": "yes"}`, false},
		{`{"task": "x", "done": "true"}`, false},
		{`{"task": "x", "done": 1}`, false},
		{`{"task": "x", "done": null}`, false},
		{`{"task": "x"}`, false},
	}

	for _, tc := range cases {
		got := NormalizeItems(decodeJSON(t, "["+tc.raw+"]"))
		if len(got) != 1 {
			t.Fatalf("%s: expected 1 item, got %d", tc.raw, len(got))
		}
		if got[0].Done != tc.want {
			t.Fatalf("%s: done mismatch, got %v want %v", tc.raw, got[0].Done, tc.want)
		}
	}
}

func TestNormalizeItems_ShipV1Scenario(t *testing.T) {
	payload := decodeJSON(t, `[
		{"task": "  Ship v1  ", "owner": "", "dueDate": "2025-13-40", "done": "yes"}
	]`)

	got := NormalizeItems(payload)
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
	item := got[0]
	if item.Task != "Ship v1" {
		t.Fatalf("expected trimmed task, got %q", item.Task)
	}
	if item.Owner != nil {
		t.Fatalf("expected absent owner, got %q", *item.Owner)
	}
	// Pattern-match is the only due-date gate.
	if item.DueDate == nil || *item.DueDate != "2025-13-40" {
		t.Fatalf("expected dueDate kept as-is, got %v", item.DueDate)
	}
	if item.Done {
		t.Fatalf("expected done=false for non-boolean input")
	}
}

func TestNormalizeItems_PreservesOrderDropsInvalid(t *testing.T) {
	payload := decodeJSON(t, `[
		{"task": "first"},
		{"owner": "no task here"},
		{"task": "second", "done": true},
		{"task": "  "},
		{"task": "third", "dueDate": "2026-01-02"}
	]`)

	got := NormalizeItems(payload)
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	wantTasks := []string{"first", "second", "third"}
	for i, want := range wantTasks {
		if got[i].Task != want {
			t.Fatalf("position %d: got %q want %q", i, got[i].Task, want)
		}
	}
}

func TestNormalizeItems_RoundTripIsIdempotent(t *testing.T) {
	payload := decodeJSON(t, `[
		{"task": " Ship v1 ", "owner": "Ana", "dueDate": "2025-03-14", "done": true},
		{"task": "Write release notes", "owner": null, "dueDate": "tomorrow", "done": "nope"}
	]`)

	first := NormalizeItems(payload)

	b, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var again interface{}
	if err := json.Unmarshal(b, &again); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	second := NormalizeItems(again)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-normalizing changed the output:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func strPtr(s string) *string { return &s }

func equalStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
