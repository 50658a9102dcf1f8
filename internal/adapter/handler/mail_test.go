package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/zenpixdev/meet-task-tracker/pkg/config"
	"github.com/zenpixdev/meet-task-tracker/pkg/mail"
)

func newMailController(t *testing.T, handlerFn http.HandlerFunc) *MailController {
	t.Helper()
	ts := httptest.NewServer(handlerFn)
	t.Cleanup(ts.Close)
	sender := mail.NewResendClient(&config.MailConfig{
		APIKey:  "test-key",
		BaseURL: ts.URL,
		From:    "Tracker <noreply@example.com>",
	})
	return NewMailController(sender, zap.NewNop())
}

func TestSendTaskReminder_ReturnsProviderID(t *testing.T) {
	e := newTestEcho()
	var gotTo []string
	mc := newMailController(t, func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			To []string `json:"to"`
		}
		json.NewDecoder(r.Body).Decode(&payload)
		gotTo = payload.To
		w.Write([]byte(`{"id": "email-123"}`))
	})

	rec := doJSON(e, mc.SendTaskReminder, http.MethodPost, "/api/send-email",
		`{"email": "ana@example.com", "task": {"task": "Ship v1", "done": false}}`, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["id"] != "email-123" {
		t.Fatalf("expected provider id, got %v", body)
	}
	if len(gotTo) != 1 || gotTo[0] != "ana@example.com" {
		t.Fatalf("unexpected recipients: %v", gotTo)
	}
}

func TestSendTaskReminder_InvalidEmailReturns400(t *testing.T) {
	e := newTestEcho()
	mc := newMailController(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("provider must not be called for invalid email")
	})

	for _, email := range []string{"", "nope", "a@b", "has space@example.com"} {
		rec := doJSON(e, mc.SendTaskReminder, http.MethodPost, "/api/send-email",
			`{"email": "`+email+`", "task": {"task": "Ship v1"}}`, nil)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("email %q: expected 400, got %d", email, rec.Code)
		}
		body := decodeBody(t, rec)
		if body["error"] != "Invalid email format" {
			t.Fatalf("email %q: unexpected error body: %v", email, body)
		}
	}
}

func TestSendTaskReminder_ProviderFailureReturns500(t *testing.T) {
	e := newTestEcho()
	mc := newMailController(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "boom"}`, http.StatusBadGateway)
	})

	rec := doJSON(e, mc.SendTaskReminder, http.MethodPost, "/api/send-email",
		`{"email": "ana@example.com", "task": {"task": "Ship v1"}}`, nil)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "resend request failed" {
		t.Fatalf("unexpected error body: %v", body)
	}
}
