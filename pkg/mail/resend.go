package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"os"
	"time"

	"github.com/zenpixdev/meet-task-tracker/pkg/config"
)

// ResendClient is a minimal client for the Resend email API used for task
// reminder delivery
type ResendClient struct {
	apiKey  string
	baseURL string
	from    string
	client  *http.Client
}

// NewResendClient creates a Resend client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewResendClient(cfg *config.MailConfig) *ResendClient {
	var apiKey, base, from string
	if cfg != nil {
		apiKey = cfg.APIKey
		base = cfg.BaseURL
		from = cfg.From
	}
	if apiKey == "" {
		apiKey = os.Getenv("RESEND_API_KEY")
	}
	if base == "" {
		base = "https://api.resend.com"
	}
	if from == "" {
		from = "Meeting Action Items Tracker <support@zenpix.shop>"
	}

	return &ResendClient{
		apiKey:  apiKey,
		baseURL: base,
		from:    from,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// TaskReminder is the task card rendered into the reminder email
type TaskReminder struct {
	Task    string  `json:"task"`
	Owner   *string `json:"owner"`
	DueDate *string `json:"dueDate"`
	Done    bool    `json:"done"`
}

// sendRequest is the Resend /emails payload
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// sendResponse is the delivery receipt
type sendResponse struct {
	ID string `json:"id"`
}

// SendTaskReminder delivers one reminder email and returns the provider
// message id. Single attempt, no retry.
func (c *ResendClient) SendTaskReminder(ctx context.Context, to string, task TaskReminder) (string, error) {
	payload := sendRequest{
		From:    c.from,
		To:      []string{to},
		Subject: "Task Reminder",
		HTML:    renderReminderHTML(task),
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := c.baseURL + "/emails"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("resend returned status %d", resp.StatusCode)
	}

	var sr sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return "", err
	}
	return sr.ID, nil
}

// renderReminderHTML builds the reminder card. Field values are escaped; the
// layout mirrors the dashboard's reminder styling.
func renderReminderHTML(task TaskReminder) string {
	status := `<span style="color:#dc2626">Pending</span>`
	if task.Done {
		status = `<span style="color:#16a34a">Completed</span>`
	}

	return fmt.Sprintf(`<div style="margin:0;padding:0;background:#f4f6f8;font-family:-apple-system,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;">
  <div style="max-width:520px;margin:40px auto;padding:0 16px;">
    <div style="background:#ffffff;border-radius:16px;overflow:hidden;box-shadow:0 8px 30px rgba(0,0,0,0.08);">
      <div style="background:#0A4B3A;padding:16px 24px;color:white;">
        <h2 style="margin:0;font-size:18px;font-weight:600;">Meeting Action Items Tracker</h2>
      </div>
      <div style="padding:24px;">
        <p style="margin:0 0 16px;font-size:15px;color:#555;">You have a task reminder:</p>
        <div style="background:#f9fafb;border-radius:14px;padding:18px;border:1px solid #e6e6e6;">
          <p style="margin:0 0 10px;font-size:16px;font-weight:600;color:#111;">%s</p>
          <p style="margin:4px 0;font-size:14px;color:#444;"><strong>Owner:</strong> %s</p>
          <p style="margin:4px 0;font-size:14px;color:#444;"><strong>Due:</strong> %s</p>
          <p style="margin:4px 0;font-size:14px;">%s</p>
        </div>
        <div style="margin-top:24px;font-size:13px;color:#777;text-align:center;">
          This reminder was generated automatically from your task dashboard.
        </div>
      </div>
    </div>
    <div style="text-align:center;margin-top:16px;font-size:12px;color:#aaa;">© %d Meeting Action Items Tracker</div>
  </div>
</div>`,
		html.EscapeString(task.Task),
		html.EscapeString(orDefault(task.Owner, "Not assigned")),
		html.EscapeString(orDefault(task.DueDate, "Not specified")),
		status,
		time.Now().Year(),
	)
}

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
