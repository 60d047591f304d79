package fixuclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/7innovations/fixu/pkg/questionbank"
)

// PredictionResult is the outcome of one diagnosis submission.
type PredictionResult struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
	Probability float64 `json:"probability"`
	Feedback    string  `json:"feedback"`
	CreatedAt   string  `json:"createdAt"`
}

// HistoryRecord is one past diagnosis as the backend reports it.
type HistoryRecord struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
	Probability float64 `json:"probability"`
	Feedback    string  `json:"feedback"`
	CreatedAt   string  `json:"createdAt"`
}

type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// NotePatch updates only its non-nil fields.
type NotePatch struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

type Quote struct {
	Image string `json:"image"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*Session, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var sess Session
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &sess, false); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	var sess Session
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &sess, false); err != nil {
		return nil, err
	}
	return &sess, nil
}

// SubmitDiagnosis sends a collected submission to its category's
// prediction endpoint. The route is picked from the submission's
// category, so a Student submission can never reach the professional
// endpoint or vice versa.
func (c *Client) SubmitDiagnosis(ctx context.Context, sub questionbank.Submission) (*PredictionResult, error) {
	var path string
	switch sub.Category {
	case questionbank.CategoryProfessional:
		path = "/predict/professional/result"
	case questionbank.CategoryStudent:
		path = "/predict/student/result"
	default:
		return nil, fmt.Errorf("unknown category %q", sub.Category)
	}
	var out PredictionResult
	if err := c.doEnveloped(ctx, http.MethodPost, path, sub, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) History(ctx context.Context) ([]HistoryRecord, error) {
	var out []HistoryRecord
	if err := c.doEnveloped(ctx, http.MethodGet, "/history", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Notes(ctx context.Context) ([]Note, error) {
	var out []Note
	if err := c.doEnveloped(ctx, http.MethodGet, "/notes", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddNote(ctx context.Context, title, content string) (*Note, error) {
	body := map[string]string{"title": title, "content": content}
	var out Note
	if err := c.doEnveloped(ctx, http.MethodPost, "/notes/add", body, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateNote(ctx context.Context, id string, patch NotePatch) (*Note, error) {
	var out Note
	if err := c.doEnveloped(ctx, http.MethodPatch, "/notes/update/"+id, patch, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.doEnveloped(ctx, http.MethodDelete, "/notes/"+id, nil, nil, true)
}

func (c *Client) Quote(ctx context.Context) (*Quote, error) {
	var out Quote
	if err := c.doEnveloped(ctx, http.MethodGet, "/quotes/quotes", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}
