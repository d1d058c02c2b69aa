// Package api is the typed REST client for the training platform backend.
// Responses arrive wrapped in a {"data": ...} envelope; the client unwraps
// them and returns domain types from internal/practice.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"practicedesk/internal/jsonutil"
	"practicedesk/internal/practice"
)

// DefaultTimeout bounds every request. Callers that need longer pass their
// own context deadline.
const DefaultTimeout = 10 * time.Second

// Client calls the platform REST API.
type Client struct {
	baseURL string
	token   string
	session string // per-process session id, attached to every request
	http    *http.Client
	tracer  oteltrace.Tracer
	log     *zap.Logger
}

// NewClient creates a client for the API at baseURL. token is the bearer
// token of the authenticated viewer.
func NewClient(baseURL, token string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		session: uuid.NewString(),
		http:    &http.Client{Timeout: DefaultTimeout},
		tracer:  otel.Tracer("practicedesk/api"),
		log:     log,
	}
}

// SessionID returns the per-process session id sent with every request.
func (c *Client) SessionID() string { return c.session }

// CurrentState fetches the bootstrap snapshot for the viewer.
func (c *Client) CurrentState(ctx context.Context) (practice.CurrentState, error) {
	var state practice.CurrentState
	err := c.get(ctx, "current-practice-state", "/current-practice-state", &state)
	return state, err
}

// Practice fetches full detail for one practice by id.
func (c *Client) Practice(ctx context.Context, id int) (practice.Practice, error) {
	var p practice.Practice
	err := c.get(ctx, "practice-detail", fmt.Sprintf("/practice/%d", id), &p)
	return p, err
}

// Practices fetches the viewer's practice card list.
func (c *Client) Practices(ctx context.Context) ([]practice.Practice, error) {
	var cards []practice.Practice
	err := c.get(ctx, "practice-cards", "/practice", &cards)
	return cards, err
}

// FinishPractice marks a practice finished. Moderator action.
func (c *Client) FinishPractice(ctx context.Context, id int) error {
	return c.post(ctx, "practice-finish", fmt.Sprintf("/practice/%d/finish", id), nil)
}

// SubmitRecording attaches a recording link to a finished practice.
func (c *Client) SubmitRecording(ctx context.Context, id int, recordingURL string) error {
	body := map[string]string{"url": recordingURL}
	return c.post(ctx, "practice-recording", fmt.Sprintf("/practice/%d/recording", id), body)
}

func (c *Client) get(ctx context.Context, op, path string, out interface{}) error {
	body, err := c.do(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := jsonutil.UnmarshalEnvelope(body, out, op); err != nil {
		return &Error{Kind: KindDecode, Op: op, Err: err}
	}
	return nil
}

func (c *Client) post(ctx context.Context, op, path string, payload interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return &Error{Kind: KindDecode, Op: op, Err: err}
		}
		body = bytes.NewReader(data)
	}
	_, err := c.do(ctx, op, http.MethodPost, path, body)
	return err
}

// do runs one request and returns the raw response body. Every call gets a
// span named after the logical operation.
func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, op,
		oteltrace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.path", path),
		))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &Error{Kind: KindUnavailable, Op: op, Err: err}
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("X-Session-ID", c.session)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, &Error{Kind: KindUnavailable, Op: op, Err: err}
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Kind: KindStatus, Op: op, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindUnavailable, Op: op, Err: err}
	}
	return data, nil
}
