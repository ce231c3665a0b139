package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"drizzle/internal/log"
)

const (
	// DefaultEndpoint is the hosted relay that forwards submissions by email.
	DefaultEndpoint = "https://formspree.io/f/mdobkjqp"
	// DefaultTimeout bounds a single delivery.
	DefaultTimeout = 10 * time.Second

	maxReplyBytes = 64 << 10
)

// Reply is the relay's JSON answer.
type Reply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ResponseError reports a non-2xx relay answer. Message carries the relay's
// error text when the body had one.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("relay: status %d", e.StatusCode)
	}
	return fmt.Sprintf("relay: status %d: %s", e.StatusCode, e.Message)
}

// Relay posts submissions to a form relay endpoint.
type Relay struct {
	endpoint string
	timeout  time.Duration
	client   *http.Client
	log      *log.Logger
}

// Option customizes a Relay.
type Option func(*Relay)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Relay) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithHTTPClient swaps the HTTP client used for delivery.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Relay) {
		if c != nil {
			r.client = c
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(l *log.Logger) Option {
	return func(r *Relay) { r.log = l }
}

// NewRelay returns a Relay for endpoint, or DefaultEndpoint when empty.
func NewRelay(endpoint string, opts ...Option) *Relay {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	r := &Relay{
		endpoint: endpoint,
		timeout:  DefaultTimeout,
		client:   http.DefaultClient,
		log:      log.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Endpoint returns the target URL.
func (r *Relay) Endpoint() string { return r.endpoint }

// Send posts sub as multipart form data and decodes the relay's answer.
func (r *Relay) Send(ctx context.Context, sub Submission) (Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	body, contentType, err := encodeSubmission(sub)
	if err != nil {
		return Reply{}, fmt.Errorf("relay: encode: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, body)
	if err != nil {
		return Reply{}, fmt.Errorf("relay: build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	r.log.Debugf("relay: posting %d byte message to %s", len(sub.Message), r.endpoint)
	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Warnf("relay: post failed: %v", err)
		return Reply{}, fmt.Errorf("relay: post: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return Reply{}, fmt.Errorf("relay: read reply: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rerr := &ResponseError{StatusCode: resp.StatusCode}
		var reply Reply
		if json.Unmarshal(raw, &reply) == nil {
			rerr.Message = reply.Error
		}
		r.log.Warnf("%v", rerr)
		return Reply{}, rerr
	}

	var reply Reply
	if err := json.Unmarshal(raw, &reply); err != nil {
		r.log.Warnf("relay: malformed reply: %v", err)
		return Reply{}, fmt.Errorf("relay: decode reply: %w", err)
	}
	r.log.Debugf("relay: reply ok=%t", reply.OK)
	return reply, nil
}

func encodeSubmission(sub Submission) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField(string(FieldEmail), sub.Email); err != nil {
		return nil, "", err
	}
	if err := w.WriteField(string(FieldMessage), sub.Message); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
