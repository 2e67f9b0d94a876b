package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/tripplanner/internal/client/models"
	"github.com/dmitrijs2005/tripplanner/internal/logging"
	"github.com/go-resty/resty/v2"
)

// RemoteTransport talks JSON over HTTP to the planner backend. Errors travel
// in the response body, so bodies are decoded whatever the status code.
// A request is tried once, with no client-side timeout.
type RemoteTransport struct {
	client *resty.Client
	tokens TokenSource
	logger logging.Logger
}

// NewRemoteTransport returns a transport for the backend at baseURL. tokens may
// be nil, in which case requests are sent without Authorization.
func NewRemoteTransport(baseURL string, tokens TokenSource, logger logging.Logger) *RemoteTransport {
	return newRemoteTransport(resty.New(), baseURL, tokens, logger)
}

// NewRemoteTransportWithClient is NewRemoteTransport over a caller supplied
// *http.Client.
func NewRemoteTransportWithClient(hc *http.Client, baseURL string, tokens TokenSource, logger logging.Logger) *RemoteTransport {
	return newRemoteTransport(resty.NewWithClient(hc), baseURL, tokens, logger)
}

func newRemoteTransport(c *resty.Client, baseURL string, tokens TokenSource, logger logging.Logger) *RemoteTransport {
	if logger == nil {
		logger = logging.Nop()
	}
	logger = logger.With("transport", "remote")

	c.SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{logger})

	return &RemoteTransport{client: c, tokens: tokens, logger: logger}
}

func (t *RemoteTransport) Name() string { return "remote" }

func (t *RemoteTransport) Register(ctx context.Context, email, password string) (models.AuthResult, error) {
	return t.auth(ctx, PathRegister, email, password)
}

func (t *RemoteTransport) Login(ctx context.Context, email, password string) (models.AuthResult, error) {
	return t.auth(ctx, PathLogin, email, password)
}

func (t *RemoteTransport) auth(ctx context.Context, path, email, password string) (models.AuthResult, error) {
	body, err := t.post(ctx, path, credentials{Email: email, Password: password})
	if err != nil {
		return models.AuthResult{}, err
	}

	var res models.AuthResult
	if err := json.Unmarshal(body, &res); err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %s: %w", ErrMalformedResponse, path, err)
	}
	if res.Token == "" && res.Error == "" {
		return models.AuthResult{}, fmt.Errorf("%w: %s: neither token nor error", ErrMalformedResponse, path)
	}
	return res, nil
}

// Generate returns the "itinerary" field of the response: a string as is,
// any other non-empty value as its compact JSON. When the field is missing,
// null, false, zero or "", the whole response is handed back as compact JSON.
func (t *RemoteTransport) Generate(ctx context.Context, req models.ItineraryRequest) (string, error) {
	body, err := t.post(ctx, PathGenerate, req)
	if err != nil {
		return "", err
	}
	if !json.Valid(body) {
		return "", fmt.Errorf("%w: %s: invalid JSON", ErrMalformedResponse, PathGenerate)
	}

	var res struct {
		Itinerary json.RawMessage `json:"itinerary"`
	}
	if json.Unmarshal(body, &res) == nil && !emptyJSONValue(res.Itinerary) {
		var text string
		if json.Unmarshal(res.Itinerary, &text) == nil {
			return text, nil
		}
		body = res.Itinerary
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrMalformedResponse, PathGenerate, err)
	}
	return buf.String(), nil
}

// emptyJSONValue reports whether raw is absent, null, false, zero or "".
func emptyJSONValue(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")), bytes.Equal(raw, []byte("false")):
		return true
	case raw[0] == '"':
		var s string
		return json.Unmarshal(raw, &s) == nil && s == ""
	case raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9'):
		f, err := strconv.ParseFloat(string(raw), 64)
		return err == nil && f == 0
	}
	return false
}

// Ping checks that the backend answers at all.
func (t *RemoteTransport) Ping(ctx context.Context) error {
	resp, err := t.client.R().SetContext(ctx).Get(PathPing)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: ping: %s", ErrUnavailable, resp.Status())
	}
	return nil
}

func (t *RemoteTransport) post(ctx context.Context, path string, payload any) ([]byte, error) {
	r := t.client.R().SetContext(ctx).SetBody(payload)
	if t.tokens != nil {
		if token, ok := t.tokens.Token(ctx); ok {
			r.SetAuthToken(token)
		}
	}

	resp, err := r.Post(path)
	if err != nil {
		return nil, fmt.Errorf("%w: POST %s: %w", ErrUnavailable, path, err)
	}

	t.logger.Debug(ctx, "backend responded", "path", path, "status", resp.StatusCode(), "duration", resp.Time())
	return resp.Body(), nil
}
