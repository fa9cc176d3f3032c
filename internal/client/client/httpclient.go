package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/momentum/internal/client/models"
	"github.com/dmitrijs2005/momentum/internal/common"
	"github.com/dmitrijs2005/momentum/internal/logging"
	"github.com/google/uuid"
)

const (
	DefaultTimeout = 15 * time.Second

	maxErrorBody = 1 << 20
)

var ErrInvalidBaseURL = errors.New("invalid base url")

var _ Client = (*HTTPClient)(nil)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  logging.Logger
	newID   func() string

	timeout time.Duration
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client. A nil c keeps the
// default one.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

// WithTimeout sets the total per-request timeout. It is applied after all
// options have run, to a copy of the *http.Client, so a client passed to
// WithHTTPClient is never modified. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) { h.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.logger = l }
}

func newHTTPTransport() *http.Client {
	return &http.Client{
		Timeout: DefaultTimeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   5 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
			MaxIdleConns:          10,
			IdleConnTimeout:       90 * time.Second,
		},
	}
}

// NewHTTPClient builds a client rooted at baseURL (e.g.
// "http://localhost:5000/api"). tokens is consulted on every request.
func NewHTTPClient(baseURL string, tokens TokenSource, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}
	if tokens == nil {
		tokens = StaticToken("")
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    newHTTPTransport(),
		tokens:  tokens,
		logger:  logging.Discard(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = newHTTPTransport()
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c, nil
}

// authorize sets the credential header, or strips it when no credential is set.
func (c *HTTPClient) authorize(req *http.Request) {
	token := c.tokens.Token()
	if token == "" {
		req.Header.Del(common.AuthorizationHeader)
		return
	}
	req.Header.Set(common.AuthorizationHeader, common.TokenScheme+" "+token)
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeader, c.newID())
	c.authorize(req)

	return req, nil
}

// do sends one request and decodes a success body into out (if non-nil).
func (c *HTTPClient) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug(ctx, "request failed",
			"op", op, "method", method, "path", path,
			"request_id", req.Header.Get(common.RequestIDHeader), "error", err)
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "request completed",
		"op", op, "method", method, "path", path, "status", resp.StatusCode,
		"request_id", req.Header.Get(common.RequestIDHeader), "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPError{Op: op, StatusCode: resp.StatusCode, Message: extractMessage(resp.StatusCode, raw)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// extractMessage pulls a human-readable message out of an error body.
// Precedence: "message", "error", "detail", field errors, raw text, status text.
func extractMessage(status int, raw []byte) string {
	trimmed := strings.TrimSpace(string(raw))

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil && len(obj) > 0 {
		for _, key := range []string{"message", "error", "detail"} {
			var s string
			if v, ok := obj[key]; ok && json.Unmarshal(v, &s) == nil && s != "" {
				return s
			}
		}
		if msg := fieldErrors(obj); msg != "" {
			return msg
		}
	}

	if trimmed != "" {
		return trimmed
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "status " + strconv.Itoa(status)
}

// fieldErrors flattens {"field": ["msg", ...]} maps into "field: msg; ...".
func fieldErrors(obj map[string]json.RawMessage) string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		var list []string
		if err := json.Unmarshal(obj[k], &list); err == nil && len(list) > 0 {
			parts = append(parts, k+": "+strings.Join(list, ", "))
			continue
		}
		var s string
		if err := json.Unmarshal(obj[k], &s); err == nil && s != "" {
			parts = append(parts, k+": "+s)
		}
	}
	return strings.Join(parts, "; ")
}

func (c *HTTPClient) Onboard(ctx context.Context, req models.OnboardingRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, "onboard", http.MethodPost, "/onboarding/", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, "login", http.MethodPost, "/login/", nil, creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, "get profile", http.MethodGet, "/profile/", nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, "update profile", http.MethodPatch, "/profile/update/", nil, patch, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) GetDailyPlan(ctx context.Context) (*models.DailyPlan, error) {
	var plan models.DailyPlan
	if err := c.do(ctx, "get daily plan", http.MethodGet, "/daily-plan/", nil, nil, &plan); err != nil {
		return nil, err
	}
	if plan.Objectives == nil {
		plan.Objectives = []models.Objective{}
	}
	return &plan, nil
}

// ListObjectives lists objectives for date (YYYY-MM-DD); an empty date
// lets the service pick today.
func (c *HTTPClient) ListObjectives(ctx context.Context, date string) ([]models.Objective, error) {
	var query url.Values
	if date != "" {
		query = url.Values{"date": []string{date}}
	}

	objectives := []models.Objective{}
	if err := c.do(ctx, "list objectives", http.MethodGet, "/objectives/", query, nil, &objectives); err != nil {
		return nil, err
	}
	return objectives, nil
}

func (c *HTTPClient) UpdateObjective(ctx context.Context, id int64, patch models.ObjectivePatch) (*models.Objective, error) {
	var o models.Objective
	path := "/objectives/" + strconv.FormatInt(id, 10) + "/"
	if err := c.do(ctx, "update objective", http.MethodPatch, path, nil, patch, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *HTTPClient) SubmitCheckIn(ctx context.Context, checkIn models.CheckIn) (*models.CheckInRecord, error) {
	var rec models.CheckInRecord
	if err := c.do(ctx, "submit check-in", http.MethodPost, "/daily-checkin/", nil, checkIn, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *HTTPClient) GetRandomTip(ctx context.Context) (*models.Tip, error) {
	var tip models.Tip
	if err := c.do(ctx, "get random tip", http.MethodGet, "/tips/random/", nil, nil, &tip); err != nil {
		return nil, err
	}
	return &tip, nil
}

func (c *HTTPClient) GetHobbySuggestion(ctx context.Context) (*models.HobbySuggestion, error) {
	var s models.HobbySuggestion
	if err := c.do(ctx, "hobby suggestion", http.MethodGet, "/suggestions/hobby/", nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) ListHobbies(ctx context.Context) ([]models.Hobby, error) {
	hobbies := []models.Hobby{}
	if err := c.do(ctx, "list hobbies", http.MethodGet, "/hobbies/", nil, nil, &hobbies); err != nil {
		return nil, err
	}
	return hobbies, nil
}

func (c *HTTPClient) CreateHobby(ctx context.Context, hobby models.NewHobby) (*models.Hobby, error) {
	var h models.Hobby
	if err := c.do(ctx, "create hobby", http.MethodPost, "/hobbies/", nil, hobby, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *HTTPClient) GetWorkoutPlan(ctx context.Context) (*models.WorkoutPlan, error) {
	var w models.WorkoutPlan
	if err := c.do(ctx, "workout plan", http.MethodGet, "/suggestions/workout/", nil, nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}
