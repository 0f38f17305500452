package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"web-messenger/auth"
	"web-messenger/contract"
	"web-messenger/errors"
	"web-messenger/observability"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	contentTypeJSON  = "application/json"
	contentTypePlain = "text/plain;charset=UTF-8"
	headerRequestID  = "X-Request-ID"
)

// HTTPTransport talks JSON to the messaging backend over HTTP.
type HTTPTransport struct {
	log      *slog.Logger
	client   *http.Client
	jar      http.CookieJar
	baseURL  string
	origin   string
	tokens   *auth.TokenSource
	stats    *observability.APIStats
	profiles []Profile
}

// NewHTTPTransport builds a transport on top of client.
// tokens may be nil when authentication is disabled.
func NewHTTPTransport(
	log *slog.Logger,
	client *http.Client,
	baseURL, origin string,
	tokens *auth.TokenSource,
	stats *observability.APIStats,
) (*HTTPTransport, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = observability.NewAPIStats()
	}
	return &HTTPTransport{
		log:      log,
		client:   client,
		jar:      jar,
		baseURL:  strings.TrimRight(baseURL, "/"),
		origin:   origin,
		tokens:   tokens,
		stats:    stats,
		profiles: DefaultProfiles(),
	}, nil
}

func (t *HTTPTransport) BaseURL() string {
	return t.baseURL
}

// Do tries every profile in order and returns the first successful response.
// When all of them fail, the error wraps ErrAllProfilesFailed and the error of
// the last attempt. A cancelled context ends the loop at once.
func (t *HTTPTransport) Do(ctx context.Context, request contract.Request) (contract.Response, error) {
	method := lo.Ternary(request.Method == "", http.MethodGet, request.Method)
	url := t.baseURL + request.Path
	t.stats.IncrRequests()

	var lastErr error
	for i, profile := range t.profiles {
		response, err := t.attempt(ctx, profile, method, url, request)
		if err == nil {
			t.stats.RecordSuccess(profile.Name)
			return response, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			t.stats.RecordFailure(ctxErr)
			observability.LogAPIError(t.log, method, url, ctxErr)
			return contract.Response{}, ctxErr
		}
		lastErr = err
		t.log.Warn("Request profile failed", "profile", profile.Name, "url", url, "error", err)
		if i < len(t.profiles)-1 {
			t.stats.IncrFallbacks()
		}
	}

	t.stats.RecordFailure(lastErr)
	observability.LogAPIError(t.log, method, url, lastErr)
	return contract.Response{}, fmt.Errorf("%w: %w", errors.ErrAllProfilesFailed, lastErr)
}

func (t *HTTPTransport) attempt(
	ctx context.Context,
	profile Profile,
	method, url string,
	request contract.Request,
) (contract.Response, error) {
	var body io.Reader
	if request.Body != nil {
		body = bytes.NewReader(request.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return contract.Response{}, fmt.Errorf("building request: %w", err)
	}
	if err = t.applyProfile(req, profile, request.Header); err != nil {
		return contract.Response{}, err
	}

	observability.LogAPIRequest(t.log, method, url, profile.Name, request.Body)
	resp, err := t.client.Do(req)
	if err != nil {
		return contract.Response{}, fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if profile.Credentials == CredentialsInclude {
		t.jar.SetCookies(req.URL, resp.Cookies())
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return contract.Response{}, fmt.Errorf("%w: reading response: %w", errors.ErrNetwork, err)
	}
	t.log.Debug("Response status", "status", resp.StatusCode, "profile", profile.Name)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return contract.Response{}, &errors.HTTPError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(data)),
		}
	}
	if !json.Valid(data) {
		return contract.Response{}, fmt.Errorf("%w: response is not valid JSON", errors.ErrBackend)
	}

	observability.LogAPIResponse(t.log, method, url, profile.Name, resp.StatusCode, data)
	return contract.Response{Status: resp.StatusCode, Profile: profile.Name, Body: data}, nil
}

func (t *HTTPTransport) applyProfile(req *http.Request, profile Profile, extra http.Header) error {
	req.Header.Set("Accept", contentTypeJSON)

	if profile.Mode == ModeNoCORS {
		if req.Body != nil {
			req.Header.Set("Content-Type", contentTypePlain)
		}
		return nil
	}

	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set(headerRequestID, uuid.NewString())
	if t.origin != "" {
		req.Header.Set("Origin", t.origin)
	}
	for key, values := range extra {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	if profile.Credentials == CredentialsInclude {
		token, err := t.tokens.Token()
		if err != nil {
			return err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		for _, cookie := range t.jar.Cookies(req.URL) {
			req.AddCookie(cookie)
		}
	}
	return nil
}

// Probe sends one GET to path with no profile fallback.
func (t *HTTPTransport) Probe(ctx context.Context, path string) (int, error) {
	url := t.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	if t.origin != "" {
		req.Header.Set("Origin", t.origin)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errors.ErrNetwork, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}
