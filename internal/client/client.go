// Package client contains thin typed HTTP clients for the backend
// microservices the gateway orchestrates: user, movie, showtime, seat,
// booking and payment.  Every business rule lives behind these services;
// the clients only move JSON and translate non-2xx responses into typed
// errors.  All calls share a single timeout and there is no retry
// anywhere: a failed call is terminal for the current attempt and the
// user has to act again.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every backend call.  After it elapses the call
// fails and surfaces as a normal failure branch of whatever step issued
// it.
const DefaultTimeout = 10 * time.Second

// APIError is returned for any response outside the 2xx range.  The
// message is extracted from the common error envelopes the backends use
// ("error", "message" or "details"); when none is present the HTTP
// status text is used.
type APIError struct {
	StatusCode int    // HTTP status of the failed response
	Message    string // best-effort human readable reason
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// base is the shared plumbing embedded by each service client.
type base struct {
	url string       // normalized base URL without trailing slash
	hc  *http.Client // shared transport with DefaultTimeout
}

// newBase trims trailing slashes off the base URL so joined paths never
// produce "//", which some backends route as 404.
func newBase(rawURL string, hc *http.Client) base {
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}
	return base{url: strings.TrimRight(rawURL, "/"), hc: hc}
}

// do performs one JSON request.  in may be nil for bodyless methods and
// out may be nil when the response body is irrelevant.  Non-2xx
// responses are returned as *APIError.
func (b *base) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, b.url+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := b.hc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &APIError{StatusCode: res.StatusCode, Message: errorMessage(raw, res.Status)}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage digs a readable reason out of whatever error envelope the
// backend produced.
func errorMessage(raw []byte, fallback string) string {
	var env struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(raw, &env); err == nil {
		switch {
		case env.Error != "":
			return env.Error
		case env.Message != "":
			return env.Message
		case env.Details != "":
			return env.Details
		}
	}
	if s := strings.TrimSpace(string(raw)); s != "" && len(s) <= 200 {
		return s
	}
	return fallback
}
