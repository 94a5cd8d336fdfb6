package api

import (
	"log/slog"
	"net/http"
	"time"

	"invctl/internal/session"
)

// bearerTransport attaches the session's bearer credential to every
// outgoing request. Requests made without an active session (login,
// register) go out unsigned.
type bearerTransport struct {
	base    http.RoundTripper
	session *session.Store
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token, err := t.session.Token(); err == nil {
		// Clone before mutating; RoundTrippers must not modify the
		// original request
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return t.base.RoundTrip(req)
}

// loggingTransport logs outgoing HTTP requests
type loggingTransport struct {
	base http.RoundTripper
	log  *slog.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.log.Error("http request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"error", err,
		)
		return nil, err
	}

	t.log.Debug("http request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return resp, nil
}
