package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milden6/dawg-anagram/anagram"
	"github.com/milden6/dawg-anagram/errors"
	"github.com/milden6/dawg-anagram/internal/config"
	"github.com/milden6/dawg-anagram/internal/dawgtest"
)

func newTestServer(t *testing.T, opts anagram.Options, words ...string) *Server {
	t.Helper()
	solver := anagram.NewSolver(dawgtest.New(t, words...), opts)
	return New(solver, config.Default().Server, log.New(io.Discard))
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestSolve(t *testing.T) {
	s := newTestServer(t, anagram.Options{}, "AT", "TA", "ACT", "CAT")

	rec := get(t, s, "/solve?letters=cat")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Letters string          `json:"letters"`
		Words   []string        `json:"words"`
		Extra   []string        `json:"extra"`
		Count   int             `json:"count"`
		Groups  []anagram.Group `json:"groups"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	assert.Equal(t, "ACT", body.Letters)
	assert.Equal(t, []string{"ACT", "AT", "CAT", "TA"}, body.Words)
	assert.Equal(t, []string{"A"}, body.Extra)
	assert.Equal(t, 4, body.Count)
	assert.Equal(t, []anagram.Group{
		{Length: 1, Words: []string{"A"}},
		{Length: 2, Words: []string{"AT", "TA"}},
		{Length: 3, Words: []string{"ACT", "CAT"}},
	}, body.Groups)
}

func TestSolveEmpty(t *testing.T) {
	s := newTestServer(t, anagram.Options{}, "CAT")

	rec := get(t, s, "/solve?letters=xyz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"letters":"XYZ","words":[],"extra":[],"count":0,"groups":[]}`, rec.Body.String())
}

func TestSolveErrors(t *testing.T) {
	s := newTestServer(t, anagram.Options{MaxResults: 1}, "AT", "TA", "ACT", "CAT")

	tests := []struct {
		name   string
		target string
		status int
		code   errors.Code
	}{
		{"missing letters", "/solve", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"too long", "/solve?letters=" + strings.Repeat("a", anagram.MaxInputLength+1), http.StatusBadRequest, errors.ErrCodeInputTooLong},
		{"too many results", "/solve?letters=cat", http.StatusInsufficientStorage, errors.ErrCodeAllocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, s, tt.target)
			require.Equal(t, tt.status, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(context.DeadlineExceeded))
	assert.Equal(t, http.StatusInternalServerError, statusFor(context.Canceled))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New(errors.ErrCodeFormat, "bad")))
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, anagram.Options{}, "CAT")

	rec := get(t, s, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK\n", rec.Body.String())

	rec = get(t, s, "/nowhere")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, anagram.Options{}, "CAT")

	rec := get(t, s, "/healthz")
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err, "generated request id should be a uuid")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRunShutsDown(t *testing.T) {
	solver := anagram.NewSolver(dawgtest.New(t, "CAT"), anagram.Options{})
	cfg := config.Default().Server
	cfg.Addr = "127.0.0.1:0"
	s := New(solver, cfg, log.New(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
