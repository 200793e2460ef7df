package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestListModels(t *testing.T) {
	srv := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/tags" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"models": []map[string]any{{"name": "mistral:latest"}, {"name": "llama3:8b"}},
		})
	})

	c := NewClient(srv.URL, 1, time.Millisecond, time.Millisecond)
	models, err := c.ListModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"mistral:latest", "llama3:8b"}, models)
}

func TestListModelsUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 1, time.Millisecond, time.Millisecond)
	_, err := c.ListModels(context.Background())
	var ue *UnreachableError
	assert.ErrorAs(t, err, &ue)
}

func TestChatSuccess(t *testing.T) {
	var captured chatBody
	srv := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/chat" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]any{"role": "assistant", "content": "three key insights"},
			"done":    true,
		})
	})

	c := NewClient(srv.URL, 1, time.Millisecond, time.Millisecond)
	got, err := c.Chat(context.Background(), ChatRequest{
		Model:       "mistral:latest",
		Messages:    []Message{{Role: "user", Content: "summarize"}},
		Temperature: 0.7,
		NumPredict:  500,
	})
	require.NoError(t, err)
	assert.Equal(t, "three key insights", got)
	assert.False(t, captured.Stream, "requests must be non-streaming")
	assert.Equal(t, 0.7, captured.Options["temperature"])
	assert.Equal(t, float64(500), captured.Options["num_predict"])
}

func TestChatValidation(t *testing.T) {
	c := NewClient("http://127.0.0.1:11434", 1, time.Millisecond, time.Millisecond)
	_, err := c.Chat(context.Background(), ChatRequest{Messages: []Message{{Role: "user", Content: "x"}}})
	assert.Error(t, err, "empty model must fail")
	_, err = c.Chat(context.Background(), ChatRequest{Model: "m"})
	assert.Error(t, err, "empty messages must fail")
}

func TestChatStatusErrors(t *testing.T) {
	cases := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusNotFound, func(err error) bool { var e *ModelNotFoundError; return errors.As(err, &e) }},
		{http.StatusBadRequest, func(err error) bool { var e *BadRequestError; return errors.As(err, &e) }},
		{http.StatusInternalServerError, func(err error) bool { var e *ServerError; return errors.As(err, &e) }},
	}
	for _, tc := range cases {
		srv := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": "nope"})
		})
		c := NewClient(srv.URL, 1, time.Millisecond, time.Millisecond)
		_, err := c.Chat(context.Background(), ChatRequest{Model: "m", Messages: []Message{{Role: "user", Content: "x"}}})
		require.Error(t, err)
		assert.True(t, tc.check(err), "status %d: wrong error type: %v", tc.status, err)

		// the typed wrappers unwrap to the embedded APIError
		var api *APIError
		require.ErrorAs(t, err, &api, "status %d", tc.status)
		assert.Equal(t, tc.status, api.StatusCode)
		assert.Equal(t, "nope", api.Message)
	}
}

func TestChatDoesNotRetryStatusErrors(t *testing.T) {
	var calls int32
	srv := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "overloaded"})
	})

	c := NewClient(srv.URL, 3, time.Millisecond, 5*time.Millisecond)
	_, err := c.Chat(context.Background(), ChatRequest{Model: "m", Messages: []Message{{Role: "user", Content: "x"}}})
	var se *ServerError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "an HTTP response is final, even a 5xx")
}

func TestChatHonorsContextDeadline(t *testing.T) {
	srv := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]any{"role": "assistant", "content": "late"},
		})
	})

	c := NewClient(srv.URL, 3, 50*time.Millisecond, 200*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.Chat(ctx, ChatRequest{Model: "m", Messages: []Message{{Role: "user", Content: "x"}}})
	assert.Error(t, err, "expected deadline error")
	assert.Less(t, time.Since(start), time.Second, "call must return promptly after the deadline")
}
