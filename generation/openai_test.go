package generation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cardforge/cardforge-api/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// upstream fakes the chat completions endpoint with a canned response.
func upstream(t *testing.T, calls *atomic.Int64, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func newClient(serverURL string) *OpenAIClient {
	return NewOpenAIClient(Config{
		APIKey:  "test-key",
		BaseURL: serverURL,
		Model:   "gpt-4o-mini",
		Timeout: 5 * time.Second,
	}, zap.NewNop())
}

func completion(content string) string {
	msg := map[string]any{
		"choices": []map[string]any{
			{"finish_reason": "stop", "message": map[string]any{"content": content}},
		},
	}
	out, _ := json.Marshal(msg)
	return string(out)
}

func TestGenerateCards_Success(t *testing.T) {
	content := `{"flashcards":[{"question":"What do mitochondria produce?","answer":"ATP"}]}`
	srv := upstream(t, nil, http.StatusOK, completion(content))
	defer srv.Close()

	cards, err := newClient(srv.URL).GenerateCards(context.Background(), "Mitochondria produce ATP.")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "ATP", cards[0].Answer)
}

func TestGenerateCards_SendsSystemPromptAndNotes(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(completion(`{"flashcards":[{"question":"q","answer":"a"}]}`)))
	}))
	defer srv.Close()

	_, err := newClient(srv.URL).GenerateCards(context.Background(), "my notes")
	require.NoError(t, err)

	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, systemPrompt, gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "my notes", gotReq.Messages[1].Content)
	assert.Equal(t, "json_object", gotReq.ResponseFormat.Type)
}

func TestGenerateCards_EmptyNotesNoRequest(t *testing.T) {
	var calls atomic.Int64
	srv := upstream(t, &calls, http.StatusOK, completion(`{"flashcards":[]}`))
	defer srv.Close()

	client := newClient(srv.URL)

	_, err := client.GenerateCards(context.Background(), "")
	assert.True(t, errors.Is(err, ErrNoInput))

	_, err = client.GenerateCards(context.Background(), "   \n\t")
	assert.True(t, errors.Is(err, ErrNoInput))

	assert.Equal(t, int64(0), calls.Load())
}

func TestGenerateCards_Refusal(t *testing.T) {
	body := `{"choices":[{"finish_reason":"stop","message":{"content":"","refusal":"I can't help with that."}}]}`
	srv := upstream(t, nil, http.StatusOK, body)
	defer srv.Close()

	_, err := newClient(srv.URL).GenerateCards(context.Background(), "notes")
	assert.True(t, errors.Is(err, ErrRefused))
}

func TestGenerateCards_ContentFilterFinish(t *testing.T) {
	body := `{"choices":[{"finish_reason":"content_filter","message":{"content":""}}]}`
	srv := upstream(t, nil, http.StatusOK, body)
	defer srv.Close()

	_, err := newClient(srv.URL).GenerateCards(context.Background(), "notes")
	assert.True(t, errors.Is(err, ErrRefused))
}

func TestGenerateCards_EmptyResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no choices", `{"choices":[]}`},
		{"empty content", `{"choices":[{"finish_reason":"stop","message":{"content":""}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := upstream(t, nil, http.StatusOK, tt.body)
			defer srv.Close()

			_, err := newClient(srv.URL).GenerateCards(context.Background(), "notes")
			assert.True(t, errors.Is(err, ErrEmptyResponse))
		})
	}
}

func TestGenerateCards_MalformedContent(t *testing.T) {
	srv := upstream(t, nil, http.StatusOK, completion(`here you go: flashcards!`))
	defer srv.Close()

	_, err := newClient(srv.URL).GenerateCards(context.Background(), "notes")

	var malformed *MalformedError
	assert.True(t, errors.As(err, &malformed))
}

func TestGenerateCards_SchemaInvalidContent(t *testing.T) {
	srv := upstream(t, nil, http.StatusOK, completion(`{"flashcards":[{"question":"q"}]}`))
	defer srv.Close()

	_, err := newClient(srv.URL).GenerateCards(context.Background(), "notes")

	var malformed *MalformedError
	require.True(t, errors.As(err, &malformed))

	// The validator's specific reason is preserved.
	var missing *schema.MissingFieldError
	assert.True(t, errors.As(err, &missing))
	assert.Equal(t, "answer", missing.Field)
}

func TestGenerateCards_UpstreamError(t *testing.T) {
	srv := upstream(t, nil, http.StatusTooManyRequests, `{"error":{"message":"rate limited"}}`)
	defer srv.Close()

	_, err := newClient(srv.URL).GenerateCards(context.Background(), "notes")

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusTooManyRequests, httpErr.StatusCode)
}

func TestGenerateCards_NoAutomaticRetries(t *testing.T) {
	var calls atomic.Int64
	srv := upstream(t, &calls, http.StatusInternalServerError, `{}`)
	defer srv.Close()

	_, err := newClient(srv.URL).GenerateCards(context.Background(), "notes")
	require.Error(t, err)
	assert.Equal(t, int64(1), calls.Load())
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "k")
	t.Setenv("OPENAI_BASE_URL", "https://proxy.example.com/")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("OPENAI_TIMEOUT_SECONDS", "30")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "k", cfg.APIKey)
	assert.Equal(t, "https://proxy.example.com", cfg.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestConfigFromEnv_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	_, err := ConfigFromEnv()
	assert.Error(t, err)
}
