package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trungle-dev/docqa-be/service"
	"google.golang.org/api/option"
)

// newGeminiServer serves a canned streamed generation as the JSON array the
// REST transport produces, one response object per text fragment.
func newGeminiServer(t *testing.T, texts []string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Contains(t, r.URL.Path, ":streamGenerateContent")

		chunks := make([]string, 0, len(texts))
		for _, text := range texts {
			payload, err := json.Marshal(map[string]any{
				"candidates": []map[string]any{{
					"content": map[string]any{
						"role":  "model",
						"parts": []map[string]any{{"text": text}},
					},
				}},
			})
			require.NoError(t, err)
			chunks = append(chunks, string(payload))
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, "[%s]", strings.Join(chunks, ","))
	}))
}

func newGeminiService(t *testing.T, srv *httptest.Server) *service.GeminiService {
	t.Helper()

	ai, err := service.NewGeminiService(context.Background(), "test-key", "test-model",
		option.WithEndpoint(srv.URL))
	require.NoError(t, err)
	t.Cleanup(func() { ai.Close() })
	return ai
}

func TestGeminiService_Answer(t *testing.T) {
	t.Parallel()

	srv := newGeminiServer(t, []string{"  The answer ", "is ", "42.", "\n"})
	defer srv.Close()

	ai := newGeminiService(t, srv)

	answer, err := ai.Answer(context.Background(), "what is the answer?", "document body")

	require.NoError(t, err)
	assert.Equal(t, "The answer is 42.", answer)
}

func TestGeminiService_Answer_EmptyStream(t *testing.T) {
	t.Parallel()

	srv := newGeminiServer(t, nil)
	defer srv.Close()

	ai := newGeminiService(t, srv)

	answer, err := ai.Answer(context.Background(), "anything?", "document")

	require.NoError(t, err)
	assert.Equal(t, "", answer)
}

func TestGeminiService_Answer_UpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `{"error": {"code": 503, "message": "overloaded", "status": "UNAVAILABLE"}}`)
	}))
	defer srv.Close()

	ai := newGeminiService(t, srv)

	_, err := ai.Answer(context.Background(), "anything?", "document")

	require.Error(t, err)
}

func TestNewGeminiService_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := service.NewGeminiService(context.Background(), "", "test-model")

	require.Error(t, err)
}
