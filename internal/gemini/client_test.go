package gemini

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestGenerateTextSuccess(t *testing.T) {
	var gotPath, gotKey string
	var gotBody struct {
		Contents []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
	}

	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"feat: Implement new feature"}]}}]}`))
	})

	client := NewClient(server.URL, "gemini-2.0-flash-lite", "test-key", false)
	text, err := client.GenerateText("test prompt")

	require.NoError(t, err)
	assert.Equal(t, "feat: Implement new feature", text)
	assert.Equal(t, "/v1beta/models/gemini-2.0-flash-lite:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "test prompt", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerateTextBackendError(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "API key missing"}`))
	})

	client := NewClient(server.URL, "gemini-2.0-flash-lite", "", false)
	_, err := client.GenerateText("test prompt")

	require.Error(t, err)
	assert.EqualError(t, err, `Gemini API error: "API key missing"`)
}

func TestGenerateTextStructuredError(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": {"code": 403, "message": "Permission denied"}}`))
	})

	client := NewClient(server.URL, "gemini-2.0-flash-lite", "bad-key", false)
	_, err := client.GenerateText("test prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Gemini API error:")
	assert.Contains(t, err.Error(), "Permission denied")
}

func TestGenerateTextUnparseableResponse(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	client := NewClient(server.URL, "gemini-2.0-flash-lite", "test-key", false)
	_, err := client.GenerateText("test prompt")

	require.Error(t, err)
	assert.EqualError(t, err, "failed to parse Gemini response")
}

func TestGenerateTextInvalidJSON(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("oops"))
	})

	client := NewClient(server.URL, "gemini-2.0-flash-lite", "test-key", false)
	_, err := client.GenerateText("test prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode Gemini response")
}

func TestGenerateTextConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "gemini-2.0-flash-lite", "test-key", false)
	_, err := client.GenerateText("test prompt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection to Gemini failed")
}
