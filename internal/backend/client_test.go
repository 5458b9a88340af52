package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillon/companyscope/internal/models"
)

func TestResearch_Success(t *testing.T) {
	var gotBody models.ResearchRequest
	var gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/research", r.URL.Path)
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"report": "# Hello"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 0)

	report, err := client.Research(context.Background(), "Acme Corp")
	require.NoError(t, err)

	assert.Equal(t, "# Hello", report)
	assert.Equal(t, "Acme Corp", gotBody.CompanyName)
	assert.Equal(t, "application/json", gotContentType)
}

func TestResearch_BackendErrorWithDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail": "Backend overloaded"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 0)

	report, err := client.Research(context.Background(), "Acme Corp")
	require.Error(t, err)

	assert.Equal(t, "Backend overloaded", err.Error())
	assert.Empty(t, report)
}

func TestResearch_BackendErrorWithoutDetail(t *testing.T) {
	bodies := map[string]string{
		"empty":       "",
		"unparsable":  "<html>gateway timeout</html>",
		"emptyDetail": `{"detail": ""}`,
		"otherShape":  `{"message": "nope"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "", 0)

			_, err := client.Research(context.Background(), "Acme Corp")
			require.Error(t, err)
			assert.Equal(t, FallbackErrorMessage, err.Error())
		})
	}
}

func TestResearch_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL, "", 0)

	_, err := client.Research(context.Background(), "Acme Corp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reach research backend")
}

func TestResearch_MalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"report": `))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 0)

	_, err := client.Research(context.Background(), "Acme Corp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestResearch_AuthTokenHeader(t *testing.T) {
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"report": "ok"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sekrit", 0)

	_, err := client.Research(context.Background(), "Acme Corp")
	require.NoError(t, err)
	assert.Equal(t, "Bearer sekrit", gotAuth)
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/", r.URL.Path)
		_, _ = w.Write([]byte(`{"status": "API is running"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 0)

	status, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "API is running", status)
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient("http://localhost:8000/", "", 0)
	assert.Equal(t, "http://localhost:8000", client.BaseURL)
}
