package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doceencanto/internal/models"
)

func testForm() models.ContactForm {
	return models.ContactForm{
		Name:    "Ana Souza",
		Email:   "ana@example.com",
		Phone:   "15999998888",
		Message: "Gostaria de encomendar doces para uma festa.",
	}
}

func TestSubmit(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.Endpoint = server.URL
	client.now = func() time.Time {
		return time.Date(2026, 8, 31, 18, 30, 0, 0, time.UTC)
	}

	require.NoError(t, client.Submit(context.Background(), testForm()))

	assert.Equal(t, "test-key", received["access_key"])
	assert.Equal(t, "Novo contato de Ana Souza - Doce Encanto", received["subject"])
	assert.Equal(t, "Ana Souza", received["from_name"])
	assert.Equal(t, "ana@example.com", received["email"])
	assert.Equal(t, "15999998888", received["phone"])
	// 18:30 UTC is 15:30 in São Paulo
	assert.Equal(t, "31/08/2026, 15:30:00", received["timestamp"])
}

func TestSubmitRelayRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "invalid key"})
	}))
	defer server.Close()

	client := NewClient("bad-key")
	client.Endpoint = server.URL

	err := client.Submit(context.Background(), testForm())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid key")
}

func TestSubmitTransportFailure(t *testing.T) {
	client := NewClient("test-key")
	client.Endpoint = "http://127.0.0.1:1" // nothing listens here

	assert.Error(t, client.Submit(context.Background(), testForm()))
}

func TestSubmitBadResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.Endpoint = server.URL

	assert.Error(t, client.Submit(context.Background(), testForm()))
}
