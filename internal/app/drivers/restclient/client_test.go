package restclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"secondheart-dashboard/internal/app/config"
	"secondheart-dashboard/internal/pkg/constvars"
	"secondheart-dashboard/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testConfig(baseURL string) *config.InternalConfig {
	return &config.InternalConfig{
		API: config.API{
			BaseURL:           baseURL,
			TimeoutInSeconds:  5,
			RequestsPerSecond: 100,
		},
	}
}

func TestGet(t *testing.T) {
	t.Run("Decodes the response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`{"id": 3, "username": "a.petrov"}`))
		}))
		defer server.Close()

		client, err := NewClient(testConfig(server.URL), zap.NewNop())
		assert.NoError(t, err)

		var out struct {
			ID       int    `json:"id"`
			Username string `json:"username"`
		}
		err = client.Get(context.Background(), "/api/me/", nil, constvars.ResourceCurrentUser, &out)

		assert.NoError(t, err)
		assert.Equal(t, 3, out.ID)
		assert.Equal(t, "a.petrov", out.Username)
	})

	t.Run("Sends query parameters", func(t *testing.T) {
		var gotQuery url.Values
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client, err := NewClient(testConfig(server.URL), zap.NewNop())
		assert.NoError(t, err)

		params := url.Values{}
		params.Set(constvars.QueryParamDoctor, "1")
		params.Set(constvars.QueryParamStatus, constvars.SlotStatusFree)
		var out []struct{}
		err = client.Get(context.Background(), "/api/slots/", params, constvars.ResourceSlot, &out)

		assert.NoError(t, err)
		assert.Equal(t, "1", gotQuery.Get(constvars.QueryParamDoctor))
		assert.Equal(t, constvars.SlotStatusFree, gotQuery.Get(constvars.QueryParamStatus))
	})

	t.Run("Maps a non-2xx status to a structured error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client, err := NewClient(testConfig(server.URL), zap.NewNop())
		assert.NoError(t, err)

		err = client.Get(context.Background(), "/api/me/", nil, constvars.ResourceCurrentUser, nil)

		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusForbidden, customErr.StatusCode)
	})
}

func TestCSRFCookieFlow(t *testing.T) {
	t.Run("Mutations echo the csrftoken cookie as a header", func(t *testing.T) {
		var gotCSRFHeader string
		mux := http.NewServeMux()
		mux.HandleFunc("/api/me/", func(w http.ResponseWriter, r *http.Request) {
			http.SetCookie(w, &http.Cookie{Name: constvars.CookieCSRFToken, Value: "token-123", Path: "/"})
			w.Write([]byte(`{"id": 3}`))
		})
		mux.HandleFunc("/api/appointments/", func(w http.ResponseWriter, r *http.Request) {
			gotCSRFHeader = r.Header.Get(constvars.HeaderCSRFToken)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id": 1}`))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		client, err := NewClient(testConfig(server.URL), zap.NewNop())
		assert.NoError(t, err)

		err = client.Get(context.Background(), "/api/me/", nil, constvars.ResourceCurrentUser, nil)
		assert.NoError(t, err)

		body := map[string]int{"patient": 7, "slot": 42}
		err = client.Post(context.Background(), "/api/appointments/", constvars.ResourceAppointment, body, nil)

		assert.NoError(t, err)
		assert.Equal(t, "token-123", gotCSRFHeader, "the cookie value must travel back in the X-CSRFToken header")
	})

	t.Run("Delete carries the header too", func(t *testing.T) {
		var gotCSRFHeader string
		mux := http.NewServeMux()
		mux.HandleFunc("/api/me/", func(w http.ResponseWriter, r *http.Request) {
			http.SetCookie(w, &http.Cookie{Name: constvars.CookieCSRFToken, Value: "token-456", Path: "/"})
			w.Write([]byte(`{"id": 3}`))
		})
		mux.HandleFunc("/api/appointments/9/", func(w http.ResponseWriter, r *http.Request) {
			gotCSRFHeader = r.Header.Get(constvars.HeaderCSRFToken)
			w.WriteHeader(http.StatusNoContent)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		client, err := NewClient(testConfig(server.URL), zap.NewNop())
		assert.NoError(t, err)

		err = client.Get(context.Background(), "/api/me/", nil, constvars.ResourceCurrentUser, nil)
		assert.NoError(t, err)

		err = client.Delete(context.Background(), "/api/appointments/9/", constvars.ResourceAppointment)

		assert.NoError(t, err)
		assert.Equal(t, "token-456", gotCSRFHeader)
	})

	t.Run("Configured session cookie is sent from the start", func(t *testing.T) {
		var gotSession string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(constvars.CookieSessionID); err == nil {
				gotSession = cookie.Value
			}
			w.Write([]byte(`{"id": 3}`))
		}))
		defer server.Close()

		cfg := testConfig(server.URL)
		cfg.API.SessionCookie = "sess-abc"
		client, err := NewClient(cfg, zap.NewNop())
		assert.NoError(t, err)

		err = client.Get(context.Background(), "/api/me/", nil, constvars.ResourceCurrentUser, nil)

		assert.NoError(t, err)
		assert.Equal(t, "sess-abc", gotSession)
	})
}
