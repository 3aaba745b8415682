package inference

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	coreconfig "github.com/benuhq/benubot/core/config"
	"github.com/benuhq/benubot/core/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.InitLogger(&coreconfig.Config{
		Telegram: coreconfig.TelegramConfig{Token: "test"},
		Logging:  coreconfig.LoggingConfig{Level: "error"},
	})
	os.Exit(m.Run())
}

func TestAskSendsExpectedRequest(t *testing.T) {
	var got request
	var header http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Clone()
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		_, _ = w.Write([]byte(`[{"generated_text":"  Start with a lean budget.  "}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-key")
	answer, err := c.Ask(context.Background(), "How do I budget?")
	require.NoError(t, err)
	assert.Equal(t, "Start with a lean budget.", answer)

	assert.Equal(t, "Bearer secret-key", header.Get("Authorization"))
	assert.Equal(t, "application/json", header.Get("Content-Type"))
	assert.NotEmpty(t, header.Get("X-Request-ID"))

	assert.Equal(t, systemInstruct+"How do I budget?", got.Inputs)
	assert.Equal(t, maxNewTokens, got.Parameters.MaxNewTokens)
	assert.InDelta(t, temperature, got.Parameters.Temperature, 1e-9)
	assert.False(t, got.Parameters.ReturnFullText)
}

func TestAskUpstreamErrors(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"not":"a list"}`))
			},
		},
		{
			name: "empty list",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`[]`))
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			c := New(srv.URL, "k")
			_, err := c.Ask(context.Background(), "q")
			assert.ErrorIs(t, err, ErrUnavailable)
		})
	}
}

func TestAskConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := New(srv.URL, "k")
	_, err := c.Ask(context.Background(), "q")
	assert.ErrorIs(t, err, ErrUnavailable)
}
