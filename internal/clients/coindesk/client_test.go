package coindesk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	url     string
	timeout time.Duration
}

func (c testConfig) APIURL() string                { return c.url }
func (c testConfig) RequestTimeout() time.Duration { return c.timeout }

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func Test_OnValidBody_ShouldReturnQuote(t *testing.T) {
	srv := newServer(t, http.StatusOK,
		`{"time":{"updated":"Jun 1, 2024 00:00:00 UTC"},"bpi":{"USD":{"code":"USD","rate_float":65000.5}}}`)

	q, err := New(testConfig{url: srv.URL, timeout: time.Second}).FetchPrice(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Jun 1, 2024 00:00:00 UTC", q.UpdatedAt)
	assert.Equal(t, 65000.5, q.PriceUSD)
}

func Test_OnShapeDeviation_ShouldFail(t *testing.T) {
	bodies := map[string]string{
		"no time":       `{"bpi":{"USD":{"rate_float":1}}}`,
		"no updated":    `{"time":{},"bpi":{"USD":{"rate_float":1}}}`,
		"no bpi":        `{"time":{"updated":"x"}}`,
		"no usd":        `{"time":{"updated":"x"},"bpi":{"EUR":{"rate_float":1}}}`,
		"no rate_float": `{"time":{"updated":"x"},"bpi":{"USD":{"rate":"1,000"}}}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			srv := newServer(t, http.StatusOK, body)
			_, err := New(testConfig{url: srv.URL, timeout: time.Second}).FetchPrice(context.Background())
			assert.True(t, errors.Is(err, ErrUnexpectedShape), "got %v", err)
		})
	}
}

func Test_OnWrongType_ShouldFail(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"time":{"updated":"x"},"bpi":{"USD":{"rate_float":"65000"}}}`)

	_, err := New(testConfig{url: srv.URL, timeout: time.Second}).FetchPrice(context.Background())
	assert.Error(t, err)
}

func Test_OnMalformedJSON_ShouldFail(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{invalid json}`)

	_, err := New(testConfig{url: srv.URL, timeout: time.Second}).FetchPrice(context.Background())
	assert.Error(t, err)
}

func Test_OnHTTPError_ShouldFail(t *testing.T) {
	srv := newServer(t, http.StatusInternalServerError, `{"time":{"updated":"x"},"bpi":{"USD":{"rate_float":1}}}`)

	_, err := New(testConfig{url: srv.URL, timeout: time.Second}).FetchPrice(context.Background())
	assert.EqualError(t, err, "price api responded with status 500")
}

func Test_OnSlowServer_ShouldTimeOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	_, err := New(testConfig{url: srv.URL, timeout: 50 * time.Millisecond}).FetchPrice(context.Background())
	assert.Error(t, err)
}
