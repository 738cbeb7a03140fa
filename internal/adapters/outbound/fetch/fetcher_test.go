package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetch_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "org.example"}`))
	}))
	defer srv.Close()

	f := New(5*time.Second, zap.NewNop())
	body, err := f.Fetch(context.Background(), srv.URL+"/manifest.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "org.example"}`, string(body))
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := New(5*time.Second, zap.NewNop())
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetch_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	f := New(5*time.Second, zap.NewNop())
	_, err := f.Fetch(ctx, srv.URL)
	assert.Error(t, err)
}

func TestFetch_BadURL(t *testing.T) {
	f := New(time.Second, zap.NewNop())
	_, err := f.Fetch(context.Background(), "http://127.0.0.1:1/manifest.json")
	assert.Error(t, err)
}
