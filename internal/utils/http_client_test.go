package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://localhost:1", time.Second)
	client2 := NewHTTPClient("http://localhost:1", time.Second)

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
	assert.Equal(t, "http://localhost:1", client1.BaseURL)
	assert.Equal(t, time.Second, client1.GetClient().Timeout)
}

func TestNewHTTPClient_GeneratesRequestID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, time.Second).R().Get("/")
	require.NoError(t, err)

	_, err = uuid.Parse(got)
	assert.NoError(t, err, "request id should be a uuid, got %q", got)
}

func TestNewHTTPClient_ReusesContextRequestID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx := WithRequestID(context.Background(), "fixed-id")
	_, err := NewHTTPClient(srv.URL, time.Second).R().SetContext(ctx).Get("/")
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", got)
}

func TestNewRequestID_Unique(t *testing.T) {
	a, b := NewRequestID(), NewRequestID()
	assert.NotEqual(t, a, b)

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
