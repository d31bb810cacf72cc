package medium

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUserEvents(t *testing.T) {
	buckets := []map[string]any{
		{"timeWindowStart": float64(1633320000000), "ttrMs": float64(136008), "views": float64(1)},
		{"timeWindowStart": float64(1633323600000), "ttrMs": float64(232381), "views": float64(3)},
	}

	var requestedPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path

		uid, err := r.Cookie("uid")
		require.NoError(t, err)
		require.Equal(t, "abc123", uid.Value)
		require.Equal(t, "application/json", r.Header.Get("accept"))

		w.Write(envelopeBody(map[string]any{"value": buckets}))
	}))
	defer srv.Close()

	user := NewUser(testCreds, "writer", WithBaseUrl(srv.URL))
	start := time.Date(2021, time.October, 4, 0, 0, 0, 0, time.UTC)
	stop := time.Date(2021, time.October, 5, 0, 0, 0, 0, time.UTC)

	events, err := user.Events(context.Background(), start, stop)
	require.NoError(t, err)

	require.Equal(t, "/@writer/stats/total/1633305600000/1633392000000", requestedPath)
	require.Equal(t, buckets, events)
}

func TestUserEventsEnvelopeBreak(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// valid JSON but no payload key, an upstream contract break
		w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	user := NewUser(testCreds, "writer", WithBaseUrl(srv.URL))
	_, err := user.Events(context.Background(), time.Now().Add(-time.Hour), time.Now())
	require.Error(t, err)
	require.Contains(t, err.Error(), "payload")
}
