package medium

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func pubIdentity(withDomain bool) map[string]any {
	identity := map[string]any{
		"id":          "pub1",
		"slug":        "foo-blog",
		"name":        "Foo Blog",
		"creatorId":   "c1",
		"description": "d",
	}
	if withDomain {
		identity["domain"] = "foo.blog"
	}
	return identity
}

func newPublicationServer(t *testing.T, withDomain bool, mux *http.ServeMux) *httptest.Server {
	if mux == nil {
		mux = http.NewServeMux()
	}
	mux.HandleFunc("/foo-blog", func(w http.ResponseWriter, r *http.Request) {
		w.Write(envelopeBody(map[string]any{"collection": pubIdentity(withDomain)}))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewPublication(t *testing.T) {
	srv := newPublicationServer(t, true, nil)

	pub, err := NewPublication(context.Background(), testCreds, "foo-blog", WithBaseUrl(srv.URL))
	require.NoError(t, err)

	require.Equal(t, "pub1", pub.Id)
	require.Equal(t, "foo-blog", pub.Slug)
	require.Equal(t, "Foo Blog", pub.Name)
	require.Equal(t, "c1", pub.CreatorId)
	require.Equal(t, "d", pub.Description)
	require.Equal(t, "foo.blog", pub.Domain)
	require.Equal(t, srv.URL+"/_/api/collections/pub1/stats", pub.CollectionsEndpoint())
}

func TestNewPublicationWithoutDomain(t *testing.T) {
	srv := newPublicationServer(t, false, nil)

	pub, err := NewPublication(context.Background(), testCreds, "foo-blog", WithBaseUrl(srv.URL))
	require.NoError(t, err)
	require.Equal(t, "", pub.Domain)
}

func TestNewPublicationHomepageFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	pub, err := NewPublication(context.Background(), testCreds, "foo-blog", WithBaseUrl(srv.URL))
	require.Error(t, err)
	require.Nil(t, pub)
}

func TestPublicationEvents(t *testing.T) {
	var query map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("/_/api/collections/pub1/stats/views", func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{
			"from": r.URL.Query().Get("from"),
			"to":   r.URL.Query().Get("to"),
		}
		w.Write(envelopeBody(map[string]any{
			"value": []map[string]any{
				{"timeWindowStart": float64(1633320000000), "views": float64(10)},
			},
		}))
	})
	srv := newPublicationServer(t, true, mux)

	pub, err := NewPublication(context.Background(), testCreds, "foo-blog", WithBaseUrl(srv.URL))
	require.NoError(t, err)

	start := time.Date(2021, time.October, 4, 0, 0, 0, 0, time.UTC)
	stop := time.Date(2021, time.October, 5, 0, 0, 0, 0, time.UTC)
	events, err := pub.Events(context.Background(), start, stop, EventViews)
	require.NoError(t, err)

	require.Len(t, events, 1)
	require.Equal(t, map[string]string{
		"from": "1633305600000",
		"to":   "1633392000000",
	}, query)
}

func TestPublicationEventsRejectsUnknownKind(t *testing.T) {
	var statsRequests int
	mux := http.NewServeMux()
	mux.HandleFunc("/_/api/", func(w http.ResponseWriter, r *http.Request) {
		statsRequests++
		http.NotFound(w, r)
	})
	srv := newPublicationServer(t, true, mux)

	pub, err := NewPublication(context.Background(), testCreds, "foo-blog", WithBaseUrl(srv.URL))
	require.NoError(t, err)

	_, err = pub.Events(context.Background(), time.Now().Add(-time.Hour), time.Now(), "clicks")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"views" or "visitors"`)
	// rejected before any request goes out
	require.Equal(t, 0, statsRequests)
}

func TestPublicationSummaryStats(t *testing.T) {
	var requestCount int
	mux := http.NewServeMux()
	mux.HandleFunc("/foo-blog/stats/stories", func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		require.Equal(t, "50", r.URL.Query().Get("limit"))

		if r.URL.Query().Get("to") == "" {
			w.Write(envelopeBody(map[string]any{
				"value":  []map[string]any{{"postId": "p1", "views": float64(71)}},
				"paging": map[string]any{"next": map[string]any{"to": "cursor-2"}},
			}))
			return
		}
		w.Write(envelopeBody(map[string]any{
			"value": []map[string]any{{"postId": "p2", "views": float64(12)}},
		}))
	})
	srv := newPublicationServer(t, true, mux)

	pub, err := NewPublication(context.Background(), testCreds, "foo-blog", WithBaseUrl(srv.URL))
	require.NoError(t, err)

	listing, err := pub.SummaryStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, requestCount)

	ids := pub.ArticleIDs(listing)
	require.Equal(t, []string{"p1", "p2"}, ids)
}

func TestArticlesHelper(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/foo-blog/stats/stories", func(w http.ResponseWriter, r *http.Request) {
		w.Write(envelopeBody(map[string]any{
			"value": []map[string]any{{"postId": "p1"}, {"postId": "p2"}},
		}))
	})
	mux.HandleFunc("/_/graphql", func(w http.ResponseWriter, r *http.Request) {
		var req gqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Write(graphqlPostBody(map[string]any{"id": req.Variables["postId"]}))
	})
	srv := newPublicationServer(t, true, mux)

	pub, err := NewPublication(context.Background(), testCreds, "foo-blog", WithBaseUrl(srv.URL))
	require.NoError(t, err)

	start := time.Date(2021, time.October, 1, 0, 0, 0, 0, time.UTC)
	stop := time.Date(2021, time.October, 8, 0, 0, 0, 0, time.UTC)
	articles, err := Articles(context.Background(), pub, start, stop)
	require.NoError(t, err)

	require.Len(t, articles, 2)
	require.Equal(t, "p1", articles[0]["id"])
	require.Equal(t, "p2", articles[1]["id"])
}
