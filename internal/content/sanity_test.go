package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, handler http.HandlerFunc) *SanityStore {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := NewSanityStore(SanityConfig{
		Dataset:    "production",
		APIVersion: "2025-01-01",
		BaseURL:    server.URL,
		Timeout:    2 * time.Second,
	})
	require.NoError(t, err)
	return store
}

func TestNewSanityStore_Endpoint(t *testing.T) {
	store, err := NewSanityStore(SanityConfig{ProjectID: "abc123", Dataset: "production", APIVersion: "v2025-01-01", UseCDN: true})
	require.NoError(t, err)
	assert.Equal(t, "https://abc123.apicdn.sanity.io/v2025-01-01/data/query/production", store.Endpoint())

	store, err = NewSanityStore(SanityConfig{ProjectID: "abc123", Dataset: "production", UseCDN: true, Token: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "https://abc123.api.sanity.io/v2025-01-01/data/query/production", store.Endpoint())
}

func TestNewSanityStore_RequiresProjectAndDataset(t *testing.T) {
	_, err := NewSanityStore(SanityConfig{Dataset: "production"})
	assert.Error(t, err)

	_, err = NewSanityStore(SanityConfig{ProjectID: "abc123"})
	assert.Error(t, err)
}

func TestSanityStore_Fetch_Success(t *testing.T) {
	fixture, err := os.ReadFile("testdata/portfolio.json")
	require.NoError(t, err)

	var gotQuery, gotAuth string
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2025-01-01/data/query/production", r.URL.Path)
		gotQuery = r.URL.Query().Get("query")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(fixture)
	})

	doc, err := store.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, AggregateQuery, gotQuery)
	assert.Empty(t, gotAuth)
	require.NotNil(t, doc.Author)
	assert.Equal(t, "Jane Doe", doc.Author.Name)
	assert.Equal(t, "Backend Engineer", doc.Details.MainRole)
	require.Len(t, doc.Projects, 2)
	assert.True(t, doc.Projects[0].Featured)
	assert.Equal(t, "Go", doc.Projects[0].Languages[0].Name)
	assert.Equal(t, "https://cdn.sanity.io/files/abc123/production/cv.pdf", doc.CVURL())
	assert.True(t, doc.Experiences[1].Ongoing())
}

func TestSanityStore_Fetch_SendsToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"result": {"projects": []}}`))
	}))
	defer server.Close()

	store, err := NewSanityStore(SanityConfig{Dataset: "production", BaseURL: server.URL, Token: "secret"})
	require.NoError(t, err)

	_, err = store.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestSanityStore_Fetch_QueryError(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"description": "expected '}' following object body", "type": "queryParseError"}}`))
	})

	_, err := store.Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, IsFetchFailure(err))
	assert.Contains(t, err.Error(), "expected '}' following object body")
}

func TestSanityStore_Fetch_ServerError(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	})

	_, err := store.Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, IsFetchFailure(err))
	assert.Contains(t, err.Error(), "500")
}

func TestSanityStore_Fetch_MalformedJSON(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": `))
	})

	_, err := store.Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, IsFetchFailure(err))
}

func TestSanityStore_Fetch_ResponseTooLarge(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": "`))
		_, _ = w.Write([]byte(strings.Repeat("a", maxResponseBytes)))
		_, _ = w.Write([]byte(`"}`))
	})

	_, err := store.Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, IsFetchFailure(err))
	assert.Contains(t, err.Error(), "слишком большой")
	assert.NotContains(t, err.Error(), "unexpected end of JSON")
}

func TestSanityStore_Fetch_NullResult(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ms": 1, "result": null}`))
	})

	_, err := store.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "пустой результат")
}

func TestSanityStore_Fetch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	store, err := NewSanityStore(SanityConfig{Dataset: "production", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = store.Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, IsFetchFailure(err))
}

func TestSanityStore_Fetch_ContextCancelled(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := store.Fetch(ctx)
	require.Error(t, err)
	assert.True(t, IsFetchFailure(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAsFetchFailure_KeepsMessage(t *testing.T) {
	err := AsFetchFailure(assert.AnError)
	assert.Equal(t, assert.AnError.Error(), err.Error())
	assert.ErrorIs(t, err, assert.AnError)

	wrapped := fail("content: x", nil)
	assert.Same(t, wrapped, AsFetchFailure(wrapped))
	assert.Nil(t, AsFetchFailure(nil))
}

func TestAggregateQuery_RequestsAllCollections(t *testing.T) {
	for _, key := range []string{`"author"`, `"details"`, `"skills"`, `"categories"`, `"projects"`, `"experiences"`, `"uploads"`, `"fileUrl": file.asset->url`} {
		assert.True(t, strings.Contains(AggregateQuery, key), key)
	}
}
