package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dreamcatcher/dreamcatcher-go/internal/common"
)

// ---- fake credential store ----

type fakeStore struct {
	data   map[string][]byte
	getErr error
	setErr error
	delErr error

	sets    int
	deletes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]byte{}}
}

func (f *fakeStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return nil, common.ErrNotFound
	}
	return v, nil
}

func (f *fakeStore) Set(ctx context.Context, key string, value []byte) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	f.deletes++
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.data, key)
	return nil
}

func (f *fakeStore) Close() error { return nil }

// ---- tests ----

func TestTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := New("http://example.invalid", nil, nil)

	require.False(t, c.IsAuthenticated())
	require.Equal(t, "", c.Token())

	c.SetToken(ctx, "tok-1")
	require.Equal(t, "tok-1", c.Token())
	require.True(t, c.IsAuthenticated())

	c.SetToken(ctx, "tok-2")
	require.Equal(t, "tok-2", c.Token())

	c.ClearToken(ctx)
	require.Equal(t, "", c.Token())
	require.False(t, c.IsAuthenticated())
}

func TestSetTokenPersistsAndClearDeletes(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c := New("http://example.invalid", store, nil)

	c.SetToken(ctx, "tok")
	require.Equal(t, []byte("tok"), store.data[common.TokenStoreKey])

	c.ClearToken(ctx)
	_, ok := store.data[common.TokenStoreKey]
	require.False(t, ok)
	require.Equal(t, 1, store.sets)
	require.Equal(t, 1, store.deletes)
}

func TestStoreWriteFailureDoesNotBlockTokenChange(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.setErr = errors.New("disk full")
	store.delErr = errors.New("disk full")
	c := New("http://example.invalid", store, nil)

	c.SetToken(ctx, "tok")
	require.Equal(t, "tok", c.Token())

	c.ClearToken(ctx)
	require.False(t, c.IsAuthenticated())
}

func TestAuthHeaderInjection(t *testing.T) {
	var gotAuth, gotContentType, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	c.SetToken(context.Background(), "tok")

	require.NoError(t, c.Get(context.Background(), "/dreams/", nil))
	require.Equal(t, "Bearer tok", gotAuth)
	require.Equal(t, "application/json", gotContentType)
	require.NotEmpty(t, gotRequestID)
}

func TestSkipAuthSuppressesHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	c.SetToken(context.Background(), "tok")

	require.NoError(t, c.Post(context.Background(), "/auth/login/json", map[string]string{"email": "a@b.c"}, nil, SkipAuth()))
	require.Equal(t, "", gotAuth)
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	var sawHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	require.NoError(t, c.Get(context.Background(), "/dreams/", nil))
	require.False(t, sawHeader)
}

func TestNoContentSkipsDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)

	// out stays untouched even if provided
	out := map[string]string{"sentinel": "x"}
	require.NoError(t, c.Delete(context.Background(), "/dreams/1", &out))
	require.Equal(t, "x", out["sentinel"])
}

func TestServerDetailBecomesErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid credentials"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	err := c.Get(context.Background(), "/auth/me", nil)
	require.Error(t, err)
	require.Equal(t, "Invalid credentials", err.Error())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestUnparseableErrorBodyFallsBackToGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>boom</html>`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	err := c.Get(context.Background(), "/dreams/", nil)
	require.Error(t, err)
	require.Equal(t, "An error occurred", err.Error())
}

func TestJSONErrorWithoutDetailFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"msg":"nope"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	err := c.Get(context.Background(), "/dreams/", nil)
	require.Error(t, err)
	require.Equal(t, "HTTP 400", err.Error())
}

func TestQueryStringAppended(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	q := url.Values{}
	q.Set("limit", "5")

	var out []struct{}
	require.NoError(t, c.Get(context.Background(), "/dreams/", &out, WithQuery(q)))
	require.Equal(t, "limit=5", gotQuery)
}

func TestPersistedTokenLoadedLazily(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := newFakeStore()
	store.data[common.TokenStoreKey] = []byte("persisted")

	c := New(srv.URL, store, nil)
	require.NoError(t, c.Get(context.Background(), "/auth/me", nil))
	require.Equal(t, "Bearer persisted", gotAuth)
	require.True(t, c.IsAuthenticated())
}

func TestStoreReadFailureMeansNoToken(t *testing.T) {
	var sawHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := newFakeStore()
	store.getErr = errors.New("keychain locked")

	c := New(srv.URL, store, nil)
	require.NoError(t, c.Get(context.Background(), "/dreams/", nil))
	require.False(t, sawHeader)
	require.False(t, c.IsAuthenticated())
}

func TestExplicitSetTokenWinsOverPersisted(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	store := newFakeStore()
	store.data[common.TokenStoreKey] = []byte("stale")

	c := New(srv.URL, store, nil)
	c.SetToken(context.Background(), "fresh")

	require.NoError(t, c.Get(context.Background(), "/dreams/", nil))
	require.Equal(t, "Bearer fresh", gotAuth)
}

func TestNetworkFailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately unreachable

	c := New(srv.URL, nil, nil)
	err := c.Get(context.Background(), "/dreams/", nil)
	require.Error(t, err)

	var apiErr *Error
	require.False(t, errors.As(err, &apiErr), "transport failures must not masquerade as server errors")
}
