package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCollectionDecodesNullAsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("null"))
	}))
	defer srv.Close()

	records, err := NewCollectionClient(srv.URL).GetCollection(context.Background(), "videos")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestQueryEqualSendsQuotedParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users.json", r.URL.Path)
		assert.Equal(t, `"username"`, r.URL.Query().Get("orderBy"))
		assert.Equal(t, `"alice"`, r.URL.Query().Get("equalTo"))
		_, _ = w.Write([]byte(`{"k":{"username":"alice"}}`))
	}))
	defer srv.Close()

	records, err := NewCollectionClient(srv.URL).QueryEqual(context.Background(), "users", "username", "alice")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestPushReturnsGeneratedKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"name":"-Ngenerated"}`))
	}))
	defer srv.Close()

	key, err := NewCollectionClient(srv.URL).Push(context.Background(), "comments", map[string]string{"text": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "-Ngenerated", key)
}

func TestPushRejectsMissingKeyInResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := NewCollectionClient(srv.URL).Push(context.Background(), "comments", map[string]string{})
	assert.Error(t, err)
}

func TestNonOKStatusSurfacesAsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "permission denied", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewCollectionClient(srv.URL)

	_, err := client.GetCollection(context.Background(), "users")
	assert.ErrorContains(t, err, "403")

	err = client.Patch(context.Background(), "users", "k", map[string]string{"email": "x"})
	assert.ErrorContains(t, err, "403")
}

func TestPatchTargetsRecordPath(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	err := NewCollectionClient(srv.URL).Patch(context.Background(), "users", "key-a", map[string]string{"phone": "999"})
	require.NoError(t, err)
	assert.Equal(t, "PATCH", gotMethod)
	assert.Equal(t, "/users/key-a.json", gotPath)
}
