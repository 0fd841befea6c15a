package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/userdesk-dev/userdesk/internal/client/models"
)

func fixtureUsers() []models.User {
	return []models.User{
		{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz"},
		{ID: 2, Name: "Ervin Howell", Username: "Antonette", Email: "Shanna@melissa.tv"},
	}
}

func newTestDirectory(t *testing.T, handler http.Handler) *HTTPDirectory {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	d := NewHTTPDirectory(srv.URL, 5*time.Second)
	d.retryBase = time.Millisecond
	return d
}

func TestList_ReturnsFullCollection(t *testing.T) {
	d := newTestDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		_ = json.NewEncoder(w).Encode(fixtureUsers())
	}))

	users, err := d.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Leanne Graham", users[0].Name)
}

func TestGet_NotFoundMatchesSentinel(t *testing.T) {
	d := newTestDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := d.Get(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 404, se.Code)
}

func TestList_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	d := newTestDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(fixtureUsers())
	}))

	users, err := d.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, int32(3), calls.Load())
}

func TestList_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	d := newTestDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))

	_, err := d.List(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCreate_PostsFormAndDecodesServerRecord(t *testing.T) {
	var calls atomic.Int32
	d := newTestDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users", r.URL.Path)

		var form models.UserForm
		require.NoError(t, json.NewDecoder(r.Body).Decode(&form))
		assert.Equal(t, "Ada", form.Name)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.User{ID: 11, Name: form.Name, Email: form.Email})
	}))

	u, err := d.Create(context.Background(), models.UserForm{Name: "Ada", Email: "ada@x.com"})
	require.NoError(t, err)
	assert.Equal(t, 11, u.ID)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCreate_NeverRetries(t *testing.T) {
	var calls atomic.Int32
	d := newTestDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := d.Create(context.Background(), models.UserForm{Name: "Ada", Email: "ada@x.com"})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "writes are issued exactly once")
}

func TestUpdate_PutsToRecordPath(t *testing.T) {
	d := newTestDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/3", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.User{ID: 3, Name: "Edited", Email: "e@x.com"})
	}))

	u, err := d.Update(context.Background(), 3, models.UserForm{ID: 3, Name: "Edited", Email: "e@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "Edited", u.Name)
}

func TestDelete_IssuesDeleteVerb(t *testing.T) {
	d := newTestDirectory(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/7", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, d.Delete(context.Background(), 7))
}

func TestTransportFailureWrapsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	d := NewHTTPDirectory(srv.URL, time.Second)
	err := d.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}
