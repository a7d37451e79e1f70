// Copyright (c) 2026 taigamcp Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taigamcp/internal/domain"
)

const testToken = domain.AuthToken("test-token-0123456789")

func testClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	cl, err := New(srv.URL, testToken, WithLimits(Limits{Attempts: 1, RequestsPerSec: 50, Burst: 10}))
	require.NoError(t, err)
	return cl
}

func TestNew(t *testing.T) {
	t.Run("valid URL", func(t *testing.T) {
		cl, err := New("https://api.taiga.io/api/v1", testToken)
		require.NoError(t, err)
		assert.Equal(t, DefLimits, cl.limits)
	})
	t.Run("missing scheme", func(t *testing.T) {
		_, err := New("api.taiga.io/api/v1", testToken)
		assert.Error(t, err)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := New("://", testToken)
		assert.Error(t, err)
	})
	t.Run("invalid limits", func(t *testing.T) {
		_, err := New("https://api.taiga.io/api/v1", testToken, WithLimits(Limits{}))
		assert.ErrorIs(t, err, ErrLimitsInvalid)
	})
}

func TestClientGet(t *testing.T) {
	t.Run("decodes and authenticates", func(t *testing.T) {
		cl := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/issues", r.URL.Path)
			assert.Equal(t, "10", r.URL.Query().Get("project"))
			assert.Equal(t, "Bearer test-token-0123456789", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id": 1, "subject": "crash"}]`))
		})
		got, err := cl.Get(context.Background(), "issues", url.Values{"project": {"10"}})
		require.NoError(t, err)
		lst, ok := got.([]any)
		require.True(t, ok)
		require.Len(t, lst, 1)
		assert.Equal(t, "crash", lst[0].(map[string]any)["subject"])
	})
	t.Run("404 becomes a StatusError", func(t *testing.T) {
		cl := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"detail": "not found"}`, http.StatusNotFound)
		})
		_, err := cl.Get(context.Background(), "issues/999", nil)
		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusNotFound, se.Code)
		assert.Contains(t, err.Error(), "404")
	})
}

func TestClientPost(t *testing.T) {
	cl := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "new issue", body["subject"])
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 42, "subject": "new issue"}`))
	})
	got, err := cl.Post(context.Background(), "issues", map[string]any{"subject": "new issue"})
	require.NoError(t, err)
	m, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), m["id"])
}

func TestClientPatch(t *testing.T) {
	cl := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		w.Write([]byte(`{"id": 42, "version": 2}`))
	})
	got, err := cl.Patch(context.Background(), "issues/42", map[string]any{"version": 1})
	require.NoError(t, err)
	m, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), m["version"])
}

func TestClientDelete(t *testing.T) {
	t.Run("no content", func(t *testing.T) {
		cl := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusNoContent)
		})
		assert.NoError(t, cl.Delete(context.Background(), "issues/42"))
	})
	t.Run("conflict", func(t *testing.T) {
		cl := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "version conflict", http.StatusConflict)
		})
		err := cl.Delete(context.Background(), "issues/42")
		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusConflict, se.Code)
	})
}

func TestClientRetries(t *testing.T) {
	shrinkWaits(t)
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()
	cl, err := New(srv.URL, testToken, WithLimits(Limits{Attempts: 5, RequestsPerSec: 50, Burst: 10}))
	require.NoError(t, err)

	got, err := cl.Get(context.Background(), "projects", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	m, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, m["ok"])
}

func TestDecodeBody(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		got, err := decodeBody(strings.NewReader(""))
		require.NoError(t, err)
		assert.Nil(t, got)
	})
	t.Run("whitespace only", func(t *testing.T) {
		got, err := decodeBody(strings.NewReader("\n  "))
		require.NoError(t, err)
		assert.Nil(t, got)
	})
	t.Run("object", func(t *testing.T) {
		got, err := decodeBody(strings.NewReader(`{"a": 1}`))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": float64(1)}, got)
	})
	t.Run("invalid json", func(t *testing.T) {
		_, err := decodeBody(strings.NewReader(`{`))
		assert.Error(t, err)
	})
}
