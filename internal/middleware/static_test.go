package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvatarInitial(t *testing.T) {
	assert.Equal(t, "J", AvatarInitial("julia silva"))
	assert.Equal(t, "É", AvatarInitial(" édson"))
	assert.Equal(t, "U", AvatarInitial(""))
	assert.Equal(t, "U", AvatarInitial("   "))
}

func TestAvatarServer(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "u1.png"), []byte("\x89PNG stored"), 0o644))
	server := http.StripPrefix("/static/avatars/", AvatarServer(dir))

	t.Run("stored file", func(t *testing.T) {
		w := httptest.NewRecorder()
		server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/avatars/u1.png", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "stored")
	})

	t.Run("placeholder with initial", func(t *testing.T) {
		w := httptest.NewRecorder()
		server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/avatars/u2.png?name=Marcos", nil))

		assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), ">M</text>")
	})

	t.Run("path traversal stays inside dir", func(t *testing.T) {
		w := httptest.NewRecorder()
		server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/avatars/..%2f..%2fetc%2fpasswd", nil))

		assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), ">U</text>")
	})
}
