package middleware

import (
	"fmt"
	"html"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

const avatarSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 200"><rect width="200" height="200" rx="100" fill="#e0e7ff"/><text x="100" y="100" dy=".35em" text-anchor="middle" font-family="Arial" font-size="88" font-weight="bold" fill="#4338ca">%s</text></svg>`

// AvatarInitial is the upper-cased first letter of name, or U when name is blank
func AvatarInitial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "U"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

// AvatarSVG renders the initial-letter placeholder avatar
func AvatarSVG(name string) []byte {
	return []byte(fmt.Sprintf(avatarSVG, html.EscapeString(AvatarInitial(name))))
}

// AvatarServer serves stored avatars from dir. Missing files fall back to an
// SVG built from the ?name= query parameter.
func AvatarServer(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))

		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			w.Header().Set("Cache-Control", "public, max-age=2592000")
			http.ServeFile(w, r, path)
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.Write(AvatarSVG(r.URL.Query().Get("name")))
	})
}
