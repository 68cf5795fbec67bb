// Package static embeds the stylesheet and script shipped with every page.
package static

import (
	"embed"
	"net/http"
)

//go:embed *.css *.js
var FS embed.FS

const cacheControl = "public, max-age=3600"

// Handler serves the embedded assets with a short public cache lifetime.
func Handler() http.Handler {
	files := http.FileServer(http.FS(FS))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheControl)
		files.ServeHTTP(w, r)
	})
}
