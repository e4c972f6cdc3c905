package static

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"
)

// FS exposes web static assets for HTTP serving.
//
//go:embed *.css *.ico
var FS embed.FS

// FaviconFile names the site icon inside FS.
const FaviconFile = "favicon.ico"

// Handler serves regular files from FS for request paths under prefix.
// Directories and missing files go to notFound, so the asset tree is never
// listed.
func Handler(prefix string, notFound http.Handler) http.Handler {
	if notFound == nil {
		notFound = http.NotFoundHandler()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name, ok := strings.CutPrefix(r.URL.Path, prefix)
		if !ok || !fs.ValidPath(name) {
			notFound.ServeHTTP(w, r)
			return
		}
		info, err := fs.Stat(FS, name)
		if err != nil || info.IsDir() {
			notFound.ServeHTTP(w, r)
			return
		}
		http.ServeFileFS(w, r, FS, name)
	})
}
