package rest

import (
	"net/http"
	"os"
	"path/filepath"
)

// FrontendHandler serves the built single-page frontend. Requests for
// paths that do not exist on disk fall back to the index document so
// client-side routes resolve after a full page reload.
type FrontendHandler struct {
	staticDir string
	indexFile string
}

func NewFrontendHandler(staticDir string, indexFile string) *FrontendHandler {
	return &FrontendHandler{staticDir: staticDir, indexFile: indexFile}
}

func (h *FrontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.staticDir, filepath.Clean(r.URL.Path))

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.staticDir, h.indexFile))
		return
	}

	http.FileServer(http.Dir(h.staticDir)).ServeHTTP(w, r)
}
