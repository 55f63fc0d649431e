// ABOUTME: Edge routing handler rewriting pretty game URLs to query-string pages
// ABOUTME: Static assets pass through; unknown paths fall back to the index page

package edge

import (
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"

	"github.com/gorilla/mux"
)

// staticExtPattern matches asset paths that must be served directly and
// never rewritten or index-substituted.
var staticExtPattern = regexp.MustCompile(`\.(css|js|jpg|jpeg|png|gif|ico|svg|webp|json)$`)

// NewHandler returns the edge routing handler for a static site rooted at
// rootDir. Rewrite rules:
//
//	/games/category/<cat>.html  ->  302 /index.html?category=<cat>
//	/games/<cat>/<slug>.html    ->  302 /game.html?id=<slug>&category=<cat>
//
// Static-asset extensions are served as-is (404 when missing). Every other
// path serves the file when present and the index page otherwise, the
// client-side-routing fallback.
func NewHandler(rootDir string) http.Handler {
	r := mux.NewRouter()

	// The category listing rule must come first: its paths also match the
	// generic game rule with <cat> = "category".
	r.HandleFunc("/games/category/{category}.html", func(w http.ResponseWriter, req *http.Request) {
		category := mux.Vars(req)["category"]
		target := "/index.html?category=" + url.QueryEscape(category)
		http.Redirect(w, req, target, http.StatusFound)
	})

	r.HandleFunc("/games/{category}/{slug}.html", func(w http.ResponseWriter, req *http.Request) {
		vars := mux.Vars(req)
		target := "/game.html?id=" + url.QueryEscape(vars["slug"]) + "&category=" + url.QueryEscape(vars["category"])
		http.Redirect(w, req, target, http.StatusFound)
	})

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		serveStatic(w, req, rootDir)
	})

	return r
}

// serveStatic serves the requested file, falling back to index.html for
// non-asset paths that do not exist.
func serveStatic(w http.ResponseWriter, req *http.Request, rootDir string) {
	// Normalize and contain the path inside rootDir.
	clean := path.Clean("/" + req.URL.Path)
	file := filepath.Join(rootDir, filepath.FromSlash(clean))

	if staticExtPattern.MatchString(clean) {
		http.ServeFile(w, req, file)
		return
	}

	// http.ServeFile redirects any path ending in /index.html, which would
	// break the rewrite chain, so the index page is always written directly.
	if clean == "/" || clean == "/index.html" {
		serveIndex(w, req, rootDir)
		return
	}

	if info, err := os.Stat(file); err == nil && !info.IsDir() {
		http.ServeFile(w, req, file)
		return
	}

	serveIndex(w, req, rootDir)
}

func serveIndex(w http.ResponseWriter, req *http.Request, rootDir string) {
	data, err := os.ReadFile(filepath.Join(rootDir, "index.html"))
	if err != nil {
		http.NotFound(w, req)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}
