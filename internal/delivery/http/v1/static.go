package v1

import (
	"contact-book-backend/internal/delivery/http/response"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const entryDocument = "index.html"

// SPAHandler serves files from publicDir and falls back to the entry document
// for any other GET, so client-side routes survive a reload. It is meant for
// gin's NoRoute, which only runs once every API route has failed to match.
func SPAHandler(publicDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := c.Request.URL.Path
		if strings.HasPrefix(reqPath, "/api/") || reqPath == "/api" {
			response.Error(c, http.StatusNotFound, "Route not found", nil)
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			response.Error(c, http.StatusNotFound, "Route not found", nil)
			return
		}

		// Cleaning against "/" keeps the result inside publicDir.
		file := filepath.Join(publicDir, filepath.FromSlash(path.Clean("/"+reqPath)))
		if serveFile(c, file) {
			return
		}
		if !serveFile(c, filepath.Join(publicDir, entryDocument)) {
			response.Error(c, http.StatusNotFound, "Frontend not built", nil)
		}
	}
}

// serveFile writes a regular file and reports whether it did. Unlike c.File it
// never redirects requests ending in /index.html.
func serveFile(c *gin.Context, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
	return true
}
