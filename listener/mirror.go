package listener

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// NewMirrorHandler returns a read-only file server over root. Only GET and HEAD are
// allowed, and path segments starting with a dot are never served.
func NewMirrorHandler(root string) (http.Handler, error) {
	if root == "" {
		return nil, ErrEmptyRoot
	}

	stat, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("data root %q: %w", root, err)
	}

	if !stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDirectory, root)
	}

	files := http.FileServer(http.Dir(root))

	return accessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)

			return
		}

		if hidden(r.URL.Path) {
			http.NotFound(w, r)

			return
		}

		files.ServeHTTP(w, r)
	})), nil
}

func hidden(urlPath string) bool {
	for segment := range strings.SplitSeq(urlPath, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}

	return false
}

// statusWriter records the status and size of a response.
type statusWriter struct {
	http.ResponseWriter

	status int
	bytes  int64
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}

	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)

	return n, err //nolint:wrapcheck
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// accessLog logs one record per request. Level is Info below 400, Warn for 4xx, Error for 5xx.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}

		next.ServeHTTP(sw, r)

		if sw.status == 0 {
			sw.status = http.StatusOK
		}

		attrs := []any{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", sw.status),
			slog.Int64("bytes", sw.bytes),
			slog.Duration("duration", time.Since(start)),
		}

		switch {
		case sw.status >= http.StatusInternalServerError:
			slog.Error("mirror request", attrs...)
		case sw.status >= http.StatusBadRequest:
			slog.Warn("mirror request", attrs...)
		default:
			slog.Info("mirror request", attrs...)
		}
	})
}
