package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheEntry holds a previously generated response. Bodies are kept as raw
// bytes so binary artifacts (PDF, DOCX) replay byte-identically.
type CacheEntry struct {
	Status      int
	ContentType string
	Disposition string
	Body        []byte
	ExpiresAt   time.Time
}

// ResponseCache replays responses for repeated identical request bodies.
type ResponseCache struct {
	cache map[string]*CacheEntry
	mu    sync.RWMutex
	ttl   time.Duration
}

// NewResponseCache creates a new response cache
func NewResponseCache(ttl time.Duration) *ResponseCache {
	rc := &ResponseCache{
		cache: make(map[string]*CacheEntry),
		ttl:   ttl,
	}

	// Clean up expired entries every 5 minutes
	go rc.cleanup()

	return rc
}

// Cache middleware for caching generated artifacts. The key is a digest of
// path and body, so identical input text yields the identical artifact.
func (rc *ResponseCache) Cache() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Next()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		key := rc.generateKey(c.Request.URL.Path, body)

		rc.mu.RLock()
		entry, exists := rc.cache[key]
		rc.mu.RUnlock()

		if exists && time.Now().Before(entry.ExpiresAt) {
			if entry.Disposition != "" {
				c.Header("Content-Disposition", entry.Disposition)
			}
			c.Data(entry.Status, entry.ContentType, entry.Body)
			c.Abort()
			return
		}

		writer := &responseWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		if writer.Status() == http.StatusOK && len(writer.body) > 0 {
			rc.mu.Lock()
			rc.cache[key] = &CacheEntry{
				Status:      writer.Status(),
				ContentType: writer.Header().Get("Content-Type"),
				Disposition: writer.Header().Get("Content-Disposition"),
				Body:        append([]byte(nil), writer.body...),
				ExpiresAt:   time.Now().Add(rc.ttl),
			}
			rc.mu.Unlock()
		}
	}
}

// generateKey builds a digest of the request path and body
func (rc *ResponseCache) generateKey(path string, body []byte) string {
	h := md5.New()
	io.WriteString(h, path)
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// cleanup removes expired cache entries
func (rc *ResponseCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	for range ticker.C {
		rc.mu.Lock()
		now := time.Now()
		for key, entry := range rc.cache {
			if now.After(entry.ExpiresAt) {
				delete(rc.cache, key)
			}
		}
		rc.mu.Unlock()
	}
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body []byte
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body = append(w.body, s...)
	return w.ResponseWriter.WriteString(s)
}
