package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"taskapp/internal/core/telemetry"
)

// TaskCache keeps recent task listings per principal. Writes through the
// same routes drop the owner's entry, so a listing never shows a task the
// owner just completed.
type TaskCache struct {
	cache   *cache.Cache
	ttl     time.Duration
	logger  zerolog.Logger
	metrics *telemetry.AppMetrics
}

type cachedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func NewTaskCache(ttl time.Duration, logger zerolog.Logger, metrics *telemetry.AppMetrics) *TaskCache {
	return &TaskCache{
		cache:   cache.New(ttl, 2*ttl),
		ttl:     ttl,
		logger:  logger,
		metrics: metrics,
	}
}

func (tc *TaskCache) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := Principal(c)

		if !ok {
			c.Next()
			return
		}

		key := fmt.Sprintf("tasks:%d", principal.ID)

		if c.Request.Method != http.MethodGet {
			c.Next()

			if c.Writer.Status() < http.StatusBadRequest {
				tc.cache.Delete(key)
			}

			return
		}

		path := c.FullPath()

		if value, found := tc.cache.Get(key); found {
			cached := value.(cachedResponse)

			if tc.metrics != nil {
				tc.metrics.RecordCacheHit(c.Request.Context(), path)
			}

			tc.logger.Debug().Str("key", key).Msg("cache hit")

			c.Data(cached.StatusCode, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		if tc.metrics != nil {
			tc.metrics.RecordCacheMiss(c.Request.Context(), path)
		}

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		if writer.Status() == http.StatusOK {
			tc.cache.Set(key, cachedResponse{
				StatusCode:  writer.Status(),
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.body.Bytes(),
			}, tc.ttl)
		}
	}
}
