package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter throttles a route per client over fixed windows. The window
// bucket is baked into the redis key, so the TTL only cleans up stale
// buckets and never decides correctness. A nil or unreachable redis fails
// open: throttling is protection for the auth endpoints, not a dependency
// of them.
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
	}
}

func (rl *RateLimiter) Throttle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.client == nil {
			c.Next()
			return
		}

		windowSecs := int64(rl.window.Seconds())
		bucket := time.Now().Unix() / windowSecs
		key := fmt.Sprintf("throttle:%s:%s:%d", c.FullPath(), rl.clientKey(c), bucket)

		ctx := c.Request.Context()
		pipe := rl.client.Pipeline()
		count := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, rl.window)
		if _, err := pipe.Exec(ctx); err != nil {
			c.Next()
			return
		}

		if count.Val() > rl.limit {
			retryAfter := windowSecs - time.Now().Unix()%windowSecs
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, slow down"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) clientKey(c *gin.Context) string {
	if userID := c.GetString("user_id"); userID != "" {
		return userID
	}
	return c.ClientIP()
}
