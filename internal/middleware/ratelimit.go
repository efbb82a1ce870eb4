package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimit returns a middleware enforcing a fixed-window per-IP limit backed
// by Redis. keyspace separates independent limiters (general API vs the
// stricter auth window). Health checks and requests without a resolvable IP
// pass through, as does any request when Redis itself errors: the limiter
// degrades open rather than taking the API down with it.
func RateLimit(rdb *redis.Client, keyspace string, max int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		bucket := time.Now().Unix() / int64(window.Seconds())
		key := fmt.Sprintf("kode:rate_limit:%s:%s:%d", keyspace, ip, bucket)

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.PExpire(ctx, key, window+time.Second)
		}

		if count > int64(max) {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests from this IP, please try again later.",
			})
			return
		}

		c.Next()
	}
}
