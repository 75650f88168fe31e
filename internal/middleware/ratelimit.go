package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/user/cinematch/internal/utils"
)

// RateLimit 固定窗口限流中间件
// 以哈希后的客户端 IP 计数，窗口内超过 max 次返回 429
func RateLimit(max int, window time.Duration) gin.HandlerFunc {
	counters := cache.New(window, 2*window)

	return func(c *gin.Context) {
		key := utils.HashIP(c.ClientIP())

		// Add 仅在键不存在时写入；已存在则累加
		if err := counters.Add(key, 1, window); err != nil {
			count, incErr := counters.IncrementInt(key, 1)
			if incErr == nil && count > max {
				c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
