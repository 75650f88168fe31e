package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/user/cinematch/internal/handler"
	"github.com/user/cinematch/internal/middleware"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "CineMatch API"})
	})

	api := r.Group("/api")

	// 认证接口单独限流，防止暴力破解
	auth := api.Group("/auth", middleware.RateLimit(20, 15*time.Minute))
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", middleware.RequireAuth(h.Config.AppSecret), h.Me)
	}

	// 想看清单，全部需要登录
	watchlist := api.Group("/watchlist", middleware.RequireAuth(h.Config.AppSecret))
	{
		watchlist.GET("", h.Watchlist)
		watchlist.POST("", h.AddToWatchlist)
		watchlist.POST("/bulk", h.AddBulkToWatchlist)
		watchlist.DELETE("/:id", h.RemoveFromWatchlist)
	}

	// TMDB 目录代理
	tmdb := api.Group("/tmdb")
	{
		tmdb.GET("/movie/:id", h.MovieDetails)
		tmdb.GET("/movies", h.MoviesByQuery)
		tmdb.GET("/genres", h.MovieGenres)
	}

	// 推荐接口，登录与否都可访问
	api.GET("/recommendations", middleware.OptionalAuth(h.Config.AppSecret), h.Recommendations)

	// LLM 补全代理
	openai := api.Group("/openai", middleware.RequireAuth(h.Config.AppSecret))
	{
		openai.POST("/responses", h.CreateCompletion)
		openai.GET("/responses/:id", h.GetCompletion)
	}
}
