package handler

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/user/cinematch/internal/config"
	"github.com/user/cinematch/internal/middleware"
	"github.com/user/cinematch/internal/model"
	"github.com/user/cinematch/internal/repository"
	"github.com/user/cinematch/internal/service"
)

// Handler HTTP 处理器
type Handler struct {
	Repos       *repository.Repositories
	Config      *config.Config
	TMDB        *service.TMDBService
	Recommender *service.RecommendationService
	OpenAI      *service.OpenAIService

	validate *validator.Validate
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	// 类型映射表与归一化器由组装方持有，避免隐藏的全局状态
	normalizer := service.NewNormalizer(service.NewGenreTable(), cfg.ImageBaseURL)

	// TMDB 目录网关
	tmdb := service.NewTMDBService(cfg)

	// 推荐引擎
	recommender := service.NewRecommendationService(tmdb, repos.Watchlist, normalizer, cfg)

	return &Handler{
		Repos:       repos,
		Config:      cfg,
		TMDB:        tmdb,
		Recommender: recommender,
		OpenAI:      service.NewOpenAIService(cfg),
		validate:    validator.New(),
	}
}

// generateToken 生成 JWT
func (h *Handler) generateToken(user *model.User) (string, error) {
	claims := &middleware.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(h.Config.JWTExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.Config.AppSecret))
}

// setAuthState 写入认证 Cookie 并把用户信息存入 Session
func (h *Handler) setAuthState(c *gin.Context, user *model.User, token string) {
	c.SetCookie(middleware.AuthCookieName, token, int(h.Config.JWTExpiry.Seconds()), "/", "", false, true)

	session := sessions.Default(c)
	session.Set("userinfo", model.SessionUser{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	})
	session.Save()
}

// clearAuthState 清除认证 Cookie 与 Session
func (h *Handler) clearAuthState(c *gin.Context) {
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)

	session := sessions.Default(c)
	session.Clear()
	session.Save()
}
