package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config 应用配置
type Config struct {
	Env           string
	AppSecret     string
	DatabaseURL   string
	JWTExpiry     time.Duration
	Port          string
	TMDBToken     string
	TMDBBaseURL   string
	ImageBaseURL  string
	OpenAIKey     string
	OpenAIBaseURL string
	CORSOrigins   []string

	// 推荐策略参数（与 TMDB 原生分页对齐，可通过环境变量调整）
	RecPageSize       int // 单页推荐返回的电影数量
	RecLookaheadPages int // 单次请求最多向后翻查的上游页数
}

// Load 加载配置
func Load() *Config {
	expiryHours, _ := strconv.Atoi(getEnv("JWT_EXPIRY_HOURS", "24"))

	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", "cinematch")
	dbSSL := getEnv("DB_SSLMODE", "disable")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)

	appSecret := getEnv("APP_SECRET", getEnv("JWT_SECRET", "your-secret-key-change-in-production"))

	if getEnv("APP_ENV", "development") == "production" && appSecret == "your-secret-key-change-in-production" {
		fmt.Println("【严重警告】生产环境正在使用默认密钥！请立即设置 APP_SECRET 环境变量。")
	}

	corsOrigins := []string{"http://localhost:5173"}
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		corsOrigins = corsOrigins[:0]
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				corsOrigins = append(corsOrigins, origin)
			}
		}
	}

	pageSize, _ := strconv.Atoi(getEnv("REC_PAGE_SIZE", "20"))
	if pageSize <= 0 {
		pageSize = 20
	}
	lookahead, _ := strconv.Atoi(getEnv("REC_LOOKAHEAD_PAGES", "10"))
	if lookahead <= 0 {
		lookahead = 10
	}

	return &Config{
		Env:               getEnv("APP_ENV", "development"),
		AppSecret:         appSecret,
		DatabaseURL:       dbURL,
		JWTExpiry:         time.Duration(expiryHours) * time.Hour,
		Port:              getEnv("PORT", "3000"),
		TMDBToken:         getEnv("TMDB_BEARER_TOKEN", ""),
		TMDBBaseURL:       getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		ImageBaseURL:      getEnv("TMDB_IMAGE_BASE_URL", "https://image.tmdb.org/t/p/w500"),
		OpenAIKey:         getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		CORSOrigins:       corsOrigins,
		RecPageSize:       pageSize,
		RecLookaheadPages: lookahead,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
