package service

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/user/cinematch/internal/config"
	"github.com/user/cinematch/internal/model"
	"github.com/user/cinematch/internal/utils"
	"golang.org/x/sync/singleflight"
)

// TMDBService TMDB 目录网关
// 传输层错误一律在本层降级为空结果，不向上传播异常
type TMDBService struct {
	client     *utils.JSONClient
	baseURL    string
	group      singleflight.Group
	queryCache *utils.QueryCache[*model.TMDBPage]
}

// NewTMDBService 创建 TMDB 网关
func NewTMDBService(cfg *config.Config) *TMDBService {
	return &TMDBService{
		client:  utils.NewJSONClient(cfg.TMDBToken, 30*time.Second),
		baseURL: cfg.TMDBBaseURL,
		// discover 查询结果缓存：最多 500 组查询，10 分钟有效
		queryCache: utils.NewQueryCache[*model.TMDBPage](500, 10*time.Minute),
	}
}

// FetchPopularPage 获取热门电影的指定分页
// 任何失败都返回 nil（等价于"没有更多电影"），推荐引擎据此终止翻页
func (s *TMDBService) FetchPopularPage(page int) *model.TMDBPage {
	reqURL := fmt.Sprintf("%s/movie/popular?language=en-US&page=%d", s.baseURL, page)

	var result model.TMDBPage
	if err := s.client.GetJSON(reqURL, &result); err != nil {
		log.Printf("[TMDB] 获取热门电影第 %d 页失败: %v", page, err)
		return nil
	}
	return &result
}

// FetchMovieDetails 获取电影详情（原样透传）
// singleflight 合并并发重复请求，结果缓存 5 分钟；失败返回 nil
func (s *TMDBService) FetchMovieDetails(movieID int64) json.RawMessage {
	cacheKey := fmt.Sprintf("tmdb:details:%d", movieID)
	if cached, ok := utils.CacheGet(cacheKey); ok {
		return cached.(json.RawMessage)
	}

	val, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		reqURL := fmt.Sprintf("%s/movie/%d?language=en-US", s.baseURL, movieID)

		var raw json.RawMessage
		if err := s.client.GetJSON(reqURL, &raw); err != nil {
			return nil, err
		}
		utils.CacheSet(cacheKey, raw, 5*time.Minute)
		return raw, nil
	})
	if err != nil {
		log.Printf("[TMDB] 获取电影详情失败 (ID: %d): %v", movieID, err)
		return nil
	}
	return val.(json.RawMessage)
}

// MovieQuery discover 查询参数
type MovieQuery struct {
	IncludeAdult string `form:"include_adult" validate:"omitempty,oneof=true false"`
	IncludeVideo string `form:"include_video" validate:"omitempty,oneof=true false"`
	Language     string `form:"language"`
	Page         string `form:"page" validate:"omitempty,number"`
	SortBy       string `form:"sort_by"`
	WithGenres   string `form:"with_genres"`
}

// FetchMoviesByQuery 按条件查询电影
// 结果进 LRU 缓存；失败返回空页（不报错）
func (s *TMDBService) FetchMoviesByQuery(params MovieQuery) *model.TMDBPage {
	query := url.Values{}
	query.Set("include_adult", defaultString(params.IncludeAdult, "false"))
	query.Set("include_video", defaultString(params.IncludeVideo, "false"))
	query.Set("language", defaultString(params.Language, "en-US"))
	query.Set("page", defaultString(params.Page, "1"))
	query.Set("sort_by", defaultString(params.SortBy, "popularity.desc"))
	if params.WithGenres != "" {
		query.Set("with_genres", params.WithGenres)
	}

	cacheKey := query.Encode()
	if cached, ok := s.queryCache.Get(cacheKey); ok {
		return cached
	}

	reqURL := fmt.Sprintf("%s/discover/movie?%s", s.baseURL, cacheKey)

	var result model.TMDBPage
	if err := s.client.GetJSON(reqURL, &result); err != nil {
		log.Printf("[TMDB] 按条件查询电影失败: %v", err)
		return &model.TMDBPage{Results: []model.TMDBMovie{}}
	}

	s.queryCache.Set(cacheKey, &result)
	return &result
}

// FetchGenres 获取类型列表，缓存 24 小时；失败返回空列表
func (s *TMDBService) FetchGenres() []model.TMDBGenre {
	const cacheKey = "tmdb:genres"
	if cached, ok := utils.CacheGet(cacheKey); ok {
		return cached.([]model.TMDBGenre)
	}

	reqURL := fmt.Sprintf("%s/genre/movie/list?language=en-US", s.baseURL)

	var result struct {
		Genres []model.TMDBGenre `json:"genres"`
	}
	if err := s.client.GetJSON(reqURL, &result); err != nil {
		log.Printf("[TMDB] 获取类型列表失败: %v", err)
		return []model.TMDBGenre{}
	}

	utils.CacheSet(cacheKey, result.Genres, 24*time.Hour)
	return result.Genres
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
