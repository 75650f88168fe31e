package service

import (
	"fmt"
	"log"

	"github.com/user/cinematch/internal/config"
	"github.com/user/cinematch/internal/model"
)

// PopularPageFetcher 推荐引擎消费的目录网关操作
// 失败时返回 nil，引擎将其等同于"没有更多电影"
type PopularPageFetcher interface {
	FetchPopularPage(page int) *model.TMDBPage
}

// ExclusionSource 排除集来源：用户已收录电影的 TMDB ID 集合
// 这里的错误会导致整个推荐请求失败（缺少可信排除集的结果会误导用户）
type ExclusionSource interface {
	TMDBIDsByUser(userID int) ([]int64, error)
}

// RecommendationService 推荐引擎
// 每次调用都是独立的同步流水线，调用之间不保留任何中间状态
type RecommendationService struct {
	catalog    PopularPageFetcher
	watchlist  ExclusionSource
	normalizer *Normalizer
	pageSize   int // 单页推荐数量，与 TMDB 原生分页一致
	lookahead  int // 向后翻查的上游页数上限，防止重度用户触发无界扇出
}

// NewRecommendationService 创建推荐引擎
func NewRecommendationService(catalog PopularPageFetcher, watchlist ExclusionSource, normalizer *Normalizer, cfg *config.Config) *RecommendationService {
	return &RecommendationService{
		catalog:    catalog,
		watchlist:  watchlist,
		normalizer: normalizer,
		pageSize:   cfg.RecPageSize,
		lookahead:  cfg.RecLookaheadPages,
	}
}

// GuestRecommendations 游客推荐：不过滤，只取请求页
// 永远只发起一次上游调用
func (s *RecommendationService) GuestRecommendations(page int) (*model.RecommendationPage, error) {
	fetch := s.catalog.FetchPopularPage(page)
	if fetch == nil {
		return &model.RecommendationPage{Results: []model.Movie{}}, nil
	}

	var next *int
	if fetch.Page < fetch.TotalPages {
		p := fetch.Page + 1
		next = &p
	}

	return &model.RecommendationPage{
		Results:  s.normalizer.NormalizeAll(fetch.Results),
		NextPage: next,
	}, nil
}

// UserRecommendations 用户推荐：逐页抓取热门电影并剔除已收录条目
//
// 排除集在循环前一次性取出，循环期间不再刷新——结果反映调用时刻的快照。
// 翻页严格递增，最多扫描 lookahead 页；上游断流立即收尾并返回已收集部分。
// NextPage 仅在凑满整页时给出，指向第一个未抓取的页号。
func (s *RecommendationService) UserRecommendations(userID, startPage int) (*model.RecommendationPage, error) {
	log.Printf("[Recommend] 用户 %d 从第 %d 页开始获取推荐", userID, startPage)

	// 1. 获取排除集
	ids, err := s.watchlist.TMDBIDsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("获取用户清单失败: %w", err)
	}
	excluded := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		excluded[id] = struct{}{}
	}

	// 2. 逐页抓取并过滤
	collected := make([]model.TMDBMovie, 0, s.pageSize)
	currentPage := startPage
	maxPage := startPage + s.lookahead

	for len(collected) < s.pageSize && currentPage < maxPage {
		fetch := s.catalog.FetchPopularPage(currentPage)
		if fetch == nil || len(fetch.Results) == 0 {
			break
		}

		for _, movie := range fetch.Results {
			if _, ok := excluded[movie.ID]; !ok {
				collected = append(collected, movie)
			}
		}
		currentPage++
	}

	// 3. 截断到单页数量并归一化
	hitLimit := len(collected) >= s.pageSize
	if hitLimit {
		collected = collected[:s.pageSize]
	}
	results := s.normalizer.NormalizeAll(collected)

	var next *int
	if hitLimit {
		p := currentPage
		next = &p
	}

	log.Printf("[Recommend] 返回 %d 部推荐电影", len(results))
	return &model.RecommendationPage{Results: results, NextPage: next}, nil
}
