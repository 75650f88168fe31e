package model

// TMDBMovie TMDB 返回的原始电影记录
// 仅在请求内流转，入库前必须经过归一化
type TMDBMovie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	GenreIDs    []int   `json:"genre_ids"`
	PosterPath  *string `json:"poster_path"`
	Overview    string  `json:"overview"`
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date"`
}

// TMDBPage TMDB 分页响应
type TMDBPage struct {
	Page         int         `json:"page"`
	Results      []TMDBMovie `json:"results"`
	TotalPages   int         `json:"total_pages"`
	TotalResults int         `json:"total_results"`
}

// TMDBGenre TMDB 类型条目
type TMDBGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RecommendationPage 推荐结果页
// NextPage 为 nil 表示搜索空间已耗尽，客户端应停止翻页
type RecommendationPage struct {
	Results  []Movie `json:"results"`
	NextPage *int    `json:"nextPage"`
}
