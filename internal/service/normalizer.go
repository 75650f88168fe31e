package service

import (
	"github.com/lib/pq"

	"github.com/user/cinematch/internal/model"
)

// Normalizer 把 TMDB 原始记录归一化为内部电影表示
type Normalizer struct {
	genres       GenreTable
	imageBaseURL string
}

// NewNormalizer 创建归一化器
// imageBaseURL 为海报 CDN 前缀，如 https://image.tmdb.org/t/p/w500
func NewNormalizer(genres GenreTable, imageBaseURL string) *Normalizer {
	return &Normalizer{
		genres:       genres,
		imageBaseURL: imageBaseURL,
	}
}

// Normalize 单条归一化
// 除 ID 和标题外所有字段都可能缺失，缺失时填零值，不报错
func (n *Normalizer) Normalize(raw model.TMDBMovie) model.Movie {
	var posterURL *string
	if raw.PosterPath != nil && *raw.PosterPath != "" {
		url := n.imageBaseURL + *raw.PosterPath
		posterURL = &url
	}

	return model.Movie{
		TMDBID:      raw.ID,
		Title:       raw.Title,
		Genres:      pq.StringArray(n.genres.IDsToNames(raw.GenreIDs)),
		PosterURL:   posterURL,
		Description: raw.Overview,
		Rating:      raw.VoteAverage,
		ReleaseDate: raw.ReleaseDate,
	}
}

// NormalizeAll 批量归一化，输入为 nil 时返回空切片（防御上游畸形响应）
func (n *Normalizer) NormalizeAll(raws []model.TMDBMovie) []model.Movie {
	movies := make([]model.Movie, 0, len(raws))
	for _, raw := range raws {
		movies = append(movies, n.Normalize(raw))
	}
	return movies
}
