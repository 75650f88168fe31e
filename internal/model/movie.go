package model

import (
	"time"

	"github.com/lib/pq"
)

// Movie 电影模型（系统内部统一表示）
// TMDBID 在全系统范围内唯一标识一部电影，入库走 upsert
// Genres 对应 Postgres text[] 列，pq.StringArray 负责扫描与写入
type Movie struct {
	ID          int            `json:"id" db:"id"`
	TMDBID      int64          `json:"tmdb_id" db:"tmdb_id" gorm:"unique"`
	Title       string         `json:"title" db:"title"`
	Genres      pq.StringArray `json:"genres" db:"genres" gorm:"type:text[]"`
	PosterURL   *string        `json:"poster_url" db:"poster_url"`
	Description string         `json:"description" db:"description"`
	Rating      float64        `json:"rating" db:"rating"`
	ReleaseDate string         `json:"release_date" db:"release_date"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at" gorm:"index"`
}

// WatchlistEntry 想看清单条目
// (user_id, movie_id) 唯一，重复添加视为冲突
type WatchlistEntry struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id" gorm:"uniqueIndex:idx_watchlist_user_movie"`
	MovieID   int       `json:"movie_id" db:"movie_id" gorm:"uniqueIndex:idx_watchlist_user_movie"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Movie     *Movie    `json:"movie,omitempty"` // 关联查询时填充
}
