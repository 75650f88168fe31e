package repository

import (
	"time"

	"github.com/user/cinematch/internal/model"
	"gorm.io/gorm"
)

// upsertMovie 创建或更新电影缓存，tmdb_id 冲突时覆盖旧数据并回填内部 ID
// 供清单事务复用，始终在调用方的事务内执行
func upsertMovie(tx *gorm.DB, movie *model.Movie) error {
	var id int
	err := tx.Raw(`
		INSERT INTO movies (tmdb_id, title, genres, poster_url, description, rating, release_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (tmdb_id) DO UPDATE SET
			title = EXCLUDED.title,
			genres = EXCLUDED.genres,
			poster_url = EXCLUDED.poster_url,
			description = EXCLUDED.description,
			rating = EXCLUDED.rating,
			release_date = EXCLUDED.release_date,
			updated_at = EXCLUDED.updated_at
		RETURNING id
	`, movie.TMDBID, movie.Title, movie.Genres, movie.PosterURL,
		movie.Description, movie.Rating, movie.ReleaseDate, time.Now()).
		Scan(&id).Error
	if err != nil {
		return err
	}
	movie.ID = id
	return nil
}
