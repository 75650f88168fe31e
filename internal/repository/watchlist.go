package repository

import (
	"time"

	"github.com/user/cinematch/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WatchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// AddMovie 添加电影到想看清单
// 事务内先 upsert 电影缓存，再插入清单条目；
// (user_id, movie_id) 已存在时返回 gorm.ErrDuplicatedKey
func (r *WatchlistRepository) AddMovie(userID int, movie *model.Movie) (*model.WatchlistEntry, error) {
	var entry *model.WatchlistEntry
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := upsertMovie(tx, movie); err != nil {
			return err
		}

		entry = &model.WatchlistEntry{
			UserID:    userID,
			MovieID:   movie.ID,
			CreatedAt: time.Now(),
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// AddMovies 批量添加，已存在的条目跳过，返回实际新增数量
func (r *WatchlistRepository) AddMovies(userID int, movies []model.Movie) (int, error) {
	var added int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		entries := make([]model.WatchlistEntry, 0, len(movies))
		for i := range movies {
			if err := upsertMovie(tx, &movies[i]); err != nil {
				return err
			}
			entries = append(entries, model.WatchlistEntry{
				UserID:    userID,
				MovieID:   movies[i].ID,
				CreatedAt: time.Now(),
			})
		}

		if len(entries) == 0 {
			return nil
		}

		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entries)
		added = result.RowsAffected
		return result.Error
	})
	return int(added), err
}

// Remove 按 TMDB ID 从清单中移除，条目不存在时返回 false
func (r *WatchlistRepository) Remove(userID int, tmdbID int64) (bool, error) {
	result := r.db.
		Where("user_id = ? AND movie_id IN (?)",
			userID,
			r.db.Model(&model.Movie{}).Select("id").Where("tmdb_id = ?", tmdbID),
		).
		Delete(&model.WatchlistEntry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListByUser 获取用户想看清单（按添加时间倒序，附带电影信息）
func (r *WatchlistRepository) ListByUser(userID, limit, offset int) ([]*model.WatchlistEntry, error) {
	var entries []*model.WatchlistEntry
	err := r.db.Preload("Movie").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	return entries, err
}

// CountByUser 统计用户清单数量
func (r *WatchlistRepository) CountByUser(userID int) (int, error) {
	var count int64
	err := r.db.Model(&model.WatchlistEntry{}).Where("user_id = ?", userID).Count(&count).Error
	return int(count), err
}

// TMDBIDsByUser 获取用户已收录电影的 TMDB ID 集合（推荐过滤用排除集）
func (r *WatchlistRepository) TMDBIDsByUser(userID int) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&model.WatchlistEntry{}).
		Joins("JOIN movies ON movies.id = watchlist_entries.movie_id").
		Where("watchlist_entries.user_id = ?", userID).
		Pluck("movies.tmdb_id", &ids).Error
	return ids, err
}
