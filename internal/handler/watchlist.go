package handler

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/user/cinematch/internal/middleware"
	"github.com/user/cinematch/internal/model"
	"github.com/user/cinematch/internal/utils"
	"gorm.io/gorm"
)

// movieInput 客户端提交的电影（id 为 TMDB ID）
type movieInput struct {
	ID          int64    `json:"id" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	PosterURL   *string  `json:"posterUrl"`
	Genres      []string `json:"genres"`
	Description string   `json:"description"`
	Rating      float64  `json:"ratings"`
	ReleaseDate string   `json:"releaseDate"`
}

func (in movieInput) toModel() model.Movie {
	genres := in.Genres
	if genres == nil {
		genres = []string{}
	}
	return model.Movie{
		TMDBID:      in.ID,
		Title:       in.Title,
		PosterURL:   in.PosterURL,
		Genres:      pq.StringArray(genres),
		Description: in.Description,
		Rating:      in.Rating,
		ReleaseDate: in.ReleaseDate,
	}
}

// Watchlist 获取想看清单
func (h *Handler) Watchlist(c *gin.Context) {
	userID := middleware.GetUserID(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.Repos.Watchlist.ListByUser(userID, limit, offset)
	if err != nil {
		log.Printf("[Watchlist] 查询清单失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	total, err := h.Repos.Watchlist.CountByUser(userID)
	if err != nil {
		log.Printf("[Watchlist] 统计清单失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.Success(c, gin.H{"watchlist": entries, "total": total})
}

// AddToWatchlist 添加单部电影到想看清单
func (h *Handler) AddToWatchlist(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req struct {
		Movie movieInput `json:"movie" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数无效")
		return
	}

	movie := req.Movie.toModel()
	entry, err := h.Repos.Watchlist.AddMovie(userID, &movie)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Conflict(c, "电影已在清单中")
			return
		}
		log.Printf("[Watchlist] 添加失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	entry.Movie = &movie

	utils.SuccessWithMessage(c, "已加入清单", gin.H{"watchlistItem": entry})
}

// AddBulkToWatchlist 批量添加，已有条目自动跳过
func (h *Handler) AddBulkToWatchlist(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req struct {
		Movies []movieInput `json:"movies" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数无效")
		return
	}

	movies := make([]model.Movie, 0, len(req.Movies))
	for _, in := range req.Movies {
		movies = append(movies, in.toModel())
	}

	count, err := h.Repos.Watchlist.AddMovies(userID, movies)
	if err != nil {
		log.Printf("[Watchlist] 批量添加失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	utils.SuccessWithMessage(c, "批量添加完成", gin.H{"added": count})
}

// RemoveFromWatchlist 从想看清单移除（路径参数为 TMDB ID）
func (h *Handler) RemoveFromWatchlist(c *gin.Context) {
	userID := middleware.GetUserID(c)

	tmdbID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "无效的电影 ID")
		return
	}

	removed, err := h.Repos.Watchlist.Remove(userID, tmdbID)
	if err != nil {
		log.Printf("[Watchlist] 移除失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	if !removed {
		utils.NotFound(c, "清单条目不存在")
		return
	}

	utils.SuccessWithMessage(c, "已从清单移除", nil)
}
