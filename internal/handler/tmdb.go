package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/cinematch/internal/service"
	"github.com/user/cinematch/internal/utils"
)

// MovieDetails 电影详情（透传 TMDB 响应）
func (h *Handler) MovieDetails(c *gin.Context) {
	movieID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequest(c, "无效的电影 ID")
		return
	}

	details := h.TMDB.FetchMovieDetails(movieID)
	if details == nil {
		utils.NotFound(c, "电影不存在")
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", details)
}

// MoviesByQuery 按条件查询电影
func (h *Handler) MoviesByQuery(c *gin.Context) {
	var query service.MovieQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequest(c, "请求参数无效")
		return
	}
	if err := h.validate.Struct(query); err != nil {
		utils.BadRequest(c, "请求参数无效")
		return
	}

	c.JSON(http.StatusOK, h.TMDB.FetchMoviesByQuery(query))
}

// MovieGenres 类型列表
func (h *Handler) MovieGenres(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"genres": h.TMDB.FetchGenres()})
}
