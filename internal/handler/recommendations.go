package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/cinematch/internal/middleware"
	"github.com/user/cinematch/internal/utils"
)

// Recommendations 推荐接口
// 未登录时返回未过滤的热门电影；登录后剔除已收录条目
// 响应固定为 {results, nextPage}，失败时只返回通用错误
func (h *Handler) Recommendations(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	userID := middleware.GetUserID(c)
	if userID == 0 {
		rec, err := h.Recommender.GuestRecommendations(page)
		if err != nil {
			log.Printf("[Recommend] 游客推荐失败: %v", err)
			utils.InternalServerError(c, "")
			return
		}
		c.JSON(http.StatusOK, rec)
		return
	}

	rec, err := h.Recommender.UserRecommendations(userID, page)
	if err != nil {
		log.Printf("[Recommend] 用户推荐失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}
	c.JSON(http.StatusOK, rec)
}
