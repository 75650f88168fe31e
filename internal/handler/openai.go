package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/cinematch/internal/utils"
)

// completionRequest 补全请求
type completionRequest struct {
	Input              string `json:"input" binding:"required"`
	Instructions       string `json:"instructions"`
	PreviousResponseID string `json:"previous_response_id"`
}

// CreateCompletion 创建一次 LLM 补全（透传上游响应）
func (h *Handler) CreateCompletion(c *gin.Context) {
	var req completionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求参数无效")
		return
	}

	raw, err := h.OpenAI.CreateResponse(req.Input, req.Instructions, req.PreviousResponseID)
	if err != nil {
		log.Printf("[OpenAI] 创建补全失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// GetCompletion 查询历史补全
func (h *Handler) GetCompletion(c *gin.Context) {
	responseID := c.Param("id")
	if responseID == "" {
		utils.BadRequest(c, "无效的响应 ID")
		return
	}

	raw, err := h.OpenAI.RetrieveResponse(responseID)
	if err != nil {
		log.Printf("[OpenAI] 查询补全失败: %v", err)
		utils.InternalServerError(c, "")
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}
