package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/user/cinematch/internal/config"
	"github.com/user/cinematch/internal/utils"
)

// OpenAIService OpenAI Responses API 中继
// 无状态透传：不解析模型输出，原样返回上游 JSON
type OpenAIService struct {
	client  *utils.JSONClient
	baseURL string
	model   string
}

// NewOpenAIService 创建 OpenAI 中继
func NewOpenAIService(cfg *config.Config) *OpenAIService {
	return &OpenAIService{
		// LLM 生成内容较慢，超时放宽到 60 秒
		client:  utils.NewJSONClient(cfg.OpenAIKey, 60*time.Second),
		baseURL: cfg.OpenAIBaseURL,
		model:   "gpt-4o",
	}
}

// openaiRequest Responses API 请求结构
type openaiRequest struct {
	Model              string `json:"model"`
	Input              string `json:"input"`
	Instructions       string `json:"instructions,omitempty"`
	PreviousResponseID string `json:"previous_response_id,omitempty"`
}

// CreateResponse 创建一次补全
// instructions 与 previousResponseID 可为空，空值不出现在请求体中
func (s *OpenAIService) CreateResponse(input, instructions, previousResponseID string) (json.RawMessage, error) {
	reqBody := openaiRequest{
		Model:              s.model,
		Input:              input,
		Instructions:       instructions,
		PreviousResponseID: previousResponseID,
	}

	var raw json.RawMessage
	if err := s.client.PostJSON(s.baseURL+"/responses", reqBody, &raw); err != nil {
		return nil, fmt.Errorf("openai 请求失败: %w", err)
	}
	return raw, nil
}

// RetrieveResponse 按 ID 查询历史补全
func (s *OpenAIService) RetrieveResponse(responseID string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := s.client.GetJSON(s.baseURL+"/responses/"+responseID, &raw); err != nil {
		return nil, fmt.Errorf("openai 查询失败: %w", err)
	}
	return raw, nil
}
