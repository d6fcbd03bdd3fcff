// Package lab 实现"Oficina do Tony"创意实验室
//
// 孩子选择一张图片和一个创意，实验室把图片和提示词发给图片编辑模型，
// 结果在游戏循环中轮询取回。同一时间只允许一个请求，离开场景时取消。
package lab

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel 默认的图片编辑模型
const DefaultModel = "gemini-2.5-flash-image"

// ErrNoAPIKey 没有配置 API 密钥
var ErrNoAPIKey = errors.New("API key not found")

// ImageEditor 图片编辑服务
type ImageEditor interface {
	// Edit 根据提示词编辑图片
	// 返回的图片为 nil 表示模型没有给出图片（不是错误）
	Edit(ctx context.Context, image []byte, mimeType, prompt string) ([]byte, string, error)
}

// GeminiEditor 使用 Gemini 图片模型的编辑服务
type GeminiEditor struct {
	client *genai.Client
	model  string
}

// NewGeminiEditor 创建 Gemini 编辑服务
//
// 参数：
//   - ctx: 创建客户端使用的上下文
//   - apiKey: API 密钥，为空时返回 ErrNoAPIKey
//   - model: 模型名，为空时使用 DefaultModel
func NewGeminiEditor(ctx context.Context, apiKey, model string) (*GeminiEditor, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiEditor{
		client: client,
		model:  model,
	}, nil
}

// Edit 把图片和提示词作为同一条消息发送，返回第一张结果图片
func (e *GeminiEditor) Edit(ctx context.Context, image []byte, mimeType, prompt string) ([]byte, string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.model, contents, nil)
	if err != nil {
		return nil, "", fmt.Errorf("gemini image edit failed: %w", err)
	}

	data, mime := firstImage(resp)
	return data, mime, nil
}

// Name 返回服务名称
func (e *GeminiEditor) Name() string {
	return fmt.Sprintf("genai:%s", e.model)
}

// firstImage 取出第一个候选结果中的第一张图片，MIME 缺省为 image/png
func firstImage(resp *genai.GenerateContentResponse) ([]byte, string) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return nil, ""
	}
	for _, part := range content.Parts {
		if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		mime := part.InlineData.MIMEType
		if mime == "" {
			mime = "image/png"
		}
		return part.InlineData.Data, mime
	}
	return nil, ""
}
