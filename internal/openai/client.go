package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"

	"github.com/nattakit-w/shop-recommender-backend/internal/config"
	"github.com/nattakit-w/shop-recommender-backend/internal/recommendation"
)

// ErrUnavailable is returned for every failed model call: transport errors,
// rejected credentials and unparseable replies all collapse into it. A valid
// reply with zero usable recommendations is not an error.
var ErrUnavailable = errors.New("recommendation service unavailable")

const systemPrompt = `You are an AI assistant functioning as a recommendation system for an ecommerce website. Be specific and limit your answers to the requested format. Keep your answers short and concise.
Your Task: วิเคราะห์ความสนใจของลูกค้าและแนะนำสินค้าที่เหมาะสม
หมวดหมู่ที่มี: Sports & Fitness, Photography, Cooking

ตอบในรูปแบบ JSON ดังนี้:
{
    "recommendations": [
        {
            "category": "ชื่อหมวดหมู่ตามที่กำหนด",
            "reason": "เหตุผลที่แนะนำ",
            "confidence": 0.8
        }
    ]
}`

// Client is a verified handle to the chat-completions API. It is bound to
// one session's credential and performs no retries; each call is a single
// attempt.
type Client struct {
	http        *resty.Client
	model       string
	verifyModel string
}

// NewClient builds a client for the given credential and confirms it with
// one minimal completion request. On any failure the handle is discarded.
func NewClient(cfg config.OpenAIConfig, apiKey string) (*Client, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Content-Type", "application/json")

	c := &Client{
		http:        httpClient,
		model:       cfg.Model,
		verifyModel: cfg.VerifyModel,
	}

	log.Infof("testing API connection for key %s", maskKey(apiKey))
	if err := c.verify(context.Background()); err != nil {
		return nil, err
	}
	log.Info("API connection test successful")
	return c, nil
}

// verify performs a tiny completion round-trip to confirm the credential is
// accepted before the handle is handed out.
func (c *Client) verify(ctx context.Context) error {
	maxTokens := 5
	req := chatCompletionRequest{
		Model: c.verifyModel,
		Messages: []chatCompletionMessage{
			{Role: "user", Content: "Test connection"},
		},
		MaxTokens: &maxTokens,
	}

	_, err := c.complete(ctx, req)
	return err
}

// Recommend classifies the interest into product categories. It issues one
// chat-completion request in JSON mode and parses the reply; a reply that is
// not JSON or lacks the recommendations field fails as a whole, never as a
// partial list.
func (c *Client) Recommend(ctx context.Context, interest string) ([]recommendation.CategoryRecommendation, error) {
	req := chatCompletionRequest{
		Model: c.model,
		Messages: []chatCompletionMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "ลูกค้าสนใจ: " + interest},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	content, err := c.complete(ctx, req)
	if err != nil {
		return nil, err
	}

	var reply struct {
		Recommendations *[]recommendation.CategoryRecommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(content), &reply); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON reply: %v", ErrUnavailable, err)
	}
	if reply.Recommendations == nil {
		return nil, fmt.Errorf("%w: reply is missing recommendations", ErrUnavailable)
	}

	log.Infof("received %d category recommendations", len(*reply.Recommendations))
	return *reply.Recommendations, nil
}

// complete sends one chat-completion request and returns the first choice's
// message content.
func (c *Client) complete(ctx context.Context, req chatCompletionRequest) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: HTTP %d %s", ErrUnavailable, resp.StatusCode(), resp.Status())
	}

	var body chatCompletionResponse
	if err := json.Unmarshal([]byte(resp.String()), &body); err != nil {
		return "", fmt.Errorf("%w: invalid response body: %v", ErrUnavailable, err)
	}
	if len(body.Choices) == 0 {
		return "", fmt.Errorf("%w: response has no choices", ErrUnavailable)
	}
	return body.Choices[0].Message.Content, nil
}

// maskKey keeps only the key prefix and last characters for log output.
func maskKey(key string) string {
	if len(key) < 8 {
		return "***"
	}
	return key[:3] + strings.Repeat("*", 4) + key[len(key)-4:]
}
