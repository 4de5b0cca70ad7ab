package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"giglance/pkg/logger"
)

// FallbackGiftNote is returned whenever generation fails. A failed or
// missing generator never blocks checkout.
const FallbackGiftNote = "Enjoy your new items!"

// GiftNoteService generates a short gift-note string for a set of
// purchased items.
type GiftNoteService interface {
	Generate(ctx context.Context, itemNames []string, recipientName string) string
}

// GeminiGiftNoteService calls the Gemini generateContent REST API.
type GeminiGiftNoteService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiGiftNoteService(apiKey, model string) *GeminiGiftNoteService {
	return &GeminiGiftNoteService{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (s *GeminiGiftNoteService) Generate(ctx context.Context, itemNames []string, recipientName string) string {
	if s.apiKey == "" {
		logger.Warn("Gemini API key missing, gift note generation disabled")
		return ""
	}

	prompt := fmt.Sprintf(
		"Write a short, warm, and sophisticated gift note (max 30 words) for a package containing: %s. The recipient's name is %s. Do not include quotes.",
		strings.Join(itemNames, ", "), recipientName,
	)

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return FallbackGiftNote
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logger.Error("Failed to build gift note request: %v", err)
		return FallbackGiftNote
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.Error("Gift note generation failed: %v", err)
		return FallbackGiftNote
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode != http.StatusOK {
		logger.Error("Gift note generation returned status %d", resp.StatusCode)
		return FallbackGiftNote
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		logger.Error("Failed to parse gift note response: %v", err)
		return FallbackGiftNote
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return FallbackGiftNote
	}

	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
}
