// Package ai implements the insight advisor: a revenue snapshot in, one
// short plain-text business tip out. Every failure path resolves to a
// fallback string so the partner dashboard never sees an error.
package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"washhub/models"
	"washhub/utils"
)

const (
	msgUnavailable    = "AI insights unavailable (missing API key)."
	msgGenerateFailed = "Could not generate insights at this moment."
	msgEmptyFallback  = "Focus on customer satisfaction to drive growth."
)

// NewDefaultInsightService builds the advisor. With an empty apiKey the
// generator is left nil and Advise reports the unavailable state instead
// of failing.
func NewDefaultInsightService(ctx context.Context, apiKey, modelName string) *DefaultInsightService {
	if apiKey == "" {
		utils.GetLogger().Warn("Gemini API key not configured, insight advisor disabled")
		return &DefaultInsightService{}
	}
	gen, err := NewGeminiClient(ctx, apiKey, modelName)
	if err != nil {
		utils.GetLogger().Error("Failed to initialize Gemini client", zap.Error(err))
		return &DefaultInsightService{}
	}
	return &DefaultInsightService{Gen: gen}
}

func (s *DefaultInsightService) Advise(ctx context.Context, stats models.RevenueStats) string {
	if s.Gen == nil {
		return msgUnavailable
	}

	tip, err := s.Gen.GenerateContent(ctx, buildPrompt(stats))
	if err != nil {
		utils.GetLogger().Error("Insight generation failed", zap.Error(err))
		return msgGenerateFailed
	}
	tip = strings.TrimSpace(tip)
	if tip == "" {
		return msgEmptyFallback
	}
	return tip
}

func buildPrompt(stats models.RevenueStats) string {
	return fmt.Sprintf(`You are a business consultant for a car wash in Kerala.
Here is the revenue data for today:
- App Orders (Online): ₹%.0f
- Walk-ins (Offline): ₹%.0f

Compare the two channels. Give me one single, punchy, actionable tip (max 20 words) to improve the lower performing channel.
Do not use markdown. Just plain text.`, stats.TodayApp, stats.TodayWalkIn)
}
