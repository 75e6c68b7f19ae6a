package ai

import (
	"context"

	"washhub/models"
)

// Generator abstracts the text-generation backend so the advisor can be
// exercised without a live Gemini credential.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// InsightService turns a revenue snapshot into one short recommendation.
type InsightService interface {
	// Advise always returns a non-empty string: a generated tip, a static
	// fallback on generation failure, or an explicit unavailable message
	// when no credential is configured. It never returns an error.
	Advise(ctx context.Context, stats models.RevenueStats) string
}

// DefaultInsightService implements InsightService. A nil Gen means no
// credential was configured.
type DefaultInsightService struct {
	Gen Generator
}
