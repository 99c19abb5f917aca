// Package ats scores a resume against a job description. Unlike the
// interview evaluation flow, a response without a parseable score is a hard
// failure here: there is no session to keep alive and a made-up score would
// be worse than an error.
package ats

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hirehub/assessment/internal/llm"
	"hirehub/assessment/internal/models"
	"hirehub/assessment/internal/parser"
	"hirehub/assessment/internal/prompts"
)

type Scorer struct {
	provider      llm.Provider
	promptManager prompts.PromptProvider
	logger        *zap.Logger
}

func NewScorer(provider llm.Provider, promptManager prompts.PromptProvider, logger *zap.Logger) *Scorer {
	return &Scorer{
		provider:      provider,
		promptManager: promptManager,
		logger:        logger,
	}
}

// Score evaluates the resume with one upstream call and extracts the score,
// matched keywords and feedback text.
func (s *Scorer) Score(ctx context.Context, resumeText, jobDescription string) (*models.ResumeScoreResponse, error) {
	prompt, err := s.promptManager.BuildPrompt("resume_score", prompts.DefaultVariant, map[string]string{
		"ResumeText":     resumeText,
		"JobDescription": jobDescription,
	})
	if err != nil {
		return nil, err
	}

	text, err := s.provider.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	score, err := parser.ExtractScoreStrict(text)
	if err != nil {
		s.logger.Warn("resume evaluation missing score line")
		return nil, fmt.Errorf("resume evaluation unusable: %w", err)
	}

	return &models.ResumeScoreResponse{
		ATSScore:        score,
		KeywordsMatched: parser.ExtractKeywords(text),
		Feedback:        text,
	}, nil
}
