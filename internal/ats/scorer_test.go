package ats

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"hirehub/assessment/internal/prompts"
)

type fakeProvider struct {
	text string
	err  error
}

func (p *fakeProvider) GenerateText(context.Context, string) (string, error) {
	return p.text, p.err
}

func (p *fakeProvider) GetProviderName() string { return "fake" }

func newScorer(t *testing.T, provider *fakeProvider) *Scorer {
	t.Helper()
	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		t.Fatalf("failed to load prompt templates: %v", err)
	}
	return NewScorer(provider, promptManager, zap.NewNop())
}

func TestScore(t *testing.T) {
	text := "Score: 72/100\nKeywords: go, docker, kubernetes\nStrong infrastructure background."
	scorer := newScorer(t, &fakeProvider{text: text})

	resp, err := scorer.Score(context.Background(), "resume text", "job description")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ATSScore != 72 {
		t.Fatalf("expected score 72, got %d", resp.ATSScore)
	}
	if len(resp.KeywordsMatched) != 3 || resp.KeywordsMatched[1] != "docker" {
		t.Fatalf("unexpected keywords: %v", resp.KeywordsMatched)
	}
	if resp.Feedback != text {
		t.Fatalf("feedback must carry the full evaluation text")
	}
}

func TestScoreMissingKeywordsLine(t *testing.T) {
	scorer := newScorer(t, &fakeProvider{text: "Score: 55/100\nDecent match."})

	resp, err := scorer.Score(context.Background(), "resume", "job")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.KeywordsMatched != nil {
		t.Fatalf("expected no keywords, got %v", resp.KeywordsMatched)
	}
}

func TestScoreFailures(t *testing.T) {
	// provider failure is a hard failure
	scorer := newScorer(t, &fakeProvider{err: errors.New("upstream down")})
	if _, err := scorer.Score(context.Background(), "resume", "job"); err == nil {
		t.Fatalf("expected error on provider failure")
	}

	// so is a response without a parseable score line
	scorer = newScorer(t, &fakeProvider{text: "I would give this resume an 8 out of 10."})
	if _, err := scorer.Score(context.Background(), "resume", "job"); err == nil {
		t.Fatalf("expected error on unparseable response")
	}
}
