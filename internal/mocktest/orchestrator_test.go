package mocktest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"hirehub/assessment/internal/llm"
	"hirehub/assessment/internal/models"
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

// mockTestText renders count well-formed MCQ blocks the way the model is
// asked to format them. Correct answers cycle through the option letters.
func mockTestText(count int) string {
	var b strings.Builder
	letters := []string{"A", "B", "C", "D"}
	for i := 0; i < count; i++ {
		fmt.Fprintf(&b, "Question: Question number %d?\n", i+1)
		for j, letter := range letters {
			fmt.Fprintf(&b, "%s) option %d-%d\n", letter, i+1, j+1)
		}
		fmt.Fprintf(&b, "Correct: %s\n", letters[i%len(letters)])
		fmt.Fprintf(&b, "Level: beginner\n\n")
	}
	return b.String()
}

func newTestOrchestrator(t *testing.T, store Store, provider *fakeProvider) *Orchestrator {
	t.Helper()
	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		t.Fatalf("failed to load prompt templates: %v", err)
	}
	return NewOrchestrator(store, provider, promptManager, zap.NewNop())
}

func TestGenerate(t *testing.T) {
	store := NewMemoryStore()
	orchestrator := newTestOrchestrator(t, store, &fakeProvider{text: mockTestText(models.TotalQuestions)})

	resp, err := orchestrator.Generate(context.Background(), "user-1", "databases", "SQL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.TotalQuestions != models.TotalQuestions {
		t.Fatalf("expected %d questions, got %d", models.TotalQuestions, resp.TotalQuestions)
	}

	session, err := store.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("session not stored: %v", err)
	}
	if session.CurrentIndex != 0 || len(session.Questions) != models.TotalQuestions {
		t.Fatalf("unexpected session state: %+v", session)
	}
}

func TestGenerateOverwritesExistingSession(t *testing.T) {
	store := NewMemoryStore()
	orchestrator := newTestOrchestrator(t, store, &fakeProvider{text: mockTestText(models.TotalQuestions)})

	orchestrator.Generate(context.Background(), "user-1", "databases", "SQL")
	orchestrator.Next(context.Background(), "user-1")
	orchestrator.Next(context.Background(), "user-1")

	if _, err := orchestrator.Generate(context.Background(), "user-1", "databases", "NoSQL"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	session, _ := store.Get(context.Background(), "user-1")
	if session.CurrentIndex != 0 {
		t.Fatalf("regenerate must reset the cursor, got %d", session.CurrentIndex)
	}
}

func TestGenerateUpstreamFailures(t *testing.T) {
	cases := []struct {
		name     string
		provider *fakeProvider
	}{
		{"provider error", &fakeProvider{err: errors.New("boom")}},
		{"no content sentinel", &fakeProvider{text: llm.NoContent}},
		{"short question set", &fakeProvider{text: mockTestText(9)}},
		{"unparseable text", &fakeProvider{text: "Sure! Here are some questions for you."}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := NewMemoryStore()
			orchestrator := newTestOrchestrator(t, store, tc.provider)

			_, err := orchestrator.Generate(context.Background(), "user-1", "c", "s")
			if !errors.Is(err, ErrUpstream) {
				t.Fatalf("expected ErrUpstream, got %v", err)
			}
			if _, err := store.Get(context.Background(), "user-1"); !errors.Is(err, ErrSessionNotFound) {
				t.Fatalf("nothing must be stored on failure, got %v", err)
			}
		})
	}
}

func TestNextServesQuestionsInOrder(t *testing.T) {
	store := NewMemoryStore()
	orchestrator := newTestOrchestrator(t, store, &fakeProvider{text: mockTestText(models.TotalQuestions)})
	orchestrator.Generate(context.Background(), "user-1", "c", "s")

	for i := 1; i <= models.TotalQuestions; i++ {
		resp, err := orchestrator.Next(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("question %d: %v", i, err)
		}
		if resp.QuestionNumber != i {
			t.Fatalf("expected question number %d, got %d", i, resp.QuestionNumber)
		}
		if resp.Question != fmt.Sprintf("Question number %d?", i) {
			t.Fatalf("questions served out of order: %q", resp.Question)
		}
		if len(resp.Options) != 4 {
			t.Fatalf("expected 4 options, got %d", len(resp.Options))
		}
		wantLast := i == models.TotalQuestions
		if resp.IsLastQuestion != wantLast {
			t.Fatalf("question %d: IsLastQuestion = %v", i, resp.IsLastQuestion)
		}
	}

	// serving the last question consumed the session
	if _, err := orchestrator.Next(context.Background(), "user-1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after last question, got %v", err)
	}
}

func TestNextWithoutSession(t *testing.T) {
	orchestrator := newTestOrchestrator(t, NewMemoryStore(), &fakeProvider{})

	if _, err := orchestrator.Next(context.Background(), "user-1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSubmitAnswer(t *testing.T) {
	store := NewMemoryStore()
	orchestrator := newTestOrchestrator(t, store, &fakeProvider{text: mockTestText(models.TotalQuestions)})
	orchestrator.Generate(context.Background(), "user-1", "c", "s")

	// question 0 has Correct: A, resolving to "option 1-1"
	resp, err := orchestrator.SubmitAnswer(context.Background(), "user-1", 0, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Correct {
		t.Fatalf("letter answer must match the key")
	}
	if resp.CorrectOption != "option 1-1" {
		t.Fatalf("expected resolved option text, got %q", resp.CorrectOption)
	}

	// full option text matches too, case-insensitively
	resp, _ = orchestrator.SubmitAnswer(context.Background(), "user-1", 0, "OPTION 1-1")
	if !resp.Correct {
		t.Fatalf("option text answer must match the key")
	}

	resp, _ = orchestrator.SubmitAnswer(context.Background(), "user-1", 0, "B")
	if resp.Correct {
		t.Fatalf("wrong letter must not match")
	}

	session, _ := store.Get(context.Background(), "user-1")
	if session.UserAnswers[0] != "B" {
		t.Fatalf("latest answer must be recorded, got %q", session.UserAnswers[0])
	}

	_, err = orchestrator.SubmitAnswer(context.Background(), "user-1", models.TotalQuestions, "A")
	var errResp *models.ErrorResponse
	if !errors.As(err, &errResp) {
		t.Fatalf("expected ErrorResponse for out-of-range index, got %v", err)
	}
}

func TestGrade(t *testing.T) {
	store := NewMemoryStore()
	orchestrator := newTestOrchestrator(t, store, &fakeProvider{text: mockTestText(models.TotalQuestions)})
	orchestrator.Generate(context.Background(), "user-1", "c", "s")

	// answer every question with "A"; the key cycles A,B,C,D so 4 match
	answers := make([]string, models.TotalQuestions)
	for i := range answers {
		answers[i] = "A"
	}

	resp, err := orchestrator.Grade(context.Background(), "user-1", answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != models.TotalQuestions {
		t.Fatalf("expected total %d, got %d", models.TotalQuestions, resp.Total)
	}
	if resp.CorrectCount != 4 {
		t.Fatalf("expected 4 correct, got %d", resp.CorrectCount)
	}
	if !resp.Results[0].Correct || resp.Results[1].Correct {
		t.Fatalf("per-question correctness wrong: %+v", resp.Results[:2])
	}
	if resp.Results[1].CorrectOption != "option 2-2" {
		t.Fatalf("expected resolved correct option, got %q", resp.Results[1].CorrectOption)
	}

	// grading must not consume the session
	if _, err := store.Get(context.Background(), "user-1"); err != nil {
		t.Fatalf("session must survive grading: %v", err)
	}

	_, err = orchestrator.Grade(context.Background(), "user-1", answers[:3])
	var errResp *models.ErrorResponse
	if !errors.As(err, &errResp) {
		t.Fatalf("expected ErrorResponse for incomplete answers, got %v", err)
	}
}

func TestReset(t *testing.T) {
	store := NewMemoryStore()
	orchestrator := newTestOrchestrator(t, store, &fakeProvider{text: mockTestText(models.TotalQuestions)})
	orchestrator.Generate(context.Background(), "user-1", "c", "s")

	if err := orchestrator.Reset(context.Background(), "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(context.Background(), "user-1"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected session gone, got %v", err)
	}

	// resetting an absent session is not an error
	if err := orchestrator.Reset(context.Background(), "user-1"); err != nil {
		t.Fatalf("reset must be idempotent: %v", err)
	}
}

func TestSessionsIsolatedPerOwner(t *testing.T) {
	store := NewMemoryStore()
	orchestrator := newTestOrchestrator(t, store, &fakeProvider{text: mockTestText(models.TotalQuestions)})

	orchestrator.Generate(context.Background(), "user-1", "c", "s")
	orchestrator.Generate(context.Background(), "user-2", "c", "s")
	orchestrator.Next(context.Background(), "user-1")

	session, _ := store.Get(context.Background(), "user-2")
	if session.CurrentIndex != 0 {
		t.Fatalf("owner sessions must be independent, got cursor %d", session.CurrentIndex)
	}
}
