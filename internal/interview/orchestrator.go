// Package interview drives the 15-question adaptive verbal interview.
package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hirehub/assessment/internal/llm"
	"hirehub/assessment/internal/locking"
	"hirehub/assessment/internal/models"
	"hirehub/assessment/internal/parser"
	"hirehub/assessment/internal/prompts"
)

var (
	ErrSessionNotFound = errors.New("session not found")

	// ErrNoPendingQuestion is returned when an answer arrives before any
	// question was fetched, or after the pending question was already
	// answered. Accepting it would break the paired-sequence invariants.
	ErrNoPendingQuestion = errors.New("no pending question to answer")
)

// placeholder values persisted when the upstream call fails. The session
// keeps moving; a wedged interview is worse than a lost question.
const (
	questionUnavailable    = "Error fetching question."
	idealAnswerUnavailable = "No ideal answer available."
	evaluationUnavailable  = "Error evaluating answer."
)

// SessionRepository is the persistence port for interview sessions.
type SessionRepository interface {
	FindByID(ctx context.Context, sessionID string) (*models.InterviewSession, error)
	Save(ctx context.Context, session *models.InterviewSession) error
}

type Orchestrator struct {
	repo          SessionRepository
	provider      llm.Provider
	promptManager prompts.PromptProvider
	logger        *zap.Logger
	locks         *locking.KeyedMutex
}

func NewOrchestrator(repo SessionRepository, provider llm.Provider, promptManager prompts.PromptProvider, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		repo:          repo,
		provider:      provider,
		promptManager: promptManager,
		logger:        logger,
		locks:         locking.NewKeyedMutex(),
	}
}

// Start creates an empty session and returns its identifier. No upstream
// call is made.
func (o *Orchestrator) Start(ctx context.Context, category string) (*models.StartInterviewResponse, error) {
	session := &models.InterviewSession{
		SessionID:         "session_" + uuid.New().String(),
		Category:          category,
		QuestionNumber:    0,
		PreviousQuestions: []string{},
		PreviousAnswers:   []string{},
		Scores:            []int{},
		Evaluations:       []string{},
		IdealAnswers:      []string{},
	}
	if err := o.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	return &models.StartInterviewResponse{SessionID: session.SessionID}, nil
}

// selectDifficulty picks the tier for the next question from the running
// average (0-100 scale) and the number of questions already served. The two
// threshold rules are evaluated independently; neither implies the other,
// and the question-count gates mean an early session stays basic no matter
// how high it scores.
func selectDifficulty(averageScore float64, questionNumber int) string {
	difficulty := "basic"
	if averageScore >= 70 && questionNumber >= 5 {
		difficulty = "intermediate"
	}
	if averageScore >= 80 && questionNumber >= 10 {
		difficulty = "advanced"
	}
	return difficulty
}

// NextQuestion serves the next question for the session, deriving its
// difficulty from scored history. The question and a freshly generated
// ideal answer are appended together so the paired sequences stay aligned.
// Upstream failures degrade to placeholders instead of failing the call.
func (o *Orchestrator) NextQuestion(ctx context.Context, sessionID string) (*models.QuestionResponse, error) {
	o.locks.Lock(sessionID)
	defer o.locks.Unlock(sessionID)

	session, err := o.repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Completed() {
		return &models.QuestionResponse{Message: "Interview completed.", Completed: true}, nil
	}

	difficulty := selectDifficulty(session.AverageScore()*10, session.QuestionNumber)
	question, idealAnswer := o.fetchQuestion(ctx, session, difficulty)

	session.PreviousQuestions = append(session.PreviousQuestions, question)
	session.IdealAnswers = append(session.IdealAnswers, idealAnswer)
	session.QuestionNumber++

	if err := o.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	return &models.QuestionResponse{
		Question:       question,
		QuestionNumber: session.QuestionNumber,
	}, nil
}

func (o *Orchestrator) fetchQuestion(ctx context.Context, session *models.InterviewSession, difficulty string) (question, idealAnswer string) {
	prompt, err := o.promptManager.BuildPrompt("interview_question", prompts.DefaultVariant, map[string]string{
		"Difficulty":        difficulty,
		"Category":          session.Category,
		"PreviousQuestions": strings.Join(session.PreviousQuestions, ", "),
	})
	if err != nil {
		o.logger.Error("failed to build question prompt", zap.Error(err), zap.String("session_id", session.SessionID))
		return questionUnavailable, idealAnswerUnavailable
	}

	question, err = o.provider.GenerateText(ctx, prompt)
	if err != nil {
		o.logger.Error("error fetching question", zap.Error(err), zap.String("session_id", session.SessionID))
		return questionUnavailable, idealAnswerUnavailable
	}

	idealPrompt, err := o.promptManager.BuildPrompt("ideal_answer", prompts.DefaultVariant, map[string]string{
		"Question": question,
	})
	if err != nil {
		o.logger.Error("failed to build ideal answer prompt", zap.Error(err), zap.String("session_id", session.SessionID))
		return question, idealAnswerUnavailable
	}

	idealAnswer, err = o.provider.GenerateText(ctx, idealPrompt)
	if err != nil {
		o.logger.Error("error fetching ideal answer", zap.Error(err), zap.String("session_id", session.SessionID))
		return question, idealAnswerUnavailable
	}

	return question, idealAnswer
}

// SubmitAnswer evaluates the answer to the most recently fetched question,
// records it and reports the normalized score. On the final answer the mean
// of all scores is reported alongside the full evaluation history.
func (o *Orchestrator) SubmitAnswer(ctx context.Context, sessionID, answer string) (*models.AnswerResponse, error) {
	o.locks.Lock(sessionID)
	defer o.locks.Unlock(sessionID)

	session, err := o.repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	questionIndex := session.QuestionNumber - 1
	if questionIndex < 0 || len(session.PreviousAnswers) > questionIndex {
		return nil, ErrNoPendingQuestion
	}

	score, originalScore, evaluation := o.evaluateAnswer(ctx, session, questionIndex, answer)

	session.PreviousAnswers = append(session.PreviousAnswers, answer)
	session.Scores = append(session.Scores, score)
	session.Evaluations = append(session.Evaluations, evaluation)

	if err := o.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	if session.Completed() {
		return &models.AnswerResponse{
			Score:         score,
			OriginalScore: originalScore,
			FinalScore:    session.AverageScore(),
			Evaluations:   session.Evaluations,
			Completed:     true,
		}, nil
	}

	return &models.AnswerResponse{
		Score:         score,
		Evaluation:    evaluation,
		OriginalScore: originalScore,
	}, nil
}

func (o *Orchestrator) evaluateAnswer(ctx context.Context, session *models.InterviewSession, questionIndex int, answer string) (score, originalScore int, evaluation string) {
	prompt, err := o.promptManager.BuildPrompt("evaluation", prompts.DefaultVariant, map[string]string{
		"Question":    session.PreviousQuestions[questionIndex],
		"Answer":      answer,
		"IdealAnswer": session.IdealAnswers[questionIndex],
	})
	if err != nil {
		o.logger.Error("failed to build evaluation prompt", zap.Error(err), zap.String("session_id", session.SessionID))
		return 0, 0, evaluationUnavailable
	}

	evaluation, err = o.provider.GenerateText(ctx, prompt)
	if err != nil {
		o.logger.Error("error evaluating answer", zap.Error(err), zap.String("session_id", session.SessionID))
		return 0, 0, evaluationUnavailable
	}

	// A malformed evaluation scores 0 rather than blocking the session.
	originalScore = parser.ExtractScore(evaluation)
	return parser.NormalizeScore(originalScore), originalScore, evaluation
}

// Transcript is a pure read projection of the question/answer history.
func (o *Orchestrator) Transcript(ctx context.Context, sessionID string) (*models.TranscriptResponse, error) {
	session, err := o.repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.TranscriptEntry, 0, len(session.PreviousQuestions))
	for i, question := range session.PreviousQuestions {
		entry := models.TranscriptEntry{
			Question:    question,
			UserAnswer:  "No answer provided",
			IdealAnswer: idealAnswerUnavailable,
			Evaluation:  "No evaluation available",
		}
		if i < len(session.PreviousAnswers) {
			entry.UserAnswer = session.PreviousAnswers[i]
		}
		if i < len(session.IdealAnswers) {
			entry.IdealAnswer = session.IdealAnswers[i]
		}
		if i < len(session.Evaluations) {
			entry.Evaluation = session.Evaluations[i]
		}
		if i < len(session.Scores) {
			entry.Score = session.Scores[i]
		}
		entries = append(entries, entry)
	}

	return &models.TranscriptResponse{Answers: entries}, nil
}

// Progress reports how far the session has advanced, with the running
// average rendered to one decimal place ("0" before any answer is scored).
func (o *Orchestrator) Progress(ctx context.Context, sessionID string) (*models.ProgressResponse, error) {
	session, err := o.repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	averageScore := "0"
	if len(session.Scores) > 0 {
		averageScore = fmt.Sprintf("%.1f", session.AverageScore())
	}

	return &models.ProgressResponse{
		Category:        session.Category,
		TotalQuestions:  models.TotalQuestions,
		CurrentQuestion: session.QuestionNumber,
		AverageScore:    averageScore,
	}, nil
}
