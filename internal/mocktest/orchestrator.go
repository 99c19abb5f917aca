// Package mocktest generates a fixed batch of 15 categorized MCQs up front,
// serves them one at a time and grades submitted answers against the key.
package mocktest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"hirehub/assessment/internal/llm"
	"hirehub/assessment/internal/locking"
	"hirehub/assessment/internal/models"
	"hirehub/assessment/internal/parser"
	"hirehub/assessment/internal/prompts"
	"hirehub/assessment/internal/utils"
)

type Orchestrator struct {
	store         Store
	provider      llm.Provider
	promptManager prompts.PromptProvider
	logger        *zap.Logger
	locks         *locking.KeyedMutex
}

func NewOrchestrator(store Store, provider llm.Provider, promptManager prompts.PromptProvider, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		store:         store,
		provider:      provider,
		promptManager: promptManager,
		logger:        logger,
		locks:         locking.NewKeyedMutex(),
	}
}

// Generate builds the full 15-question test in a single upstream call and
// stores it, overwriting any previous session for the owner. Either exactly
// 15 questions are stored or nothing is.
func (o *Orchestrator) Generate(ctx context.Context, ownerID, category, subcategory string) (*models.GenerateMockTestResponse, error) {
	o.locks.Lock(ownerID)
	defer o.locks.Unlock(ownerID)

	prompt, err := o.promptManager.BuildPrompt("mock_test", prompts.DefaultVariant, map[string]string{
		"Category":    category,
		"Subcategory": subcategory,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, err.Error())
	}

	text, err := o.provider.GenerateText(ctx, prompt)
	if err != nil {
		o.logger.Error("mock test generation failed", zap.Error(err), zap.String("owner_id", ownerID))
		return nil, fmt.Errorf("%w: %s", ErrUpstream, err.Error())
	}
	if text == llm.NoContent {
		return nil, fmt.Errorf("%w: empty model response", ErrUpstream)
	}

	questions := parser.ParseMCQBlocks(text)
	if len(questions) != models.TotalQuestions {
		o.logger.Warn("mock test response did not parse into a full question set",
			zap.Int("parsed", len(questions)), zap.String("owner_id", ownerID))
		return nil, fmt.Errorf("%w: expected %d questions, parsed %d", ErrUpstream, models.TotalQuestions, len(questions))
	}

	session := &models.MockTestSession{
		OwnerID:      ownerID,
		Questions:    questions,
		CurrentIndex: 0,
		CreatedAt:    time.Now(),
		UserAnswers:  make(map[int]string),
	}
	if err := o.store.Put(ctx, session); err != nil {
		return nil, err
	}

	return &models.GenerateMockTestResponse{TotalQuestions: len(questions)}, nil
}

// Next serves the question at the cursor with 1-based numbering and
// advances it. Serving the 15th question deletes the session on the way
// out; the caller is told it was the last one and a further call finds
// nothing.
func (o *Orchestrator) Next(ctx context.Context, ownerID string) (*models.MockQuestionResponse, error) {
	o.locks.Lock(ownerID)
	defer o.locks.Unlock(ownerID)

	session, err := o.store.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if session.Exhausted() {
		if err := o.store.Delete(ctx, ownerID); err != nil {
			o.logger.Warn("failed to delete exhausted session", zap.Error(err), zap.String("owner_id", ownerID))
		}
		return nil, ErrTestExhausted
	}

	question := session.Questions[session.CurrentIndex]
	response := &models.MockQuestionResponse{
		QuestionNumber: session.CurrentIndex + 1,
		TotalQuestions: len(session.Questions),
		Question:       question.Question,
		Options:        question.Options,
		Level:          question.Level,
	}

	session.CurrentIndex++
	if session.Exhausted() {
		response.IsLastQuestion = true
		if err := o.store.Delete(ctx, ownerID); err != nil {
			o.logger.Warn("failed to delete finished session", zap.Error(err), zap.String("owner_id", ownerID))
		}
		return response, nil
	}

	if err := o.store.Put(ctx, session); err != nil {
		return nil, err
	}
	return response, nil
}

// SubmitAnswer records the answer for one question and reports whether it
// matched the answer key.
func (o *Orchestrator) SubmitAnswer(ctx context.Context, ownerID string, questionIndex int, answer string) (*models.MockAnswerResponse, error) {
	o.locks.Lock(ownerID)
	defer o.locks.Unlock(ownerID)

	session, err := o.store.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if questionIndex >= len(session.Questions) {
		return nil, &models.ErrorResponse{
			Code:    "invalid_question_index",
			Message: "Question index is out of range",
		}
	}

	if session.UserAnswers == nil {
		session.UserAnswers = make(map[int]string)
	}
	session.UserAnswers[questionIndex] = answer
	if err := o.store.Put(ctx, session); err != nil {
		return nil, err
	}

	question := session.Questions[questionIndex]
	return &models.MockAnswerResponse{
		Correct:       answerMatches(question, answer),
		CorrectOption: correctOption(question),
	}, nil
}

// Grade checks a complete answer set against the answer key by exact option
// match and reports per-question correctness plus the aggregate count. It
// never partially grades; request validation has already rejected
// incomplete sets, and a mismatch against the stored question count is
// rejected here for the same reason.
func (o *Orchestrator) Grade(ctx context.Context, ownerID string, answers []string) (*models.GradeMockTestResponse, error) {
	session, err := o.store.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(answers) != len(session.Questions) {
		return nil, &models.ErrorResponse{
			Code:    "incomplete_answers",
			Message: fmt.Sprintf("Expected %d answers, got %d", len(session.Questions), len(answers)),
		}
	}

	response := &models.GradeMockTestResponse{
		Total:   len(session.Questions),
		Results: make([]models.GradeResult, 0, len(session.Questions)),
	}
	for i, question := range session.Questions {
		correct := answerMatches(question, answers[i])
		if correct {
			response.CorrectCount++
		}
		response.Results = append(response.Results, models.GradeResult{
			QuestionNumber: i + 1,
			Correct:        correct,
			CorrectOption:  correctOption(question),
			UserAnswer:     answers[i],
		})
	}
	return response, nil
}

// Reset discards the owner's session. Resetting an absent session is fine.
func (o *Orchestrator) Reset(ctx context.Context, ownerID string) error {
	o.locks.Lock(ownerID)
	defer o.locks.Unlock(ownerID)

	return o.store.Delete(ctx, ownerID)
}

// answerMatches accepts either the correct-option letter as emitted by the
// model ("B") or the full text of the correct option.
func answerMatches(question parser.MCQ, answer string) bool {
	answer = utils.NormalizeOption(answer)
	if answer == "" || question.Correct == "" {
		return false
	}
	if strings.EqualFold(answer, question.Correct) {
		return true
	}
	return strings.EqualFold(answer, correctOption(question))
}

// correctOption resolves the "Correct:" marker to the option text when the
// marker is a letter and the option line was parsed; otherwise it falls
// back to the raw marker value.
func correctOption(question parser.MCQ) string {
	marker := utils.NormalizeOption(question.Correct)
	if len(marker) == 1 {
		index := int(strings.ToUpper(marker)[0] - 'A')
		if index >= 0 && index < len(question.Options) {
			return question.Options[index]
		}
	}
	return marker
}
