package models

import (
	"time"

	"hirehub/assessment/internal/parser"
)

// TotalQuestions is the fixed length of both assessment flows.
const TotalQuestions = 15

// InterviewSession is the persisted state of one verbal interview.
//
// The paired sequences grow in lockstep: PreviousQuestions and IdealAnswers
// get one entry per question fetch, PreviousAnswers, Scores and Evaluations
// one entry per answer submission. Scores are on the normalized 0-10 scale.
type InterviewSession struct {
	SessionID         string   `bson:"session_id" json:"session_id"`
	Category          string   `bson:"category" json:"category"`
	QuestionNumber    int      `bson:"question_number" json:"question_number"`
	PreviousQuestions []string `bson:"previous_questions" json:"previous_questions"`
	PreviousAnswers   []string `bson:"previous_answers" json:"previous_answers"`
	Scores            []int    `bson:"scores" json:"scores"`
	Evaluations       []string `bson:"evaluations" json:"evaluations"`
	IdealAnswers      []string `bson:"ideal_answers" json:"ideal_answers"`
}

// Completed reports whether the session has served all its questions. A
// completed session stays readable but is never mutated again.
func (s *InterviewSession) Completed() bool {
	return s.QuestionNumber >= TotalQuestions
}

// AverageScore is the mean of the normalized per-question scores, 0 when no
// answer has been scored yet.
func (s *InterviewSession) AverageScore() float64 {
	if len(s.Scores) == 0 {
		return 0
	}
	sum := 0
	for _, score := range s.Scores {
		sum += score
	}
	return float64(sum) / float64(len(s.Scores))
}

// MockTestSession is the per-owner state of one mock test. It lives in a
// keyed store (in-process or Redis) and is overwritten by every generate
// call for the same owner.
type MockTestSession struct {
	OwnerID      string         `json:"owner_id"`
	Questions    []parser.MCQ   `json:"questions"`
	CurrentIndex int            `json:"current_index"`
	CreatedAt    time.Time      `json:"created_at"`
	UserAnswers  map[int]string `json:"user_answers,omitempty"`
}

// Exhausted reports whether every question has been served.
func (s *MockTestSession) Exhausted() bool {
	return s.CurrentIndex >= len(s.Questions)
}
