package models

// uniform error responses
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

type StartInterviewResponse struct {
	SessionID string `json:"session_id"`
}

// QuestionResponse is returned by a question fetch. When the session has
// already served all 15 questions, Completed is true and Question is empty;
// completion is a marker, not an error.
type QuestionResponse struct {
	Question       string `json:"question,omitempty"`
	QuestionNumber int    `json:"question_number,omitempty"`
	Message        string `json:"message,omitempty"`
	Completed      bool   `json:"completed,omitempty"`
}

// AnswerResponse reports one evaluated answer. On the 15th answer FinalScore
// carries the mean of all normalized scores and the full evaluation history
// is included.
type AnswerResponse struct {
	Score         int      `json:"score"`
	Evaluation    string   `json:"evaluation,omitempty"`
	OriginalScore int      `json:"original_score"`
	FinalScore    float64  `json:"final_score,omitempty"`
	Evaluations   []string `json:"evaluations,omitempty"`
	Completed     bool     `json:"completed,omitempty"`
}

type TranscriptEntry struct {
	Question    string `json:"question"`
	UserAnswer  string `json:"user_answer"`
	IdealAnswer string `json:"ideal_answer"`
	Evaluation  string `json:"evaluation"`
	Score       int    `json:"score"`
}

type TranscriptResponse struct {
	Answers []TranscriptEntry `json:"answers"`
}

type ProgressResponse struct {
	Category        string `json:"category"`
	TotalQuestions  int    `json:"total_questions"`
	CurrentQuestion int    `json:"current_question"`
	AverageScore    string `json:"average_score"`
}

type GenerateMockTestResponse struct {
	TotalQuestions int `json:"total_questions"`
}

type MockQuestionResponse struct {
	QuestionNumber int      `json:"question_number"`
	TotalQuestions int      `json:"total_questions"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	Level          string   `json:"level"`
	IsLastQuestion bool     `json:"is_last_question"`
}

type MockAnswerResponse struct {
	Correct       bool   `json:"correct"`
	CorrectOption string `json:"correct_option"`
}

type GradeResult struct {
	QuestionNumber int    `json:"question_number"`
	Correct        bool   `json:"correct"`
	CorrectOption  string `json:"correct_option"`
	UserAnswer     string `json:"user_answer"`
}

type GradeMockTestResponse struct {
	CorrectCount int           `json:"correct_count"`
	Total        int           `json:"total"`
	Results      []GradeResult `json:"results"`
}

type ResetMockTestResponse struct {
	Reset bool `json:"reset"`
}

type ResumeScoreResponse struct {
	ATSScore        int      `json:"ats_score"`
	KeywordsMatched []string `json:"keywords_matched"`
	Feedback        string   `json:"feedback"`
}
