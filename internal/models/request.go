package models

import (
	"strings"
)

type StartInterviewRequest struct {
	Category string `json:"category"`
}

// implements the Validator interface
func (r *StartInterviewRequest) Validate() error {
	if strings.TrimSpace(r.Category) == "" {
		return &ErrorResponse{
			Code:    "missing_category",
			Message: "Category field is required",
		}
	}
	return nil
}

// InterviewSessionRequest covers the read-and-advance operations that only
// need a session reference: question fetch, transcript, progress.
type InterviewSessionRequest struct {
	SessionID string `json:"session_id"`
}

func (r *InterviewSessionRequest) Validate() error {
	if strings.TrimSpace(r.SessionID) == "" {
		return &ErrorResponse{
			Code:    "missing_session_id",
			Message: "Session id field is required",
		}
	}
	return nil
}

type SubmitAnswerRequest struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if strings.TrimSpace(r.SessionID) == "" {
		return &ErrorResponse{
			Code:    "missing_session_id",
			Message: "Session id field is required",
		}
	}
	if strings.TrimSpace(r.Answer) == "" {
		return &ErrorResponse{
			Code:    "missing_answer",
			Message: "Answer field is required",
		}
	}
	return nil
}

type GenerateMockTestRequest struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

func (r *GenerateMockTestRequest) Validate() error {
	if strings.TrimSpace(r.Category) == "" || strings.TrimSpace(r.Subcategory) == "" {
		return &ErrorResponse{
			Code:    "missing_fields",
			Message: "Category and subcategory are required",
		}
	}
	return nil
}

type MockTestAnswerRequest struct {
	QuestionIndex *int   `json:"question_index"`
	Answer        string `json:"answer"`
}

func (r *MockTestAnswerRequest) Validate() error {
	if r.QuestionIndex == nil {
		return &ErrorResponse{
			Code:    "missing_question_index",
			Message: "Question index field is required",
		}
	}
	if *r.QuestionIndex < 0 || *r.QuestionIndex >= TotalQuestions {
		return &ErrorResponse{
			Code:    "invalid_question_index",
			Message: "Question index must be between 0 and 14",
		}
	}
	if strings.TrimSpace(r.Answer) == "" {
		return &ErrorResponse{
			Code:    "missing_answer",
			Message: "Answer field is required",
		}
	}
	return nil
}

type GradeMockTestRequest struct {
	Answers []string `json:"answers"`
}

func (r *GradeMockTestRequest) Validate() error {
	// Incomplete answer sets are rejected outright rather than partially
	// graded.
	if len(r.Answers) != TotalQuestions {
		return &ErrorResponse{
			Code:    "incomplete_answers",
			Message: "Exactly 15 answers are required",
		}
	}
	return nil
}

type ResumeScoreRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

func (r *ResumeScoreRequest) Validate() error {
	if strings.TrimSpace(r.ResumeText) == "" {
		return &ErrorResponse{
			Code:    "missing_resume_text",
			Message: "Resume text field is required",
		}
	}
	if strings.TrimSpace(r.JobDescription) == "" {
		return &ErrorResponse{
			Code:    "missing_job_description",
			Message: "Job description field is required",
		}
	}
	return nil
}
