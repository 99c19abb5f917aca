package routers

import (
	"github.com/go-chi/chi/v5"

	"hirehub/assessment/internal/handlers"
	"hirehub/assessment/internal/middleware"
	"hirehub/assessment/internal/models"
)

// AssessmentRoutes registers the interview, mock-test and resume endpoints.
// Everything under the group is auth-gated; the orchestrators trust the
// caller id the gate attaches.
func AssessmentRoutes(router *chi.Mux, jwtSecret string, interviewHandler *handlers.InterviewHandler, mockTestHandler *handlers.MockTestHandler, resumeHandler *handlers.ResumeHandler) {
	router.Route("/api/v1/assessment", func(r chi.Router) {
		r.Use(middleware.RequireAuth(jwtSecret))

		r.Route("/interview", func(r chi.Router) {
			r.With(middleware.ValidateRequest[*models.StartInterviewRequest]()).Post("/start", interviewHandler.StartHandler)
			r.With(middleware.ValidateRequest[*models.InterviewSessionRequest]()).Post("/question", interviewHandler.QuestionHandler)
			r.With(middleware.ValidateRequest[*models.SubmitAnswerRequest]()).Post("/answer", interviewHandler.AnswerHandler)
			r.With(middleware.ValidateRequest[*models.InterviewSessionRequest]()).Post("/transcript", interviewHandler.TranscriptHandler)
			r.With(middleware.ValidateRequest[*models.InterviewSessionRequest]()).Post("/progress", interviewHandler.ProgressHandler)
		})

		r.Route("/mock-test", func(r chi.Router) {
			r.With(middleware.ValidateRequest[*models.GenerateMockTestRequest]()).Post("/generate", mockTestHandler.GenerateHandler)
			r.Post("/next", mockTestHandler.NextHandler)
			r.With(middleware.ValidateRequest[*models.MockTestAnswerRequest]()).Post("/answer", mockTestHandler.AnswerHandler)
			r.With(middleware.ValidateRequest[*models.GradeMockTestRequest]()).Post("/grade", mockTestHandler.GradeHandler)
			r.Post("/reset", mockTestHandler.ResetHandler)
		})

		r.With(middleware.ValidateRequest[*models.ResumeScoreRequest]()).Post("/resume/score", resumeHandler.ScoreHandler)
	})
}
