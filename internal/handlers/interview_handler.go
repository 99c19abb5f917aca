package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"hirehub/assessment/internal/interview"
	"hirehub/assessment/internal/middleware"
	"hirehub/assessment/internal/models"
	"hirehub/assessment/internal/utils"
)

type InterviewHandler struct {
	orchestrator *interview.Orchestrator
	logger       *zap.Logger
}

func NewInterviewHandler(orchestrator *interview.Orchestrator, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{
		orchestrator: orchestrator,
		logger:       logger,
	}
}

func (h *InterviewHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.StartInterviewRequest](r)

	response, err := h.orchestrator.Start(r.Context(), req.Category)
	if err != nil {
		h.logger.Error("failed to start interview", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "start_failed",
			Message: "Failed to start interview session",
		})
		return
	}

	h.logger.Info("interview session started",
		zap.String("session_id", response.SessionID),
		zap.String("category", req.Category))
	utils.JSON(w, http.StatusOK, response)
}

func (h *InterviewHandler) QuestionHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.InterviewSessionRequest](r)

	response, err := h.orchestrator.NextQuestion(r.Context(), req.SessionID)
	if err != nil {
		h.writeInterviewError(w, err, "question_failed", "Failed to fetch next question")
		return
	}
	utils.JSON(w, http.StatusOK, response)
}

func (h *InterviewHandler) AnswerHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SubmitAnswerRequest](r)

	response, err := h.orchestrator.SubmitAnswer(r.Context(), req.SessionID, req.Answer)
	if err != nil {
		h.writeInterviewError(w, err, "answer_failed", "Failed to submit answer")
		return
	}
	utils.JSON(w, http.StatusOK, response)
}

func (h *InterviewHandler) TranscriptHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.InterviewSessionRequest](r)

	response, err := h.orchestrator.Transcript(r.Context(), req.SessionID)
	if err != nil {
		h.writeInterviewError(w, err, "transcript_failed", "Failed to fetch transcript")
		return
	}
	utils.JSON(w, http.StatusOK, response)
}

func (h *InterviewHandler) ProgressHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.InterviewSessionRequest](r)

	response, err := h.orchestrator.Progress(r.Context(), req.SessionID)
	if err != nil {
		h.writeInterviewError(w, err, "progress_failed", "Failed to fetch progress")
		return
	}
	utils.JSON(w, http.StatusOK, response)
}

func (h *InterviewHandler) writeInterviewError(w http.ResponseWriter, err error, code, message string) {
	if errors.Is(err, interview.ErrSessionNotFound) {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "session_not_found",
			Message: "Session not found.",
		})
		return
	}
	if errors.Is(err, interview.ErrNoPendingQuestion) {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "no_pending_question",
			Message: "No pending question to answer.",
		})
		return
	}

	h.logger.Error(message, zap.Error(err))
	utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
