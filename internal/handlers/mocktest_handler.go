package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"hirehub/assessment/internal/middleware"
	"hirehub/assessment/internal/mocktest"
	"hirehub/assessment/internal/models"
	"hirehub/assessment/internal/utils"
)

type MockTestHandler struct {
	orchestrator *mocktest.Orchestrator
	logger       *zap.Logger
}

func NewMockTestHandler(orchestrator *mocktest.Orchestrator, logger *zap.Logger) *MockTestHandler {
	return &MockTestHandler{
		orchestrator: orchestrator,
		logger:       logger,
	}
}

func (h *MockTestHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.GenerateMockTestRequest](r)
	ownerID := middleware.GetCallerID(r)

	response, err := h.orchestrator.Generate(r.Context(), ownerID, req.Category, req.Subcategory)
	if err != nil {
		h.writeMockTestError(w, err, "generate_failed", "Failed to generate questions from API.")
		return
	}

	h.logger.Info("mock test generated",
		zap.String("owner_id", ownerID),
		zap.String("category", req.Category))
	utils.JSON(w, http.StatusOK, response)
}

func (h *MockTestHandler) NextHandler(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetCallerID(r)

	response, err := h.orchestrator.Next(r.Context(), ownerID)
	if err != nil {
		h.writeMockTestError(w, err, "next_failed", "Failed to fetch next question")
		return
	}
	utils.JSON(w, http.StatusOK, response)
}

func (h *MockTestHandler) AnswerHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.MockTestAnswerRequest](r)
	ownerID := middleware.GetCallerID(r)

	response, err := h.orchestrator.SubmitAnswer(r.Context(), ownerID, *req.QuestionIndex, req.Answer)
	if err != nil {
		h.writeMockTestError(w, err, "answer_failed", "Failed to submit answer")
		return
	}
	utils.JSON(w, http.StatusOK, response)
}

func (h *MockTestHandler) GradeHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.GradeMockTestRequest](r)
	ownerID := middleware.GetCallerID(r)

	response, err := h.orchestrator.Grade(r.Context(), ownerID, req.Answers)
	if err != nil {
		h.writeMockTestError(w, err, "grade_failed", "Failed to grade answers")
		return
	}
	utils.JSON(w, http.StatusOK, response)
}

func (h *MockTestHandler) ResetHandler(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetCallerID(r)

	if err := h.orchestrator.Reset(r.Context(), ownerID); err != nil {
		h.writeMockTestError(w, err, "reset_failed", "Failed to reset mock test")
		return
	}
	utils.JSON(w, http.StatusOK, models.ResetMockTestResponse{Reset: true})
}

func (h *MockTestHandler) writeMockTestError(w http.ResponseWriter, err error, code, message string) {
	var errResp *models.ErrorResponse
	switch {
	case errors.Is(err, mocktest.ErrSessionNotFound):
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "no_active_test",
			Message: "No active mock test for this user.",
		})
	case errors.Is(err, mocktest.ErrTestExhausted):
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "test_exhausted",
			Message: "Mock test completed; generate a new one.",
		})
	case errors.As(err, &errResp):
		utils.JSON(w, http.StatusBadRequest, *errResp)
	case errors.Is(err, mocktest.ErrUpstream):
		h.logger.Error(message, zap.Error(err))
		utils.JSON(w, http.StatusBadGateway, models.ErrorResponse{
			Code:    "upstream_error",
			Message: message,
		})
	default:
		h.logger.Error(message, zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    code,
			Message: message,
		})
	}
}
