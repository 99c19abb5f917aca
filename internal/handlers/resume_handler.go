package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"hirehub/assessment/internal/ats"
	"hirehub/assessment/internal/middleware"
	"hirehub/assessment/internal/models"
	"hirehub/assessment/internal/utils"
)

type ResumeHandler struct {
	scorer *ats.Scorer
	logger *zap.Logger
}

func NewResumeHandler(scorer *ats.Scorer, logger *zap.Logger) *ResumeHandler {
	return &ResumeHandler{
		scorer: scorer,
		logger: logger,
	}
}

// ScoreHandler returns the ATS match score for a resume against a job
// description. This flow has no session to keep alive, so any upstream or
// parse failure is surfaced to the caller.
func (h *ResumeHandler) ScoreHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.ResumeScoreRequest](r)

	response, err := h.scorer.Score(r.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		h.logger.Error("resume scoring failed", zap.Error(err))
		utils.JSON(w, http.StatusBadGateway, models.ErrorResponse{
			Code:    "resume_score_failed",
			Message: "Failed to score resume",
		})
		return
	}

	utils.JSON(w, http.StatusOK, response)
}
