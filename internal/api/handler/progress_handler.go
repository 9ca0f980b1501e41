package handler

import (
	"net/http"

	"code_arena/internal/api/middleware"
	"code_arena/internal/app/service"
	"code_arena/internal/common"
)

type ProgressHandler struct {
	progressService *service.ProgressService
}

func NewProgressHandler(ps *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: ps}
}

func (h *ProgressHandler) GetUserProgress(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	report, err := h.progressService.GetUserProgress(r.Context(), user)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, report)
}

func (h *ProgressHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.progressService.GetLeaderboard(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, entries)
}
