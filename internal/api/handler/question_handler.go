package handler

import (
	"encoding/json"
	"net/http"

	"code_arena/internal/app/service"
	"code_arena/internal/common"
	"code_arena/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type QuestionHandler struct {
	questionService *service.QuestionService
}

func NewQuestionHandler(qs *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: qs}
}

// RegisterRoutes wires the public catalog routes. The authenticated create
// route is registered separately by the router.
func (h *QuestionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listQuestions)
	r.Get("/{questionID}", h.getQuestion)
}

func (h *QuestionHandler) listQuestions(w http.ResponseWriter, r *http.Request) {
	filter := model.QuestionFilter{
		Language:   r.URL.Query().Get("language"),
		Difficulty: r.URL.Query().Get("difficulty"),
		Topic:      r.URL.Query().Get("topic"),
	}

	summaries, err := h.questionService.ListQuestions(r.Context(), filter)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, summaries)
}

func (h *QuestionHandler) getQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, "questionID")

	detail, err := h.questionService.GetQuestion(r.Context(), questionID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, detail)
}

func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req service.CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.questionService.CreateQuestion(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, resp)
}
