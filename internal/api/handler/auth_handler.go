package handler

import (
	"encoding/json"
	"net/http"

	"code_arena/internal/app/service"
	"code_arena/internal/common"
	"code_arena/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Post("/google", h.oauthStub(model.ProviderGoogle))
	r.Post("/github", h.oauthStub(model.ProviderGithub))
	r.Post("/linkedin", h.oauthStub(model.ProviderLinkedin))
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.authService.Register(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

// oauthStub accepts any payload and returns a fabricated, non-persisted user
// with a placeholder token. Not real authentication.
func (h *AuthHandler) oauthStub(provider string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		common.RespondWithJSON(w, http.StatusOK, h.authService.OAuthStub(provider))
	}
}
