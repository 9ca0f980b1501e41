package api

import (
	"net/http"
	"time"

	"code_arena/internal/api/handler"
	"code_arena/internal/api/middleware"
	"code_arena/internal/app/service"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	tokenAuth *jwtauth.JWTAuth,
	authService *service.AuthService,
	questionService *service.QuestionService,
	submissionService *service.SubmissionService,
	progressService *service.ProgressService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies "Authorization: Bearer T" tokens and puts claims in context.
	// Authentication is only enforced where middleware.Authenticator runs.
	r.Use(jwtauth.Verifier(tokenAuth))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handler.NewAuthHandler(authService)
	questionHandler := handler.NewQuestionHandler(questionService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	progressHandler := handler.NewProgressHandler(progressService)

	authenticated := middleware.Authenticator(authService)

	r.Route("/api", func(api chi.Router) {
		// Liveness
		api.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message": "Code Arena API"}`))
		})

		api.Route("/auth", authHandler.RegisterRoutes)

		api.Route("/questions", func(questions chi.Router) {
			questionHandler.RegisterRoutes(questions)

			questions.Group(func(protected chi.Router) {
				protected.Use(authenticated)
				// No admin gate yet; any authenticated user may create.
				protected.Post("/", questionHandler.CreateQuestion)
				protected.Post("/{questionID}/submit", submissionHandler.Submit)
			})
		})

		api.Group(func(protected chi.Router) {
			protected.Use(authenticated)
			protected.Get("/user/progress", progressHandler.GetUserProgress)
		})

		api.Get("/leaderboard", progressHandler.GetLeaderboard)
	})

	return r
}
