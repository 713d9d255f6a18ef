package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/example/perfdash/internal/auth"
	"github.com/example/perfdash/internal/contract"
	"github.com/example/perfdash/internal/middlewares"
	"github.com/example/perfdash/internal/objective"
	"github.com/example/perfdash/internal/profile"
	"github.com/example/perfdash/internal/user"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	ObjectiveHandler *objective.Handler
	ProfileHandler   *profile.Handler
	ContractHandler  *contract.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/google", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/objectives", objective.Routes(cfg.ObjectiveHandler))
		r.Mount("/profiles", profile.Routes(cfg.ProfileHandler))
		r.Mount("/contract", contract.Routes(cfg.ContractHandler))
		r.Mount("/users", user.Routes(cfg.UserHandler))
	})

	return r
}
