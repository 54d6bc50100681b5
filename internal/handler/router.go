package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	appointmentHandler "github.com/bookchat/seeker/internal/handler/appointment"
	authHandler "github.com/bookchat/seeker/internal/handler/auth"
	middlewarePkg "github.com/bookchat/seeker/internal/middleware"
	appointmentModel "github.com/bookchat/seeker/internal/model/appointment"
	"github.com/bookchat/seeker/internal/model/user"
)

// NewRouter wires the dev booking API routes to their stores.
func NewRouter(users user.Store, appointments appointmentModel.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	tokens := authHandler.NewTokenStore()

	authH := authHandler.New(users, tokens)
	appointmentH := appointmentHandler.New(appointments, tokens)

	authH.RegisterRoutes(r)
	appointmentH.RegisterRoutes(r)

	return r
}
