package appointment

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bookchat/seeker/internal/model/appointment"
	"github.com/bookchat/seeker/pkg/utils"
)

// TokenChecker validates bearer tokens issued by the auth handler.
type TokenChecker interface {
	Valid(token string) bool
}

// Handler serves the seeker's appointment book.
type Handler struct {
	appointments appointment.Store
	tokens       TokenChecker
}

// New creates the appointment handler.
func New(appointments appointment.Store, tokens TokenChecker) *Handler {
	return &Handler{appointments: appointments, tokens: tokens}
}

// RegisterRoutes mounts the appointment routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/appointments/me/upcoming", h.handleUpcoming)
	r.Get("/appointments/me/past", h.handlePast)
}

func (h *Handler) handleUpcoming(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		utils.RespondError(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}
	utils.RespondJSON(w, http.StatusOK, h.appointments.Upcoming())
}

func (h *Handler) handlePast(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		utils.RespondError(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}
	utils.RespondJSON(w, http.StatusOK, h.appointments.Past())
}

// authorized checks the Authorization header for a valid bearer token.
func (h *Handler) authorized(r *http.Request) bool {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	return ok && h.tokens.Valid(token)
}
