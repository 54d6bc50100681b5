package auth

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bookchat/seeker/internal/model/user"
	"github.com/bookchat/seeker/pkg/utils"
)

// TokenStore tracks the bearer tokens issued by the dev API.
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[string]string // token -> email
}

// NewTokenStore returns an empty TokenStore.
func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[string]string)}
}

// Issue mints a token for the given account.
func (s *TokenStore) Issue(email string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = email
	s.mu.Unlock()
	return token
}

// Valid reports whether the token was issued by this store.
func (s *TokenStore) Valid(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[token]
	return ok
}

// Handler serves the account endpoints of the dev booking API.
type Handler struct {
	users  user.Store
	tokens *TokenStore
}

// New creates the auth handler.
func New(users user.Store, tokens *TokenStore) *Handler {
	return &Handler{users: users, tokens: tokens}
}

// RegisterRoutes mounts the account routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/users/register", h.handleRegister)
	r.Post("/users/login", h.handleLogin)
}

// handleRegister creates an account from the JSON registration form.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var payload user.Profile
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.Name == "" || payload.Email == "" || payload.Phone == "" ||
		payload.Password == "" || payload.Role == "" {
		utils.RespondError(w, http.StatusBadRequest, "all fields are required")
		return
	}

	if !h.users.Create(payload) {
		utils.RespondError(w, http.StatusBadRequest, "email already registered")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]string{
		"name":  payload.Name,
		"email": payload.Email,
		"role":  payload.Role,
	})
}

// handleLogin verifies the form credentials and issues a bearer token. The
// form field is named username but carries the email, matching the original
// backend's OAuth2 password flow.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")

	account, ok := h.users.FindByEmail(email)
	if !ok || account.Password != password {
		utils.RespondError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"access_token": h.tokens.Issue(email),
		"token_type":   "bearer",
	})
}
