package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pilmart-be/internal/middleware"
	"pilmart-be/internal/user"
	"pilmart-be/internal/utils"
)

type AuthHandler struct {
	users user.Service
}

func NewAuthHandler(users user.Service) *AuthHandler {
	return &AuthHandler{users: users}
}

func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
	r.Get("/me", h.me)
	r.With(middleware.RequireUser).Put("/update", h.update)
}

type registerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decode(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" || req.Password == "" {
		fail(w, http.StatusBadRequest, "name, phone and password are required")
		return
	}

	u, err := h.users.Register(r.Context(), req.Name, req.Phone, req.Password, req.Address)
	if err != nil {
		if errors.Is(err, user.ErrPhoneExists) {
			fail(w, http.StatusBadRequest, "phone number already registered")
			return
		}
		fail(w, http.StatusInternalServerError, "registration failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "userId": u.ID})
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}

	token, u, err := h.users.Login(r.Context(), req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			fail(w, http.StatusUnauthorized, "invalid phone number or password")
			return
		}
		fail(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
		"user":    u.Profile(),
	})
}

// logout exists for client parity; the token is discarded client-side.
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "user": nil})
		return
	}

	u, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "user": nil})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": u.Profile()})
}

type updateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (h *AuthHandler) update(w http.ResponseWriter, r *http.Request) {
	id, _ := utils.GetUserIDFromContext(r.Context())

	var req updateProfileRequest
	if !decode(w, r, &req) {
		return
	}

	u, err := h.users.UpdateProfile(r.Context(), id, user.UpdateProfileParams{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			fail(w, http.StatusNotFound, "user not found")
			return
		}
		fail(w, http.StatusInternalServerError, "profile update failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": u.Profile()})
}
