package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"devconnect/internal/middleware"
	"devconnect/internal/repository"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// Register handles POST /api/users
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrors(w, "invalid request body")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeErrors(w, validationMessages(err,
			[]string{"Name", "Email", "Password"},
			map[string]string{
				"Name":     "Name is required",
				"Email":    "email is required",
				"Password": "password is required of min 6 or more character",
			})...)
		return
	}

	token, err := h.AuthService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			writeErrors(w, "User already exists")
			return
		}
		writeServerError(w, err)
		return
	}

	writeJSON(w, TokenResponse{Token: token}, http.StatusOK)
}

// Login handles POST /api/auth
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrors(w, "invalid request body")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeErrors(w, validationMessages(err,
			[]string{"Email", "Password"},
			map[string]string{
				"Email":    "email is required",
				"Password": "Bad Password",
			})...)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// unknown email and wrong password produce the same body
		if errors.Is(err, repository.ErrInvalidCredentials) {
			writeErrors(w, "invalid credential")
			return
		}
		writeServerError(w, err)
		return
	}

	writeJSON(w, TokenResponse{Token: token}, http.StatusOK)
}

// CurrentUser handles GET /api/auth; the password hash never leaves the model.
func (h *Handlers) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMsg(w, "token is not valid", http.StatusUnauthorized)
		return
	}

	user, err := h.AuthService.CurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeMsg(w, "User not found", http.StatusNotFound)
			return
		}
		writeServerError(w, err)
		return
	}

	writeJSON(w, user, http.StatusOK)
}
