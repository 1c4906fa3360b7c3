package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/repository"
)

type ExperienceRequest struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location"`
	From        string `json:"from" validate:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type EducationRequest struct {
	School       string `json:"school" validate:"required"`
	Degree       string `json:"degree" validate:"required"`
	FieldOfStudy string `json:"fieldofstudy" validate:"required"`
	From         string `json:"from" validate:"required"`
	To           string `json:"to" validate:"required"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// Me handles GET /api/profile/me
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	profile, err := h.ProfileService.Me(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeMsg(w, "there is no profile for user", http.StatusBadRequest)
			return
		}
		writeServerError(w, err)
		return
	}

	writeJSON(w, profile, http.StatusOK)
}

// UpdateProfile handles POST /api/profile; it creates the profile when the
// user has none and merges the patch into it otherwise.
func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var patch models.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeErrors(w, "invalid request body")
		return
	}

	var messages []string
	if patch.Status == nil || *patch.Status == "" {
		messages = append(messages, "Status is required")
	}
	if patch.Skills == nil || *patch.Skills == "" {
		messages = append(messages, "skills is required")
	}
	if len(messages) > 0 {
		writeErrors(w, messages...)
		return
	}

	profile, err := h.ProfileService.Update(r.Context(), userID, patch)
	if err != nil {
		writeServerError(w, err)
		return
	}

	writeJSON(w, profile, http.StatusOK)
}

// AllProfiles handles GET /api/profile (public)
func (h *Handlers) AllProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.ProfileService.All(r.Context())
	if err != nil {
		writeServerError(w, err)
		return
	}

	writeJSON(w, profiles, http.StatusOK)
}

// ProfileByUser handles GET /api/profile/user/{user_id} (public)
func (h *Handlers) ProfileByUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	profile, err := h.ProfileService.ByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeMsg(w, "Profile not found!", http.StatusBadRequest)
			return
		}
		writeServerError(w, err)
		return
	}

	writeJSON(w, profile, http.StatusOK)
}

// DeleteProfile handles DELETE /api/profile; the user record and the user's
// posts go with the profile.
func (h *Handlers) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	err := h.ProfileService.Delete(r.Context(), userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		writeServerError(w, err)
		return
	}

	writeMsg(w, "user deleted", http.StatusOK)
}

// AddExperience handles PUT /api/profile/experience
func (h *Handlers) AddExperience(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req ExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrors(w, "invalid request body")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeErrors(w, validationMessages(err,
			[]string{"Title", "Company", "From"},
			map[string]string{
				"Title":   "title is required",
				"Company": "Company is required",
				"From":    "From Date is required",
			})...)
		return
	}

	exp := &models.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	}

	profile, err := h.ProfileService.AddExperience(r.Context(), userID, exp)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeMsg(w, "there is no profile for user", http.StatusBadRequest)
			return
		}
		writeServerError(w, err)
		return
	}

	writeJSON(w, profile, http.StatusOK)
}

// DeleteExperience handles DELETE /api/profile/experience/{exp_id}
func (h *Handlers) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	expID := mux.Vars(r)["exp_id"]

	profile, err := h.ProfileService.RemoveExperience(r.Context(), userID, expID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeMsg(w, "there is no profile for user", http.StatusBadRequest)
			return
		}
		writeServerError(w, err)
		return
	}

	writeJSON(w, profile, http.StatusOK)
}

// AddEducation handles PUT /api/profile/education
func (h *Handlers) AddEducation(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req EducationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrors(w, "invalid request body")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeErrors(w, validationMessages(err,
			[]string{"School", "Degree", "FieldOfStudy", "From", "To"},
			map[string]string{
				"School":       "School is required",
				"Degree":       "Degree is required",
				"FieldOfStudy": "Field of study is required",
				"From":         "From Date is required",
				"To":           "To Date is required",
			})...)
		return
	}

	edu := &models.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	}

	profile, err := h.ProfileService.AddEducation(r.Context(), userID, edu)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeMsg(w, "there is no profile for user", http.StatusBadRequest)
			return
		}
		writeServerError(w, err)
		return
	}

	writeJSON(w, profile, http.StatusOK)
}

// DeleteEducation handles DELETE /api/profile/education/{edu_id}
func (h *Handlers) DeleteEducation(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	eduID := mux.Vars(r)["edu_id"]

	profile, err := h.ProfileService.RemoveEducation(r.Context(), userID, eduID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeMsg(w, "there is no profile for user", http.StatusBadRequest)
			return
		}
		writeServerError(w, err)
		return
	}

	writeJSON(w, profile, http.StatusOK)
}

// GithubRepos handles GET /api/profile/github/{username} (public)
func (h *Handlers) GithubRepos(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	repos, err := h.GithubService.Repos(r.Context(), username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeMsg(w, "No Github profile found", http.StatusNotFound)
			return
		}
		writeServerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(repos)
}
