package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"devconnect/internal/middleware"
	"devconnect/internal/repository"
	"devconnect/internal/service"
)

type PostRequest struct {
	Text string `json:"text" validate:"required"`
}

// CreatePost handles POST /api/posts
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrors(w, "invalid request body")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeErrors(w, "Text is required")
		return
	}

	post, err := h.PostService.Create(r.Context(), userID, req.Text)
	if err != nil {
		writeServerError(w, err)
		return
	}

	writeJSON(w, post, http.StatusOK)
}

// GetPosts handles GET /api/posts; newest first.
func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.GetAll(r.Context())
	if err != nil {
		writeServerError(w, err)
		return
	}

	writeJSON(w, posts, http.StatusOK)
}

// GetPost handles GET /api/posts/{id}
func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.PostService.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeMsg(w, "Post not found", http.StatusNotFound)
			return
		}
		writeServerError(w, err)
		return
	}

	writeJSON(w, post, http.StatusOK)
}

// DeletePost handles DELETE /api/posts/{id}; owner only.
func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	postID := mux.Vars(r)["id"]

	err := h.PostService.Delete(r.Context(), postID, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeMsg(w, "Post not found", http.StatusNotFound)
		case errors.Is(err, service.ErrForbidden):
			writeMsg(w, "Not authorized", http.StatusUnauthorized)
		default:
			writeServerError(w, err)
		}
		return
	}

	writeMsg(w, "Post deleted", http.StatusOK)
}

// LikePost handles PUT /api/posts/like/{id}
func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	postID := mux.Vars(r)["id"]

	likes, err := h.PostService.Like(r.Context(), postID, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeMsg(w, "Post not found", http.StatusNotFound)
		case errors.Is(err, repository.ErrAlreadyLiked):
			writeMsg(w, "Post already liked", http.StatusBadRequest)
		default:
			writeServerError(w, err)
		}
		return
	}

	writeJSON(w, likes, http.StatusOK)
}

// UnlikePost handles PUT /api/posts/unlike/{id}
func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	postID := mux.Vars(r)["id"]

	likes, err := h.PostService.Unlike(r.Context(), postID, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeMsg(w, "Post not found", http.StatusNotFound)
		case errors.Is(err, repository.ErrNotLiked):
			writeMsg(w, "Post has not been liked", http.StatusBadRequest)
		default:
			writeServerError(w, err)
		}
		return
	}

	writeJSON(w, likes, http.StatusOK)
}

// AddComment handles POST /api/posts/comment/{id}
func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	postID := mux.Vars(r)["id"]

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrors(w, "invalid request body")
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeErrors(w, "Text is required")
		return
	}

	comments, err := h.PostService.AddComment(r.Context(), postID, userID, req.Text)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeMsg(w, "Post not found", http.StatusNotFound)
			return
		}
		writeServerError(w, err)
		return
	}

	writeJSON(w, comments, http.StatusOK)
}

// DeleteComment handles DELETE /api/posts/comment/{id}/{comment_id};
// removal is by the comment's own id, comment author only.
func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	vars := mux.Vars(r)

	comments, err := h.PostService.RemoveComment(r.Context(), vars["id"], vars["comment_id"], userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeMsg(w, "Post not found", http.StatusNotFound)
		case errors.Is(err, service.ErrCommentNotFound):
			writeMsg(w, "Comment does not exist", http.StatusNotFound)
		case errors.Is(err, service.ErrForbidden):
			writeMsg(w, "User not authorized", http.StatusUnauthorized)
		default:
			writeServerError(w, err)
		}
		return
	}

	writeJSON(w, comments, http.StatusOK)
}
