package http

import (
	"net/http"

	"github.com/GIT-Saikat/Blog-Application/internal/utils"
	"github.com/GIT-Saikat/Blog-Application/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req models.CreatePostRequest
	if !decodeJSON(w, r, &req, http.StatusBadRequest) {
		return
	}

	post, err := h.services.PostService.CreatePost(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, models.CreatePostResponse{
		Message: "Post created successfully",
		PostID:  post.ID,
	}, http.StatusOK)
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	utils.WriteJSON(w, models.ListPostsResponse{
		Message:  "Posts fetched successfully",
		AllPosts: posts,
	}, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PostService.GetPost(r.Context(), chi.URLParam(r, "postId"))
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, models.PostResponse{
		Message: "Post fetched successfully",
		Post:    post,
	}, http.StatusOK)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req models.UpdatePostRequest
	if !decodeJSON(w, r, &req, http.StatusBadRequest) {
		return
	}

	post, err := h.services.PostService.UpdatePost(r.Context(), userID, chi.URLParam(r, "postId"), req)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, models.PostResponse{
		Message: "Post updated successfully",
		Post:    post,
	}, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.services.PostService.DeletePost(r.Context(), userID, chi.URLParam(r, "postId")); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
