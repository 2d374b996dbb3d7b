package http

import (
	"net/http"

	"github.com/GIT-Saikat/Blog-Application/internal/utils"
	"github.com/GIT-Saikat/Blog-Application/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if !decodeJSON(w, r, &req, http.StatusBadRequest) {
		return
	}

	comment, err := h.services.CommentService.CreateComment(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, models.CreateCommentResponse{
		Message:   "Comment created successfully",
		CommentID: comment.ID,
	}, http.StatusCreated)
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.services.CommentService.ListComments(r.Context())
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	utils.WriteJSON(w, models.ListCommentsResponse{
		Message:     "Comments fetched successfully",
		AllComments: comments,
	}, http.StatusOK)
}

func (h *Handler) listCommentsByPost(w http.ResponseWriter, r *http.Request) {
	comments, err := h.services.CommentService.ListCommentsByPost(r.Context(), chi.URLParam(r, "postId"))
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	utils.WriteJSON(w, models.PostCommentsResponse{
		Message:  "Comments fetched successfully",
		Comments: comments,
	}, http.StatusOK)
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req models.UpdateCommentRequest
	if !decodeJSON(w, r, &req, http.StatusBadRequest) {
		return
	}

	comment, err := h.services.CommentService.UpdateComment(r.Context(), userID, chi.URLParam(r, "commentId"), req)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, models.CommentResponse{
		Message: "Comment updated successfully",
		Comment: comment,
	}, http.StatusOK)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.services.CommentService.DeleteComment(r.Context(), userID, chi.URLParam(r, "commentId")); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
