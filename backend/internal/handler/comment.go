package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forum-dev/forum/shared/api"
	"github.com/forum-dev/forum/shared/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	owner, ok := callerId(w, r)
	if !ok {
		return
	}
	payload, ok := readPayload(w, r)
	if !ok {
		return
	}
	threadId := chi.URLParam(r, "threadId")

	added, err := h.comment.Create(r.Context(), payload, owner, threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedCommentData{AddedComment: added})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	owner, ok := callerId(w, r)
	if !ok {
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	if err := h.comment.Delete(r.Context(), threadId, commentId, owner); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}

func (h *Handler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	userId, ok := callerId(w, r)
	if !ok {
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	liked, err := h.comment.ToggleLike(r.Context(), userId, threadId, commentId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, api.LikeData{Liked: liked})
}
