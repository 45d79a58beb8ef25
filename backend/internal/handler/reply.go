package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forum-dev/forum/shared/api"
	"github.com/forum-dev/forum/shared/utils"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	owner, ok := callerId(w, r)
	if !ok {
		return
	}
	payload, ok := readPayload(w, r)
	if !ok {
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	added, err := h.reply.Create(r.Context(), payload, threadId, commentId, owner)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, api.AddedReplyData{AddedReply: added})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	owner, ok := callerId(w, r)
	if !ok {
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")
	replyId := chi.URLParam(r, "replyId")

	if err := h.reply.Delete(r.Context(), threadId, commentId, replyId, owner); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
