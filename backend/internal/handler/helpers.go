package handler

import (
	"net/http"

	"github.com/forum-dev/forum/shared/domain"
	mw "github.com/forum-dev/forum/shared/middleware"
	"github.com/forum-dev/forum/shared/utils"
)

const maxBodyBytes = 1 << 20

// callerId returns the authenticated user or writes 401 and returns false.
func callerId(w http.ResponseWriter, r *http.Request) (domain.UserId, bool) {
	userId, ok := mw.GetUserIdFromContext(r)
	if !ok {
		utils.WriteFail(w, http.StatusUnauthorized, "missing authentication")
		return "", false
	}
	return userId, true
}

// readPayload decodes the JSON body or writes 400 and returns false.
func readPayload(w http.ResponseWriter, r *http.Request) (domain.Payload, bool) {
	payload, err := utils.DecodePayload(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return nil, false
	}
	return payload, true
}
