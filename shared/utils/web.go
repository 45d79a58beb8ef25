package utils

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/forum-dev/forum/shared/api"
	"github.com/forum-dev/forum/shared/domain"
	"github.com/forum-dev/forum/shared/errors"
	"github.com/forum-dev/forum/shared/logger"
)

const internalErrorMessage = "internal server error"

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// WriteSuccess writes {"status":"success","data":data}. data may be nil.
func WriteSuccess(w http.ResponseWriter, statusCode int, data any) {
	WriteJSON(w, statusCode, api.Response{Status: api.StatusSuccess, Data: data})
}

// WriteFail writes a client error envelope with an explicit status.
func WriteFail(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, api.Response{Status: api.StatusFail, Message: message})
}

// WriteErrorAndStatusCode maps err to its status code. Client errors keep their
// message; anything unclassified is logged and reported as a generic 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	statusCode := errors.StatusCode(err)
	if statusCode >= http.StatusInternalServerError {
		logger.Log.Error("request failed", "error", err)
		WriteJSON(w, statusCode, api.Response{Status: api.StatusError, Message: internalErrorMessage})
		return
	}
	WriteFail(w, statusCode, err.Error())
}

// DecodePayload reads a JSON object body. Field presence and types are left
// to the domain constructors.
func DecodePayload(r io.ReadCloser) (domain.Payload, error) {
	var payload domain.Payload
	err := json.NewDecoder(r).Decode(&payload)
	if stderrors.Is(err, io.EOF) {
		return domain.Payload{}, nil
	}
	if err != nil {
		logger.Log.Debug("invalid request body", "error", err)
		return nil, &errors.ErrorWithStatusCode{Message: "request body is invalid json", StatusCode: http.StatusBadRequest}
	}
	if payload == nil {
		payload = domain.Payload{}
	}
	return payload, nil
}
