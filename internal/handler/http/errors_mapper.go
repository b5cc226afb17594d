package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order: wrapped sentinels such as
// service.ErrTokenExpired must come before the errors they wrap.
var errorResponses = []struct {
	target   error
	response errorResponse
}{
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrInvalidInput, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrConflict, errorResponse{http.StatusConflict, app.MsgEmailAlreadyExists}},
	{service.ErrTokenExpired, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpired}},
	{service.ErrTokenMissing, errorResponse{http.StatusUnauthorized, app.MsgUnauthorized}},
	{service.ErrTokenInvalid, errorResponse{http.StatusUnauthorized, app.MsgUnauthorized}},
	{ErrInvalidAuthorizationHeader, errorResponse{http.StatusUnauthorized, app.MsgUnauthorized}},
	{ErrNoPrincipal, errorResponse{http.StatusUnauthorized, app.MsgUnauthorized}},
	{service.ErrUnauthorized, errorResponse{http.StatusUnauthorized, app.MsgInvalidEmailPassword}},
	{service.ErrNotFound, errorResponse{http.StatusNotFound, app.MsgNoteNotFound}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.response
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}
