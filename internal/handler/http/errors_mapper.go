package http

import (
	"errors"
	"net/http"

	"github.com/GIT-Saikat/Blog-Application/internal/logger"
	"github.com/GIT-Saikat/Blog-Application/internal/service"
	"github.com/GIT-Saikat/Blog-Application/internal/store"
	"github.com/GIT-Saikat/Blog-Application/internal/utils"
	"github.com/GIT-Saikat/Blog-Application/internal/validators"
	"github.com/GIT-Saikat/Blog-Application/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrMissingID:               http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotAuthor:               http.StatusForbidden,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrPostNotFound:      http.StatusNotFound,
	store.ErrCommentNotFound:   http.StatusNotFound,

	store.ErrReferencedRecordNotFound: http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:         http.StatusInternalServerError,
	store.ErrExecutingQuery:           http.StatusInternalServerError,
	store.ErrExecutingStatement:       http.StatusInternalServerError,
	store.ErrScanningRow:              http.StatusInternalServerError,
	store.ErrScanningRows:             http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrWrongPassword: "invalid credentials",
	service.ErrNotAuthor:     "you are not the author of this resource",

	store.ErrUserAlreadyExists: "username or email already exists",
	store.ErrNoUserWasFound:    "user not found",
	store.ErrPostNotFound:      "post not found",
	store.ErrCommentNotFound:   "comment not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return http.StatusText(status)
}

// writeError responds to a failed service call. Validation failures answer
// validationStatus with the rejected fields listed; everything else is
// resolved through errorStatusMap. Internal details never reach the body.
func writeError(w http.ResponseWriter, r *http.Request, err error, validationStatus int) {
	log := logger.FromRequest(r)

	if errors.Is(err, service.ErrInvalidDataProvided) {
		log.Debug().Err(err).Msg("invalid data provided")
		utils.WriteJSON(w, validationResponse(err), validationStatus)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, messageFromError(err, status), status)
}

func validationResponse(err error) models.ValidationErrorResponse {
	response := models.ValidationErrorResponse{Message: "invalid data provided"}

	var issues validators.Issues
	if errors.As(err, &issues) {
		for _, issue := range issues {
			response.Errors = append(response.Errors, models.ValidationIssue{
				Field:   issue.Field,
				Message: issue.Message,
			})
		}
	}

	return response
}
