package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/GIT-Saikat/Blog-Application/internal/logger"
	"github.com/GIT-Saikat/Blog-Application/internal/utils"
)

// decodeJSON reads the request body into dst. On failure it answers status
// itself and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, status int) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, ErrInvalidJSON.Error(), status)
		return false
	}
	return true
}

// callerID returns the user id stored by the auth middleware. A protected
// handler reached without it answers the same way the middleware does.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoUserInContext).Send()
		utils.WriteMessage(w, notAuthorizedMessage, http.StatusNotFound)
		return "", false
	}
	return userID, true
}

func bearer(token string) string {
	return fmt.Sprintf("Bearer %s", token)
}
