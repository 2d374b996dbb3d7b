package http

import (
	"context"
	"net/http"

	"github.com/GIT-Saikat/Blog-Application/internal/logger"
	"github.com/GIT-Saikat/Blog-Application/internal/utils"
)

// auth guards the protected routes.
//
// The token is taken from the "Authorization" header, either raw or as
// "Bearer <token>", and verified by [service.AuthService.ParseToken]. On
// success the subject id is stored in the request context under
// [utils.UserIDCtxKey].
//
// Every rejection (absent header, empty token, expired, forged or otherwise
// invalid token) answers 404 {"message":"Not Authorized"} and stops the
// chain, so no service or store is reached.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteMessage(w, notAuthorizedMessage, http.StatusNotFound)
			return
		}

		tokenString := utils.ParseAuthorizationHeader(authHeader)
		if tokenString == "" {
			log.Debug().Err(ErrEmptyToken).Send()
			utils.WriteMessage(w, notAuthorizedMessage, http.StatusNotFound)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			utils.WriteMessage(w, notAuthorizedMessage, http.StatusNotFound)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
