package http

import (
	"net/http"

	"github.com/GIT-Saikat/Blog-Application/internal/logger"
	"github.com/GIT-Saikat/Blog-Application/internal/utils"
	"github.com/GIT-Saikat/Blog-Application/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if !decodeJSON(w, r, &req, http.StatusUnprocessableEntity) {
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	log.Info().Str("user_id", registeredUser.ID).Str("username", registeredUser.Username).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Message: "User registered successfully",
		UserID:  registeredUser.ID,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if !decodeJSON(w, r, &req, http.StatusUnprocessableEntity) {
		return
	}

	log.Debug().Str("username", req.Username).Str("email", req.Email).Msg("login attempt")

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Str("user_id", foundUser.ID).Msg("user successfully logged in")

	w.Header().Set("Authorization", bearer(token.String()))
	utils.WriteJSON(w, models.LoginResponse{
		Message: "Login successful",
		Token:   token.String(),
	}, http.StatusOK)
}
