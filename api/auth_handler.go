package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zenatech-mv/site-backend/auth"
	"github.com/zenatech-mv/site-backend/errs"
	"github.com/zenatech-mv/site-backend/models"
)

// authenticator is the slice of the auth service the handler needs.
type authenticator interface {
	SignIn(email, password string) (*models.AdminUser, string, error)
	SignOut(token string)
}

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	auth      authenticator
}

func newAuthHandler(authService authenticator) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		auth:      authService,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string            `json:"token"`
	User  *models.AdminUser `json:"user"`
}

// login exchanges credentials for a bearer token. Bad credentials and valid
// credentials without an active admin record both come back as 401 so the
// response does not reveal which accounts exist.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode login request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if req.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		user, token, err := h.auth.SignIn(req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrNotAdmin) {
				h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, loginResponse{Token: token, User: user})
	}
}

// logout revokes the presented session. It succeeds even when the token is
// already invalid; there is nothing useful to report in that case.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r); token != "" {
			h.auth.SignOut(token)
		}

		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}

// currentUser returns the admin account behind the presented token. The auth
// middleware already resolved it.
func (h authHandler) currentUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := adminUserFromCtx(r.Context())
		if user == nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		h.responder.WriteJSON(w, user)
	}
}
