package controllers

import (
	"net/http"

	"github.com/dailyneed/storefront-backend/api/responses"
	"github.com/dailyneed/storefront-backend/api/validators"
	"github.com/dailyneed/storefront-backend/internal/session"
	"github.com/dailyneed/storefront-backend/pkg/logger"
)

type loginRequest struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Avatar    string `json:"avatar"`
	AuthToken string `json:"auth_token"`
}

type updateUserRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	Avatar    *string `json:"avatar"`
	AuthToken *string `json:"auth_token"`
}

// SessionGet returns the current login state.
func SessionGet(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dto, err := svc.Get(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// SessionLogin starts a session for the provided identity.
func SessionLogin(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body loginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithUsername(ctx, body.Username)
		}

		dto, err := svc.Login(ctx, session.LoginInput{
			Username:  body.Username,
			Email:     body.Email,
			Avatar:    body.Avatar,
			AuthToken: body.AuthToken,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// SessionUpdateUser merges the provided fields into the logged-in user.
// Fields absent from the body are left untouched.
func SessionUpdateUser(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body updateUserRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.UpdateUser(r.Context(), session.UpdateUserInput{
			Username:  body.Username,
			Email:     body.Email,
			Avatar:    body.Avatar,
			AuthToken: body.AuthToken,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// SessionLogout ends the current session.
func SessionLogout(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dto, err := svc.Logout(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}
