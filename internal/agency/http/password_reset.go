package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/harborview/doorstep/internal/agency/service"
	"github.com/harborview/doorstep/pkg/httpx"
	"github.com/harborview/doorstep/pkg/slogx"
)

type PasswordResetHandler struct {
	AuthService *service.AuthService
}

// HandleRequest godoc
//
//	@Summary		Request Password Reset
//	@Description	Issue a time-boxed single-use reset token, delivered by mail. Always returns 202
//	@Description	regardless of whether the email is registered.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body	PasswordResetRequest	true	"Account email"
//	@Success		202
//	@Failure		400	{object}	httpx.ErrorResponse	"error, error_description"
//	@Router			/v1/password-reset [post].
func (h *PasswordResetHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	if err := h.AuthService.RequestPasswordReset(ctx, req.Email); err != nil {
		log.Error("password reset request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Could not process the request")
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// HandleComplete godoc
//
//	@Summary		Complete Password Reset
//	@Description	Consume a reset token, set the new password, and revoke all open sessions for the
//	@Description	identity.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body	PasswordResetCompleteRequest	true	"Token and new password"
//	@Success		204
//	@Failure		400	{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		410	{object}	httpx.ErrorResponse	"error, error_description"
//	@Router			/v1/password-reset/complete [post].
func (h *PasswordResetHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req PasswordResetCompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	err := h.AuthService.CompletePasswordReset(ctx, req.Token, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Password must be at least 6 characters")
		case errors.Is(err, service.ErrResetNotFound):
			httpx.WriteError(w, http.StatusGone, "invalid_token", "Reset token not found or expired")
		default:
			log.Error("password reset completion failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Could not reset the password")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
