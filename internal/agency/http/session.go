package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/harborview/doorstep/internal/agency/service"
	"github.com/harborview/doorstep/pkg/httpx"
	"github.com/harborview/doorstep/pkg/jwtx"
	"github.com/harborview/doorstep/pkg/slogx"
)

type SessionHandler struct {
	AuthService *service.AuthService
}

// HandleCreate godoc
//
//	@Summary		Sign In
//	@Description	Authenticate with email and password. Returns a short-lived access token plus an
//	@Description	opaque session token. Deactivated agents are refused.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest		true	"Credentials"
//	@Success		200		{object}	LoginResponse		"identity_id, access_token, session_token"
//	@Failure		401		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	httpx.ErrorResponse	"error, error_description"
//	@Router			/v1/session [post].
func (h *SessionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	result, err := h.AuthService.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "Email or password is incorrect")
		case errors.Is(err, service.ErrAccountDisabled):
			httpx.WriteError(w, http.StatusForbidden, "account_deactivated", "This account has been deactivated")
		default:
			log.Error("sign-in failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Sign-in failed")
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toLoginResponse(result))
}

// HandleGet godoc
//
//	@Summary		Session Introspection
//	@Description	Return the authenticated identity, scopes, and token expiry for the presented
//	@Description	access token.
//	@Tags			Sessions
//	@Produce		json
//	@Success		200	{object}	SessionResponse		"session_id, identity_id, email, scopes"
//	@Failure		401	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/session [get].
func (h *SessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := ctx.Value(httpx.CtxKeyClaims).(jwtx.Claims)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, SessionResponse{
		SessionID:  claims.SessionID,
		IdentityID: claims.Subject,
		Email:      claims.Email,
		Scopes:     claims.Scopes,
		ExpiresAt:  claims.ExpiresAt,
	})
}

// HandleDelete godoc
//
//	@Summary		Sign Out
//	@Description	Revoke the session behind the presented session token. Revoking an unknown or
//	@Description	already-revoked token succeeds silently.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body	SessionTokenRequest	true	"Session token"
//	@Success		204
//	@Failure		400	{object}	httpx.ErrorResponse	"error, error_description"
//	@Router			/v1/session [delete].
func (h *SessionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req SessionTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}
	if req.SessionToken == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "session_token is required")
		return
	}

	if err := h.AuthService.SignOut(ctx, req.SessionToken); err != nil {
		log.Error("sign-out failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Sign-out failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleRenew godoc
//
//	@Summary		Renew Access Token
//	@Description	Issue a fresh access token against a still-active session. Scopes are re-derived,
//	@Description	so promotions and profile completion take effect on renewal.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SessionTokenRequest	true	"Session token"
//	@Success		200		{object}	LoginResponse		"access_token, session_token"
//	@Failure		401		{object}	httpx.ErrorResponse	"error, error_description"
//	@Router			/v1/session/renew [post].
func (h *SessionHandler) HandleRenew(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req SessionTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	result, err := h.AuthService.RenewAccessToken(ctx, req.SessionToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			httpx.WriteError(w, http.StatusUnauthorized, "invalid_session", "Session not found or expired")
		case errors.Is(err, service.ErrAccountDisabled):
			httpx.WriteError(w, http.StatusForbidden, "account_deactivated", "This account has been deactivated")
		default:
			log.Error("token renewal failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Token renewal failed")
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toLoginResponse(result))
}
