package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/harborview/doorstep/internal/agency/service"
	"github.com/harborview/doorstep/pkg/httpx"
	"github.com/harborview/doorstep/pkg/slogx"
)

type InviteIssueHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Issue Agent Invite
//	@Description	Mint a 6-digit invite code for a prospective agent. Manager-only. The code and the
//	@Description	temporary password are shared with the invitee out-of-band; both are required to redeem.
//	@Description	Re-issuing for the same email replaces any pending invite.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		IssueInviteRequest	true	"Invite request"
//	@Success		200		{object}	IssueInviteResponse	"code, expires_at"
//	@Failure		400		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/issue [post].
func (h *InviteIssueHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req IssueInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	actingID := httpx.IdentityIDFromContext(ctx)
	if actingID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	issued, err := h.InviteService.IssueInvite(ctx, req.Email, req.TempPassword, actingID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "A valid email is required")
		case errors.Is(err, service.ErrInvalidPassword):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Temporary password must be at least 6 characters")
		case errors.Is(err, service.ErrDuplicateEmail):
			httpx.WriteError(w, http.StatusConflict, "duplicate_email", "An agent with this email already exists")
		default:
			log.Error("failed to issue invite", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to create an invite")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, IssueInviteResponse{
		Code:      issued.Code,
		ExpiresAt: issued.ExpiresAt,
	})
}

type InviteRedeemHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Redeem Agent Invite
//	@Description	Redeem an invite by presenting the exact email, temporary password, and code triple.
//	@Description	On success the new identity is created and signed in; the response carries the access
//	@Description	and session tokens for the onboarding flow.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RedeemInviteRequest	true	"Redemption request"
//	@Success		200		{object}	LoginResponse		"identity_id, access_token, session_token"
//	@Failure		400		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		410		{object}	httpx.ErrorResponse	"error, error_description"
//	@Router			/v1/invites/redeem [post].
func (h *InviteRedeemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req RedeemInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	result, err := h.InviteService.RedeemInvite(ctx, req.Email, req.TempPassword, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "A valid email is required")
		case errors.Is(err, service.ErrCodeNotFound):
			httpx.WriteError(w, http.StatusBadRequest, "code_not_found", "No invite matches the provided details")
		case errors.Is(err, service.ErrInviteExpired):
			httpx.WriteError(w, http.StatusGone, "invite_expired", "This invite has expired")
		case errors.Is(err, service.ErrSignupFailed):
			httpx.WriteError(w, http.StatusConflict, "signup_failed", "An account already exists for this email")
		case errors.Is(err, service.ErrLoginFailed):
			httpx.WriteError(w, http.StatusInternalServerError, "login_failed", "Account created but sign-in failed; sign in directly")
		default:
			log.Error("failed to redeem invite", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to redeem invite")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toLoginResponse(result))
}
