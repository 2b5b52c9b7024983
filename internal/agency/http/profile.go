package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/harborview/doorstep/internal/agency/service"
	"github.com/harborview/doorstep/pkg/httpx"
	"github.com/harborview/doorstep/pkg/slogx"
)

type ProfileHandler struct {
	AgentService *service.AgentService
}

// ServeHTTP godoc
//
//	@Summary		Complete Agent Profile
//	@Description	Persist the agent profile for the authenticated identity. The write is an idempotent
//	@Description	upsert, so a retried submit after a failure converges on a single row. New profiles
//	@Description	are always non-manager.
//	@Tags			Agents
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CompleteProfileRequest	true	"Profile fields"
//	@Success		200		{object}	AgentResponse			"the stored profile"
//	@Failure		400		{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	httpx.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/signup/profile [post].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req CompleteProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	identityID := httpx.IdentityIDFromContext(ctx)
	if identityID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	agent, err := h.AgentService.CompleteProfile(ctx, identityID, req.FullName, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidProfile):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Full name is required and phone must be numeric")
		case errors.Is(err, service.ErrAgentNotFound):
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Unknown identity")
		default:
			log.Error("profile completion failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Could not save the profile")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAgentResponse(agent))
}
