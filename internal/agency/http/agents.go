package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/harborview/doorstep/internal/agency/service"
	"github.com/harborview/doorstep/pkg/httpx"
	"github.com/harborview/doorstep/pkg/slogx"
)

type AgentsHandler struct {
	AgentService *service.AgentService
}

// HandleList godoc
//
//	@Summary		List Agents
//	@Description	Return all agents in seniority order (oldest account first). Manager-only.
//	@Tags			Agents
//	@Produce		json
//	@Success		200	{array}		AgentResponse
//	@Failure		401	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/agents [get].
func (h *AgentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	agents, err := h.AgentService.ListAgents(ctx)
	if err != nil {
		log.Error("failed to list agents", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Could not list agents")
		return
	}

	out := make([]AgentResponse, 0, len(agents))
	for _, a := range agents {
		out = append(out, toAgentResponse(a))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Get Agent
//	@Description	Return a single agent profile.
//	@Tags			Agents
//	@Produce		json
//	@Param			id	path		string	true	"Agent id"
//	@Success		200	{object}	AgentResponse
//	@Failure		404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/agents/{id} [get].
func (h *AgentsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	agent, err := h.AgentService.GetAgent(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrAgentNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Agent not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to fetch agent", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Could not fetch the agent")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAgentResponse(agent))
}

// HandleSetManager godoc
//
//	@Summary		Promote or Demote Agent
//	@Description	Flip the manager flag on an agent. Demotion is refused with 403 when the target
//	@Description	manager's account predates the acting manager's (seniority rule).
//	@Tags			Agents
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Agent id"
//	@Param			request	body		SetManagerRequest	true	"Desired manager flag"
//	@Success		200		{object}	AgentResponse
//	@Failure		403		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/agents/{id}/manager [post].
func (h *AgentsHandler) HandleSetManager(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req SetManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	actingID := httpx.IdentityIDFromContext(ctx)
	agent, err := h.AgentService.SetManagerStatus(ctx, actingID, r.PathValue("id"), req.Manager)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInsufficientSeniority):
			httpx.WriteError(w, http.StatusForbidden, "insufficient_seniority", "A manager may not demote a manager senior to themselves")
		case errors.Is(err, service.ErrAgentNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Agent not found")
		default:
			log.Error("failed to set manager status", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to update the agent")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAgentResponse(agent))
}

// HandleSetActive godoc
//
//	@Summary		Activate or Deactivate Agent
//	@Description	Flip the active flag on an agent. Deactivating an active manager is guarded by the
//	@Description	seniority rule. Deactivation stamps deactivated_at and removes any stored avatar;
//	@Description	reactivation clears the stamp.
//	@Tags			Agents
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Agent id"
//	@Param			request	body		SetActiveRequest	true	"Desired active flag"
//	@Success		200		{object}	AgentResponse
//	@Failure		403		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/agents/{id}/status [post].
func (h *AgentsHandler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	actingID := httpx.IdentityIDFromContext(ctx)
	agent, err := h.AgentService.SetActiveStatus(ctx, actingID, r.PathValue("id"), req.Active)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInsufficientSeniority):
			httpx.WriteError(w, http.StatusForbidden, "insufficient_seniority", "A manager may not deactivate a manager senior to themselves")
		case errors.Is(err, service.ErrAgentNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Agent not found")
		default:
			log.Error("failed to set active status", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to update the agent")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAgentResponse(agent))
}

// maxAvatarBytes caps avatar uploads.
const maxAvatarBytes = 5 << 20

// HandleUploadAvatar godoc
//
//	@Summary		Upload Avatar
//	@Description	Store an avatar image for the authenticated agent. Accepts jpg, jpeg, png, or webp
//	@Description	as multipart form data under the "avatar" field.
//	@Tags			Agents
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"Agent id (must match the authenticated identity)"
//	@Param			avatar	formData	file	true	"Image file"
//	@Success		200		{object}	UploadResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/agents/{id}/avatar [post].
func (h *AgentsHandler) HandleUploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	agentID := r.PathValue("id")
	if agentID != httpx.IdentityIDFromContext(ctx) {
		httpx.WriteError(w, http.StatusForbidden, "forbidden", "Agents may only change their own avatar")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarBytes)
	file, header, err := r.FormFile("avatar")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "An avatar file is required")
		return
	}
	defer file.Close()

	path, err := h.AgentService.UploadAvatar(ctx, agentID, header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedAvatarType):
			httpx.WriteError(w, http.StatusBadRequest, "unsupported_type", "Avatar must be jpg, png, or webp")
		case errors.Is(err, service.ErrAgentNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Agent not found")
		default:
			log.Error("avatar upload failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Avatar upload failed")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, UploadResponse{Path: path})
}
