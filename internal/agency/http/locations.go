package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/harborview/doorstep/internal/agency/service"
	"github.com/harborview/doorstep/pkg/httpx"
	"github.com/harborview/doorstep/pkg/slogx"
)

type LocationsHandler struct {
	LocationService *service.LocationService
}

// HandleList godoc
//
//	@Summary		List Locations
//	@Description	Public list of browsable areas with live property counts.
//	@Tags			Locations
//	@Produce		json
//	@Success		200	{array}	LocationResponse
//	@Router			/v1/locations [get].
func (h *LocationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	locs, err := h.LocationService.ListLocations(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list locations", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Could not list locations")
		return
	}

	out := make([]LocationResponse, 0, len(locs))
	for _, l := range locs {
		out = append(out, toLocationResponse(l))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Create Location
//	@Description	Add a browsable area. Manager-only.
//	@Tags			Locations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LocationRequest	true	"Location fields"
//	@Success		201		{object}	LocationResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/locations [post].
func (h *LocationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	loc, err := h.LocationService.CreateLocation(ctx, req.Name, req.Region)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLocation) {
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "A location name is required")
			return
		}
		log.Error("location creation failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Could not create the location")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toLocationResponse(loc))
}

// HandleDelete godoc
//
//	@Summary		Delete Location
//	@Description	Remove a browsable area that no longer holds properties. Manager-only.
//	@Tags			Locations
//	@Param			id	path	string	true	"Location id"
//	@Success		204
//	@Failure		404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		409	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/locations/{id} [delete].
func (h *LocationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	err := h.LocationService.DeleteLocation(ctx, r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLocationNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Location not found")
		case errors.Is(err, service.ErrLocationInUse):
			httpx.WriteError(w, http.StatusConflict, "location_in_use", "The location still has properties")
		default:
			log.Error("location deletion failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Could not delete the location")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
