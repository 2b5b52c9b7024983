package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/harborview/doorstep/internal/agency/blob"
	"github.com/harborview/doorstep/internal/agency/domain"
	"github.com/harborview/doorstep/internal/agency/service"
	"github.com/harborview/doorstep/internal/agency/store"
	"github.com/harborview/doorstep/pkg/httpx"
	"github.com/harborview/doorstep/pkg/slogx"
)

type PropertiesHandler struct {
	PropertyService *service.PropertyService
}

// HandleSearch godoc
//
//	@Summary		Search Properties
//	@Description	Public listing search. All filters are optional: agent_id, location_id, sold
//	@Description	(true/false), min_price, max_price (cents), bedrooms.
//	@Tags			Properties
//	@Produce		json
//	@Param			agent_id	query		string	false	"Filter by listing agent"
//	@Param			location_id	query		string	false	"Filter by location"
//	@Param			sold		query		bool	false	"Filter by sold state"
//	@Param			min_price	query		int		false	"Minimum price in cents"
//	@Param			max_price	query		int		false	"Maximum price in cents"
//	@Param			bedrooms	query		int		false	"Exact bedroom count"
//	@Success		200			{array}		PropertyResponse
//	@Failure		400			{object}	httpx.ErrorResponse	"error, error_description"
//	@Router			/v1/properties [get].
func (h *PropertiesHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	filter, err := parsePropertyFilter(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	props, err := h.PropertyService.SearchProperties(ctx, filter)
	if err != nil {
		log.Error("property search failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Search failed")
		return
	}

	out := make([]PropertyResponse, 0, len(props))
	for _, p := range props {
		out = append(out, toPropertyResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Get Property
//	@Description	Return a single listing.
//	@Tags			Properties
//	@Produce		json
//	@Param			id	path		string	true	"Property id"
//	@Success		200	{object}	PropertyResponse
//	@Failure		404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Router			/v1/properties/{id} [get].
func (h *PropertiesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := h.PropertyService.GetProperty(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Property not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to fetch property", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Could not fetch the property")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPropertyResponse(p))
}

// HandleCreate godoc
//
//	@Summary		Create Property
//	@Description	List a new property under the authenticated agent. The location's property counter
//	@Description	is incremented atomically with the insert.
//	@Tags			Properties
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PropertyRequest	true	"Listing fields"
//	@Success		201		{object}	PropertyResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties [post].
func (h *PropertiesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	agentID := httpx.IdentityIDFromContext(ctx)
	p, err := h.PropertyService.CreateProperty(ctx, agentID, domain.Property{
		LocationID:  req.LocationID,
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidProperty):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Title and a positive price are required")
		case errors.Is(err, service.ErrLocationNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Location not found")
		default:
			log.Error("property creation failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Could not create the listing")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toPropertyResponse(p))
}

// HandleUpdate godoc
//
//	@Summary		Update Property
//	@Description	Refresh the mutable listing fields. Only the listing agent may edit; location and
//	@Description	sold state are not changed here.
//	@Tags			Properties
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Property id"
//	@Param			request	body		PropertyRequest	true	"Listing fields"
//	@Success		200		{object}	PropertyResponse
//	@Failure		403		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties/{id} [put].
func (h *PropertiesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	agentID := httpx.IdentityIDFromContext(ctx)
	p, err := h.PropertyService.UpdateProperty(ctx, agentID, domain.Property{
		ID:          r.PathValue("id"),
		Title:       req.Title,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
	})
	if err != nil {
		writePropertyError(w, log, err, "Could not update the listing")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPropertyResponse(p))
}

// HandleDelete godoc
//
//	@Summary		Delete Property
//	@Description	Remove a listing, decrement its location counter, and delete stored images.
//	@Tags			Properties
//	@Param			id	path	string	true	"Property id"
//	@Success		204
//	@Failure		403	{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties/{id} [delete].
func (h *PropertiesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	agentID := httpx.IdentityIDFromContext(ctx)
	if err := h.PropertyService.DeleteProperty(ctx, agentID, r.PathValue("id")); err != nil {
		writePropertyError(w, log, err, "Could not delete the listing")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleMarkSold godoc
//
//	@Summary		Mark Property Sold
//	@Description	Flip the listing to sold. The owning agent's sold counter is incremented exactly
//	@Description	once even when the request is repeated.
//	@Tags			Properties
//	@Produce		json
//	@Param			id	path		string	true	"Property id"
//	@Success		200	{object}	PropertyResponse
//	@Failure		403	{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties/{id}/sold [post].
func (h *PropertiesHandler) HandleMarkSold(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	agentID := httpx.IdentityIDFromContext(ctx)
	p, err := h.PropertyService.MarkSold(ctx, agentID, r.PathValue("id"))
	if err != nil {
		writePropertyError(w, log, err, "Could not mark the listing sold")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPropertyResponse(p))
}

// maxImageBytes caps listing photo uploads.
const maxImageBytes = 10 << 20

// HandleUploadImage godoc
//
//	@Summary		Upload Property Image
//	@Description	Store a listing photo as multipart form data under the "image" field and append its
//	@Description	path to the listing.
//	@Tags			Properties
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"Property id"
//	@Param			image	formData	file	true	"Image file"
//	@Success		200		{object}	UploadResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/properties/{id}/images [post].
func (h *PropertiesHandler) HandleUploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "An image file is required")
		return
	}
	defer file.Close()

	agentID := httpx.IdentityIDFromContext(ctx)
	path, err := h.PropertyService.AddImage(ctx, agentID, r.PathValue("id"), header.Filename, file)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedAvatarType) {
			httpx.WriteError(w, http.StatusBadRequest, "unsupported_type", "Image must be jpg, png, or webp")
			return
		}
		writePropertyError(w, log, err, "Image upload failed")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, UploadResponse{Path: path})
}

// HandleImage godoc
//
//	@Summary		Fetch Stored Image
//	@Description	Stream a stored listing photo or avatar by its blob path.
//	@Tags			Properties
//	@Produce		octet-stream
//	@Param			path	path	string	true	"Blob path, e.g. properties/{id}/{image}"
//	@Success		200
//	@Failure		404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Router			/v1/images/{path} [get].
func (h *PropertiesHandler) HandleImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rc, err := h.PropertyService.OpenImage(ctx, r.PathValue("path"))
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) || errors.Is(err, blob.ErrInvalidPath) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Image not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to open image", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Could not read the image")
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = io.Copy(w, rc)
}

func writePropertyError(w http.ResponseWriter, log *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrPropertyNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Property not found")
	case errors.Is(err, service.ErrNotPropertyOwner):
		httpx.WriteError(w, http.StatusForbidden, "forbidden", "This listing belongs to a different agent")
	case errors.Is(err, service.ErrInvalidProperty):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Title and a positive price are required")
	default:
		log.Error("property operation failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", fallback)
	}
}

func parsePropertyFilter(r *http.Request) (store.PropertyFilter, error) {
	q := r.URL.Query()
	f := store.PropertyFilter{
		AgentID:    q.Get("agent_id"),
		LocationID: q.Get("location_id"),
	}

	if v := q.Get("sold"); v != "" {
		sold, err := strconv.ParseBool(v)
		if err != nil {
			return store.PropertyFilter{}, errors.New("sold must be true or false")
		}
		f.Sold = &sold
	}
	if v := q.Get("min_price"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return store.PropertyFilter{}, errors.New("min_price must be a non-negative integer")
		}
		f.MinPrice = n
	}
	if v := q.Get("max_price"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return store.PropertyFilter{}, errors.New("max_price must be a non-negative integer")
		}
		f.MaxPrice = n
	}
	if v := q.Get("bedrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return store.PropertyFilter{}, errors.New("bedrooms must be a non-negative integer")
		}
		f.Bedrooms = n
	}

	return f, nil
}
