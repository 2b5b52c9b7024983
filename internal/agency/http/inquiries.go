package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/harborview/doorstep/internal/agency/domain"
	"github.com/harborview/doorstep/internal/agency/service"
	"github.com/harborview/doorstep/pkg/httpx"
	"github.com/harborview/doorstep/pkg/slogx"
)

type InquiriesHandler struct {
	InquiryService *service.InquiryService
}

// HandleCreate godoc
//
//	@Summary		Submit Inquiry
//	@Description	Record a buyer message about a property. Public. A caller-supplied client_ref makes
//	@Description	the submit idempotent: a repeated request with the same reference returns the
//	@Description	already-stored inquiry.
//	@Tags			Inquiries
//	@Accept			json
//	@Produce		json
//	@Param			request	body		InquiryRequest	true	"Inquiry fields"
//	@Success		201		{object}	InquiryResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	httpx.ErrorResponse	"error, error_description"
//	@Router			/v1/inquiries [post].
func (h *InquiriesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req InquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	inq, err := h.InquiryService.SubmitInquiry(ctx, domain.Inquiry{
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		ClientRef:  req.ClientRef,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInquiry):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Name, a valid email, and a message are required")
		case errors.Is(err, service.ErrPropertyNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Property not found")
		default:
			log.Error("inquiry submission failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Could not submit the inquiry")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toInquiryResponse(inq))
}

// HandleList godoc
//
//	@Summary		List Inquiries
//	@Description	Return inquiries against the authenticated agent's listings, newest first.
//	@Tags			Inquiries
//	@Produce		json
//	@Success		200	{array}		InquiryResponse
//	@Failure		401	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/inquiries [get].
func (h *InquiriesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	agentID := httpx.IdentityIDFromContext(ctx)
	inqs, err := h.InquiryService.ListInquiriesForAgent(ctx, agentID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list inquiries", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Could not list inquiries")
		return
	}

	out := make([]InquiryResponse, 0, len(inqs))
	for _, i := range inqs {
		out = append(out, toInquiryResponse(i))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
