package http

import (
	"time"

	"github.com/harborview/doorstep/internal/agency/domain"
	"github.com/harborview/doorstep/internal/agency/service"
)

// Request/response bodies for the JSON API. Error responses use
// httpx.ErrorResponse.

type IssueInviteRequest struct {
	Email        string `json:"email"`
	TempPassword string `json:"temp_password"`
}

type IssueInviteResponse struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

type RedeemInviteRequest struct {
	Email        string `json:"email"`
	TempPassword string `json:"temp_password"`
	Code         string `json:"code"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	IdentityID   string   `json:"identity_id"`
	AccessToken  string   `json:"access_token"`
	TokenType    string   `json:"token_type"`
	SessionToken string   `json:"session_token"`
	ExpiresIn    int64    `json:"expires_in"`
	Scope        []string `json:"scope"`
}

type SessionResponse struct {
	SessionID  string    `json:"session_id"`
	IdentityID string    `json:"identity_id"`
	Email      string    `json:"email"`
	Scopes     []string  `json:"scopes"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type SessionTokenRequest struct {
	SessionToken string `json:"session_token"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type PasswordResetCompleteRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type CompleteProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type AgentResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	AvatarPath     string     `json:"avatar_path,omitempty"`
	Manager        bool       `json:"is_manager"`
	Active         bool       `json:"is_active"`
	SoldProperties int64      `json:"sold_properties"`
	CreatedAt      time.Time  `json:"created_at"`
	DeactivatedAt  *time.Time `json:"deactivated_at,omitempty"`
}

type SetManagerRequest struct {
	Manager bool `json:"is_manager"`
}

type SetActiveRequest struct {
	Active bool `json:"is_active"`
}

type PropertyRequest struct {
	LocationID  string `json:"location_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Bedrooms    int    `json:"bedrooms"`
	Bathrooms   int    `json:"bathrooms"`
}

type PropertyResponse struct {
	ID          string    `json:"id"`
	AgentID     string    `json:"agent_id"`
	LocationID  string    `json:"location_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	Sold        bool      `json:"sold"`
	ImagePaths  []string  `json:"image_paths,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type LocationRequest struct {
	Name   string `json:"name"`
	Region string `json:"region"`
}

type LocationResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Region        string `json:"region,omitempty"`
	NumProperties int64  `json:"num_properties"`
}

type InquiryRequest struct {
	PropertyID string `json:"property_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Message    string `json:"message"`
	ClientRef  string `json:"client_ref,omitempty"`
}

type InquiryResponse struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

type UploadResponse struct {
	Path string `json:"path"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

func toLoginResponse(r *service.LoginResult) LoginResponse {
	return LoginResponse{
		IdentityID:   r.IdentityID,
		AccessToken:  r.AccessToken,
		TokenType:    "Bearer",
		SessionToken: r.SessionToken,
		ExpiresIn:    int64(r.ExpiresIn.Seconds()),
		Scope:        r.Scope,
	}
}

func toAgentResponse(a domain.Agent) AgentResponse {
	return AgentResponse{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		Phone:          a.Phone,
		AvatarPath:     a.AvatarPath,
		Manager:        a.Manager,
		Active:         a.Active,
		SoldProperties: a.SoldProperties,
		CreatedAt:      a.CreatedAt,
		DeactivatedAt:  a.DeactivatedAt,
	}
}

func toPropertyResponse(p domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:          p.ID,
		AgentID:     p.AgentID,
		LocationID:  p.LocationID,
		Title:       p.Title,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Sold:        p.Sold,
		ImagePaths:  p.ImagePaths,
		CreatedAt:   p.CreatedAt,
	}
}

func toLocationResponse(l domain.Location) LocationResponse {
	return LocationResponse{
		ID:            l.ID,
		Name:          l.Name,
		Region:        l.Region,
		NumProperties: l.NumProperties,
	}
}

func toInquiryResponse(i domain.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:         i.ID,
		PropertyID: i.PropertyID,
		Name:       i.Name,
		Email:      i.Email,
		Phone:      i.Phone,
		Message:    i.Message,
		CreatedAt:  i.CreatedAt,
	}
}
