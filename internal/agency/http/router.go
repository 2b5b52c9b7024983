package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/harborview/doorstep/internal/agency/service"
	"github.com/harborview/doorstep/internal/agency/store"
	"github.com/harborview/doorstep/pkg/httpx"
	"github.com/harborview/doorstep/pkg/jwtx"
	"github.com/harborview/doorstep/pkg/slogx"

	_ "github.com/harborview/doorstep/api/agency" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	AuthService     *service.AuthService
	InviteService   *service.InviteService
	AgentService    *service.AgentService
	PropertyService *service.PropertyService
	LocationService *service.LocationService
	InquiryService  *service.InquiryService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerInvites()
	r.registerSessions()
	r.registerAgents()
	r.registerProperties()
	r.registerLocations()
	r.registerInquiries()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Doorstep Agency Service API
//	@version		0.1.0
//	@description	Agent invitation, onboarding, and marketplace API for the Doorstep platform.
//	@description
//	@description	Invites are minted by managers as 6-digit codes tied to an email and a temporary
//	@description	password; redemption requires the exact triple and is enforced server-side,
//	@description	including expiry. Access tokens are EdDSA-signed JWTs.
//	@description
//	@contact.name	Harborview Engineering
//	@contact.url	https://github.com/harborview/doorstep
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerInvites() {
	issueHandler := &InviteIssueHandler{InviteService: r.InviteService}
	redeemHandler := &InviteRedeemHandler{InviteService: r.InviteService}

	// Issuance is a manager operation.
	r.Mux.Handle("POST /v1/invites/issue",
		httpx.Chain(issueHandler,
			httpx.AuthnMiddleware(r.verifier),
			RequireActiveAgent(r.store),
			httpx.RequireAnyScope("invites:issue"),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		),
	)

	// Redemption is public; strict limit keyed by IP and email to slow
	// triple guessing.
	r.Mux.Handle("POST /v1/invites/redeem",
		httpx.Chain(redeemHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSessions() {
	sessionHandler := &SessionHandler{AuthService: r.AuthService}
	resetHandler := &PasswordResetHandler{AuthService: r.AuthService}
	profileHandler := &ProfileHandler{AgentService: r.AgentService}

	r.Mux.Handle("POST /v1/session",
		httpx.Chain(http.HandlerFunc(sessionHandler.HandleCreate),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("GET /v1/session",
		httpx.Chain(http.HandlerFunc(sessionHandler.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByIdentity(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/session",
		httpx.Chain(http.HandlerFunc(sessionHandler.HandleDelete),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/session/renew",
		httpx.Chain(http.HandlerFunc(sessionHandler.HandleRenew),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /v1/password-reset",
		httpx.Chain(http.HandlerFunc(resetHandler.HandleRequest),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/password-reset/complete",
		httpx.Chain(http.HandlerFunc(resetHandler.HandleComplete),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Profile completion: freshly redeemed identities have no agent row
	// yet, so RequireActiveAgent lets them through.
	r.Mux.Handle("POST /v1/signup/profile",
		httpx.Chain(profileHandler,
			httpx.AuthnMiddleware(r.verifier),
			RequireActiveAgent(r.store),
			httpx.RequireAnyScope("profile:write"),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAgents() {
	h := &AgentsHandler{AgentService: r.AgentService}

	r.Mux.Handle("GET /v1/agents",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			RequireActiveAgent(r.store),
			httpx.RequireAnyScope("agents:manage"),
			httpx.RateLimitByIdentity(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/agents/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			RequireActiveAgent(r.store),
			httpx.RequireAnyScope("profile:read"),
			httpx.RateLimitByIdentity(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/agents/{id}/manager",
		httpx.Chain(http.HandlerFunc(h.HandleSetManager),
			httpx.AuthnMiddleware(r.verifier),
			RequireActiveAgent(r.store),
			httpx.RequireAnyScope("agents:manage"),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/agents/{id}/status",
		httpx.Chain(http.HandlerFunc(h.HandleSetActive),
			httpx.AuthnMiddleware(r.verifier),
			RequireActiveAgent(r.store),
			httpx.RequireAnyScope("agents:manage"),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/agents/{id}/avatar",
		httpx.Chain(http.HandlerFunc(h.HandleUploadAvatar),
			httpx.AuthnMiddleware(r.verifier),
			RequireActiveAgent(r.store),
			httpx.RequireAnyScope("profile:write"),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerProperties() {
	h := &PropertiesHandler{PropertyService: r.PropertyService}

	// Public browse endpoints.
	r.Mux.Handle("GET /v1/properties",
		httpx.Chain(http.HandlerFunc(h.HandleSearch),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/properties/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /v1/images/{path...}",
		httpx.Chain(http.HandlerFunc(h.HandleImage),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Listing management requires an active agent with properties:write.
	secured := func(next http.Handler) http.Handler {
		return httpx.Chain(next,
			httpx.AuthnMiddleware(r.verifier),
			RequireActiveAgent(r.store),
			httpx.RequireAnyScope("properties:write"),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /v1/properties", secured(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("PUT /v1/properties/{id}", secured(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /v1/properties/{id}", secured(http.HandlerFunc(h.HandleDelete)))
	r.Mux.Handle("POST /v1/properties/{id}/sold", secured(http.HandlerFunc(h.HandleMarkSold)))
	r.Mux.Handle("POST /v1/properties/{id}/images", secured(http.HandlerFunc(h.HandleUploadImage)))
}

func (r *Router) registerLocations() {
	h := &LocationsHandler{LocationService: r.LocationService}

	r.Mux.Handle("GET /v1/locations",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("POST /v1/locations",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			RequireActiveAgent(r.store),
			httpx.RequireAnyScope("agents:manage"),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/locations/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.AuthnMiddleware(r.verifier),
			RequireActiveAgent(r.store),
			httpx.RequireAnyScope("agents:manage"),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerInquiries() {
	h := &InquiriesHandler{InquiryService: r.InquiryService}

	r.Mux.Handle("POST /v1/inquiries",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/inquiries",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			RequireActiveAgent(r.store),
			httpx.RequireAnyScope("properties:write"),
			httpx.RateLimitByIdentity(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
