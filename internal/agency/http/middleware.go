package http

import (
	"errors"
	"net/http"

	"github.com/harborview/doorstep/internal/agency/store"
	"github.com/harborview/doorstep/pkg/httpx"
	"github.com/harborview/doorstep/pkg/slogx"
)

// RequireActiveAgent blocks authenticated requests from deactivated
// accounts. Tokens outlive a deactivation, so the flag is re-checked
// against the store on every guarded request rather than trusted from the
// claims. Identities without a profile row pass through; scope checks
// keep them out of agent-only operations.
func RequireActiveAgent(st store.Store) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			identityID := httpx.IdentityIDFromContext(ctx)
			if identityID == "" {
				httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
				return
			}

			agent, err := st.Agents().GetAgentByID(ctx, identityID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					next.ServeHTTP(w, r)
					return
				}
				slogx.FromContext(ctx).Error("active-agent check failed", "err", err)
				httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Could not verify the account")
				return
			}
			if !agent.Active {
				httpx.WriteError(w, http.StatusForbidden, "account_deactivated", "This account has been deactivated")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
