package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/harborview/doorstep/internal/agency/blob"
	"github.com/harborview/doorstep/internal/agency/domain"
	"github.com/harborview/doorstep/internal/agency/store"
	"github.com/harborview/doorstep/pkg/slogx"
)

var (
	ErrAgentNotFound         = errors.New("agent not found")
	ErrInvalidProfile        = errors.New("invalid profile fields")
	ErrInsufficientSeniority = errors.New("target agent is senior to the acting manager")
	ErrUnsupportedAvatarType = errors.New("unsupported avatar image type")
)

type AgentService struct {
	Store store.Store
	Blobs blob.Store
}

// CompleteProfile writes the agent profile for an identity. The operation
// is an upsert keyed by the identity id, so a retried submit after a
// partial failure converges on a single row instead of failing. New
// profiles always start as non-manager, active.
func (s *AgentService) CompleteProfile(
	ctx context.Context,
	identityID string,
	name string,
	phone string,
) (domain.Agent, error) {
	log := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" || !isNumeric(phone) {
		return domain.Agent{}, ErrInvalidProfile
	}

	identity, err := s.Store.Identities().GetIdentityByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Agent{}, ErrAgentNotFound
		}
		log.Error("failed to fetch identity", slog.Any("error", err))
		return domain.Agent{}, err
	}

	agent := domain.Agent{
		ID:      identity.ID,
		Name:    name,
		Email:   identity.Email,
		Phone:   phone,
		Manager: false,
		Active:  true,
	}
	if err := s.Store.Agents().UpsertProfile(ctx, agent); err != nil {
		log.Error("failed to upsert profile",
			slog.String("agent_id", identity.ID),
			slog.Any("error", err),
		)
		return domain.Agent{}, err
	}

	// Re-read so the caller sees stored flags and timestamps, not the
	// insert defaults. The upsert never touches manager or active state.
	stored, err := s.Store.Agents().GetAgentByID(ctx, identity.ID)
	if err != nil {
		return domain.Agent{}, err
	}

	log.Info("profile completed", slog.String("agent_id", stored.ID))
	return stored, nil
}

// GetAgent returns a single agent profile.
func (s *AgentService) GetAgent(ctx context.Context, agentID string) (domain.Agent, error) {
	agent, err := s.Store.Agents().GetAgentByID(ctx, agentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Agent{}, ErrAgentNotFound
		}
		return domain.Agent{}, err
	}
	return agent, nil
}

// ListAgents returns all agents in seniority order.
func (s *AgentService) ListAgents(ctx context.Context) ([]domain.Agent, error) {
	return s.Store.Agents().ListAgents(ctx)
}

// SetManagerStatus promotes or demotes an agent. Demoting a manager is
// guarded by the seniority rule: a manager may not demote a manager whose
// account predates their own.
func (s *AgentService) SetManagerStatus(
	ctx context.Context,
	actingAgentID string,
	targetAgentID string,
	manager bool,
) (domain.Agent, error) {
	log := slogx.FromContext(ctx)

	target, err := s.Store.Agents().GetAgentByID(ctx, targetAgentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Agent{}, ErrAgentNotFound
		}
		log.Error("failed to fetch target agent", slog.Any("error", err))
		return domain.Agent{}, err
	}

	if target.Manager == manager {
		// Already in the requested state; nothing to write.
		return target, nil
	}

	// Only a demotion removes privilege; promotion is never guarded.
	if !manager {
		if err := s.guardPrivilegeRemoval(ctx, actingAgentID, target); err != nil {
			return domain.Agent{}, err
		}
	}

	if err := s.Store.Agents().SetManager(ctx, targetAgentID, manager); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Agent{}, ErrAgentNotFound
		}
		log.Error("failed to update manager flag",
			slog.String("agent_id", targetAgentID),
			slog.Any("error", err),
		)
		return domain.Agent{}, err
	}

	log.Info("manager status changed",
		slog.String("agent_id", targetAgentID),
		slog.String("acting_agent_id", actingAgentID),
		slog.Bool("manager", manager),
	)

	target.Manager = manager
	return target, nil
}

// SetActiveStatus activates or deactivates an agent. Deactivating an
// active manager is guarded by the seniority rule. Deactivation stamps
// deactivated_at and removes the stored avatar exactly once; reactivation
// clears the stamp and leaves the avatar field alone.
func (s *AgentService) SetActiveStatus(
	ctx context.Context,
	actingAgentID string,
	targetAgentID string,
	active bool,
) (domain.Agent, error) {
	log := slogx.FromContext(ctx)

	target, err := s.Store.Agents().GetAgentByID(ctx, targetAgentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Agent{}, ErrAgentNotFound
		}
		log.Error("failed to fetch target agent", slog.Any("error", err))
		return domain.Agent{}, err
	}

	if target.Active == active {
		return target, nil
	}

	// Only deactivation removes privilege; reactivation is never guarded.
	if !active {
		if err := s.guardPrivilegeRemoval(ctx, actingAgentID, target); err != nil {
			return domain.Agent{}, err
		}
	}

	var deactivatedAt *time.Time
	if !active {
		now := time.Now().UTC()
		deactivatedAt = &now
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Agents().SetActive(ctx, targetAgentID, active, deactivatedAt); err != nil {
			return err
		}
		if !active && target.AvatarPath != "" {
			return tx.Agents().SetAvatarPath(ctx, targetAgentID, "")
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Agent{}, ErrAgentNotFound
		}
		log.Error("failed to update active flag",
			slog.String("agent_id", targetAgentID),
			slog.Any("error", err),
		)
		return domain.Agent{}, err
	}

	// Remove the blob after the row commit. A removal failure leaves an
	// orphaned blob, not a dangling reference.
	if !active && target.AvatarPath != "" {
		if err := s.Blobs.Remove(ctx, target.AvatarPath); err != nil && !errors.Is(err, blob.ErrNotFound) {
			log.Warn("failed to remove avatar blob",
				slog.String("agent_id", targetAgentID),
				slog.String("path", target.AvatarPath),
				slog.Any("error", err),
			)
		}
		target.AvatarPath = ""
	}

	log.Info("active status changed",
		slog.String("agent_id", targetAgentID),
		slog.String("acting_agent_id", actingAgentID),
		slog.Bool("active", active),
	)

	target.Active = active
	target.DeactivatedAt = deactivatedAt
	return target, nil
}

// UploadAvatar stores a new avatar image and records its path. A previous
// avatar at a different path is removed.
func (s *AgentService) UploadAvatar(
	ctx context.Context,
	agentID string,
	filename string,
	r io.Reader,
) (string, error) {
	log := slogx.FromContext(ctx)

	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return "", ErrUnsupportedAvatarType
	}

	agent, err := s.GetAgent(ctx, agentID)
	if err != nil {
		return "", err
	}

	avatarPath := fmt.Sprintf("avatars/%s%s", agentID, ext)
	if err := s.Blobs.Upload(ctx, avatarPath, r); err != nil {
		log.Error("failed to upload avatar",
			slog.String("agent_id", agentID),
			slog.Any("error", err),
		)
		return "", err
	}
	if err := s.Store.Agents().SetAvatarPath(ctx, agentID, avatarPath); err != nil {
		return "", err
	}

	if agent.AvatarPath != "" && agent.AvatarPath != avatarPath {
		if err := s.Blobs.Remove(ctx, agent.AvatarPath); err != nil && !errors.Is(err, blob.ErrNotFound) {
			log.Warn("failed to remove previous avatar",
				slog.String("path", agent.AvatarPath),
				slog.Any("error", err),
			)
		}
	}

	return avatarPath, nil
}

// guardPrivilegeRemoval applies the seniority rule to a demotion or
// deactivation: when the target is a manager whose account predates the
// actor's, the removal is refused. Callers decide direction first; the
// guard never runs for promotion or reactivation since those add
// privilege rather than remove it.
func (s *AgentService) guardPrivilegeRemoval(
	ctx context.Context,
	actingAgentID string,
	target domain.Agent,
) error {
	log := slogx.FromContext(ctx)

	acting, err := s.Store.Agents().GetAgentByID(ctx, actingAgentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAgentNotFound
		}
		log.Error("failed to fetch acting agent", slog.Any("error", err))
		return err
	}

	if target.Manager && target.CreatedAt.Before(acting.CreatedAt) {
		log.Warn("seniority rule blocked privilege removal",
			slog.String("acting_agent_id", acting.ID),
			slog.String("target_agent_id", target.ID),
			slog.Time("acting_created_at", acting.CreatedAt),
			slog.Time("target_created_at", target.CreatedAt),
		)
		return ErrInsufficientSeniority
	}

	return nil
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
