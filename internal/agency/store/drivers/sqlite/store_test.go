package sqlite

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/harborview/doorstep/internal/agency/domain"
	"github.com/harborview/doorstep/internal/agency/store"
	"github.com/harborview/doorstep/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedIdentity(t *testing.T, st *Store, email string) domain.Identity {
	t.Helper()

	ident := domain.Identity{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: "$argon2id$stub",
	}
	require.NoError(t, st.Identities().CreateIdentity(context.Background(), ident))
	return ident
}

func seedAgent(t *testing.T, st *Store, email string) domain.Agent {
	t.Helper()

	ident := seedIdentity(t, st, email)
	agent := domain.Agent{
		ID:     ident.ID,
		Name:   "Test Agent",
		Email:  email,
		Phone:  "0400000001",
		Active: true,
	}
	require.NoError(t, st.Agents().UpsertProfile(context.Background(), agent))
	return agent
}

func seedLocation(t *testing.T, st *Store, name string) domain.Location {
	t.Helper()

	loc := domain.Location{
		ID:     idx.New().String(),
		Name:   name,
		Region: "NSW",
	}
	require.NoError(t, st.Locations().CreateLocation(context.Background(), loc))
	return loc
}

func TestUpsertProfilePreservesFlags(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	agent := seedAgent(t, st, "agent@example.com")

	require.NoError(t, st.Agents().SetManager(ctx, agent.ID, true))
	require.NoError(t, st.Agents().AddSoldProperties(ctx, agent.ID, 3))

	stored, err := st.Agents().GetAgentByID(ctx, agent.ID)
	require.NoError(t, err)

	// A retried profile write only touches name and phone.
	retry := agent
	retry.Name = "Renamed Agent"
	retry.Phone = "0400000099"
	retry.Manager = false
	retry.SoldProperties = 0
	require.NoError(t, st.Agents().UpsertProfile(ctx, retry))

	after, err := st.Agents().GetAgentByID(ctx, agent.ID)
	require.NoError(t, err)
	require.Equal(t, "Renamed Agent", after.Name)
	require.Equal(t, "0400000099", after.Phone)
	require.True(t, after.Manager)
	require.EqualValues(t, 3, after.SoldProperties)
	require.Equal(t, stored.CreatedAt, after.CreatedAt)
}

func TestUpsertProfileDuplicateEmail(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	seedAgent(t, st, "taken@example.com")

	ident := seedIdentity(t, st, "other@example.com")
	err := st.Agents().UpsertProfile(ctx, domain.Agent{
		ID:    ident.ID,
		Name:  "Imposter",
		Email: "taken@example.com",
		Phone: "0400000002",
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestCreateIdentityDuplicateEmail(t *testing.T) {
	st := newTestStore(t)

	seedIdentity(t, st, "dup@example.com")
	err := st.Identities().CreateIdentity(context.Background(), domain.Identity{
		ID:           idx.New().String(),
		Email:        "dup@example.com",
		PasswordHash: "$argon2id$stub",
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUpdatesOnMissingRowsReturnNotFound(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.ErrorIs(t, st.Agents().SetManager(ctx, "missing", true), store.ErrNotFound)
	require.ErrorIs(t, st.Agents().SetAvatarPath(ctx, "missing", "x"), store.ErrNotFound)
	require.ErrorIs(t, st.Locations().AddNumProperties(ctx, "missing", 1), store.ErrNotFound)
	require.ErrorIs(t, st.Properties().DeleteProperty(ctx, "missing"), store.ErrNotFound)

	_, err := st.Agents().GetAgentByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCounterIncrementsDoNotLoseUpdates(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	agent := seedAgent(t, st, "counter@example.com")
	loc := seedLocation(t, st, "Newtown")

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = st.Agents().AddSoldProperties(ctx, agent.ID, 1)
			_ = st.Locations().AddNumProperties(ctx, loc.ID, 1)
		}()
	}
	wg.Wait()

	a, err := st.Agents().GetAgentByID(ctx, agent.ID)
	require.NoError(t, err)
	require.EqualValues(t, workers, a.SoldProperties)

	l, err := st.Locations().GetLocationByID(ctx, loc.ID)
	require.NoError(t, err)
	require.EqualValues(t, workers, l.NumProperties)
}

func TestCountersClampAtZero(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	loc := seedLocation(t, st, "Marrickville")
	require.NoError(t, st.Locations().AddNumProperties(ctx, loc.ID, 2))
	require.NoError(t, st.Locations().AddNumProperties(ctx, loc.ID, -10))

	l, err := st.Locations().GetLocationByID(ctx, loc.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, l.NumProperties)
}

func TestMarkPropertySoldTransitionsOnce(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	agent := seedAgent(t, st, "seller@example.com")
	loc := seedLocation(t, st, "Enmore")

	prop := domain.Property{
		ID:         idx.New().String(),
		AgentID:    agent.ID,
		LocationID: loc.ID,
		Title:      "2BR Terrace",
		PriceCents: 95000000,
	}
	require.NoError(t, st.Properties().CreateProperty(ctx, prop))

	transitioned, err := st.Properties().MarkPropertySold(ctx, prop.ID)
	require.NoError(t, err)
	require.True(t, transitioned)

	transitioned, err = st.Properties().MarkPropertySold(ctx, prop.ID)
	require.NoError(t, err)
	require.False(t, transitioned)

	stored, err := st.Properties().GetPropertyByID(ctx, prop.ID)
	require.NoError(t, err)
	require.True(t, stored.Sold)
}

func TestInviteReplaceLeavesSinglePending(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	mint := func(code string) domain.Invite {
		inv := domain.Invite{
			ID:               idx.New().String(),
			Email:            "invitee@example.com",
			TempPasswordHash: "fp-" + code,
			Code:             code,
			CreatedBy:        "manager-1",
			ExpiresAt:        time.Now().UTC().Add(5 * time.Minute),
		}
		require.NoError(t, st.Invites().DeletePendingInvitesByEmail(ctx, inv.Email))
		require.NoError(t, st.Invites().CreateInvite(ctx, inv))
		return inv
	}

	mint("111111")
	second := mint("222222")

	// The superseded code is gone.
	_, err := st.Invites().GetInviteByEmailAndCode(ctx, "invitee@example.com", "111111")
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err := st.Invites().GetInviteByEmailAndCode(ctx, "invitee@example.com", "222222")
	require.NoError(t, err)
	require.Equal(t, second.ID, got.ID)
	require.False(t, got.Used)
}

func TestUsedInvitesAreNotRedeemable(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	inv := domain.Invite{
		ID:               idx.New().String(),
		Email:            "once@example.com",
		TempPasswordHash: "fp",
		Code:             "654321",
		CreatedBy:        "manager-1",
		ExpiresAt:        time.Now().UTC().Add(5 * time.Minute),
	}
	require.NoError(t, st.Invites().CreateInvite(ctx, inv))
	require.NoError(t, st.Invites().MarkInviteUsed(ctx, inv.ID, "identity-1"))

	_, err := st.Invites().GetInviteByEmailAndCode(ctx, "once@example.com", "654321")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteExpiredInvitesKeepsLive(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	expired := domain.Invite{
		ID:               idx.New().String(),
		Email:            "stale@example.com",
		TempPasswordHash: "fp",
		Code:             "000001",
		CreatedBy:        "manager-1",
		ExpiresAt:        time.Now().UTC().Add(-time.Minute),
	}
	live := domain.Invite{
		ID:               idx.New().String(),
		Email:            "fresh@example.com",
		TempPasswordHash: "fp",
		Code:             "000002",
		CreatedBy:        "manager-1",
		ExpiresAt:        time.Now().UTC().Add(5 * time.Minute),
	}
	require.NoError(t, st.Invites().CreateInvite(ctx, expired))
	require.NoError(t, st.Invites().CreateInvite(ctx, live))

	require.NoError(t, st.Invites().DeleteExpiredInvites(ctx))

	_, err := st.Invites().GetInviteByEmailAndCode(ctx, "stale@example.com", "000001")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Invites().GetInviteByEmailAndCode(ctx, "fresh@example.com", "000002")
	require.NoError(t, err)
}

func TestInquiryClientRefUnique(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	agent := seedAgent(t, st, "listing@example.com")
	loc := seedLocation(t, st, "Petersham")
	prop := domain.Property{
		ID:         idx.New().String(),
		AgentID:    agent.ID,
		LocationID: loc.ID,
		Title:      "Studio",
		PriceCents: 40000000,
	}
	require.NoError(t, st.Properties().CreateProperty(ctx, prop))

	first := domain.Inquiry{
		ID:         idx.New().String(),
		PropertyID: prop.ID,
		Name:       "Buyer",
		Email:      "buyer@example.com",
		Message:    "Is this still available?",
		ClientRef:  "submit-abc",
	}
	require.NoError(t, st.Inquiries().CreateInquiry(ctx, first))

	dup := first
	dup.ID = idx.New().String()
	require.ErrorIs(t, st.Inquiries().CreateInquiry(ctx, dup), store.ErrAlreadyExists)

	// Empty refs are stored as NULL so they never collide with each other.
	for i := 0; i < 2; i++ {
		require.NoError(t, st.Inquiries().CreateInquiry(ctx, domain.Inquiry{
			ID:         idx.New().String(),
			PropertyID: prop.ID,
			Name:       "Walk-in",
			Email:      "walkin@example.com",
			Message:    "Open house times?",
		}))
	}

	got, err := st.Inquiries().GetInquiryByClientRef(ctx, "submit-abc")
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	loc := seedLocation(t, st, "Stanmore")

	boom := errDeliberate{}
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Locations().AddNumProperties(ctx, loc.ID, 5); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	l, err := st.Locations().GetLocationByID(ctx, loc.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, l.NumProperties)
}

type errDeliberate struct{}

func (errDeliberate) Error() string { return "deliberate failure" }
