package service

import (
	"context"
	"strings"
	"testing"

	"github.com/harborview/doorstep/internal/agency/domain"
	"github.com/harborview/doorstep/internal/agency/store"
	"github.com/stretchr/testify/require"
)

func newTestMarketplace(t *testing.T) (store.Store, *PropertyService, *LocationService, domain.Agent, domain.Location) {
	t.Helper()
	ctx := context.Background()

	st := newTestStore(t)
	blobs := newMemBlobs()
	props := &PropertyService{Store: st, Blobs: blobs}
	locs := &LocationService{Store: st}

	agent := seedAgent(t, st, "lister@agency.example", false)
	loc, err := locs.CreateLocation(ctx, "Newtown", "Inner West")
	require.NoError(t, err)

	return st, props, locs, agent, loc
}

func TestCreatePropertyBumpsLocationCount(t *testing.T) {
	ctx := context.Background()
	_, props, locs, agent, loc := newTestMarketplace(t)

	created, err := props.CreateProperty(ctx, agent.ID, domain.Property{
		LocationID:  loc.ID,
		Title:       "Two-bed terrace",
		Description: "Close to the station",
		PriceCents:  95_000_000,
		Bedrooms:    2,
		Bathrooms:   1,
	})
	require.NoError(t, err)
	require.Equal(t, agent.ID, created.AgentID)
	require.False(t, created.Sold)

	got, err := locs.GetLocation(ctx, loc.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, got.NumProperties)

	t.Run("unknown location", func(t *testing.T) {
		_, err := props.CreateProperty(ctx, agent.ID, domain.Property{
			LocationID: "nope",
			Title:      "Ghost house",
			PriceCents: 1,
		})
		require.ErrorIs(t, err, ErrLocationNotFound)
	})

	t.Run("invalid fields", func(t *testing.T) {
		_, err := props.CreateProperty(ctx, agent.ID, domain.Property{
			LocationID: loc.ID,
			Title:      " ",
			PriceCents: 100,
		})
		require.ErrorIs(t, err, ErrInvalidProperty)
	})
}

func TestDeletePropertyDecrementsLocationCount(t *testing.T) {
	ctx := context.Background()
	st, props, locs, agent, loc := newTestMarketplace(t)

	created, err := props.CreateProperty(ctx, agent.ID, domain.Property{
		LocationID: loc.ID,
		Title:      "Teardown special",
		PriceCents: 50_000_000,
	})
	require.NoError(t, err)

	t.Run("only the owner may delete", func(t *testing.T) {
		other := seedAgent(t, st, "other@agency.example", false)
		require.ErrorIs(t, props.DeleteProperty(ctx, other.ID, created.ID), ErrNotPropertyOwner)
	})

	require.NoError(t, props.DeleteProperty(ctx, agent.ID, created.ID))

	got, err := locs.GetLocation(ctx, loc.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, got.NumProperties)

	require.ErrorIs(t, props.DeleteProperty(ctx, agent.ID, created.ID), ErrPropertyNotFound)
}

func TestMarkSoldCountsOnce(t *testing.T) {
	ctx := context.Background()
	st, props, _, agent, loc := newTestMarketplace(t)

	created, err := props.CreateProperty(ctx, agent.ID, domain.Property{
		LocationID: loc.ID,
		Title:      "Quick sale",
		PriceCents: 80_000_000,
	})
	require.NoError(t, err)

	sold, err := props.MarkSold(ctx, agent.ID, created.ID)
	require.NoError(t, err)
	require.True(t, sold.Sold)

	// A double submit keeps the counter at one.
	sold, err = props.MarkSold(ctx, agent.ID, created.ID)
	require.NoError(t, err)
	require.True(t, sold.Sold)

	got, err := st.Agents().GetAgentByID(ctx, agent.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, got.SoldProperties)
}

func TestUpdatePropertyPreservesOwnershipAndState(t *testing.T) {
	ctx := context.Background()
	st, props, _, agent, loc := newTestMarketplace(t)

	created, err := props.CreateProperty(ctx, agent.ID, domain.Property{
		LocationID: loc.ID,
		Title:      "Fixer upper",
		PriceCents: 40_000_000,
		Bedrooms:   3,
		Bathrooms:  1,
	})
	require.NoError(t, err)

	updated := created
	updated.Title = "Renovator's dream"
	updated.PriceCents = 45_000_000
	updated.AgentID = "someone-else" // ignored
	got, err := props.UpdateProperty(ctx, agent.ID, updated)
	require.NoError(t, err)
	require.Equal(t, "Renovator's dream", got.Title)
	require.Equal(t, agent.ID, got.AgentID)
	require.Equal(t, loc.ID, got.LocationID)

	other := seedAgent(t, st, "other@agency.example", false)
	_, err = props.UpdateProperty(ctx, other.ID, updated)
	require.ErrorIs(t, err, ErrNotPropertyOwner)
}

func TestSearchProperties(t *testing.T) {
	ctx := context.Background()
	_, props, locs, agent, loc := newTestMarketplace(t)

	otherLoc, err := locs.CreateLocation(ctx, "Marrickville", "Inner West")
	require.NoError(t, err)

	seed := []domain.Property{
		{LocationID: loc.ID, Title: "Cheap studio", PriceCents: 30_000_000, Bedrooms: 1},
		{LocationID: loc.ID, Title: "Family home", PriceCents: 120_000_000, Bedrooms: 4},
		{LocationID: otherLoc.ID, Title: "Warehouse loft", PriceCents: 90_000_000, Bedrooms: 2},
	}
	for _, p := range seed {
		_, err := props.CreateProperty(ctx, agent.ID, p)
		require.NoError(t, err)
	}

	t.Run("by location", func(t *testing.T) {
		got, err := props.SearchProperties(ctx, store.PropertyFilter{LocationID: loc.ID})
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("by price band", func(t *testing.T) {
		got, err := props.SearchProperties(ctx, store.PropertyFilter{
			MinPrice: 50_000_000,
			MaxPrice: 100_000_000,
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "Warehouse loft", got[0].Title)
	})

	t.Run("by bedrooms", func(t *testing.T) {
		got, err := props.SearchProperties(ctx, store.PropertyFilter{Bedrooms: 4})
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("unsold only", func(t *testing.T) {
		all, err := props.SearchProperties(ctx, store.PropertyFilter{LocationID: loc.ID})
		require.NoError(t, err)
		_, err = props.MarkSold(ctx, agent.ID, all[0].ID)
		require.NoError(t, err)

		unsold := false
		got, err := props.SearchProperties(ctx, store.PropertyFilter{Sold: &unsold, LocationID: loc.ID})
		require.NoError(t, err)
		require.Len(t, got, 1)
	})
}

func TestPropertyImages(t *testing.T) {
	ctx := context.Background()
	_, props, _, agent, loc := newTestMarketplace(t)

	created, err := props.CreateProperty(ctx, agent.ID, domain.Property{
		LocationID: loc.ID,
		Title:      "Photogenic cottage",
		PriceCents: 70_000_000,
	})
	require.NoError(t, err)

	path, err := props.AddImage(ctx, agent.ID, created.ID, "front.jpg", strings.NewReader("jpeg"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, "properties/"+created.ID+"/"))

	got, err := props.GetProperty(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, []string{path}, got.ImagePaths)

	rc, err := props.OpenImage(ctx, path)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
}
