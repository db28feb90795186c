package controller

import (
	"context"
	"testing"

	"github.com/enjoyedsaucer25/draft-assistant/go/internal/models"
)

func findPlayer(players []models.EnrichedPlayer, id string) *models.EnrichedPlayer {
	for i := range players {
		if players[i].PlayerID == id {
			return &players[i]
		}
	}
	return nil
}

func TestSetTierOverrideRoundTrip(t *testing.T) {
	fake := newFakeService()
	c, server := newTestController(fake)
	defer server.Close()

	if err := c.ReloadAll(context.Background()); err != nil {
		t.Fatalf("ReloadAll() error: %v", err)
	}

	before := findPlayer(c.Store().Snapshot().Players, "rb.brobinson")
	if before == nil || before.TierSource != models.TierSourceCore {
		t.Fatalf("precondition: player should start with a core tier, got %+v", before)
	}

	tier := 1
	if err := c.SetTier(context.Background(), "rb.brobinson", &tier); err != nil {
		t.Fatalf("SetTier() error: %v", err)
	}

	overridden := findPlayer(c.Store().Snapshot().Players, "rb.brobinson")
	if overridden.TierSource != models.TierSourceOverride {
		t.Errorf("tier_source after override = %q, want override", overridden.TierSource)
	}
	if overridden.Tier == nil || *overridden.Tier != 1 {
		t.Errorf("tier after override = %v, want 1", overridden.Tier)
	}

	if err := c.SetTier(context.Background(), "rb.brobinson", nil); err != nil {
		t.Fatalf("SetTier(nil) error: %v", err)
	}

	reverted := findPlayer(c.Store().Snapshot().Players, "rb.brobinson")
	if reverted.TierSource != models.TierSourceCore {
		t.Errorf("tier_source after clear = %q, want core", reverted.TierSource)
	}
	if reverted.Tier == nil || *reverted.Tier != 2 {
		t.Errorf("tier after clear = %v, want the core tier 2", reverted.Tier)
	}
}

func TestSetTierRefreshesOnlyPlayers(t *testing.T) {
	fake := newFakeService()
	c, server := newTestController(fake)
	defer server.Close()

	if err := c.ReloadAll(context.Background()); err != nil {
		t.Fatalf("ReloadAll() error: %v", err)
	}
	teamsBefore := fake.count("/teams")

	tier := 3
	if err := c.SetTier(context.Background(), "rb.cmcc", &tier); err != nil {
		t.Fatalf("SetTier() error: %v", err)
	}

	if got := fake.count("/teams"); got != teamsBefore {
		t.Errorf("tier edit triggered %d extra team reads; expected a player-table-only refresh", got-teamsBefore)
	}
}

func TestAddNoteIsWriteOnly(t *testing.T) {
	fake := newFakeService()
	c, server := newTestController(fake)
	defer server.Close()

	if err := c.ReloadAll(context.Background()); err != nil {
		t.Fatalf("ReloadAll() error: %v", err)
	}
	playersBefore := fake.count("/meta/players_enriched")

	slot := 4
	if err := c.AddNote(context.Background(), "wr.jchase", "target in round 2", &slot); err != nil {
		t.Fatalf("AddNote() error: %v", err)
	}

	if got := fake.count("/meta/players_enriched"); got != playersBefore {
		t.Error("note write triggered a refresh; notes affect no tracked collection")
	}
}
