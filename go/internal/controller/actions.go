package controller

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/enjoyedsaucer25/draft-assistant/go/internal/models"
)

// MakePick submits the operator's pick and reconciles. A zero OverallNo in
// the form falls back to the locally computed next overall. On acceptance
// the returned pick carries the service-assigned identity and the caller
// should advance its form to pick.OverallNo+1. On rejection the store is
// untouched so the operator can correct and retry.
func (c *Controller) MakePick(ctx context.Context, form models.PickForm) (models.Pick, error) {
	req := form.Request()
	if req.OverallNo == 0 {
		req.OverallNo = c.NextOverall()
	}

	pick, err := c.api.MakePick(ctx, req)
	if err != nil {
		return models.Pick{}, err
	}

	log.Info().
		Int("overall_no", pick.OverallNo).
		Int("team_slot_id", pick.TeamSlotID).
		Str("player_id", pick.PlayerID).
		Msg("pick accepted")

	if err := c.ReloadAll(ctx); err != nil {
		return pick, fmt.Errorf("pick accepted but reload failed: %w", err)
	}
	return pick, nil
}

// UndoPick deletes a pick on the service then reconciles, so the board
// reflects the post-delete truth (the freed player reappears in
// suggestions). Never a local-only removal.
func (c *Controller) UndoPick(ctx context.Context, pickID int) error {
	deleted, err := c.api.UndoPick(ctx, pickID)
	if err != nil {
		return err
	}

	log.Info().Int("pick_id", deleted.DeletedPickID).Msg("pick undone")
	return c.ReloadAll(ctx)
}

// InitTeams bulk-creates the league slots then reconciles.
func (c *Controller) InitTeams(ctx context.Context) error {
	if _, err := c.api.InitTeams(ctx); err != nil {
		return err
	}
	return c.ReloadAll(ctx)
}

// SetTier writes or clears a tier override then refreshes only the
// enriched table; teams, picks and suggestions are unaffected by a tier
// edit so a full reload would be wasted work.
func (c *Controller) SetTier(ctx context.Context, playerID string, tier *int) error {
	result, err := c.api.SetTier(ctx, playerID, tier)
	if err != nil {
		return err
	}

	event := log.Info().Str("player_id", playerID)
	if result.TierOverride != nil {
		event.Int("tier_override", *result.TierOverride)
	}
	event.Msg("tier override updated")

	return c.refreshPlayers(ctx)
}

// AddNote appends a player note. Write-only from the client's side; no
// collection depends on notes, so nothing refreshes.
func (c *Controller) AddNote(ctx context.Context, playerID, text string, teamSlotID *int) error {
	if _, err := c.api.AddNote(ctx, playerID, text, teamSlotID); err != nil {
		return err
	}
	return nil
}
