package controller

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ChangeFilter records a new position-filter selection and returns the
// token a subsequent RefreshFilter call must present. Issuing a newer
// selection invalidates every older token, so a slow response for a stale
// filter can never overwrite a fresher one.
func (c *Controller) ChangeFilter(position string) uint64 {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	c.pendingFilter = position
	return c.filterSeq.Add(1)
}

// RefreshFilter fetches suggestions and the enriched table for the filter
// selection identified by token, and commits them only if that selection
// is still the latest. Teams and picks are not touched. Returns
// ErrStaleFilter when the result was discarded.
func (c *Controller) RefreshFilter(ctx context.Context, token uint64, position string) error {
	if c.filterSeq.Load() != token {
		return ErrStaleFilter
	}

	suggestions, err := c.api.Suggestions(ctx, position)
	if err != nil {
		return fmt.Errorf("filter refresh: suggestions: %w", err)
	}

	players, err := c.api.EnrichedPlayers(ctx, c.store.Season(), position)
	if err != nil {
		return fmt.Errorf("filter refresh: players: %w", err)
	}

	// The token check and the commit happen under the same lock that
	// ChangeFilter bumps the sequence under, so a newer selection can
	// never lose to a slower response.
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	if c.filterSeq.Load() != token {
		log.Debug().
			Str("position", position).
			Uint64("token", token).
			Msg("dropping stale filter refresh")
		return ErrStaleFilter
	}

	c.store.ReplaceFiltered(position, suggestions, players)
	return nil
}

func (c *Controller) currentFilter() string {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	return c.pendingFilter
}
