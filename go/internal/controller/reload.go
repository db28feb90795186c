package controller

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/enjoyedsaucer25/draft-assistant/go/internal/models"
	"github.com/enjoyedsaucer25/draft-assistant/go/internal/session"
)

// ReloadAll fans out the four independent reads (health, teams, picks,
// suggestions for the current filter), joins them, then fetches the
// enriched player table and replaces the entire snapshot at once. If any
// read fails nothing is committed and the previous snapshot stays in
// place. Returns ErrReloadInFlight if another full reload is running.
func (c *Controller) ReloadAll(ctx context.Context) error {
	if !c.reloadMu.TryLock() {
		return ErrReloadInFlight
	}
	defer c.reloadMu.Unlock()

	reloadID := uuid.New()
	started := c.clock.Now()
	season := c.store.Season()

	c.pendingMu.Lock()
	token := c.filterSeq.Load()
	filter := c.pendingFilter
	c.pendingMu.Unlock()

	c.store.SetLoading(true)
	defer c.store.SetLoading(false)

	var (
		healthy     bool
		teams       []models.Team
		picks       []models.Pick
		suggestions models.Suggestions
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		status, err := c.api.Health(gctx)
		if err != nil {
			return fmt.Errorf("health: %w", err)
		}
		healthy = status.OK
		return nil
	})
	g.Go(func() error {
		var err error
		if teams, err = c.api.ListTeams(gctx); err != nil {
			return fmt.Errorf("teams: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if picks, err = c.api.ListPicks(gctx); err != nil {
			return fmt.Errorf("picks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if suggestions, err = c.api.Suggestions(gctx, filter); err != nil {
			return fmt.Errorf("suggestions: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().
			Err(err).
			Str("reload_id", reloadID.String()).
			Msg("full reload aborted, previous snapshot retained")
		return fmt.Errorf("full reload: %w", err)
	}

	players, err := c.api.EnrichedPlayers(ctx, season, filter)
	if err != nil {
		log.Error().
			Err(err).
			Str("reload_id", reloadID.String()).
			Msg("enriched player refresh failed, previous snapshot retained")
		return fmt.Errorf("full reload: players: %w", err)
	}

	// Commit under the same lock that ChangeFilter bumps the sequence
	// under. If the selection moved on while this reload was in flight,
	// the board data still lands but the filtered views are left to the
	// fresher selection's refresh.
	c.pendingMu.Lock()
	if c.filterSeq.Load() != token {
		cur := c.store.Snapshot()
		c.store.Replace(session.Snapshot{
			Healthy:        healthy,
			Teams:          teams,
			Picks:          picks,
			Suggestions:    cur.Suggestions,
			Players:        cur.Players,
			PositionFilter: cur.PositionFilter,
			Season:         season,
		})
		c.pendingMu.Unlock()
		log.Debug().
			Str("reload_id", reloadID.String()).
			Msg("filter changed during reload, filtered views retained")
		return nil
	}
	c.store.Replace(session.Snapshot{
		Healthy:        healthy,
		Teams:          teams,
		Picks:          picks,
		Suggestions:    suggestions,
		Players:        players,
		PositionFilter: filter,
		Season:         season,
	})
	c.pendingMu.Unlock()

	log.Debug().
		Str("reload_id", reloadID.String()).
		Int("teams", len(teams)).
		Int("picks", len(picks)).
		Int("players", len(players)).
		Dur("elapsed", c.clock.Since(started)).
		Msg("full reload committed")
	return nil
}

// refreshPlayers re-fetches only the enriched table for the filter that was
// current when the triggering edit was issued. Commits only if the filter
// selection has not moved on since.
func (c *Controller) refreshPlayers(ctx context.Context) error {
	token := c.filterSeq.Load()
	filter := c.currentFilter()

	players, err := c.api.EnrichedPlayers(ctx, c.store.Season(), filter)
	if err != nil {
		return fmt.Errorf("player table refresh: %w", err)
	}

	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()
	if c.filterSeq.Load() != token {
		return ErrStaleFilter
	}

	c.store.ReplacePlayers(players)
	return nil
}
