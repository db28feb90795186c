package draft_data_client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/enjoyedsaucer25/draft-assistant/go/internal/models"
)

// EnrichedPlayers returns the full joined player table for a season,
// filtered to one position when position is non-empty.
func (c *DraftDataClient) EnrichedPlayers(ctx context.Context, season int, position string) ([]models.EnrichedPlayer, error) {
	params := url.Values{}
	params.Set("season", strconv.Itoa(season))
	if position != "" {
		params.Set("position", position)
	}
	endpoint := PlayersEnrichedEndpoint + "?" + params.Encode()

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get enriched players: %w", err)
	}

	var players []models.EnrichedPlayer
	if err := decodeBody(body, &players, endpoint); err != nil {
		return nil, err
	}

	return players, nil
}

// ListPlayers searches the base roster by name, position or team.
func (c *DraftDataClient) ListPlayers(ctx context.Context, query string, limit int) ([]models.Player, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	endpoint := PlayersEndpoint
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	var players []models.Player
	if err := decodeBody(body, &players, endpoint); err != nil {
		return nil, err
	}

	return players, nil
}
