package draft_data_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/enjoyedsaucer25/draft-assistant/go/internal/models"
)

// InitTeams bulk-creates the league's slots. The service treats this as
// idempotent: slots already present are left unchanged.
func (c *DraftDataClient) InitTeams(ctx context.Context) ([]models.Team, error) {
	body, err := c.Post(ctx, TeamsInitEndpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to init teams: %w", err)
	}

	var teams []models.Team
	if err := decodeBody(body, &teams, TeamsInitEndpoint); err != nil {
		return nil, err
	}

	return teams, nil
}

// ListTeams returns the current league slots ordered by slot id.
func (c *DraftDataClient) ListTeams(ctx context.Context) ([]models.Team, error) {
	body, err := c.Get(ctx, TeamsEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	var teams []models.Team
	if err := decodeBody(body, &teams, TeamsEndpoint); err != nil {
		return nil, err
	}

	return teams, nil
}

// UpsertTeam creates or renames a slot.
func (c *DraftDataClient) UpsertTeam(ctx context.Context, team models.Team) (models.Team, error) {
	payload, err := json.Marshal(team)
	if err != nil {
		return models.Team{}, fmt.Errorf("failed to marshal team: %w", err)
	}

	body, err := c.Post(ctx, TeamsUpsertEndpoint, bytes.NewReader(payload))
	if err != nil {
		return models.Team{}, fmt.Errorf("failed to upsert team %d: %w", team.TeamSlotID, err)
	}

	var updated models.Team
	if err := decodeBody(body, &updated, TeamsUpsertEndpoint); err != nil {
		return models.Team{}, err
	}

	return updated, nil
}
