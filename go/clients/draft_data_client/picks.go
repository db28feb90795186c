package draft_data_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/enjoyedsaucer25/draft-assistant/go/internal/models"
)

// DeletedPick is the service's acknowledgement of an undo.
type DeletedPick struct {
	OK            bool `json:"ok"`
	DeletedPickID int  `json:"deleted_pick_id"`
}

// ListPicks returns every pick ordered by overall number.
func (c *DraftDataClient) ListPicks(ctx context.Context) ([]models.Pick, error) {
	body, err := c.Get(ctx, PicksEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to list picks: %w", err)
	}

	var picks []models.Pick
	if err := decodeBody(body, &picks, PicksEndpoint); err != nil {
		return nil, err
	}

	return picks, nil
}

// MakePick submits a pick. The service enforces slot and overall-number
// uniqueness and rejects drafted or unknown players; on acceptance the
// returned pick carries the authoritative pick_id.
func (c *DraftDataClient) MakePick(ctx context.Context, req models.PickRequest) (models.Pick, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return models.Pick{}, fmt.Errorf("failed to marshal pick: %w", err)
	}

	body, err := c.Post(ctx, PicksEndpoint, bytes.NewReader(payload))
	if err != nil {
		return models.Pick{}, fmt.Errorf("failed to make pick %d: %w", req.OverallNo, err)
	}

	var pick models.Pick
	if err := decodeBody(body, &pick, PicksEndpoint); err != nil {
		return models.Pick{}, err
	}

	return pick, nil
}

// UndoPick deletes a pick by identity.
func (c *DraftDataClient) UndoPick(ctx context.Context, pickID int) (DeletedPick, error) {
	endpoint := fmt.Sprintf("%s/%d", PicksEndpoint, pickID)

	body, err := c.Delete(ctx, endpoint)
	if err != nil {
		return DeletedPick{}, fmt.Errorf("failed to undo pick %d: %w", pickID, err)
	}

	var deleted DeletedPick
	if err := decodeBody(body, &deleted, endpoint); err != nil {
		return DeletedPick{}, err
	}

	return deleted, nil
}
