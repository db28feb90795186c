package draft_data_client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/enjoyedsaucer25/draft-assistant/go/internal/models"
)

// TierOverrideResult reports the override state after a tier edit. A nil
// TierOverride means the player reverted to the computed tier.
type TierOverrideResult struct {
	OK           bool `json:"ok"`
	TierOverride *int `json:"tier_override"`
}

// NoteResult acknowledges a stored note.
type NoteResult struct {
	OK     bool `json:"ok"`
	NoteID int  `json:"note_id"`
}

// SetTier upserts a manual tier override for a player. A nil tier clears
// the override, reverting the enriched projection's tier_source to core.
func (c *DraftDataClient) SetTier(ctx context.Context, playerID string, tier *int) (TierOverrideResult, error) {
	endpoint := fmt.Sprintf("%s/%s", TierEditEndpoint, url.PathEscape(playerID))
	if tier != nil {
		endpoint += "?tier=" + strconv.Itoa(*tier)
	}

	body, err := c.Post(ctx, endpoint, nil)
	if err != nil {
		return TierOverrideResult{}, fmt.Errorf("failed to set tier for %s: %w", playerID, err)
	}

	var result TierOverrideResult
	if err := decodeBody(body, &result, endpoint); err != nil {
		return TierOverrideResult{}, err
	}

	return result, nil
}

// AddNote appends a note to a player, optionally tagged with a team slot.
func (c *DraftDataClient) AddNote(ctx context.Context, playerID, text string, teamSlotID *int) (NoteResult, error) {
	params := url.Values{}
	params.Set("player_id", playerID)
	params.Set("text", text)
	if teamSlotID != nil {
		params.Set("team_slot_id", strconv.Itoa(*teamSlotID))
	}
	endpoint := NotesEndpoint + "?" + params.Encode()

	body, err := c.Post(ctx, endpoint, nil)
	if err != nil {
		return NoteResult{}, fmt.Errorf("failed to add note for %s: %w", playerID, err)
	}

	var result NoteResult
	if err := decodeBody(body, &result, endpoint); err != nil {
		return NoteResult{}, err
	}

	return result, nil
}

// ListNotes returns stored notes filtered by player and/or team slot.
func (c *DraftDataClient) ListNotes(ctx context.Context, playerID string, teamSlotID *int) ([]models.Note, error) {
	params := url.Values{}
	if playerID != "" {
		params.Set("player_id", playerID)
	}
	if teamSlotID != nil {
		params.Set("team_slot_id", strconv.Itoa(*teamSlotID))
	}
	endpoint := NotesEndpoint
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	var notes []models.Note
	if err := decodeBody(body, &notes, endpoint); err != nil {
		return nil, err
	}

	return notes, nil
}
