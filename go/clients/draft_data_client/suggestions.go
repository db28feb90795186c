package draft_data_client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/enjoyedsaucer25/draft-assistant/go/internal/models"
)

// Suggestions returns the ranked best-available split, filtered to one
// position when position is non-empty.
func (c *DraftDataClient) Suggestions(ctx context.Context, position string) (models.Suggestions, error) {
	endpoint := SuggestionsEndpoint
	if position != "" {
		endpoint = fmt.Sprintf("%s?position=%s", SuggestionsEndpoint, url.QueryEscape(position))
	}

	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return models.Suggestions{}, fmt.Errorf("failed to get suggestions: %w", err)
	}

	var suggestions models.Suggestions
	if err := decodeBody(body, &suggestions, endpoint); err != nil {
		return models.Suggestions{}, err
	}

	return suggestions, nil
}
