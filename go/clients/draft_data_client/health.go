package draft_data_client

import (
	"context"
	"fmt"
)

type HealthStatus struct {
	OK bool `json:"ok"`
}

// Health probes the service's liveness endpoint.
func (c *DraftDataClient) Health(ctx context.Context) (HealthStatus, error) {
	var status HealthStatus

	body, err := c.Get(ctx, HealthEndpoint)
	if err != nil {
		return status, fmt.Errorf("failed to check health: %w", err)
	}

	if err := decodeBody(body, &status, HealthEndpoint); err != nil {
		return status, err
	}

	return status, nil
}
