package draft_data_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// ImportResult is the ephemeral outcome of a bulk import. The per-source
// detail shape varies, so it stays raw; the controller never stores it.
type ImportResult struct {
	OK       bool            `json:"ok"`
	Imported int             `json:"imported,omitempty"`
	Result   json.RawMessage `json:"result,omitempty"`
}

// ImportDemo seeds a small demo roster with consensus ranks.
func (c *DraftDataClient) ImportDemo(ctx context.Context) (ImportResult, error) {
	return c.runImport(ctx, ImportDemoEndpoint, nil)
}

// ImportCSV ingests a generic player/rank CSV readable by the service.
func (c *DraftDataClient) ImportCSV(ctx context.Context, path string) (ImportResult, error) {
	params := url.Values{}
	params.Set("path", path)
	return c.runImport(ctx, ImportCSVEndpoint, params)
}

// ImportSleeperPlayers pulls the full Sleeper roster feed for a season.
func (c *DraftDataClient) ImportSleeperPlayers(ctx context.Context, season int) (ImportResult, error) {
	return c.runImport(ctx, ImportSleeperEndpoint, seasonParams(season))
}

// ImportInjuriesCBS scrapes the CBS injury report for a season.
func (c *DraftDataClient) ImportInjuriesCBS(ctx context.Context, season int) (ImportResult, error) {
	return c.runImport(ctx, ImportInjuriesCBSEndpoint, seasonParams(season))
}

// ImportFPECRCsv ingests a FantasyPros ECR export from a server-side file.
func (c *DraftDataClient) ImportFPECRCsv(ctx context.Context, season int, path string) (ImportResult, error) {
	params := seasonParams(season)
	params.Set("path", path)
	return c.runImport(ctx, ImportFPECRCsvEndpoint, params)
}

// ImportFPECRHtml scrapes FantasyPros ECR rankings from a URL.
func (c *DraftDataClient) ImportFPECRHtml(ctx context.Context, season int, pageURL string) (ImportResult, error) {
	params := seasonParams(season)
	params.Set("url", pageURL)
	return c.runImport(ctx, ImportFPECRHtmlEndpoint, params)
}

// ImportFPADPCsv ingests a FantasyPros ADP export under a source tag.
func (c *DraftDataClient) ImportFPADPCsv(ctx context.Context, season int, path, source string) (ImportResult, error) {
	params := seasonParams(season)
	params.Set("path", path)
	if source != "" {
		params.Set("source", source)
	}
	return c.runImport(ctx, ImportFPADPCsvEndpoint, params)
}

func (c *DraftDataClient) runImport(ctx context.Context, endpoint string, params url.Values) (ImportResult, error) {
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	body, err := c.Post(ctx, endpoint, nil)
	if err != nil {
		return ImportResult{}, fmt.Errorf("import failed: %w", err)
	}

	var result ImportResult
	if err := decodeBody(body, &result, endpoint); err != nil {
		return ImportResult{}, err
	}

	return result, nil
}

func seasonParams(season int) url.Values {
	params := url.Values{}
	params.Set("season", strconv.Itoa(season))
	return params
}
