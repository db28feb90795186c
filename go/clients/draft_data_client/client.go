package draft_data_client

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/enjoyedsaucer25/draft-assistant/go/clients"
)

// DraftDataClient wraps the draft data service's REST surface. Every
// operation returns a decoded payload or an error carrying the failure
// kind; nothing is recovered silently.
type DraftDataClient struct {
	*clients.BaseClient
}

// NewDraftDataClient builds a client for the given base URL. When
// adminToken is non-empty it is attached to every request; the service
// only checks it on /admin/* routes.
func NewDraftDataClient(baseURL, adminToken string) *DraftDataClient {
	client := &DraftDataClient{
		BaseClient: clients.NewBaseClient(baseURL),
	}

	if adminToken != "" {
		client.SetHeader(AdminTokenHeader, adminToken)
	}

	return client
}

// decodeBody unmarshals a response body into out. An empty body decodes to
// the zero value: several mutating endpoints reply with no payload. A
// non-empty body that fails to parse is a malformed-response failure.
func decodeBody(body []byte, out interface{}, endpoint string) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s: %v, raw response: %s", clients.ErrMalformedResponse, endpoint, err, truncateBody(body))
	}
	return nil
}

// truncateBody limits diagnostic output from unbounded server responses.
func truncateBody(body []byte) string {
	const maxDiagnostic = 200
	if len(body) > maxDiagnostic {
		return string(body[:maxDiagnostic]) + "..."
	}
	return string(body)
}
