package controller

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/jonboulle/clockwork"

	"github.com/enjoyedsaucer25/draft-assistant/go/clients/draft_data_client"
	"github.com/enjoyedsaucer25/draft-assistant/go/internal/session"
)

var (
	// ErrReloadInFlight means a full reload is already running; overlapping
	// reloads must not interleave writes to the store.
	ErrReloadInFlight = errors.New("full reload already in flight")

	// ErrStaleFilter means a filter refresh finished after the operator had
	// already selected a different filter; its result was discarded.
	ErrStaleFilter = errors.New("filter refresh superseded by a newer selection")
)

// Controller drives all synchronization between the draft data service and
// the session store. It is the only writer of the store; the view layer
// only reads snapshots and calls back in through these methods.
type Controller struct {
	api   *draft_data_client.DraftDataClient
	store *session.Store
	clock clockwork.Clock

	// reloadMu enforces single-flight full reloads.
	reloadMu sync.Mutex

	// filterSeq is the token of the most recently selected filter. A
	// refresh commits only while its token is still the latest.
	filterSeq atomic.Uint64

	// pendingFilter is the filter value for the latest token.
	pendingMu     sync.Mutex
	pendingFilter string
}

// New creates a controller over a client and a store.
func New(api *draft_data_client.DraftDataClient, store *session.Store) *Controller {
	return &Controller{
		api:   api,
		store: store,
		clock: clockwork.NewRealClock(),
	}
}

// NextOverall computes the suggested next overall pick number:
// 1 + max(overall_no) over the current picks snapshot, or 1 when no picks
// exist. Max-based rather than count-based, so gaps left by undone picks
// are tolerated. The service remains the authority on acceptance.
func (c *Controller) NextOverall() int {
	maxOverall := 0
	for _, pick := range c.store.Snapshot().Picks {
		if pick.OverallNo > maxOverall {
			maxOverall = pick.OverallNo
		}
	}
	return maxOverall + 1
}

// Store exposes the session store for the view layer.
func (c *Controller) Store() *session.Store {
	return c.store
}
