package draftui

import (
	"github.com/enjoyedsaucer25/draft-assistant/go/internal/controller"
	"github.com/enjoyedsaucer25/draft-assistant/go/internal/models"
)

// reloadDoneMsg is sent when a full reload settles. On success the store
// already holds the fresh snapshot.
type reloadDoneMsg struct {
	err error
}

// filterDoneMsg is sent when a filter refresh settles. A stale-token drop
// arrives here as controller.ErrStaleFilter and is ignored quietly.
type filterDoneMsg struct {
	position string
	err      error
}

// pickDoneMsg carries the accepted pick (for form advancement) or the
// rejection.
type pickDoneMsg struct {
	pick models.Pick
	err  error
}

type undoDoneMsg struct {
	pickID int
	err    error
}

type initTeamsDoneMsg struct {
	err error
}

// importDoneMsg carries the outcome naming the specific import that ran.
type importDoneMsg struct {
	outcome controller.ImportOutcome
}

type tierDoneMsg struct {
	playerID string
	cleared  bool
	err      error
}

type noteDoneMsg struct {
	playerID string
	err      error
}
