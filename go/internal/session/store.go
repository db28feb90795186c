package session

import (
	"slices"
	"sync"

	"github.com/enjoyedsaucer25/draft-assistant/go/internal/models"
)

// Snapshot is one complete view of the draft board: everything the view
// layer renders. All collections inside a snapshot come from the same
// reconciliation pass.
type Snapshot struct {
	Healthy        bool
	Teams          []models.Team
	Picks          []models.Pick
	Suggestions    models.Suggestions
	Players        []models.EnrichedPlayer
	PositionFilter string
	Season         int
}

// Store holds the current snapshot. Writes are whole-snapshot (or
// whole-collection) replacements produced by the reconciliation workflow;
// nothing ever patches a collection in place, so readers never observe a
// state mixing two reconciliation passes.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	loading  bool
}

// NewStore creates an empty store for a season.
func NewStore(season int) *Store {
	return &Store{
		snapshot: Snapshot{Season: season},
	}
}

// Snapshot returns a copy of the current state. Collection slices are
// cloned so a caller can never alias a replacement that lands later.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Teams = slices.Clone(snap.Teams)
	snap.Picks = slices.Clone(snap.Picks)
	snap.Players = slices.Clone(snap.Players)
	snap.Suggestions.Top = slices.Clone(snap.Suggestions.Top)
	snap.Suggestions.Next = slices.Clone(snap.Suggestions.Next)
	return snap
}

// Replace installs a full snapshot from a completed reconciliation pass.
func (s *Store) Replace(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snap
}

// ReplaceFiltered installs the two filter-scoped collections after a
// position-filter refresh. Teams and picks are untouched.
func (s *Store) ReplaceFiltered(filter string, suggestions models.Suggestions, players []models.EnrichedPlayer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.PositionFilter = filter
	s.snapshot.Suggestions = suggestions
	s.snapshot.Players = players
}

// ReplacePlayers installs a fresh enriched table only (tier edits).
func (s *Store) ReplacePlayers(players []models.EnrichedPlayer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Players = players
}

// PositionFilter returns the filter the current snapshot was loaded for.
func (s *Store) PositionFilter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.PositionFilter
}

// Season returns the season the store tracks.
func (s *Store) Season() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Season
}

// SetLoading flips the loading indicator.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// Loading reports whether a full reload is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
