package draftui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/enjoyedsaucer25/draft-assistant/go/internal/appconfig"
	"github.com/enjoyedsaucer25/draft-assistant/go/internal/controller"
	"github.com/enjoyedsaucer25/draft-assistant/go/internal/models"
	"github.com/enjoyedsaucer25/draft-assistant/go/internal/session"
)

// FocusRegion identifies where keyboard input routes.
type FocusRegion int

const (
	// FocusBoard means navigation keys move the player cursor and the
	// action bindings are live.
	FocusBoard FocusRegion = iota
	// FocusForm means keystrokes go to the manual pick form.
	FocusForm
	// FocusTier means keystrokes go to the tier edit buffer for the
	// highlighted player; the buffer commits only on enter.
	FocusTier
	// FocusNote means keystrokes go to the note input.
	FocusNote
)

// Form field order in the manual pick form.
const (
	fieldRound = iota
	fieldOverall
	fieldSlot
	fieldPlayer
	fieldCount
)

// Model is the draft room view: it renders the session store's current
// snapshot and translates operator intents into controller calls. The
// only state it owns is the manual pick form and the per-row transient
// edit buffers.
type Model struct {
	ctrl   *controller.Controller
	league appconfig.LeagueConfig
	keys   KeyMap

	snap   session.Snapshot
	busy   bool   // a mutating action and its reload are in flight
	notice string // last success/failure notice for the status bar

	focus  FocusRegion
	cursor int // highlighted row in the player table

	// positions cycles "" (all) then the league's position list.
	positions []string
	filterIdx int

	form    [fieldCount]textinput.Model
	formIdx int

	tierInput textinput.Model
	noteInput textinput.Model

	width  int
	height int
}

// New builds the draft room model over a controller.
func New(ctrl *controller.Controller, league appconfig.LeagueConfig) Model {
	m := Model{
		ctrl:      ctrl,
		league:    league,
		keys:      DefaultKeyMap,
		positions: append([]string{""}, league.Positions...),
	}

	placeholders := [fieldCount]string{"round", "overall", "slot", "player id"}
	for i := range m.form {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 32
		m.form[i] = input
	}
	m.form[fieldRound].SetValue("1")
	m.form[fieldSlot].SetValue("1")

	m.tierInput = textinput.New()
	m.tierInput.Placeholder = "tier (empty clears)"
	m.tierInput.CharLimit = 2

	m.noteInput = textinput.New()
	m.noteInput.Placeholder = "note"
	m.noteInput.CharLimit = 200

	return m
}

// Init triggers the initial full reload.
func (m Model) Init() tea.Cmd {
	return m.reloadCmd()
}

// Filter returns the currently selected position filter value.
func (m Model) Filter() string {
	return m.positions[m.filterIdx]
}

// selectedPlayer returns the highlighted row of the enriched table.
func (m Model) selectedPlayer() *models.EnrichedPlayer {
	if m.cursor < 0 || m.cursor >= len(m.snap.Players) {
		return nil
	}
	return &m.snap.Players[m.cursor]
}

// pickForm reads the manual form into the client-owned pick record. A
// blank overall falls back to the locally computed next overall.
func (m Model) pickForm() models.PickForm {
	form := models.PickForm{
		RoundNo:    atoiOr(m.form[fieldRound].Value(), 1),
		OverallNo:  atoiOr(m.form[fieldOverall].Value(), 0),
		TeamSlotID: atoiOr(m.form[fieldSlot].Value(), 1),
		PlayerID:   m.form[fieldPlayer].Value(),
	}
	if form.OverallNo == 0 {
		form.OverallNo = m.ctrl.NextOverall()
	}
	return form
}

func atoiOr(s string, fallback int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return fallback
}

// lastPick returns the pick with the highest overall number, or nil.
func (m Model) lastPick() *models.Pick {
	var last *models.Pick
	for i := range m.snap.Picks {
		if last == nil || m.snap.Picks[i].OverallNo > last.OverallNo {
			last = &m.snap.Picks[i]
		}
	}
	return last
}

func (m Model) reloadCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return reloadDoneMsg{err: ctrl.ReloadAll(context.Background())}
	}
}

func (m Model) filterCmd(token uint64, position string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return filterDoneMsg{
			position: position,
			err:      ctrl.RefreshFilter(context.Background(), token, position),
		}
	}
}

func (m Model) pickCmd(form models.PickForm) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		pick, err := ctrl.MakePick(context.Background(), form)
		return pickDoneMsg{pick: pick, err: err}
	}
}

func (m Model) undoCmd(pickID int) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return undoDoneMsg{pickID: pickID, err: ctrl.UndoPick(context.Background(), pickID)}
	}
}

func (m Model) initTeamsCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return initTeamsDoneMsg{err: ctrl.InitTeams(context.Background())}
	}
}

func (m Model) importCmd(kind controller.ImportKind, opts controller.ImportOptions) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return importDoneMsg{outcome: ctrl.RunImport(context.Background(), kind, opts)}
	}
}

func (m Model) tierCmd(playerID string, tier *int) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return tierDoneMsg{
			playerID: playerID,
			cleared:  tier == nil,
			err:      ctrl.SetTier(context.Background(), playerID, tier),
		}
	}
}

func (m Model) noteCmd(playerID, text string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return noteDoneMsg{playerID: playerID, err: ctrl.AddNote(context.Background(), playerID, text, nil)}
	}
}
