package draftui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/enjoyedsaucer25/draft-assistant/go/internal/controller"
)

// Update routes messages by focus region and refreshes the rendered
// snapshot whenever an async result lands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.focus {
		case FocusForm:
			return m.updateForm(msg)
		case FocusTier:
			return m.updateTier(msg)
		case FocusNote:
			return m.updateNote(msg)
		default:
			return m.updateBoard(msg)
		}

	case reloadDoneMsg:
		m.busy = false
		m.snap = m.ctrl.Store().Snapshot()
		m.clampCursor()
		if msg.err != nil {
			if errors.Is(msg.err, controller.ErrReloadInFlight) {
				m.notice = "reload already running"
			} else {
				m.notice = "reload failed: " + msg.err.Error()
			}
		} else {
			m.notice = ""
		}
		return m, nil

	case filterDoneMsg:
		m.snap = m.ctrl.Store().Snapshot()
		m.clampCursor()
		switch {
		case errors.Is(msg.err, controller.ErrStaleFilter):
			// a newer selection superseded this one; nothing to show
		case msg.err != nil:
			m.notice = "filter refresh failed: " + msg.err.Error()
		default:
			m.notice = ""
		}
		return m, nil

	case pickDoneMsg:
		if msg.err != nil {
			m.busy = false
			m.snap = m.ctrl.Store().Snapshot()
			m.notice = "pick failed: " + msg.err.Error()
			return m, nil
		}
		m.snap = m.ctrl.Store().Snapshot()
		m.clampCursor()
		m.busy = false
		m.notice = fmt.Sprintf("picked %s at overall %d", msg.pick.PlayerID, msg.pick.OverallNo)
		// Advance the form past the accepted slot.
		m.form[fieldOverall].SetValue(strconv.Itoa(msg.pick.OverallNo + 1))
		m.form[fieldPlayer].SetValue("")
		return m, nil

	case undoDoneMsg:
		m.busy = false
		m.snap = m.ctrl.Store().Snapshot()
		m.clampCursor()
		if msg.err != nil {
			m.notice = "undo failed: " + msg.err.Error()
		} else {
			m.notice = fmt.Sprintf("removed pick %d", msg.pickID)
		}
		return m, nil

	case initTeamsDoneMsg:
		m.busy = false
		m.snap = m.ctrl.Store().Snapshot()
		if msg.err != nil {
			m.notice = "team init failed: " + msg.err.Error()
		} else {
			m.notice = fmt.Sprintf("league seeded with %d teams", len(m.snap.Teams))
		}
		return m, nil

	case importDoneMsg:
		m.busy = false
		m.snap = m.ctrl.Store().Snapshot()
		m.clampCursor()
		if msg.outcome.Failed() {
			m.notice = fmt.Sprintf("%s import failed: %v", msg.outcome.Kind, msg.outcome.Err)
		} else {
			m.notice = fmt.Sprintf("%s import complete", msg.outcome.Kind)
		}
		return m, nil

	case tierDoneMsg:
		m.busy = false
		m.snap = m.ctrl.Store().Snapshot()
		if msg.err != nil {
			m.notice = "tier edit failed: " + msg.err.Error()
		} else if msg.cleared {
			m.notice = "tier override cleared for " + msg.playerID
		} else {
			m.notice = "tier override set for " + msg.playerID
		}
		return m, nil

	case noteDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.notice = "note failed: " + msg.err.Error()
		} else {
			m.notice = "note saved for " + msg.playerID
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.snap.Players)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		m.busy = true
		return m, m.reloadCmd()

	case key.Matches(msg, m.keys.CycleFilter):
		m.filterIdx = (m.filterIdx + 1) % len(m.positions)
		position := m.positions[m.filterIdx]
		token := m.ctrl.ChangeFilter(position)
		m.cursor = 0
		return m, m.filterCmd(token, position)

	case key.Matches(msg, m.keys.Pick):
		// Quick pick of the highlighted player at the next overall.
		player := m.selectedPlayer()
		if player == nil || m.busy {
			return m, nil
		}
		m.busy = true
		m.form[fieldPlayer].SetValue(player.PlayerID)
		return m, m.pickCmd(m.pickForm())

	case key.Matches(msg, m.keys.PickForm):
		m.focus = FocusForm
		m.formIdx = fieldRound
		m.form[fieldRound].Focus()
		return m, nil

	case key.Matches(msg, m.keys.UndoLast):
		last := m.lastPick()
		if last == nil || m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.undoCmd(last.PickID)

	case key.Matches(msg, m.keys.InitTeams):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.initTeamsCmd()

	case key.Matches(msg, m.keys.ImportDemo):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.importCmd(controller.ImportDemo, controller.ImportOptions{Season: m.snap.Season})

	case key.Matches(msg, m.keys.EditTier):
		if m.selectedPlayer() == nil {
			return m, nil
		}
		m.focus = FocusTier
		m.tierInput.SetValue("")
		m.tierInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.AddNote):
		if m.selectedPlayer() == nil {
			return m, nil
		}
		m.focus = FocusNote
		m.noteInput.SetValue("")
		m.noteInput.Focus()
		return m, nil
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.focus = FocusBoard
		m.form[m.formIdx].Blur()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.form[m.formIdx].Blur()
		m.formIdx = (m.formIdx + 1) % fieldCount
		m.form[m.formIdx].Focus()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		form := m.pickForm()
		if strings.TrimSpace(form.PlayerID) == "" {
			m.notice = "player id is required"
			return m, nil
		}
		m.focus = FocusBoard
		m.form[m.formIdx].Blur()
		m.busy = true
		return m, m.pickCmd(form)
	}

	var cmd tea.Cmd
	m.form[m.formIdx], cmd = m.form[m.formIdx].Update(msg)
	return m, cmd
}

func (m Model) updateTier(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.focus = FocusBoard
		m.tierInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		player := m.selectedPlayer()
		if player == nil {
			m.focus = FocusBoard
			m.tierInput.Blur()
			return m, nil
		}
		var tier *int
		if raw := strings.TrimSpace(m.tierInput.Value()); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				m.notice = "tier must be a number"
				return m, nil
			}
			tier = &n
		}
		m.focus = FocusBoard
		m.tierInput.Blur()
		m.busy = true
		return m, m.tierCmd(player.PlayerID, tier)
	}

	var cmd tea.Cmd
	m.tierInput, cmd = m.tierInput.Update(msg)
	return m, cmd
}

func (m Model) updateNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.focus = FocusBoard
		m.noteInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		player := m.selectedPlayer()
		text := strings.TrimSpace(m.noteInput.Value())
		m.focus = FocusBoard
		m.noteInput.Blur()
		if player == nil || text == "" {
			return m, nil
		}
		m.busy = true
		return m, m.noteCmd(player.PlayerID, text)
	}

	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(msg)
	return m, cmd
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.snap.Players) {
		m.cursor = len(m.snap.Players) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
