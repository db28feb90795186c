package models

import "time"

// Note is a player-scoped annotation, optionally tagged with a team slot.
type Note struct {
	NoteID     int       `json:"note_id"`
	PlayerID   string    `json:"player_id"`
	TeamSlotID *int      `json:"team_slot_id,omitempty"`
	Text       string    `json:"text"`
	TS         time.Time `json:"ts"`
}
