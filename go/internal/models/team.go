package models

// Team is one league slot. Slots are created in bulk by the teams/init
// action on the service; the client never invents a slot id.
type Team struct {
	TeamSlotID    int    `json:"team_slot_id"`
	TeamName      string `json:"team_name"`
	DraftPosition int    `json:"draft_position"`
}
