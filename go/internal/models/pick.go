package models

// Pick is one completed selection. PickID and the uniqueness of OverallNo
// are owned by the service; the client only displays them.
type Pick struct {
	PickID     int    `json:"pick_id"`
	RoundNo    int    `json:"round_no"`
	OverallNo  int    `json:"overall_no"`
	TeamSlotID int    `json:"team_slot_id"`
	PlayerID   string `json:"player_id"`
}

// PickRequest is the body for creating a pick.
type PickRequest struct {
	RoundNo    int    `json:"round_no"`
	OverallNo  int    `json:"overall_no"`
	TeamSlotID int    `json:"team_slot_id"`
	PlayerID   string `json:"player_id"`
}

// PickForm is the operator's manual entry buffer. It is the only
// client-owned record: volatile, never persisted, never sent to the
// service except as a PickRequest.
type PickForm struct {
	RoundNo    int
	OverallNo  int
	TeamSlotID int
	PlayerID   string
}

// Request converts the form into the wire payload.
func (f PickForm) Request() PickRequest {
	return PickRequest{
		RoundNo:    f.RoundNo,
		OverallNo:  f.OverallNo,
		TeamSlotID: f.TeamSlotID,
		PlayerID:   f.PlayerID,
	}
}
