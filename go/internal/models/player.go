package models

// Player is the base roster record. PlayerID is the stable identity across
// every view the service returns.
type Player struct {
	PlayerID  string  `json:"player_id"`
	Season    int     `json:"season"`
	CleanName string  `json:"clean_name"`
	Position  string  `json:"position"`
	Team      *string `json:"team,omitempty"`
	ByeWeek   *int    `json:"bye_week,omitempty"`
}

// Tier sources for the enriched projection. An override masks the
// computed tier until it is cleared.
const (
	TierSourceCore     = "core"
	TierSourceOverride = "override"
)

// EnrichedPlayer is the ranked projection joining consensus rank, ADP,
// injury status and any manual tier override.
type EnrichedPlayer struct {
	PlayerID     string   `json:"player_id"`
	Name         string   `json:"name"`
	Pos          string   `json:"pos"`
	Team         *string  `json:"team,omitempty"`
	ECR          *int     `json:"ecr,omitempty"`
	ECRPos       *int     `json:"ecr_pos,omitempty"`
	Tier         *int     `json:"tier,omitempty"`
	TierSource   string   `json:"tier_source"`
	ADP          *float64 `json:"adp,omitempty"`
	InjuryStatus *string  `json:"injury_status,omitempty"`
	InjuryBody   *string  `json:"injury_body,omitempty"`
}
