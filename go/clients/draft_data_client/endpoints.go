package draft_data_client

const (
	// API Endpoints
	HealthEndpoint          = "/health"
	TeamsEndpoint           = "/teams"
	TeamsInitEndpoint       = "/teams/init"
	TeamsUpsertEndpoint     = "/teams/upsert"
	PicksEndpoint           = "/picks"
	SuggestionsEndpoint     = "/suggestions"
	PlayersEndpoint         = "/players"
	PlayersEnrichedEndpoint = "/meta/players_enriched"
	TierEditEndpoint        = "/edits/tier"
	NotesEndpoint           = "/edits/notes"

	// Admin import endpoints
	ImportDemoEndpoint        = "/admin/import/demo"
	ImportCSVEndpoint         = "/admin/import/csv"
	ImportSleeperEndpoint     = "/admin/import/sleeper"
	ImportInjuriesCBSEndpoint = "/admin/import/injuries/cbs"
	ImportFPECRCsvEndpoint    = "/admin/import/ecr/csv"
	ImportFPECRHtmlEndpoint   = "/admin/import/ecr/html"
	ImportFPADPCsvEndpoint    = "/admin/import/adp/csv"

	// Headers
	AdminTokenHeader = "x-token"
)
