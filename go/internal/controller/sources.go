package controller

// ImportSourceConfig describes one ingestion provider the service exposes.
type ImportSourceConfig struct {
	Kind        ImportKind `json:"kind"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	NeedsPath   bool       `json:"needs_path"` // kind requires a server-side file path
	NeedsURL    bool       `json:"needs_url"`  // kind requires a source URL
	Seasonal    bool       `json:"seasonal"`   // kind is scoped to a season
}

// GetImportSources returns all ingestion providers keyed by kind.
func GetImportSources() map[ImportKind]ImportSourceConfig {
	return map[ImportKind]ImportSourceConfig{
		ImportDemo: {
			Kind:        ImportDemo,
			Name:        "Demo Data",
			Description: "Small built-in data set for trying the board",
		},
		ImportCSV: {
			Kind:        ImportCSV,
			Name:        "Player CSV",
			Description: "Player pool from a CSV file on the service host",
			NeedsPath:   true,
		},
		ImportSleeper: {
			Kind:        ImportSleeper,
			Name:        "Sleeper Players",
			Description: "Full player pool from the Sleeper API",
			Seasonal:    true,
		},
		ImportInjuriesCBS: {
			Kind:        ImportInjuriesCBS,
			Name:        "CBS Injuries",
			Description: "Injury report scraped from CBS Sports",
			Seasonal:    true,
		},
		ImportECRCsv: {
			Kind:        ImportECRCsv,
			Name:        "FantasyPros ECR (CSV)",
			Description: "Expert consensus ranks from a FantasyPros export",
			NeedsPath:   true,
			Seasonal:    true,
		},
		ImportECRHtml: {
			Kind:        ImportECRHtml,
			Name:        "FantasyPros ECR (HTML)",
			Description: "Expert consensus ranks scraped from a rankings page",
			NeedsURL:    true,
			Seasonal:    true,
		},
		ImportADPCsv: {
			Kind:        ImportADPCsv,
			Name:        "FantasyPros ADP (CSV)",
			Description: "Average draft position from a FantasyPros export",
			NeedsPath:   true,
			Seasonal:    true,
		},
	}
}

// ValidateImportKind checks whether the kind names a known provider.
func ValidateImportKind(kind ImportKind) bool {
	_, exists := GetImportSources()[kind]
	return exists
}

// GetSeasonalImportSources returns only the providers scoped to a season.
func GetSeasonalImportSources() map[ImportKind]ImportSourceConfig {
	all := GetImportSources()
	seasonal := make(map[ImportKind]ImportSourceConfig)
	for kind, config := range all {
		if config.Seasonal {
			seasonal[kind] = config
		}
	}
	return seasonal
}
