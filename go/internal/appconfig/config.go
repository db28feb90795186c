package appconfig

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds DA_* environment settings for the draft assistant.
type Config struct {
	APIURL     string
	AdminToken string
	Season     int
	LogFile    string
	League     LeagueConfig
}

// LeagueConfig describes the league shape. It comes from an optional yaml
// file (DA_CONFIG); the defaults match the reference deployment.
type LeagueConfig struct {
	TeamCount   int      `yaml:"team_count"`
	Positions   []string `yaml:"positions"`
	SuggestTop  int      `yaml:"suggest_top"`
	SuggestNext int      `yaml:"suggest_next"`
}

// DefaultLeague is a 12-team league with the standard position set.
func DefaultLeague() LeagueConfig {
	return LeagueConfig{
		TeamCount:   12,
		Positions:   []string{"QB", "RB", "WR", "TE", "K", "DEF"},
		SuggestTop:  3,
		SuggestNext: 10,
	}
}

// NewConfigFromEnv reads DA_* environment variables (with defaults) and
// merges the league file named by DA_CONFIG when present.
func NewConfigFromEnv() (Config, error) {
	season, err := strconv.Atoi(getEnv("DA_SEASON", "2025"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DA_SEASON: %w", err)
	}

	cfg := Config{
		APIURL:     getEnv("DA_API_URL", "http://localhost:8000"),
		AdminToken: os.Getenv("DA_ADMIN_TOKEN"),
		Season:     season,
		LogFile:    os.Getenv("DA_LOG_FILE"),
		League:     DefaultLeague(),
	}

	if path := os.Getenv("DA_CONFIG"); path != "" {
		league, err := LoadLeagueFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg.League = league
	}

	return cfg, nil
}

// LoadLeagueFile parses a league yaml file. Omitted fields keep their
// defaults.
func LoadLeagueFile(path string) (LeagueConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LeagueConfig{}, fmt.Errorf("failed to read league config: %w", err)
	}

	league := DefaultLeague()
	if err := yaml.Unmarshal(data, &league); err != nil {
		return LeagueConfig{}, fmt.Errorf("failed to parse league config: %w", err)
	}

	return league, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
