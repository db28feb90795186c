package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/enjoyedsaucer25/draft-assistant/go/clients/draft_data_client"
	"github.com/enjoyedsaucer25/draft-assistant/go/internal/appconfig"
	"github.com/enjoyedsaucer25/draft-assistant/go/internal/controller"
	"github.com/enjoyedsaucer25/draft-assistant/go/internal/draftui"
	"github.com/enjoyedsaucer25/draft-assistant/go/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	cfg, err := appconfig.NewConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// The terminal belongs to the TUI, so logs go to a file when one is
	// configured and are dropped otherwise.
	logSink, closeSink, err := openLogSink(cfg.LogFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.LogFile).Msg("could not open log file")
	}
	defer closeSink()
	log.Logger = log.Output(logSink)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	api := draft_data_client.NewDraftDataClient(cfg.APIURL, cfg.AdminToken)
	store := session.NewStore(cfg.Season)
	ctrl := controller.New(api, store)

	log.Info().
		Str("api_url", cfg.APIURL).
		Int("season", cfg.Season).
		Bool("admin", cfg.AdminToken != "").
		Msg("starting draft room")

	program := tea.NewProgram(draftui.New(ctrl, cfg.League), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "draft room exited with error: %v\n", err)
		os.Exit(1)
	}
}

func openLogSink(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return zerolog.ConsoleWriter{Out: f, NoColor: true}, func() { f.Close() }, nil
}
