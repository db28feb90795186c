package controller

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ImportKind names one of the service's bulk ingestion jobs.
type ImportKind string

const (
	ImportDemo        ImportKind = "demo"
	ImportCSV         ImportKind = "csv"
	ImportSleeper     ImportKind = "sleeper players"
	ImportInjuriesCBS ImportKind = "cbs injuries"
	ImportECRCsv      ImportKind = "fantasypros ecr csv"
	ImportECRHtml     ImportKind = "fantasypros ecr html"
	ImportADPCsv      ImportKind = "fantasypros adp csv"
)

// ImportOptions carries the per-kind parameters. Unused fields are ignored
// by kinds that do not need them.
type ImportOptions struct {
	Season int
	Path   string
	URL    string
	Source string
}

// ImportOutcome reports a finished import trigger: which import ran, how
// the import itself ended, and how the follow-up reload ended. Nothing
// here is retained in the session store.
type ImportOutcome struct {
	Kind      ImportKind
	Err       error
	ReloadErr error
}

// Failed reports whether the import itself was rejected or errored.
func (o ImportOutcome) Failed() bool {
	return o.Err != nil
}

// RunImport fires one bulk import and then reconciles unconditionally:
// even a failed import may have left partial rows behind, so the board is
// re-pulled either way. The outcome names the specific import for the
// operator notice.
func (c *Controller) RunImport(ctx context.Context, kind ImportKind, opts ImportOptions) ImportOutcome {
	outcome := ImportOutcome{Kind: kind}

	source, known := GetImportSources()[kind]
	if !known {
		outcome.Err = fmt.Errorf("unknown import kind %q", kind)
		outcome.ReloadErr = c.ReloadAll(ctx)
		return outcome
	}
	if source.NeedsPath && opts.Path == "" {
		outcome.Err = fmt.Errorf("%s import requires a file path", source.Name)
		outcome.ReloadErr = c.ReloadAll(ctx)
		return outcome
	}
	if source.NeedsURL && opts.URL == "" {
		outcome.Err = fmt.Errorf("%s import requires a source URL", source.Name)
		outcome.ReloadErr = c.ReloadAll(ctx)
		return outcome
	}

	season := opts.Season
	if season == 0 {
		season = c.store.Season()
	}

	var err error
	switch kind {
	case ImportDemo:
		_, err = c.api.ImportDemo(ctx)
	case ImportCSV:
		_, err = c.api.ImportCSV(ctx, opts.Path)
	case ImportSleeper:
		_, err = c.api.ImportSleeperPlayers(ctx, season)
	case ImportInjuriesCBS:
		_, err = c.api.ImportInjuriesCBS(ctx, season)
	case ImportECRCsv:
		_, err = c.api.ImportFPECRCsv(ctx, season, opts.Path)
	case ImportECRHtml:
		_, err = c.api.ImportFPECRHtml(ctx, season, opts.URL)
	case ImportADPCsv:
		_, err = c.api.ImportFPADPCsv(ctx, season, opts.Path, opts.Source)
	}
	outcome.Err = err

	if err != nil {
		log.Error().Err(err).Str("import", source.Name).Msg("import failed")
	} else {
		log.Info().Str("import", source.Name).Msg("import completed")
	}

	outcome.ReloadErr = c.ReloadAll(ctx)
	return outcome
}
