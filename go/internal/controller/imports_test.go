package controller

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/enjoyedsaucer25/draft-assistant/go/clients"
	"github.com/enjoyedsaucer25/draft-assistant/go/clients/draft_data_client"
	"github.com/enjoyedsaucer25/draft-assistant/go/internal/session"
)

func TestRunImportReloadsOnSuccess(t *testing.T) {
	fake := newFakeService()
	c, server := newTestController(fake)
	defer server.Close()

	outcome := c.RunImport(context.Background(), ImportDemo, ImportOptions{})
	if outcome.Failed() {
		t.Fatalf("import failed: %v", outcome.Err)
	}
	if outcome.Kind != ImportDemo {
		t.Errorf("outcome names %q, want the demo import", outcome.Kind)
	}
	if outcome.ReloadErr != nil {
		t.Errorf("follow-up reload failed: %v", outcome.ReloadErr)
	}
	if fake.count("/picks") == 0 {
		t.Error("no reload observed after the import")
	}
}

func TestRunImportFailureStillReloadsAndNamesItself(t *testing.T) {
	fake := newFakeService()
	c, server := newTestController(fake)
	defer server.Close()

	if err := c.ReloadAll(context.Background()); err != nil {
		t.Fatalf("ReloadAll() error: %v", err)
	}
	playersBefore := c.Store().Snapshot().Players

	fake.fail("/admin/import/sleeper", http.StatusBadGateway)
	reloadsBefore := fake.count("/teams")

	outcome := c.RunImport(context.Background(), ImportSleeper, ImportOptions{Season: 2025})
	if !outcome.Failed() {
		t.Fatal("import reported success despite the injected failure")
	}
	if outcome.Kind != ImportSleeper {
		t.Errorf("failure outcome names %q, want the sleeper import", outcome.Kind)
	}
	if fake.count("/teams") != reloadsBefore+1 {
		t.Error("failed import skipped the unconditional reload")
	}

	// The reload succeeded against unchanged data, so the table is the
	// same; the failed import itself wrote nothing into the store.
	playersAfter := c.Store().Snapshot().Players
	if len(playersAfter) != len(playersBefore) {
		t.Errorf("player table changed across a failed import: %d -> %d", len(playersBefore), len(playersAfter))
	}
}

func TestRunImportUnreachableServiceIsNetworkFailure(t *testing.T) {
	api := draft_data_client.NewDraftDataClient("http://127.0.0.1:1", "")
	c := New(api, session.NewStore(2025))

	outcome := c.RunImport(context.Background(), ImportDemo, ImportOptions{})
	if !errors.Is(outcome.Err, clients.ErrNetwork) {
		t.Errorf("outcome.Err = %v, want ErrNetwork", outcome.Err)
	}
	if outcome.ReloadErr == nil {
		t.Error("reload against an unreachable service reported success")
	}
}

func TestImportAgainstGuardedServiceWithoutToken(t *testing.T) {
	fake := newFakeService()
	fake.adminToken = "sekrit"
	c, server := newTestController(fake)
	defer server.Close()

	outcome := c.RunImport(context.Background(), ImportDemo, ImportOptions{})
	if !errors.Is(outcome.Err, clients.ErrUnauthorized) {
		t.Errorf("outcome.Err = %v, want ErrUnauthorized", outcome.Err)
	}
}

func TestImportWithTokenPassesGuard(t *testing.T) {
	fake := newFakeService()
	fake.adminToken = "sekrit"
	server := newServerFor(fake)
	defer server.Close()

	api := draft_data_client.NewDraftDataClient(server.URL, "sekrit")
	c := New(api, session.NewStore(2025))

	outcome := c.RunImport(context.Background(), ImportInjuriesCBS, ImportOptions{})
	if outcome.Failed() {
		t.Errorf("guarded import with token failed: %v", outcome.Err)
	}
}

func TestRunImportRejectsUnknownKind(t *testing.T) {
	fake := newFakeService()
	c, server := newTestController(fake)
	defer server.Close()

	outcome := c.RunImport(context.Background(), ImportKind("bogus"), ImportOptions{})
	if !outcome.Failed() {
		t.Fatal("unknown import kind should fail")
	}
	if fake.count("/admin/import") != 0 {
		t.Error("unknown kind should never reach the service")
	}
}

func TestRunImportEnforcesProviderParameters(t *testing.T) {
	fake := newFakeService()
	c, server := newTestController(fake)
	defer server.Close()

	tests := []struct {
		name string
		kind ImportKind
		opts ImportOptions
	}{
		{"csv without path", ImportCSV, ImportOptions{}},
		{"ecr html without url", ImportECRHtml, ImportOptions{Season: 2025}},
		{"adp without path", ImportADPCsv, ImportOptions{Season: 2025}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := c.RunImport(context.Background(), tt.kind, tt.opts)
			if !outcome.Failed() {
				t.Fatal("missing provider parameter should fail the import")
			}
			if fake.count("/admin/import") != 0 {
				t.Error("rejected import should never reach the service")
			}
		})
	}
}

func TestImportSourceRegistryCoversEveryKind(t *testing.T) {
	kinds := []ImportKind{
		ImportDemo, ImportCSV, ImportSleeper, ImportInjuriesCBS,
		ImportECRCsv, ImportECRHtml, ImportADPCsv,
	}
	for _, kind := range kinds {
		if !ValidateImportKind(kind) {
			t.Errorf("kind %q missing from the import source registry", kind)
		}
	}
	if ValidateImportKind("nope") {
		t.Error("registry validated an unknown kind")
	}
	for kind, config := range GetSeasonalImportSources() {
		if !config.Seasonal {
			t.Errorf("non-seasonal provider %q in seasonal view", kind)
		}
	}
}
