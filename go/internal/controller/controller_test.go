package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/enjoyedsaucer25/draft-assistant/go/clients/draft_data_client"
	"github.com/enjoyedsaucer25/draft-assistant/go/internal/models"
	"github.com/enjoyedsaucer25/draft-assistant/go/internal/session"
)

// fakeService is an in-memory stand-in for the draft data service,
// mirroring the real service's semantics: overall numbers must be unique,
// suggestions exclude drafted players, tier overrides mask core tiers.
type fakeService struct {
	mu sync.Mutex

	teams         []models.Team
	picks         []models.Pick
	players       []models.Player
	coreTiers     map[string]int
	tierOverrides map[string]int
	nextPickID    int

	adminToken string

	// failEndpoints maps a path prefix to a status code to force failures.
	failEndpoints map[string]int

	// gates block matching suggestion requests until released, for
	// ordering races in tests. Keyed by position filter value.
	gates map[string]chan struct{}

	// requestCounts tracks hits per path prefix.
	requestCounts map[string]int
}

func newFakeService() *fakeService {
	teamSF := "SF"
	teamCIN := "CIN"
	return &fakeService{
		teams: []models.Team{
			{TeamSlotID: 1, TeamName: "Team 1", DraftPosition: 1},
			{TeamSlotID: 2, TeamName: "Team 2", DraftPosition: 2},
		},
		players: []models.Player{
			{PlayerID: "rb.cmcc", Season: 2025, CleanName: "Christian McCaffrey", Position: "RB", Team: &teamSF},
			{PlayerID: "wr.jchase", Season: 2025, CleanName: "Ja'Marr Chase", Position: "WR", Team: &teamCIN},
			{PlayerID: "rb.brobinson", Season: 2025, CleanName: "Bijan Robinson", Position: "RB"},
		},
		coreTiers:     map[string]int{"rb.cmcc": 1, "wr.jchase": 1, "rb.brobinson": 2},
		tierOverrides: map[string]int{},
		nextPickID:    1,
		failEndpoints: map[string]int{},
		gates:         map[string]chan struct{}{},
		requestCounts: map[string]int{},
	}
}

func (f *fakeService) count(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for p, n := range f.requestCounts {
		if strings.HasPrefix(p, path) {
			total += n
		}
	}
	return total
}

func (f *fakeService) fail(path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failEndpoints[path] = status
}

func (f *fakeService) gate(position string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.gates[position] = ch
	return ch
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeService) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]bool{"ok": true})
	})

	mux.HandleFunc("/teams", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, f.teams)
	})

	mux.HandleFunc("/teams/init", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := len(f.teams) + 1; i <= 12; i++ {
			f.teams = append(f.teams, models.Team{TeamSlotID: i, TeamName: fmt.Sprintf("Team %d", i), DraftPosition: i})
		}
		writeJSON(w, f.teams)
	})

	mux.HandleFunc("/picks", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			f.mu.Lock()
			defer f.mu.Unlock()
			writeJSON(w, f.picks)
		case http.MethodPost:
			var req models.PickRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "bad body", http.StatusBadRequest)
				return
			}
			f.mu.Lock()
			defer f.mu.Unlock()
			known := false
			for _, p := range f.players {
				if p.PlayerID == req.PlayerID {
					known = true
				}
			}
			if !known {
				http.Error(w, "Unknown player_id", http.StatusBadRequest)
				return
			}
			for _, p := range f.picks {
				if p.OverallNo == req.OverallNo {
					http.Error(w, fmt.Sprintf("overall_no %d already used", req.OverallNo), http.StatusBadRequest)
					return
				}
				if p.PlayerID == req.PlayerID {
					http.Error(w, fmt.Sprintf("player %s already drafted", req.PlayerID), http.StatusBadRequest)
					return
				}
			}
			pick := models.Pick{
				PickID:     f.nextPickID,
				RoundNo:    req.RoundNo,
				OverallNo:  req.OverallNo,
				TeamSlotID: req.TeamSlotID,
				PlayerID:   req.PlayerID,
			}
			f.nextPickID++
			f.picks = append(f.picks, pick)
			writeJSON(w, pick)
		}
	})

	mux.HandleFunc("/picks/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/picks/"))
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, p := range f.picks {
			if p.PickID == id {
				f.picks = append(f.picks[:i], f.picks[i+1:]...)
				writeJSON(w, map[string]interface{}{"ok": true, "deleted_pick_id": id})
				return
			}
		}
		http.Error(w, "pick not found", http.StatusNotFound)
	})

	mux.HandleFunc("/suggestions", func(w http.ResponseWriter, r *http.Request) {
		position := r.URL.Query().Get("position")

		f.mu.Lock()
		gate := f.gates[position]
		f.mu.Unlock()
		if gate != nil {
			<-gate
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		drafted := map[string]bool{}
		for _, p := range f.picks {
			drafted[p.PlayerID] = true
		}
		var available []models.Player
		for _, p := range f.players {
			if drafted[p.PlayerID] {
				continue
			}
			if position != "" && p.Position != position {
				continue
			}
			available = append(available, p)
		}
		sug := models.Suggestions{}
		for i, p := range available {
			if i < 3 {
				sug.Top = append(sug.Top, p)
			} else {
				sug.Next = append(sug.Next, p)
			}
		}
		writeJSON(w, sug)
	})

	mux.HandleFunc("/meta/players_enriched", func(w http.ResponseWriter, r *http.Request) {
		position := r.URL.Query().Get("position")
		f.mu.Lock()
		defer f.mu.Unlock()
		var out []models.EnrichedPlayer
		for _, p := range f.players {
			if position != "" && p.Position != position {
				continue
			}
			enriched := models.EnrichedPlayer{
				PlayerID:   p.PlayerID,
				Name:       p.CleanName,
				Pos:        p.Position,
				Team:       p.Team,
				TierSource: models.TierSourceCore,
			}
			if tier, ok := f.coreTiers[p.PlayerID]; ok {
				t := tier
				enriched.Tier = &t
			}
			if override, ok := f.tierOverrides[p.PlayerID]; ok {
				t := override
				enriched.Tier = &t
				enriched.TierSource = models.TierSourceOverride
			}
			out = append(out, enriched)
		}
		writeJSON(w, out)
	})

	mux.HandleFunc("/edits/tier/", func(w http.ResponseWriter, r *http.Request) {
		playerID := strings.TrimPrefix(r.URL.Path, "/edits/tier/")
		f.mu.Lock()
		defer f.mu.Unlock()
		if raw := r.URL.Query().Get("tier"); raw != "" {
			tier, _ := strconv.Atoi(raw)
			f.tierOverrides[playerID] = tier
			writeJSON(w, map[string]interface{}{"ok": true, "tier_override": tier})
			return
		}
		delete(f.tierOverrides, playerID)
		writeJSON(w, map[string]interface{}{"ok": true, "tier_override": nil})
	})

	mux.HandleFunc("/edits/notes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{"ok": true, "note_id": 1})
	})

	mux.HandleFunc("/admin/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		token := f.adminToken
		f.mu.Unlock()
		if token != "" && r.Header.Get("x-token") != token {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		writeJSON(w, map[string]interface{}{"ok": true, "imported": 6})
	})

	// Wrap for failure injection and request counting.
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requestCounts[r.URL.Path]++
		var forced int
		for prefix, status := range f.failEndpoints {
			if strings.HasPrefix(r.URL.Path, prefix) {
				forced = status
			}
		}
		f.mu.Unlock()
		if forced != 0 {
			http.Error(w, "injected failure", forced)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

func newServerFor(f *fakeService) *httptest.Server {
	return httptest.NewServer(f.handler())
}

// newTestController spins up a fake service and a controller wired to it.
func newTestController(f *fakeService) (*Controller, *httptest.Server) {
	server := newServerFor(f)
	api := draft_data_client.NewDraftDataClient(server.URL, "")
	store := session.NewStore(2025)
	return New(api, store), server
}
