package statsfeed

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/scoutschool/daily-shift/internal/infrastructure/dataset"
	"github.com/scoutschool/daily-shift/internal/platform/resilience"
	"github.com/scoutschool/daily-shift/internal/usecase"
)

const feedPlayersJSON = `[{"id":"101","team_name":"Anaheim Ducks","team_abbr":"ANA","player_name":"Tage Morgan","position":"C","rating":94,"unique_trait":"Elite playmaker.","is_unique_fact":true,"jersey_number":"19","age":"27","height":"6' 1\""}]`

func newFeedServer(t *testing.T, files map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := files[filepath.Base(r.URL.Path)]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestSync_FetchesFullPack(t *testing.T) {
	t.Parallel()

	server := newFeedServer(t, map[string]string{
		dataset.PlayersFile:       feedPlayersJSON,
		dataset.GoalieRatingsFile: "playerId,name,team,position,Overall_Talent_Rating\n901,Marek Dostal,ana,G,88\n",
		dataset.GoalieLookupFile:  "playerId,primaryNumber,height,birthDate\n901,31,6' 3\",1998-02-11\n",
		dataset.StructuresFile:    `[{"team_abbr":"ANA","lines":{"Line 1":{"C":"Tage Morgan"}}}]`,
	})

	client := NewClient(ClientConfig{BaseURL: server.URL})
	dir := t.TempDir()

	result, err := client.Sync(t.Context(), dir)
	if err != nil {
		t.Fatalf("expected sync to succeed, got error=%v", err)
	}
	if len(result.Fetched) != 4 {
		t.Fatalf("expected 4 fetched files, got=%v", result.Fetched)
	}
	if len(result.Skipped) != 0 {
		t.Fatalf("expected no skipped files, got=%v", result.Skipped)
	}

	raw, err := os.ReadFile(filepath.Join(dir, dataset.PlayersFile))
	if err != nil {
		t.Fatalf("expected player file on disk, got error=%v", err)
	}
	if string(raw) != feedPlayersJSON {
		t.Fatalf("player file content mismatch, got=%s", raw)
	}
}

func TestSync_SkipsIncompleteGoaliePair(t *testing.T) {
	t.Parallel()

	server := newFeedServer(t, map[string]string{
		dataset.PlayersFile:       feedPlayersJSON,
		dataset.GoalieRatingsFile: "playerId,name,team,position,Overall_Talent_Rating\n901,Marek Dostal,ana,G,88\n",
	})

	client := NewClient(ClientConfig{BaseURL: server.URL})
	dir := t.TempDir()

	result, err := client.Sync(t.Context(), dir)
	if err != nil {
		t.Fatalf("expected sync to succeed, got error=%v", err)
	}
	if len(result.Fetched) != 1 || result.Fetched[0] != dataset.PlayersFile {
		t.Fatalf("expected only the player file fetched, got=%v", result.Fetched)
	}
	if len(result.Skipped) != 3 {
		t.Fatalf("expected goalie pair and structures skipped, got=%v", result.Skipped)
	}
	if _, err := os.Stat(filepath.Join(dir, dataset.GoalieRatingsFile)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no goalie ratings file on disk, got err=%v", err)
	}
}

func TestSync_MissingPlayersFails(t *testing.T) {
	t.Parallel()

	server := newFeedServer(t, map[string]string{})

	client := NewClient(ClientConfig{BaseURL: server.URL})

	_, err := client.Sync(t.Context(), t.TempDir())
	if !errors.Is(err, ErrFileUnavailable) {
		t.Fatalf("expected ErrFileUnavailable, got=%v", err)
	}
}

func TestSync_RejectsMalformedPlayerPayload(t *testing.T) {
	t.Parallel()

	server := newFeedServer(t, map[string]string{
		dataset.PlayersFile: `{"broken":`,
	})

	client := NewClient(ClientConfig{BaseURL: server.URL})
	dir := t.TempDir()

	if _, err := client.Sync(t.Context(), dir); err == nil {
		t.Fatal("expected malformed player payload to fail sync")
	}
	if _, err := os.Stat(filepath.Join(dir, dataset.PlayersFile)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no player file written, got err=%v", err)
	}
}

func TestFetchFile_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(feedPlayersJSON))
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{BaseURL: server.URL, MaxRetries: 2})

	raw, err := client.fetchFile(t.Context(), dataset.PlayersFile)
	if err != nil {
		t.Fatalf("expected retry to recover, got error=%v", err)
	}
	if string(raw) != feedPlayersJSON {
		t.Fatalf("unexpected payload after retry: %s", raw)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 attempts, got=%d", got)
	}
}

func TestFetchFile_OpenBreakerMapsToDependencyUnavailable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	})

	if _, err := client.fetchFile(t.Context(), dataset.PlayersFile); err == nil {
		t.Fatal("expected first fetch to fail")
	}

	_, err := client.fetchFile(t.Context(), dataset.PlayersFile)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable from open breaker, got=%v", err)
	}
}

func TestFetchFile_NoBaseURL(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{})

	_, err := client.fetchFile(t.Context(), dataset.PlayersFile)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable without base url, got=%v", err)
	}
}
