package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yawnoc/mahjong-scorer/internal/scorelog"
	"github.com/yawnoc/mahjong-scorer/internal/stats"
	"github.com/yawnoc/mahjong-scorer/protocol"
)

func testSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	text := strings.Join([]string{
		"Ada Ben Cat Dot",
		"8 - - d",
		"0 - - -",
	}, "\n")

	set, err := scorelog.Parse(text, scorelog.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	players := stats.Aggregate(set)
	stats.Rank(players)
	return NewSnapshot("scores.txt", len(set.Games), players)
}

func TestPlayersEndpoint(t *testing.T) {
	snap := testSnapshot(t)
	server := httptest.NewServer(router(snap))
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/stats/players")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", resp.StatusCode)
	}

	var payload protocol.PlayerStats
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	if payload.SnapshotID != snap.ID || payload.GameCount != 2 || payload.PlayerCount != 4 {
		t.Fatalf("summary: %+v", payload.StatsSummary)
	}
	if len(payload.Players) != 5 {
		t.Fatalf("expect: 5 rows, got: %d", len(payload.Players))
	}
	if payload.Players[0].Name != "Ada" || payload.Players[0].NetScore != "131" {
		t.Fatalf("top row: %+v", payload.Players[0])
	}
	if last := payload.Players[4]; last.Name != stats.EveryoneName || last.NetScore != "0" {
		t.Fatalf("everyone row: %+v", last)
	}
}

func TestTSVEndpoint(t *testing.T) {
	snap := testSnapshot(t)
	server := httptest.NewServer(router(snap))
	defer server.Close()

	resp, err := http.Get(server.URL + "/v1/stats/tsv")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	body := string(raw)
	if !strings.HasPrefix(body, "name\tgame_count") {
		t.Fatalf("unexpected body: %q", body)
	}
	if !strings.Contains(body, "Ada\t2\t2\t1\t0\t0\t131\t65.5") {
		t.Fatalf("missing Ada row: %q", body)
	}
}
