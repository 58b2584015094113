package web

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/lonng/nex"
	"github.com/pborman/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/yawnoc/mahjong-scorer/internal/stats"
	"github.com/yawnoc/mahjong-scorer/internal/tabular"
	"github.com/yawnoc/mahjong-scorer/pkg/errutil"
	"github.com/yawnoc/mahjong-scorer/pkg/numutil"
	"github.com/yawnoc/mahjong-scorer/pkg/whitelist"
	"github.com/yawnoc/mahjong-scorer/protocol"
)

var logger = log.WithField("component", "http")

const maxDecimalPlaces = 4

// Snapshot is one fully-scored score set, frozen at load time. The
// service is read-only: reloading means restarting the process with new
// input.
type Snapshot struct {
	ID        string
	Source    string
	LoadedAt  time.Time
	StartDate string
	EndDate   string
	GameCount int
	Players   []*stats.Player // presentation order
	EmptyNaN  bool
}

// NewSnapshot tags a ranked score set with a fresh snapshot id.
func NewSnapshot(source string, gameCount int, players []*stats.Player) *Snapshot {
	return &Snapshot{
		ID:        uuid.New(),
		Source:    source,
		LoadedAt:  time.Now(),
		GameCount: gameCount,
		Players:   players,
	}
}

func (s *Snapshot) summary() *protocol.StatsSummary {
	playerCount := len(s.Players)
	if playerCount > 0 {
		playerCount-- // exclude the synthetic everyone record
	}
	return &protocol.StatsSummary{
		SnapshotID:  s.ID,
		Source:      s.Source,
		LoadedAt:    s.LoadedAt.Unix(),
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
		GameCount:   s.GameCount,
		PlayerCount: playerCount,
	}
}

func (s *Snapshot) rows() []protocol.PlayerRow {
	rows := make([]protocol.PlayerRow, len(s.Players))
	for i, p := range s.Players {
		rows[i] = protocol.PlayerRow{
			Name:            p.Name,
			GameCount:       p.GameCount,
			WinCount:        p.WinCount,
			WinFraction:     numutil.Blunt(p.WinFraction, maxDecimalPlaces, s.EmptyNaN),
			BlameCount:      p.BlameCount,
			BlameFraction:   numutil.Blunt(p.BlameFraction, maxDecimalPlaces, s.EmptyNaN),
			NetScore:        numutil.Blunt(p.NetScore, maxDecimalPlaces, s.EmptyNaN),
			NetScorePerGame: numutil.Blunt(p.NetScorePerGame, maxDecimalPlaces, s.EmptyNaN),
		}
	}
	return rows
}

func summaryHandler(snap *Snapshot) func() (*protocol.StatsSummary, error) {
	return func() (*protocol.StatsSummary, error) {
		return snap.summary(), nil
	}
}

func playersHandler(snap *Snapshot) func() (*protocol.PlayerStats, error) {
	return func() (*protocol.PlayerStats, error) {
		return &protocol.PlayerStats{
			StatsSummary: *snap.summary(),
			Players:      snap.rows(),
		}, nil
	}
}

func tsvHandler(snap *Snapshot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/tab-separated-values; charset=utf-8")
		if err := tabular.Write(w, snap.Players, tabular.Options{EmptyNaN: snap.EmptyNaN}); err != nil {
			logger.Errorf("write tsv: %v", err)
		}
	}
}

func pongHandler() (string, error) {
	return "pong", nil
}

func logRequest(ctx context.Context, r *http.Request) (context.Context, error) {
	if uri := r.RequestURI; uri != "/ping" {
		logger.Debugf("Method=%s, RemoteAddr=%s URL=%s", r.Method, r.RemoteAddr, uri)
	}
	return ctx, nil
}

func ipFilter(ctx context.Context, r *http.Request) (context.Context, error) {
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i >= 0 {
		host = host[:i]
	}
	if !whitelist.VerifyIP(host) {
		return ctx, errutil.ErrPermissionDenied
	}
	return ctx, nil
}

func router(snap *Snapshot) http.Handler {
	nex.Before(logRequest)

	r := mux.NewRouter()
	r.Handle("/v1/stats/summary", nex.Handler(summaryHandler(snap)).Before(ipFilter)).Methods("GET")
	r.Handle("/v1/stats/players", nex.Handler(playersHandler(snap)).Before(ipFilter)).Methods("GET")
	r.Handle("/v1/stats/tsv", tsvHandler(snap)).Methods("GET")
	r.Handle("/ping", nex.Handler(pongHandler))
	return r
}

// Serve publishes the snapshot until SIGINT/SIGTERM.
func Serve(addr string, snap *Snapshot) error {
	if err := whitelist.Setup(viper.GetStringSlice("whitelist.ip")); err != nil {
		return err
	}

	server := &http.Server{Addr: addr, Handler: router(snap)}

	logger.Infof("stats service addr: %s (snapshot %s, %d games)",
		addr, snap.ID, snap.GameCount)

	errs := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errs <- err
		}
	}()

	sg := make(chan os.Signal, 1)
	signal.Notify(sg, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errs:
		return err
	case s := <-sg:
		logger.Infof("got signal: %s", s.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
