package protocol

// Wire types for the read-only stats service. Ratio and score fields are
// pre-rounded strings ("nan" when undefined) because JSON has no NaN.

type PlayerRow struct {
	Name            string `json:"name"`
	GameCount       int    `json:"game_count"`
	WinCount        int    `json:"win_count"`
	WinFraction     string `json:"win_fraction"`
	BlameCount      int    `json:"blame_count"`
	BlameFraction   string `json:"blame_fraction"`
	NetScore        string `json:"net_score"`
	NetScorePerGame string `json:"net_score_per_game"`
}

// StatsSummary describes one loaded score set. A snapshot is immutable;
// its id changes only when the process is restarted with new input.
type StatsSummary struct {
	SnapshotID  string `json:"snapshot_id"`
	Source      string `json:"source"`
	LoadedAt    int64  `json:"loaded_at"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	GameCount   int    `json:"game_count"`
	PlayerCount int    `json:"player_count"`
}

type PlayerStats struct {
	StatsSummary
	Players []PlayerRow `json:"players"`
}
