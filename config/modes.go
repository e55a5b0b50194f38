package config

const (
	ArenaWidth  = 1200.0
	ArenaHeight = 600.0

	MatchSeconds = 120 // countdown length per match
	WinScore     = 7   // first to this many goals ends the match early
)

// MatchConfig is derived once from the selected mode and is immutable for the
// duration of the match.
type MatchConfig struct {
	ArenaWidth  float64 `json:"width"`
	ArenaHeight float64 `json:"height"`
	GoalWidth   float64 `json:"goalWidth"`
	MaxPerTeam  int     `json:"maxPerTeam"`
}

// ModeConfig maps a mode name (1v1..4v4) to its match configuration. The goal
// mouth widens with team size. Unknown modes fall back to 1v1, ok=false.
func ModeConfig(mode string) (MatchConfig, bool) {
	cfg := MatchConfig{ArenaWidth: ArenaWidth, ArenaHeight: ArenaHeight}
	switch mode {
	case "1v1":
		cfg.GoalWidth, cfg.MaxPerTeam = 180, 1
	case "2v2":
		cfg.GoalWidth, cfg.MaxPerTeam = 220, 2
	case "3v3":
		cfg.GoalWidth, cfg.MaxPerTeam = 250, 3
	case "4v4":
		cfg.GoalWidth, cfg.MaxPerTeam = 280, 4
	default:
		cfg.GoalWidth, cfg.MaxPerTeam = 180, 1
		return cfg, false
	}
	return cfg, true
}

// MaxPlayers is the room capacity for this configuration.
func (c MatchConfig) MaxPlayers() int {
	return 2 * c.MaxPerTeam
}
