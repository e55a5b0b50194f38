package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeConfig(t *testing.T) {
	tests := []struct {
		mode       string
		goalWidth  float64
		maxPerTeam int
		ok         bool
	}{
		{"1v1", 180, 1, true},
		{"2v2", 220, 2, true},
		{"3v3", 250, 3, true},
		{"4v4", 280, 4, true},
		{"5v5", 180, 1, false},
		{"", 180, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			cfg, ok := ModeConfig(tt.mode)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.goalWidth, cfg.GoalWidth)
			assert.Equal(t, tt.maxPerTeam, cfg.MaxPerTeam)
			assert.Equal(t, float64(1200), cfg.ArenaWidth)
			assert.Equal(t, float64(600), cfg.ArenaHeight)
			assert.Equal(t, 2*tt.maxPerTeam, cfg.MaxPlayers())
		})
	}
}
