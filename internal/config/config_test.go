package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}
	cfg.Normalize()

	def := DefaultSnakeConfig()
	if cfg != def {
		t.Errorf("Embedded default %+v does not match DefaultSnakeConfig %+v", cfg, def)
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "snake.yaml")

	data := []byte("board:\n  width: 30\n  height: 15\nspeed:\n  move_every_ticks: 6\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake(%s) failed: %v", path, err)
	}

	if cfg.Board.Width != 30 || cfg.Board.Height != 15 {
		t.Errorf("Board = %+v, expected 30x15", cfg.Board)
	}
	if cfg.Speed.MoveEveryTicks != 6 {
		t.Errorf("MoveEveryTicks = %d, expected 6", cfg.Speed.MoveEveryTicks)
	}

	// Missing keys fall back to defaults via Normalize
	if cfg.Rules.InitialLength != DefaultSnakeConfig().Rules.InitialLength {
		t.Errorf("InitialLength = %d, expected default", cfg.Rules.InitialLength)
	}
}

func TestLoadSnakeMissingCustomPath(t *testing.T) {
	_, err := LoadSnake("/nonexistent/snake.yaml")
	if err == nil {
		t.Error("LoadSnake with a missing custom path should fail")
	}
}

func TestNormalizeClampsInitialLength(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Board.Width = 6
	cfg.Rules.InitialLength = 10
	cfg.Normalize()

	if cfg.Rules.InitialLength != 4 {
		t.Errorf("InitialLength = %d, expected clamped to 4", cfg.Rules.InitialLength)
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		wantInterval int
		wantSpeedup  int
	}{
		{DifficultyEasy, 12, 5},
		{DifficultyNormal, 9, 5},
		{DifficultyHard, 6, 5},
		{DifficultyFixed, 9, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, tc.preset)

			if cfg.Speed.MoveEveryTicks != tc.wantInterval {
				t.Errorf("MoveEveryTicks = %d, expected %d", cfg.Speed.MoveEveryTicks, tc.wantInterval)
			}
			if cfg.Speed.SpeedupEveryFood != tc.wantSpeedup {
				t.Errorf("SpeedupEveryFood = %d, expected %d", cfg.Speed.SpeedupEveryFood, tc.wantSpeedup)
			}
		})
	}
}

func TestValidPreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "fixed"} {
		if !ValidPreset(s) {
			t.Errorf("ValidPreset(%q) should be true", s)
		}
	}
	if ValidPreset("nightmare") {
		t.Error("ValidPreset(\"nightmare\") should be false")
	}
}
