package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseBreakout(DefaultYAML(), "embedded default")
	if err != nil {
		t.Fatalf("embedded default should parse: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded YAML and DefaultBreakoutConfig() disagree:\n%+v\n%+v", cfg, DefaultBreakoutConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.TotalBricks() != 40 {
		t.Errorf("TotalBricks() = %d, expected 40", cfg.TotalBricks())
	}
	if cfg.PaddleY() != 740 {
		t.Errorf("PaddleY() = %v, expected 740", cfg.PaddleY())
	}
	if cfg.KeyHoldTicks() != 15 {
		t.Errorf("KeyHoldTicks() = %d, expected 15", cfg.KeyHoldTicks())
	}
	if cfg.KeyFirstHoldTicks() != 60 {
		t.Errorf("KeyFirstHoldTicks() = %d, expected 60", cfg.KeyFirstHoldTicks())
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
	}{
		{"zero arena", func(c *BreakoutConfig) { c.Arena.Width = 0 }},
		{"paddle wider than arena", func(c *BreakoutConfig) { c.Paddle.Width = c.Arena.Width + 1 }},
		{"empty angle range", func(c *BreakoutConfig) { c.Ball.MinAngle, c.Ball.MaxAngle = 90, 90 }},
		{"horizontal launch", func(c *BreakoutConfig) { c.Ball.MinAngle = 0 }},
		{"no bricks", func(c *BreakoutConfig) { c.Bricks.Rows = 0 }},
		{"no tick interval", func(c *BreakoutConfig) { c.Timing.TickIntervalMs = 0 }},
		{"negative radius", func(c *BreakoutConfig) { c.Ball.Radius = -1 }},
		{"no key hold", func(c *BreakoutConfig) { c.Timing.KeyHoldMs = 0 }},
		{"first hold shorter than repeat hold", func(c *BreakoutConfig) { c.Timing.KeyFirstHoldMs = 100 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("bricks:\n  columns: 5\n  rows: 2\nball:\n  speed: 8\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}

	if cfg.Bricks.Columns != 5 || cfg.Bricks.Rows != 2 {
		t.Errorf("grid = %dx%d, expected 5x2", cfg.Bricks.Columns, cfg.Bricks.Rows)
	}
	if cfg.Ball.Speed != 8 {
		t.Errorf("ball speed = %v, expected 8", cfg.Ball.Speed)
	}
	// Keys absent from the file keep their defaults
	if cfg.Paddle.Width != 230 {
		t.Errorf("paddle width = %v, expected default 230", cfg.Paddle.Width)
	}
}

func TestLoadBreakoutCustomPathErrors(t *testing.T) {
	if _, err := LoadBreakout(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("arena:\n  width: -3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBreakout(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid custom config should wrap ErrInvalid, got %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	base := DefaultBreakoutConfig()

	easy := base
	ApplyBreakoutPreset(&easy, DifficultyEasy)
	if easy.Paddle.Width <= base.Paddle.Width || easy.Ball.Speed >= base.Ball.Speed {
		t.Errorf("easy should widen the paddle and slow the ball: %+v", easy)
	}

	hard := base
	ApplyBreakoutPreset(&hard, DifficultyHard)
	if hard.Paddle.Width >= base.Paddle.Width || hard.Ball.Speed <= base.Ball.Speed {
		t.Errorf("hard should narrow the paddle and speed up the ball: %+v", hard)
	}

	normal := base
	ApplyBreakoutPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal should not change the configuration")
	}

	for _, cfg := range []BreakoutConfig{easy, hard} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset produced an invalid config: %v", err)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultBreakoutConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := parseBreakout(data, "marshalled")
	if err != nil {
		t.Fatalf("marshalled config should parse: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Error("marshalled config should decode to the defaults")
	}
}

func TestExpandPath(t *testing.T) {
	got, err := ExpandPath("/tmp/x.db")
	if err != nil || got != "/tmp/x.db" {
		t.Errorf("absolute path should be unchanged, got %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandPath("~/.arcade/scores.db")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, ".arcade", "scores.db") {
		t.Errorf("ExpandPath() = %q", got)
	}
}

func TestPresetGameID(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		id     string
		title  string
	}{
		{DifficultyEasy, "breakout_easy", "Easy"},
		{DifficultyNormal, "breakout", "Normal"},
		{"", "breakout", "Normal"},
		{DifficultyHard, "breakout_hard", "Hard"},
	}
	for _, tc := range tests {
		if got := tc.preset.GameID(); got != tc.id {
			t.Errorf("%q.GameID() = %q, expected %q", tc.preset, got, tc.id)
		}
		if got := tc.preset.Title(); got != tc.title {
			t.Errorf("%q.Title() = %q, expected %q", tc.preset, got, tc.title)
		}
	}
	if len(Presets()) != 3 {
		t.Errorf("Presets() = %v", Presets())
	}
}
