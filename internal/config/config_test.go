package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultConfig())
	}
}

func TestParsePartial(t *testing.T) {
	cfg, err := Parse([]byte("preset: expert\ntiming:\n  tick_rate: 60\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Preset != PresetExpert {
		t.Errorf("Preset = %q, want expert", cfg.Preset)
	}
	if cfg.Timing.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60", cfg.Timing.TickRate)
	}
	if cfg.Timing.EngineTickHz != DefaultConfig().Timing.EngineTickHz {
		t.Errorf("EngineTickHz = %d, want default", cfg.Timing.EngineTickHz)
	}
	if cfg.Glyphs != DefaultConfig().Glyphs {
		t.Errorf("Glyphs = %+v, want defaults", cfg.Glyphs)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "preset: [", "parse"},
		{"unknown preset", "preset: nightmare", "unknown difficulty preset"},
		{"too many mines", "custom: {width: 3, height: 3, mines: 9}", "custom"},
		{"zero tick rate", "timing: {tick_rate: 0}", "tick_rate"},
		{"engine faster than frames", "timing: {tick_rate: 10, engine_tick_hz: 20}", "engine_tick_hz"},
		{"wide glyph", "glyphs: {flag: \"FL\"}", "glyphs.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestResolveDifficulty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Custom = CustomDifficulty{Width: 20, Height: 10, Mines: 30}

	tests := []struct {
		preset DifficultyPreset
		want   mines.Difficulty
	}{
		{PresetBeginner, mines.Beginner},
		{PresetIntermediate, mines.Intermediate},
		{PresetExpert, mines.Expert},
		{PresetCustom, mines.Difficulty{Width: 20, Height: 10, Mines: 30}},
	}
	for _, tt := range tests {
		got, err := cfg.ResolveDifficulty(tt.preset)
		if err != nil {
			t.Errorf("ResolveDifficulty(%q) failed: %v", tt.preset, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveDifficulty(%q) = %v, want %v", tt.preset, got, tt.want)
		}
	}

	if _, err := cfg.ResolveDifficulty("hard"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ResolveDifficulty(hard) error = %v, want ErrUnknownPreset", err)
	}

	cfg.Custom.Mines = 0
	if _, err := cfg.ResolveDifficulty(PresetCustom); !errors.Is(err, mines.ErrInvalidDifficulty) {
		t.Errorf("ResolveDifficulty(custom) error = %v, want ErrInvalidDifficulty", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mines.yaml")
	if err := os.WriteFile(path, []byte("preset: intermediate\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Preset != PresetIntermediate {
		t.Errorf("Preset = %q, want intermediate", cfg.Preset)
	}
	if src != Source(path) {
		t.Errorf("source = %q, want %q", src, path)
	}

	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load with a missing custom path should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, want embedded", src)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded config = %+v, want defaults", cfg)
	}

	dir := filepath.Join(home, ".mines")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	userPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(userPath, []byte("preset: expert\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if src != Source(userPath) || cfg.Preset != PresetExpert {
		t.Errorf("Load() = %q from %q, want expert from %q", cfg.Preset, src, userPath)
	}

	// A broken user file is skipped.
	if err := os.WriteFile(userPath, []byte("preset: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, src, _ := Load(""); src != SourceEmbedded {
		t.Errorf("source = %q, want embedded when the user file is broken", src)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preset = PresetCustom
	cfg.Custom = CustomDifficulty{Width: 40, Height: 20, Mines: 99}

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/var/log/mines.log", "/var/log/mines.log"},
		{"relative/mines.log", "relative/mines.log"},
		{"~/.mines/mines.log", filepath.Join(home, ".mines", "mines.log")},
	}
	for _, tt := range tests {
		got, err := ExpandPath(tt.in)
		if err != nil {
			t.Fatalf("ExpandPath(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
