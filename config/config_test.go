package config

import "testing"

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DISCORD_TOKEN", "token")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "data" {
		t.Errorf("DataDir = %q, want data", cfg.DataDir)
	}
	if cfg.Prefix != "!" {
		t.Errorf("Prefix = %q, want !", cfg.Prefix)
	}
	if cfg.ProbePort != "8080" {
		t.Errorf("ProbePort = %q, want 8080", cfg.ProbePort)
	}
	if cfg.TZName != "Europe/Paris" {
		t.Errorf("TZName = %q, want Europe/Paris", cfg.TZName)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Error("Load succeeded without DISCORD_TOKEN")
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad port", "PROBE_PORT", "keepalive"},
		{"bad zone", "TZ_NAME", "Mars/Olympus"},
		{"bad level", "LOG_LEVEL", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load accepted %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestLocation(t *testing.T) {
	setRequired(t)
	t.Setenv("TZ_NAME", "UTC")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Location().String() != "UTC" {
		t.Errorf("Location = %v", cfg.Location())
	}
}
