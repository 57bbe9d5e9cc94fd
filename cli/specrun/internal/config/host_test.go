package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReadHostConfigFromEnvPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "nvim: /opt/nvim/bin/nvim\ntimeout: 90s\nextra_args: [\"--noplugin\"]\nenv:\n  TINYMIST_LOG: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SPECRUN_CONFIG", path)
	cfg, cfgDir, err := ReadHostConfig()
	if err != nil {
		t.Fatalf("ReadHostConfig: %v", err)
	}
	if cfgDir != dir {
		t.Fatalf("config dir = %q, want %q", cfgDir, dir)
	}
	if cfg.Nvim != "/opt/nvim/bin/nvim" {
		t.Fatalf("nvim = %q", cfg.Nvim)
	}
	if len(cfg.ExtraArgs) != 1 || cfg.ExtraArgs[0] != "--noplugin" {
		t.Fatalf("extra_args = %v", cfg.ExtraArgs)
	}
	if cfg.Env["TINYMIST_LOG"] != "debug" {
		t.Fatalf("env = %v", cfg.Env)
	}
	d, err := cfg.RunTimeout()
	if err != nil {
		t.Fatalf("RunTimeout: %v", err)
	}
	if d != 90*time.Second {
		t.Fatalf("timeout = %v", d)
	}
}

func TestReadHostConfigMissingFileIsZero(t *testing.T) {
	t.Setenv("SPECRUN_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	cfg, _, err := ReadHostConfig()
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Nvim != "" || cfg.Timeout != "" || len(cfg.ExtraArgs) != 0 {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
	if cfg.Env == nil {
		t.Fatalf("env map should be initialized")
	}
}

func TestRunTimeout(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"", 0, false},
		{"0", 0, false},
		{"2m", 2 * time.Minute, false},
		{"soon", 0, true},
	}
	for _, tc := range cases {
		cfg := HostConfig{Timeout: tc.in}
		d, err := cfg.RunTimeout()
		if tc.wantErr {
			if err == nil {
				t.Fatalf("timeout %q: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("timeout %q: %v", tc.in, err)
		}
		if d != tc.want {
			t.Fatalf("timeout %q = %v, want %v", tc.in, d, tc.want)
		}
	}
}
