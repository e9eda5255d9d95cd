package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.NormalizeEnabled() {
		t.Error("normalize should default to false")
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if !reflect.DeepEqual(cfg.Server.AllowedOrigins, []string{"*"}) {
		t.Errorf("origins = %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jregister.yaml")
	data := `normalize: true
trace_dir: traces
server:
  allowed_origins:
    - https://example.com
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.NormalizeEnabled() {
		t.Error("normalize: true was ignored")
	}
	if cfg.TraceDir != "traces" {
		t.Errorf("trace_dir = %q", cfg.TraceDir)
	}
	if cfg.CachePath != "" {
		t.Errorf("cache_path = %q, want empty", cfg.CachePath)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr should keep its default, got %q", cfg.Server.Addr)
	}
	if !reflect.DeepEqual(cfg.Server.AllowedOrigins, []string{"https://example.com"}) {
		t.Errorf("origins = %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("server: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.CachePath = "memo.db"
	on := true
	cfg.Normalize = &on
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.CachePath != "memo.db" || !got.NormalizeEnabled() {
		t.Errorf("round trip = %+v", got)
	}
}

func TestOverrideFromEnv(t *testing.T) {
	t.Setenv("JREGISTER_CACHE_PATH", "env.db")
	t.Setenv("JREGISTER_SERVER_ADDR", ":9090")
	t.Setenv("JREGISTER_NORMALIZE", "true")

	cfg := Default()
	cfg.Override(NewViper())
	if cfg.CachePath != "env.db" {
		t.Errorf("cache_path = %q", cfg.CachePath)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if !cfg.NormalizeEnabled() {
		t.Error("JREGISTER_NORMALIZE=true was ignored")
	}
}

func TestOverrideKeepsUnset(t *testing.T) {
	cfg := Default()
	cfg.TraceDir = "from-file"
	cfg.Override(NewViper())
	if cfg.TraceDir != "from-file" || cfg.NormalizeEnabled() {
		t.Errorf("unset keys changed the config: %+v", cfg)
	}
}
