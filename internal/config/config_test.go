package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
  env: development
llm:
  backend: simulated
  timeout_seconds: 30
test_cases:
  file_path: /tmp/cases.json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Env != "development" {
		t.Errorf("env = %q, want development", cfg.Server.Env)
	}
	if cfg.LLM.TimeoutSeconds != 30 {
		t.Errorf("timeout = %d, want 30", cfg.LLM.TimeoutSeconds)
	}
	if cfg.TestCases.FilePath != "/tmp/cases.json" {
		t.Errorf("test case path = %q", cfg.TestCases.FilePath)
	}
	// 파일에 없는 값은 기본값 유지
	if cfg.Redis.Port != 6379 {
		t.Errorf("redis port = %d, want default 6379", cfg.Redis.Port)
	}
	if cfg.LLM.OpenAI.BaseURL == "" {
		t.Error("openai base url default missing")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "server: [not a map")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 8082
llm:
  backend: simulated
`)

	t.Setenv("PORT", "7070")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("LLM_TYPE", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("DB_PASSWORD", "db-pass")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want 7070 (env override)", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("jwt secret = %q", cfg.JWT.Secret)
	}
	if cfg.LLM.Backend != "openai" {
		t.Errorf("backend = %q, want openai", cfg.LLM.Backend)
	}
	if cfg.LLM.OpenAI.APIKey != "sk-test" {
		t.Errorf("openai key = %q", cfg.LLM.OpenAI.APIKey)
	}
	if cfg.Database.Password != "db-pass" {
		t.Errorf("db password = %q", cfg.Database.Password)
	}
}

func TestIsDevelopment(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"local", true},
		{"dev", true},
		{"development", true},
		{"production", false},
	}
	for _, tt := range tests {
		cfg := &Config{Server: ServerConfig{Env: tt.env}}
		if got := cfg.IsDevelopment(); got != tt.want {
			t.Errorf("IsDevelopment(%q) = %v, want %v", tt.env, got, tt.want)
		}
	}
}

func TestGetDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 3306, User: "moti", Password: "pw", Name: "motidb"}
	want := "moti:pw@tcp(db:3306)/motidb?charset=utf8mb4&parseTime=True&loc=Local"
	if got := d.GetDSN(); got != want {
		t.Errorf("GetDSN() = %q, want %q", got, want)
	}
}
