package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected server addr %q", cfg.Server.Addr)
	}
	if cfg.OpenAI.BaseURL != "https://api.openai.com/v1" {
		t.Fatalf("unexpected base URL %q", cfg.OpenAI.BaseURL)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" || cfg.OpenAI.VerifyModel != "gpt-3.5-turbo" {
		t.Fatalf("unexpected models: %+v", cfg.OpenAI)
	}
	if cfg.OpenAI.TimeoutSeconds != 60 {
		t.Fatalf("unexpected timeout %d", cfg.OpenAI.TimeoutSeconds)
	}
	if cfg.Log.Dir != "logs" || cfg.Log.Level != "info" {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("SERVER_ADDR", ":9999")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("env override not applied, got %q", cfg.OpenAI.Model)
	}
	if cfg.Server.Addr != ":9999" {
		t.Fatalf("env override not applied, got %q", cfg.Server.Addr)
	}
	if cfg.Auth.JWTSecret != "s3cret" {
		t.Fatalf("env override not applied, got %q", cfg.Auth.JWTSecret)
	}
}
