package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("SESSION_STORE", "")
	t.Setenv("PORT", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("SAVE_DEBOUNCE", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("default port = %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("default env = %q", cfg.Env)
	}
	if cfg.SessionStore != "memory" {
		t.Fatalf("default session store = %q", cfg.SessionStore)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("default session ttl = %s", cfg.SessionTTL)
	}
	if cfg.SaveDebounce != 500*time.Millisecond {
		t.Fatalf("default save debounce = %s", cfg.SaveDebounce)
	}
	if len(cfg.CORSAllowOrigin) != 1 || cfg.CORSAllowOrigin[0] != "http://localhost:5173" {
		t.Fatalf("default cors origins = %v", cfg.CORSAllowOrigin)
	}
}

func TestLoadNormalizesValues(t *testing.T) {
	t.Setenv("ENV", "PROD")
	t.Setenv("SESSION_STORE", "PG")
	t.Setenv("DATABASE_URL", "postgres://localhost/resume")
	t.Setenv("OBJECT_STORE", "S3")
	t.Setenv("CORS_ALLOW_ORIGINS", " http://a.example , ,http://b.example ")
	t.Setenv("SAVE_DEBOUNCE", "250")

	cfg := Load()
	if cfg.Env != "production" {
		t.Fatalf("env = %q", cfg.Env)
	}
	if cfg.SessionStore != "postgres" {
		t.Fatalf("session store = %q", cfg.SessionStore)
	}
	if cfg.ObjectStoreType != "s3" {
		t.Fatalf("object store = %q", cfg.ObjectStoreType)
	}
	if len(cfg.CORSAllowOrigin) != 2 {
		t.Fatalf("cors origins = %v", cfg.CORSAllowOrigin)
	}
	if cfg.SaveDebounce != 250*time.Millisecond {
		t.Fatalf("bare-number debounce = %s", cfg.SaveDebounce)
	}
}
