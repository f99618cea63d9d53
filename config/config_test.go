package config

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"FINPREDICTOR_ADDR", "FINPREDICTOR_API_URL", "FINPREDICTOR_USER", "FINPREDICTOR_REDIS_URL",
		"FINPREDICTOR_CACHE_TTL", "GEMINI_API_KEY", "FINPREDICTOR_GEMINI_MODEL", "FINPREDICTOR_CORS_ORIGINS"} {
		t.Setenv(k, "")
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Config{
		Addr:        ":8000",
		APIURL:      "http://localhost:8000",
		CacheTTL:    time.Hour,
		GeminiModel: "gemini-2.5-flash",
		CORSOrigins: []string{"*"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("FINPREDICTOR_ADDR", ":9000")
	t.Setenv("FINPREDICTOR_CACHE_TTL", "90s")
	t.Setenv("FINPREDICTOR_CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	t.Setenv("FINPREDICTOR_REDIS_URL", "redis://localhost:6379/0")

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Addr != ":9000" || got.CacheTTL != 90*time.Second || got.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("Load() = %+v", got)
	}
	if diff := cmp.Diff([]string{"http://localhost:3000", "http://localhost:5173"}, got.CORSOrigins); diff != "" {
		t.Errorf("CORSOrigins mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("FINPREDICTOR_CACHE_TTL", "forever")
	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("Load() error = %v, want a parse env error", err)
	}
}
