package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Browser.Headless {
		t.Error("headless should default to off; manual login needs a window")
	}
	if !cfg.Browser.NoSandbox {
		t.Error("no-sandbox should default to on")
	}
	if cfg.Auth.PollInterval != 2*time.Second {
		t.Errorf("PollInterval = %v, want 2s", cfg.Auth.PollInterval)
	}
	if cfg.Auth.LoginTimeout != 120*time.Second {
		t.Errorf("LoginTimeout = %v, want 120s", cfg.Auth.LoginTimeout)
	}
	if cfg.Scraper.MaxTimeout != 120*time.Second {
		t.Errorf("MaxTimeout = %v, want 120s", cfg.Scraper.MaxTimeout)
	}
	if cfg.Resolver.MaxExperience != 15 || cfg.Resolver.MaxEducation != 10 ||
		cfg.Resolver.MaxCertifications != 10 || cfg.Resolver.MaxSkills != 20 {
		t.Errorf("unexpected section caps: %+v", cfg.Resolver)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("unexpected log defaults: %+v", cfg.Log)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LISCRAPE_HEADLESS", "true")
	t.Setenv("LISCRAPE_LOGIN_TIMEOUT", "30s")
	t.Setenv("LISCRAPE_MAX_EXPERIENCE", "5")
	t.Setenv("LISCRAPE_BLOCKED_RESOURCES", "Font, Media ,Image")
	t.Setenv("LISCRAPE_EMAIL", "user@example.com")

	cfg := Load()

	if !cfg.Browser.Headless {
		t.Error("LISCRAPE_HEADLESS=true not applied")
	}
	if cfg.Auth.LoginTimeout != 30*time.Second {
		t.Errorf("LoginTimeout = %v, want 30s", cfg.Auth.LoginTimeout)
	}
	if cfg.Resolver.MaxExperience != 5 {
		t.Errorf("MaxExperience = %d, want 5", cfg.Resolver.MaxExperience)
	}
	want := []string{"Font", "Media", "Image"}
	if len(cfg.Browser.BlockedResourceTypes) != len(want) {
		t.Fatalf("BlockedResourceTypes = %v, want %v", cfg.Browser.BlockedResourceTypes, want)
	}
	for i, v := range want {
		if cfg.Browser.BlockedResourceTypes[i] != v {
			t.Errorf("BlockedResourceTypes[%d] = %q, want %q", i, cfg.Browser.BlockedResourceTypes[i], v)
		}
	}
	if cfg.Auth.Email != "user@example.com" {
		t.Errorf("Email = %q, want the env value", cfg.Auth.Email)
	}
}

func TestLoad_MalformedEnvFallsBack(t *testing.T) {
	t.Setenv("LISCRAPE_MAX_SKILLS", "many")
	t.Setenv("LISCRAPE_NAVIGATE_SETTLE", "soon")
	t.Setenv("LISCRAPE_MANUAL_LOGIN", "yep")

	cfg := Load()

	if cfg.Resolver.MaxSkills != 20 {
		t.Errorf("MaxSkills = %d, want default 20 on a malformed value", cfg.Resolver.MaxSkills)
	}
	if cfg.Scraper.NavigateSettle != 5*time.Second {
		t.Errorf("NavigateSettle = %v, want default 5s on a malformed value", cfg.Scraper.NavigateSettle)
	}
	if cfg.Auth.ManualLogin {
		t.Error("ManualLogin should fall back to false on a malformed value")
	}
}
