package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Browser  BrowserConfig
	Auth     AuthConfig
	Scraper  ScraperConfig
	Resolver ResolverConfig
	Log      LogConfig
}

// BrowserConfig controls the Rod browser instance.
type BrowserConfig struct {
	// Headless controls whether the browser runs headless. Defaults to
	// false: manual login needs a visible window, and LinkedIn is far
	// more aggressive about blocking headless sessions.
	Headless bool // default: false

	// NoSandbox disables Chrome's sandbox (needed in Docker).
	NoSandbox bool // default: true

	// BrowserBin overrides the Chromium binary path.
	BrowserBin string

	// UserAgent is sent instead of the headless-Chrome default.
	UserAgent string

	// AcceptLanguage is sent on every request. The section-heading probes
	// ("Experience", "Education", ...) assume an English page.
	AcceptLanguage string // default: "en-US,en;q=0.9"

	// BlockedResourceTypes lists resource types the hijack router drops
	// to speed up page loads. Images stay enabled because post records
	// carry image URLs.
	// default: ["Font", "Media"]
	BlockedResourceTypes []string
}

// AuthConfig controls the login flows.
type AuthConfig struct {
	// Email and Password drive the scripted credential flow. Both empty
	// means scraping proceeds unauthenticated ("reduced access").
	Email    string
	Password string

	// ManualLogin opens the login page and polls until a human finishes
	// signing in out of band (works with Google/Microsoft OAuth too).
	ManualLogin bool // default: false

	// LoginURL is the page both flows start from.
	LoginURL string // default: "https://www.linkedin.com/login"

	// PollInterval is how often the manual flow re-checks the URL.
	PollInterval time.Duration // default: 2s

	// LoginTimeout bounds the manual flow's polling loop.
	LoginTimeout time.Duration // default: 120s
}

// ScraperConfig controls navigation pacing. The settle waits exist because
// profile sections lazy-load as the page scrolls; shrink them in tests.
type ScraperConfig struct {
	// NavigateSettle is the wait after loading a target page.
	NavigateSettle time.Duration // default: 5s

	// ScrollSettle is the wait after the half-page scroll.
	ScrollSettle time.Duration // default: 2s

	// FinalScrollSettle is the wait after the full-page scroll.
	FinalScrollSettle time.Duration // default: 3s

	// FormSettle is the wait after loading the login form.
	FormSettle time.Duration // default: 2s

	// SubmitSettle is the wait after submitting credentials, before the
	// resulting URL is classified.
	SubmitSettle time.Duration // default: 5s

	// ActionSettle is the wait after clicking a "show more" expander or
	// navigating back from a detail page.
	ActionSettle time.Duration // default: 1s

	// DetailSettle is the wait after opening the skills detail page.
	DetailSettle time.Duration // default: 3s

	// TargetInterval paces batch scraping: at most one target per interval.
	TargetInterval time.Duration // default: 5s

	// MaxTimeout is the hard deadline for scraping a single target.
	MaxTimeout time.Duration // default: 120s
}

// ResolverConfig bounds the structured-section extraction work.
type ResolverConfig struct {
	MaxExperience     int // default: 15
	MaxEducation      int // default: 10
	MaxCertifications int // default: 10

	// MaxSkills caps skills read from the /details/skills page.
	MaxSkills int // default: 20

	// MaxInlineSkills caps skills read from the main profile page when the
	// detail page could not be opened.
	MaxInlineSkills int // default: 10
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "text"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Browser: BrowserConfig{
			Headless:       envBoolOr("LISCRAPE_HEADLESS", false),
			NoSandbox:      envBoolOr("LISCRAPE_NO_SANDBOX", true),
			BrowserBin:     os.Getenv("LISCRAPE_BROWSER_BIN"),
			UserAgent:      envOr("LISCRAPE_USER_AGENT", defaultUserAgent),
			AcceptLanguage: envOr("LISCRAPE_ACCEPT_LANGUAGE", "en-US,en;q=0.9"),
			BlockedResourceTypes: envSliceOr("LISCRAPE_BLOCKED_RESOURCES", []string{
				"Font", "Media",
			}),
		},
		Auth: AuthConfig{
			Email:        os.Getenv("LISCRAPE_EMAIL"),
			Password:     os.Getenv("LISCRAPE_PASSWORD"),
			ManualLogin:  envBoolOr("LISCRAPE_MANUAL_LOGIN", false),
			LoginURL:     envOr("LISCRAPE_LOGIN_URL", "https://www.linkedin.com/login"),
			PollInterval: envDurationOr("LISCRAPE_LOGIN_POLL_INTERVAL", 2*time.Second),
			LoginTimeout: envDurationOr("LISCRAPE_LOGIN_TIMEOUT", 120*time.Second),
		},
		Scraper: ScraperConfig{
			NavigateSettle:    envDurationOr("LISCRAPE_NAVIGATE_SETTLE", 5*time.Second),
			ScrollSettle:      envDurationOr("LISCRAPE_SCROLL_SETTLE", 2*time.Second),
			FinalScrollSettle: envDurationOr("LISCRAPE_FINAL_SCROLL_SETTLE", 3*time.Second),
			FormSettle:        envDurationOr("LISCRAPE_FORM_SETTLE", 2*time.Second),
			SubmitSettle:      envDurationOr("LISCRAPE_SUBMIT_SETTLE", 5*time.Second),
			ActionSettle:      envDurationOr("LISCRAPE_ACTION_SETTLE", time.Second),
			DetailSettle:      envDurationOr("LISCRAPE_DETAIL_SETTLE", 3*time.Second),
			TargetInterval:    envDurationOr("LISCRAPE_TARGET_INTERVAL", 5*time.Second),
			MaxTimeout:        envDurationOr("LISCRAPE_MAX_TIMEOUT", 120*time.Second),
		},
		Resolver: ResolverConfig{
			MaxExperience:     envIntOr("LISCRAPE_MAX_EXPERIENCE", 15),
			MaxEducation:      envIntOr("LISCRAPE_MAX_EDUCATION", 10),
			MaxCertifications: envIntOr("LISCRAPE_MAX_CERTIFICATIONS", 10),
			MaxSkills:         envIntOr("LISCRAPE_MAX_SKILLS", 20),
			MaxInlineSkills:   envIntOr("LISCRAPE_MAX_INLINE_SKILLS", 10),
		},
		Log: LogConfig{
			Level:  envOr("LISCRAPE_LOG_LEVEL", "info"),
			Format: envOr("LISCRAPE_LOG_FORMAT", "text"),
		},
	}
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
