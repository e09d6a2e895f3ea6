package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rkaran-2547241/linkedinScrapper/config"
	"github.com/rkaran-2547241/linkedinScrapper/export"
	"github.com/rkaran-2547241/linkedinScrapper/models"
	"github.com/rkaran-2547241/linkedinScrapper/scraper"
)

var (
	email       string
	password    string
	manualLogin bool
	headless    bool
	outputFile  string
	timeout     time.Duration
	logLevel    string
	logFormat   string
)

func main() {
	root := &cobra.Command{
		Use:   "liscrape",
		Short: "Extract structured records from LinkedIn profile and post pages",
		Long: `liscrape drives a real browser to render LinkedIn pages and extracts
structured fields (name, headline, experience, education, skills, post
text, ...) through cascading selector fallbacks, so single selector
breakages degrade individual fields instead of failing the scrape.

Login is optional: without it scraping proceeds with the reduced access
the site grants anonymous visitors. --manual-login opens a browser
window and waits for you to sign in with any method, including Google
or Microsoft OAuth.`,
		Example: `  # Scrape a profile without logging in (limited access)
  liscrape profile https://www.linkedin.com/in/username/

  # Sign in manually (supports OAuth), then scrape several profiles
  liscrape profile --manual-login https://www.linkedin.com/in/a/ https://www.linkedin.com/in/b/

  # Credential login, save the record to a file
  liscrape post --email you@example.com --password secret -o post.json \
    https://www.linkedin.com/posts/some-post`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&email, "email", "", "account email for the credential login flow")
	root.PersistentFlags().StringVar(&password, "password", "", "account password for the credential login flow")
	root.PersistentFlags().BoolVar(&manualLogin, "manual-login", false, "open a browser window and wait for an out-of-band login")
	root.PersistentFlags().BoolVar(&headless, "headless", false, "run the browser headless (incompatible with --manual-login)")
	root.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write records to this file instead of stdout")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-target scrape deadline (default 2m)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newScrapeCmd("profile", models.TargetProfile,
			"Scrape profile pages (name, headline, experience, education, certifications, skills)"),
		newScrapeCmd("post", models.TargetPost,
			"Scrape post pages (author, text, timestamp, reactions, images)"),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newScrapeCmd(use string, kind models.TargetKind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [url]...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, kind, args)
		},
	}
}

func run(cmd *cobra.Command, kind models.TargetKind, urls []string) error {
	cfg := config.Load()
	applyFlags(cmd, cfg)
	initLogger(cfg.Log)

	if cfg.Auth.ManualLogin && cfg.Browser.Headless {
		return models.NewScrapeError(models.ErrCodeInvalidInput,
			"--manual-login needs a visible browser window; drop --headless", nil)
	}

	targets, err := buildTargets(urls, kind)
	if err != nil {
		return err
	}

	sc, err := scraper.NewScraper(cfg)
	if err != nil {
		return err
	}
	defer sc.Close()

	ctx := cmd.Context()

	if cfg.Auth.ManualLogin {
		fmt.Fprintln(os.Stderr, "A browser window is open on the login page.")
		fmt.Fprintln(os.Stderr, "Sign in with any method (email, Google, Microsoft, ...);")
		fmt.Fprintf(os.Stderr, "scraping starts automatically, up to %s from now.\n", cfg.Auth.LoginTimeout)
	}
	if cfg.Auth.ManualLogin || cfg.Auth.Email != "" || cfg.Auth.Password != "" {
		sc.Login(ctx)
		slog.Info("authentication finished", "state", sc.State())
	}

	results := sc.ScrapeAll(ctx, targets)

	var out any = results
	if len(results) == 1 {
		// Single target: emit the record itself, matching the shape a
		// library caller gets. A failed target emits null.
		switch kind {
		case models.TargetProfile:
			out = results[0].Profile
		case models.TargetPost:
			out = results[0].Post
		}
	}

	if outputFile != "" {
		if err := export.WriteJSON(outputFile, out); err != nil {
			return err
		}
		slog.Info("records written", "path", outputFile, "targets", len(results))
		return nil
	}
	return export.EncodeJSON(os.Stdout, out)
}

// buildTargets pairs each URL with the subcommand's kind. A URL whose
// well-known shape belongs to the other kind is rejected up front: running
// the profile resolver over a post page yields a silently empty record,
// which is worse than an error.
func buildTargets(urls []string, kind models.TargetKind) ([]models.Target, error) {
	targets := make([]models.Target, 0, len(urls))
	for _, u := range urls {
		if guessed := models.GuessKind(u); guessed != "" && guessed != kind {
			return nil, models.NewScrapeError(models.ErrCodeInvalidInput,
				fmt.Sprintf("%s looks like a %s URL; use the %s subcommand", u, guessed, guessed),
				nil)
		}
		targets = append(targets, models.Target{URL: u, Kind: kind})
	}
	return targets, nil
}

// applyFlags overlays explicitly set CLI flags on the env-derived config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("email") {
		cfg.Auth.Email = email
	}
	if f.Changed("password") {
		cfg.Auth.Password = password
	}
	if f.Changed("manual-login") {
		cfg.Auth.ManualLogin = manualLogin
	}
	if f.Changed("headless") {
		cfg.Browser.Headless = headless
	}
	if f.Changed("timeout") {
		cfg.Scraper.MaxTimeout = timeout
	}
	if f.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if f.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
}

// initLogger configures slog based on the LogConfig. Logs go to stderr so
// stdout stays clean for the JSON records.
func initLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}
