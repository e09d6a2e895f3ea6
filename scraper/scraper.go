package scraper

import (
	"log/slog"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/ysmood/gson"

	"github.com/rkaran-2547241/linkedinScrapper/config"
	"github.com/rkaran-2547241/linkedinScrapper/models"
	"github.com/rkaran-2547241/linkedinScrapper/resolver"
)

// Scraper owns one browser session: a single page reused sequentially
// across targets. Operations are strictly sequential; one goroutine drives
// the session at a time.
type Scraper struct {
	browser    *rod.Browser
	page       *rod.Page
	scraperCfg config.ScraperConfig
	authCfg    config.AuthConfig
	res        *resolver.Resolver

	state models.LoginState

	// stop tears down page, hijack router, browser and launcher.
	// Guarded by closeOnce so cleanup runs exactly once on every exit
	// path, including extraction failures partway through a record.
	stop      func()
	closeOnce sync.Once
}

// NewScraper launches a browser with anti-automation-detection flags and a
// custom user agent, connects to it, and prepares the single working page.
// Launch or connect failure is fatal — no retries, the error surfaces
// immediately.
func NewScraper(cfg *config.Config) (*Scraper, error) {
	l := launcher.New().
		Headless(cfg.Browser.Headless).
		NoSandbox(cfg.Browser.NoSandbox)

	if cfg.Browser.BrowserBin != "" {
		l = l.Bin(cfg.Browser.BrowserBin)
	}

	// ── Stealth flags ────────────────────────────────────────────────
	l.Set(flags.Flag("disable-blink-features"), "AutomationControlled")
	l.Delete(flags.Flag("enable-automation"))
	l.Set(flags.Flag("disable-dev-shm-usage"))
	l.Set(flags.Flag("disable-popup-blocking"))
	l.Set(flags.Flag("disable-default-apps"))
	l.Set(flags.Flag("no-first-run"))
	l.Set(flags.Flag("user-agent"), cfg.Browser.UserAgent)

	controlURL, err := l.Launch()
	if err != nil {
		return nil, models.NewScrapeError(
			models.ErrCodeBrowserLaunch,
			"failed to launch browser",
			err,
		)
	}
	slog.Info("browser launched", "controlURL", controlURL, "headless", cfg.Browser.Headless)

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, models.NewScrapeError(
			models.ErrCodeBrowserLaunch,
			"failed to connect to browser",
			err,
		)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		l.Kill()
		return nil, models.NewScrapeError(
			models.ErrCodeBrowserLaunch,
			"failed to open page",
			err,
		)
	}

	// Stealth JS must be installed before the first navigation.
	if _, evalErr := page.EvalOnNewDocument(stealth.JS); evalErr != nil {
		slog.Warn("stealth injection failed, proceeding without stealth", "error", evalErr)
	}

	// English headers keep the section headings the resolver probes for.
	_ = proto.NetworkSetExtraHTTPHeaders{
		Headers: toHeadersMap(map[string]string{
			"Accept-Language": cfg.Browser.AcceptLanguage,
		}),
	}.Call(page)

	if !cfg.Browser.Headless {
		_ = page.SetWindow(&proto.BrowserBounds{
			WindowState: proto.BrowserWindowStateMaximized,
		})
	}

	router := setupHijack(page, cfg.Browser.BlockedResourceTypes)

	return &Scraper{
		browser:    browser,
		page:       page,
		scraperCfg: cfg.Scraper,
		authCfg:    cfg.Auth,
		res:        resolver.New(cfg.Resolver),
		stop: func() {
			if router != nil {
				_ = router.Stop()
			}
			_ = page.Close()
			_ = browser.Close()
			l.Kill()
		},
	}, nil
}

// Close releases the page and kills the browser process. Idempotent, and
// expected to run via defer on every exit path.
func (s *Scraper) Close() {
	s.closeOnce.Do(func() {
		if s.stop == nil {
			return
		}
		slog.Info("closing browser session")
		s.stop()
	})
}

// State reports where the session is in its login lifecycle.
func (s *Scraper) State() models.LoginState {
	return s.state
}

// currentURL reads the page's current location, empty on failure.
func (s *Scraper) currentURL() string {
	info, err := s.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

// toHeadersMap converts a plain string map to the proto.NetworkHeaders type
// (map[string]gson.JSON) required by NetworkSetExtraHTTPHeaders.
func toHeadersMap(headers map[string]string) proto.NetworkHeaders {
	m := make(proto.NetworkHeaders, len(headers))
	for k, v := range headers {
		m[k] = gson.New(v)
	}
	return m
}
