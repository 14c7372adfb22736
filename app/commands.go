package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/skyboard/app/particle"
	"github.com/umputun/skyboard/app/server"
	"github.com/umputun/skyboard/app/server/web"
)

// PresetOptions contains options shared between all commands
type PresetOptions struct {
	PresetsFile string `long:"presets" env:"SKYBOARD_PRESETS" description:"yaml file with extra or overriding particle presets"`
	Preset      string `long:"preset" env:"SKYBOARD_PRESET" default:"rich" description:"default particle preset"`
	Debug       bool   `long:"dbg" env:"DEBUG" description:"debug mode"`
}

// ServerCmd implements the server subcommand
type ServerCmd struct {
	PresetOptions

	Server struct {
		Address         string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout     time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"5s" description:"graceful shutdown timeout"`
		BaseURL         string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /board)"`
	} `group:"server" namespace:"server" env-namespace:"SKYBOARD_SERVER"`

	Page struct {
		Title        string   `long:"title" env:"TITLE" default:"Inventário" description:"page title"`
		ReportURL    string   `long:"report-url" env:"REPORT_URL" default:"https://app.powerbi.com/view?r=eyJrIjoiNjdhYzRkY2EtY2E3OS00YjNjLTljZGEtNDgwNjZmOWRkNDIyIiwidCI6IjgwYTM2ZDViLWI3YmItNDNkMS05ODgxLTI2YTcxMmE5MTU2ZCJ9" description:"embedded report URL"`
		ImageURL     string   `long:"image-url" env:"IMAGE_URL" default:"https://abrale.org.br/wp-content/uploads/2024/10/hospital-mario-covas.jpg" description:"brand image URL, also used for favicon"`
		Copyright    string   `long:"copyright" env:"COPYRIGHT" default:"2025" description:"footer copyright year"`
		Credits      []string `long:"credit" env:"CREDITS" env-delim:"," default:"Gabriel Barreto=https://github.com/Barreto0620" default:"Nicolas Cruz=https://github.com/Nicodcruz" description:"footer credit as name=url"`
		DefaultWidth int      `long:"default-width" env:"DEFAULT_WIDTH" default:"1200" description:"viewport width when the browser sends none"`
		Seed         uint64   `long:"seed" env:"SEED" description:"fixed particle seed, 0 for random per render"`
	} `group:"page" namespace:"page" env-namespace:"SKYBOARD_PAGE"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the server command
func (s *ServerCmd) Execute(_ []string) error {
	setupLogs(s.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		signals(s.cancel)
	}

	return s.run(s.ctx)
}

func (s *ServerCmd) run(ctx context.Context) error {
	baseURL, err := validateBaseURL(s.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	credits, err := parseCredits(s.Page.Credits)
	if err != nil {
		return fmt.Errorf("invalid credits: %w", err)
	}

	presets, err := loadPresets(s.PresetsFile)
	if err != nil {
		return err
	}

	log.Printf("[INFO] starting skyboard server on %s, preset %s", s.Server.Address, s.Preset)
	if baseURL != "" {
		log.Printf("[INFO] base URL: %s", baseURL)
	}
	if s.Page.Seed != 0 {
		log.Printf("[INFO] fixed particle seed %d", s.Page.Seed)
	}

	srv, err := server.New(presets, server.Config{
		Address:         s.Server.Address,
		ReadTimeout:     s.Server.ReadTimeout,
		ShutdownTimeout: s.Server.ShutdownTimeout,
		Version:         revision,
		BaseURL:         baseURL,
		Web: web.Config{
			Title:         s.Page.Title,
			ReportURL:     s.Page.ReportURL,
			BrandImageURL: s.Page.ImageURL,
			Copyright:     s.Page.Copyright,
			Credits:       credits,
			DefaultPreset: s.Preset,
			DefaultWidth:  s.Page.DefaultWidth,
			Seed:          s.Page.Seed,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// ParticlesCmd implements the particles subcommand
type ParticlesCmd struct {
	PresetOptions

	Width int    `long:"width" short:"w" default:"1200" description:"viewport width in pixels"`
	Seed  uint64 `long:"seed" description:"random seed, 0 for random"`

	out io.Writer
}

// Execute prints one generated field
func (p *ParticlesCmd) Execute(_ []string) error {
	setupLogs(p.Debug)

	presets, err := loadPresets(p.PresetsFile)
	if err != nil {
		return err
	}
	preset, ok := presets.Get(p.Preset)
	if !ok {
		return fmt.Errorf("unknown preset %q, available: %s", p.Preset, strings.Join(presets.Names(), ", "))
	}
	if p.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", p.Width)
	}

	seed := p.Seed
	if seed == 0 {
		seed = rand.Uint64() //nolint:gosec // visual noise
	}
	field := particle.NewSeeded(seed).Generate(p.Width, preset)
	log.Printf("[DEBUG] generated %d particles, preset %s, width %d", len(field), preset.Name, p.Width)

	out := p.out
	if out == nil {
		out = os.Stdout
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(field); err != nil {
		return fmt.Errorf("failed to encode particles: %w", err)
	}
	return nil
}

// loadPresets returns built-in presets, extended from file if set.
func loadPresets(path string) (*particle.Presets, error) {
	presets := particle.NewPresets()
	if path == "" {
		return presets, nil
	}
	if err := presets.LoadFile(path); err != nil {
		return nil, fmt.Errorf("failed to load presets: %w", err)
	}
	log.Printf("[INFO] loaded presets from %s, available: %s", path, strings.Join(presets.Names(), ", "))
	return presets, nil
}

// validateBaseURL normalizes base URL: must start with "/", trailing slash removed.
func validateBaseURL(baseURL string) (string, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" || baseURL == "/" {
		return "", nil
	}
	if !strings.HasPrefix(baseURL, "/") {
		return "", fmt.Errorf("base URL must start with /, got %q", baseURL)
	}
	if strings.ContainsAny(baseURL, "?#") {
		return "", fmt.Errorf("base URL must be a plain path, got %q", baseURL)
	}
	return strings.TrimRight(baseURL, "/"), nil
}

// parseCredits converts "name=url" pairs to footer credits.
func parseCredits(items []string) ([]web.Credit, error) {
	res := make([]web.Credit, 0, len(items))
	for _, item := range items {
		name, url, ok := strings.Cut(item, "=")
		name, url = strings.TrimSpace(name), strings.TrimSpace(url)
		if !ok || name == "" || url == "" {
			return nil, fmt.Errorf("credit %q, expected name=url", item)
		}
		res = append(res, web.Credit{Name: name, URL: url})
	}
	return res, nil
}
