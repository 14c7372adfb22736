package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/skyboard/app/particle"
)

// countParticles returns the number of particle elements in a rendered page.
func countParticles(body string) int {
	return strings.Count(body, `<div class="particle `)
}

func TestHandler_HandleIndex(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	rec := httptest.NewRecorder()
	h.handleIndex(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Inventário</title>")
	assert.Contains(t, body, `src="https://example.com/report?r=abc"`)
	assert.Contains(t, body, `href="/favicon.svg"`)
	assert.Contains(t, body, `data-mode="night"`, "page starts at night")
	assert.Contains(t, body, `class="moon animate-moon-glow"`)
	assert.Contains(t, body, `class="constellations"`)
	assert.Contains(t, body, `class="shooting-stars"`)
	assert.Contains(t, body, `class="waves"`)
	assert.NotContains(t, body, `class="sun"`)
	assert.Contains(t, body, "Alice")
	assert.Contains(t, body, "Bob")
	assert.Equal(t, 50, countParticles(body))
	assert.Equal(t, 1, strings.Count(body, `id="particles"`))
	assert.Equal(t, 1, strings.Count(body, "<iframe"))
	assert.Contains(t, body, `<input type="hidden" name="mode" value="night">`)
	assert.Contains(t, body, `<input type="hidden" name="preset" value="rich">`)
	assert.Contains(t, rec.Header().Get("Accept-CH"), "Sec-CH-Viewport-Width")

	// particle container sits outside the swapped scene fragment
	sceneStart := strings.Index(body, `<div id="scene"`)
	particlesStart := strings.Index(body, `<div id="particles"`)
	require.Positive(t, sceneStart)
	require.Positive(t, particlesStart)
	assert.NotContains(t, body[sceneStart:particlesStart], `class="particle `)
}

func TestHandler_HandleIndex_EscapesPresetName(t *testing.T) {
	p := particle.Rich
	p.Name = `x"><script>alert(1)</script>`
	h, err := New(stubPresets{p.Name: p}, Config{DefaultPreset: p.Name, Title: "t"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	rec := httptest.NewRecorder()
	h.handleIndex(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "<script>alert(1)")
	assert.Contains(t, body, `name="preset" value="x&#34;&gt;&lt;script&gt;`)
}

func TestHandler_HandleIndex_ParticleCount(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name   string
		query  string
		header map[string]string
		want   int
	}{
		{name: "rich narrow", query: "w=500", want: 25},
		{name: "rich wide", query: "w=1200", want: 50},
		{name: "simple narrow", query: "w=500&preset=simple", want: 20},
		{name: "simple wide", query: "w=1200&preset=simple", want: 40},
		{name: "client hint narrow", header: map[string]string{"Sec-CH-Viewport-Width": "500"}, want: 25},
		{name: "legacy hint narrow", header: map[string]string{"Viewport-Width": "375"}, want: 25},
		{name: "query wins over hint", query: "w=1300", header: map[string]string{"Sec-CH-Viewport-Width": "500"}, want: 50},
		{name: "invalid width falls back to default", query: "w=abc", want: 50},
		{name: "unknown preset falls back to default", query: "w=500&preset=aurora", want: 25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tc.query, http.NoBody)
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			h.handleIndex(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.want, countParticles(rec.Body.String()))
		})
	}
}

func TestHandler_HandleIndex_SimplePreset(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/?preset=simple", http.NoBody)
	rec := httptest.NewRecorder()
	h.handleIndex(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, `class="moon"`, "no moon glow")
	assert.NotContains(t, body, `class="constellations"`)
	assert.NotContains(t, body, `class="shooting-stars"`)
	assert.Contains(t, body, `class="waves"`)
	assert.Contains(t, body, `data-animation="none"`)
}

func TestHandler_HandleIndex_Seed(t *testing.T) {
	h := newTestHandler(t)

	render := func(query string) string {
		req := httptest.NewRequest(http.MethodGet, "/?"+query, http.NoBody)
		rec := httptest.NewRecorder()
		h.handleIndex(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		return rec.Body.String()
	}

	assert.Equal(t, render("seed=42"), render("seed=42"), "same seed renders the same field")
	assert.NotEqual(t, render("seed=42"), render("seed=43"))

	cfg := testConfig()
	cfg.Seed = 7
	fixed := newTestHandlerWithConfig(t, cfg)
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	rec1 := httptest.NewRecorder()
	fixed.handleIndex(rec1, req)
	rec2 := httptest.NewRecorder()
	fixed.handleIndex(rec2, req)
	assert.Equal(t, rec1.Body.String(), rec2.Body.String(), "configured seed is used for every render")
}

func TestHandler_HandleThemeToggle(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name     string
		current  string
		expected string
		contains []string
		missing  []string
	}{
		{
			name: "night to day", current: "night", expected: "day",
			contains: []string{`class="sun"`, "cloud cloud-1", "icon-moon", "footer-day"},
			missing:  []string{`class="moon`, `class="waves"`, `class="constellations"`},
		},
		{
			name: "day to night", current: "day", expected: "night",
			contains: []string{`class="moon animate-moon-glow"`, `class="waves"`, `class="constellations"`, "icon-sun"},
			missing:  []string{`class="sun"`, "cloud cloud-1"},
		},
		{
			name: "missing mode treated as night", current: "", expected: "day",
			contains: []string{`class="sun"`},
		},
		{
			name: "invalid mode treated as night", current: "noon", expected: "day",
			contains: []string{`class="sun"`},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := url.Values{"mode": {tc.current}}
			req := httptest.NewRequest(http.MethodPost, "/web/theme", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()
			h.handleThemeToggle(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "themeChanged", rec.Header().Get("HX-Trigger"))
			body := rec.Body.String()
			assert.Contains(t, body, `data-mode="`+tc.expected+`"`)
			assert.Contains(t, body, `id="scene"`)
			assert.NotContains(t, body, `id="particles"`, "toggle must not regenerate particles")
			assert.NotContains(t, body, "<iframe", "toggle must not reload the report")
			for _, s := range tc.contains {
				assert.Contains(t, body, s)
			}
			for _, s := range tc.missing {
				assert.NotContains(t, body, s)
			}
		})
	}
}

func TestHandler_HandleThemeToggle_Twice(t *testing.T) {
	h := newTestHandler(t)

	toggle := func(mode string) string {
		form := url.Values{"mode": {mode}, "preset": {"rich"}}
		req := httptest.NewRequest(http.MethodPost, "/web/theme", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.handleThemeToggle(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		return rec.Body.String()
	}

	day := toggle("night")
	require.Contains(t, day, `data-mode="day"`)
	assert.Contains(t, day, `name="mode" value="day"`, "fragment carries the new mode for the next toggle")
	night := toggle("day")
	assert.Contains(t, night, `data-mode="night"`)
	assert.Contains(t, night, `name="mode" value="night"`)
	for _, fragment := range []string{day, night} {
		assert.NotContains(t, fragment, `id="particles"`, "toggle never regenerates particles")
		assert.Zero(t, countParticles(fragment))
	}
}

func TestHandler_HandleThemeToggle_SimplePreset(t *testing.T) {
	h := newTestHandler(t)

	form := url.Values{"mode": {"day"}, "preset": {"simple"}}
	req := httptest.NewRequest(http.MethodPost, "/web/theme", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.handleThemeToggle(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, `data-mode="night"`)
	assert.Contains(t, body, `class="moon"`)
	assert.NotContains(t, body, `class="constellations"`)
	assert.Contains(t, body, `<input type="hidden" name="preset" value="simple">`, "toggle form carries the preset")
	assert.NotContains(t, body, `id="particles"`)
}
