package web

import (
	"html"
	"net/http"

	log "github.com/go-pkgz/lgr"
)

// faviconSVG returns a 32x32 svg with the image clipped to a circle.
func faviconSVG(imageURL string) string {
	return `<svg width="32" height="32" viewBox="0 0 32 32" xmlns="http://www.w3.org/2000/svg">` +
		`<defs><clipPath id="favCircle"><circle cx="16" cy="16" r="16" /></clipPath></defs>` +
		`<image href="` + html.EscapeString(imageURL) + `" x="0" y="0" width="32" height="32" clip-path="url(#favCircle)" />` +
		`</svg>`
}

// handleFavicon serves the round brand icon. A blocked image is left to the browser.
func (h *Handler) handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := w.Write([]byte(faviconSVG(h.cfg.BrandImageURL))); err != nil {
		log.Printf("[WARN] failed to write favicon: %v", err)
	}
}
