package web

import (
	"net/http"
	"strconv"
	"strings"
)

// clientHintHeaders are the viewport width hints, in lookup order.
var clientHintHeaders = []string{"Sec-CH-Viewport-Width", "Viewport-Width"}

// viewportWidth resolves the width signal for a request.
// Order: "w" query param, client hint headers, configured default. Invalid values are skipped.
func (h *Handler) viewportWidth(r *http.Request) int {
	if w, ok := parseWidth(r.URL.Query().Get("w")); ok {
		return w
	}
	for _, hdr := range clientHintHeaders {
		if w, ok := parseWidth(r.Header.Get(hdr)); ok {
			return w
		}
	}
	return h.cfg.DefaultWidth
}

// parseWidth parses a positive pixel width. Client hints may carry a fractional value.
func parseWidth(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if w, err := strconv.Atoi(s); err == nil {
		return w, w > 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 || f > 1<<20 {
		return 0, false
	}
	return int(f), int(f) > 0
}

// requestClientHints asks the browser to send viewport width hints on next requests.
func requestClientHints(w http.ResponseWriter) {
	w.Header().Set("Accept-CH", strings.Join(clientHintHeaders, ", "))
	w.Header().Add("Vary", strings.Join(clientHintHeaders, ", "))
}
