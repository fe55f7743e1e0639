// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// SecurityHeaders hardens every API response: content sniffing and framing
// are disabled, medication records are kept out of shared caches, and HSTS
// is sent once traffic is known to be HTTPS. No Content-Security-Policy is
// emitted since the API serves no HTML outside the Swagger UI.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultHSTSMaxAge = 180 * 24 * time.Hour
	exposeHeaders     = "Access-Control-Expose-Headers"
)

// SecurityOptions configures SecurityHeaders.
type SecurityOptions struct {
	// EnableHSTS sends Strict-Transport-Security on HTTPS requests, direct or
	// behind a proxy reporting X-Forwarded-Proto: https. Never on plain HTTP.
	EnableHSTS bool
	// HSTSMaxAge defaults to 180 days when not positive.
	HSTSMaxAge time.Duration
	// CacheControl is sent verbatim when set. The router uses
	// "private, no-cache" so clients revalidate with If-None-Match.
	// A no-cache or no-store directive also adds Pragma: no-cache for
	// HTTP/1.0 intermediaries.
	CacheControl string
	// EnablePolicy adds Permissions-Policy and
	// X-Permitted-Cross-Domain-Policies.
	EnablePolicy bool
}

type headerPair struct{ name, value string }

// staticHeaders lists the headers that do not depend on the request.
func (o SecurityOptions) staticHeaders() []headerPair {
	hs := []headerPair{
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "DENY"},
		{"Referrer-Policy", "no-referrer"},
	}
	if o.EnablePolicy {
		hs = append(hs,
			headerPair{"Permissions-Policy", "geolocation=(), microphone=(), camera=(), payment=()"},
			headerPair{"X-Permitted-Cross-Domain-Policies", "none"},
		)
	}
	if cc := strings.TrimSpace(o.CacheControl); cc != "" {
		hs = append(hs, headerPair{"Cache-Control", cc})
		lc := strings.ToLower(cc)
		if strings.Contains(lc, "no-cache") || strings.Contains(lc, "no-store") {
			hs = append(hs, headerPair{"Pragma", "no-cache"})
		}
	}
	return hs
}

func (o SecurityOptions) hstsValue() string {
	age := o.HSTSMaxAge
	if age <= 0 {
		age = defaultHSTSMaxAge
	}
	return "max-age=" + strconv.Itoa(int(age.Seconds())) + "; includeSubDomains; preload"
}

// SecurityHeaders returns middleware that writes the configured headers
// before the handler runs, so error envelopes and 304s carry them too.
// When RequestID ran earlier, X-Request-ID is added to
// Access-Control-Expose-Headers so browser clients can read it.
func SecurityHeaders(opt SecurityOptions) gin.HandlerFunc {
	static := opt.staticHeaders()
	hsts := opt.hstsValue()

	return func(c *gin.Context) {
		h := c.Writer.Header()
		for _, p := range static {
			h.Set(p.name, p.value)
		}
		if opt.EnableHSTS && isHTTPS(c.Request) {
			h.Set("Strict-Transport-Security", hsts)
		}
		if h.Get(requestIDHeader) != "" {
			exposeHeader(h, requestIDHeader)
		}
		c.Next()
	}
}

// exposeHeader appends name to Access-Control-Expose-Headers unless it is
// already listed, comparing case-insensitively.
func exposeHeader(h http.Header, name string) {
	cur := h.Get(exposeHeaders)
	if cur == "" {
		h.Set(exposeHeaders, name)
		return
	}
	for _, v := range strings.Split(cur, ",") {
		if strings.EqualFold(strings.TrimSpace(v), name) {
			return
		}
	}
	h.Set(exposeHeaders, cur+", "+name)
}

func isHTTPS(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}
