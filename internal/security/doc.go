// Package security provides the request hardening middleware for the catalog
// UI: CSRF protection for form posts, security response headers, a per-IP
// rate limit on writes, and the session store that carries flash messages.
//
// # Configuration
//
//	CSRF_SECRET=<32 bytes>   # Empty disables CSRF protection
//	SECURE_COOKIES=true      # HTTPS-only cookies
//	SESSION_LIFETIME=24h     # Flash session lifetime
//	RATE_LIMIT_ENABLED=true
//	RATE_LIMIT_RPS=5
//	RATE_LIMIT_BURST=10
//
// # Ordering
//
// CSRF must run before the session middleware so the session context survives
// the request replacement CSRF performs.
package security
