// SPDX-License-Identifier: MIT
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// HTTPSRedirectMiddleware redirects HTTP requests to HTTPS on httpsPort.
// Exceptions: ACME challenges (/.well-known/acme-challenge/) and /healthz
func HTTPSRedirectMiddleware(httpsPort string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip if already HTTPS
		if c.Request.TLS != nil {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/.well-known/acme-challenge/") || path == "/healthz" {
			c.Next()
			return
		}

		c.Redirect(http.StatusMovedPermanently, httpsURL(c.Request.Host, httpsPort, c.Request.RequestURI))
		c.Abort()
	}
}

// httpsURL rewrites host to the HTTPS port, omitting the default 443
func httpsURL(host, port, requestURI string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if port != "" && port != "443" {
		host = net.JoinHostPort(host, port)
	}
	return "https://" + host + requestURI
}
