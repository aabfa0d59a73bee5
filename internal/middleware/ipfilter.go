// SPDX-License-Identifier: MIT
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harishsolar/solarsite/internal/logging"
	"go.uber.org/zap"
)

// ParseBlocklist turns CIDR ranges and bare IPs into networks. Invalid
// entries are returned separately.
func ParseBlocklist(entries []string) (nets []*net.IPNet, invalid []string) {
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				invalid = append(invalid, entry)
				continue
			}
			bits := 128
			if ip.To4() != nil {
				ip, bits = ip.To4(), 32
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}

		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			invalid = append(invalid, entry)
			continue
		}
		nets = append(nets, ipNet)
	}
	return nets, invalid
}

// IPFilterMiddleware rejects requests from blocklisted addresses
func IPFilterMiddleware(blocklist []string) gin.HandlerFunc {
	blocked, invalid := ParseBlocklist(blocklist)
	for _, entry := range invalid {
		logging.L().Warn("ignoring invalid blocklist entry", zap.String("entry", entry))
	}

	return func(c *gin.Context) {
		if len(blocked) == 0 {
			c.Next()
			return
		}

		clientIP := net.ParseIP(c.ClientIP())
		if clientIP == nil {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		for _, ipNet := range blocked {
			if ipNet.Contains(clientIP) {
				logging.L().Info("blocked request", zap.String("ip", clientIP.String()), zap.String("path", c.Request.URL.Path))
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
		}

		c.Next()
	}
}
