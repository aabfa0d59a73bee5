// SPDX-License-Identifier: MIT
package tls

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/caddyserver/certmagic"
	"go.uber.org/zap"
)

// Manager handles certificate provisioning and management
type Manager struct {
	cfg       *Config
	logger    *zap.Logger
	certmagic *certmagic.Config
	issuer    *certmagic.ACMEIssuer
}

// NewManager creates a new TLS manager. Certificates are not requested until
// Manage is called.
func NewManager(cfg *Config, logger *zap.Logger) (*Manager, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if len(cfg.Domains()) == 0 {
		return nil, fmt.Errorf("at least one domain is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var magicCfg *certmagic.Config
	cache := certmagic.NewCache(certmagic.CacheOptions{
		GetConfigForCert: func(certmagic.Certificate) (*certmagic.Config, error) {
			return magicCfg, nil
		},
		Logger: logger,
	})

	magicCfg = certmagic.New(cache, certmagic.Config{
		Storage: &certmagic.FileStorage{Path: cfg.CertDir},
		Logger:  logger,
	})

	// Configure ACME issuer
	ca := certmagic.LetsEncryptProductionCA
	if cfg.Staging {
		ca = certmagic.LetsEncryptStagingCA
	}
	issuer := certmagic.NewACMEIssuer(magicCfg, certmagic.ACMEIssuer{
		CA:     ca,
		Email:  cfg.Email,
		Agreed: true,
		Logger: logger,
	})
	magicCfg.Issuers = []certmagic.Issuer{issuer}

	return &Manager{
		cfg:       cfg,
		logger:    logger,
		certmagic: magicCfg,
		issuer:    issuer,
	}, nil
}

// Domains returns the hostnames certificates are managed for
func (m *Manager) Domains() []string {
	return m.cfg.Domains()
}

// Manage starts obtaining and renewing certificates in the background
func (m *Manager) Manage(ctx context.Context) error {
	domains := m.Domains()

	m.logger.Info("managing certificates", zap.Int("count", len(domains)), zap.Strings("domains", domains))

	// Tell certmagic to manage these domains
	if err := m.certmagic.ManageAsync(ctx, domains); err != nil {
		return fmt.Errorf("failed to manage domains: %w", err)
	}

	return nil
}

// HTTPChallengeHandler answers ACME HTTP-01 challenges and passes every other
// request to next
func (m *Manager) HTTPChallengeHandler(next http.Handler) http.Handler {
	return m.issuer.HTTPChallengeHandler(next)
}

// GetTLSConfig returns TLS config for HTTPS server
func (m *Manager) GetTLSConfig() *tls.Config {
	return m.certmagic.TLSConfig()
}
