// SPDX-License-Identifier: MIT
package tls

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caddyserver/certmagic"
)

// CertificateStatus describes the stored certificate of one domain. Err is
// set when a file exists but cannot be used.
type CertificateStatus struct {
	Domain    string
	IssuerKey string
	Issuer    string
	NotBefore time.Time
	NotAfter  time.Time

	DaysUntilExpiry int
	Err             error
}

// Expired reports whether the certificate is past its NotAfter at now
func (s CertificateStatus) Expired(now time.Time) bool {
	return s.Err == nil && !now.Before(s.NotAfter)
}

// RenewalDue reports whether a third or less of the certificate's lifetime
// remains, which is when certmagic starts renewing it
func (s CertificateStatus) RenewalDue(now time.Time) bool {
	if s.Err != nil {
		return false
	}
	lifetime := s.NotAfter.Sub(s.NotBefore)
	return s.NotAfter.Sub(now) <= lifetime/3
}

// GetCertificateStatus reads the stored certificate of every managed domain
func (m *Manager) GetCertificateStatus(ctx context.Context) ([]CertificateStatus, error) {
	return CertificateStatuses(ctx, m.certmagic.Storage, m.issuerKeys(), m.Domains(), time.Now())
}

// issuerKeys lists where certificates may be stored, the configured CA first.
// The other CA is still checked so switching staging off keeps old certs visible.
func (m *Manager) issuerKeys() []string {
	other := certmagic.LetsEncryptStagingCA
	if m.cfg.Staging {
		other = certmagic.LetsEncryptProductionCA
	}
	alt := certmagic.NewACMEIssuer(m.certmagic, certmagic.ACMEIssuer{CA: other, Logger: m.logger})
	return []string{m.issuer.IssuerKey(), alt.IssuerKey()}
}

// CertificateStatuses looks up each domain's certificate in storage under the
// first issuer key that has one. Domains with no certificate yet are left out.
func CertificateStatuses(ctx context.Context, storage certmagic.Storage, issuerKeys, domains []string, now time.Time) ([]CertificateStatus, error) {
	var statuses []CertificateStatus

	for _, domain := range domains {
		status, found, err := loadStatus(ctx, storage, issuerKeys, domain)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		if status.Err == nil {
			status.DaysUntilExpiry = int(status.NotAfter.Sub(now).Hours() / 24)
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

func loadStatus(ctx context.Context, storage certmagic.Storage, issuerKeys []string, domain string) (CertificateStatus, bool, error) {
	for _, key := range issuerKeys {
		data, err := storage.Load(ctx, certmagic.StorageKeys.SiteCert(key, domain))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		status := CertificateStatus{Domain: domain, IssuerKey: key}
		if err != nil {
			if ctx.Err() != nil {
				return status, false, ctx.Err()
			}
			status.Err = fmt.Errorf("failed to read certificate: %w", err)
			return status, true, nil
		}

		cert, err := parseLeaf(data)
		if err != nil {
			status.Err = err
			return status, true, nil
		}
		status.Issuer = cert.Issuer.CommonName
		status.NotBefore = cert.NotBefore
		status.NotAfter = cert.NotAfter
		return status, true, nil
	}
	return CertificateStatus{}, false, nil
}

// parseLeaf returns the first certificate of a PEM chain
func parseLeaf(data []byte) (*x509.Certificate, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != "CERTIFICATE" {
		return nil, errors.New("no PEM certificate found")
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}
	return cert, nil
}
