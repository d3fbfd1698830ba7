package certs

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"

	"docker-run-task/pkg/log"
)

// File names the docker CLI expects inside DOCKER_CERT_PATH.
const (
	CACertificateFile = "ca.pem"
	CertificateFile   = "cert.pem"
	PrivateKeyFile    = "key.pem"
)

// Bundle is the PEM-encoded client TLS material of a docker host endpoint.
type Bundle struct {
	CACertificate string
	Certificate   string
	PrivateKey    string
}

// IsZero reports whether the bundle carries no material at all.
func (b Bundle) IsZero() bool {
	return b.CACertificate == "" && b.Certificate == "" && b.PrivateKey == ""
}

// Validate checks that all three parts are present, that the CA parses as at
// least one certificate and that certificate and key form a pair.
func (b Bundle) Validate() error {
	if b.CACertificate == "" || b.Certificate == "" || b.PrivateKey == "" {
		return fmt.Errorf("TLS bundle requires a CA certificate, a certificate and a private key")
	}

	pool := x509.NewCertPool()
	if ok := pool.AppendCertsFromPEM([]byte(b.CACertificate)); !ok {
		return fmt.Errorf("failed to parse CA certificate PEM")
	}

	if block, _ := pem.Decode([]byte(b.Certificate)); block == nil {
		return fmt.Errorf("failed to parse certificate PEM")
	}

	if _, err := tls.X509KeyPair([]byte(b.Certificate), []byte(b.PrivateKey)); err != nil {
		return fmt.Errorf("certificate and private key do not match: %w", err)
	}
	return nil
}

// WriteBundle validates b and writes it into dir using the docker CLI file names.
// Files are created with 0600 permissions.
func WriteBundle(dir string, b Bundle) error {
	if err := b.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create certificate directory: %w", err)
	}

	files := map[string]string{
		CACertificateFile: b.CACertificate,
		CertificateFile:   b.Certificate,
		PrivateKeyFile:    b.PrivateKey,
	}
	for name, data := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	log.Debug("[Certs] wrote TLS bundle", "dir", dir)
	return nil
}
