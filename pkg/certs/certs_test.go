package certs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docker-run-task/pkg/certs"
	"docker-run-task/pkg/certs/certstest"
)

func TestWriteBundle(t *testing.T) {
	bundle := certstest.NewBundle(t)
	dir := filepath.Join(t.TempDir(), "certs")

	if err := certs.WriteBundle(dir, bundle); err != nil {
		t.Fatalf("WriteBundle() error = %v", err)
	}

	for name, want := range map[string]string{
		certs.CACertificateFile: bundle.CACertificate,
		certs.CertificateFile:   bundle.Certificate,
		certs.PrivateKeyFile:    bundle.PrivateKey,
	} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read %s: %v", name, err)
		}
		if string(data) != want {
			t.Errorf("%s content mismatch", name)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("failed to stat %s: %v", name, err)
		}
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Errorf("%s permissions = %o; want 600", name, perm)
		}
	}
}

func TestBundleValidate(t *testing.T) {
	good := certstest.NewBundle(t)
	other := certstest.NewBundle(t)

	tests := []struct {
		name    string
		bundle  certs.Bundle
		wantErr string
	}{
		{"valid", good, ""},
		{"missing key", certs.Bundle{CACertificate: good.CACertificate, Certificate: good.Certificate}, "requires"},
		{"garbage CA", certs.Bundle{CACertificate: "nope", Certificate: good.Certificate, PrivateKey: good.PrivateKey}, "CA certificate"},
		{"mismatched key", certs.Bundle{CACertificate: good.CACertificate, Certificate: good.Certificate, PrivateKey: other.PrivateKey}, "do not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bundle.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v; want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestWriteBundleRejectsInvalid(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "certs")
	if err := certs.WriteBundle(dir, certs.Bundle{}); err == nil {
		t.Fatal("expected error for empty bundle")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("directory should not be created for an invalid bundle")
	}
}

func TestIsZero(t *testing.T) {
	if !(certs.Bundle{}).IsZero() {
		t.Error("empty bundle should be zero")
	}
	if (certs.Bundle{PrivateKey: "x"}).IsZero() {
		t.Error("bundle with a key should not be zero")
	}
}
