package coreconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.CryptoBackend != CryptoBackendDefault {
		t.Fatalf("CryptoBackend = %q, want %q", s.CryptoBackend, CryptoBackendDefault)
	}
	if s.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q, want %q", s.LogLevel, "warn")
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("DefaultSettings() should validate cleanly: %v", err)
	}
}

func TestParseFillsDefaults(t *testing.T) {
	s, err := Parse([]byte("suppress-match-warnings: true\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !s.SuppressMatchWarnings {
		t.Fatal("SuppressMatchWarnings should be set from the document")
	}
	if s.CryptoBackend != CryptoBackendDefault {
		t.Fatalf("CryptoBackend = %q, want the default to survive an otherwise-partial document", s.CryptoBackend)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("not: valid: yaml: [")); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestParsePKCS11RequiresModulePath(t *testing.T) {
	_, err := Parse([]byte("crypto-backend: pkcs11\n"))
	if err == nil {
		t.Fatal("expected an error: pkcs11 backend selected without pkcs11.module-path")
	}
	var cfgErr *Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want a *coreconfig.Error", err)
	}
}

func TestParsePKCS11WithModulePath(t *testing.T) {
	s, err := Parse([]byte("crypto-backend: pkcs11\npkcs11:\n  module-path: /usr/lib/softhsm/libsofthsm2.so\n  slot: 0\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.PKCS11 == nil || s.PKCS11.ModulePath != "/usr/lib/softhsm/libsofthsm2.so" {
		t.Fatalf("PKCS11 settings not populated correctly: %+v", s.PKCS11)
	}
}

func TestParseUnknownCryptoBackend(t *testing.T) {
	if _, err := Parse([]byte("crypto-backend: quantum\n")); err == nil {
		t.Fatal("expected an error for an unrecognized crypto-backend value")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, []byte("log-level: debug\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want %q", s.LogLevel, "debug")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/settings.yaml"); err == nil {
		t.Fatal("expected an error when the settings file does not exist")
	}
}

func TestBuildCryptoBackendDefault(t *testing.T) {
	s := DefaultSettings()
	backend, closer, err := s.BuildCryptoBackend()
	if err != nil {
		t.Fatalf("BuildCryptoBackend: %v", err)
	}
	if backend == nil {
		t.Fatal("expected a non-nil backend for the default crypto-backend")
	}
	if err := closer(); err != nil {
		t.Fatalf("closer(): %v", err)
	}
}

func TestBuildCryptoBackendPKCS11MissingModule(t *testing.T) {
	s, err := Parse([]byte("crypto-backend: pkcs11\npkcs11:\n  module-path: /nonexistent/softhsm2.so\n  slot: 0\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, _, err := s.BuildCryptoBackend(); err == nil {
		t.Fatal("expected an error opening a PKCS#11 session against a nonexistent module")
	}
}

func TestBuildCryptoBackendUnknownKind(t *testing.T) {
	s := DefaultSettings()
	s.CryptoBackend = "quantum"
	if _, _, err := s.BuildCryptoBackend(); err == nil {
		t.Fatal("expected an error for an unrecognized crypto-backend value")
	}
}
