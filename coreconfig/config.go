// Package coreconfig loads the validation core's session-level settings
// from YAML, the way the teacher's config package drives PDF signing
// configuration from YAML. Nothing here is mandatory: every field has a
// workable zero value, and DefaultSettings returns the configuration a
// caller gets for free if it never touches this package at all.
package coreconfig

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/mranest/dss/cryptoverify"
	"gopkg.in/yaml.v3"
)

// Error reports a configuration problem with enough context (which field,
// what went wrong) to act on, in the teacher's ConfigError shape.
type Error struct {
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("coreconfig: error in %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("coreconfig: %s", e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(field, message string) *Error { return &Error{Field: field, Message: message} }

// CryptoBackendKind selects which cryptoverify.Backend a session builds.
type CryptoBackendKind string

const (
	// CryptoBackendDefault verifies entirely in-process (cryptoverify.DefaultBackend).
	CryptoBackendDefault CryptoBackendKind = "default"
	// CryptoBackendPKCS11 verifies inside an HSM (cryptoverify.PKCS11Backend).
	CryptoBackendPKCS11 CryptoBackendKind = "pkcs11"
)

// PKCS11Settings configures cryptoverify.PKCS11Backend.
type PKCS11Settings struct {
	ModulePath string `yaml:"module-path"`
	Slot       uint   `yaml:"slot"`
	KeyLabel   string `yaml:"key-label"`
	KeyID      string `yaml:"key-id"`
}

// Settings is the top-level session configuration for a validation run:
// which crypto backend to use, how strictly to log, and the handful of
// knobs spec.md's Open Questions leave to the caller (the strict-vs-lenient
// RFC 3161 observability flag chief among them).
type Settings struct {
	// CryptoBackend selects the verification backend.
	CryptoBackend CryptoBackendKind `yaml:"crypto-backend"`
	PKCS11        *PKCS11Settings   `yaml:"pkcs11"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log-level"`

	// SuppressMatchWarnings is the session-level choice between
	// timestamp.Token.MatchData and MatchDataSuppressWarnings (the
	// latter silences the WARN log on a message-imprint mismatch).
	// coreconfig only carries the value; nothing in this package applies
	// it to a token.
	SuppressMatchWarnings bool `yaml:"suppress-match-warnings"`

	// RecordVerificationPath is the session-level value for
	// timestamp.WithRecordVerificationPath, which records whether strict
	// RFC 3161 validation or the CMS fallback produced a VALID
	// CheckIsSignedBy outcome. coreconfig only carries the value; nothing
	// in this package applies it to a token.
	RecordVerificationPath bool `yaml:"record-verification-path"`
}

// DefaultSettings returns the configuration used when a caller never
// loads one explicitly: in-process crypto backend, WARN-level logging,
// imprint mismatches logged, verification path not recorded (matching
// the distilled source's silence on the question).
func DefaultSettings() *Settings {
	return &Settings{
		CryptoBackend: CryptoBackendDefault,
		LogLevel:      "warn",
	}
}

// Validate checks internal consistency: a pkcs11 backend selection
// requires pkcs11 settings with a module path. A pkcs11 block under
// another backend is not checked and is ignored.
func (s *Settings) Validate() error {
	switch s.CryptoBackend {
	case "", CryptoBackendDefault:
	case CryptoBackendPKCS11:
		if s.PKCS11 == nil || s.PKCS11.ModulePath == "" {
			return newError("pkcs11.module-path", "required when crypto-backend is \"pkcs11\"")
		}
	default:
		return newError("crypto-backend", fmt.Sprintf("unknown backend %q", s.CryptoBackend))
	}
	return nil
}

// BuildCryptoBackend constructs the cryptoverify.Backend s.CryptoBackend
// selects. For CryptoBackendPKCS11 it opens the PKCS#11 session itself and
// returns a closer the caller must invoke once the backend is no longer
// needed; for CryptoBackendDefault (or the zero value) the closer is a
// no-op.
func (s *Settings) BuildCryptoBackend() (cryptoverify.Backend, func() error, error) {
	switch s.CryptoBackend {
	case "", CryptoBackendDefault:
		return cryptoverify.New(), func() error { return nil }, nil
	case CryptoBackendPKCS11:
		if s.PKCS11 == nil || s.PKCS11.ModulePath == "" {
			return nil, nil, newError("pkcs11.module-path", "required when crypto-backend is \"pkcs11\"")
		}
		session, err := cryptoverify.OpenPKCS11Session(s.PKCS11.ModulePath, s.PKCS11.Slot)
		if err != nil {
			return nil, nil, newError("pkcs11", fmt.Sprintf("failed to open session: %v", err))
		}
		var keyID []byte
		if s.PKCS11.KeyID != "" {
			keyID, err = hex.DecodeString(s.PKCS11.KeyID)
			if err != nil {
				session.Close()
				return nil, nil, newError("pkcs11.key-id", "must be hex-encoded")
			}
		}
		backend := cryptoverify.NewPKCS11Backend(session, s.PKCS11.KeyLabel, keyID)
		return backend, session.Close, nil
	default:
		return nil, nil, newError("crypto-backend", fmt.Sprintf("unknown backend %q", s.CryptoBackend))
	}
}

// Load reads and parses Settings from a YAML file at path.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError("", fmt.Sprintf("failed to read %s", path))
	}
	return Parse(data)
}

// Parse decodes Settings from raw YAML bytes, filling in DefaultSettings
// for anything the document omits.
func Parse(data []byte) (*Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, &Error{Message: "invalid YAML", Err: err}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
