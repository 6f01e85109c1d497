package model

import (
	"errors"
	"testing"
)

func TestParseErrorUnwrap(t *testing.T) {
	inner := errors.New("unexpected EOF")
	err := NewParseError("CMS ContentInfo", inner)
	if !errors.Is(err, inner) {
		t.Fatal("ParseError should unwrap to its wrapped cause")
	}
	if got, want := err.Error(), "dss: parse error: CMS ContentInfo: unexpected EOF"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestParseErrorNilCause(t *testing.T) {
	err := NewParseError("RFC 3161 TSTInfo", nil)
	if got, want := err.Error(), "dss: parse error: RFC 3161 TSTInfo"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestContractViolationErrorIsSentinel(t *testing.T) {
	err := NewContractViolation("IsMessageImprintDataIntact", "MatchData was never called")
	if !errors.Is(err, ErrContractViolation) {
		t.Fatal("ContractViolationError should unwrap to ErrContractViolation")
	}
}

func TestCryptoBackendFaultIsSentinel(t *testing.T) {
	inner := errors.New("HSM session closed")
	err := NewCryptoBackendFault("CheckIsSignedBy", inner)
	if !errors.Is(err, ErrCryptoBackendFault) {
		t.Fatal("CryptoBackendFault should unwrap to ErrCryptoBackendFault")
	}
	if got, want := err.Error(), "dss: crypto backend fault in CheckIsSignedBy: HSM session closed"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
