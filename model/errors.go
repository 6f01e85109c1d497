// Package model provides the shared types underlying every token and
// signature abstraction in the validation core: digest/signature algorithm
// enumerations, the identifier scheme, and the three error kinds the core
// distinguishes (parse failures, crypto backend faults, contract
// violations).
package model

import "errors"

// Sentinel errors describing the three non-evidential failure kinds the
// core distinguishes. Evidential outcomes (signature invalid, imprint
// mismatch) are never represented as errors; they are recorded on the
// token or signature as data.
var (
	// ErrContractViolation is returned when a caller invokes an operation
	// out of the order its contract requires (for example, reading
	// IsMessageImprintDataIntact before any MatchData call).
	ErrContractViolation = errors.New("dss: contract violation")

	// ErrCryptoBackendFault is returned when the configured crypto
	// backend cannot even be constructed or invoked for a candidate
	// (unsupported algorithm, HSM session failure). This is an
	// environmental defect, not evidence about the token.
	ErrCryptoBackendFault = errors.New("dss: crypto backend fault")
)

// ParseError reports that bytes handed to a token constructor were not a
// well-formed instance of the expected wire format. Parse errors are
// terminal: the token is never constructed.
type ParseError struct {
	// What names the structure that failed to parse (e.g. "CMS
	// ContentInfo", "RFC 3161 TSTInfo").
	What string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "dss: parse error: " + e.What
	}
	return "dss: parse error: " + e.What + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError wraps err with the name of the structure being parsed.
func NewParseError(what string, err error) *ParseError {
	return &ParseError{What: what, Err: err}
}

// ContractViolationError is the concrete type behind ErrContractViolation;
// it names the operation that was invoked out of order.
type ContractViolationError struct {
	Operation string
	Reason    string
}

func (e *ContractViolationError) Error() string {
	return "dss: contract violation in " + e.Operation + ": " + e.Reason
}

func (e *ContractViolationError) Unwrap() error { return ErrContractViolation }

// NewContractViolation builds a ContractViolationError for operation,
// describing why the call was out of order.
func NewContractViolation(operation, reason string) *ContractViolationError {
	return &ContractViolationError{Operation: operation, Reason: reason}
}

// CryptoBackendFault is the concrete type behind ErrCryptoBackendFault.
type CryptoBackendFault struct {
	Operation string
	Err       error
}

func (e *CryptoBackendFault) Error() string {
	if e.Err == nil {
		return "dss: crypto backend fault in " + e.Operation
	}
	return "dss: crypto backend fault in " + e.Operation + ": " + e.Err.Error()
}

func (e *CryptoBackendFault) Unwrap() error { return ErrCryptoBackendFault }

// NewCryptoBackendFault wraps err as a terminal, non-evidential crypto
// backend failure for operation.
func NewCryptoBackendFault(operation string, err error) *CryptoBackendFault {
	return &CryptoBackendFault{Operation: operation, Err: err}
}
