package signature

import "github.com/mranest/dss/model"

// Backend is the capability that differs bit-for-bit by container
// format (spec.md §4.7): producing the data-to-be-signed representation,
// running format-specific structure validation, and knowing the
// format's baseline profile ladder. Signature itself never touches XML,
// PDF, or CMS byte layout directly — it holds exactly one Backend and
// delegates the format-specific quarter of its behavior to it.
type Backend interface {
	// DataToBeSigned produces the DTBSR CheckSignatureIntegrity verifies
	// the raw signature against.
	DataToBeSigned() ([]byte, error)

	// ValidateStructure runs the format's schema/structure validation,
	// returning a textual outcome ("" on success).
	ValidateStructure() string

	// SignatureLevels returns this format's baseline ladder, in strictly
	// ascending order (spec.md §3 invariant, P5's precondition).
	SignatureLevels() []model.SignatureLevel

	// IsDataForSignatureLevelPresent reports whether every structural
	// element level requires is present on the owning Signature.
	IsDataForSignatureLevelPresent(level model.SignatureLevel) bool
}
