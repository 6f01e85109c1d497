// Package xadesbackend implements signature.Backend for XAdES: a
// ds:Signature element whose ds:Object carries a QualifyingProperties
// structure of SignedProperties/UnsignedProperties (ETSI TS 101 903),
// grounded on the teacher's generated/w3c and generated/etsi XML
// bindings. Canonicalization is explicitly out of this core's scope —
// the same deferral spec.md makes for DOMHashCode — so DataToBeSigned
// takes the already-canonicalized SignedInfo bytes from an injected
// Canonicalizer rather than performing XML c14n itself.
package xadesbackend

import (
	"github.com/mranest/dss/generated/etsi"
	"github.com/mranest/dss/generated/w3c"
	"github.com/mranest/dss/model"
)

// Canonicalizer produces the canonical octet stream for sig.SignedInfo,
// the step XML-DSIG's c14n/exc-c14n algorithms perform. This core
// intentionally does not implement XML canonicalization (spec.md
// Non-goals: no byte-level container parsing); callers wire in whatever
// XML library their deployment already carries for it.
type Canonicalizer interface {
	CanonicalizeSignedInfo(sig *w3c.Signature) ([]byte, error)
}

// Backend is the XAdES realization of signature.Backend.
type Backend struct {
	signature  *w3c.Signature
	qualifying *etsi.QualifyingProperties
	canon      Canonicalizer

	hasSignatureTS bool
	hasCompleteLT  bool
	hasArchiveTS   bool
}

// QualifyingPropertiesHolder aliases the root XAdES element: SignedProperties
// feed the digest this signature covers; UnsignedProperties carry the
// timestamps and revocation material the level ladder inspects.
type QualifyingPropertiesHolder = etsi.QualifyingProperties

// New builds a Backend from a parsed ds:Signature, its associated
// QualifyingProperties (found via ds:Object or a detached reference),
// and a Canonicalizer for SignedInfo.
func New(sig *w3c.Signature, qp *etsi.QualifyingProperties, canon Canonicalizer) *Backend {
	b := &Backend{signature: sig, qualifying: qp, canon: canon}
	b.classifyUnsignedProperties()
	return b
}

func (b *Backend) classifyUnsignedProperties() {
	if b.qualifying == nil || b.qualifying.UnsignedProperties == nil {
		return
	}
	usp := b.qualifying.UnsignedProperties.UnsignedSignatureProperties
	if usp == nil {
		return
	}
	b.hasSignatureTS = len(usp.SignatureTimeStamp) > 0
	b.hasCompleteLT = len(usp.CertificateValues) > 0 || len(usp.RevocationValues) > 0 ||
		len(usp.CompleteCertificateRefs) > 0 || len(usp.CompleteRevocationRefs) > 0
	b.hasArchiveTS = len(usp.ArchiveTimeStamp) > 0
}

// DataToBeSigned delegates to the injected Canonicalizer to produce the
// canonical SignedInfo octets the signature value is computed over.
func (b *Backend) DataToBeSigned() ([]byte, error) {
	if b.signature == nil || b.signature.SignedInfo == nil {
		return nil, errMissingSignedInfo{}
	}
	return b.canon.CanonicalizeSignedInfo(b.signature)
}

// ValidateStructure reports whether the minimal XAdES-BASELINE-B shape
// holds: a ds:SignedInfo with at least one ds:Reference, and a
// QualifyingProperties/SignedProperties element.
func (b *Backend) ValidateStructure() string {
	if b.signature == nil || b.signature.SignedInfo == nil {
		return "missing ds:SignedInfo"
	}
	if len(b.signature.SignedInfo.Reference) == 0 {
		return "ds:SignedInfo has no ds:Reference elements"
	}
	if b.qualifying == nil || b.qualifying.SignedProperties == nil {
		return "missing xades:SignedProperties"
	}
	return ""
}

// SignatureLevels returns the XAdES baseline ladder, strictly ascending.
func (b *Backend) SignatureLevels() []model.SignatureLevel {
	return []model.SignatureLevel{
		model.LevelXAdES_BASELINE_B,
		model.LevelXAdES_BASELINE_T,
		model.LevelXAdES_BASELINE_LT,
		model.LevelXAdES_BASELINE_LTA,
	}
}

// IsDataForSignatureLevelPresent mirrors cadesbackend's ladder check,
// reading the unsigned-properties classification computed at
// construction time rather than the signed attributes CAdES carries.
func (b *Backend) IsDataForSignatureLevelPresent(level model.SignatureLevel) bool {
	switch level {
	case model.LevelXAdES_BASELINE_B:
		return b.ValidateStructure() == ""
	case model.LevelXAdES_BASELINE_T:
		return b.hasSignatureTS
	case model.LevelXAdES_BASELINE_LT:
		return b.hasCompleteLT
	case model.LevelXAdES_BASELINE_LTA:
		return b.hasArchiveTS
	default:
		return false
	}
}

// References returns the ds:Reference elements this signature's
// SignedInfo lists, for the caller's per-reference digest checks
// (signature.ReferenceValidation).
func (b *Backend) References() []w3c.Reference {
	if b.signature == nil || b.signature.SignedInfo == nil {
		return nil
	}
	return b.signature.SignedInfo.Reference
}

type errMissingSignedInfo struct{}

func (errMissingSignedInfo) Error() string { return "ds:Signature has no ds:SignedInfo" }
