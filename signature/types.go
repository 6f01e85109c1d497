// Package signature provides the format-agnostic AdvancedSignature
// contract (spec.md §4.4): one Signature struct populated by an external,
// format-specific parser, plus the verification and classification
// algorithms (integrity check, signing-certificate resolution, level
// inference, counter-signature linking) that operate on that state
// regardless of whether the signature came from XAdES, CAdES, or PAdES.
package signature

import (
	"github.com/mranest/dss/model"
	"github.com/mranest/dss/x509token"
)

// SignerRole is one claimed or certified role attribute a signer asserted
// (spec.md §3's "signer roles (claimed / certified)").
type SignerRole struct {
	Role      string
	Certified bool
}

// CommitmentTypeIndication is a signed assertion of what the signer
// intended the signature to commit to (e.g. "proof of origin").
type CommitmentTypeIndication struct {
	Identifier              string
	Description             string
	DocumentationReferences []string
}

// ProductionPlace is the signer-asserted physical location of signing.
type ProductionPlace struct {
	City             string
	StateOrProvince  string
	PostalCode       string
	CountryName      string
}

// ContentHint is an XAdES/CAdES content-hints property entry, describing
// the MIME type of the originally-signed content for display purposes.
type ContentHint struct {
	ContentType string
	Description string
}

// ReferenceValidation is one signed-reference outcome (spec.md §4.5):
// an XAdES <Reference> in the general case, or the single CAdES
// message-imprint reference for CMS-based signatures.
type ReferenceValidation struct {
	Type            string
	Name            string
	DigestAlgorithm model.DigestAlgorithm
	DigestValue     []byte
	Found           bool
	Intact          bool
}

// SignatureCryptographicVerification is the outcome record
// CheckSignatureIntegrity produces (spec.md §4.5).
type SignatureCryptographicVerification struct {
	SignatureIntact         bool
	ReferencesValid         bool
	ErrorMessage            string
	UsedSigningCertificate  *x509token.CertificateToken
}

// DigestReference is a digest over a signature's own DTBSR (Supplemented
// Feature 5, ETSI TS 119 442 §5.1.4.2.1.3 SignatureDigestReference),
// letting downstream report tooling name a signature unambiguously.
type DigestReference struct {
	DigestAlgorithm model.DigestAlgorithm
	DigestValue     []byte
}

// Tokenish is the narrow capability ValidationContext.AddToken consumes
// (spec.md §6): any token kind with a stable identifier. TimestampToken,
// x509token.CertificateToken, and any RevocationToken wrapper a caller
// defines all satisfy it trivially.
type Tokenish interface {
	ID() model.Identifier
}

// ValidationContext is the sink spec.md §6 names for tokens discovered
// while validating a signature: PrepareTimestamps emits every owned
// timestamp into one so the caller's certificate-chain builder can
// process them.
type ValidationContext interface {
	AddToken(t Tokenish)
}
