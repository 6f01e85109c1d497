package signature

import "github.com/mranest/dss/x509token"

// CandidateSource names where a CandidatesForSigningCertificate entry
// came from (spec.md §4.6).
type CandidateSource int

const (
	CandidateSourceUnknown CandidateSource = iota
	// CandidateSourceSignedProperty means the candidate was named by a
	// signed property (XAdES SigningCertificate/SigningCertificateV2,
	// CAdES ESSCertIDv2).
	CandidateSourceSignedProperty
	// CandidateSourceUnsignedHeader means the candidate was named only by
	// an unsigned header (e.g. the CMS certificates bag with no signed
	// reference), weaker evidence than a signed property.
	CandidateSourceUnsignedHeader
	// CandidateSourceCallerSupplied means the candidate was injected via
	// Signature.SetProvidedSigningCertificateToken, for containers that
	// omit the signing certificate entirely.
	CandidateSourceCallerSupplied
)

func (c CandidateSource) String() string {
	switch c {
	case CandidateSourceSignedProperty:
		return "SIGNED_PROPERTY"
	case CandidateSourceUnsignedHeader:
		return "UNSIGNED_HEADER"
	case CandidateSourceCallerSupplied:
		return "CALLER_SUPPLIED"
	default:
		return "UNKNOWN"
	}
}

// Candidate is one entry in CandidatesForSigningCertificate: a hint of
// how the candidate certificate was derived, the certificate itself (if
// resolved — a signed-property reference may name a certificate not
// actually present in the container), and a validity flag set during
// CheckSignatureIntegrity.
type Candidate struct {
	Source      CandidateSource
	Certificate *x509token.CertificateToken
	Valid       bool
	Elected     bool
}

// Candidates is the non-empty-after-resolution ordered list spec.md §4.6
// requires; exactly zero or one entry is ever marked Elected.
type Candidates struct {
	list []*Candidate
}

// NewCandidates returns an empty candidate list.
func NewCandidates() *Candidates { return &Candidates{} }

// Add appends a candidate with the given provenance and (possibly nil,
// if unresolved) certificate.
func (c *Candidates) Add(src CandidateSource, cert *x509token.CertificateToken) *Candidate {
	cand := &Candidate{Source: src, Certificate: cert}
	c.list = append(c.list, cand)
	return cand
}

// All returns every candidate, in the order added.
func (c *Candidates) All() []*Candidate {
	return append([]*Candidate(nil), c.list...)
}

// Elected returns the candidate marked Elected, or nil if none is.
func (c *Candidates) Elected() *Candidate {
	for _, cand := range c.list {
		if cand.Elected {
			return cand
		}
	}
	return nil
}

// elect marks cand (and only cand) as elected, clearing any prior
// election — CheckSignatureIntegrity calls this once it finds a
// candidate whose certificate verifies the signature.
func (c *Candidates) elect(cand *Candidate) {
	for _, other := range c.list {
		other.Elected = other == cand
	}
}
