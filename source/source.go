// Package source implements the CertificateSource / CRLSource / OCSPSource
// collections of spec.md §3: artifacts of one kind extracted from one
// container, tagged with a source type, plus the merged "List*" views that
// collapse duplicates across a signature and all of its nested timestamps
// (P6).
package source

import (
	"github.com/mranest/dss/model"
	"github.com/mranest/dss/x509token"
)

// CertificateSource is the set of certificates extracted from one
// container (a signature's CMS certificates bag, a timestamp's CMS
// certificates bag, an OCSP response's responder-cert field, …), tagged
// with the SourceType they were found under.
type CertificateSource struct {
	sourceType x509token.SourceType
	certs      []*x509token.CertificateToken
	byID       map[model.Identifier]*x509token.CertificateToken
	refs       []Reference
}

// NewCertificateSource returns an empty source tagged with typ.
func NewCertificateSource(typ x509token.SourceType) *CertificateSource {
	return &CertificateSource{sourceType: typ, byID: map[model.Identifier]*x509token.CertificateToken{}}
}

// Type returns the source's SourceType.
func (s *CertificateSource) Type() x509token.SourceType { return s.sourceType }

// Add registers tok with this source, deduplicating by dss_id the same
// way the teacher's sign/dss.DSS.AddCertificate dedups before appending.
func (s *CertificateSource) Add(tok *x509token.CertificateToken) {
	if _, ok := s.byID[tok.ID()]; ok {
		return
	}
	s.byID[tok.ID()] = tok
	s.certs = append(s.certs, tok)
}

// Certificates returns the certificates in this source, insertion order.
func (s *CertificateSource) Certificates() []*x509token.CertificateToken {
	return append([]*x509token.CertificateToken(nil), s.certs...)
}

// Find returns the certificate with the given dss_id, or nil.
func (s *CertificateSource) Find(id model.Identifier) *x509token.CertificateToken {
	return s.byID[id]
}

// Reference is a CertificateRef: a pointer to a certificate a container
// names without embedding it in full (e.g. a CAdES ESSCertIDv2, or an
// XAdES CertificateValues ref by digest) — Supplemented Feature: exposes
// the original's CertificateRef accessors the distilled spec omitted.
type Reference struct {
	DigestAlgorithm model.DigestAlgorithm
	DigestValue     []byte
	IssuerSerial    string
}

// References returns the certificate references this source carries in
// addition to (or instead of) full certificates. Most in-module sources
// have none; CMS-embedded sources populate this from SigningCertificate /
// SigningCertificateV2 signed attributes when the referenced certificate
// itself is not embedded.
func (s *CertificateSource) References() []Reference {
	return append([]Reference(nil), s.refs...)
}

// AddReference records a bare certificate reference.
func (s *CertificateSource) AddReference(r Reference) {
	s.refs = append(s.refs, r)
}
