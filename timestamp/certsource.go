package timestamp

import (
	"github.com/mranest/dss/source"
	"github.com/mranest/dss/x509token"
)

// CertificateSource is the timestamp-scoped specialization of
// source.CertificateSource (Supplemented Feature 2b, ported from the
// original's TimestampCertificateSource): in addition to the generic
// certificate bag, it indexes certificates by a CMS SignerId string the
// caller files them under. Token's own construction does not fill this
// index, and Token.SignerIdentifierInfo reads the embedded SignerInfo
// directly rather than consulting it.
type CertificateSource struct {
	*source.CertificateSource

	bySignerID map[string]*x509token.CertificateToken
}

// NewCertificateSource returns an empty timestamp certificate source.
func NewCertificateSource() *CertificateSource {
	return &CertificateSource{
		CertificateSource: source.NewCertificateSource(x509token.SourceTimestamp),
		bySignerID:        map[string]*x509token.CertificateToken{},
	}
}

// IndexBySignerID additionally files tok under signerID (the string form
// of an IssuerAndSerialNumber or a hex subject-key-identifier), for a
// later BySignerID lookup. A later call with the same signerID replaces
// the earlier entry.
func (s *CertificateSource) IndexBySignerID(signerID string, tok *x509token.CertificateToken) {
	s.bySignerID[signerID] = tok
}

// BySignerID returns the certificate filed under signerID, or nil.
func (s *CertificateSource) BySignerID(signerID string) *x509token.CertificateToken {
	return s.bySignerID[signerID]
}
