// Package x509token defines the small capability the validation core
// needs from an X.509 certificate (spec.md §6's CertificateToken
// interface) and the deduplicating CertificatePool that shares instances
// across signatures and timestamps (spec.md §3, §5).
package x509token

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"

	"github.com/mranest/dss/model"
)

// CertificateToken is the capability set the core consumes from a
// certificate, regardless of how the host application represents one on
// disk or in a PKCS#11 token. It wraps a parsed *x509.Certificate because
// every concrete implementation in this module's dependency graph
// (go-pkcs12 fixtures, miekg/pkcs11 handles) ultimately resolves to one.
type CertificateToken struct {
	cert *x509.Certificate
	der  []byte
	id   model.Identifier
}

// New wraps cert, computing its dss_id from the DER encoding per
// model.BuildTokenIdentifier so that P1 (identity stability) holds
// automatically for every certificate the core touches.
func New(cert *x509.Certificate) *CertificateToken {
	return &CertificateToken{
		cert: cert,
		der:  cert.Raw,
		id:   model.BuildTokenIdentifier(cert.Raw),
	}
}

// ID returns the certificate's dss_id.
func (c *CertificateToken) ID() model.Identifier { return c.id }

// DEREncoding returns the certificate's DER bytes.
func (c *CertificateToken) DEREncoding() []byte { return c.der }

// SubjectDN returns the RFC 2253-ish string form of the subject name, the
// way the teacher's sign/cms and sign/validation packages already render
// pkix.Name for display and matching purposes.
func (c *CertificateToken) SubjectDN() string { return c.cert.Subject.String() }

// IssuerDN returns the issuer distinguished name.
func (c *CertificateToken) IssuerDN() string { return c.cert.Issuer.String() }

// SerialNumber returns the certificate's serial number.
func (c *CertificateToken) SerialNumber() *big.Int { return c.cert.SerialNumber }

// PublicKeyAlgorithmName returns a short name for the public key
// algorithm (e.g. "RSA", "ECDSA", "Ed25519").
func (c *CertificateToken) PublicKeyAlgorithmName() string {
	return c.cert.PublicKeyAlgorithm.String()
}

// PublicKey returns the parsed public key (an *rsa.PublicKey,
// *ecdsa.PublicKey, or ed25519.PublicKey).
func (c *CertificateToken) PublicKey() any { return c.cert.PublicKey }

// SubjectKeyIdentifier returns the certificate's SKI extension value, or
// nil if absent.
func (c *CertificateToken) SubjectKeyIdentifier() []byte { return c.cert.SubjectKeyId }

// IssuerAndSerial returns the issuer name plus serial number pair CMS
// SignerInfo.SID matching needs (spec.md §4.2 step 1).
func (c *CertificateToken) IssuerAndSerial() (pkix.Name, *big.Int) {
	return c.cert.Issuer, c.cert.SerialNumber
}

// Certificate exposes the underlying parsed certificate for callers
// (cryptoverify, cms) that need the full stdlib representation.
func (c *CertificateToken) Certificate() *x509.Certificate { return c.cert }
