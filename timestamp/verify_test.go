package timestamp

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"math/big"
	"testing"
	"time"

	"github.com/mranest/dss/cms"
	"github.com/mranest/dss/model"
	"github.com/mranest/dss/x509token"
)

var (
	oidSHA256       = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 1}
	oidRSAEncryption = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
)

func rsaSignerCert(t *testing.T) (*rsa.PrivateKey, *x509.Certificate) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(12345),
		Subject:      pkix.Name{CommonName: "test TSA"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("CreateCertificate: %v", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("ParseCertificate: %v", err)
	}
	return key, cert
}

func marshalDigestAttr(t *testing.T, digest []byte) cms.Attribute {
	t.Helper()
	der, err := asn1.Marshal(digest)
	if err != nil {
		t.Fatalf("asn1.Marshal: %v", err)
	}
	var rv asn1.RawValue
	if _, err := asn1.Unmarshal(der, &rv); err != nil {
		t.Fatalf("asn1.Unmarshal: %v", err)
	}
	return cms.Attribute{Type: cms.OIDMessageDigest, Values: []asn1.RawValue{rv}}
}

func signedAttrsDER(t *testing.T, attrs []cms.Attribute) []byte {
	t.Helper()
	der, err := asn1.Marshal(attrs)
	if err != nil {
		t.Fatalf("asn1.Marshal: %v", err)
	}
	der[0] = 0x31
	return der
}

// buildSignedToken constructs a *Token whose embedded CMS SignerInfo is a
// genuine RSA/SHA-256 signature over a re-tagged SignedAttrs SET, the same
// shape cms.ParseSignerInfoRaw produces, so CheckIsSignedBy exercises real
// cryptographic verification rather than a stubbed backend.
func buildSignedToken(t *testing.T, eContent []byte) (*Token, *x509.Certificate) {
	t.Helper()
	key, cert := rsaSignerCert(t)

	contentDigest := sha256.Sum256(eContent)
	attrs := []cms.Attribute{marshalDigestAttr(t, contentDigest[:])}
	attrsDER := signedAttrsDER(t, attrs)

	hashed := sha256.Sum256(attrsDER)
	sig, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, hashed[:])
	if err != nil {
		t.Fatalf("SignPKCS1v15: %v", err)
	}

	si := cms.ParsedSignerInfo{
		SID:            cms.IssuerAndSerialNumber{SerialNumber: cert.SerialNumber},
		DigestAlg:      cms.AlgorithmIdentifier{Algorithm: oidSHA256},
		SignedAttrs:    attrs,
		SignedAttrsDER: attrsDER,
		SigAlg:         cms.AlgorithmIdentifier{Algorithm: oidRSAEncryption},
		Signature:      sig,
	}

	sd := &cms.ParsedSignedData{
		EContent:     eContent,
		Certificates: []*x509.Certificate{cert},
		SignerInfos:  []cms.ParsedSignerInfo{si},
	}

	tstInfo := &cms.TSTInfo{GenTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	tok, err := NewFromParsed(tstInfo, sd, []byte("raw-der-bytes"), TypeSignature)
	if err != nil {
		t.Fatalf("NewFromParsed: %v", err)
	}
	return tok, cert
}

func TestCheckIsSignedByValid(t *testing.T) {
	tok, cert := buildSignedToken(t, []byte("tst info content"))
	candidate := x509token.New(cert)

	validity, err := tok.CheckIsSignedBy(candidate)
	if err != nil {
		t.Fatalf("CheckIsSignedBy: %v", err)
	}
	if validity != model.SignatureValidityValid {
		t.Fatalf("validity = %v, want VALID", validity)
	}
	if tok.SignerDN() != cert.Subject.String() {
		t.Fatalf("SignerDN() = %q, want %q", tok.SignerDN(), cert.Subject.String())
	}
}

func TestCheckIsSignedByWrongCandidate(t *testing.T) {
	tok, _ := buildSignedToken(t, []byte("tst info content"))
	_, otherCert := rsaSignerCert(t)
	candidate := x509token.New(otherCert)

	validity, err := tok.CheckIsSignedBy(candidate)
	if err != nil {
		t.Fatalf("CheckIsSignedBy: %v", err)
	}
	if validity != model.SignatureValidityInvalid {
		t.Fatalf("validity = %v, want INVALID for a candidate whose key did not produce the signature", validity)
	}
}
