package timestamp

import (
	"bytes"
	"encoding/asn1"
	"fmt"

	"github.com/mranest/dss/cms"
	"github.com/mranest/dss/cryptoverify"
	"github.com/mranest/dss/model"
	"github.com/mranest/dss/x509token"
)

// CheckIsSignedBy verifies that candidate is the TSA that produced this
// timestamp, per spec.md §4.2's signer-verification contract. It
// delegates to model.Token.CheckIsSignedBy, which calls back into
// VerifySignedBy below and enforces P4 idempotence.
func (t *Token) CheckIsSignedBy(candidate *x509token.CertificateToken) (model.SignatureValidity, error) {
	return t.Token.CheckIsSignedBy(t, candidate)
}

// VerifySignedBy implements model.SignerHook. Step 1: locate the
// SignerInfo matching candidate (see matchingSignerInfo).
// Step 2/3: attempt strict RFC 3161 validation, falling back to pure CMS
// signature verification over the same SignerInfo (P8). Step 4: derive
// the concrete SignatureAlgorithm, decoding RSASSA-PSS parameters when
// the signer's encryption OID calls for it.
func (t *Token) VerifySignedBy(candidate model.SigningCertificateCandidate) (valid bool, signerDN string, alg model.SignatureAlgorithm, reason string, err error) {
	cert, ok := candidate.(*x509token.CertificateToken)
	if !ok {
		return false, "", model.SignatureAlgorithm{}, "", model.NewCryptoBackendFault(
			"TimestampToken.CheckIsSignedBy", fmt.Errorf("candidate is not an x509token.CertificateToken"))
	}

	si, found := t.matchingSignerInfo(cert)
	if !found {
		return false, "", model.SignatureAlgorithm{}, "no embedded SignerInfo matches the candidate certificate's issuer+serial or subject-key-identifier", nil
	}

	alg, algErr := t.signatureAlgorithmFor(si)
	if algErr != nil {
		return false, "", model.SignatureAlgorithm{}, "", algErr
	}

	pub := cert.PublicKey()

	strictOK, strictErr := t.verifyStrictTSP(si, pub, alg)
	if strictOK {
		t.recordVerificationPathIfEnabled("strict")
		return true, cert.SubjectDN(), alg, "", nil
	}

	cmsOK, cmsErr := t.verifyCMSSignature(si, pub, alg)
	if cmsErr != nil {
		return false, "", model.SignatureAlgorithm{}, "", cmsErr
	}
	if cmsOK {
		t.recordVerificationPathIfEnabled("cms-fallback")
		return true, cert.SubjectDN(), alg, "", nil
	}

	reason = "strict RFC 3161 validation failed"
	if strictErr != nil {
		reason = fmt.Sprintf("strict RFC 3161 validation failed: %v", strictErr)
	}
	return false, "", model.SignatureAlgorithm{}, reason, nil
}

func (t *Token) recordVerificationPathIfEnabled(path string) {
	if !t.recordVerificationPath {
		return
	}
	t.mu.Lock()
	t.verificationPath = path
	t.mu.Unlock()
}

// matchingSignerInfo implements spec.md §4.2 step 1: match by serial
// number first (the SID's issuer name is not compared), then by
// subject-key-identifier, which matchesSubjectKeyIdentifier never
// reports as a match.
func (t *Token) matchingSignerInfo(cert *x509token.CertificateToken) (cms.ParsedSignerInfo, bool) {
	_, serial := cert.IssuerAndSerial()
	ski := cert.SubjectKeyIdentifier()

	for _, si := range t.signedData.SignerInfos {
		if si.SID.SerialNumber != nil && serial != nil && si.SID.SerialNumber.Cmp(serial) == 0 {
			return si, true
		}
		if len(ski) > 0 && matchesSubjectKeyIdentifier(si, ski) {
			return si, true
		}
	}
	return cms.ParsedSignerInfo{}, false
}

// matchesSubjectKeyIdentifier always reports false: SignerInfoRaw only
// models SID as IssuerAndSerialNumber (Go's asn1 package cannot express
// the SignerIdentifier CHOICE), so a subject-key-identifier-addressed
// SignerInfo would need a raw re-parse against the [0] IMPLICIT
// SubjectKeyIdentifier alternative, which no fixture in the retrieval
// pack exercises.
func matchesSubjectKeyIdentifier(si cms.ParsedSignerInfo, ski []byte) bool {
	return false
}

// verifyStrictTSP implements RFC 3161 §2.4.2 signer verification: the
// signature over the signed attributes, cross-checked against the
// message-digest attribute actually matching the encapsulated TSTInfo
// content. This is deliberately narrower than a full RFC 3161 profile
// validator — ETSI policy-level EKU/criticality enforcement stays a
// caller concern per spec.md's scope — but strict in the sense spec.md
// §4.2 cares about: a signed-attributes digest that disagrees with the
// actual TSTInfo content fails here even though it would still pass
// verifyCMSSignature's plain signature check.
func (t *Token) verifyStrictTSP(si cms.ParsedSignerInfo, pub any, alg model.SignatureAlgorithm) (bool, error) {
	if len(si.SignedAttrsDER) == 0 {
		return false, fmt.Errorf("SignerInfo has no signed attributes; RFC 3161 requires message-digest as a signed attribute")
	}

	expectedDigest, ok := messageDigestAttr(si.SignedAttrs)
	if !ok {
		return false, fmt.Errorf("SignerInfo signed attributes have no message-digest")
	}

	contentDigest, err := t.engine.Digest(alg.Digest, t.signedData.EContent)
	if err != nil {
		return false, err
	}
	if !bytes.Equal(contentDigest, expectedDigest) {
		return false, fmt.Errorf("signed message-digest attribute does not match TSTInfo content digest")
	}

	return t.backend.Verify(pub, alg, si.SignedAttrsDER, si.Signature)
}

// verifyCMSSignature is the fallback: plain CMS signature verification
// over the SignerInfo's signed attributes (or, if absent, the
// encapsulated content directly), without the TSTInfo-digest
// cross-check verifyStrictTSP performs. This is what historical
// timestamps that violate later RFC 3161 profile checks still pass
// (spec.md §4.2's stated rationale).
func (t *Token) verifyCMSSignature(si cms.ParsedSignerInfo, pub any, alg model.SignatureAlgorithm) (bool, error) {
	signedData := si.SignedAttrsDER
	if len(signedData) == 0 {
		signedData = t.signedData.EContent
	}
	return t.backend.Verify(pub, alg, signedData, si.Signature)
}

func messageDigestAttr(attrs []cms.Attribute) ([]byte, bool) {
	for _, a := range attrs {
		if !a.Type.Equal(cms.OIDMessageDigest) {
			continue
		}
		if len(a.Values) == 0 {
			return nil, false
		}
		var digest []byte
		if _, err := asn1.Unmarshal(a.Values[0].FullBytes, &digest); err != nil {
			return nil, false
		}
		return digest, true
	}
	return nil, false
}

// signatureAlgorithmFor implements spec.md §4.2 step 4: derive the
// concrete SignatureAlgorithm from the SignerInfo, decoding RSASSA-PSS
// parameters when the signature algorithm OID calls for it. The non-PSS
// OID table lives in cms.EncryptionDigestAlgorithm, shared with the
// CAdES backend so every CMS SignerInfo walker agrees on it.
func (t *Token) signatureAlgorithmFor(si cms.ParsedSignerInfo) (model.SignatureAlgorithm, error) {
	if si.SigAlg.Algorithm.Equal(cms.OIDRSAPSS) {
		return cryptoverify.DecodePSSParameters(si.SigAlg.Parameters)
	}
	return cms.EncryptionDigestAlgorithm(si)
}
