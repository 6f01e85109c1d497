// Package cadesbackend implements signature.Backend for CAdES: a CMS
// SignedData envelope whose SignerInfo carries the AdES signed
// attributes (RFC 5126), grounded on the teacher's sign/cms.CMSBuilder
// wire format and sign/ades.go's CAdES attribute OID table, adapted here
// for verification rather than production.
package cadesbackend

import (
	"bytes"
	"encoding/asn1"

	"github.com/mranest/dss/cms"
	"github.com/mranest/dss/model"
)

// Backend is the CAdES realization of signature.Backend. A parser builds
// one per embedded SignerInfo it finds in a CMS SignedData envelope.
type Backend struct {
	signedData       *cms.ParsedSignedData
	signerInfo       cms.ParsedSignerInfo
	detachedContent  []byte // set when EncapContentInfo.EContent is absent
	digestAlgorithm  model.DigestAlgorithm
	hasSignatureTS   bool // an unsigned id-aa-signatureTimeStampToken attribute is present (-T)
	hasCompleteCerts bool // id-aa-ets-certificateRefs / CertificateValues present (-LT)
	hasArchiveTS     bool // id-aa-ets-archiveTimestampV2/V3 present (-LTA)
}

// New builds a Backend from a parsed CMS SignedData and the specific
// SignerInfo this signature corresponds to (a SignedData may carry more
// than one SignerInfo for independently-applied signatures).
func New(signedData *cms.ParsedSignedData, signerInfo cms.ParsedSignerInfo, detachedContent []byte) *Backend {
	b := &Backend{
		signedData:      signedData,
		signerInfo:      signerInfo,
		detachedContent: detachedContent,
		digestAlgorithm: model.DigestAlgorithmForOID(signerInfo.DigestAlg.Algorithm),
	}
	for _, a := range signerInfo.UnsignedAttrs {
		switch {
		case a.Type.Equal(oidSignatureTimeStampToken):
			b.hasSignatureTS = true
		case a.Type.Equal(cms.OIDCompleteCertRefs), a.Type.Equal(cms.OIDCertificateValues):
			b.hasCompleteCerts = true
		case a.Type.Equal(oidArchiveTimestampV2), a.Type.Equal(oidArchiveTimestampV3):
			b.hasArchiveTS = true
		}
	}
	return b
}

var (
	oidSignatureTimeStampToken = cms.OIDTimeStampToken
	oidArchiveTimestampV2      = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 16, 2, 27}
	oidArchiveTimestampV3      = asn1.ObjectIdentifier{0, 4, 0, 1733, 2, 4, 1}
)

// DataToBeSigned returns the bytes CAdES actually signs: the
// DER-encoded SET OF Attribute re-tagged from the SEQUENCE asn1.Marshal
// produces (cms.ParsedSignerInfo.SignedAttrsDER), or — for the rare
// signed-attributes-less SignerInfo — the encapsulated/detached content
// digest input directly.
func (b *Backend) DataToBeSigned() ([]byte, error) {
	if len(b.signerInfo.SignedAttrsDER) > 0 {
		return b.signerInfo.SignedAttrsDER, nil
	}
	if len(b.signedData.EContent) > 0 {
		return b.signedData.EContent, nil
	}
	if len(b.detachedContent) > 0 {
		return b.detachedContent, nil
	}
	return nil, errMissingContent{}
}

// ValidateStructure reports whether the SignerInfo carries the one
// structural property every CAdES-BASELINE-B signature must: a
// message-digest signed attribute. Anything past that (policy
// well-formedness, commitment-type shape) is the caller's concern.
func (b *Backend) ValidateStructure() string {
	for _, a := range b.signerInfo.SignedAttrs {
		if a.Type.Equal(cms.OIDMessageDigest) {
			return ""
		}
	}
	return "SignerInfo has no signed message-digest attribute"
}

// SignatureLevels returns the CAdES baseline ladder, strictly ascending.
func (b *Backend) SignatureLevels() []model.SignatureLevel {
	return []model.SignatureLevel{
		model.LevelCAdES_BASELINE_B,
		model.LevelCAdES_BASELINE_T,
		model.LevelCAdES_BASELINE_LT,
		model.LevelCAdES_BASELINE_LTA,
	}
}

// IsDataForSignatureLevelPresent reports whether the structural element
// each CAdES baseline level requires is present: -B needs a
// message-digest signed attribute, -T an embedded signature timestamp,
// -LT embedded certificate references or values (revocation attributes
// are not consulted), -LTA an archive timestamp.
func (b *Backend) IsDataForSignatureLevelPresent(level model.SignatureLevel) bool {
	switch level {
	case model.LevelCAdES_BASELINE_B:
		return b.ValidateStructure() == ""
	case model.LevelCAdES_BASELINE_T:
		return b.hasSignatureTS
	case model.LevelCAdES_BASELINE_LT:
		return b.hasCompleteCerts
	case model.LevelCAdES_BASELINE_LTA:
		return b.hasArchiveTS
	default:
		return false
	}
}

// MessageDigest returns the CAdES message-digest signed attribute, the
// digest of the signed content this signature covers.
func (b *Backend) MessageDigest() ([]byte, bool) {
	return messageDigestAttr(b.signerInfo.SignedAttrs)
}

// VerifyMessageImprint reports whether the signed message-digest
// attribute matches the digest of content under the SignerInfo's own
// digest algorithm — the CAdES half of reference validation (the other
// half, signature-over-DTBSR, is signature.CheckSignatureIntegrity).
func (b *Backend) VerifyMessageImprint(content []byte, engine interface {
	Digest(alg model.DigestAlgorithm, data []byte) ([]byte, error)
}) (bool, error) {
	expected, ok := b.MessageDigest()
	if !ok {
		return false, errNoMessageDigest{}
	}
	actual, err := engine.Digest(b.digestAlgorithm, content)
	if err != nil {
		return false, err
	}
	return bytes.Equal(expected, actual), nil
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

type errMissingContent struct{}

func (errMissingContent) Error() string {
	return "CAdES signature has neither encapsulated content nor supplied detached content"
}

type errNoMessageDigest struct{}

func (errNoMessageDigest) Error() string { return "SignerInfo has no message-digest signed attribute" }
