package cryptoverify

import (
	"encoding/asn1"

	"github.com/mranest/dss/cms"
	"github.com/mranest/dss/model"
)

// digestOIDToAlgorithm resolves a PSS hash OID through
// model.DigestAlgorithmForOID; DecodePSSParameters uses it for the
// hashAlgorithm field.
func digestOIDToAlgorithm(oid asn1.ObjectIdentifier) model.DigestAlgorithm {
	return model.DigestAlgorithmForOID(oid)
}

// DecodePSSParameters decodes an RSASSA-PSS AlgorithmIdentifier's
// parameters block into a model.SignatureAlgorithm, the step spec.md
// §4.2(4) and scenario S2 require when a TSA signer's encryption OID is
// id-RSASSA-PSS. Defaults follow RFC 4055 §3.1 (SHA-1/MGF1-SHA-1/20-byte
// salt) when a sub-field is omitted, the same defaulting the ASN.1 tags
// in cms.RSASSAPSSParams already encode.
func DecodePSSParameters(params asn1.RawValue) (model.SignatureAlgorithm, error) {
	var pss cms.RSASSAPSSParams
	if len(params.FullBytes) > 0 {
		if _, err := asn1.Unmarshal(params.FullBytes, &pss); err != nil {
			return model.SignatureAlgorithm{}, model.NewParseError("RSASSA-PSS parameters", err)
		}
	}

	digestAlg := model.DigestSHA1
	if len(pss.HashAlgorithm.Algorithm) > 0 {
		if a := digestOIDToAlgorithm(pss.HashAlgorithm.Algorithm); a != model.DigestUnknown {
			digestAlg = a
		}
	}

	saltLen := pss.SaltLength
	if saltLen == 0 {
		saltLen = 20
	}

	return model.SignatureAlgorithm{
		Encryption: model.EncryptionRSASSAPSS,
		Digest:     digestAlg,
		MGF:        model.MGF1,
		SaltLength: saltLen,
	}, nil
}
