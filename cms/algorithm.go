package cms

import (
	"fmt"

	"github.com/mranest/dss/model"
)

// errUnrecognizedSignatureAlgorithm reports a SignerInfo's
// SignatureAlgorithm OID not present in this package's OID table.
type errUnrecognizedSignatureAlgorithm struct{ oid fmt.Stringer }

func (e errUnrecognizedSignatureAlgorithm) Error() string {
	return "unrecognized signature algorithm OID " + e.oid.String()
}

// EncryptionDigestAlgorithm derives the (EncryptionAlgorithm, DigestAlgorithm)
// pair for every non-PSS signature algorithm OID this package recognizes.
// Callers whose SigAlg is id-RSASSA-PSS must decode its parameters
// separately (see cryptoverify.DecodePSSParameters) since PSS carries its
// digest/MGF/salt-length in the AlgorithmIdentifier.Parameters, not in a
// fixed OID.
func EncryptionDigestAlgorithm(si ParsedSignerInfo) (model.SignatureAlgorithm, error) {
	digestAlg := model.DigestAlgorithmForOID(si.DigestAlg.Algorithm)

	switch {
	case si.SigAlg.Algorithm.Equal(OIDRSAEncryption),
		si.SigAlg.Algorithm.Equal(OIDSHA256WithRSA),
		si.SigAlg.Algorithm.Equal(OIDSHA384WithRSA),
		si.SigAlg.Algorithm.Equal(OIDSHA512WithRSA):
		return model.SignatureAlgorithm{Encryption: model.EncryptionRSA, Digest: digestAlg}, nil
	case si.SigAlg.Algorithm.Equal(OIDECDSAWithSHA256),
		si.SigAlg.Algorithm.Equal(OIDECDSAWithSHA384),
		si.SigAlg.Algorithm.Equal(OIDECDSAWithSHA512):
		return model.SignatureAlgorithm{Encryption: model.EncryptionECDSA, Digest: digestAlg}, nil
	case si.SigAlg.Algorithm.Equal(OIDEd25519):
		return model.SignatureAlgorithm{Encryption: model.EncryptionEd25519, Digest: digestAlg}, nil
	default:
		return model.SignatureAlgorithm{}, model.NewCryptoBackendFault(
			"cms.EncryptionDigestAlgorithm", errUnrecognizedSignatureAlgorithm{si.SigAlg.Algorithm})
	}
}
