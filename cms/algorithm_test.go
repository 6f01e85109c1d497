package cms

import (
	"encoding/asn1"
	"testing"

	"github.com/mranest/dss/model"
)

var (
	sha256OID = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 1}
	sha512OID = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 3}
)

func TestEncryptionDigestAlgorithm(t *testing.T) {
	cases := []struct {
		name       string
		sigAlg     AlgorithmIdentifier
		digestAlg  AlgorithmIdentifier
		wantEnc    model.EncryptionAlgorithm
		wantDigest model.DigestAlgorithm
	}{
		{
			name:       "RSA with SHA-256",
			sigAlg:     AlgorithmIdentifier{Algorithm: OIDSHA256WithRSA},
			digestAlg:  AlgorithmIdentifier{Algorithm: sha256OID},
			wantEnc:    model.EncryptionRSA,
			wantDigest: model.DigestSHA256,
		},
		{
			name:       "bare RSA encryption OID with separate digest",
			sigAlg:     AlgorithmIdentifier{Algorithm: OIDRSAEncryption},
			digestAlg:  AlgorithmIdentifier{Algorithm: sha256OID},
			wantEnc:    model.EncryptionRSA,
			wantDigest: model.DigestSHA256,
		},
		{
			name:       "ECDSA with SHA-256",
			sigAlg:     AlgorithmIdentifier{Algorithm: OIDECDSAWithSHA256},
			digestAlg:  AlgorithmIdentifier{Algorithm: sha256OID},
			wantEnc:    model.EncryptionECDSA,
			wantDigest: model.DigestSHA256,
		},
		{
			name:       "Ed25519",
			sigAlg:     AlgorithmIdentifier{Algorithm: OIDEd25519},
			digestAlg:  AlgorithmIdentifier{Algorithm: sha512OID},
			wantEnc:    model.EncryptionEd25519,
			wantDigest: model.DigestSHA512,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			si := ParsedSignerInfo{SigAlg: c.sigAlg, DigestAlg: c.digestAlg}
			got, err := EncryptionDigestAlgorithm(si)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Encryption != c.wantEnc {
				t.Errorf("Encryption = %v, want %v", got.Encryption, c.wantEnc)
			}
			if got.Digest != c.wantDigest {
				t.Errorf("Digest = %v, want %v", got.Digest, c.wantDigest)
			}
		})
	}
}

func TestEncryptionDigestAlgorithmUnrecognized(t *testing.T) {
	si := ParsedSignerInfo{
		SigAlg:    AlgorithmIdentifier{Algorithm: OIDRSAPSS},
		DigestAlg: AlgorithmIdentifier{Algorithm: sha256OID},
	}
	if _, err := EncryptionDigestAlgorithm(si); err == nil {
		t.Fatal("expected an error for RSASSA-PSS, which this function deliberately does not handle")
	}
}
