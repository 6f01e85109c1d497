// Package cryptoverify is the explicit CryptoBackend handle spec.md's
// Design Notes call for ("replace [a] process-wide provider name] with an
// explicit CryptoBackend handle passed into the verifier at
// construction; sessions may carry different backends"). It realizes
// spec.md §6's crypto verifier contract: given a public key, a signature
// algorithm (OID + optional PSS params), signed data and a signature,
// report whether the signature is valid.
package cryptoverify

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"

	"github.com/mranest/dss/model"
)

// Backend is the capability TimestampToken.CheckIsSignedBy and
// Signature.CheckSignatureIntegrity depend on. A Backend is a value, not a
// singleton: spec.md's design notes require that different validation
// sessions be able to carry different backends (e.g. one backed by an
// HSM, one purely in-process).
type Backend interface {
	// Verify reports whether sig is a valid signature over signedData
	// under pub using alg. A returned error is a crypto backend fault
	// (spec.md §7): the algorithm could not even be attempted, as
	// opposed to a false return, which is an evidential "signature
	// invalid" outcome.
	Verify(pub crypto.PublicKey, alg model.SignatureAlgorithm, signedData, sig []byte) (bool, error)
}

// DefaultBackend verifies entirely in-process using the stdlib RSA, ECDSA
// and Ed25519 implementations, the way the teacher's sign/cms.verifySignature
// does for the one algorithm it supports — extended here to RSA
// (PKCS#1 v1.5), RSASSA-PSS, ECDSA and Ed25519. Any other
// model.EncryptionAlgorithm (DSA included) yields a CryptoBackendFault.
type DefaultBackend struct{}

// New returns the default in-process Backend.
func New() Backend { return DefaultBackend{} }

func cryptoHashFor(alg model.DigestAlgorithm) (crypto.Hash, error) {
	switch alg {
	case model.DigestSHA1:
		return crypto.SHA1, nil
	case model.DigestSHA224:
		return crypto.SHA224, nil
	case model.DigestSHA256:
		return crypto.SHA256, nil
	case model.DigestSHA384:
		return crypto.SHA384, nil
	case model.DigestSHA512:
		return crypto.SHA512, nil
	case model.DigestMD5:
		return crypto.MD5, nil
	default:
		return 0, model.NewCryptoBackendFault("cryptoverify", errUnsupportedDigestForVerify{alg})
	}
}

// Verify implements Backend.
func (DefaultBackend) Verify(pub crypto.PublicKey, alg model.SignatureAlgorithm, signedData, sig []byte) (bool, error) {
	switch alg.Encryption {
	case model.EncryptionRSA:
		return verifyRSAPKCS1(pub, alg.Digest, signedData, sig)
	case model.EncryptionRSASSAPSS:
		return verifyRSAPSS(pub, alg, signedData, sig)
	case model.EncryptionECDSA:
		return verifyECDSA(pub, alg.Digest, signedData, sig)
	case model.EncryptionEd25519:
		return verifyEd25519(pub, signedData, sig)
	default:
		return false, model.NewCryptoBackendFault("cryptoverify", errUnsupportedEncryption{alg.Encryption})
	}
}

func digestOf(hashAlg crypto.Hash, data []byte) []byte {
	h := hashAlg.New()
	h.Write(data)
	return h.Sum(nil)
}

func verifyRSAPKCS1(pub crypto.PublicKey, digestAlg model.DigestAlgorithm, signedData, sig []byte) (bool, error) {
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return false, model.NewCryptoBackendFault("cryptoverify", errKeyTypeMismatch{"RSA", pub})
	}
	hashAlg, err := cryptoHashFor(digestAlg)
	if err != nil {
		return false, err
	}
	digest := digestOf(hashAlg, signedData)
	err = rsa.VerifyPKCS1v15(rsaPub, hashAlg, digest, sig)
	return err == nil, nil
}

func verifyRSAPSS(pub crypto.PublicKey, alg model.SignatureAlgorithm, signedData, sig []byte) (bool, error) {
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return false, model.NewCryptoBackendFault("cryptoverify", errKeyTypeMismatch{"RSA", pub})
	}
	hashAlg, err := cryptoHashFor(alg.Digest)
	if err != nil {
		return false, err
	}
	digest := digestOf(hashAlg, signedData)
	opts := &rsa.PSSOptions{SaltLength: alg.SaltLength, Hash: hashAlg}
	if opts.SaltLength == 0 {
		opts.SaltLength = rsa.PSSSaltLengthAuto
	}
	err = rsa.VerifyPSS(rsaPub, hashAlg, digest, sig, opts)
	return err == nil, nil
}

func verifyECDSA(pub crypto.PublicKey, digestAlg model.DigestAlgorithm, signedData, sig []byte) (bool, error) {
	ecPub, ok := pub.(*ecdsa.PublicKey)
	if !ok {
		return false, model.NewCryptoBackendFault("cryptoverify", errKeyTypeMismatch{"ECDSA", pub})
	}
	hashAlg, err := cryptoHashFor(digestAlg)
	if err != nil {
		return false, err
	}
	digest := digestOf(hashAlg, signedData)
	return ecdsa.VerifyASN1(ecPub, digest, sig), nil
}

func verifyEd25519(pub crypto.PublicKey, signedData, sig []byte) (bool, error) {
	edPub, ok := pub.(ed25519.PublicKey)
	if !ok {
		return false, model.NewCryptoBackendFault("cryptoverify", errKeyTypeMismatch{"Ed25519", pub})
	}
	return ed25519.Verify(edPub, signedData, sig), nil
}

type errUnsupportedDigestForVerify struct{ alg model.DigestAlgorithm }

func (e errUnsupportedDigestForVerify) Error() string {
	return "unsupported digest algorithm for verification: " + e.alg.String()
}

type errUnsupportedEncryption struct{ alg model.EncryptionAlgorithm }

func (e errUnsupportedEncryption) Error() string {
	return "unsupported encryption algorithm: " + e.alg.String()
}

type errKeyTypeMismatch struct {
	want string
	got  crypto.PublicKey
}

func (e errKeyTypeMismatch) Error() string {
	return "public key is not " + e.want
}
