// Package digest is the core's digest engine (spec.md §6): digest(bytes,
// algorithm) and digest_stream(document, algorithm). It is deliberately
// the one place hashing happens, so that every message-imprint check and
// DTBSR recomputation goes through the same algorithm table.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"io"

	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"

	"github.com/mranest/dss/model"
)

// ErrUnsupportedDigestAlgorithm is returned for algorithms named in
// model.DigestAlgorithm's OID table but without a usable Go implementation
// in the dependency graph (Whirlpool), or for model.DigestUnknown.
var ErrUnsupportedDigestAlgorithm = model.NewCryptoBackendFault("digest", errUnsupportedDigestAlgorithm{})

type errUnsupportedDigestAlgorithm struct{}

func (errUnsupportedDigestAlgorithm) Error() string { return "unsupported digest algorithm" }

// Engine is the capability the core consumes wherever spec.md calls for
// digest / digest_stream. The default implementation is stateless; it
// exists as an interface so tests and HSM-backed deployments can swap in
// a different hasher (e.g. one that offloads to a crypto module).
type Engine interface {
	Digest(alg model.DigestAlgorithm, data []byte) ([]byte, error)
	DigestStream(alg model.DigestAlgorithm, r io.Reader) ([]byte, error)
}

// StdEngine is the default Engine, built entirely from stdlib and
// golang.org/x/crypto hash implementations.
type StdEngine struct{}

// New returns the default digest Engine.
func New() Engine { return StdEngine{} }

func newHasher(alg model.DigestAlgorithm) (hash.Hash, error) {
	switch alg {
	case model.DigestMD5:
		return md5.New(), nil
	case model.DigestSHA1:
		return sha1.New(), nil
	case model.DigestSHA224:
		return sha256.New224(), nil
	case model.DigestSHA256:
		return sha256.New(), nil
	case model.DigestSHA384:
		return sha512.New384(), nil
	case model.DigestSHA512:
		return sha512.New(), nil
	case model.DigestSHA3_256:
		return sha3.New256(), nil
	case model.DigestSHA3_384:
		return sha3.New384(), nil
	case model.DigestSHA3_512:
		return sha3.New512(), nil
	case model.DigestRIPEMD160:
		return ripemd160.New(), nil
	default:
		return nil, ErrUnsupportedDigestAlgorithm
	}
}

// Digest hashes data with alg.
func (StdEngine) Digest(alg model.DigestAlgorithm, data []byte) ([]byte, error) {
	h, err := newHasher(alg)
	if err != nil {
		return nil, err
	}
	h.Write(data)
	return h.Sum(nil), nil
}

// DigestStream hashes the full contents of r with alg without buffering
// it in memory, for the "arbitrary timestamped content" case of
// TimestampToken.MatchData where the document may be large (spec.md §4.2).
func (StdEngine) DigestStream(alg model.DigestAlgorithm, r io.Reader) ([]byte, error) {
	h, err := newHasher(alg)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(h, r); err != nil {
		return nil, model.NewCryptoBackendFault("DigestStream", err)
	}
	return h.Sum(nil), nil
}
