package model

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// Identifier is the dss_id scheme: a stable identifier derived from a
// token's DER encoding (spec.md §3, P1). Two tokens built from
// byte-identical DER share an Identifier because it is computed
// deterministically from the bytes, never from allocation order or a
// counter.
type Identifier string

// BuildTokenIdentifier derives the canonical Identifier for der. It is the
// concrete realization of the Token.build_token_identifier hook described
// in spec.md §4.1; every token kind (certificate, timestamp, …) calls this
// on its own DER encoding rather than inventing its own scheme, which is
// what makes P1 hold across token kinds for free.
func BuildTokenIdentifier(der []byte) Identifier {
	sum := sha256.Sum256(der)
	return Identifier("T-" + hex.EncodeToString(sum[:]))
}

// SigningCertificateCandidate is the minimal view of a candidate signer a
// Token needs in order to attempt CheckIsSignedBy: its DER encoding (for
// building a crypto verifier) and an opaque capability handle supplied by
// x509token.CertificateToken implementations. The core never depends on
// x509token directly from model to avoid an import cycle; callers pass in
// whatever satisfies this shape.
type SigningCertificateCandidate interface {
	DEREncoding() []byte
	SubjectDN() string
}

// SignerHook is the pair of subclass operations spec.md §4.1 requires of
// every concrete token kind. A concrete token embeds Token and supplies a
// SignerHook (usually itself) at construction.
type SignerHook interface {
	// VerifySignedBy performs the kind-specific cryptographic check
	// against candidate and reports the outcome plus, on VALID, the
	// signer DN and concrete SignatureAlgorithm; on INVALID, a non-empty
	// reason. A returned error is a non-evidential backend fault
	// (spec.md §7) and aborts the call without mutating token state.
	VerifySignedBy(candidate SigningCertificateCandidate) (valid bool, signerDN string, alg SignatureAlgorithm, reason string, err error)
}

// Token is the abstract base embedded by every concrete token kind
// (TimestampToken today; CertificateToken-like wrappers could reuse it).
// It owns the identity and signer-verification bookkeeping common to all
// of them per spec.md §4.1, enforcing idempotence (P4) by caching the
// first VALID outcome and refusing to let later calls overwrite it.
type Token struct {
	mu sync.Mutex

	id          Identifier
	issuerDN    string
	creationDate int64 // Unix seconds; 0 means unset.

	validity        SignatureValidity
	signatureAlg    SignatureAlgorithm
	invalidityReason string
	signerDN        string

	// checked records whether CheckIsSignedBy has ever completed for
	// this token, independent of outcome; used only internally to
	// decide whether a fresh VALID is allowed to overwrite the cached
	// fields (it never is, once VALID has been recorded — see P4).
	checked bool
}

// Init sets the identifier and issuer DN a concrete token kind computed
// at construction time. It is not safe to call after the token has been
// published to other goroutines.
func (t *Token) Init(id Identifier, issuerDN string, creationDate int64) {
	t.id = id
	t.issuerDN = issuerDN
	t.creationDate = creationDate
	t.validity = SignatureValidityUnknown
}

// ID returns the token's dss_id.
func (t *Token) ID() Identifier { return t.id }

// IssuerDN returns the issuer distinguished name recorded at construction.
func (t *Token) IssuerDN() string { return t.issuerDN }

// CreationDate returns the Unix timestamp recorded at construction, or 0
// if none was supplied.
func (t *Token) CreationDate() int64 { return t.creationDate }

// SignatureValidity returns the outcome of the most recent CheckIsSignedBy
// call, or SignatureValidityUnknown if it has never been called.
func (t *Token) SignatureValidity() SignatureValidity {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.validity
}

// SignatureAlgorithmUsed returns the concrete algorithm recorded on a VALID
// outcome; its zero value otherwise.
func (t *Token) SignatureAlgorithmUsed() SignatureAlgorithm {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.signatureAlg
}

// SignatureInvalidityReason returns the reason string recorded on an
// INVALID outcome, or "" otherwise.
func (t *Token) SignatureInvalidityReason() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.invalidityReason
}

// SignerDN returns the DN recorded on a VALID outcome, or "" otherwise.
func (t *Token) SignerDN() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.signerDN
}

// CheckIsSignedBy runs hook against candidate and records the outcome,
// per the Token base contract of spec.md §4.1. It is idempotent (P4): once
// a VALID outcome has been recorded, it is returned unconditionally on
// every later call, without re-running hook — a transient fault from a
// later call (e.g. an HSM hiccup) must never turn a permanent VALID back
// into an error or SignatureValidityUnknown.
//
// A non-nil error is a crypto-backend fault (spec.md §7): the token's
// cached fields are left untouched and the fault is returned to the
// caller rather than recorded as INVALID.
func (t *Token) CheckIsSignedBy(hook SignerHook, candidate SigningCertificateCandidate) (SignatureValidity, error) {
	t.mu.Lock()
	if t.checked && t.validity == SignatureValidityValid {
		// Permanent: a prior VALID is never downgraded, overwritten, or
		// even re-evaluated.
		defer t.mu.Unlock()
		return t.validity, nil
	}
	t.mu.Unlock()

	valid, signerDN, alg, reason, err := hook.VerifySignedBy(candidate)
	if err != nil {
		return SignatureValidityUnknown, NewCryptoBackendFault("CheckIsSignedBy", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.checked && t.validity == SignatureValidityValid {
		// A concurrent call already recorded VALID while hook ran unlocked.
		return t.validity, nil
	}

	t.checked = true
	if valid {
		t.validity = SignatureValidityValid
		t.signerDN = signerDN
		t.signatureAlg = alg
		t.invalidityReason = ""
	} else {
		t.validity = SignatureValidityInvalid
		t.invalidityReason = reason
	}
	return t.validity, nil
}
