package timestamp

import (
	"bytes"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/hex"
	"fmt"
	"io"
	"sync"

	"github.com/mranest/dss/clock"
	"github.com/mranest/dss/cms"
	"github.com/mranest/dss/corelog"
	"github.com/mranest/dss/cryptoverify"
	"github.com/mranest/dss/digest"
	"github.com/mranest/dss/model"
	"github.com/mranest/dss/source"
	"github.com/mranest/dss/x509token"
)

// Token is one parsed, verifiable RFC 3161 timestamp (spec.md §4.2). It
// embeds model.Token for identity and the signer-verification protocol,
// and implements model.SignerHook itself so CheckIsSignedBy drives the
// two-stage strict-then-CMS strategy of P8.
type Token struct {
	model.Token

	raw             []byte
	typ             Type
	archiveType     ArchiveType
	location        Location
	timestampedRefs []Reference

	tstInfo    *cms.TSTInfo
	signedData *cms.ParsedSignedData

	certSource *CertificateSource
	crlSource  *source.CRLSource
	ocspSource *source.OCSPSource

	parser  cms.Parser
	backend cryptoverify.Backend
	engine  digest.Engine
	logger  corelog.Logger
	pool    *x509token.CertificatePool

	recordVerificationPath bool

	mu sync.Mutex

	// match_data state machine (P2): processed tracks whether match_data
	// has ever been called; the intact/found fields are meaningless until
	// it has, and reading them first is a contract violation.
	processed               bool
	messageImprintDataFound bool
	messageImprintIntact    bool

	// verificationPath records which half of the two-stage strategy (P8)
	// produced a VALID outcome, when RecordVerificationPath (the
	// resolution of spec.md §9's first Open Question) is enabled.
	verificationPath string

	domHashCode    int64
	domHashCodeSet bool
}

// Option configures optional construction metadata and collaborators.
type Option func(*Token)

// WithLocation tags which container family the timestamp was read out
// of (spec.md §4.3's notion of where a timestamp lives).
func WithLocation(l Location) Option { return func(t *Token) { t.location = l } }

// WithArchiveType tags the archive-timestamp attribute version, for
// timestamps of Type == TypeArchive.
func WithArchiveType(a ArchiveType) Option { return func(t *Token) { t.archiveType = a } }

// WithTimestampedReferences records, at construction time, which
// artifacts (by dss_id) this timestamp is understood to cover.
func WithTimestampedReferences(refs []Reference) Option {
	return func(t *Token) { t.timestampedRefs = append([]Reference(nil), refs...) }
}

// WithCertificatePool routes every certificate this token extracts
// through pool, so that duplicates across signatures and timestamps
// collapse to one CertificateToken instance (spec.md §3, P6).
func WithCertificatePool(pool *x509token.CertificatePool) Option {
	return func(t *Token) { t.pool = pool }
}

// WithParser overrides the CMS parser, mainly for tests that inject
// malformed structures without hand-building DER.
func WithParser(p cms.Parser) Option { return func(t *Token) { t.parser = p } }

// WithCryptoBackend overrides the crypto verifier (e.g. an HSM-backed
// cryptoverify.PKCS11Backend).
func WithCryptoBackend(b cryptoverify.Backend) Option { return func(t *Token) { t.backend = b } }

// WithDigestEngine overrides the digest engine used by MatchData.
func WithDigestEngine(e digest.Engine) Option { return func(t *Token) { t.engine = e } }

// WithLogger overrides the logger used for message-imprint-mismatch
// WARN events (spec.md §7).
func WithLogger(l corelog.Logger) Option { return func(t *Token) { t.logger = l } }

// WithRecordVerificationPath enables recording which half of the
// two-stage strategy produced a VALID CheckIsSignedBy outcome.
func WithRecordVerificationPath(enabled bool) Option {
	return func(t *Token) { t.recordVerificationPath = enabled }
}

func newToken(typ Type, opts []Option) *Token {
	t := &Token{
		typ:     typ,
		parser:  cms.NewParser(),
		backend: cryptoverify.New(),
		engine:  digest.New(),
		logger:  corelog.NewNull(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// New is construction input 1 of spec.md §4.2: raw CMS bytes plus a
// timestamp Type, with optional location/references/pool/collaborators.
// It returns a *model.ParseError if der is not a well-formed CMS
// envelope carrying a valid RFC 3161 TSTInfo; the token is never
// constructed on parse failure.
func New(der []byte, typ Type, opts ...Option) (*Token, error) {
	t := newToken(typ, opts)

	tstInfo, sd, err := t.parser.ParseTSTInfo(der)
	if err != nil {
		return nil, err
	}
	t.raw = der
	t.tstInfo = tstInfo
	t.signedData = sd

	t.finishConstruction()
	return t, nil
}

// NewFromParsed is construction input 2: an already-parsed RFC 3161
// TSTInfo/SignedData pair (for example, one reused from a prior parse of
// the enclosing signature's unsigned attributes, so it is not re-decoded
// from bytes), plus der for identity and DER-encoding accessors.
func NewFromParsed(tstInfo *cms.TSTInfo, sd *cms.ParsedSignedData, der []byte, typ Type, opts ...Option) (*Token, error) {
	if tstInfo == nil || sd == nil {
		return nil, model.NewParseError("RFC 3161 TimeStampToken", fmt.Errorf("nil TSTInfo or SignedData"))
	}
	t := newToken(typ, opts)
	t.raw = der
	t.tstInfo = tstInfo
	t.signedData = sd
	t.finishConstruction()
	return t, nil
}

// NewFromPDFRevision is construction input 3: a PDF revision's DocTimeStamp
// CMS signed-data bytes (the PAdES path, spec.md §4.2 construction input
// 3). It is New with Location forced to LocationDoc and Type forced to
// TypeDocument, since a PDF revision wrapper can only ever carry a
// document timestamp.
func NewFromPDFRevision(cmsDER []byte, opts ...Option) (*Token, error) {
	opts = append(opts, WithLocation(LocationDoc))
	return New(cmsDER, TypeDocument, opts...)
}

func (t *Token) finishConstruction() {
	id := model.BuildTokenIdentifier(t.raw)

	t.certSource = NewCertificateSource()
	t.crlSource = source.NewCRLSource(x509token.SourceTimestamp)
	t.ocspSource = source.NewOCSPSource(x509token.SourceTimestamp)

	for _, cert := range t.signedData.Certificates {
		tok := x509token.New(cert)
		if t.pool != nil {
			tok = t.pool.Add(tok, x509token.SourceTimestamp)
		}
		t.certSource.Add(tok)
	}
	for _, der := range t.signedData.CRLs {
		t.crlSource.Add(der)
	}

	issuerDN := ""
	if len(t.signedData.SignerInfos) > 0 {
		issuerDN = issuerDNOf(t.signedData.SignerInfos[0].SID)
	}

	var creationDate int64
	if !t.tstInfo.GenTime.IsZero() {
		creationDate = t.tstInfo.GenTime.Unix()
	}

	t.Token.Init(id, issuerDN, creationDate)
}

func issuerDNOf(sid cms.IssuerAndSerialNumber) string {
	var rdn pkix.RDNSequence
	if _, err := asn1.Unmarshal(sid.Issuer.FullBytes, &rdn); err != nil {
		return ""
	}
	var name pkix.Name
	name.FillFromRDNSequence(&rdn)
	return name.String()
}

// Type returns the timestamp's classification (spec.md §4.3's bucket key).
func (t *Token) Type() Type { return t.typ }

// ArchiveType returns the archive-timestamp attribute version, meaningful
// only when Type() == TypeArchive.
func (t *Token) ArchiveType() ArchiveType { return t.archiveType }

// Location returns which container family this timestamp was read from.
func (t *Token) Location() Location { return t.location }

// TimestampedReferences returns the artifacts this timestamp is recorded
// as covering.
func (t *Token) TimestampedReferences() []Reference {
	return append([]Reference(nil), t.timestampedRefs...)
}

// GenerationTime returns the TSTInfo.genTime field.
func (t *Token) GenerationTime() (int64, bool) {
	if t.tstInfo.GenTime.IsZero() {
		return 0, false
	}
	return t.tstInfo.GenTime.Unix(), true
}

// IsGenerationTimeInFuture reports whether this timestamp's genTime is
// later than c's current time, which never legitimately happens for a
// TSA-issued token: a "future" generation time means either clock skew
// beyond what any profile tolerates, or a forged TSTInfo. Callers decide
// the tolerance; this reports the raw ordering.
func (t *Token) IsGenerationTimeInFuture(c clock.Clock) bool {
	genTime, ok := t.GenerationTime()
	if !ok {
		return false
	}
	return genTime > c.Now().Unix()
}

// MessageImprintAlgorithm returns the digest algorithm the TSTInfo's
// MessageImprint was computed with, or model.DigestUnknown if the OID is
// not recognized.
func (t *Token) MessageImprintAlgorithm() model.DigestAlgorithm {
	return model.DigestAlgorithmForOID(t.tstInfo.MessageImprint.HashAlgorithm.Algorithm)
}

// MessageImprintValue returns the raw digest bytes embedded in the
// TSTInfo's MessageImprint.
func (t *Token) MessageImprintValue() []byte {
	return append([]byte(nil), t.tstInfo.MessageImprint.HashedMessage...)
}

// DEREncoding returns the full RFC 3161 TimeStampToken DER bytes this
// token was constructed from.
func (t *Token) DEREncoding() []byte { return append([]byte(nil), t.raw...) }

// CertificateSource returns the certificates embedded in this token's CMS
// structure.
func (t *Token) CertificateSource() *CertificateSource { return t.certSource }

// CRLSource returns the CRLs embedded in this token's CMS structure.
func (t *Token) CRLSource() *source.CRLSource { return t.crlSource }

// OCSPSource returns the OCSP responses embedded in this token's CMS
// structure.
func (t *Token) OCSPSource() *source.OCSPSource { return t.ocspSource }

// UnsignedAttributes returns the first SignerInfo's unsigned attributes,
// where nested artifacts such as embedded TSA certificates
// (CertificateValues) live.
func (t *Token) UnsignedAttributes() []cms.Attribute {
	if len(t.signedData.SignerInfos) == 0 {
		return nil
	}
	return t.signedData.SignerInfos[0].UnsignedAttrs
}

// SignerIdentifierInfo reports which IssuerAndSerialNumber the embedded
// SignerInfo actually used to identify its signer (Supplemented Feature
// 1, ported from TimestampToken.getUsedIssuerSerialInfo) — evidence a
// caller can inspect when a CheckIsSignedBy candidate match fails.
func (t *Token) SignerIdentifierInfo() (issuerDN string, serialHex string, ok bool) {
	if len(t.signedData.SignerInfos) == 0 {
		return "", "", false
	}
	sid := t.signedData.SignerInfos[0].SID
	serial := ""
	if sid.SerialNumber != nil {
		serial = hex.EncodeToString(sid.SerialNumber.Bytes())
	}
	return issuerDNOf(sid), serial, true
}

// SetDOMHashCode carries forward the original's DOM identity marker
// (Supplemented Feature 3): spec.md's Open Questions explicitly defer its
// computation to the XML layer, so the core only stores and returns
// whatever a caller sets, never computing one itself.
func (t *Token) SetDOMHashCode(v int64) {
	t.domHashCode = v
	t.domHashCodeSet = true
}

// DOMHashCode returns the value set by SetDOMHashCode, if any.
func (t *Token) DOMHashCode() (int64, bool) { return t.domHashCode, t.domHashCodeSet }

// String renders a short human-readable dump (Supplemented Feature 3b)
// for debug logging, not report rendering.
func (t *Token) String() string {
	genTime, _ := t.GenerationTime()
	return fmt.Sprintf("TimestampToken{id=%s type=%s location=%s genTime=%d validity=%s}",
		t.ID(), t.typ, t.location, genTime, t.SignatureValidity())
}

// MatchData computes digest(document, message_imprint.algorithm) and
// compares it to the embedded MessageImprint value (spec.md §4.2). It
// always marks the token processed, satisfying P2's precondition for
// IsMessageImprintDataIntact.
func (t *Token) MatchData(document io.Reader) (bool, error) {
	return t.matchData(document, false)
}

// MatchDataSuppressWarnings is MatchData's variant that silences the
// WARN-level mismatch log (spec.md §4.2's suppress_match_warnings flag);
// the comparison result is identical, only the diagnostic side effect
// differs.
func (t *Token) MatchDataSuppressWarnings(document io.Reader) (bool, error) {
	return t.matchData(document, true)
}

func (t *Token) matchData(document io.Reader, suppressWarnings bool) (bool, error) {
	alg := t.MessageImprintAlgorithm()
	digestValue, err := t.engine.DigestStream(alg, document)
	if err != nil {
		return false, err
	}
	return t.recordMatch(true, digestValue, suppressWarnings)
}

// MatchDataBytes is MatchData's byte-compare variant (spec.md §4.2
// "match_data(expected_bytes)"): expectedDigest is compared directly
// against the embedded imprint without re-hashing, for callers that
// already hold a precomputed digest (hash-only validation).
func (t *Token) MatchDataBytes(expectedDigest []byte) (bool, error) {
	return t.recordMatch(expectedDigest != nil, expectedDigest, false)
}

// MatchDataBytesSuppressWarnings is MatchDataBytes with the mismatch log
// silenced.
func (t *Token) MatchDataBytesSuppressWarnings(expectedDigest []byte) (bool, error) {
	return t.recordMatch(expectedDigest != nil, expectedDigest, true)
}

func (t *Token) recordMatch(dataFound bool, digestValue []byte, suppressWarnings bool) (bool, error) {
	intact := dataFound && bytes.Equal(digestValue, t.tstInfo.MessageImprint.HashedMessage)

	t.mu.Lock()
	t.processed = true
	t.messageImprintDataFound = dataFound
	t.messageImprintIntact = intact
	t.mu.Unlock()

	if !intact && !suppressWarnings {
		t.logger.Warn("timestamp message imprint mismatch token={Id} found={Found}", t.ID(), dataFound)
	}
	return intact, nil
}

// IsMessageImprintDataFound reports whether the last MatchData call was
// given non-nil comparison data. Calling this before any MatchData call
// is a contract violation (P2).
func (t *Token) IsMessageImprintDataFound() (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.processed {
		return false, model.NewContractViolation("IsMessageImprintDataFound", "MatchData has not been called yet")
	}
	return t.messageImprintDataFound, nil
}

// IsMessageImprintDataIntact reports the outcome of the last MatchData
// call. Calling this before any MatchData call is a contract violation
// (P2, spec.md §5's ordering guarantee).
func (t *Token) IsMessageImprintDataIntact() (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.processed {
		return false, model.NewContractViolation("IsMessageImprintDataIntact", "MatchData has not been called yet")
	}
	return t.messageImprintIntact, nil
}

// VerificationPath reports which half of the two-stage strategy (P8)
// produced the last VALID CheckIsSignedBy outcome, when
// WithRecordVerificationPath(true) was set at construction. Returns ""
// if recording is disabled or no VALID outcome has been recorded yet.
func (t *Token) VerificationPath() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.verificationPath
}
