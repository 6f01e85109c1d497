package signature

import (
	"sync"

	"github.com/mranest/dss/clock"
	"github.com/mranest/dss/cryptoverify"
	"github.com/mranest/dss/digest"
	"github.com/mranest/dss/model"
	"github.com/mranest/dss/source"
	"github.com/mranest/dss/timestamp"
	"github.com/mranest/dss/x509token"
)

// Signature is the single struct every signature form (XAdES, CAdES,
// PAdES) is represented as, holding every field spec.md §3's
// AdvancedSignature entity names. An external, format-specific parser
// constructs one per signature it finds and populates it via the setters
// below, supplying a Backend for the quarter of behavior that differs by
// format (spec.md §4.7). Once validated, a Signature is treated as a
// read-only evidence container.
type Signature struct {
	mu sync.Mutex

	id           model.Identifier
	daIdentifier string // XAdES only
	form         model.SignatureForm

	filename            string
	detachedContents    [][]byte
	containerContents   [][]byte
	manifestFiles       [][]byte
	manifestedDocuments map[string][]byte // ASiC-E: manifest entry name -> resolved document bytes

	providedSigningCertificate *x509token.CertificateToken

	encryptionAlgorithm    model.EncryptionAlgorithm
	digestAlgorithm        model.DigestAlgorithm
	maskGenerationFunction model.MaskGenerationFunction

	signingTime int64 // unix seconds; 0 means unset

	claimedSignerRoles   []SignerRole
	certifiedSignerRoles []SignerRole

	commitmentTypeIndications []CommitmentTypeIndication
	productionPlace           *ProductionPlace

	policyID string

	contentType       string
	mimeType          string
	contentIdentifier string
	contentHints      []ContentHint

	signatureValue     []byte
	messageDigestValue []byte // CAdES
	pdfRevision        []byte // PAdES

	referenceValidations      []ReferenceValidation
	structureValidationResult string

	signatureScopes []Scope

	counterSignatures []*Signature
	masterSignature   *Signature

	certificateSource *source.CertificateSource
	crlSource         *source.CRLSource
	ocspSource        *source.OCSPSource

	timestamps *timestamp.Source

	candidates         *Candidates
	signingCertToken   *x509token.CertificateToken
	cryptoVerification *SignatureCryptographicVerification

	policyResult *PolicyCheckResult

	hashOnly    bool
	docHashOnly bool

	backend       Backend
	engine        digest.Engine
	cryptoBackend cryptoverify.Backend
	pool          *x509token.CertificatePool
}

// New constructs an empty Signature for form, backed by backend for the
// format-specific quarter of its behavior (spec.md §4.7).
func New(id model.Identifier, form model.SignatureForm, backend Backend) *Signature {
	return &Signature{
		id:                id,
		form:              form,
		backend:           backend,
		engine:            digest.New(),
		cryptoBackend:     cryptoverify.New(),
		certificateSource: source.NewCertificateSource(x509token.SourceSignature),
		crlSource:         source.NewCRLSource(x509token.SourceSignature),
		ocspSource:        source.NewOCSPSource(x509token.SourceSignature),
		timestamps:        timestamp.NewSource(),
		candidates:        NewCandidates(),
	}
}

// SetCryptoBackend overrides the verifier CheckSignatureIntegrity uses.
func (s *Signature) SetCryptoBackend(b cryptoverify.Backend) { s.cryptoBackend = b }

// SetDigestEngine overrides the digest engine used for DTBSR recomputation.
func (s *Signature) SetDigestEngine(e digest.Engine) { s.engine = e }

// SetCertificatePool routes every certificate this signature resolves
// through pool, so duplicates collapse to one CertificateToken instance.
func (s *Signature) SetCertificatePool(pool *x509token.CertificatePool) { s.pool = pool }

// AddCertificate registers a certificate embedded in this signature's own
// container. When a CertificatePool was supplied via SetCertificatePool,
// cert is canonicalized through it first, so a certificate repeated
// across a signature and its timestamps resolves to one CertificateToken
// everywhere.
func (s *Signature) AddCertificate(cert *x509token.CertificateToken) *x509token.CertificateToken {
	if s.pool != nil {
		cert = s.pool.Add(cert, x509token.SourceSignature)
	}
	s.certificateSource.Add(cert)
	return cert
}

// AddCRL registers a CRL extracted from this signature's own container
// (e.g. a CAdES id-aa-ets-revocationValues attribute, or a PAdES /DSS
// dictionary), deduplicating by content.
func (s *Signature) AddCRL(der []byte) { s.crlSource.Add(der) }

// AddOCSPResponse registers an OCSP response extracted from this
// signature's own container, deduplicating by content.
func (s *Signature) AddOCSPResponse(der []byte) { s.ocspSource.Add(der) }

// --- Identity & metadata ---

// ID returns the signature's dss_id.
func (s *Signature) ID() model.Identifier { return s.id }

// DAIdentifier returns the XAdES-specific "da" identifier, or "" for
// other forms.
func (s *Signature) DAIdentifier() string { return s.daIdentifier }

// SetDAIdentifier sets the XAdES "da" identifier.
func (s *Signature) SetDAIdentifier(v string) { s.daIdentifier = v }

// Form returns which AdES container family this signature came from.
func (s *Signature) Form() model.SignatureForm { return s.form }

// SigningTime returns the claimed signing time (unix seconds), and
// whether it was ever set.
func (s *Signature) SigningTime() (int64, bool) { return s.signingTime, s.signingTime != 0 }

// SetSigningTime sets the claimed signing time.
func (s *Signature) SetSigningTime(unixSeconds int64) { s.signingTime = unixSeconds }

// IsClaimedSigningTimeInFuture reports whether the claimed signing time
// is later than c's current time — an unsigned, easily-forged claim
// (unlike a timestamp's genTime) but still worth flagging to the caller
// as a sanity anomaly.
func (s *Signature) IsClaimedSigningTimeInFuture(c clock.Clock) bool {
	claimed, ok := s.SigningTime()
	if !ok {
		return false
	}
	return claimed > c.Now().Unix()
}

// EncryptionAlgorithm returns the signer's public-key algorithm.
func (s *Signature) EncryptionAlgorithm() model.EncryptionAlgorithm { return s.encryptionAlgorithm }

// SetEncryptionAlgorithm sets the signer's public-key algorithm.
func (s *Signature) SetEncryptionAlgorithm(a model.EncryptionAlgorithm) { s.encryptionAlgorithm = a }

// DigestAlgorithm returns the digest algorithm used to compute the DTBSR.
func (s *Signature) DigestAlgorithm() model.DigestAlgorithm { return s.digestAlgorithm }

// SetDigestAlgorithm sets the digest algorithm used to compute the DTBSR.
func (s *Signature) SetDigestAlgorithm(a model.DigestAlgorithm) { s.digestAlgorithm = a }

// MaskGenerationFunction returns the MGF used (meaningful for RSASSA-PSS).
func (s *Signature) MaskGenerationFunction() model.MaskGenerationFunction {
	return s.maskGenerationFunction
}

// SetMaskGenerationFunction sets the MGF.
func (s *Signature) SetMaskGenerationFunction(m model.MaskGenerationFunction) {
	s.maskGenerationFunction = m
}

// ClaimedSignerRoles returns roles the signer claimed without certification.
func (s *Signature) ClaimedSignerRoles() []SignerRole {
	return append([]SignerRole(nil), s.claimedSignerRoles...)
}

// AddClaimedSignerRole appends a claimed role.
func (s *Signature) AddClaimedSignerRole(role string) {
	s.claimedSignerRoles = append(s.claimedSignerRoles, SignerRole{Role: role, Certified: false})
}

// CertifiedSignerRoles returns roles asserted by a certified-attribute.
func (s *Signature) CertifiedSignerRoles() []SignerRole {
	return append([]SignerRole(nil), s.certifiedSignerRoles...)
}

// AddCertifiedSignerRole appends a certified role.
func (s *Signature) AddCertifiedSignerRole(role string) {
	s.certifiedSignerRoles = append(s.certifiedSignerRoles, SignerRole{Role: role, Certified: true})
}

// CommitmentTypeIndications returns the signed commitment-type assertions.
func (s *Signature) CommitmentTypeIndications() []CommitmentTypeIndication {
	return append([]CommitmentTypeIndication(nil), s.commitmentTypeIndications...)
}

// AddCommitmentTypeIndication appends a commitment-type assertion.
func (s *Signature) AddCommitmentTypeIndication(c CommitmentTypeIndication) {
	s.commitmentTypeIndications = append(s.commitmentTypeIndications, c)
}

// ProductionPlace returns the signer-asserted place of signing, or nil.
func (s *Signature) ProductionPlace() *ProductionPlace { return s.productionPlace }

// SetProductionPlace sets the signer-asserted place of signing.
func (s *Signature) SetProductionPlace(p *ProductionPlace) { s.productionPlace = p }

// PolicyID returns the signed policy identifier, or "" if absent
// (implicit policy).
func (s *Signature) PolicyID() string { return s.policyID }

// SetPolicyID sets the signed policy identifier.
func (s *Signature) SetPolicyID(id string) { s.policyID = id }

// ContentType, MimeType, ContentIdentifier return the respective signed
// content-description properties.
func (s *Signature) ContentType() string       { return s.contentType }
func (s *Signature) MimeType() string          { return s.mimeType }
func (s *Signature) ContentIdentifier() string { return s.contentIdentifier }

// SetContentType, SetMimeType, SetContentIdentifier set the respective
// signed content-description properties.
func (s *Signature) SetContentType(v string)       { s.contentType = v }
func (s *Signature) SetMimeType(v string)          { s.mimeType = v }
func (s *Signature) SetContentIdentifier(v string) { s.contentIdentifier = v }

// ContentHints returns the signed content-hints properties.
func (s *Signature) ContentHints() []ContentHint {
	return append([]ContentHint(nil), s.contentHints...)
}

// AddContentHint appends a content-hint property.
func (s *Signature) AddContentHint(h ContentHint) { s.contentHints = append(s.contentHints, h) }

// --- Payload linkage ---

// SetFilename records the signed document's filename, when known.
func (s *Signature) SetFilename(name string) { s.filename = name }

// Filename returns the signed document's filename, or "".
func (s *Signature) Filename() string { return s.filename }

// SetDetachedContents supplies the detached document bytes a detached
// signature was computed over, needed for CheckSignatureIntegrity.
func (s *Signature) SetDetachedContents(contents ...[]byte) {
	s.detachedContents = append([][]byte(nil), contents...)
}

// DetachedContents returns the detached contents set via
// SetDetachedContents.
func (s *Signature) DetachedContents() [][]byte {
	return append([][]byte(nil), s.detachedContents...)
}

// SetContainerContents supplies the full set of documents inside an
// ASiC container, for manifest resolution.
func (s *Signature) SetContainerContents(contents ...[]byte) {
	s.containerContents = append([][]byte(nil), contents...)
}

// ContainerContents returns the documents set via SetContainerContents.
func (s *Signature) ContainerContents() [][]byte {
	return append([][]byte(nil), s.containerContents...)
}

// SetManifestFiles supplies ASiC-E manifest files naming which
// container entries this signature covers.
func (s *Signature) SetManifestFiles(manifests ...[]byte) {
	s.manifestFiles = append([][]byte(nil), manifests...)
}

// ManifestFiles returns the manifest files set via SetManifestFiles.
func (s *Signature) ManifestFiles() [][]byte {
	return append([][]byte(nil), s.manifestFiles...)
}

// SetManifestedDocument records that an ASiC-E manifest entry named
// entryName resolves to document bytes — the core's only participation
// in ASiC-E manifest resolution; actually parsing the manifest XML to
// discover entryName stays with the external parser.
func (s *Signature) SetManifestedDocument(entryName string, document []byte) {
	if s.manifestedDocuments == nil {
		s.manifestedDocuments = map[string][]byte{}
	}
	s.manifestedDocuments[entryName] = document
}

// ManifestedDocument returns the document resolved for entryName, and
// whether one was set.
func (s *Signature) ManifestedDocument(entryName string) ([]byte, bool) {
	doc, ok := s.manifestedDocuments[entryName]
	return doc, ok
}

// SetProvidedSigningCertificateToken supplies a caller-known signing
// certificate for containers that omit it (spec.md §4.4).
func (s *Signature) SetProvidedSigningCertificateToken(cert *x509token.CertificateToken) {
	s.providedSigningCertificate = cert
	if s.candidates != nil {
		s.candidates.Add(CandidateSourceCallerSupplied, cert)
	}
}

// ProvidedSigningCertificateToken returns the certificate set via
// SetProvidedSigningCertificateToken, or nil.
func (s *Signature) ProvidedSigningCertificateToken() *x509token.CertificateToken {
	return s.providedSigningCertificate
}

// SetSignatureValue records the raw signature bytes.
func (s *Signature) SetSignatureValue(v []byte) { s.signatureValue = append([]byte(nil), v...) }

// SignatureValue returns the raw signature bytes.
func (s *Signature) SignatureValue() []byte { return append([]byte(nil), s.signatureValue...) }

// SetMessageDigestValue records the CAdES message-digest signed attribute.
func (s *Signature) SetMessageDigestValue(v []byte) {
	s.messageDigestValue = append([]byte(nil), v...)
}

// MessageDigestValue returns the CAdES message-digest signed attribute.
func (s *Signature) MessageDigestValue() []byte {
	return append([]byte(nil), s.messageDigestValue...)
}

// SetPDFRevision records the PAdES signed PDF revision bytes.
func (s *Signature) SetPDFRevision(v []byte) { s.pdfRevision = append([]byte(nil), v...) }

// PDFRevision returns the PAdES signed PDF revision bytes.
func (s *Signature) PDFRevision() []byte { return append([]byte(nil), s.pdfRevision...) }

// --- Embedded material ---

// CertificateSource returns the certificates embedded in this signature's
// own container (not including any nested timestamp's certificates).
func (s *Signature) CertificateSource() *source.CertificateSource { return s.certificateSource }

// CRLSource returns the CRLs embedded in this signature's own container.
func (s *Signature) CRLSource() *source.CRLSource { return s.crlSource }

// OCSPSource returns the OCSP responses embedded in this signature's own
// container.
func (s *Signature) OCSPSource() *source.OCSPSource { return s.ocspSource }

// CompleteCertificateSource merges this signature's certificates with
// those embedded in every owned timestamp (P6).
func (s *Signature) CompleteCertificateSource() []*x509token.CertificateToken {
	sources := []*source.CertificateSource{s.certificateSource}
	for _, t := range s.timestamps.All() {
		sources = append(sources, t.CertificateSource().CertificateSource)
	}
	return source.MergeCertificateSources(sources...)
}

// CompleteCRLSource merges this signature's CRLs with those embedded in
// every owned timestamp (P6).
func (s *Signature) CompleteCRLSource() []source.RevocationArtifact {
	sources := []*source.CRLSource{s.crlSource}
	for _, t := range s.timestamps.All() {
		sources = append(sources, t.CRLSource())
	}
	return source.MergeCRLSources(sources...)
}

// CompleteOCSPSource merges this signature's OCSP responses with those
// embedded in every owned timestamp (P6).
func (s *Signature) CompleteOCSPSource() []source.RevocationArtifact {
	sources := []*source.OCSPSource{s.ocspSource}
	for _, t := range s.timestamps.All() {
		sources = append(sources, t.OCSPSource())
	}
	return source.MergeOCSPSources(sources...)
}

// --- Timestamp access ---

// Timestamps returns the TimestampSource classifying every timestamp
// owned by this signature.
func (s *Signature) Timestamps() *timestamp.Source { return s.timestamps }

// AllTimestamps returns the union of every bucket, deduplicated by
// dss_id (spec.md §4.3's "All" bucket, used directly by P6).
func (s *Signature) AllTimestamps() []*timestamp.Token { return s.timestamps.All() }

// --- Counter-signatures ---

// CounterSignatures returns the child signatures whose MasterSignature
// points back to s (spec.md §4.4, P7).
func (s *Signature) CounterSignatures() []*Signature {
	return append([]*Signature(nil), s.counterSignatures...)
}

// MasterSignature returns the signature s counter-signs, or nil if s is
// not a counter-signature.
func (s *Signature) MasterSignature() *Signature { return s.masterSignature }

// --- Validation modes ---

// SetHashOnlyValidation marks this signature as validated from a
// pre-hashed DTBSR only, with no original bytes available.
func (s *Signature) SetHashOnlyValidation(v bool) { s.hashOnly = v }

// IsHashOnlyValidation reports whether only the DTBSR is available
// (spec.md §4.4).
func (s *Signature) IsHashOnlyValidation() bool { return s.hashOnly }

// SetDocHashOnlyValidation marks this signature as validated from only
// the signer's document hash.
func (s *Signature) SetDocHashOnlyValidation(v bool) { s.docHashOnly = v }

// IsDocHashOnlyValidation reports whether only the signer's document
// hash is available (spec.md §4.4).
func (s *Signature) IsDocHashOnlyValidation() bool { return s.docHashOnly }

// --- Structure ---

// ValidateStructure runs the format-specific schema validation via
// Backend and caches the textual outcome.
func (s *Signature) ValidateStructure() string {
	s.structureValidationResult = s.backend.ValidateStructure()
	return s.structureValidationResult
}

// StructureValidationResult returns the outcome of the last
// ValidateStructure call, or "" if it has never been called.
func (s *Signature) StructureValidationResult() string { return s.structureValidationResult }

// --- Level inference ---

// SignatureLevels returns this signature's format's baseline ladder, in
// strictly ascending order.
func (s *Signature) SignatureLevels() []model.SignatureLevel { return s.backend.SignatureLevels() }

// IsDataForSignatureLevelPresent reports whether every structural
// element level requires is present (P5's subject).
func (s *Signature) IsDataForSignatureLevelPresent(level model.SignatureLevel) bool {
	return s.backend.IsDataForSignatureLevelPresent(level)
}

// DataFoundUpToLevel returns the highest level in SignatureLevels for
// which IsDataForSignatureLevelPresent holds, or model.LevelUnknown if
// none does.
func (s *Signature) DataFoundUpToLevel() model.SignatureLevel {
	highest := model.LevelUnknown
	for _, level := range s.SignatureLevels() {
		if s.IsDataForSignatureLevelPresent(level) {
			highest = level
		}
	}
	return highest
}
