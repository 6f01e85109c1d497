package timestamp

import "github.com/mranest/dss/model"

// Source enumerates and classifies the timestamps owned by one
// signature (spec.md §4.3). Each bucket is exposed as an ordered,
// append-only list; AddExternalTimestamp appends to the archive bucket,
// the extension point spec.md names for adding an already-verified
// timestamp to a signature after the fact.
type Source struct {
	content                []*Token
	allDataObjects          []*Token
	individualDataObjects   []*Token
	signature               []*Token
	x1                      []*Token
	x2                      []*Token
	validationDataRefsOnly  []*Token
	validationData          []*Token
	archive                 []*Token
	document                []*Token
}

// NewSource returns an empty classification.
func NewSource() *Source { return &Source{} }

// Add files tok into the bucket matching its Type. X1/X2 have no
// corresponding Type value (both are CompleteCertificateRefs/
// CompleteRevocationRefs-covering XAdES variants distinguished only by
// the signed-property name the caller already knows when constructing
// the token), so X1/X2 membership is recorded separately via AddX1/AddX2.
func (s *Source) Add(tok *Token) {
	switch tok.Type() {
	case TypeContent:
		s.content = append(s.content, tok)
	case TypeAllDataObjects:
		s.allDataObjects = append(s.allDataObjects, tok)
	case TypeIndividualDataObjects:
		s.individualDataObjects = append(s.individualDataObjects, tok)
	case TypeSignature:
		s.signature = append(s.signature, tok)
	case TypeValidationDataRefsOnly:
		s.validationDataRefsOnly = append(s.validationDataRefsOnly, tok)
	case TypeValidationData:
		s.validationData = append(s.validationData, tok)
	case TypeArchive:
		s.archive = append(s.archive, tok)
	case TypeDocument:
		s.document = append(s.document, tok)
	}
}

// AddExternalTimestamp appends a caller-constructed, already-verified
// timestamp to the archive bucket (spec.md §4.3's extension operation:
// "used when extending a signature with a new timestamp").
func (s *Source) AddExternalTimestamp(tok *Token) {
	s.archive = append(s.archive, tok)
}

func cloneTokens(toks []*Token) []*Token { return append([]*Token(nil), toks...) }

// Content returns timestamps taken over content prior to signing.
func (s *Source) Content() []*Token { return cloneTokens(s.content) }

// AllDataObjects returns XAdES AllDataObjectsTimeStamp timestamps.
func (s *Source) AllDataObjects() []*Token { return cloneTokens(s.allDataObjects) }

// IndividualDataObjects returns XAdES IndividualDataObjectsTimeStamp timestamps.
func (s *Source) IndividualDataObjects() []*Token { return cloneTokens(s.individualDataObjects) }

// Signature returns AdES-T timestamps taken over the signature value.
func (s *Source) Signature() []*Token { return cloneTokens(s.signature) }

// X1 returns timestamps over the signature value plus timestamped
// certificate/revocation references (CompleteCertificateRefs +
// CompleteRevocationRefs).
func (s *Source) X1() []*Token { return cloneTokens(s.x1) }

// X2 returns timestamps over the references concatenation only
// (XAdES SigAndRefsTimeStamp variant).
func (s *Source) X2() []*Token { return cloneTokens(s.x2) }

// ValidationDataRefsOnly returns CAdES long-term-validation reference-only
// timestamps, the CAdES analogue of X2.
func (s *Source) ValidationDataRefsOnly() []*Token { return cloneTokens(s.validationDataRefsOnly) }

// ValidationData returns CAdES long-term-validation timestamps, the CAdES
// analogue of X1.
func (s *Source) ValidationData() []*Token { return cloneTokens(s.validationData) }

// Archive returns timestamps over everything, enabling long-term
// preservation (AdES-A).
func (s *Source) Archive() []*Token { return cloneTokens(s.archive) }

// Document returns PAdES DocTimeStamp revisions (a PDF-level archive
// timestamp).
func (s *Source) Document() []*Token { return cloneTokens(s.document) }

// All returns the union of every bucket, deduplicated by dss_id
// (spec.md §4.3's "All" bucket).
func (s *Source) All() []*Token {
	seen := map[model.Identifier]struct{}{}
	var out []*Token
	for _, bucket := range [][]*Token{
		s.content, s.allDataObjects, s.individualDataObjects, s.signature,
		s.x1, s.x2, s.validationDataRefsOnly, s.validationData, s.archive, s.document,
	} {
		for _, tok := range bucket {
			if _, dup := seen[tok.ID()]; dup {
				continue
			}
			seen[tok.ID()] = struct{}{}
			out = append(out, tok)
		}
	}
	return out
}

// AddX1 and AddX2 file tok explicitly into the X1/X2 buckets — exposed
// separately from Add since both XAdES variants share TypeArchive at the
// Type level (both are "archive-covering" in the sense of spec.md §4.3's
// table) but are structurally distinguished in the XAdES property name
// the caller already knows when constructing the token.
func (s *Source) AddX1(tok *Token) { s.x1 = append(s.x1, tok) }

// AddX2 files tok into the X2 bucket.
func (s *Source) AddX2(tok *Token) { s.x2 = append(s.x2, tok) }
