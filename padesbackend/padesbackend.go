// Package padesbackend implements signature.Backend for PAdES: a CMS
// SignedData embedded as the hex-encoded /Contents of a PDF signature
// dictionary, covering every byte of the revision named by /ByteRange
// except the /Contents placeholder itself. Grounded on the teacher's
// sign/signers.SigByteRangeObject (which writes this same layout) and
// sign/cms.CMSBuilder, adapted here to read rather than produce it.
package padesbackend

import (
	"github.com/mranest/dss/cadesbackend"
	"github.com/mranest/dss/cms"
	"github.com/mranest/dss/model"
)

// ByteRange is one [offset, length) span of the revision's /ByteRange
// array. PAdES always has exactly two: the bytes before /Contents and
// the bytes after it.
type ByteRange struct {
	Offset int64
	Length int64
}

// Backend is the PAdES realization of signature.Backend: a CAdES
// SignerInfo (the CMS /Contents payload) plus the /ByteRange spans that
// define what of the PDF revision it actually covers.
type Backend struct {
	*cadesbackend.Backend

	revision   []byte
	byteRanges []ByteRange

	hasDocTS bool // a document timestamp revision layered after this one
}

// New builds a Backend from the full PDF revision bytes, the parsed
// /ByteRange spans, and the CMS SignedData/SignerInfo embedded as
// /Contents. hasDocTimestamp records whether a caller-detected later
// revision added a document timestamp (DocMDP-compatible /DocTimeStamp),
// the PAdES analogue of CAdES's archive timestamp for the -LTA level.
func New(revision []byte, byteRanges []ByteRange, signedData *cms.ParsedSignedData, signerInfo cms.ParsedSignerInfo, hasDocTimestamp bool) *Backend {
	return &Backend{
		Backend:    cadesbackend.New(signedData, signerInfo, nil),
		revision:   revision,
		byteRanges: byteRanges,
		hasDocTS:   hasDocTimestamp,
	}
}

// DataToBeSigned concatenates every /ByteRange span of the revision,
// which for PAdES is the actual DTBSR — the CMS SignerInfo is always
// detached, signing the PDF bytes directly rather than an
// EncapsulatedContentInfo EContent.
func (b *Backend) DataToBeSigned() ([]byte, error) {
	if len(b.byteRanges) == 0 {
		return nil, errNoByteRange{}
	}
	var out []byte
	for _, r := range b.byteRanges {
		if r.Offset < 0 || r.Length < 0 || r.Offset+r.Length > int64(len(b.revision)) {
			return nil, errByteRangeOutOfBounds{r}
		}
		out = append(out, b.revision[r.Offset:r.Offset+r.Length]...)
	}
	return out, nil
}

// ValidateStructure reports whether the /ByteRange covers the revision
// and the embedded SignerInfo has the structural shape CAdES requires,
// on top of cadesbackend's own structural check.
func (b *Backend) ValidateStructure() string {
	if len(b.byteRanges) != 2 {
		return "PDF signature dictionary /ByteRange must have exactly two spans"
	}
	return b.Backend.ValidateStructure()
}

// SignatureLevels returns the PAdES baseline ladder, strictly ascending.
func (b *Backend) SignatureLevels() []model.SignatureLevel {
	return []model.SignatureLevel{
		model.LevelPAdES_BASELINE_B,
		model.LevelPAdES_BASELINE_T,
		model.LevelPAdES_BASELINE_LT,
		model.LevelPAdES_BASELINE_LTA,
	}
}

// IsDataForSignatureLevelPresent mirrors CAdES's ladder (PAdES's -B/-T/-LT
// material lives in the same CMS unsigned attributes), substituting a
// later document-timestamp revision for CAdES's archive timestamp at
// -LTA, since PAdES has no archive-timestamp unsigned attribute of its
// own — LTV extension happens at the PDF incremental-update level.
func (b *Backend) IsDataForSignatureLevelPresent(level model.SignatureLevel) bool {
	switch level {
	case model.LevelPAdES_BASELINE_B:
		return b.ValidateStructure() == ""
	case model.LevelPAdES_BASELINE_T:
		return b.Backend.IsDataForSignatureLevelPresent(model.LevelCAdES_BASELINE_T)
	case model.LevelPAdES_BASELINE_LT:
		return b.Backend.IsDataForSignatureLevelPresent(model.LevelCAdES_BASELINE_LT)
	case model.LevelPAdES_BASELINE_LTA:
		return b.hasDocTS
	default:
		return false
	}
}

type errNoByteRange struct{}

func (errNoByteRange) Error() string { return "PDF revision has no /ByteRange spans" }

type errByteRangeOutOfBounds struct{ r ByteRange }

func (e errByteRangeOutOfBounds) Error() string {
	return "PDF /ByteRange span falls outside the revision bytes"
}
