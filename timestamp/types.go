// Package timestamp implements RFC 3161 timestamp tokens and the
// per-signature classification that groups them (spec.md §4.2, §4.3):
// TimestampToken parses and cryptographically verifies one timestamp;
// TimestampSource buckets the timestamps owned by one signature by what
// they cover.
package timestamp

import "github.com/mranest/dss/model"

// Type classifies what a timestamp covers, spec.md §4.3's bucket key.
type Type int

const (
	TypeUnknown Type = iota
	TypeContent
	TypeAllDataObjects
	TypeIndividualDataObjects
	TypeSignature
	TypeValidationDataRefsOnly
	TypeValidationData
	TypeArchive
	TypeDocument
)

func (t Type) String() string {
	switch t {
	case TypeContent:
		return "CONTENT_TIMESTAMP"
	case TypeAllDataObjects:
		return "ALL_DATA_OBJECTS_TIMESTAMP"
	case TypeIndividualDataObjects:
		return "INDIVIDUAL_DATA_OBJECTS_TIMESTAMP"
	case TypeSignature:
		return "SIGNATURE_TIMESTAMP"
	case TypeValidationDataRefsOnly:
		return "VALIDATION_DATA_REFS_ONLY_TIMESTAMP"
	case TypeValidationData:
		return "VALIDATION_DATA_TIMESTAMP"
	case TypeArchive:
		return "ARCHIVE_TIMESTAMP"
	case TypeDocument:
		return "DOCUMENT_TIMESTAMP"
	default:
		return "UNKNOWN"
	}
}

// ArchiveType further distinguishes archive timestamps by the profile
// version that produced them — Supplemented Feature: the distilled spec
// collapses every archive-covering timestamp into one Archive bucket, but
// ETSI TS 101 733/319 132 versioned the archive-timestamp attribute
// (CAdES-V2 vs -V3; XAdES 101903 Annex vs 141) and downstream policy
// checks (is_data_for_signature_level_present for *_BASELINE_LTA) care
// which version produced the attribute.
type ArchiveType int

const (
	ArchiveTypeUnknown ArchiveType = iota
	ArchiveTypeCAdESV2
	ArchiveTypeCAdESV3
	ArchiveTypeXAdES101903
	ArchiveTypeXAdES141
)

func (a ArchiveType) String() string {
	switch a {
	case ArchiveTypeCAdESV2:
		return "CAdES_V2"
	case ArchiveTypeCAdESV3:
		return "CAdES_V3"
	case ArchiveTypeXAdES101903:
		return "XAdES_101903"
	case ArchiveTypeXAdES141:
		return "XAdES_141"
	default:
		return "UNKNOWN"
	}
}

// Location identifies the signature container family a timestamp was
// read out of, the way TimestampToken.SignatureLocation tells a caller
// how to interpret TimestampedReferences without depending on the
// signature package (avoiding an import cycle, since signature embeds
// timestamp.Source).
type Location int

const (
	LocationUnknown Location = iota
	LocationCAdES
	LocationXAdES
	LocationPAdES
	LocationDoc
	LocationASiC
)

func (l Location) String() string {
	switch l {
	case LocationCAdES:
		return "CAdES"
	case LocationXAdES:
		return "XAdES"
	case LocationPAdES:
		return "PAdES"
	case LocationDoc:
		return "DOC"
	case LocationASiC:
		return "ASiC"
	default:
		return "UNKNOWN"
	}
}

// ReferenceCategory names what kind of artifact a TimestampedReference
// points to.
type ReferenceCategory int

const (
	ReferenceUnknown ReferenceCategory = iota
	ReferenceSignature
	ReferenceCertificate
	ReferenceRevocation
	ReferenceTimestamp
)

// Reference is a pointer, by dss_id, from one timestamp to a piece of
// material it covers — spec.md §4.3's implicit notion of "what a
// timestamp was taken over", made concrete so TimestampSource can report
// coverage without re-parsing unsigned attributes every time.
type Reference struct {
	Category ReferenceCategory
	ID       model.Identifier
}
