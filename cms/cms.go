// Package cms provides the CMS/PKCS#7 and RFC 3161 wire-format structures
// the validation core parses bit-exactly (spec.md §6): CMS SignedData
// envelopes and the TSTInfo they carry for timestamp tokens. This package
// only reads; it never builds or signs a CMS structure — producing
// signatures is explicitly out of the core's scope (spec.md §1 Non-goals).
package cms

import (
	"encoding/asn1"
	"math/big"
	"time"
)

// Content-type OIDs.
var (
	OIDData       = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 1}
	OIDSignedData = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 7, 2}
	OIDTSTInfo    = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 16, 1, 4}
)

// Signed/unsigned attribute OIDs the core inspects.
var (
	OIDContentType          = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 3}
	OIDMessageDigest        = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 4}
	OIDSigningTime          = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 5}
	OIDSigningCertificateV2 = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 16, 2, 47}
	OIDTimeStampToken       = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 16, 2, 14}
	OIDCertificateValues    = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 16, 2, 23}
	OIDRevocationValues     = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 16, 2, 24}
	OIDCompleteCertRefs     = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 16, 2, 21}
	OIDCompleteRevocRefs    = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 16, 2, 22}
)

// Public-key/signature algorithm OIDs.
var (
	OIDRSAEncryption   = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	OIDRSAPSS          = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 10}
	OIDSHA256WithRSA   = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 11}
	OIDSHA384WithRSA   = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 12}
	OIDSHA512WithRSA   = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 13}
	OIDECDSAWithSHA256 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 2}
	OIDECDSAWithSHA384 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 3}
	OIDECDSAWithSHA512 = asn1.ObjectIdentifier{1, 2, 840, 10045, 4, 3, 4}
	OIDEd25519         = asn1.ObjectIdentifier{1, 3, 101, 112}
)

// AlgorithmIdentifier is the generic OID+parameters pair used throughout
// CMS: digest algorithms, signature algorithms, RSASSA-PSS parameters.
type AlgorithmIdentifier struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.RawValue `asn1:"optional"`
}

// RSASSAPSSParams is the AlgorithmIdentifier.Parameters payload when
// Algorithm is id-RSASSA-PSS (spec.md §6's "RSASSA-PSS AlgorithmIdentifier
// parameters" requirement).
type RSASSAPSSParams struct {
	HashAlgorithm    AlgorithmIdentifier `asn1:"optional,explicit,tag:0"`
	MaskGenAlgorithm AlgorithmIdentifier `asn1:"optional,explicit,tag:1"`
	SaltLength       int                 `asn1:"optional,explicit,tag:2,default:20"`
	TrailerField     int                 `asn1:"optional,explicit,tag:3,default:1"`
}

// ContentInfo is the outermost CMS wrapper.
type ContentInfo struct {
	ContentType asn1.ObjectIdentifier
	Content     asn1.RawValue `asn1:"explicit,optional,tag:0"`
}

// EncapsulatedContentInfo carries the (possibly detached) signed payload.
type EncapsulatedContentInfo struct {
	EContentType asn1.ObjectIdentifier
	EContent     asn1.RawValue `asn1:"explicit,optional,tag:0"`
}

// IssuerAndSerialNumber identifies a certificate by issuer name and serial
// number, the non-SKI half of SignerIdentifier (spec.md §4.2 step 1).
type IssuerAndSerialNumber struct {
	Issuer       asn1.RawValue
	SerialNumber *big.Int
}

// Attribute is a generic CMS Attribute (signed or unsigned).
type Attribute struct {
	Type   asn1.ObjectIdentifier
	Values []asn1.RawValue `asn1:"set"`
}

// SignedData is the fully-typed CMS SignedData, used once the embedded
// SignerInfos are known not to need raw-byte preservation (i.e. for
// read-only inspection such as certificate/CRL extraction).
type SignedData struct {
	Version          int
	DigestAlgorithms []AlgorithmIdentifier `asn1:"set"`
	EncapContentInfo EncapsulatedContentInfo
	Certificates     []asn1.RawValue `asn1:"optional,implicit,tag:0,set"`
	CRLs             []asn1.RawValue `asn1:"optional,implicit,tag:1,set"`
	SignerInfos      []SignerInfo    `asn1:"set"`
}

// SignerInfo is the fully-typed signer record. Note SID is modeled
// directly as IssuerAndSerialNumber (not the SignerIdentifier CHOICE)
// because Go's encoding/asn1 cannot express an ASN.1 CHOICE. SignerInfoRaw
// models SID the same way, so neither type decodes a
// subject-key-identifier SID; SignerInfoRaw differs in preserving
// SignedAttrs/UnsignedAttrs as raw bytes for digest recomputation.
type SignerInfo struct {
	Version            int
	SID                IssuerAndSerialNumber
	DigestAlgorithm    AlgorithmIdentifier
	SignedAttrs        []Attribute `asn1:"optional,implicit,tag:0,set"`
	SignatureAlgorithm AlgorithmIdentifier
	Signature          []byte
	UnsignedAttrs       []Attribute `asn1:"optional,implicit,tag:1,set"`
}

// SignerInfoRaw parses a SignerInfo while preserving the exact bytes of
// SignedAttrs/UnsignedAttrs, which CheckIsSignedBy needs to recompute the
// signed-attributes digest byte-for-byte (the SET-vs-SEQUENCE DER tag
// swap the teacher's CMSBuilder.Sign performs at signing time must be
// mirrored exactly on the verify side).
type SignerInfoRaw struct {
	Version            int
	SID                IssuerAndSerialNumber
	DigestAlgorithm    AlgorithmIdentifier
	SignedAttrs        asn1.RawValue `asn1:"optional,tag:0"`
	SignatureAlgorithm AlgorithmIdentifier
	Signature          []byte
	UnsignedAttrs      asn1.RawValue `asn1:"optional,tag:1"`
}

// SignedDataRaw parses a SignedData while preserving each SignerInfo's raw
// bytes, deferring the SignerInfoRaw parse to callers that need it.
type SignedDataRaw struct {
	Version          int
	DigestAlgorithms []AlgorithmIdentifier `asn1:"set"`
	EncapContentInfo EncapsulatedContentInfo
	Certificates     []asn1.RawValue `asn1:"optional,implicit,tag:0,set"`
	CRLs             []asn1.RawValue `asn1:"optional,implicit,tag:1,set"`
	SignerInfos      []asn1.RawValue `asn1:"set"`
}

// MessageImprint is the RFC 3161 digest-of-timestamped-data structure.
type MessageImprint struct {
	HashAlgorithm AlgorithmIdentifier
	HashedMessage []byte
}

// Accuracy is the optional TSTInfo.accuracy field.
type Accuracy struct {
	Seconds int `asn1:"optional"`
	Millis  int `asn1:"optional,implicit,tag:0"`
	Micros  int `asn1:"optional,implicit,tag:1"`
}

// Extension mirrors the X.509 Extension SEQUENCE used by TSTInfo's
// extensions field.
type Extension struct {
	ExtnID    asn1.ObjectIdentifier
	Critical  bool `asn1:"optional,default:false"`
	ExtnValue []byte
}

// TSTInfo is the RFC 3161 timestamp token payload, encapsulated as the
// EContent of a CMS SignedData whose EContentType is OIDTSTInfo.
type TSTInfo struct {
	Version        int
	Policy         asn1.ObjectIdentifier
	MessageImprint MessageImprint
	SerialNumber   *big.Int
	GenTime        time.Time
	Accuracy       Accuracy      `asn1:"optional"`
	Ordering       bool          `asn1:"optional,default:false"`
	Nonce          *big.Int      `asn1:"optional"`
	TSA            asn1.RawValue `asn1:"optional,explicit,tag:0"`
	Extensions     []Extension   `asn1:"optional,implicit,tag:1"`
}
