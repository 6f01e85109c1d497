package model

import "encoding/asn1"

// DigestAlgorithm enumerates the digest algorithms the core must at least
// recognize by OID (spec.md §6). Whirlpool is named by the spec but has no
// maintained pure-Go implementation in the retrieval pack's dependency
// graph; it is declared here for completeness of the wire-format OID table
// but DigestEngine.Digest returns ErrUnsupportedDigestAlgorithm for it.
type DigestAlgorithm int

const (
	DigestUnknown DigestAlgorithm = iota
	DigestMD5
	DigestSHA1
	DigestSHA224
	DigestSHA256
	DigestSHA384
	DigestSHA512
	DigestSHA3_256
	DigestSHA3_384
	DigestSHA3_512
	DigestRIPEMD160
	DigestWhirlpool
)

func (d DigestAlgorithm) String() string {
	switch d {
	case DigestMD5:
		return "MD5"
	case DigestSHA1:
		return "SHA1"
	case DigestSHA224:
		return "SHA224"
	case DigestSHA256:
		return "SHA256"
	case DigestSHA384:
		return "SHA384"
	case DigestSHA512:
		return "SHA512"
	case DigestSHA3_256:
		return "SHA3-256"
	case DigestSHA3_384:
		return "SHA3-384"
	case DigestSHA3_512:
		return "SHA3-512"
	case DigestRIPEMD160:
		return "RIPEMD160"
	case DigestWhirlpool:
		return "WHIRLPOOL"
	default:
		return "UNKNOWN"
	}
}

// OID tables for digest algorithms, lifted from the ETSI/RFC registrations
// the teacher's sign/cms and sign/ades packages already carry for the
// subset they needed; extended here to the full spec.md §6 list.
var (
	oidMD5        = asn1.ObjectIdentifier{1, 2, 840, 113549, 2, 5}
	oidSHA1       = asn1.ObjectIdentifier{1, 3, 14, 3, 2, 26}
	oidSHA224     = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 4}
	oidSHA256     = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 1}
	oidSHA384     = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 2}
	oidSHA512     = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 3}
	oidSHA3_256   = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 8}
	oidSHA3_384   = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 9}
	oidSHA3_512   = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 10}
	oidRIPEMD160  = asn1.ObjectIdentifier{1, 3, 36, 3, 2, 1}
	oidWhirlpool  = asn1.ObjectIdentifier{1, 0, 10118, 3, 0, 55}
)

var digestByOID = map[string]DigestAlgorithm{
	oidMD5.String():       DigestMD5,
	oidSHA1.String():      DigestSHA1,
	oidSHA224.String():    DigestSHA224,
	oidSHA256.String():    DigestSHA256,
	oidSHA384.String():    DigestSHA384,
	oidSHA512.String():    DigestSHA512,
	oidSHA3_256.String():  DigestSHA3_256,
	oidSHA3_384.String():  DigestSHA3_384,
	oidSHA3_512.String():  DigestSHA3_512,
	oidRIPEMD160.String(): DigestRIPEMD160,
	oidWhirlpool.String(): DigestWhirlpool,
}

var oidByDigest = map[DigestAlgorithm]asn1.ObjectIdentifier{
	DigestMD5:       oidMD5,
	DigestSHA1:      oidSHA1,
	DigestSHA224:    oidSHA224,
	DigestSHA256:    oidSHA256,
	DigestSHA384:    oidSHA384,
	DigestSHA512:    oidSHA512,
	DigestSHA3_256:  oidSHA3_256,
	DigestSHA3_384:  oidSHA3_384,
	DigestSHA3_512:  oidSHA3_512,
	DigestRIPEMD160: oidRIPEMD160,
	DigestWhirlpool: oidWhirlpool,
}

// DigestAlgorithmForOID returns DigestUnknown if oid names no algorithm
// this core recognizes.
func DigestAlgorithmForOID(oid asn1.ObjectIdentifier) DigestAlgorithm {
	return digestByOID[oid.String()]
}

// OID returns the algorithm's ASN.1 object identifier, or nil if d is
// DigestUnknown.
func (d DigestAlgorithm) OID() asn1.ObjectIdentifier {
	return oidByDigest[d]
}

// EncryptionAlgorithm enumerates the public-key algorithms a signature or
// timestamp signer certificate may use.
type EncryptionAlgorithm int

const (
	EncryptionUnknown EncryptionAlgorithm = iota
	EncryptionRSA
	EncryptionRSASSAPSS
	EncryptionECDSA
	EncryptionDSA
	EncryptionEd25519
)

func (e EncryptionAlgorithm) String() string {
	switch e {
	case EncryptionRSA:
		return "RSA"
	case EncryptionRSASSAPSS:
		return "RSASSA-PSS"
	case EncryptionECDSA:
		return "ECDSA"
	case EncryptionDSA:
		return "DSA"
	case EncryptionEd25519:
		return "Ed25519"
	default:
		return "UNKNOWN"
	}
}

// MaskGenerationFunction enumerates the MGF used by RSASSA-PSS.
type MaskGenerationFunction int

const (
	MGFNone MaskGenerationFunction = iota
	MGF1
)

// SignatureAlgorithm pairs an encryption algorithm with a digest algorithm
// (and, for RSASSA-PSS, a mask generation function) the way ades.go's
// DigestInfo/AlgorithmIdentifier pairing already expresses for CMS signed
// attributes; kept generic here since TimestampToken and Signature both
// need it.
type SignatureAlgorithm struct {
	Encryption EncryptionAlgorithm
	Digest     DigestAlgorithm
	MGF        MaskGenerationFunction
	// SaltLength is only meaningful when MGF == MGF1 (RSASSA-PSS).
	SaltLength int
}

func (a SignatureAlgorithm) String() string {
	if a.Encryption == EncryptionRSASSAPSS {
		return a.Encryption.String() + "-" + a.Digest.String() + "-MGF1"
	}
	return a.Encryption.String() + "-" + a.Digest.String()
}

// IsZero reports whether a has never been assigned a meaningful value.
func (a SignatureAlgorithm) IsZero() bool {
	return a.Encryption == EncryptionUnknown && a.Digest == DigestUnknown
}

// SignatureForm identifies which AdES container family a Signature came
// from; it is the tag of the "Signature = XAdES(...) | CAdES(...) |
// PAdES(...)" variant described in spec.md §9.
type SignatureForm int

const (
	FormUnknown SignatureForm = iota
	FormXAdES
	FormCAdES
	FormPAdES
)

func (f SignatureForm) String() string {
	switch f {
	case FormXAdES:
		return "XAdES"
	case FormCAdES:
		return "CAdES"
	case FormPAdES:
		return "PAdES"
	default:
		return "UNKNOWN"
	}
}

// SignatureLevel enumerates the baseline profile ladder. Signature.Levels
// returns the subset applicable to a given SignatureForm, always in
// strictly ascending order (spec.md §3 invariant).
type SignatureLevel int

const (
	LevelUnknown SignatureLevel = iota
	LevelXAdES_BASELINE_B
	LevelXAdES_BASELINE_T
	LevelXAdES_BASELINE_LT
	LevelXAdES_BASELINE_LTA
	LevelCAdES_BASELINE_B
	LevelCAdES_BASELINE_T
	LevelCAdES_BASELINE_LT
	LevelCAdES_BASELINE_LTA
	LevelPAdES_BASELINE_B
	LevelPAdES_BASELINE_T
	LevelPAdES_BASELINE_LT
	LevelPAdES_BASELINE_LTA
)

func (l SignatureLevel) String() string {
	switch l {
	case LevelXAdES_BASELINE_B:
		return "XAdES-BASELINE-B"
	case LevelXAdES_BASELINE_T:
		return "XAdES-BASELINE-T"
	case LevelXAdES_BASELINE_LT:
		return "XAdES-BASELINE-LT"
	case LevelXAdES_BASELINE_LTA:
		return "XAdES-BASELINE-LTA"
	case LevelCAdES_BASELINE_B:
		return "CAdES-BASELINE-B"
	case LevelCAdES_BASELINE_T:
		return "CAdES-BASELINE-T"
	case LevelCAdES_BASELINE_LT:
		return "CAdES-BASELINE-LT"
	case LevelCAdES_BASELINE_LTA:
		return "CAdES-BASELINE-LTA"
	case LevelPAdES_BASELINE_B:
		return "PAdES-BASELINE-B"
	case LevelPAdES_BASELINE_T:
		return "PAdES-BASELINE-T"
	case LevelPAdES_BASELINE_LT:
		return "PAdES-BASELINE-LT"
	case LevelPAdES_BASELINE_LTA:
		return "PAdES-BASELINE-LTA"
	default:
		return "UNKNOWN"
	}
}

// SignatureValidity is the tri-state outcome of Token.CheckIsSignedBy.
type SignatureValidity int

const (
	SignatureValidityUnknown SignatureValidity = iota
	SignatureValidityValid
	SignatureValidityInvalid
)

func (v SignatureValidity) String() string {
	switch v {
	case SignatureValidityValid:
		return "VALID"
	case SignatureValidityInvalid:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}
