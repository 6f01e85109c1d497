package cms

import (
	"crypto/x509"
	"encoding/asn1"

	"github.com/mranest/dss/model"
)

// ParsedSignerInfo is a SignerInfo with its signed/unsigned attribute
// bytes preserved, ready for digest recomputation.
type ParsedSignerInfo struct {
	Raw           []byte
	SID           IssuerAndSerialNumber
	DigestAlg     AlgorithmIdentifier
	SignedAttrs   []Attribute
	SignedAttrsDER []byte // the SignedAttrs content re-tagged as a SET, ready to digest.
	SigAlg        AlgorithmIdentifier
	Signature     []byte
	UnsignedAttrs []Attribute
}

// ParsedSignedData is the result of parsing a CMS ContentInfo/SignedData
// envelope for read access: certificates, CRLs and signer infos with raw
// attribute bytes preserved.
type ParsedSignedData struct {
	EContentType asn1.ObjectIdentifier
	EContent     []byte // nil for a detached signature.
	Certificates []*x509.Certificate
	CRLs         [][]byte
	SignerInfos  []ParsedSignerInfo
}

// Parser is the external collaborator spec.md §6 names: "given bytes,
// produce a parsed CMS SignedData and, for timestamps, the RFC 3161
// TSTInfo". TimestampToken and the CAdES signature backend depend on this
// interface rather than the package-level functions directly, so tests
// can substitute a parser that injects malformed structures without
// constructing real DER.
type Parser interface {
	ParseSignedData(der []byte) (*ParsedSignedData, error)
	ParseTSTInfo(tokenDER []byte) (*TSTInfo, *ParsedSignedData, error)
}

// DefaultParser is the Parser backed directly by encoding/asn1, the same
// library the teacher's sign/cms and sign/timestamps packages use.
type DefaultParser struct{}

// NewParser returns the default Parser.
func NewParser() Parser { return DefaultParser{} }

// ParseSignedData parses der as a CMS ContentInfo wrapping a SignedData,
// returning model.ParseError if it is not one.
func (DefaultParser) ParseSignedData(der []byte) (*ParsedSignedData, error) {
	var ci ContentInfo
	if _, err := asn1.Unmarshal(der, &ci); err != nil {
		return nil, model.NewParseError("CMS ContentInfo", err)
	}
	if !ci.ContentType.Equal(OIDSignedData) {
		return nil, model.NewParseError("CMS ContentInfo", errNotSignedData{ci.ContentType})
	}

	var sdRaw SignedDataRaw
	if _, err := asn1.Unmarshal(ci.Content.Bytes, &sdRaw); err != nil {
		return nil, model.NewParseError("CMS SignedData", err)
	}
	if len(sdRaw.SignerInfos) == 0 {
		return nil, model.NewParseError("CMS SignedData", errNoSignerInfos{})
	}

	out := &ParsedSignedData{
		EContentType: sdRaw.EncapContentInfo.EContentType,
		EContent:     sdRaw.EncapContentInfo.EContent.Bytes,
	}

	for _, certRaw := range sdRaw.Certificates {
		cert, err := x509.ParseCertificate(certRaw.FullBytes)
		if err != nil {
			return nil, model.NewParseError("CMS certificate", err)
		}
		out.Certificates = append(out.Certificates, cert)
	}
	for _, crlRaw := range sdRaw.CRLs {
		out.CRLs = append(out.CRLs, crlRaw.FullBytes)
	}

	for _, siRaw := range sdRaw.SignerInfos {
		si, err := parseSignerInfoRaw(siRaw.FullBytes)
		if err != nil {
			return nil, err
		}
		out.SignerInfos = append(out.SignerInfos, *si)
	}

	return out, nil
}

func parseSignerInfoRaw(der []byte) (*ParsedSignerInfo, error) {
	var siRaw SignerInfoRaw
	if _, err := asn1.Unmarshal(der, &siRaw); err != nil {
		return nil, model.NewParseError("CMS SignerInfo", err)
	}

	var signedAttrs []Attribute
	if len(siRaw.SignedAttrs.Bytes) > 0 {
		rest := siRaw.SignedAttrs.Bytes
		for len(rest) > 0 {
			var attr Attribute
			var err error
			rest, err = asn1.Unmarshal(rest, &attr)
			if err != nil {
				return nil, model.NewParseError("CMS SignerInfo signed attributes", err)
			}
			signedAttrs = append(signedAttrs, attr)
		}
	}

	var signedAttrsDER []byte
	if len(signedAttrs) > 0 {
		der, err := asn1.Marshal(signedAttrs)
		if err != nil {
			return nil, model.NewParseError("CMS SignerInfo signed attributes", err)
		}
		// asn1.Marshal of a slice produces a SEQUENCE tag (0x30); CMS
		// signs the SET encoding (0x31) of the same content. Re-tagging
		// in place mirrors the teacher's CMSBuilder.Sign/VerifyCMSSignature
		// pairing exactly.
		der[0] = 0x31
		signedAttrsDER = der
	}

	var unsignedAttrs []Attribute
	if len(siRaw.UnsignedAttrs.Bytes) > 0 {
		rest := siRaw.UnsignedAttrs.Bytes
		for len(rest) > 0 {
			var attr Attribute
			var err error
			rest, err = asn1.Unmarshal(rest, &attr)
			if err != nil {
				return nil, model.NewParseError("CMS SignerInfo unsigned attributes", err)
			}
			unsignedAttrs = append(unsignedAttrs, attr)
		}
	}

	return &ParsedSignerInfo{
		Raw:            der,
		SID:            siRaw.SID,
		DigestAlg:      siRaw.DigestAlgorithm,
		SignedAttrs:    signedAttrs,
		SignedAttrsDER: signedAttrsDER,
		SigAlg:         siRaw.SignatureAlgorithm,
		Signature:      siRaw.Signature,
		UnsignedAttrs:  unsignedAttrs,
	}, nil
}

// ParseTSTInfo parses tokenDER as a full RFC 3161 TimeStampToken: a CMS
// ContentInfo/SignedData whose encapsulated content is a TSTInfo. This is
// the construction path for TimestampToken (spec.md §4.2, construction
// input 1 and 2).
func (p DefaultParser) ParseTSTInfo(tokenDER []byte) (*TSTInfo, *ParsedSignedData, error) {
	sd, err := p.ParseSignedData(tokenDER)
	if err != nil {
		return nil, nil, err
	}
	if !sd.EContentType.Equal(OIDTSTInfo) {
		return nil, nil, model.NewParseError("RFC 3161 TSTInfo", errNotTSTInfo{sd.EContentType})
	}

	var tstInfoBytes []byte
	if _, err := asn1.Unmarshal(sd.EContent, &tstInfoBytes); err != nil {
		return nil, nil, model.NewParseError("RFC 3161 TSTInfo", err)
	}

	var tstInfo TSTInfo
	if _, err := asn1.Unmarshal(tstInfoBytes, &tstInfo); err != nil {
		return nil, nil, model.NewParseError("RFC 3161 TSTInfo", err)
	}

	return &tstInfo, sd, nil
}

type errNotSignedData struct{ ct asn1.ObjectIdentifier }

func (e errNotSignedData) Error() string { return "not a SignedData ContentInfo: " + e.ct.String() }

type errNoSignerInfos struct{}

func (errNoSignerInfos) Error() string { return "SignedData has no SignerInfos" }

type errNotTSTInfo struct{ ct asn1.ObjectIdentifier }

func (e errNotTSTInfo) Error() string {
	return "encapsulated content is not a TSTInfo: " + e.ct.String()
}
