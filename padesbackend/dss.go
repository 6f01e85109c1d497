// Document Security Store parsing, the PAdES-LT/-LTA mechanism for
// embedding certificates, CRLs, and OCSP responses inside the PDF itself
// (ETSI TS 103 172 §4.7). Grounded on the teacher's sign/dss package,
// which builds and serializes a /DSS dictionary for signing; adapted here
// to the read side, populating source.CertificateSource/CRLSource/OCSPSource
// rather than PDF objects a signer would write.
package padesbackend

import (
	"crypto/x509"

	"github.com/mranest/dss/pdf/generic"
	"github.com/mranest/dss/signature"
	"github.com/mranest/dss/source"
	"github.com/mranest/dss/x509token"
)

// DocumentSecurityStore is the parsed contents of a PDF /DSS dictionary:
// every certificate, CRL, and OCSP response a PAdES-LT revision carries,
// plus the /VRI entries that bind a subset of them to one specific
// signature by its hex-encoded message-digest key.
type DocumentSecurityStore struct {
	Certificates []*x509token.CertificateToken
	CRLs         [][]byte
	OCSPs        [][]byte
	VRI          map[string]*VRIEntry
}

// VRIEntry is the Validation Related Information PAdES associates with
// one signature: the subset of the /DSS material actually relevant to
// validating it, keyed by the upper-case hex SHA-1 of the signature's
// /Contents value.
type VRIEntry struct {
	Certificates []*x509token.CertificateToken
	CRLs         [][]byte
	OCSPs        [][]byte
}

// ParseDocumentSecurityStore reads a /DSS dictionary, decoding every
// embedded certificate and collecting the CRL/OCSP streams verbatim —
// their own parsing and revocation-time evaluation stays a caller concern
// per this core's evidence-gathering (not trust-deciding) scope.
func ParseDocumentSecurityStore(dict *generic.DictionaryObject) (*DocumentSecurityStore, error) {
	if dict == nil {
		return nil, errNoDSS{}
	}

	dss := &DocumentSecurityStore{VRI: map[string]*VRIEntry{}}

	if arr, ok := dict.Get("Certs").(generic.ArrayObject); ok {
		for _, obj := range arr {
			tok, err := certTokenFromStream(obj)
			if err != nil {
				return nil, err
			}
			dss.Certificates = append(dss.Certificates, tok)
		}
	}

	if arr, ok := dict.Get("OCSPs").(generic.ArrayObject); ok {
		for _, obj := range arr {
			if s, ok := obj.(*generic.StreamObject); ok {
				dss.OCSPs = append(dss.OCSPs, s.GetDecodedData())
			}
		}
	}

	if arr, ok := dict.Get("CRLs").(generic.ArrayObject); ok {
		for _, obj := range arr {
			if s, ok := obj.(*generic.StreamObject); ok {
				dss.CRLs = append(dss.CRLs, s.GetDecodedData())
			}
		}
	}

	if vriDict := dict.GetDict("VRI"); vriDict != nil {
		for _, hash := range vriDict.Keys() {
			entryDict, ok := vriDict.Get(hash).(*generic.DictionaryObject)
			if !ok {
				continue
			}
			entry, err := parseVRIEntry(entryDict)
			if err != nil {
				return nil, err
			}
			dss.VRI[hash] = entry
		}
	}

	return dss, nil
}

func parseVRIEntry(dict *generic.DictionaryObject) (*VRIEntry, error) {
	entry := &VRIEntry{}

	if arr, ok := dict.Get("Cert").(generic.ArrayObject); ok {
		for _, obj := range arr {
			tok, err := certTokenFromStream(obj)
			if err != nil {
				return nil, err
			}
			entry.Certificates = append(entry.Certificates, tok)
		}
	}
	if arr, ok := dict.Get("OCSP").(generic.ArrayObject); ok {
		for _, obj := range arr {
			if s, ok := obj.(*generic.StreamObject); ok {
				entry.OCSPs = append(entry.OCSPs, s.GetDecodedData())
			}
		}
	}
	if arr, ok := dict.Get("CRL").(generic.ArrayObject); ok {
		for _, obj := range arr {
			if s, ok := obj.(*generic.StreamObject); ok {
				entry.CRLs = append(entry.CRLs, s.GetDecodedData())
			}
		}
	}

	return entry, nil
}

func certTokenFromStream(obj generic.PdfObject) (*x509token.CertificateToken, error) {
	s, ok := obj.(*generic.StreamObject)
	if !ok {
		return nil, errInvalidDSS{}
	}
	cert, err := x509.ParseCertificate(s.GetDecodedData())
	if err != nil {
		return nil, err
	}
	return x509token.New(cert), nil
}

// CertificateSource builds a source.CertificateSource tagged SourceDSS
// from every certificate the /DSS carries, for merging into the owning
// Signature's CompleteCertificateSource (P6).
func (d *DocumentSecurityStore) CertificateSource() *source.CertificateSource {
	src := source.NewCertificateSource(x509token.SourceDSS)
	for _, c := range d.Certificates {
		src.Add(c)
	}
	return src
}

// CRLSource builds a source.CRLSource from every CRL the /DSS carries.
func (d *DocumentSecurityStore) CRLSource() *source.CRLSource {
	src := source.NewCRLSource(x509token.SourceDSS)
	for _, der := range d.CRLs {
		src.Add(der)
	}
	return src
}

// OCSPSource builds a source.OCSPSource from every OCSP response the
// /DSS carries.
func (d *DocumentSecurityStore) OCSPSource() *source.OCSPSource {
	src := source.NewOCSPSource(x509token.SourceDSS)
	for _, der := range d.OCSPs {
		src.Add(der)
	}
	return src
}

// ApplyTo registers every certificate, CRL, and OCSP response this /DSS
// carries with sig's own embedded source, the PAdES-LT realization of
// CompleteCertificateSource/CompleteCRLSource/CompleteOCSPSource's merge
// across a signature and its timestamps (P6) — a PAdES-LT revision's /DSS
// is itself a container the signature owns, not a timestamp's.
func (d *DocumentSecurityStore) ApplyTo(sig *signature.Signature) {
	for _, c := range d.Certificates {
		sig.AddCertificate(c)
	}
	for _, der := range d.CRLs {
		sig.AddCRL(der)
	}
	for _, der := range d.OCSPs {
		sig.AddOCSPResponse(der)
	}
}

type errNoDSS struct{}

func (errNoDSS) Error() string { return "PDF revision has no /DSS dictionary" }

type errInvalidDSS struct{}

func (errInvalidDSS) Error() string { return "/DSS array entry is not a certificate/CRL/OCSP stream" }
