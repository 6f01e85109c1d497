package source

import (
	"crypto/sha256"

	"github.com/mranest/dss/x509token"
)

// RevocationArtifact is the minimal shape the core needs from a CRL or
// OCSP response: its DER bytes, used both for deduplication (by content
// hash, since CRLs/OCSP responses have no dss_id-worthy canonical
// identifier of their own in the core's scope) and for handing back to
// the caller's revocation-timing logic unopened.
type RevocationArtifact struct {
	DER []byte
}

func artifactKey(der []byte) [32]byte { return sha256.Sum256(der) }

// CRLSource is the set of CRLs extracted from one container.
type CRLSource struct {
	sourceType x509token.SourceType
	crls       []RevocationArtifact
	seen       map[[32]byte]struct{}
}

// NewCRLSource returns an empty CRL source tagged with typ.
func NewCRLSource(typ x509token.SourceType) *CRLSource {
	return &CRLSource{sourceType: typ, seen: map[[32]byte]struct{}{}}
}

// Type returns the source's SourceType.
func (s *CRLSource) Type() x509token.SourceType { return s.sourceType }

// Add registers a CRL, deduplicating by content.
func (s *CRLSource) Add(der []byte) {
	k := artifactKey(der)
	if _, ok := s.seen[k]; ok {
		return
	}
	s.seen[k] = struct{}{}
	s.crls = append(s.crls, RevocationArtifact{DER: der})
}

// CRLs returns the CRLs in this source.
func (s *CRLSource) CRLs() []RevocationArtifact {
	return append([]RevocationArtifact(nil), s.crls...)
}

// OCSPSource is the set of OCSP responses extracted from one container.
type OCSPSource struct {
	sourceType x509token.SourceType
	resps      []RevocationArtifact
	seen       map[[32]byte]struct{}
}

// NewOCSPSource returns an empty OCSP source tagged with typ.
func NewOCSPSource(typ x509token.SourceType) *OCSPSource {
	return &OCSPSource{sourceType: typ, seen: map[[32]byte]struct{}{}}
}

// Type returns the source's SourceType.
func (s *OCSPSource) Type() x509token.SourceType { return s.sourceType }

// Add registers an OCSP response, deduplicating by content.
func (s *OCSPSource) Add(der []byte) {
	k := artifactKey(der)
	if _, ok := s.seen[k]; ok {
		return
	}
	s.seen[k] = struct{}{}
	s.resps = append(s.resps, RevocationArtifact{DER: der})
}

// Responses returns the OCSP responses in this source.
func (s *OCSPSource) Responses() []RevocationArtifact {
	return append([]RevocationArtifact(nil), s.resps...)
}

// MergeCertificateSources builds the "List*"/"complete_*" merged view
// spec.md §3 and §4.4 require: every certificate across all given sources,
// duplicates collapsed by certificate identity (P6).
func MergeCertificateSources(sources ...*CertificateSource) []*x509token.CertificateToken {
	var out []*x509token.CertificateToken
	seen := map[string]struct{}{}
	for _, s := range sources {
		if s == nil {
			continue
		}
		for _, c := range s.Certificates() {
			id := string(c.ID())
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// MergeCRLSources builds the merged CRL view across sources, deduplicated
// by content.
func MergeCRLSources(sources ...*CRLSource) []RevocationArtifact {
	var out []RevocationArtifact
	seen := map[[32]byte]struct{}{}
	for _, s := range sources {
		if s == nil {
			continue
		}
		for _, a := range s.CRLs() {
			k := artifactKey(a.DER)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, a)
		}
	}
	return out
}

// MergeOCSPSources builds the merged OCSP view across sources,
// deduplicated by content.
func MergeOCSPSources(sources ...*OCSPSource) []RevocationArtifact {
	var out []RevocationArtifact
	seen := map[[32]byte]struct{}{}
	for _, s := range sources {
		if s == nil {
			continue
		}
		for _, a := range s.Responses() {
			k := artifactKey(a.DER)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, a)
		}
	}
	return out
}
