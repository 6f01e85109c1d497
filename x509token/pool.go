package x509token

import (
	"sync"

	"github.com/mranest/dss/model"
)

// SourceType tags which kind of container a certificate was contributed
// by, mirroring spec.md §3's {SIGNATURE, TIMESTAMP, OCSP_RESPONSE, AIA,
// TRUSTED_STORE, …} set.
type SourceType int

const (
	SourceUnknown SourceType = iota
	SourceSignature
	SourceTimestamp
	SourceOCSPResponse
	SourceCRL
	SourceAIA
	SourceTrustedStore
	SourceDSS
)

func (s SourceType) String() string {
	switch s {
	case SourceSignature:
		return "SIGNATURE"
	case SourceTimestamp:
		return "TIMESTAMP"
	case SourceOCSPResponse:
		return "OCSP_RESPONSE"
	case SourceCRL:
		return "CRL"
	case SourceAIA:
		return "AIA"
	case SourceTrustedStore:
		return "TRUSTED_STORE"
	case SourceDSS:
		return "DSS"
	default:
		return "UNKNOWN"
	}
}

// entry pairs the canonical token with the set of source types that have
// contributed it, the way the teacher's sign/dss.DSS.AddCertificate
// dedups on add but additionally records provenance (spec.md §3
// CertificatePool invariant).
type entry struct {
	token   *CertificateToken
	sources map[SourceType]struct{}
}

// CertificatePool is the deduplicating, concurrency-safe registry spec.md
// §3/§5 requires: a map from dss_id to the canonical CertificateToken,
// plus the set of sources that contributed it. Mutating operations are
// serialized by a single mutex; reads may run concurrently with other
// reads (spec.md §5 — the pool is not on a hot path, so one mutex
// suffices).
type CertificatePool struct {
	mu      sync.RWMutex
	entries map[model.Identifier]*entry
}

// NewCertificatePool returns an empty pool.
func NewCertificatePool() *CertificatePool {
	return &CertificatePool{entries: make(map[model.Identifier]*entry)}
}

// Add registers token as having been seen via source, returning the
// canonical instance for token's dss_id (which may be a previously added
// token with byte-identical DER, per the pool's dedup invariant).
func (p *CertificatePool) Add(token *CertificateToken, source SourceType) *CertificateToken {
	p.mu.Lock()
	defer p.mu.Unlock()

	e, ok := p.entries[token.ID()]
	if !ok {
		e = &entry{token: token, sources: map[SourceType]struct{}{}}
		p.entries[token.ID()] = e
	}
	e.sources[source] = struct{}{}
	return e.token
}

// Get returns the canonical token for id, or nil if unknown.
func (p *CertificatePool) Get(id model.Identifier) *CertificateToken {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if e, ok := p.entries[id]; ok {
		return e.token
	}
	return nil
}

// Sources returns the set of SourceTypes that have contributed id, or nil
// if id is unknown to the pool.
func (p *CertificatePool) Sources(id model.Identifier) []SourceType {
	p.mu.RLock()
	defer p.mu.RUnlock()
	e, ok := p.entries[id]
	if !ok {
		return nil
	}
	out := make([]SourceType, 0, len(e.sources))
	for s := range e.sources {
		out = append(out, s)
	}
	return out
}

// All returns every canonical token currently registered. Order is
// unspecified.
func (p *CertificatePool) All() []*CertificateToken {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]*CertificateToken, 0, len(p.entries))
	for _, e := range p.entries {
		out = append(out, e.token)
	}
	return out
}

// Len reports the number of distinct certificates registered.
func (p *CertificatePool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.entries)
}
