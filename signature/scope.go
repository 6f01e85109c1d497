package signature

// ScopeCategory names what kind of thing a SignatureScope describes.
type ScopeCategory int

const (
	ScopeUnknown ScopeCategory = iota
	ScopeFullDocument
	ScopePartialDocument
	ScopeDigestReference
	ScopeManifest
	ScopeManifestEntry
)

func (s ScopeCategory) String() string {
	switch s {
	case ScopeFullDocument:
		return "FULL"
	case ScopePartialDocument:
		return "PARTIAL"
	case ScopeDigestReference:
		return "DIGEST"
	case ScopeManifest:
		return "MANIFEST"
	case ScopeManifestEntry:
		return "MANIFEST_ENTRY"
	default:
		return "UNKNOWN"
	}
}

// Scope is an abstract descriptor of what bytes/objects a signature
// actually covers (spec.md glossary "Signature scope"), produced by an
// injected Finder rather than computed by the core itself — scope
// derivation is format-specific (XPath transforms for XAdES, byte ranges
// for PAdES, manifest resolution for ASiC-E) and stays external per the
// Non-goals on byte-level parsing.
type Scope struct {
	Name        string
	Description string
	Category    ScopeCategory
}

// Finder is the injected strategy FindSignatureScope delegates to
// (spec.md §4.4).
type Finder interface {
	Find(sig *Signature) ([]Scope, error)
}
