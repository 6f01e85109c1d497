package signature

// Policy is a resolved signature policy document reference (spec.md
// §3/§4.4's policy_id resolution target). The policy's actual content
// (hash rules, commitment constraints) is a caller concern; the core
// only needs enough to record whether resolution succeeded and what was
// found.
type Policy struct {
	Identifier  string
	Description string
	// Digest, if non-nil, is the policy document's digest as asserted by
	// the signature's signed policy-hash property, for the provider to
	// cross-check against the document it resolved.
	Digest []byte
}

// PolicyCheckResult is the outcome CheckSignaturePolicy records.
type PolicyCheckResult struct {
	Identified bool
	Policy     *Policy
	ErrorMessage string
}

// PolicyProvider is the injected collaborator spec.md §4.4/§6 names:
// given a policy identifier, resolve the policy document (or report that
// none could be found/verified).
type PolicyProvider interface {
	Resolve(policyID string) (*Policy, bool, error)
}
