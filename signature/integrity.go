package signature

import (
	"crypto/x509"

	"github.com/mranest/dss/model"
	"github.com/mranest/dss/x509token"
)

// CheckSignatureIntegrity recomputes the DTBSR via Backend, walks every
// candidate in CandidatesForSigningCertificate, and elects the first one
// whose public key verifies the raw signature (spec.md §4.4/§4.5). S5:
// when DataToBeSigned fails because detached content was never supplied,
// the failure is recorded on the result rather than returned as an error,
// since "signature present but unverifiable for lack of input" is itself
// a meaningful validation outcome, not a caller bug.
func (s *Signature) CheckSignatureIntegrity() (*SignatureCryptographicVerification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := &SignatureCryptographicVerification{}

	dtbsr, err := s.backend.DataToBeSigned()
	if err != nil {
		result.ErrorMessage = err.Error()
		s.cryptoVerification = result
		return result, nil
	}

	candidates := s.candidates.All()
	if len(candidates) == 0 && s.providedSigningCertificate != nil {
		candidates = []*Candidate{s.candidates.Add(CandidateSourceCallerSupplied, s.providedSigningCertificate)}
	}

	alg := model.SignatureAlgorithm{Encryption: s.encryptionAlgorithm, Digest: s.digestAlgorithm, MGF: s.maskGenerationFunction}

	var lastErr string
	for _, cand := range candidates {
		if cand.Certificate == nil {
			continue
		}
		ok, verifyErr := s.cryptoBackend.Verify(cand.Certificate.PublicKey(), alg, dtbsr, s.signatureValue)
		if verifyErr != nil {
			lastErr = verifyErr.Error()
			continue
		}
		cand.Valid = ok
		if ok {
			s.candidates.elect(cand)
			result.SignatureIntact = true
			result.UsedSigningCertificate = cand.Certificate
			result.ReferencesValid = s.allReferencesIntact()
			s.cryptoVerification = result
			s.signingCertToken = cand.Certificate
			return result, nil
		}
	}

	if lastErr != "" {
		result.ErrorMessage = lastErr
	} else {
		result.ErrorMessage = "no candidate signing certificate verified the signature"
	}
	s.cryptoVerification = result
	return result, nil
}

func (s *Signature) allReferencesIntact() bool {
	if len(s.referenceValidations) == 0 {
		return true
	}
	for _, r := range s.referenceValidations {
		if !r.Found || !r.Intact {
			return false
		}
	}
	return true
}

// CryptographicVerification returns the result of the last
// CheckSignatureIntegrity call, or nil if it has never been called.
func (s *Signature) CryptographicVerification() *SignatureCryptographicVerification {
	return s.cryptoVerification
}

// AddReferenceValidation records one signed-reference outcome (XAdES
// <Reference> digests, or the CAdES message-imprint), for later
// aggregation into SignatureCryptographicVerification.ReferencesValid.
func (s *Signature) AddReferenceValidation(r ReferenceValidation) {
	s.referenceValidations = append(s.referenceValidations, r)
}

// ReferenceValidations returns every recorded signed-reference outcome.
func (s *Signature) ReferenceValidations() []ReferenceValidation {
	return append([]ReferenceValidation(nil), s.referenceValidations...)
}

// AddCandidateSigningCertificate registers one
// CandidatesForSigningCertificate entry found in a signed or unsigned
// property, in the order the parser encountered them (spec.md §4.6).
func (s *Signature) AddCandidateSigningCertificate(src CandidateSource, cert *x509token.CertificateToken) *Candidate {
	return s.candidates.Add(src, cert)
}

// CandidatesForSigningCertificate returns every candidate recorded so
// far, in the order added.
func (s *Signature) CandidatesForSigningCertificate() []*Candidate { return s.candidates.All() }

// GetSigningCertificateToken returns the elected candidate's certificate,
// or nil if CheckSignatureIntegrity has not yet elected one.
func (s *Signature) GetSigningCertificateToken() *x509token.CertificateToken {
	if elected := s.candidates.Elected(); elected != nil {
		return elected.Certificate
	}
	return nil
}

// CheckSigningCertificate detects the substitution attack S6 names: a
// signed SigningCertificate(V2) property names a certificate by
// digest/issuer-serial, but the certificate that actually verified the
// signature (the elected candidate) does not match it. It reports a
// mismatch when any candidate sourced from a signed property has a
// dss_id different from the elected candidate's; with no elected
// candidate it reports no mismatch.
func (s *Signature) CheckSigningCertificate() (mismatch bool, detail string) {
	elected := s.candidates.Elected()
	if elected == nil || elected.Certificate == nil {
		return false, ""
	}
	for _, cand := range s.candidates.All() {
		if cand == elected || cand.Certificate == nil {
			continue
		}
		if cand.Source == CandidateSourceSignedProperty && cand.Certificate.ID() != elected.Certificate.ID() {
			return true, "signed SigningCertificate property names a certificate different from the one that verified the signature"
		}
	}
	return false, ""
}

// CheckSignaturePolicy resolves s's PolicyID via provider, recording and
// returning the outcome (spec.md §4.4).
func (s *Signature) CheckSignaturePolicy(provider PolicyProvider) (*PolicyCheckResult, error) {
	if s.policyID == "" {
		result := &PolicyCheckResult{Identified: false}
		s.policyResult = result
		return result, nil
	}
	policy, found, err := provider.Resolve(s.policyID)
	if err != nil {
		result := &PolicyCheckResult{Identified: false, ErrorMessage: err.Error()}
		s.policyResult = result
		return result, err
	}
	result := &PolicyCheckResult{Identified: found, Policy: policy}
	s.policyResult = result
	return result, nil
}

// PolicyCheckResult returns the outcome of the last CheckSignaturePolicy
// call, or nil if it has never been called.
func (s *Signature) PolicyCheckResult() *PolicyCheckResult { return s.policyResult }

// FindSignatureScope delegates to finder to compute and cache s's
// signature scopes (spec.md §4.4).
func (s *Signature) FindSignatureScope(finder Finder) ([]Scope, error) {
	scopes, err := finder.Find(s)
	if err != nil {
		return nil, err
	}
	s.signatureScopes = scopes
	return append([]Scope(nil), scopes...), nil
}

// SignatureScopes returns the scopes found by the last FindSignatureScope
// call.
func (s *Signature) SignatureScopes() []Scope {
	return append([]Scope(nil), s.signatureScopes...)
}

// PrepareTimestamps emits s's own timestamps into ctx so a caller's
// certificate-chain builder processes them alongside everything else
// AddToken accumulates (spec.md §6).
func (s *Signature) PrepareTimestamps(ctx ValidationContext) {
	for _, tok := range s.timestamps.All() {
		ctx.AddToken(tok)
	}
}

// AllCertificatesSelfSigned reports whether every certificate in certs
// is self-signed (an empty slice reports false); callers pass e.g. a
// signature's CompleteCertificateSource —
// Supplemented Feature 4: a quick smoke-test for a test/demo signature
// whose whole chain is an ad hoc self-signed cert, useful to callers
// deciding whether to even attempt trust-anchor validation.
func AllCertificatesSelfSigned(certs []*x509token.CertificateToken) bool {
	if len(certs) == 0 {
		return false
	}
	for _, c := range certs {
		if !isSelfSigned(c.Certificate()) {
			return false
		}
	}
	return true
}

func isSelfSigned(cert *x509.Certificate) bool {
	if cert.Subject.String() != cert.Issuer.String() {
		return false
	}
	return cert.CheckSignatureFrom(cert) == nil
}
