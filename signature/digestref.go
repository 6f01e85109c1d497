package signature

import "github.com/mranest/dss/model"

// SignatureDigestReference computes the DigestReference over s's DTBSR
// under alg (Supplemented Feature 5, ETSI TS 119 442
// SignatureDigestReference): a stable, content-addressable handle a
// report tool can cite without re-embedding the whole signature.
func (s *Signature) SignatureDigestReference(alg model.DigestAlgorithm) (*DigestReference, error) {
	dtbsr, err := s.backend.DataToBeSigned()
	if err != nil {
		return nil, err
	}
	value, err := s.engine.Digest(alg, dtbsr)
	if err != nil {
		return nil, err
	}
	return &DigestReference{DigestAlgorithm: alg, DigestValue: value}, nil
}
