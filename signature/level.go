package signature

import "github.com/mranest/dss/model"

// HighestDataLevel is DataFoundUpToLevel under its spec.md §4.4 name,
// kept as a separate entry point for callers that want the monotonicity
// check (CheckLevelMonotonicity) alongside the plain highest-level query.
func (s *Signature) HighestDataLevel() model.SignatureLevel { return s.DataFoundUpToLevel() }

// CheckLevelMonotonicity verifies P5: once IsDataForSignatureLevelPresent
// is false for some level in the ladder, it must be false for every level
// above it too — a signature cannot skip a rung (e.g. have -LTA material
// without -LT material). It returns the first level at which the ladder
// breaks monotonicity, or model.LevelUnknown if it holds throughout.
func (s *Signature) CheckLevelMonotonicity() model.SignatureLevel {
	levels := s.SignatureLevels()
	seenGap := false
	for _, level := range levels {
		present := s.IsDataForSignatureLevelPresent(level)
		if !present {
			seenGap = true
			continue
		}
		if seenGap {
			return level
		}
	}
	return model.LevelUnknown
}
