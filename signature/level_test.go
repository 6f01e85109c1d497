package signature

import (
	"testing"

	"github.com/mranest/dss/model"
)

// fakeBackend is a minimal Backend whose level ladder and presence map
// are set directly by a test, without constructing a real CMS/XML/PDF
// envelope.
type fakeBackend struct {
	levels  []model.SignatureLevel
	present map[model.SignatureLevel]bool
}

func (b *fakeBackend) DataToBeSigned() ([]byte, error) { return []byte("dtbsr"), nil }
func (b *fakeBackend) ValidateStructure() string       { return "" }
func (b *fakeBackend) SignatureLevels() []model.SignatureLevel {
	return b.levels
}
func (b *fakeBackend) IsDataForSignatureLevelPresent(level model.SignatureLevel) bool {
	return b.present[level]
}

func newTestSignature(backend *fakeBackend) *Signature {
	return New("sig-1", model.FormCAdES, backend)
}

func TestCheckLevelMonotonicityNoGap(t *testing.T) {
	backend := &fakeBackend{
		levels: []model.SignatureLevel{
			model.LevelCAdES_BASELINE_B,
			model.LevelCAdES_BASELINE_T,
			model.LevelCAdES_BASELINE_LT,
			model.LevelCAdES_BASELINE_LTA,
		},
		present: map[model.SignatureLevel]bool{
			model.LevelCAdES_BASELINE_B:   true,
			model.LevelCAdES_BASELINE_T:   true,
			model.LevelCAdES_BASELINE_LT:  true,
			model.LevelCAdES_BASELINE_LTA: true,
		},
	}
	sig := newTestSignature(backend)
	if got := sig.CheckLevelMonotonicity(); got != model.LevelUnknown {
		t.Fatalf("CheckLevelMonotonicity() = %v, want LevelUnknown (no gap)", got)
	}
}

func TestCheckLevelMonotonicityDetectsGap(t *testing.T) {
	backend := &fakeBackend{
		levels: []model.SignatureLevel{
			model.LevelCAdES_BASELINE_B,
			model.LevelCAdES_BASELINE_T,
			model.LevelCAdES_BASELINE_LT,
			model.LevelCAdES_BASELINE_LTA,
		},
		present: map[model.SignatureLevel]bool{
			model.LevelCAdES_BASELINE_B:   true,
			model.LevelCAdES_BASELINE_T:   false,
			model.LevelCAdES_BASELINE_LT:  true,
			model.LevelCAdES_BASELINE_LTA: true,
		},
	}
	sig := newTestSignature(backend)
	if got := sig.CheckLevelMonotonicity(); got != model.LevelCAdES_BASELINE_LT {
		t.Fatalf("CheckLevelMonotonicity() = %v, want LevelCAdES_BASELINE_LT (first level after the gap)", got)
	}
}

func TestHighestDataLevel(t *testing.T) {
	backend := &fakeBackend{
		levels: []model.SignatureLevel{
			model.LevelCAdES_BASELINE_B,
			model.LevelCAdES_BASELINE_T,
			model.LevelCAdES_BASELINE_LT,
			model.LevelCAdES_BASELINE_LTA,
		},
		present: map[model.SignatureLevel]bool{
			model.LevelCAdES_BASELINE_B: true,
			model.LevelCAdES_BASELINE_T: true,
		},
	}
	sig := newTestSignature(backend)
	if got := sig.HighestDataLevel(); got != model.LevelCAdES_BASELINE_T {
		t.Fatalf("HighestDataLevel() = %v, want LevelCAdES_BASELINE_T", got)
	}
}
