package timestamp

import (
	"testing"
	"time"

	"github.com/mranest/dss/clock"
	"github.com/mranest/dss/cms"
)

func tokenWithGenTime(genTime time.Time) *Token {
	return &Token{tstInfo: &cms.TSTInfo{GenTime: genTime}}
}

func TestIsGenerationTimeInFuture(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	fake := clock.NewFake(now)

	past := tokenWithGenTime(now.Add(-time.Minute))
	if past.IsGenerationTimeInFuture(fake) {
		t.Fatal("genTime in the past reported as in the future")
	}

	future := tokenWithGenTime(now.Add(time.Minute))
	if !future.IsGenerationTimeInFuture(fake) {
		t.Fatal("genTime in the future not detected")
	}
}

func TestIsGenerationTimeInFutureUnset(t *testing.T) {
	tok := tokenWithGenTime(time.Time{})
	if tok.IsGenerationTimeInFuture(clock.System()) {
		t.Fatal("zero genTime should never report as in the future")
	}
}
