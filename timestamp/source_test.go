package timestamp

import (
	"testing"
	"time"

	"github.com/mranest/dss/cms"
)

// tokenOfType builds a minimal, already-parsed Token of typ with a
// distinct dss_id (derived from der), for exercising Source's
// classification and dedup without a real CMS/RFC 3161 byte stream.
func tokenOfType(t *testing.T, typ Type, der string) *Token {
	t.Helper()
	tstInfo := &cms.TSTInfo{
		GenTime: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		MessageImprint: cms.MessageImprint{
			HashAlgorithm: cms.AlgorithmIdentifier{Algorithm: oidSHA256},
		},
	}
	sd := &cms.ParsedSignedData{}
	tok, err := NewFromParsed(tstInfo, sd, []byte(der), typ)
	if err != nil {
		t.Fatalf("NewFromParsed: %v", err)
	}
	return tok
}

func TestSourceAddClassifiesByType(t *testing.T) {
	cases := []struct {
		typ    Type
		bucket func(*Source) []*Token
	}{
		{TypeContent, (*Source).Content},
		{TypeAllDataObjects, (*Source).AllDataObjects},
		{TypeIndividualDataObjects, (*Source).IndividualDataObjects},
		{TypeSignature, (*Source).Signature},
		{TypeValidationDataRefsOnly, (*Source).ValidationDataRefsOnly},
		{TypeValidationData, (*Source).ValidationData},
		{TypeArchive, (*Source).Archive},
		{TypeDocument, (*Source).Document},
	}

	for _, c := range cases {
		t.Run(c.typ.String(), func(t *testing.T) {
			src := NewSource()
			tok := tokenOfType(t, c.typ, "der-"+c.typ.String())
			src.Add(tok)

			bucket := c.bucket(src)
			if len(bucket) != 1 || bucket[0] != tok {
				t.Fatalf("%s: bucket = %v, want exactly the added token", c.typ, bucket)
			}

			// Every other bucket accessor must stay empty.
			for _, other := range cases {
				if other.typ == c.typ {
					continue
				}
				if len(other.bucket(src)) != 0 {
					t.Fatalf("%s: expected %s's token to land only in its own bucket, found it in %s too",
						c.typ, c.typ, other.typ)
				}
			}
		})
	}
}

func TestSourceAddUnknownTypeIsDropped(t *testing.T) {
	src := NewSource()
	src.Add(tokenOfType(t, TypeUnknown, "der-unknown"))
	if all := src.All(); len(all) != 0 {
		t.Fatalf("All() = %v, want empty: TypeUnknown matches no classification bucket", all)
	}
}

func TestSourceAddX1AndAddX2(t *testing.T) {
	src := NewSource()
	x1 := tokenOfType(t, TypeArchive, "der-x1")
	x2 := tokenOfType(t, TypeArchive, "der-x2")

	src.AddX1(x1)
	src.AddX2(x2)

	if got := src.X1(); len(got) != 1 || got[0] != x1 {
		t.Fatalf("X1() = %v, want [x1]", got)
	}
	if got := src.X2(); len(got) != 1 || got[0] != x2 {
		t.Fatalf("X2() = %v, want [x2]", got)
	}
	// AddX1/AddX2 file separately from Add/Type-based classification:
	// neither token was routed into Archive() by AddX1/AddX2 alone.
	if got := src.Archive(); len(got) != 0 {
		t.Fatalf("Archive() = %v, want empty: AddX1/AddX2 must not also populate Archive", got)
	}
}

func TestSourceAddExternalTimestampGoesToArchive(t *testing.T) {
	src := NewSource()
	tok := tokenOfType(t, TypeContent, "der-external")
	src.AddExternalTimestamp(tok)

	if got := src.Archive(); len(got) != 1 || got[0] != tok {
		t.Fatalf("Archive() = %v, want [tok] after AddExternalTimestamp", got)
	}
	if got := src.Content(); len(got) != 0 {
		t.Fatalf("Content() = %v, want empty: AddExternalTimestamp ignores tok's own Type", got)
	}
}

func TestSourceAllUnionsEveryBucket(t *testing.T) {
	src := NewSource()
	content := tokenOfType(t, TypeContent, "der-content")
	sig := tokenOfType(t, TypeSignature, "der-sig")
	archive := tokenOfType(t, TypeArchive, "der-archive")
	doc := tokenOfType(t, TypeDocument, "der-doc")

	src.Add(content)
	src.Add(sig)
	src.Add(archive)
	src.Add(doc)

	all := src.All()
	if len(all) != 4 {
		t.Fatalf("All() returned %d tokens, want 4", len(all))
	}
	seen := map[Type]bool{}
	for _, tok := range all {
		seen[tok.Type()] = true
	}
	for _, typ := range []Type{TypeContent, TypeSignature, TypeArchive, TypeDocument} {
		if !seen[typ] {
			t.Fatalf("All() missing a %s token", typ)
		}
	}
}

func TestSourceAllDedupsByIdentity(t *testing.T) {
	src := NewSource()

	// Same DER, constructed twice, shares a dss_id (P1) and is filed into
	// two different buckets (Document via a direct Add, X1 via AddX1);
	// All() must still report it once.
	shared := tokenOfType(t, TypeDocument, "der-shared")
	dup := tokenOfType(t, TypeDocument, "der-shared")
	if shared.ID() != dup.ID() {
		t.Fatalf("two tokens built from identical DER must share a dss_id (P1): %s != %s", shared.ID(), dup.ID())
	}

	src.Add(shared)
	src.AddX1(dup)

	all := src.All()
	if len(all) != 1 {
		t.Fatalf("All() = %d tokens, want 1: duplicate dss_id across buckets must collapse (P6)", len(all))
	}
	if all[0].ID() != shared.ID() {
		t.Fatalf("All()[0].ID() = %s, want %s", all[0].ID(), shared.ID())
	}
}

func TestSourceAllEmptyWhenNoTimestamps(t *testing.T) {
	src := NewSource()
	if all := src.All(); len(all) != 0 {
		t.Fatalf("All() = %v, want empty for a freshly constructed Source", all)
	}
}
