package digest

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/mranest/dss/model"
)

func TestDigestSHA256(t *testing.T) {
	e := New()
	data := []byte("the quick brown fox")
	got, err := e.Digest(model.DigestSHA256, data)
	if err != nil {
		t.Fatalf("Digest returned error: %v", err)
	}
	want := sha256.Sum256(data)
	if !bytes.Equal(got, want[:]) {
		t.Fatalf("Digest(SHA256, %q) = %x, want %x", data, got, want)
	}
}

func TestDigestStreamMatchesDigest(t *testing.T) {
	e := New()
	data := []byte("streamed content for message imprint comparison")

	direct, err := e.Digest(model.DigestSHA256, data)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	streamed, err := e.DigestStream(model.DigestSHA256, bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DigestStream: %v", err)
	}
	if !bytes.Equal(direct, streamed) {
		t.Fatalf("Digest and DigestStream disagree: %x vs %x", direct, streamed)
	}
}

func TestDigestUnsupportedAlgorithm(t *testing.T) {
	e := New()
	if _, err := e.Digest(model.DigestWhirlpool, []byte("x")); !errors.Is(err, ErrUnsupportedDigestAlgorithm) {
		t.Fatalf("Digest(Whirlpool, ...) error = %v, want ErrUnsupportedDigestAlgorithm", err)
	}
}

func TestDigestUnknownAlgorithm(t *testing.T) {
	e := New()
	if _, err := e.Digest(model.DigestUnknown, []byte("x")); !errors.Is(err, ErrUnsupportedDigestAlgorithm) {
		t.Fatalf("Digest(Unknown, ...) error = %v, want ErrUnsupportedDigestAlgorithm", err)
	}
}

func TestDigestAllSupportedAlgorithmsProduceOutput(t *testing.T) {
	e := New()
	algs := []model.DigestAlgorithm{
		model.DigestMD5, model.DigestSHA1, model.DigestSHA224, model.DigestSHA256,
		model.DigestSHA384, model.DigestSHA512, model.DigestSHA3_256,
		model.DigestSHA3_384, model.DigestSHA3_512, model.DigestRIPEMD160,
	}
	for _, alg := range algs {
		got, err := e.Digest(alg, []byte("data"))
		if err != nil {
			t.Fatalf("%s: Digest returned error: %v", alg, err)
		}
		if len(got) == 0 {
			t.Fatalf("%s: Digest returned empty output", alg)
		}
	}
}
