package cryptoverify

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/mranest/dss/model"
)

func TestVerifyRSAPKCS1(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	data := []byte("data to be signed")
	hashed := digestOf(cryptoHashMustSHA256(t), data)
	sig, err := rsa.SignPKCS1v15(rand.Reader, key, cryptoHashMustSHA256(t), hashed)
	if err != nil {
		t.Fatalf("SignPKCS1v15: %v", err)
	}

	b := New()
	alg := model.SignatureAlgorithm{Encryption: model.EncryptionRSA, Digest: model.DigestSHA256}
	ok, err := b.Verify(&key.PublicKey, alg, data, sig)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("Verify returned false for a genuine RSA PKCS#1v1.5 signature")
	}
}

func cryptoHashMustSHA256(t *testing.T) crypto.Hash {
	h, err := cryptoHashFor(model.DigestSHA256)
	if err != nil {
		t.Fatalf("cryptoHashFor: %v", err)
	}
	return h
}

func TestVerifyRSAPKCS1WrongData(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	hashed := digestOf(cryptoHashMustSHA256(t), []byte("original"))
	sig, err := rsa.SignPKCS1v15(rand.Reader, key, cryptoHashMustSHA256(t), hashed)
	if err != nil {
		t.Fatalf("SignPKCS1v15: %v", err)
	}

	b := New()
	alg := model.SignatureAlgorithm{Encryption: model.EncryptionRSA, Digest: model.DigestSHA256}
	ok, err := b.Verify(&key.PublicKey, alg, []byte("tampered"), sig)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatal("Verify returned true for a signature over different data")
	}
}

func TestVerifyECDSA(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	data := []byte("ecdsa payload")
	hashed := digestOf(cryptoHashMustSHA256(t), data)
	sig, err := ecdsa.SignASN1(rand.Reader, key, hashed)
	if err != nil {
		t.Fatalf("SignASN1: %v", err)
	}

	b := New()
	alg := model.SignatureAlgorithm{Encryption: model.EncryptionECDSA, Digest: model.DigestSHA256}
	ok, err := b.Verify(&key.PublicKey, alg, data, sig)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("Verify returned false for a genuine ECDSA signature")
	}
}

func TestVerifyEd25519(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	data := []byte("ed25519 payload")
	sig := ed25519.Sign(priv, data)

	b := New()
	alg := model.SignatureAlgorithm{Encryption: model.EncryptionEd25519}
	ok, err := b.Verify(pub, alg, data, sig)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("Verify returned false for a genuine Ed25519 signature")
	}
}

func TestVerifyKeyTypeMismatch(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	b := New()
	alg := model.SignatureAlgorithm{Encryption: model.EncryptionRSA, Digest: model.DigestSHA256}
	if _, err := b.Verify(pub, alg, []byte("x"), []byte("sig")); err == nil {
		t.Fatal("expected a crypto backend fault when the public key does not match the declared algorithm")
	}
}

func TestVerifyUnsupportedEncryption(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	b := New()
	alg := model.SignatureAlgorithm{Encryption: model.EncryptionDSA, Digest: model.DigestSHA256}
	if _, err := b.Verify(&key.PublicKey, alg, []byte("x"), []byte("sig")); err == nil {
		t.Fatal("expected an error for an encryption algorithm this backend does not implement")
	}
}
