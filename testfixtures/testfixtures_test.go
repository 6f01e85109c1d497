package testfixtures

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"testing"
	"time"
)

func selfSignedIdentity(t *testing.T, cn string) (*ecdsa.PrivateKey, *x509.Certificate) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(99),
		Subject:      pkix.Name{CommonName: cn},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("CreateCertificate: %v", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("ParseCertificate: %v", err)
	}
	return key, cert
}

func TestBuildAndLoadPKCS12RoundTrip(t *testing.T) {
	key, cert := selfSignedIdentity(t, "pkcs12-roundtrip")

	bundle, err := BuildPKCS12(key, cert, nil, "test-password")
	if err != nil {
		t.Fatalf("BuildPKCS12: %v", err)
	}

	identity, err := LoadPKCS12(bundle, "test-password")
	if err != nil {
		t.Fatalf("LoadPKCS12: %v", err)
	}
	if identity.Certificate.Subject.CommonName != "pkcs12-roundtrip" {
		t.Fatalf("Certificate.Subject.CommonName = %q, want %q", identity.Certificate.Subject.CommonName, "pkcs12-roundtrip")
	}
	if identity.PrivateKey == nil {
		t.Fatal("PrivateKey should be populated after a round trip")
	}
}

func TestLoadPKCS12WrongPassword(t *testing.T) {
	key, cert := selfSignedIdentity(t, "pkcs12-wrong-password")
	bundle, err := BuildPKCS12(key, cert, nil, "correct")
	if err != nil {
		t.Fatalf("BuildPKCS12: %v", err)
	}
	if _, err := LoadPKCS12(bundle, "incorrect"); err == nil {
		t.Fatal("expected an error when decoding with the wrong password")
	}
}
