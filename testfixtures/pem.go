package testfixtures

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
)

// Errors returned by the PEM/DER loading path, the complementary fixture
// source to LoadPKCS12 for material the examples ship as raw PEM (CA roots,
// intermediate chains) rather than password-protected bundles.
var (
	ErrNoCertFound     = errors.New("testfixtures: no certificate found in data")
	ErrNoKeyFound      = errors.New("testfixtures: no private key found in data")
	ErrUnknownKeyType  = errors.New("testfixtures: unknown private key type")
	ErrInvalidPEMBlock = errors.New("testfixtures: invalid PEM block")
	ErrMultipleCerts   = errors.New("testfixtures: expected exactly one certificate")
)

// LoadCertFromPEM decodes exactly one certificate from PEM or DER encoded
// data, returning ErrMultipleCerts if more than one CERTIFICATE block is
// present.
func LoadCertFromPEM(data []byte) (*x509.Certificate, error) {
	certs, err := LoadCertsFromPEM(data)
	if err != nil {
		return nil, err
	}
	if len(certs) != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrMultipleCerts, len(certs))
	}
	return certs[0], nil
}

// LoadCertsFromPEM decodes every certificate from PEM or DER encoded data.
func LoadCertsFromPEM(data []byte) ([]*x509.Certificate, error) {
	var certs []*x509.Certificate

	if isPEM(data) {
		rest := data
		for len(rest) > 0 {
			var block *pem.Block
			block, rest = pem.Decode(rest)
			if block == nil {
				break
			}
			if block.Type != "CERTIFICATE" {
				continue
			}
			cert, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				return nil, fmt.Errorf("testfixtures: failed to parse certificate: %w", err)
			}
			certs = append(certs, cert)
		}
	} else {
		cert, err := x509.ParseCertificate(data)
		if err != nil {
			parsed, parseErr := x509.ParseCertificates(data)
			if parseErr != nil {
				return nil, fmt.Errorf("testfixtures: failed to parse DER certificate: %w", err)
			}
			certs = parsed
		} else {
			certs = []*x509.Certificate{cert}
		}
	}

	if len(certs) == 0 {
		return nil, ErrNoCertFound
	}
	return certs, nil
}

// LoadKeyFromPEM decodes an unencrypted PKCS#1, PKCS#8, or SEC1 EC private
// key from PEM or DER encoded data.
func LoadKeyFromPEM(data []byte) (crypto.Signer, error) {
	if isPEM(data) {
		block, _ := pem.Decode(data)
		if block == nil {
			return nil, ErrInvalidPEMBlock
		}
		return parsePrivateKeyByType(block.Type, block.Bytes)
	}

	if key, err := x509.ParsePKCS8PrivateKey(data); err == nil {
		return toSigner(key)
	}
	if key, err := x509.ParsePKCS1PrivateKey(data); err == nil {
		return key, nil
	}
	if key, err := x509.ParseECPrivateKey(data); err == nil {
		return key, nil
	}
	return nil, ErrNoKeyFound
}

func parsePrivateKeyByType(blockType string, keyBytes []byte) (crypto.Signer, error) {
	switch blockType {
	case "RSA PRIVATE KEY":
		return x509.ParsePKCS1PrivateKey(keyBytes)
	case "EC PRIVATE KEY":
		return x509.ParseECPrivateKey(keyBytes)
	case "PRIVATE KEY", "ENCRYPTED PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(keyBytes)
		if err != nil {
			return nil, fmt.Errorf("testfixtures: failed to parse PKCS#8 private key: %w", err)
		}
		return toSigner(key)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKeyType, blockType)
	}
}

func toSigner(key interface{}) (crypto.Signer, error) {
	switch k := key.(type) {
	case *rsa.PrivateKey:
		return k, nil
	case *ecdsa.PrivateKey:
		return k, nil
	case ed25519.PrivateKey:
		return k, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownKeyType, key)
	}
}

// LoadIdentityFromPEM is the PEM/DER counterpart to LoadPKCS12: a
// certificate plus its unencrypted private key, loaded from two separate
// PEM/DER blobs rather than one password-protected bundle.
func LoadIdentityFromPEM(certData, keyData []byte) (*Identity, error) {
	cert, err := LoadCertFromPEM(certData)
	if err != nil {
		return nil, err
	}
	key, err := LoadKeyFromPEM(keyData)
	if err != nil {
		return nil, err
	}
	return &Identity{Certificate: cert, PrivateKey: key}, nil
}

func isPEM(data []byte) bool {
	return len(data) > 10 && string(data[:5]) == "-----"
}
