package security

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// KeyPair is the process-wide token signing key. It is loaded once at
// startup and handed to the token service and the auth gate; a verifier
// only needs Public.
type KeyPair struct {
	Private ed25519.PrivateKey
	Public  ed25519.PublicKey
}

func GenerateKeyPair() (*KeyPair, error) {
	public, private, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating Ed25519 keypair: %w", err)
	}
	return &KeyPair{Private: private, Public: public}, nil
}

// LoadKeyPair reads a PKCS#8 private key and a PKIX public key, both PEM
// encoded, and checks that they belong together.
func LoadKeyPair(privatePath, publicPath string) (*KeyPair, error) {
	privatePEM, err := os.ReadFile(privatePath)
	if err != nil {
		return nil, fmt.Errorf("reading private key: %w", err)
	}
	publicPEM, err := os.ReadFile(publicPath)
	if err != nil {
		return nil, fmt.Errorf("reading public key: %w", err)
	}
	return ParseKeyPair(privatePEM, publicPEM)
}

func ParseKeyPair(privatePEM, publicPEM []byte) (*KeyPair, error) {
	parsed, err := jwt.ParseEdPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return nil, fmt.Errorf("parsing private key: %w", err)
	}
	private, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is %T, want ed25519.PrivateKey", parsed)
	}

	public, err := ParsePublicKey(publicPEM)
	if err != nil {
		return nil, err
	}

	if !public.Equal(private.Public()) {
		return nil, fmt.Errorf("public key does not match private key")
	}
	return &KeyPair{Private: private, Public: public}, nil
}

func LoadPublicKey(publicPath string) (ed25519.PublicKey, error) {
	publicPEM, err := os.ReadFile(publicPath)
	if err != nil {
		return nil, fmt.Errorf("reading public key: %w", err)
	}
	return ParsePublicKey(publicPEM)
}

func ParsePublicKey(publicPEM []byte) (ed25519.PublicKey, error) {
	parsed, err := jwt.ParseEdPublicKeyFromPEM(publicPEM)
	if err != nil {
		return nil, fmt.Errorf("parsing public key: %w", err)
	}
	public, ok := parsed.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("public key is %T, want ed25519.PublicKey", parsed)
	}
	return public, nil
}

// EncodePEM returns the private key as PKCS#8 and the public key as PKIX.
func (k *KeyPair) EncodePEM() (privatePEM, publicPEM []byte, err error) {
	privateDER, err := x509.MarshalPKCS8PrivateKey(k.Private)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding private key: %w", err)
	}
	publicDER, err := x509.MarshalPKIXPublicKey(k.Public)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding public key: %w", err)
	}

	privatePEM = pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privateDER})
	publicPEM = pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})
	return privatePEM, publicPEM, nil
}

// SaveKeyPair writes the pair as PEM files. The private key file is 0600.
func (k *KeyPair) SaveKeyPair(privatePath, publicPath string) error {
	privatePEM, publicPEM, err := k.EncodePEM()
	if err != nil {
		return err
	}
	if err := os.WriteFile(privatePath, privatePEM, 0600); err != nil {
		return fmt.Errorf("writing private key: %w", err)
	}
	if err := os.WriteFile(publicPath, publicPEM, 0644); err != nil {
		return fmt.Errorf("writing public key: %w", err)
	}
	return nil
}
