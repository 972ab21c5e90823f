// Package pkcs1 serializes RSA key entities to and from the canonical PKCS#1
// structure, as DER bytes or a PEM envelope.
package pkcs1

import (
	"encoding/asn1"
	"encoding/pem"
	"fmt"
	"math/big"

	"rsa_key_service/internal/domain/keys"
	"rsa_key_service/internal/pkg/logger"
)

// PEM envelope types. The markers must match other PKCS#1 implementations
// byte for byte.
const (
	publicKeyPEMType  = "RSA PUBLIC KEY"
	privateKeyPEMType = "RSA PRIVATE KEY"
)

// asnPublicKey mirrors the RSAPublicKey ASN.1 sequence:
//
//	RSAPublicKey ::= SEQUENCE { modulus INTEGER, publicExponent INTEGER }
type asnPublicKey struct {
	Modulus        *big.Int
	PublicExponent *big.Int
}

// asnPrivateKey mirrors the RSAPrivateKey ASN.1 sequence:
//
//	RSAPrivateKey ::= SEQUENCE {
//	    version          INTEGER (0),
//	    modulus          INTEGER,
//	    publicExponent   INTEGER,
//	    privateExponent  INTEGER,
//	    prime1           INTEGER,
//	    prime2           INTEGER,
//	    exponent1        INTEGER,
//	    exponent2        INTEGER,
//	    coefficient      INTEGER
//	}
//
// The field order is fixed by the standard; reordering breaks
// interoperability.
type asnPrivateKey struct {
	Version         int64
	Modulus         *big.Int
	PublicExponent  *big.Int
	PrivateExponent *big.Int
	Prime1          *big.Int
	Prime2          *big.Int
	Exponent1       *big.Int
	Exponent2       *big.Int
	Coefficient     *big.Int
}

// pkcs1Codec struct that implements the keys.PKCS1Codec interface
type pkcs1Codec struct {
	logger logger.Logger
}

// NewPKCS1Codec creates and returns a new instance of pkcs1Codec
func NewPKCS1Codec(logger logger.Logger) keys.PKCS1Codec {
	return &pkcs1Codec{
		logger: logger,
	}
}

// LoadPublicKey decodes a PKCS#1 RSAPublicKey in the requested format.
func (c *pkcs1Codec) LoadPublicKey(data []byte, format keys.Format) (*keys.PublicKey, error) {
	switch format {
	case keys.FormatDER:
		return c.loadPublicKeyDER(data)
	case keys.FormatPEM:
		der, err := unwrapPEM(data, publicKeyPEMType)
		if err != nil {
			return nil, err
		}
		return c.loadPublicKeyDER(der)
	default:
		return nil, &keys.UnsupportedFormatError{Format: string(format), Valid: keys.SupportedFormats()}
	}
}

// SavePublicKey encodes the key as a PKCS#1 RSAPublicKey in the requested
// format.
func (c *pkcs1Codec) SavePublicKey(key *keys.PublicKey, format keys.Format) ([]byte, error) {
	switch format {
	case keys.FormatDER:
		return c.savePublicKeyDER(key)
	case keys.FormatPEM:
		der, err := c.savePublicKeyDER(key)
		if err != nil {
			return nil, err
		}
		return wrapPEM(der, publicKeyPEMType), nil
	default:
		return nil, &keys.UnsupportedFormatError{Format: string(format), Valid: keys.SupportedFormats()}
	}
}

// LoadPrivateKey decodes a PKCS#1 RSAPrivateKey in the requested format.
func (c *pkcs1Codec) LoadPrivateKey(data []byte, format keys.Format) (*keys.PrivateKey, error) {
	switch format {
	case keys.FormatDER:
		return c.loadPrivateKeyDER(data)
	case keys.FormatPEM:
		der, err := unwrapPEM(data, privateKeyPEMType)
		if err != nil {
			return nil, err
		}
		return c.loadPrivateKeyDER(der)
	default:
		return nil, &keys.UnsupportedFormatError{Format: string(format), Valid: keys.SupportedFormats()}
	}
}

// SavePrivateKey encodes the key as a version-0 PKCS#1 RSAPrivateKey in the
// requested format.
func (c *pkcs1Codec) SavePrivateKey(key *keys.PrivateKey, format keys.Format) ([]byte, error) {
	switch format {
	case keys.FormatDER:
		return c.savePrivateKeyDER(key)
	case keys.FormatPEM:
		der, err := c.savePrivateKeyDER(key)
		if err != nil {
			return nil, err
		}
		return wrapPEM(der, privateKeyPEMType), nil
	default:
		return nil, &keys.UnsupportedFormatError{Format: string(format), Valid: keys.SupportedFormats()}
	}
}

func (c *pkcs1Codec) loadPublicKeyDER(der []byte) (*keys.PublicKey, error) {
	var parsed asnPublicKey
	if _, err := asn1.Unmarshal(der, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode RSAPublicKey sequence: %w", err)
	}
	c.logger.Info("decoded a PKCS#1 public key with a ", parsed.Modulus.BitLen(), "-bit modulus")
	return keys.NewPublicKey(parsed.Modulus, parsed.PublicExponent), nil
}

func (c *pkcs1Codec) savePublicKeyDER(key *keys.PublicKey) ([]byte, error) {
	der, err := asn1.Marshal(asnPublicKey{
		Modulus:        key.N,
		PublicExponent: key.E,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode RSAPublicKey sequence: %w", err)
	}
	return der, nil
}

func (c *pkcs1Codec) loadPrivateKeyDER(der []byte) (*keys.PrivateKey, error) {
	var parsed asnPrivateKey
	if _, err := asn1.Unmarshal(der, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode RSAPrivateKey sequence: %w", err)
	}

	if parsed.Version != 0 {
		return nil, &keys.UnsupportedVersionError{Version: parsed.Version}
	}
	c.logger.Info("decoded a PKCS#1 private key with a ", parsed.Modulus.BitLen(), "-bit modulus")

	// The serialized CRT parameters are trusted verbatim so that a decoded
	// key round-trips to identical bytes.
	return keys.NewPrivateKeyWithCRT(
		parsed.Modulus,
		parsed.PublicExponent,
		parsed.PrivateExponent,
		parsed.Prime1,
		parsed.Prime2,
		parsed.Exponent1,
		parsed.Exponent2,
		parsed.Coefficient,
	), nil
}

func (c *pkcs1Codec) savePrivateKeyDER(key *keys.PrivateKey) ([]byte, error) {
	der, err := asn1.Marshal(asnPrivateKey{
		Version:         0,
		Modulus:         key.N,
		PublicExponent:  key.E,
		PrivateExponent: key.D,
		Prime1:          key.P,
		Prime2:          key.Q,
		Exponent1:       key.Exp1,
		Exponent2:       key.Exp2,
		Coefficient:     key.Coef,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode RSAPrivateKey sequence: %w", err)
	}
	return der, nil
}

// unwrapPEM extracts the DER payload of the first PEM block in data. Text
// surrounding the BEGIN/END markers is ignored; a block of a different type
// is rejected.
func unwrapPEM(data []byte, pemType string) ([]byte, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found in input")
	}
	if block.Type != pemType {
		return nil, fmt.Errorf("expected a %q PEM block, found %q", pemType, block.Type)
	}
	return block.Bytes, nil
}

// wrapPEM encloses DER bytes in a PEM envelope of the given type.
func wrapPEM(der []byte, pemType string) []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  pemType,
		Bytes: der,
	})
}
