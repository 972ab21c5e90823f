package cryptography

import (
	"math/big"

	"rsa_key_service/internal/domain/keys"
	"rsa_key_service/internal/pkg/logger"
	"rsa_key_service/internal/pkg/numtheory"
)

// PublicExponent is the fixed RSA public exponent used for every generated
// key. 65537 is prime, so it is coprime with phi(n) for almost every prime
// pair, and its low Hamming weight keeps public-key operations cheap.
const PublicExponent = 65537

// MinKeyBits is the smallest modulus size NewKeys accepts.
const MinKeyBits = 16

// keyPairGenerator implements keys.KeyPairGenerator on top of a prime pair
// selector and the extended Euclidean algorithm.
type keyPairGenerator struct {
	selector PrimePairSelector
	logger   logger.Logger
}

// NewKeyPairGenerator creates a generator drawing primes from the given
// source.
func NewKeyPairGenerator(source PrimeSource, logger logger.Logger) keys.KeyPairGenerator {
	return &keyPairGenerator{
		selector: NewPrimeSelector(source, logger),
		logger:   logger,
	}
}

// NewKeys generates a fresh key pair with an nbits-bit modulus. Each prime
// targets nbits/2 bits. In accurate mode the modulus has exactly nbits bits.
func (g *keyPairGenerator) NewKeys(nbits int, accurate bool) (*keys.PublicKey, *keys.PrivateKey, error) {
	if nbits < MinKeyBits {
		return nil, nil, &keys.KeyTooSmallError{Bits: nbits}
	}

	p, q, e, d, err := g.genKeys(nbits, accurate)
	if err != nil {
		return nil, nil, err
	}

	n := new(big.Int).Mul(p, q)
	g.logger.Info("generated an RSA key pair with a ", n.BitLen(), "-bit modulus")

	return keys.NewPublicKey(n, e), keys.NewPrivateKey(n, e, d, p, q), nil
}

// genKeys selects the prime pair and derives the exponent pair.
func (g *keyPairGenerator) genKeys(nbits int, accurate bool) (p, q, e, d *big.Int, err error) {
	p, q, err = g.selector.FindPQ(nbits/2, accurate)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	e, d, err = g.calculateKeys(p, q)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return p, q, e, d, nil
}

// calculateKeys derives the exponent pair (e, d) for the primes p and q.
// e is fixed at PublicExponent; d is its inverse modulo phi = (p-1)*(q-1).
func (g *keyPairGenerator) calculateKeys(p, q *big.Int) (e, d *big.Int, err error) {
	one := big.NewInt(1)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))

	e = big.NewInt(PublicExponent)

	divider, d, _ := numtheory.ExtendedGCD(e, phi)

	// Astronomically unlikely for e = 65537, but generation must not
	// proceed on a shared factor.
	if divider.Cmp(one) != 0 {
		return nil, nil, &keys.NotCoprimeError{E: e, Phi: phi}
	}
	if d.Sign() < 0 {
		return nil, nil, &keys.InvariantViolationError{
			Detail: "extended GCD returned a negative inverse",
		}
	}
	if check := new(big.Int).Mul(e, d); check.Mod(check, phi).Cmp(one) != 0 {
		return nil, nil, &keys.InvariantViolationError{
			Detail: "e*d mod phi_n != 1",
		}
	}

	return e, d, nil
}
