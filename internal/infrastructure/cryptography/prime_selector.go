package cryptography

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"rsa_key_service/internal/pkg/logger"
)

// PrimeSource yields primality-tested random primes of a requested bit
// length. It is the oracle behind the prime pair search; implementations
// must be cryptographically random.
type PrimeSource interface {
	Prime(bits int) (*big.Int, error)
}

// randPrimeSource draws primes from crypto/rand.
type randPrimeSource struct{}

// NewRandPrimeSource returns a PrimeSource backed by crypto/rand.
func NewRandPrimeSource() PrimeSource {
	return &randPrimeSource{}
}

func (s *randPrimeSource) Prime(bits int) (*big.Int, error) {
	prime, err := rand.Prime(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("failed to draw a %d-bit prime: %w", bits, err)
	}
	return prime, nil
}

// PrimePairSelector searches for prime pairs suitable as RSA factors.
type PrimePairSelector interface {
	// FindPQ returns two distinct primes (p, q) with p > q, each close to
	// nbits bits. See the primeSelector implementation for the accuracy
	// semantics.
	FindPQ(nbits int, accurate bool) (p, q *big.Int, err error)
}

type primeSelector struct {
	source PrimeSource
	logger logger.Logger
}

// NewPrimeSelector creates a prime pair selector drawing from the given
// source.
func NewPrimeSelector(source PrimeSource, logger logger.Logger) PrimePairSelector {
	return &primeSelector{
		source: source,
		logger: logger,
	}
}

// FindPQ returns two distinct primes (p, q) with p > q, each close to nbits
// bits. The bit lengths are skewed by nbits/16 in opposite directions so p
// and q are not close enough to enable square-root factoring of the product.
//
// In accurate mode the pair is only accepted once p*q has exactly 2*nbits
// bits; otherwise any distinct pair is accepted and the product may fall a
// few bits short. The search redraws p and q alternately until a pair is
// acceptable and is formally unbounded, although prime density makes it
// terminate quickly in practice.
func (s *primeSelector) FindPQ(nbits int, accurate bool) (p, q *big.Int, err error) {
	totalBits := nbits * 2

	shift := nbits / 16
	pbits := nbits + shift
	qbits := nbits - shift

	s.logger.Info("finding p for a ", totalBits, "-bit modulus")
	p, err = s.source.Prime(pbits)
	if err != nil {
		return nil, nil, err
	}
	s.logger.Info("finding q for a ", totalBits, "-bit modulus")
	q, err = s.source.Prime(qbits)
	if err != nil {
		return nil, nil, err
	}

	// Redraw p on one failed attempt and q on the next, to balance the
	// distributional bias of always resampling the same side.
	changeP := false
	for !s.acceptable(p, q, totalBits, accurate) {
		if changeP {
			s.logger.Info("finding another p")
			p, err = s.source.Prime(pbits)
		} else {
			s.logger.Info("finding another q")
			q, err = s.source.Prime(qbits)
		}
		if err != nil {
			return nil, nil, err
		}
		changeP = !changeP
	}

	// p > q is the CRT convention.
	if p.Cmp(q) < 0 {
		p, q = q, p
	}
	return p, q, nil
}

// acceptable reports whether the pair qualifies: p and q must differ, and in
// accurate mode their product must have exactly totalBits bits. The product
// bit length is recomputed from scratch on every attempt.
func (s *primeSelector) acceptable(p, q *big.Int, totalBits int, accurate bool) bool {
	if p.Cmp(q) == 0 {
		return false
	}
	if !accurate {
		return true
	}
	return new(big.Int).Mul(p, q).BitLen() == totalBits
}
