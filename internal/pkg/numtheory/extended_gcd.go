// Package numtheory provides the number-theoretic primitives used by RSA key
// generation, most importantly the extended Euclidean algorithm for computing
// modular inverses of arbitrary-precision integers.
package numtheory

import "math/big"

// ExtendedGCD returns (g, x, y) such that g = gcd(a, b) and
// a*x + b*y is congruent to g modulo a*b.
//
// The implementation is iterative rather than recursive so that stack depth
// stays constant for very large operands. Negative Bezout coefficients are
// wrapped modulo the original inputs: a negative x is shifted by the original
// b, a negative y by the original a, so both returned coefficients are always
// non-negative. This makes x directly usable as the multiplicative inverse of
// a modulo b (when g == 1), and y as the inverse of b modulo a.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	origA := new(big.Int).Set(a)
	origB := new(big.Int).Set(b)

	a = new(big.Int).Set(a)
	b = new(big.Int).Set(b)

	x, y = big.NewInt(0), big.NewInt(1)
	lastX, lastY := big.NewInt(1), big.NewInt(0)

	for b.Sign() != 0 {
		q := new(big.Int).Quo(a, b)
		r := new(big.Int).Mod(a, b)
		a, b = b, r

		x, lastX = new(big.Int).Sub(lastX, new(big.Int).Mul(q, x)), x
		y, lastY = new(big.Int).Sub(lastY, new(big.Int).Mul(q, y)), y
	}

	if lastX.Sign() < 0 {
		lastX.Add(lastX, origB)
	}
	if lastY.Sign() < 0 {
		lastY.Add(lastY, origA)
	}

	return a, lastX, lastY
}

// ModInverse returns the multiplicative inverse of a modulo m, or false when
// a and m are not coprime.
func ModInverse(a, m *big.Int) (*big.Int, bool) {
	g, x, _ := ExtendedGCD(a, m)
	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, false
	}
	return x, true
}
