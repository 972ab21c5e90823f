package keys

import (
	"fmt"
	"math/big"

	"rsa_key_service/internal/pkg/numtheory"
)

// PublicKey represents the public half of an RSA key pair, also known as the
// encryption key. Instances are treated as immutable once constructed.
type PublicKey struct {
	N *big.Int // modulus
	E *big.Int // public exponent
}

// NewPublicKey constructs a PublicKey from its modulus and public exponent.
func NewPublicKey(n, e *big.Int) *PublicKey {
	return &PublicKey{N: n, E: e}
}

// Equal reports field-wise equality with another public key.
func (k *PublicKey) Equal(other *PublicKey) bool {
	if other == nil {
		return false
	}
	return k.N.Cmp(other.N) == 0 && k.E.Cmp(other.E) == 0
}

func (k *PublicKey) String() string {
	return fmt.Sprintf("PublicKey(%s, %s)", k.N, k.E)
}

// Validate checks the arithmetic invariants of the public key: a positive
// modulus and an exponent greater than one.
func (k *PublicKey) Validate() error {
	if k.N == nil || k.N.Sign() <= 0 {
		return &InvariantViolationError{Detail: "modulus must be positive"}
	}
	if k.E == nil || k.E.Cmp(big.NewInt(1)) <= 0 {
		return &InvariantViolationError{Detail: "public exponent must be greater than 1"}
	}
	return nil
}

// PrivateKey represents the private half of an RSA key pair, also known as
// the decryption key. Exp1, Exp2 and Coef are the Chinese Remainder Theorem
// parameters precomputed from d, p and q. Instances are treated as immutable
// once constructed.
type PrivateKey struct {
	N    *big.Int // modulus, p*q
	E    *big.Int // public exponent
	D    *big.Int // private exponent, inverse of e mod (p-1)*(q-1)
	P    *big.Int // first prime factor, p > q
	Q    *big.Int // second prime factor
	Exp1 *big.Int // d mod (p-1)
	Exp2 *big.Int // d mod (q-1)
	Coef *big.Int // inverse of q mod p
}

// NewPrivateKey constructs a PrivateKey from the five primary fields and
// derives the CRT parameters from d, p and q.
func NewPrivateKey(n, e, d, p, q *big.Int) *PrivateKey {
	one := big.NewInt(1)
	exp1 := new(big.Int).Mod(d, new(big.Int).Sub(p, one))
	exp2 := new(big.Int).Mod(d, new(big.Int).Sub(q, one))
	_, coef, _ := numtheory.ExtendedGCD(q, p)

	return &PrivateKey{N: n, E: e, D: d, P: p, Q: q, Exp1: exp1, Exp2: exp2, Coef: coef}
}

// NewPrivateKeyWithCRT constructs a PrivateKey from all eight fields. The
// supplied CRT parameters are used verbatim and never checked against d, p
// and q; PKCS#1 decoding relies on this to preserve the serialized values.
func NewPrivateKeyWithCRT(n, e, d, p, q, exp1, exp2, coef *big.Int) *PrivateKey {
	return &PrivateKey{N: n, E: e, D: d, P: p, Q: q, Exp1: exp1, Exp2: exp2, Coef: coef}
}

// Equal reports field-wise equality with another private key, over all eight
// fields including the CRT parameters.
func (k *PrivateKey) Equal(other *PrivateKey) bool {
	if other == nil {
		return false
	}
	return k.N.Cmp(other.N) == 0 &&
		k.E.Cmp(other.E) == 0 &&
		k.D.Cmp(other.D) == 0 &&
		k.P.Cmp(other.P) == 0 &&
		k.Q.Cmp(other.Q) == 0 &&
		k.Exp1.Cmp(other.Exp1) == 0 &&
		k.Exp2.Cmp(other.Exp2) == 0 &&
		k.Coef.Cmp(other.Coef) == 0
}

func (k *PrivateKey) String() string {
	return fmt.Sprintf("PrivateKey(%s, %s, %s, %s, %s)", k.N, k.E, k.D, k.P, k.Q)
}

// Validate checks the structural invariants of the private key: the modulus
// factors into the two distinct primes with p > q. Supplied CRT parameters
// are deliberately not validated.
func (k *PrivateKey) Validate() error {
	for name, field := range map[string]*big.Int{
		"n": k.N, "e": k.E, "d": k.D, "p": k.P, "q": k.Q,
		"exp1": k.Exp1, "exp2": k.Exp2, "coef": k.Coef,
	} {
		if field == nil {
			return &InvariantViolationError{Detail: fmt.Sprintf("field %s must not be nil", name)}
		}
	}
	if k.P.Cmp(k.Q) == 0 {
		return &InvariantViolationError{Detail: "p and q must differ"}
	}
	if k.P.Cmp(k.Q) < 0 {
		return &InvariantViolationError{Detail: "p must be greater than q"}
	}
	if product := new(big.Int).Mul(k.P, k.Q); product.Cmp(k.N) != 0 {
		return &InvariantViolationError{Detail: "n must equal p*q"}
	}
	return nil
}

// PublicKey returns the public half embedded in the private key. The modulus
// and exponent are shared, not copied; both entities are immutable.
func (k *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{N: k.N, E: k.E}
}
