package keys

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// UnsupportedFormatError indicates a serialization format outside the
// supported set. The message enumerates the valid options in sorted order.
type UnsupportedFormatError struct {
	Format string
	Valid  []string
}

func (e *UnsupportedFormatError) Error() string {
	valid := append([]string(nil), e.Valid...)
	sort.Strings(valid)
	return fmt.Sprintf("unsupported format %q, try one of %s", e.Format, strings.Join(valid, ", "))
}

// KeyTooSmallError indicates a requested modulus size below the minimum of 16
// bits.
type KeyTooSmallError struct {
	Bits int
}

func (e *KeyTooSmallError) Error() string {
	return fmt.Sprintf("key too small: %d bits requested, need at least 16", e.Bits)
}

// NotCoprimeError indicates that the public exponent and phi(n) share a
// common factor, so no private exponent exists for the chosen primes.
type NotCoprimeError struct {
	E   *big.Int
	Phi *big.Int
}

func (e *NotCoprimeError) Error() string {
	return fmt.Sprintf("e (%s) and phi_n (%s) are not relatively prime", e.E, e.Phi)
}

// InvariantViolationError indicates an internal sanity check failed during
// key derivation. It signals a logic defect, not bad user input.
type InvariantViolationError struct {
	Detail string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("key derivation invariant violated: %s", e.Detail)
}

// UnsupportedVersionError indicates a decoded PKCS#1 private key whose
// version field is not zero.
type UnsupportedVersionError struct {
	Version int64
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unable to read this key, version %d != 0", e.Version)
}
