// Package validators provides custom validation rules registered with
// go-playground/validator.
package validators

import (
	"github.com/go-playground/validator/v10"
)

// RSAKeySizeTag is the struct tag name under which RSAKeySizeValidation is
// registered.
const RSAKeySizeTag = "rsakeysize"

// RSAKeySizeValidation validates a requested RSA modulus size in bits. Sizes
// below 16 bits are rejected outright. Odd sizes are rejected because each
// prime factor targets half the modulus size, so an odd target can never be
// met exactly in accurate mode.
func RSAKeySizeValidation(fl validator.FieldLevel) bool {
	bits := fl.Field().Int()
	return bits >= 16 && bits%2 == 0
}
