package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"rsa_key_service/internal/pkg/validators"
)

// KeyGenSettings holds the parameters of a key generation request: the total
// modulus size, whether the modulus must have exactly that many bits, and
// the serialization format for the resulting key files.
type KeyGenSettings struct {
	KeySize  int    `mapstructure:"key_size" validate:"required,rsakeysize"`
	Accurate bool   `mapstructure:"accurate"`
	Format   string `mapstructure:"format" validate:"required,oneof=DER PEM"`
}

// Validate checks that all fields in KeyGenSettings are valid.
func (s *KeyGenSettings) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation(validators.RSAKeySizeTag, validators.RSAKeySizeValidation); err != nil {
		return fmt.Errorf("failed to register key size validation: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeyGenSettings: %w", err)
	}

	return nil
}
