// Package main is the entry point for the rsa-key-cli application.
// It initializes the root command, registers the key generation and
// serialization sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "rsa_key_service/cmd/rsa-key-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-key-cli",
		Short: "RSA PKCS#1 key generation and serialization CLI tool",
		Long: `rsa-key-cli generates RSA key pairs and serializes them in the
canonical PKCS#1 structure, as binary DER or a PEM text envelope.

Key generation uses the classic number-theoretic algorithm: an asymmetric
prime pair search, extended-Euclidean modular inversion and CRT parameter
derivation. In accurate mode the prime search keeps resampling until the
modulus has exactly the requested number of bits, which can take a while
for large keys.`,
	}

	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
