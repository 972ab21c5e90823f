package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"rsa_key_service/internal/domain/keys"
	"rsa_key_service/internal/infrastructure/cryptography"
	"rsa_key_service/internal/infrastructure/pkcs1"
	"rsa_key_service/internal/pkg/config"
	"rsa_key_service/internal/pkg/logger"
)

// KeyCommandHandler encapsulates logic for handling key generation and
// serialization operations via CLI.
type KeyCommandHandler struct {
	generator keys.KeyPairGenerator
	codec     keys.PKCS1Codec
	logger    logger.Logger
}

// NewKeyCommandHandler initializes a new KeyCommandHandler with logging, a
// key pair generator and a PKCS#1 codec.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &KeyCommandHandler{
		generator: cryptography.NewKeyPairGenerator(cryptography.NewRandPrimeSource(), loggerInstance),
		codec:     pkcs1.NewPKCS1Codec(loggerInstance),
		logger:    loggerInstance,
	}, nil
}

// GenerateKeysCmd generates an RSA key pair and persists both halves in a
// selected directory.
func (commandHandler *KeyCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag: ", err)
		return
	}
	accurate, err := cmd.Flags().GetBool("accurate")
	if err != nil {
		commandHandler.logger.Error("invalid accurate flag: ", err)
		return
	}
	formatName, err := cmd.Flags().GetString("format")
	if err != nil {
		commandHandler.logger.Error("invalid format flag: ", err)
		return
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag: ", err)
		return
	}

	settings := &config.KeyGenSettings{
		KeySize:  keySize,
		Accurate: accurate,
		Format:   formatName,
	}
	if err := settings.Validate(); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	format, err := keys.ParseFormat(formatName)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKey, privateKey, err := commandHandler.generator.NewKeys(keySize, accurate)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	uniqueID := uuid.New()
	extension := strings.ToLower(formatName)

	privateKeyBytes, err := commandHandler.codec.SavePrivateKey(privateKey, format)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private-key.%s", uniqueID, extension))
	if err := os.WriteFile(privateKeyFilePath, privateKeyBytes, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKeyBytes, err := commandHandler.codec.SavePublicKey(publicKey, format)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public-key.%s", uniqueID, extension))
	if err := os.WriteFile(publicKeyFilePath, publicKeyBytes, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("saved key pair to ", privateKeyFilePath, " and ", publicKeyFilePath)
}

// InspectKeyCmd loads a serialized key and logs its parameters.
func (commandHandler *KeyCommandHandler) InspectKeyCmd(cmd *cobra.Command, _ []string) {
	keyFile, err := cmd.Flags().GetString("key-file")
	if err != nil {
		commandHandler.logger.Error("invalid key-file flag: ", err)
		return
	}
	kind, err := cmd.Flags().GetString("kind")
	if err != nil {
		commandHandler.logger.Error("invalid kind flag: ", err)
		return
	}
	formatName, err := cmd.Flags().GetString("format")
	if err != nil {
		commandHandler.logger.Error("invalid format flag: ", err)
		return
	}

	format, err := keys.ParseFormat(formatName)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(keyFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	switch kind {
	case "public":
		key, err := commandHandler.codec.LoadPublicKey(data, format)
		if err != nil {
			commandHandler.logger.Error(err)
			return
		}
		commandHandler.logger.Info("public key: ", key.N.BitLen(), "-bit modulus, e=", key.E)
	case "private":
		key, err := commandHandler.codec.LoadPrivateKey(data, format)
		if err != nil {
			commandHandler.logger.Error(err)
			return
		}
		commandHandler.logger.Info("private key: ", key.N.BitLen(), "-bit modulus, e=", key.E,
			", p=", key.P.BitLen(), " bits, q=", key.Q.BitLen(), " bits")
		if err := key.Validate(); err != nil {
			commandHandler.logger.Warn("key fails validation: ", err)
		}
	default:
		commandHandler.logger.Error("invalid kind flag: must be public or private")
	}
}

// ConvertKeyCmd re-encodes a serialized key between the PEM and DER formats.
func (commandHandler *KeyCommandHandler) ConvertKeyCmd(cmd *cobra.Command, _ []string) {
	keyFile, err := cmd.Flags().GetString("key-file")
	if err != nil {
		commandHandler.logger.Error("invalid key-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	kind, err := cmd.Flags().GetString("kind")
	if err != nil {
		commandHandler.logger.Error("invalid kind flag: ", err)
		return
	}
	fromName, err := cmd.Flags().GetString("from")
	if err != nil {
		commandHandler.logger.Error("invalid from flag: ", err)
		return
	}
	toName, err := cmd.Flags().GetString("to")
	if err != nil {
		commandHandler.logger.Error("invalid to flag: ", err)
		return
	}

	from, err := keys.ParseFormat(fromName)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	to, err := keys.ParseFormat(toName)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(keyFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	var converted []byte
	switch kind {
	case "public":
		key, err := commandHandler.codec.LoadPublicKey(data, from)
		if err != nil {
			commandHandler.logger.Error(err)
			return
		}
		converted, err = commandHandler.codec.SavePublicKey(key, to)
		if err != nil {
			commandHandler.logger.Error(err)
			return
		}
	case "private":
		key, err := commandHandler.codec.LoadPrivateKey(data, from)
		if err != nil {
			commandHandler.logger.Error(err)
			return
		}
		converted, err = commandHandler.codec.SavePrivateKey(key, to)
		if err != nil {
			commandHandler.logger.Error(err)
			return
		}
	default:
		commandHandler.logger.Error("invalid kind flag: must be public or private")
		return
	}

	if err := os.WriteFile(outputFile, converted, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("converted ", keyFile, " from ", from, " to ", to, " at ", outputFile)
}

// InitKeyCommands registers the key generation and serialization commands
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create key command handler %w", err)
	}

	var generateKeysCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate an RSA key pair",
		Run:   handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().IntP("key-size", "", 2048, "Total modulus size in bits")
	generateKeysCmd.Flags().BoolP("accurate", "", true, "Require the modulus to have exactly key-size bits")
	generateKeysCmd.Flags().StringP("format", "", "PEM", "Serialization format (PEM or DER)")
	generateKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the key pair")
	rootCmd.AddCommand(generateKeysCmd)

	var inspectKeyCmd = &cobra.Command{
		Use:   "inspect",
		Short: "Inspect a serialized PKCS#1 key",
		Run:   handler.InspectKeyCmd,
	}
	inspectKeyCmd.Flags().StringP("key-file", "", "", "Path to the serialized key")
	inspectKeyCmd.Flags().StringP("kind", "", "public", "Key kind (public or private)")
	inspectKeyCmd.Flags().StringP("format", "", "PEM", "Serialization format (PEM or DER)")
	rootCmd.AddCommand(inspectKeyCmd)

	var convertKeyCmd = &cobra.Command{
		Use:   "convert",
		Short: "Convert a key between PEM and DER",
		Run:   handler.ConvertKeyCmd,
	}
	convertKeyCmd.Flags().StringP("key-file", "", "", "Path to the serialized key")
	convertKeyCmd.Flags().StringP("output-file", "", "", "Path to the converted output")
	convertKeyCmd.Flags().StringP("kind", "", "public", "Key kind (public or private)")
	convertKeyCmd.Flags().StringP("from", "", "PEM", "Input format (PEM or DER)")
	convertKeyCmd.Flags().StringP("to", "", "DER", "Output format (PEM or DER)")
	rootCmd.AddCommand(convertKeyCmd)

	return nil
}
