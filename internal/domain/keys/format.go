package keys

// Format selects a PKCS#1 serialization encoding. The set is closed: only
// DER (binary) and PEM (base64 text envelope) exist.
type Format string

// Supported serialization formats.
const (
	FormatDER Format = "DER"
	FormatPEM Format = "PEM"
)

// SupportedFormats returns the valid format names in sorted order, for use in
// error messages and CLI help text.
func SupportedFormats() []string {
	return []string{string(FormatDER), string(FormatPEM)}
}

// ParseFormat maps a format name to its Format value. Unknown names yield an
// UnsupportedFormatError listing the valid options.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatDER:
		return FormatDER, nil
	case FormatPEM:
		return FormatPEM, nil
	default:
		return "", &UnsupportedFormatError{Format: name, Valid: SupportedFormats()}
	}
}
