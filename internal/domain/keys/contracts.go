package keys

// KeyPairGenerator defines the key generation operations.
type KeyPairGenerator interface {
	// NewKeys generates a fresh RSA key pair whose modulus is nbits bits.
	// When accurate is true the modulus has exactly nbits bits, at the cost
	// of a longer prime search. Sizes below 16 bits are rejected with a
	// KeyTooSmallError. The prime search is unbounded; callers needing a
	// deadline must impose one around the whole call.
	NewKeys(nbits int, accurate bool) (*PublicKey, *PrivateKey, error)
}

// PKCS1Codec defines serialization of key entities to and from the canonical
// PKCS#1 structure, in DER or PEM format.
type PKCS1Codec interface {
	// LoadPublicKey decodes a PKCS#1 RSAPublicKey from DER bytes or a PEM
	// envelope, depending on format.
	LoadPublicKey(data []byte, format Format) (*PublicKey, error)

	// SavePublicKey encodes the key as a PKCS#1 RSAPublicKey in the
	// requested format.
	SavePublicKey(key *PublicKey, format Format) ([]byte, error)

	// LoadPrivateKey decodes a PKCS#1 RSAPrivateKey from DER bytes or a PEM
	// envelope. A version field other than zero is rejected with an
	// UnsupportedVersionError. The serialized CRT parameters are used
	// verbatim.
	LoadPrivateKey(data []byte, format Format) (*PrivateKey, error)

	// SavePrivateKey encodes the key as a version-0 PKCS#1 RSAPrivateKey in
	// the requested format.
	SavePrivateKey(key *PrivateKey, format Format) ([]byte, error)
}
