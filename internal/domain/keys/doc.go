// Package keys defines the RSA key entities, the contracts implemented by the
// key generation and PKCS#1 serialization infrastructure, and the typed errors
// those operations can return.
package keys
