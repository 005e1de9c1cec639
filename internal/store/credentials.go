// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"io"

	"golang.org/x/crypto/argon2"
)

// Meta table keys holding the credential material of a store file.
const (
	metaKeySalt     = "kdf_salt"
	metaKeyVerifier = "key_verifier"
)

// credentialVerifier derives and checks the access verifier of a store file
// from the master password and an optional key file. It gates access to the
// store; payload encryption is out of scope of the converter and belongs to
// the consuming application.
type credentialVerifier struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// newCredentialVerifier constructs a credentialVerifier with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func newCredentialVerifier() *credentialVerifier {
	return &credentialVerifier{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateSalt reads 16 random bytes from the OS CSPRNG and returns them as
// the KDF salt. Returns an error if the random read fails.
func (v *credentialVerifier) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// Derive computes the 256-bit access verifier from the master password, the
// key file content (nil when no key file is configured), and salt using
// Argon2id with the parameters stored in the receiver.
func (v *credentialVerifier) Derive(password string, keyfile []byte, salt []byte) []byte {
	secret := []byte(password)
	if len(keyfile) > 0 {
		keyfileDigest := sha256.Sum256(keyfile)
		secret = append(secret, keyfileDigest[:]...)
	}

	return argon2.IDKey(
		secret,
		salt,
		v.argonTime,
		v.argonMemory,
		v.argonThreads,
		v.argonKeyLen,
	)
}

// Matches reports whether the supplied password and key file content derive
// the expected verifier. The comparison is constant-time.
func (v *credentialVerifier) Matches(expected []byte, password string, keyfile []byte, salt []byte) bool {
	derived := v.Derive(password, keyfile, salt)
	return subtle.ConstantTimeCompare(expected, derived) == 1
}
