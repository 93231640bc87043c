package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrPasswordMismatch is returned by VerifyPassword for a well-formed hash
// that does not match.
var ErrPasswordMismatch = errors.New("invalid password")

const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024 // KiB
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32
)

// Hash returns the encoded Argon2id hash of password:
// argon2id$v=19$m=...,t=...,p=...$<salt_b64>$<hash_b64>
func Hash(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf("argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		argonMemory, argonTime, argonThreads, b64Salt, b64Hash), nil
}

// VerifyPassword compares a password with an Argon2id encoded hash.
func VerifyPassword(encodedHash, password string) error {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 5 {
		return errors.New("invalid hash format")
	}

	paramPart := parts[2]
	var memory, iterations uint32
	var threads uint8

	_, err := fmt.Sscanf(paramPart, "m=%d,t=%d,p=%d", &memory, &iterations, &threads)
	if err != nil {
		return errors.New("invalid hash parameters")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return errors.New("invalid salt encoding")
	}

	hash, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return errors.New("invalid hash encoding")
	}

	calculated := argon2.IDKey([]byte(password), salt, iterations, memory, threads, uint32(len(hash)))

	if subtle.ConstantTimeCompare(hash, calculated) == 1 {
		return nil
	}

	return ErrPasswordMismatch
}
