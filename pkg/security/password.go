package security

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/pbkdf2"

	"github.com/shopkartlabs/shopkart-backend/pkg/config"
)

// ErrInvalidHash signals a malformed salt:hash credential string.
var ErrInvalidHash = fmt.Errorf("invalid password hash")

// PBKDF2Params captures the key-derivation parameters used for stored credentials.
type PBKDF2Params struct {
	Iterations int
	SaltLen    int
	KeyLen     int
}

// HashPassword derives a PBKDF2-SHA512 hash and returns it as "salt:hash" hex.
func HashPassword(password string, cfg config.PasswordConfig) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	params := paramsFromConfig(cfg)
	salt := make([]byte, params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, params.Iterations, params.KeyLen, sha512.New)

	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword returns true when the password matches the encoded hash.
// The stored salt length and key length win over the configured values so
// hashes survive parameter changes.
func VerifyPassword(password, encoded string, cfg config.PasswordConfig) (bool, error) {
	salt, hash, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	params := paramsFromConfig(cfg)
	computed := pbkdf2.Key([]byte(password), salt, params.Iterations, len(hash), sha512.New)

	if subtle.ConstantTimeCompare(hash, computed) == 1 {
		return true, nil
	}
	return false, nil
}

// ValidateStrength enforces the storefront's minimum password rules.
func ValidateStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return fmt.Errorf("password must contain an uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain a lowercase letter")
	}
	if !hasDigit {
		return fmt.Errorf("password must contain a number")
	}
	return nil
}

func paramsFromConfig(cfg config.PasswordConfig) PBKDF2Params {
	return PBKDF2Params{
		Iterations: clampInt(cfg.PBKDF2Iterations, 1, 1_000_000),
		SaltLen:    clampInt(cfg.PBKDF2SaltLen, 8, 64),
		KeyLen:     clampInt(cfg.PBKDF2KeyLen, 16, 128),
	}
}

func decodeHash(encoded string) ([]byte, []byte, error) {
	parts := strings.SplitN(encoded, ":", 2)
	if len(parts) != 2 {
		return nil, nil, ErrInvalidHash
	}
	salt, err := hex.DecodeString(parts[0])
	if err != nil || len(salt) == 0 {
		return nil, nil, ErrInvalidHash
	}
	hash, err := hex.DecodeString(parts[1])
	if err != nil || len(hash) == 0 {
		return nil, nil, ErrInvalidHash
	}
	return salt, hash, nil
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
