// Package hasher produces password hashes in the format the job-board web
// application verifies at login.
package hasher

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"
)

const (
	algorithm         = "pbkdf2_sha256"
	DefaultIterations = 870000
	saltLength        = 22
	keyLength         = sha256.Size
)

var ErrMalformedHash = errors.New("malformed password hash")

type PBKDF2Hasher struct {
	iterations int
	salt       func() string
}

func NewPBKDF2Hasher(iterations int) *PBKDF2Hasher {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &PBKDF2Hasher{iterations: iterations, salt: randomSalt}
}

// Hash returns "pbkdf2_sha256$<iterations>$<salt>$<base64 key>".
func (h *PBKDF2Hasher) Hash(password string) (string, error) {
	salt := h.salt()
	if salt == "" || strings.Contains(salt, "$") {
		return "", fmt.Errorf("invalid salt %q", salt)
	}
	return encode(password, salt, h.iterations), nil
}

// Verify checks a password against an encoded hash.
func Verify(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 4 || parts[0] != algorithm {
		return false, ErrMalformedHash
	}
	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return false, ErrMalformedHash
	}
	expected := encode(password, parts[2], iterations)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(encoded)) == 1, nil
}

func encode(password, salt string, iterations int) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha256.New)
	return fmt.Sprintf("%s$%d$%s$%s", algorithm, iterations, salt,
		base64.StdEncoding.EncodeToString(key))
}

func randomSalt() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:saltLength]
}
