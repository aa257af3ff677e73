package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/dsemenov/linkmark/internal/model"
)

const (
	saltLen = 16
	keyLen  = 32
)

// Params contains argon2id cost parameters.
type Params struct {
	Time   uint32
	MemKiB uint32
	Par    uint8
}

// Argon implements PasswordHasher with argon2id, storing digests in the
// standard encoded form so parameters can change without invalidating
// existing rows.
type Argon struct {
	params Params
}

// NewArgon creates a new argon2id hasher with the provided cost parameters.
func NewArgon(params Params) model.PasswordHasher {
	return &Argon{params: params}
}

// Hash derives a digest for the password with a fresh random salt.
func (a *Argon) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, a.params.Time, a.params.MemKiB, a.params.Par, keyLen)

	digest := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, a.params.MemKiB, a.params.Time, a.params.Par,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return digest, nil
}

// Verify reports whether the password matches the encoded digest.
// A malformed digest is an error, a mismatch is not.
func (a *Argon) Verify(digest, password string) (bool, error) {
	var (
		version   int
		mem, time uint32
		par       uint8
	)

	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, fmt.Errorf("malformed digest")
	}

	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("malformed digest version: %w", err)
	}
	if version != argon2.Version {
		return false, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &time, &par); err != nil {
		return false, fmt.Errorf("malformed digest params: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("malformed digest salt: %w", err)
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("malformed digest key: %w", err)
	}

	derived := argon2.IDKey([]byte(password), salt, time, mem, par, uint32(len(key)))

	return subtle.ConstantTimeCompare(derived, key) == 1, nil
}
