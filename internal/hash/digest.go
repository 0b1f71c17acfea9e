package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/dtroode/jobmarket-server/internal/model"
)

var _ model.Digester = SHA256{}

// SHA256 digests refresh tokens. Tokens are signed and carry a random jti,
// so a fast unsalted digest is enough and avoids bcrypt's 72-byte input limit.
type SHA256 struct{}

// Digest returns the hex encoded SHA-256 of the secret.
func (SHA256) Digest(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// Equal compares the secret against a stored digest in constant time.
func (s SHA256) Equal(secret, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(s.Digest(secret)), []byte(digest)) == 1
}
