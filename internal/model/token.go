package model

// TokenCodec signs and verifies session tokens.
type TokenCodec interface {
	GenerateAccessToken(userID int64, email string) (string, error)
	GenerateRefreshToken(userID int64, email string) (string, error)
	ParseAccessToken(token string) (userID int64, err error)
	ParseRefreshToken(token string) (userID int64, err error)
}

// Hasher produces and checks one-way password digests.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, digest string) bool
}

// Digester produces and checks digests of high-entropy secrets such as
// refresh tokens.
type Digester interface {
	Digest(secret string) string
	Equal(secret, digest string) bool
}
