package model

// PasswordHasher produces and checks one-way password digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(digest, password string) (bool, error)
}
