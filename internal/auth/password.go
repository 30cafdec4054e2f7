package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt digest of the plaintext. Two
// calls with the same plaintext produce different digests.
func HashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether plain matches the stored digest. A
// malformed digest verifies as false rather than failing.
func VerifyPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
