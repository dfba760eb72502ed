package password

import "golang.org/x/crypto/bcrypt"

// Hash runs bcrypt with a fresh random salt, so the same plaintext hashes to
// a different string on every call.
func Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches the stored hash. A mismatch is a
// false return, never an error.
func Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
